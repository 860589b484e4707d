package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lylakivan/theatre-api-service/internal/domain"
)

type PostgresActorRepository struct {
	db *pgxpool.Pool
}

func NewPostgresActorRepository(db *pgxpool.Pool) *PostgresActorRepository {
	return &PostgresActorRepository{
		db: db,
	}
}

func (p *PostgresActorRepository) GetAll(
	ctx context.Context,
	pagination domain.Pagination) ([]domain.Actor, *domain.Metadata, error) {

	query := `
		SELECT COUNT(*) OVER(), a.id, a.first_name, a.last_name,
			COALESCE(array_agg(pl.title ORDER BY pl.id) FILTER (WHERE pl.id IS NOT NULL), '{}')
		FROM actors a
		LEFT JOIN play_actors pa ON pa.actor_id = a.id
		LEFT JOIN plays pl ON pl.id = pa.play_id
		GROUP BY a.id
		ORDER BY a.id
		LIMIT $1 OFFSET $2
	`

	rows, err := p.db.Query(ctx, query, pagination.Limit(), pagination.Offset())
	if err != nil {
		return nil, nil, err
	}
	defer rows.Close()

	totalRecords := 0
	actors := []domain.Actor{}

	for rows.Next() {
		var actor domain.Actor

		err := rows.Scan(&totalRecords, &actor.ID, &actor.FirstName, &actor.LastName, &actor.PlayTitles)
		if err != nil {
			return nil, nil, err
		}

		actors = append(actors, actor)
	}

	if err = rows.Err(); err != nil {
		return nil, nil, err
	}

	return actors, domain.NewMetadata(totalRecords, pagination), nil
}

func (p *PostgresActorRepository) GetById(ctx context.Context, id int) (*domain.Actor, error) {
	query := `SELECT id, first_name, last_name FROM actors WHERE id = $1`

	var actor domain.Actor

	err := p.db.QueryRow(ctx, query, id).Scan(&actor.ID, &actor.FirstName, &actor.LastName)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrRecordNotFound
		}

		return nil, err
	}

	query = selectPlays + `
		WHERE EXISTS (SELECT 1 FROM play_actors pa WHERE pa.play_id = pl.id AND pa.actor_id = $1)
		ORDER BY pl.id
	`

	rows, err := p.db.Query(ctx, query, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	actor.Plays = []domain.Play{}

	for rows.Next() {
		play, err := scanPlay(rows)
		if err != nil {
			return nil, err
		}

		actor.Plays = append(actor.Plays, *play)
		actor.PlayTitles = append(actor.PlayTitles, play.Title)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return &actor, nil
}

func (p *PostgresActorRepository) Create(ctx context.Context, actor *domain.Actor) error {
	query := `
		INSERT INTO actors (first_name, last_name)
		VALUES ($1, $2)
		RETURNING id
	`

	return p.db.QueryRow(ctx, query, actor.FirstName, actor.LastName).Scan(&actor.ID)
}
