package repository

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lylakivan/theatre-api-service/internal/domain"
)

type PostgresPlayRepository struct {
	db *pgxpool.Pool
}

func NewPostgresPlayRepository(db *pgxpool.Pool) *PostgresPlayRepository {
	return &PostgresPlayRepository{
		db: db,
	}
}

type actorJSON struct {
	ID        int    `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

type genreJSON struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

const playColumns = `
		pl.id,
		pl.title,
		pl.description,
		COALESCE((
			SELECT jsonb_agg(
				jsonb_build_object('id', a.id, 'firstName', a.first_name, 'lastName', a.last_name)
				ORDER BY a.id)
			FROM play_actors pa
			JOIN actors a ON a.id = pa.actor_id
			WHERE pa.play_id = pl.id
		), '[]') AS actors,
		COALESCE((
			SELECT jsonb_agg(jsonb_build_object('id', g.id, 'name', g.name) ORDER BY g.id)
			FROM play_genres pg
			JOIN genres g ON g.id = pg.genre_id
			WHERE pg.play_id = pl.id
		), '[]') AS genres
`

const selectPlays = `SELECT ` + playColumns + ` FROM plays pl`

func (p *PostgresPlayRepository) GetAll(
	ctx context.Context,
	filters domain.PlayFilters) ([]domain.Play, *domain.Metadata, error) {

	query := `SELECT COUNT(*) OVER(), ` + playColumns + ` FROM plays pl
		WHERE ($1::text = '' OR pl.title ILIKE '%' || $1::text || '%')
			AND (cardinality($2::bigint[]) = 0 OR EXISTS (
				SELECT 1 FROM play_actors pa WHERE pa.play_id = pl.id AND pa.actor_id = ANY($2)))
			AND (cardinality($3::bigint[]) = 0 OR EXISTS (
				SELECT 1 FROM play_genres pg WHERE pg.play_id = pl.id AND pg.genre_id = ANY($3)))
		ORDER BY pl.id
		LIMIT $4 OFFSET $5
	`

	rows, err := p.db.Query(ctx, query,
		filters.Title,
		nonNilInts(filters.ActorIDs),
		nonNilInts(filters.GenreIDs),
		filters.Limit(),
		filters.Offset(),
	)
	if err != nil {
		return nil, nil, err
	}
	defer rows.Close()

	totalRecords := 0
	plays := []domain.Play{}

	for rows.Next() {
		play, err := scanPlay(rows, &totalRecords)
		if err != nil {
			return nil, nil, err
		}

		plays = append(plays, *play)
	}

	if err = rows.Err(); err != nil {
		return nil, nil, err
	}

	return plays, domain.NewMetadata(totalRecords, filters.Pagination), nil
}

func (p *PostgresPlayRepository) GetById(ctx context.Context, id int) (*domain.Play, error) {
	play, err := scanPlay(p.db.QueryRow(ctx, selectPlays+` WHERE pl.id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrRecordNotFound
		}

		return nil, err
	}

	return play, nil
}

func (p *PostgresPlayRepository) Create(ctx context.Context, play *domain.Play) error {
	err := runInTx(ctx, p.db, func(tx pgx.Tx) error {
		query := `
			INSERT INTO plays (title, description)
			VALUES ($1, $2)
			RETURNING id
		`

		err := tx.QueryRow(ctx, query, play.Title, play.Description).Scan(&play.ID)
		if err != nil {
			return err
		}

		if len(play.ActorIDs) > 0 {
			_, err = tx.Exec(ctx, `
				INSERT INTO play_actors (play_id, actor_id)
				SELECT $1, unnest($2::bigint[])
				ON CONFLICT DO NOTHING`, play.ID, play.ActorIDs)
			if err != nil {
				return err
			}
		}

		if len(play.GenreIDs) > 0 {
			_, err = tx.Exec(ctx, `
				INSERT INTO play_genres (play_id, genre_id)
				SELECT $1, unnest($2::bigint[])
				ON CONFLICT DO NOTHING`, play.ID, play.GenreIDs)
			if err != nil {
				return err
			}
		}

		created, err := scanPlay(tx.QueryRow(ctx, selectPlays+` WHERE pl.id = $1`, play.ID))
		if err != nil {
			return err
		}

		*play = *created

		return nil
	})

	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrInvalidReference
		}

		return err
	}

	return nil
}

// scanPlay reads the play columns, after any leading columns of the row.
func scanPlay(row pgx.Row, leading ...any) (*domain.Play, error) {
	var (
		play       domain.Play
		actorsJSON []byte
		genresJSON []byte
	)

	dest := append(leading, &play.ID, &play.Title, &play.Description, &actorsJSON, &genresJSON)

	err := row.Scan(dest...)
	if err != nil {
		return nil, err
	}

	var actors []actorJSON
	if err := json.Unmarshal(actorsJSON, &actors); err != nil {
		return nil, err
	}

	var genres []genreJSON
	if err := json.Unmarshal(genresJSON, &genres); err != nil {
		return nil, err
	}

	play.Actors = make([]domain.Actor, 0, len(actors))
	for _, a := range actors {
		play.Actors = append(play.Actors, domain.Actor{ID: a.ID, FirstName: a.FirstName, LastName: a.LastName})
		play.ActorIDs = append(play.ActorIDs, a.ID)
	}

	play.Genres = make([]domain.Genre, 0, len(genres))
	for _, g := range genres {
		play.Genres = append(play.Genres, domain.Genre{ID: g.ID, Name: g.Name})
		play.GenreIDs = append(play.GenreIDs, g.ID)
	}

	return &play, nil
}

func nonNilInts(values []int) []int {
	if values == nil {
		return []int{}
	}

	return values
}
