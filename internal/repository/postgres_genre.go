package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lylakivan/theatre-api-service/internal/domain"
)

type PostgresGenreRepository struct {
	db *pgxpool.Pool
}

func NewPostgresGenreRepository(db *pgxpool.Pool) *PostgresGenreRepository {
	return &PostgresGenreRepository{
		db: db,
	}
}

func (p *PostgresGenreRepository) GetAll(ctx context.Context) ([]domain.Genre, error) {
	rows, err := p.db.Query(ctx, `SELECT id, name FROM genres ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	genres := []domain.Genre{}

	for rows.Next() {
		var genre domain.Genre

		if err := rows.Scan(&genre.ID, &genre.Name); err != nil {
			return nil, err
		}

		genres = append(genres, genre)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return genres, nil
}

func (p *PostgresGenreRepository) Create(ctx context.Context, genre *domain.Genre) error {
	query := `INSERT INTO genres (name) VALUES ($1) RETURNING id`

	err := p.db.QueryRow(ctx, query, genre.Name).Scan(&genre.ID)
	if err != nil {
		if isUniqueViolation(err, "") {
			return domain.ErrDuplicateName
		}

		return err
	}

	return nil
}
