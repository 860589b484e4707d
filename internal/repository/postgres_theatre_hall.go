package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lylakivan/theatre-api-service/internal/domain"
)

type PostgresTheatreHallRepository struct {
	db *pgxpool.Pool
}

func NewPostgresTheatreHallRepository(db *pgxpool.Pool) *PostgresTheatreHallRepository {
	return &PostgresTheatreHallRepository{
		db: db,
	}
}

func (p *PostgresTheatreHallRepository) GetAll(ctx context.Context) ([]domain.TheatreHall, error) {
	rows, err := p.db.Query(ctx, `SELECT id, name, rows, seats_in_row FROM theatre_halls ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	halls := []domain.TheatreHall{}

	for rows.Next() {
		var hall domain.TheatreHall

		if err := rows.Scan(&hall.ID, &hall.Name, &hall.Rows, &hall.SeatsInRow); err != nil {
			return nil, err
		}

		halls = append(halls, hall)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return halls, nil
}

func (p *PostgresTheatreHallRepository) Create(ctx context.Context, hall *domain.TheatreHall) error {
	query := `
		INSERT INTO theatre_halls (name, rows, seats_in_row)
		VALUES ($1, $2, $3)
		RETURNING id
	`

	err := p.db.QueryRow(ctx, query, hall.Name, hall.Rows, hall.SeatsInRow).Scan(&hall.ID)
	if err != nil {
		if isUniqueViolation(err, "") {
			return domain.ErrDuplicateName
		}

		return err
	}

	return nil
}
