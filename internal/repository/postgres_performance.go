package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lylakivan/theatre-api-service/internal/domain"
)

type PostgresPerformanceRepository struct {
	db *pgxpool.Pool
}

func NewPostgresPerformanceRepository(db *pgxpool.Pool) *PostgresPerformanceRepository {
	return &PostgresPerformanceRepository{
		db: db,
	}
}

func (p *PostgresPerformanceRepository) GetAll(
	ctx context.Context,
	filters domain.PerformanceFilters) ([]domain.Performance, error) {

	query := `
		SELECT p.id, p.show_time, pl.id, pl.title,
			th.id, th.name, th.rows, th.seats_in_row,
			COUNT(t.id)
		FROM performances p
		JOIN plays pl ON pl.id = p.play_id
		JOIN theatre_halls th ON th.id = p.theatre_hall_id
		LEFT JOIN tickets t ON t.performance_id = p.id
		WHERE (cardinality($1::bigint[]) = 0 OR p.play_id = ANY($1))
		GROUP BY p.id, pl.id, th.id
		ORDER BY p.show_time, p.id
	`

	rows, err := p.db.Query(ctx, query, nonNilInts(filters.PlayIDs))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	performances := []domain.Performance{}

	for rows.Next() {
		var performance domain.Performance

		err := rows.Scan(
			&performance.ID,
			&performance.ShowTime,
			&performance.Play.ID,
			&performance.Play.Title,
			&performance.Hall.ID,
			&performance.Hall.Name,
			&performance.Hall.Rows,
			&performance.Hall.SeatsInRow,
			&performance.TicketCount,
		)
		if err != nil {
			return nil, err
		}

		performances = append(performances, performance)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return performances, nil
}

func (p *PostgresPerformanceRepository) GetById(ctx context.Context, id int) (*domain.Performance, error) {
	query := `
		SELECT p.id, p.show_time, pl.id, pl.title,
			th.id, th.name, th.rows, th.seats_in_row
		FROM performances p
		JOIN plays pl ON pl.id = p.play_id
		JOIN theatre_halls th ON th.id = p.theatre_hall_id
		WHERE p.id = $1
	`

	var performance domain.Performance

	err := p.db.QueryRow(ctx, query, id).Scan(
		&performance.ID,
		&performance.ShowTime,
		&performance.Play.ID,
		&performance.Play.Title,
		&performance.Hall.ID,
		&performance.Hall.Name,
		&performance.Hall.Rows,
		&performance.Hall.SeatsInRow,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrRecordNotFound
		}

		return nil, err
	}

	query = `
		SELECT seat_row, seat_number
		FROM tickets
		WHERE performance_id = $1
		ORDER BY seat_row, seat_number
	`

	rows, err := p.db.Query(ctx, query, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	performance.TakenPlaces = []domain.Seat{}

	for rows.Next() {
		var seat domain.Seat

		err := rows.Scan(&seat.Row, &seat.Number)
		if err != nil {
			return nil, err
		}

		performance.TakenPlaces = append(performance.TakenPlaces, seat)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	performance.TicketCount = len(performance.TakenPlaces)

	return &performance, nil
}

func (p *PostgresPerformanceRepository) Create(ctx context.Context, performance *domain.Performance) error {
	query := `
		WITH inserted AS (
			INSERT INTO performances (play_id, theatre_hall_id, show_time)
			VALUES ($1, $2, $3)
			RETURNING id, play_id, theatre_hall_id
		)
		SELECT i.id, pl.title, th.name, th.rows, th.seats_in_row
		FROM inserted i
		JOIN plays pl ON pl.id = i.play_id
		JOIN theatre_halls th ON th.id = i.theatre_hall_id
	`

	err := p.db.QueryRow(
		ctx,
		query,
		performance.Play.ID,
		performance.Hall.ID,
		performance.ShowTime).Scan(
		&performance.ID,
		&performance.Play.Title,
		&performance.Hall.Name,
		&performance.Hall.Rows,
		&performance.Hall.SeatsInRow,
	)

	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrInvalidReference
		}

		return err
	}

	return nil
}

func (p *PostgresPerformanceRepository) Delete(ctx context.Context, id int) error {
	result, err := p.db.Exec(ctx, `DELETE FROM performances WHERE id = $1`, id)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return domain.ErrRecordNotFound
	}

	return nil
}
