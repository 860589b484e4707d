package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lylakivan/theatre-api-service/internal/domain"
)

const ticketSeatConstraint = "tickets_performance_seat_key"

type PostgresBookingStore struct {
	db *pgxpool.Pool
}

func NewPostgresBookingStore(db *pgxpool.Pool) *PostgresBookingStore {
	return &PostgresBookingStore{
		db: db,
	}
}

func (p *PostgresBookingStore) InTx(ctx context.Context, fn func(tx domain.BookingTx) error) error {
	return runInTxWithRetry(ctx, p.db, func(tx pgx.Tx) error {
		return fn(&postgresBookingTx{tx: tx})
	})
}

type postgresBookingTx struct {
	tx pgx.Tx
}

func (p *postgresBookingTx) LockPerformance(ctx context.Context, id int) (*domain.Performance, error) {
	query := `
		SELECT p.id, p.show_time, p.play_id, th.id, th.name, th.rows, th.seats_in_row
		FROM performances p
		JOIN theatre_halls th ON th.id = p.theatre_hall_id
		WHERE p.id = $1
		FOR UPDATE OF p
	`

	var performance domain.Performance

	err := p.tx.QueryRow(ctx, query, id).Scan(
		&performance.ID,
		&performance.ShowTime,
		&performance.Play.ID,
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

	return &performance, nil
}

func (p *postgresBookingTx) IsSeatTaken(ctx context.Context, performanceID, row, seat int) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM tickets
			WHERE performance_id = $1 AND seat_row = $2 AND seat_number = $3
		)
	`

	var taken bool

	err := p.tx.QueryRow(ctx, query, performanceID, row, seat).Scan(&taken)
	if err != nil {
		return false, err
	}

	return taken, nil
}

func (p *postgresBookingTx) CreateReservation(ctx context.Context, reservation *domain.Reservation) error {
	query := `
		INSERT INTO reservations (user_id, created_at)
		VALUES ($1, $2)
		RETURNING id
	`

	return p.tx.QueryRow(ctx, query, reservation.UserID, reservation.CreatedAt).Scan(&reservation.ID)
}

func (p *postgresBookingTx) CreateTicket(ctx context.Context, ticket *domain.Ticket) error {
	query := `
		INSERT INTO tickets (seat_row, seat_number, performance_id, reservation_id)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`

	err := p.tx.QueryRow(
		ctx,
		query,
		ticket.Row,
		ticket.Seat,
		ticket.Performance.ID,
		ticket.ReservationID).Scan(&ticket.ID)

	if err != nil {
		if isUniqueViolation(err, ticketSeatConstraint) {
			return &domain.SeatTakenError{
				PerformanceID: ticket.Performance.ID,
				Row:           ticket.Row,
				Seat:          ticket.Seat,
			}
		}

		return err
	}

	return nil
}
