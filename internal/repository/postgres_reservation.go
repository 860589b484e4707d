package repository

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lylakivan/theatre-api-service/internal/domain"
)

type PostgresReservationRepository struct {
	db *pgxpool.Pool
}

func NewPostgresReservationRepository(db *pgxpool.Pool) *PostgresReservationRepository {
	return &PostgresReservationRepository{
		db: db,
	}
}

func (p *PostgresReservationRepository) GetByUserId(
	ctx context.Context,
	userId int,
	pagination domain.Pagination) ([]domain.Reservation, *domain.Metadata, error) {

	query := `
		SELECT COUNT(*) OVER(), id, user_id, created_at
		FROM reservations
		WHERE user_id = $1
		ORDER BY created_at DESC, id DESC
		LIMIT $2 OFFSET $3
	`

	rows, err := p.db.Query(ctx, query, userId, pagination.Limit(), pagination.Offset())
	if err != nil {
		return nil, nil, err
	}
	defer rows.Close()

	totalRecords := 0
	reservations := []domain.Reservation{}
	ids := []int{}

	for rows.Next() {
		var reservation domain.Reservation

		err := rows.Scan(
			&totalRecords,
			&reservation.ID,
			&reservation.UserID,
			&reservation.CreatedAt,
		)
		if err != nil {
			return nil, nil, err
		}

		reservation.Tickets = []domain.Ticket{}
		reservations = append(reservations, reservation)
		ids = append(ids, reservation.ID)
	}

	if err = rows.Err(); err != nil {
		return nil, nil, err
	}

	if len(ids) > 0 {
		tickets, err := p.getTickets(ctx, ids)
		if err != nil {
			return nil, nil, err
		}

		for i := range reservations {
			reservations[i].Tickets = append(reservations[i].Tickets, tickets[reservations[i].ID]...)
		}
	}

	return reservations, domain.NewMetadata(totalRecords, pagination), nil
}

func (p *PostgresReservationRepository) getTickets(ctx context.Context, reservationIds []int) (map[int][]domain.Ticket, error) {
	query := `
		SELECT t.id, t.seat_row, t.seat_number, t.reservation_id,
			p.id, p.show_time, pl.id, pl.title, th.id, th.name
		FROM tickets t
		LEFT JOIN performances p ON p.id = t.performance_id
		LEFT JOIN plays pl ON pl.id = p.play_id
		LEFT JOIN theatre_halls th ON th.id = p.theatre_hall_id
		WHERE t.reservation_id = ANY($1)
		ORDER BY t.id
	`

	rows, err := p.db.Query(ctx, query, reservationIds)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tickets := make(map[int][]domain.Ticket, len(reservationIds))

	for rows.Next() {
		var (
			ticket        domain.Ticket
			performanceId *int
			showTime      *time.Time
			playId        *int
			playTitle     *string
			hallId        *int
			hallName      *string
		)

		err := rows.Scan(
			&ticket.ID,
			&ticket.Row,
			&ticket.Seat,
			&ticket.ReservationID,
			&performanceId,
			&showTime,
			&playId,
			&playTitle,
			&hallId,
			&hallName,
		)
		if err != nil {
			return nil, err
		}

		if performanceId != nil {
			ticket.Performance = &domain.Performance{
				ID:       *performanceId,
				ShowTime: *showTime,
				Play:     domain.Play{ID: *playId, Title: *playTitle},
				Hall:     domain.TheatreHall{ID: *hallId, Name: *hallName},
			}
		}

		tickets[ticket.ReservationID] = append(tickets[ticket.ReservationID], ticket)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return tickets, nil
}
