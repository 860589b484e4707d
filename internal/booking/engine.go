// Package booking creates reservations: one reservation plus one ticket per
// requested seat, persisted atomically or not at all.
package booking

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"github.com/lylakivan/theatre-api-service/internal/domain"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

const instrumentationName = "github.com/lylakivan/theatre-api-service/internal/booking"

type Engine struct {
	store  domain.BookingStore
	logger *slog.Logger
	tracer trace.Tracer

	ticketsBooked metric.Int64Counter
	seatConflicts metric.Int64Counter
}

func NewEngine(store domain.BookingStore, logger *slog.Logger) (*Engine, error) {
	meter := otel.Meter(instrumentationName)

	ticketsBooked, err := meter.Int64Counter(
		"booking.tickets.booked",
		metric.WithDescription("Number of tickets created by successful bookings"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create tickets counter: %w", err)
	}

	seatConflicts, err := meter.Int64Counter(
		"booking.seat.conflicts",
		metric.WithDescription("Number of booking requests rejected because a seat was taken"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create conflicts counter: %w", err)
	}

	return &Engine{
		store:         store,
		logger:        logger,
		tracer:        otel.Tracer(instrumentationName),
		ticketsBooked: ticketsBooked,
		seatConflicts: seatConflicts,
	}, nil
}

type seatKey struct {
	performanceID int
	row           int
	seat          int
}

// Book reserves every requested seat for userID. Seats are checked in request order and
// the first failure aborts the whole request. On success the created reservation is
// returned with one ticket per requested seat, in request order.
//
// Returned errors are domain.ErrEmptyRequest, *domain.PerformanceNotFoundError,
// *domain.OutOfBoundsError, *domain.SeatTakenError or *domain.BookingFailedError.
func (e *Engine) Book(ctx context.Context, userID int, seats []domain.SeatRequest) (*domain.Reservation, error) {
	if len(seats) == 0 {
		return nil, domain.ErrEmptyRequest
	}

	ctx, span := e.tracer.Start(ctx, "booking.Book", trace.WithAttributes(
		attribute.Int("user_id", userID),
		attribute.Int("seat_count", len(seats)),
	))
	defer span.End()

	var reservation *domain.Reservation

	err := e.store.InTx(ctx, func(tx domain.BookingTx) error {
		created, err := e.book(ctx, tx, userID, seats)
		if err != nil {
			return err
		}

		reservation = created

		return nil
	})
	if err != nil {
		err = classify(err)

		var taken *domain.SeatTakenError
		if errors.As(err, &taken) {
			e.seatConflicts.Add(ctx, 1)
		}

		var failed *domain.BookingFailedError
		if errors.As(err, &failed) {
			e.logger.ErrorContext(ctx, "booking transaction failed", "user_id", userID, "error", failed.Err)
		}

		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())

		return nil, err
	}

	e.ticketsBooked.Add(ctx, int64(len(reservation.Tickets)))
	span.SetAttributes(attribute.Int("reservation_id", reservation.ID))

	return reservation, nil
}

func (e *Engine) book(
	ctx context.Context,
	tx domain.BookingTx,
	userID int,
	seats []domain.SeatRequest) (*domain.Reservation, error) {

	performances, err := lockPerformances(ctx, tx, seats)
	if err != nil {
		return nil, err
	}

	requested := make(map[seatKey]bool, len(seats))

	for _, s := range seats {
		performance, ok := performances[s.PerformanceID]
		if !ok {
			return nil, &domain.PerformanceNotFoundError{PerformanceID: s.PerformanceID}
		}

		err := domain.ValidateSeat(performance.Hall, s.Row, s.Seat)
		if err != nil {
			return nil, err
		}

		key := seatKey{performanceID: s.PerformanceID, row: s.Row, seat: s.Seat}
		if requested[key] {
			return nil, &domain.SeatTakenError{PerformanceID: s.PerformanceID, Row: s.Row, Seat: s.Seat}
		}
		requested[key] = true

		taken, err := tx.IsSeatTaken(ctx, s.PerformanceID, s.Row, s.Seat)
		if err != nil {
			return nil, err
		}

		if taken {
			return nil, &domain.SeatTakenError{PerformanceID: s.PerformanceID, Row: s.Row, Seat: s.Seat}
		}
	}

	reservation := &domain.Reservation{
		UserID:    userID,
		CreatedAt: time.Now().UTC(),
	}

	err = tx.CreateReservation(ctx, reservation)
	if err != nil {
		return nil, err
	}

	reservation.Tickets = make([]domain.Ticket, 0, len(seats))

	for _, s := range seats {
		ticket := domain.Ticket{
			Row:           s.Row,
			Seat:          s.Seat,
			ReservationID: reservation.ID,
			Performance:   performances[s.PerformanceID],
		}

		err := tx.CreateTicket(ctx, &ticket)
		if err != nil {
			return nil, err
		}

		reservation.Tickets = append(reservation.Tickets, ticket)
	}

	return reservation, nil
}

// lockPerformances locks each distinct performance of the request in ascending id order,
// so that two requests touching the same performances can never wait on each other in a cycle.
// Missing performances are left out of the result.
func lockPerformances(
	ctx context.Context,
	tx domain.BookingTx,
	seats []domain.SeatRequest) (map[int]*domain.Performance, error) {

	ids := make([]int, 0, len(seats))
	for _, s := range seats {
		ids = append(ids, s.PerformanceID)
	}

	slices.Sort(ids)
	ids = slices.Compact(ids)

	performances := make(map[int]*domain.Performance, len(ids))

	for _, id := range ids {
		performance, err := tx.LockPerformance(ctx, id)
		if err != nil {
			if errors.Is(err, domain.ErrRecordNotFound) {
				continue
			}

			return nil, err
		}

		performances[id] = performance
	}

	return performances, nil
}

func classify(err error) error {
	var (
		outOfBounds *domain.OutOfBoundsError
		taken       *domain.SeatTakenError
		notFound    *domain.PerformanceNotFoundError
		failed      *domain.BookingFailedError
	)

	switch {
	case errors.As(err, &outOfBounds), errors.As(err, &taken), errors.As(err, &notFound), errors.As(err, &failed):
		return err
	case errors.Is(err, domain.ErrEmptyRequest):
		return err
	default:
		return &domain.BookingFailedError{Err: err}
	}
}
