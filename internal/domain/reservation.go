package domain

import (
	"context"
	"time"
)

type Reservation struct {
	ID        int
	UserID    int
	CreatedAt time.Time
	Tickets   []Ticket
}

type Ticket struct {
	ID            int
	Row           int
	Seat          int
	ReservationID int

	// Performance is nil once the performance has been deleted.
	Performance *Performance
}

// SeatRequest is one desired seat of a booking request.
type SeatRequest struct {
	PerformanceID int
	Row           int
	Seat          int
}

type ReservationRepository interface {
	GetByUserId(ctx context.Context, userId int, pagination Pagination) ([]Reservation, *Metadata, error)
}

// BookingStore runs booking work inside a single storage transaction. If fn returns
// an error, nothing written through the BookingTx is persisted. fn may be invoked
// more than once when the store retries a transient failure.
type BookingStore interface {
	InTx(ctx context.Context, fn func(tx BookingTx) error) error
}

type BookingTx interface {
	// LockPerformance resolves a performance with its hall and holds an exclusive
	// lock on it until the transaction ends. Returns ErrRecordNotFound if absent.
	LockPerformance(ctx context.Context, id int) (*Performance, error)
	IsSeatTaken(ctx context.Context, performanceID, row, seat int) (bool, error)
	CreateReservation(ctx context.Context, reservation *Reservation) error
	// CreateTicket returns a *SeatTakenError when storage rejects a duplicate seat.
	CreateTicket(ctx context.Context, ticket *Ticket) error
}
