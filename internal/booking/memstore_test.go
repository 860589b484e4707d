package booking

import (
	"context"
	"sync"

	"github.com/lylakivan/theatre-api-service/internal/domain"
)

// memStore is a BookingStore that serializes transactions behind one mutex and keeps
// writes staged until fn returns without error. The ticket uniqueness check in
// CreateTicket plays the role of the storage constraint.
type memStore struct {
	mu sync.Mutex

	performances map[int]domain.Performance
	reservations []domain.Reservation
	tickets      []domain.Ticket

	nextReservationID int
	nextTicketID      int

	// skipSeatCheck makes IsSeatTaken always report a free seat.
	skipSeatCheck bool
	ticketErr     error
}

func newMemStore(performances ...domain.Performance) *memStore {
	s := &memStore{performances: make(map[int]domain.Performance)}
	for _, p := range performances {
		s.performances[p.ID] = p
	}

	return s
}

func (s *memStore) InTx(ctx context.Context, fn func(tx domain.BookingTx) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx := &memTx{store: s}

	err := fn(tx)
	if err != nil {
		return err
	}

	s.reservations = append(s.reservations, tx.reservations...)
	s.tickets = append(s.tickets, tx.tickets...)

	return nil
}

func (s *memStore) ticketCount(performanceID, row, seat int) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	count := 0
	for _, t := range s.tickets {
		if occupies(t, performanceID, row, seat) {
			count++
		}
	}

	return count
}

// occupies reports whether t holds the seat. Tickets detached from a deleted
// performance hold nothing.
func occupies(t domain.Ticket, performanceID, row, seat int) bool {
	return t.Performance != nil && t.Performance.ID == performanceID && t.Row == row && t.Seat == seat
}

func (s *memStore) snapshot() ([]domain.Reservation, []domain.Ticket) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return append([]domain.Reservation(nil), s.reservations...), append([]domain.Ticket(nil), s.tickets...)
}

type memTx struct {
	store        *memStore
	reservations []domain.Reservation
	tickets      []domain.Ticket
}

func (tx *memTx) LockPerformance(ctx context.Context, id int) (*domain.Performance, error) {
	p, ok := tx.store.performances[id]
	if !ok {
		return nil, domain.ErrRecordNotFound
	}

	return &p, nil
}

func (tx *memTx) IsSeatTaken(ctx context.Context, performanceID, row, seat int) (bool, error) {
	if tx.store.skipSeatCheck {
		return false, nil
	}

	for _, t := range tx.store.tickets {
		if occupies(t, performanceID, row, seat) {
			return true, nil
		}
	}

	return false, nil
}

func (tx *memTx) CreateReservation(ctx context.Context, reservation *domain.Reservation) error {
	tx.store.nextReservationID++
	reservation.ID = tx.store.nextReservationID
	tx.reservations = append(tx.reservations, *reservation)

	return nil
}

func (tx *memTx) CreateTicket(ctx context.Context, ticket *domain.Ticket) error {
	if tx.store.ticketErr != nil {
		return tx.store.ticketErr
	}

	for _, t := range append(tx.store.tickets, tx.tickets...) {
		if occupies(t, ticket.Performance.ID, ticket.Row, ticket.Seat) {
			return &domain.SeatTakenError{PerformanceID: ticket.Performance.ID, Row: ticket.Row, Seat: ticket.Seat}
		}
	}

	tx.store.nextTicketID++
	ticket.ID = tx.store.nextTicketID
	tx.tickets = append(tx.tickets, *ticket)

	return nil
}
