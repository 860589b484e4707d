package mocks

import (
	"context"

	"github.com/lylakivan/theatre-api-service/internal/domain"
	"github.com/stretchr/testify/mock"
)

type MockBooker struct {
	mock.Mock
}

func (m *MockBooker) Book(ctx context.Context, userID int, seats []domain.SeatRequest) (*domain.Reservation, error) {
	args := m.Called(ctx, userID, seats)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Reservation), args.Error(1)
}
