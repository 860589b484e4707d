package mocks

import (
	"context"

	"github.com/lylakivan/theatre-api-service/internal/domain"
	"github.com/stretchr/testify/mock"
)

type MockReservationRepo struct {
	mock.Mock
	domain.ReservationRepository
}

func (m *MockReservationRepo) GetByUserId(
	ctx context.Context,
	userId int,
	pagination domain.Pagination) ([]domain.Reservation, *domain.Metadata, error) {

	args := m.Called(ctx, userId, pagination)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	return args.Get(0).([]domain.Reservation), args.Get(1).(*domain.Metadata), args.Error(2)
}
