package mocks

import (
	"context"

	"github.com/lylakivan/theatre-api-service/internal/domain"
	"github.com/stretchr/testify/mock"
)

type MockPerformanceRepo struct {
	mock.Mock
	domain.PerformanceRepository
}

func (m *MockPerformanceRepo) GetAll(ctx context.Context, filters domain.PerformanceFilters) ([]domain.Performance, error) {
	args := m.Called(ctx, filters)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Performance), args.Error(1)
}

func (m *MockPerformanceRepo) GetById(ctx context.Context, id int) (*domain.Performance, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Performance), args.Error(1)
}

func (m *MockPerformanceRepo) Create(ctx context.Context, performance *domain.Performance) error {
	args := m.Called(ctx, performance)
	return args.Error(0)
}

func (m *MockPerformanceRepo) Delete(ctx context.Context, id int) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
