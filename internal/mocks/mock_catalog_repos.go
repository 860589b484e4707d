package mocks

import (
	"context"

	"github.com/lylakivan/theatre-api-service/internal/domain"
	"github.com/stretchr/testify/mock"
)

type MockGenreRepo struct {
	mock.Mock
	domain.GenreRepository
}

func (m *MockGenreRepo) GetAll(ctx context.Context) ([]domain.Genre, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Genre), args.Error(1)
}

func (m *MockGenreRepo) Create(ctx context.Context, genre *domain.Genre) error {
	args := m.Called(ctx, genre)
	return args.Error(0)
}

type MockActorRepo struct {
	mock.Mock
	domain.ActorRepository
}

func (m *MockActorRepo) GetAll(
	ctx context.Context,
	pagination domain.Pagination) ([]domain.Actor, *domain.Metadata, error) {

	args := m.Called(ctx, pagination)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	return args.Get(0).([]domain.Actor), args.Get(1).(*domain.Metadata), args.Error(2)
}

func (m *MockActorRepo) GetById(ctx context.Context, id int) (*domain.Actor, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Actor), args.Error(1)
}

func (m *MockActorRepo) Create(ctx context.Context, actor *domain.Actor) error {
	args := m.Called(ctx, actor)
	return args.Error(0)
}

type MockPlayRepo struct {
	mock.Mock
	domain.PlayRepository
}

func (m *MockPlayRepo) GetAll(
	ctx context.Context,
	filters domain.PlayFilters) ([]domain.Play, *domain.Metadata, error) {

	args := m.Called(ctx, filters)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	return args.Get(0).([]domain.Play), args.Get(1).(*domain.Metadata), args.Error(2)
}

func (m *MockPlayRepo) GetById(ctx context.Context, id int) (*domain.Play, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Play), args.Error(1)
}

func (m *MockPlayRepo) Create(ctx context.Context, play *domain.Play) error {
	args := m.Called(ctx, play)
	return args.Error(0)
}

type MockTheatreHallRepo struct {
	mock.Mock
	domain.TheatreHallRepository
}

func (m *MockTheatreHallRepo) GetAll(ctx context.Context) ([]domain.TheatreHall, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.TheatreHall), args.Error(1)
}

func (m *MockTheatreHallRepo) Create(ctx context.Context, hall *domain.TheatreHall) error {
	args := m.Called(ctx, hall)
	return args.Error(0)
}
