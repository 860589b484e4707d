package domain

import (
	"context"
	"time"
)

type Actor struct {
	ID         int
	FirstName  string
	LastName   string
	PlayTitles []string
	Plays      []Play
}

func (a Actor) FullName() string {
	return a.FirstName + " " + a.LastName
}

type Genre struct {
	ID   int
	Name string
}

type Play struct {
	ID          int
	Title       string
	Description string
	Actors      []Actor
	Genres      []Genre
	ActorIDs    []int
	GenreIDs    []int
}

type TheatreHall struct {
	ID         int
	Name       string
	Rows       int
	SeatsInRow int
}

func (h TheatreHall) Capacity() int {
	return h.Rows * h.SeatsInRow
}

type Performance struct {
	ID       int
	Play     Play
	Hall     TheatreHall
	ShowTime time.Time

	// TicketCount is the number of tickets currently referencing the performance.
	TicketCount int
	TakenPlaces []Seat
}

// TicketsAvailable is the number of unbooked seats at the time TicketCount was read.
func (p Performance) TicketsAvailable() int {
	return AvailableSeats(p.Hall, p.TicketCount)
}

type PlayFilters struct {
	Pagination
	Title    string
	ActorIDs []int
	GenreIDs []int
}

type PerformanceFilters struct {
	PlayIDs []int
}

type GenreRepository interface {
	GetAll(ctx context.Context) ([]Genre, error)
	Create(ctx context.Context, genre *Genre) error
}

type ActorRepository interface {
	GetAll(ctx context.Context, pagination Pagination) ([]Actor, *Metadata, error)
	GetById(ctx context.Context, id int) (*Actor, error)
	Create(ctx context.Context, actor *Actor) error
}

type PlayRepository interface {
	GetAll(ctx context.Context, filters PlayFilters) ([]Play, *Metadata, error)
	GetById(ctx context.Context, id int) (*Play, error)
	Create(ctx context.Context, play *Play) error
}

type TheatreHallRepository interface {
	GetAll(ctx context.Context) ([]TheatreHall, error)
	Create(ctx context.Context, hall *TheatreHall) error
}

type PerformanceRepository interface {
	GetAll(ctx context.Context, filters PerformanceFilters) ([]Performance, error)
	GetById(ctx context.Context, id int) (*Performance, error)
	Create(ctx context.Context, performance *Performance) error
	Delete(ctx context.Context, id int) error
}
