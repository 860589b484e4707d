package integration_test

import (
	"io"
	"log/slog"
	"net/http"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lylakivan/theatre-api-service/internal/app"
	"github.com/lylakivan/theatre-api-service/internal/booking"
	"github.com/lylakivan/theatre-api-service/internal/repository"
	appvalidator "github.com/lylakivan/theatre-api-service/internal/validator"
	"github.com/redis/go-redis/v9"
)

type TestApp struct {
	App     *app.Application
	Handler http.Handler
	DB      *pgxpool.Pool
	Redis   *redis.Client
	Engine  *booking.Engine
}

func newTestApp(cfg app.Config) (*TestApp, error) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	validator := appvalidator.NewValidator()

	db, err := app.NewDatabasePool(cfg)
	if err != nil {
		return nil, err
	}

	redisClient, err := app.NewRedisClient(cfg)
	if err != nil {
		db.Close()
		return nil, err
	}

	sessionManager := app.NewSessionManager(redisClient)

	engine, err := booking.NewEngine(repository.NewPostgresBookingStore(db), logger)
	if err != nil {
		db.Close()
		redisClient.Close()
		return nil, err
	}

	application := app.NewApp(
		cfg,
		logger,
		db,
		redisClient,
		validator,
		sessionManager,
		repository.NewPostgresUserRepository(db),
		repository.NewPostgresGenreRepository(db),
		repository.NewPostgresActorRepository(db),
		repository.NewPostgresPlayRepository(db),
		repository.NewPostgresTheatreHallRepository(db),
		repository.NewPostgresPerformanceRepository(db),
		repository.NewPostgresReservationRepository(db),
		engine,
	)

	return &TestApp{
		App:     application,
		Handler: application.Routes(),
		DB:      db,
		Redis:   redisClient,
		Engine:  engine,
	}, nil
}

func (a *TestApp) Close() {
	a.DB.Close()
	a.Redis.Close()
}
