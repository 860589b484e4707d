package integration_test

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lylakivan/theatre-api-service/internal/domain"
	"github.com/stretchr/testify/require"
)

var keysToIgnore = map[string]struct{}{
	"timestamp": {},
	"requestId": {},
	"createdAt": {},
	"expiresAt": {},
	"showTime":  {},
}

func prepareRequest(method, path string, body io.Reader, headers map[string]string, cookies []*http.Cookie) *http.Request {
	req := httptest.NewRequest(method, path, body)

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	for _, c := range cookies {
		req.AddCookie(c)
	}

	return req
}

// compareResponse compares JSON bodies while ignoring nondeterministic fields at any depth.
func compareResponse(t testing.TB, body io.Reader, expectedResponse string) {
	t.Helper()

	var actual any
	require.NoError(t, json.NewDecoder(body).Decode(&actual))
	cleanValue(actual)

	var expected any
	require.NoError(t, json.Unmarshal([]byte(expectedResponse), &expected))
	cleanValue(expected)

	if diff := cmp.Diff(expected, actual); diff != "" {
		t.Errorf("response mismatch (-want +got):\n%s", diff)
	}
}

func cleanValue(v any) {
	switch v := v.(type) {
	case map[string]any:
		for k, nested := range v {
			if _, ok := keysToIgnore[k]; ok {
				delete(v, k)
				continue
			}
			cleanValue(nested)
		}
	case []any:
		for _, nested := range v {
			cleanValue(nested)
		}
	}
}

func truncateAll(t testing.TB, db *pgxpool.Pool) {
	t.Helper()

	_, err := db.Exec(context.Background(), `
		TRUNCATE users, genres, actors, plays, play_actors, play_genres,
			theatre_halls, performances, reservations, tickets
		RESTART IDENTITY CASCADE`)
	require.NoError(t, err)
}

func insertTestUser(t testing.TB, db *pgxpool.Pool, email string, staff bool) int {
	t.Helper()

	user := domain.User{Email: email, FirstName: TestUserFirstName, LastName: TestUserLastName}
	require.NoError(t, user.Password.Set(TestUserPassword))

	var id int
	err := db.QueryRow(context.Background(), `
		INSERT INTO users (email, first_name, last_name, password_hash, is_staff)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`,
		user.Email, user.FirstName, user.LastName, user.Password.Hash, staff,
	).Scan(&id)
	require.NoError(t, err)

	return id
}

func insertHall(t testing.TB, db *pgxpool.Pool, name string, rows, seatsInRow int) int {
	t.Helper()

	var id int
	err := db.QueryRow(context.Background(),
		`INSERT INTO theatre_halls (name, rows, seats_in_row) VALUES ($1, $2, $3) RETURNING id`,
		name, rows, seatsInRow,
	).Scan(&id)
	require.NoError(t, err)

	return id
}

func insertPlay(t testing.TB, db *pgxpool.Pool, title string) int {
	t.Helper()

	var id int
	err := db.QueryRow(context.Background(),
		`INSERT INTO plays (title, description) VALUES ($1, $2) RETURNING id`,
		title, "A play in five acts.",
	).Scan(&id)
	require.NoError(t, err)

	return id
}

func insertPerformance(t testing.TB, db *pgxpool.Pool, playId, hallId int, showTime time.Time) int {
	t.Helper()

	var id int
	err := db.QueryRow(context.Background(),
		`INSERT INTO performances (play_id, theatre_hall_id, show_time) VALUES ($1, $2, $3) RETURNING id`,
		playId, hallId, showTime,
	).Scan(&id)
	require.NoError(t, err)

	return id
}

func insertReservation(t testing.TB, db *pgxpool.Pool, userId int, createdAt time.Time) int {
	t.Helper()

	var id int
	err := db.QueryRow(context.Background(),
		`INSERT INTO reservations (user_id, created_at) VALUES ($1, $2) RETURNING id`,
		userId, createdAt,
	).Scan(&id)
	require.NoError(t, err)

	return id
}

func insertTicket(t testing.TB, db *pgxpool.Pool, reservationId, performanceId, row, seat int) {
	t.Helper()

	_, err := db.Exec(context.Background(),
		`INSERT INTO tickets (seat_row, seat_number, performance_id, reservation_id) VALUES ($1, $2, $3, $4)`,
		row, seat, performanceId, reservationId,
	)
	require.NoError(t, err)
}

// seedPerformance creates the main stage hall, the default play and one performance of it.
func seedPerformance(t testing.TB, db *pgxpool.Pool) int {
	t.Helper()

	hallId := insertHall(t, db, TestHallName, TestHallRows, TestHallSeatsInRow)
	playId := insertPlay(t, db, TestPlayTitle)

	return insertPerformance(t, db, playId, hallId, TestShowTime)
}

func countRows(t testing.TB, db *pgxpool.Pool, query string, args ...any) int {
	t.Helper()

	var n int
	require.NoError(t, db.QueryRow(context.Background(), query, args...).Scan(&n))

	return n
}

func credentialsBody(email string) io.Reader {
	return strings.NewReader(fmt.Sprintf(`{"email": %q, "password": %q}`, email, TestUserPassword))
}

// sessionCookies logs the user in through the API and returns the session cookie.
func (a *TestApp) sessionCookies(t testing.TB, email string) []*http.Cookie {
	t.Helper()

	rec := httptest.NewRecorder()
	a.Handler.ServeHTTP(rec, prepareRequest(http.MethodPost, "/users/login", credentialsBody(email), nil, nil))

	res := rec.Result()
	require.Equal(t, http.StatusNoContent, res.StatusCode)
	require.NotEmpty(t, res.Cookies())

	return res.Cookies()
}

// bearerHeaders obtains an access token through the API.
func (a *TestApp) bearerHeaders(t testing.TB, email string) map[string]string {
	t.Helper()

	rec := httptest.NewRecorder()
	a.Handler.ServeHTTP(rec, prepareRequest(http.MethodPost, "/users/token", credentialsBody(email), nil, nil))
	require.Equal(t, http.StatusCreated, rec.Code)

	var resp struct {
		AccessToken string `json:"accessToken"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))

	return map[string]string{"Authorization": "Bearer " + resp.AccessToken}
}
