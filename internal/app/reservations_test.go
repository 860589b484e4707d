package app

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/lylakivan/theatre-api-service/api"
	"github.com/lylakivan/theatre-api-service/internal/domain"
	"github.com/lylakivan/theatre-api-service/internal/mocks"
	"github.com/lylakivan/theatre-api-service/internal/validator"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type ReservationsTestSuite struct {
	suite.Suite
	app             *Application
	booker          *mocks.MockBooker
	reservationRepo *mocks.MockReservationRepo
}

func (s *ReservationsTestSuite) SetupTest() {
	s.booker = new(mocks.MockBooker)
	s.reservationRepo = new(mocks.MockReservationRepo)
	s.app = newTestApplication(func(a *Application) {
		a.booker = s.booker
		a.reservationRepo = s.reservationRepo
	})
}

func TestReservationsSuite(t *testing.T) {
	suite.Run(t, new(ReservationsTestSuite))
}

func (s *ReservationsTestSuite) TestCreateReservation() {
	showTime := time.Date(2024, 5, 10, 19, 30, 0, 0, time.UTC)
	createdAt := time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)
	performance := &domain.Performance{
		ID:       3,
		ShowTime: showTime,
		Hall:     domain.TheatreHall{ID: 1, Name: "Blue", Rows: 10, SeatsInRow: 12},
	}

	tooManyTickets := api.CreateReservationRequest{Tickets: make([]api.TicketRequest, 51)}
	for i := range tooManyTickets.Tickets {
		tooManyTickets.Tickets[i] = api.TicketRequest{Performance: 3, Row: i/12 + 1, Seat: i%12 + 1}
	}

	tests := []struct {
		name             string
		body             any
		setupMock        func()
		wantStatus       int
		wantErrMessage   string
		wantFieldErrors  map[string][]string
		wantResponse     *api.Reservation
		skipBookerAssert bool
	}{
		{
			name: "successful reservation",
			body: api.CreateReservationRequest{Tickets: []api.TicketRequest{
				{Performance: 3, Row: 1, Seat: 2},
				{Performance: 3, Row: 1, Seat: 3},
			}},
			setupMock: func() {
				s.booker.On("Book", mock.Anything, 7, []domain.SeatRequest{
					{PerformanceID: 3, Row: 1, Seat: 2},
					{PerformanceID: 3, Row: 1, Seat: 3},
				}).Return(&domain.Reservation{
					ID:        11,
					UserID:    7,
					CreatedAt: createdAt,
					Tickets: []domain.Ticket{
						{ID: 21, Row: 1, Seat: 2, ReservationID: 11, Performance: performance},
						{ID: 22, Row: 1, Seat: 3, ReservationID: 11, Performance: performance},
					},
				}, nil)
			},
			wantStatus: http.StatusCreated,
			wantResponse: &api.Reservation{
				Id:        11,
				CreatedAt: createdAt,
				Tickets: []api.Ticket{
					{Id: 21, Row: 1, Seat: 2, Performance: ptr(3), ShowTime: ptr(showTime), TheatreHallName: ptr("Blue")},
					{Id: 22, Row: 1, Seat: 3, Performance: ptr(3), ShowTime: ptr(showTime), TheatreHallName: ptr("Blue")},
				},
			},
		},
		{
			name: "empty ticket list",
			body: api.CreateReservationRequest{Tickets: []api.TicketRequest{}},
			setupMock: func() {
				s.booker.On("Book", mock.Anything, 7, []domain.SeatRequest{}).Return(nil, domain.ErrEmptyRequest)
			},
			wantStatus:     http.StatusUnprocessableEntity,
			wantErrMessage: domain.ErrEmptyRequest.Error(),
		},
		{
			name: "row out of bounds",
			body: api.CreateReservationRequest{Tickets: []api.TicketRequest{{Performance: 3, Row: 11, Seat: 1}}},
			setupMock: func() {
				s.booker.On("Book", mock.Anything, 7, mock.Anything).
					Return(nil, &domain.OutOfBoundsError{Dimension: "row", Value: 11, Min: 1, Max: 10})
			},
			wantStatus:     http.StatusBadRequest,
			wantErrMessage: "row number must be in available range: (1, 10)",
			wantFieldErrors: map[string][]string{
				"row": {"row number must be in available range: (1, 10)"},
			},
		},
		{
			name: "seat out of bounds",
			body: api.CreateReservationRequest{Tickets: []api.TicketRequest{{Performance: 3, Row: 1, Seat: 0}}},
			setupMock: func() {
				s.booker.On("Book", mock.Anything, 7, mock.Anything).
					Return(nil, &domain.OutOfBoundsError{Dimension: "seat", Value: 0, Min: 1, Max: 12})
			},
			wantStatus:     http.StatusBadRequest,
			wantErrMessage: "seat number must be in available range: (1, 12)",
			wantFieldErrors: map[string][]string{
				"seat": {"seat number must be in available range: (1, 12)"},
			},
		},
		{
			name: "seat already taken",
			body: api.CreateReservationRequest{Tickets: []api.TicketRequest{{Performance: 3, Row: 1, Seat: 2}}},
			setupMock: func() {
				s.booker.On("Book", mock.Anything, 7, mock.Anything).
					Return(nil, &domain.SeatTakenError{PerformanceID: 3, Row: 1, Seat: 2})
			},
			wantStatus:     http.StatusConflict,
			wantErrMessage: "seat (row 1, seat 2) is already taken for performance 3",
		},
		{
			name: "unknown performance",
			body: api.CreateReservationRequest{Tickets: []api.TicketRequest{{Performance: 99, Row: 1, Seat: 1}}},
			setupMock: func() {
				s.booker.On("Book", mock.Anything, 7, mock.Anything).
					Return(nil, &domain.PerformanceNotFoundError{PerformanceID: 99})
			},
			wantStatus:     http.StatusNotFound,
			wantErrMessage: "performance 99 not found",
		},
		{
			name: "storage failure",
			body: api.CreateReservationRequest{Tickets: []api.TicketRequest{{Performance: 3, Row: 1, Seat: 1}}},
			setupMock: func() {
				s.booker.On("Book", mock.Anything, 7, mock.Anything).
					Return(nil, &domain.BookingFailedError{Err: context.DeadlineExceeded})
			},
			wantStatus:     http.StatusInternalServerError,
			wantErrMessage: ErrInternalServer,
		},
		{
			name:             "too many tickets",
			body:             tooManyTickets,
			wantStatus:       http.StatusUnprocessableEntity,
			wantErrMessage:   "must contain at most 50 items",
			skipBookerAssert: true,
		},
		{
			name:             "malformed body",
			body:             `{"tickets": [`,
			wantStatus:       http.StatusBadRequest,
			wantErrMessage:   "body contains badly-formed JSON",
			skipBookerAssert: true,
		},
		{
			name:             "unknown field",
			body:             `{"seats": []}`,
			wantStatus:       http.StatusBadRequest,
			wantErrMessage:   `body contains unknown key "seats"`,
			skipBookerAssert: true,
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			s.SetupTest()

			if tt.setupMock != nil {
				tt.setupMock()
			}

			w, r := executeRequest(s.T(), http.MethodPost, "/reservations", tt.body)
			r = s.app.contextSetUser(r, testUser(7, false))

			s.app.CreateReservation(w, r)

			s.Equal(tt.wantStatus, w.Code)

			if !tt.skipBookerAssert {
				s.booker.AssertExpectations(s.T())
			} else {
				s.booker.AssertNotCalled(s.T(), "Book", mock.Anything, mock.Anything, mock.Anything)
			}

			if tt.wantResponse != nil {
				var response api.Reservation
				err := json.NewDecoder(w.Body).Decode(&response)
				s.Require().NoError(err, "Failed to decode response")

				diff := cmp.Diff(tt.wantResponse, &response)
				s.Empty(diff, "Response mismatch (-want +got):\n%s", diff)
				return
			}

			if tt.wantFieldErrors != nil {
				var response api.ErrorResponse
				err := json.NewDecoder(w.Body).Decode(&response)
				s.Require().NoError(err)
				s.Require().NotNil(response.FieldErrors)
				s.Equal(tt.wantFieldErrors, *response.FieldErrors)
				s.Equal(tt.wantErrMessage, response.Message)
				return
			}

			checkErrorResponse(s.T(), w, struct {
				wantStatus     int
				wantErrMessage string
			}{
				wantStatus:     tt.wantStatus,
				wantErrMessage: tt.wantErrMessage,
			})
		})
	}
}

func (s *ReservationsTestSuite) TestListReservationsWithDetachedTickets() {
	createdAt := time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)

	s.reservationRepo.On("GetByUserId", mock.Anything, 7, domain.Pagination{Page: 1, PageSize: 10}).Return(
		[]domain.Reservation{
			{
				ID:        4,
				UserID:    7,
				CreatedAt: createdAt,
				Tickets:   []domain.Ticket{{ID: 8, Row: 2, Seat: 5, ReservationID: 4}},
			},
		},
		&domain.Metadata{CurrentPage: 1, FirstPage: 1, LastPage: 1, PageSize: 10, TotalRecords: 1},
		nil,
	)

	w, r := executeRequest(s.T(), http.MethodGet, "/reservations", nil)
	r = s.app.contextSetUser(r, testUser(7, false))

	s.app.ListReservations(w, r, api.ListReservationsParams{})

	s.Equal(http.StatusOK, w.Code)

	var response api.ReservationListResponse
	s.Require().NoError(json.NewDecoder(w.Body).Decode(&response))
	s.Require().Len(response.Reservations, 1)

	ticket := response.Reservations[0].Tickets[0]
	s.Nil(ticket.Performance)
	s.Nil(ticket.ShowTime)
	s.Equal(2, ticket.Row)
	s.Equal(5, ticket.Seat)
}

func (s *ReservationsTestSuite) TestListReservations() {
	createdAt := time.Date(2024, 3, 10, 10, 0, 0, 0, time.UTC)
	showTime := time.Date(2024, 3, 15, 19, 0, 0, 0, time.UTC)

	tests := []struct {
		name           string
		params         api.ListReservationsParams
		setupMock      func()
		wantStatus     int
		wantErrMessage string
		wantResponse   *api.ReservationListResponse
	}{
		{
			name:           "invalid page number",
			params:         api.ListReservationsParams{Page: ptr(0), PageSize: ptr(10)},
			wantStatus:     http.StatusUnprocessableEntity,
			wantErrMessage: fmt.Sprintf(validator.ErrMinValue, "1"),
		},
		{
			name:           "page size too large",
			params:         api.ListReservationsParams{Page: ptr(1), PageSize: ptr(101)},
			wantStatus:     http.StatusUnprocessableEntity,
			wantErrMessage: fmt.Sprintf(validator.ErrMaxValue, "100"),
		},
		{
			name:   "database error",
			params: api.ListReservationsParams{Page: ptr(1), PageSize: ptr(10)},
			setupMock: func() {
				s.reservationRepo.On("GetByUserId", mock.Anything, 1, domain.Pagination{
					Page:     1,
					PageSize: 10,
				}).Return(nil, nil, fmt.Errorf("database error"))
			},
			wantStatus:     http.StatusInternalServerError,
			wantErrMessage: ErrInternalServer,
		},
		{
			name:   "successful retrieval",
			params: api.ListReservationsParams{Page: ptr(2), PageSize: ptr(1)},
			setupMock: func() {
				s.reservationRepo.On("GetByUserId", mock.Anything, 1, domain.Pagination{
					Page:     2,
					PageSize: 1,
				}).Return(
					[]domain.Reservation{
						{
							ID:        5,
							UserID:    1,
							CreatedAt: createdAt,
							Tickets: []domain.Ticket{
								{
									ID:            9,
									Row:           4,
									Seat:          7,
									ReservationID: 5,
									Performance: &domain.Performance{
										ID:       2,
										ShowTime: showTime,
										Hall:     domain.TheatreHall{ID: 1, Name: "Red"},
									},
								},
							},
						},
					},
					&domain.Metadata{CurrentPage: 2, FirstPage: 1, LastPage: 2, PageSize: 1, TotalRecords: 2},
					nil,
				)
			},
			wantStatus: http.StatusOK,
			wantResponse: &api.ReservationListResponse{
				Reservations: []api.Reservation{
					{
						Id:        5,
						CreatedAt: createdAt,
						Tickets: []api.Ticket{
							{Id: 9, Row: 4, Seat: 7, Performance: ptr(2), ShowTime: ptr(showTime), TheatreHallName: ptr("Red")},
						},
					},
				},
				Metadata: api.Metadata{CurrentPage: 2, FirstPage: 1, LastPage: 2, PageSize: 1, TotalRecords: 2},
			},
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			s.SetupTest()

			defer s.reservationRepo.AssertExpectations(s.T())

			if tt.setupMock != nil {
				tt.setupMock()
			}

			w, r := executeRequest(s.T(), http.MethodGet, "/reservations", nil)
			r = s.app.contextSetUser(r, testUser(1, false))

			s.app.ListReservations(w, r, tt.params)

			s.Equal(tt.wantStatus, w.Code)

			if tt.wantResponse != nil {
				var response api.ReservationListResponse
				err := json.NewDecoder(w.Body).Decode(&response)
				s.Require().NoError(err, "Failed to decode response")

				diff := cmp.Diff(tt.wantResponse, &response)
				s.Empty(diff, "Response mismatch (-want +got):\n%s", diff)
			}

			checkErrorResponse(s.T(), w, struct {
				wantStatus     int
				wantErrMessage string
			}{
				wantStatus:     tt.wantStatus,
				wantErrMessage: tt.wantErrMessage,
			})
		})
	}
}
