package app

import (
	"errors"
	"net/http"

	"github.com/lylakivan/theatre-api-service/api"
	"github.com/lylakivan/theatre-api-service/internal/domain"
)

const (
	DefaultPage     = 1
	DefaultPageSize = 10
)

func (app *Application) CreateReservation(w http.ResponseWriter, r *http.Request) {
	logger := app.contextGetLogger(r)

	var input api.CreateReservationRequest

	err := app.readJSON(w, r, &input)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	err = app.validator.Struct(input)
	if err != nil {
		app.failedValidationResponse(w, r, err)
		return
	}

	seats := make([]domain.SeatRequest, len(input.Tickets))
	for i, t := range input.Tickets {
		seats[i] = domain.SeatRequest{PerformanceID: t.Performance, Row: t.Row, Seat: t.Seat}
	}

	user := app.contextGetUser(r)

	reservation, err := app.booker.Book(r.Context(), user.ID, seats)
	if err != nil {
		var (
			outOfBounds *domain.OutOfBoundsError
			taken       *domain.SeatTakenError
			notFound    *domain.PerformanceNotFoundError
		)

		switch {
		case errors.Is(err, domain.ErrEmptyRequest):
			app.validationErrorResponse(w, r, []api.ValidationError{{Field: "tickets", Issue: err.Error()}})
		case errors.As(err, &outOfBounds):
			app.seatOutOfBoundsResponse(w, r, outOfBounds)
		case errors.As(err, &taken):
			logger.Warn("reservation conflict", "performance_id", taken.PerformanceID, "row", taken.Row, "seat", taken.Seat)
			app.editConflictResponseWithErr(w, r, err)
		case errors.As(err, &notFound):
			app.notFoundResponseWithErr(w, r, err)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	logger.Info("reservation created", "reservation_id", reservation.ID, "tickets", len(reservation.Tickets))

	err = app.writeJSON(w, http.StatusCreated, toApiReservation(*reservation), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) ListReservations(w http.ResponseWriter, r *http.Request, params api.ListReservationsParams) {
	err := app.validator.Struct(params)
	if err != nil {
		app.failedValidationResponse(w, r, err)
		return
	}

	user := app.contextGetUser(r)
	pagination := toPagination(params.Page, params.PageSize)

	reservations, metadata, err := app.reservationRepo.GetByUserId(r.Context(), user.ID, pagination)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	resp := api.ReservationListResponse{
		Reservations: make([]api.Reservation, len(reservations)),
		Metadata:     toApiMetadata(metadata),
	}

	for i, reservation := range reservations {
		resp.Reservations[i] = toApiReservation(reservation)
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func toApiReservation(reservation domain.Reservation) api.Reservation {
	resp := api.Reservation{
		Id:        reservation.ID,
		CreatedAt: reservation.CreatedAt,
		Tickets:   make([]api.Ticket, len(reservation.Tickets)),
	}

	for i, t := range reservation.Tickets {
		ticket := api.Ticket{
			Id:   t.ID,
			Row:  t.Row,
			Seat: t.Seat,
		}

		if t.Performance != nil {
			ticket.Performance = &t.Performance.ID
			ticket.ShowTime = &t.Performance.ShowTime
			ticket.TheatreHallName = &t.Performance.Hall.Name
		}

		resp.Tickets[i] = ticket
	}

	return resp
}

func toPagination(page, pageSize *int) domain.Pagination {
	pagination := domain.Pagination{
		Page:     DefaultPage,
		PageSize: DefaultPageSize,
	}

	if page != nil {
		pagination.Page = *page
	}
	if pageSize != nil {
		pagination.PageSize = *pageSize
	}

	return pagination
}

func toApiMetadata(metadata *domain.Metadata) api.Metadata {
	return api.Metadata{
		CurrentPage:  metadata.CurrentPage,
		FirstPage:    metadata.FirstPage,
		LastPage:     metadata.LastPage,
		PageSize:     metadata.PageSize,
		TotalRecords: metadata.TotalRecords,
	}
}
