package app

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/lylakivan/theatre-api-service/api"
	"github.com/lylakivan/theatre-api-service/internal/domain"
)

func (app *Application) ListPerformances(w http.ResponseWriter, r *http.Request, params api.ListPerformancesParams) {
	filters := domain.PerformanceFilters{}
	if params.Play != nil {
		filters.PlayIDs = *params.Play
	}

	performances, err := app.performanceRepo.GetAll(r.Context(), filters)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	resp := make([]api.PerformanceSummary, len(performances))
	for i, p := range performances {
		resp[i] = toPerformanceSummary(p)
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) GetPerformance(w http.ResponseWriter, r *http.Request, id int) {
	performance, err := app.performanceRepo.GetById(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	resp := api.PerformanceDetail{
		Id:               performance.ID,
		Play:             api.PlayRef{Id: performance.Play.ID, Title: performance.Play.Title},
		TheatreHallName:  performance.Hall.Name,
		Rows:             performance.Hall.Rows,
		SeatsInRow:       performance.Hall.SeatsInRow,
		ShowTime:         performance.ShowTime,
		TicketsAvailable: performance.TicketsAvailable(),
		TakenPlaces:      make([]api.TakenPlace, len(performance.TakenPlaces)),
	}

	for i, seat := range performance.TakenPlaces {
		resp.TakenPlaces[i] = api.TakenPlace{Row: seat.Row, Seat: seat.Number}
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) CreatePerformance(w http.ResponseWriter, r *http.Request) {
	var input api.CreatePerformanceRequest

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

	performance := domain.Performance{
		Play:     domain.Play{ID: input.PlayId},
		Hall:     domain.TheatreHall{ID: input.TheatreHallId},
		ShowTime: input.ShowTime,
	}

	err = app.performanceRepo.Create(r.Context(), &performance)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidReference):
			app.badRequestResponse(w, r, fmt.Errorf("unknown play or theatre hall id"))
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	err = app.writeJSON(w, http.StatusCreated, toPerformanceSummary(performance), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

// DeletePerformance removes the performance. Its tickets stay with their reservations but
// no longer reference a performance.
func (app *Application) DeletePerformance(w http.ResponseWriter, r *http.Request, id int) {
	err := app.performanceRepo.Delete(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	app.contextGetLogger(r).Info("performance deleted", "performance_id", id)

	w.WriteHeader(http.StatusNoContent)
}

func toPerformanceSummary(p domain.Performance) api.PerformanceSummary {
	return api.PerformanceSummary{
		Id:               p.ID,
		Play:             api.PlayRef{Id: p.Play.ID, Title: p.Play.Title},
		TheatreHallName:  p.Hall.Name,
		ShowTime:         p.ShowTime,
		TicketsAvailable: p.TicketsAvailable(),
	}
}
