package app

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/lylakivan/theatre-api-service/api"
	"github.com/lylakivan/theatre-api-service/internal/domain"
)

func (app *Application) ListGenres(w http.ResponseWriter, r *http.Request) {
	genres, err := app.genreRepo.GetAll(r.Context())
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	resp := make([]api.Genre, len(genres))
	for i, g := range genres {
		resp[i] = toApiGenre(g)
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) CreateGenre(w http.ResponseWriter, r *http.Request) {
	var input api.CreateGenreRequest

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

	genre := domain.Genre{Name: input.Name}

	err = app.genreRepo.Create(r.Context(), &genre)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrDuplicateName):
			app.editConflictResponseWithErr(w, r, fmt.Errorf("genre %q already exists", input.Name))
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	err = app.writeJSON(w, http.StatusCreated, toApiGenre(genre), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) ListActors(w http.ResponseWriter, r *http.Request, params api.ListActorsParams) {
	err := app.validator.Struct(params)
	if err != nil {
		app.failedValidationResponse(w, r, err)
		return
	}

	actors, metadata, err := app.actorRepo.GetAll(r.Context(), toPagination(params.Page, params.PageSize))
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	resp := api.ActorListResponse{
		Actors:   make([]api.ActorSummary, len(actors)),
		Metadata: toApiMetadata(metadata),
	}

	for i, a := range actors {
		resp.Actors[i] = api.ActorSummary{
			Id:         a.ID,
			FullName:   a.FullName(),
			PlayTitles: nonNil(a.PlayTitles),
		}
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) GetActor(w http.ResponseWriter, r *http.Request, id int) {
	actor, err := app.actorRepo.GetById(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	resp := api.ActorDetail{
		Id:        actor.ID,
		FirstName: actor.FirstName,
		LastName:  actor.LastName,
		Plays:     make([]api.Play, len(actor.Plays)),
	}

	for i, p := range actor.Plays {
		resp.Plays[i] = toApiPlay(p)
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) CreateActor(w http.ResponseWriter, r *http.Request) {
	var input api.CreateActorRequest

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

	actor := domain.Actor{FirstName: input.FirstName, LastName: input.LastName}

	err = app.actorRepo.Create(r.Context(), &actor)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusCreated, toApiActor(actor), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) ListPlays(w http.ResponseWriter, r *http.Request, params api.ListPlaysParams) {
	err := app.validator.Struct(params)
	if err != nil {
		app.failedValidationResponse(w, r, err)
		return
	}

	filters := domain.PlayFilters{
		Pagination: toPagination(params.Page, params.PageSize),
	}

	if params.Title != nil {
		filters.Title = *params.Title
	}
	if params.Actors != nil {
		filters.ActorIDs = *params.Actors
	}
	if params.Genres != nil {
		filters.GenreIDs = *params.Genres
	}

	plays, metadata, err := app.playRepo.GetAll(r.Context(), filters)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	resp := api.PlayListResponse{
		Plays:    make([]api.Play, len(plays)),
		Metadata: toApiMetadata(metadata),
	}

	for i, p := range plays {
		resp.Plays[i] = toApiPlay(p)
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) GetPlay(w http.ResponseWriter, r *http.Request, id int) {
	play, err := app.playRepo.GetById(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	err = app.writeJSON(w, http.StatusOK, toApiPlay(*play), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) CreatePlay(w http.ResponseWriter, r *http.Request) {
	var input api.CreatePlayRequest

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

	play := domain.Play{
		Title:       input.Title,
		Description: valueOrEmpty(input.Description),
	}

	if input.ActorIds != nil {
		play.ActorIDs = *input.ActorIds
	}
	if input.GenreIds != nil {
		play.GenreIDs = *input.GenreIds
	}

	err = app.playRepo.Create(r.Context(), &play)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidReference):
			app.badRequestResponse(w, r, fmt.Errorf("unknown actor or genre id"))
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	err = app.writeJSON(w, http.StatusCreated, toApiPlay(play), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) ListTheatreHalls(w http.ResponseWriter, r *http.Request) {
	halls, err := app.hallRepo.GetAll(r.Context())
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	resp := make([]api.TheatreHall, len(halls))
	for i, h := range halls {
		resp[i] = toApiTheatreHall(h)
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) CreateTheatreHall(w http.ResponseWriter, r *http.Request) {
	var input api.CreateTheatreHallRequest

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

	hall := domain.TheatreHall{
		Name:       input.Name,
		Rows:       input.Rows,
		SeatsInRow: input.SeatsInRow,
	}

	err = app.hallRepo.Create(r.Context(), &hall)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrDuplicateName):
			app.editConflictResponseWithErr(w, r, fmt.Errorf("theatre hall %q already exists", input.Name))
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	err = app.writeJSON(w, http.StatusCreated, toApiTheatreHall(hall), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func toApiGenre(g domain.Genre) api.Genre {
	return api.Genre{Id: g.ID, Name: g.Name}
}

func toApiActor(a domain.Actor) api.Actor {
	return api.Actor{Id: a.ID, FirstName: a.FirstName, LastName: a.LastName}
}

func toApiPlay(p domain.Play) api.Play {
	play := api.Play{
		Id:          p.ID,
		Title:       p.Title,
		Description: p.Description,
		Actors:      make([]api.Actor, len(p.Actors)),
		Genres:      make([]api.Genre, len(p.Genres)),
	}

	for i, a := range p.Actors {
		play.Actors[i] = toApiActor(a)
	}

	for i, g := range p.Genres {
		play.Genres[i] = toApiGenre(g)
	}

	return play
}

func toApiTheatreHall(h domain.TheatreHall) api.TheatreHall {
	return api.TheatreHall{
		Id:         h.ID,
		Name:       h.Name,
		Rows:       h.Rows,
		SeatsInRow: h.SeatsInRow,
		Capacity:   h.Capacity(),
	}
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}

	return s
}
