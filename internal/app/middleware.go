package app

import (
	"errors"
	"fmt"
	"net/http"
	"slices"
	"strings"

	"github.com/lylakivan/theatre-api-service/api"
	"github.com/lylakivan/theatre-api-service/internal/domain"
)

const adminScope = "admin"

func (app *Application) recoverPanic(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if err := recover(); err != nil {
				w.Header().Set("Connection", "close")

				app.serverErrorResponse(w, r, fmt.Errorf("%s", err))
			}
		}()

		next.ServeHTTP(w, r)
	})
}

// authenticate resolves the caller from a Bearer access token or, failing that, from the
// session. Anonymous requests pass through; authorize decides whether they are allowed.
func (app *Application) authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Add("Vary", "Authorization")

		authorizationHeader := r.Header.Get("Authorization")
		if authorizationHeader != "" {
			app.authenticateBearer(w, r, next, authorizationHeader)
			return
		}

		userId := app.sessionManager.GetInt(r.Context(), SessionKeyUserId.String())
		if userId == 0 {
			next.ServeHTTP(w, r)
			return
		}

		user, err := app.userRepo.GetById(r.Context(), userId)
		if err != nil {
			switch {
			case errors.Is(err, domain.ErrRecordNotFound):
				app.contextGetLogger(r).Warn("session refers to a missing user", "user_id", userId)
				app.sessionManager.Remove(r.Context(), SessionKeyUserId.String())
				next.ServeHTTP(w, r)
			default:
				app.serverErrorResponse(w, r, err)
			}

			return
		}

		next.ServeHTTP(w, app.contextSetUser(r, user))
	})
}

func (app *Application) authenticateBearer(w http.ResponseWriter, r *http.Request, next http.Handler, header string) {
	scheme, token, found := strings.Cut(header, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") || token == "" {
		app.invalidAuthenticationTokenResponse(w, r)
		return
	}

	claims, err := domain.ParseAccessToken([]byte(app.config.JWT.Secret), token)
	if err != nil {
		app.contextGetLogger(r).Warn("rejected access token", "error", err)
		app.invalidAuthenticationTokenResponse(w, r)
		return
	}

	revoked, err := app.isTokenRevoked(r.Context(), claims.ID)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	if revoked {
		app.invalidAuthenticationTokenResponse(w, r)
		return
	}

	userId, _ := claims.UserID()

	user, err := app.userRepo.GetById(r.Context(), userId)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.invalidAuthenticationTokenResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	r = app.contextSetUser(r, user)
	r = app.contextSetClaims(r, claims)

	next.ServeHTTP(w, r)
}

// authorize enforces the security requirements the API router attaches to each operation.
// Operations without requirements are public; the admin scope requires a staff user.
func (app *Application) authorize(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		scopes, secured := requiredScopes(r)
		if !secured {
			next.ServeHTTP(w, r)
			return
		}

		user := app.contextGetUser(r)
		if user == nil {
			app.unauthorizedAccessResponse(w, r)
			return
		}

		if slices.Contains(scopes, adminScope) && !user.IsStaff {
			app.contextGetLogger(r).Warn("non-staff user attempted an admin operation")
			app.forbiddenResponse(w, r)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func requiredScopes(r *http.Request) ([]string, bool) {
	sessionScopes, sessionSecured := r.Context().Value(api.SessionAuthScopes).([]string)
	bearerScopes, bearerSecured := r.Context().Value(api.BearerAuthScopes).([]string)

	if !sessionSecured && !bearerSecured {
		return nil, false
	}

	return append(slices.Clone(sessionScopes), bearerScopes...), true
}
