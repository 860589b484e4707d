package app

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/lylakivan/theatre-api-service/internal/domain"
)

type sessionKey string

const (
	SessionKeyUserId = sessionKey("userID")
)

func (s sessionKey) String() string {
	return string(s)
}

type contextKey string

const (
	userContextKey   = contextKey("user")
	claimsContextKey = contextKey("claims")
)

func (app *Application) contextSetUser(r *http.Request, user *domain.User) *http.Request {
	ctx := context.WithValue(r.Context(), userContextKey, user)
	return r.WithContext(ctx)
}

// contextGetUser returns the authenticated user, or nil for anonymous requests.
func (app *Application) contextGetUser(r *http.Request) *domain.User {
	user, _ := r.Context().Value(userContextKey).(*domain.User)
	return user
}

func (app *Application) contextSetClaims(r *http.Request, claims *domain.AccessClaims) *http.Request {
	ctx := context.WithValue(r.Context(), claimsContextKey, claims)
	return r.WithContext(ctx)
}

func (app *Application) contextGetClaims(r *http.Request) *domain.AccessClaims {
	claims, _ := r.Context().Value(claimsContextKey).(*domain.AccessClaims)
	return claims
}

func (app *Application) contextGetLogger(r *http.Request) *slog.Logger {
	logger := app.logger.With(
		"request_id", middleware.GetReqID(r.Context()),
		"method", r.Method,
		"path", r.URL.Path,
	)

	if user := app.contextGetUser(r); user != nil {
		logger = logger.With("user_id", user.ID)
	}

	return logger
}
