package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/lylakivan/theatre-api-service/api"
	"github.com/lylakivan/theatre-api-service/internal/domain"
	"github.com/redis/go-redis/v9"
)

const revokedTokenKeyPrefix = "revoked_token:"

func (app *Application) RegisterUser(w http.ResponseWriter, r *http.Request) {
	logger := app.contextGetLogger(r)

	var input api.RegisterRequest

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

	user := domain.User{
		Email:     input.Email,
		FirstName: valueOrEmpty(input.FirstName),
		LastName:  valueOrEmpty(input.LastName),
	}

	err = user.Password.Set(input.Password)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	err = app.userRepo.Create(r.Context(), &user)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrUserAlreadyExists):
			logger.Warn("registration attempt for existing email")
			// do not return the info of existence of email to avoid user enumeration attacks
			app.badRequestResponse(w, r, fmt.Errorf("invalid input data"))
		default:
			logger.Error("failed to create user", "error", err)
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	err = app.writeJSON(w, http.StatusCreated, toUserResponse(&user), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) Login(w http.ResponseWriter, r *http.Request) {
	user, ok := app.checkCredentials(w, r)
	if !ok {
		return
	}

	// To help prevent session fixation attacks we should renew the session token after any privilege level change.
	// https://github.com/OWASP/CheatSheetSeries/blob/master/cheatsheets/Session_Management_Cheat_Sheet.md#renew-the-session-id-after-any-privilege-level-change
	err := app.sessionManager.RenewToken(r.Context())
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	app.sessionManager.Put(r.Context(), SessionKeyUserId.String(), user.ID)

	w.WriteHeader(http.StatusNoContent)
}

func (app *Application) CreateToken(w http.ResponseWriter, r *http.Request) {
	user, ok := app.checkCredentials(w, r)
	if !ok {
		return
	}

	token, err := domain.GenerateAccessToken([]byte(app.config.JWT.Secret), user, app.config.JWT.TTL)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	resp := api.TokenResponse{
		AccessToken: token.Plaintext,
		TokenType:   "Bearer",
		ExpiresAt:   token.Expiry,
	}

	err = app.writeJSON(w, http.StatusCreated, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

// Logout ends the session and, for Bearer callers, revokes the presented access token.
func (app *Application) Logout(w http.ResponseWriter, r *http.Request) {
	if claims := app.contextGetClaims(r); claims != nil {
		err := app.revokeToken(r.Context(), claims)
		if err != nil {
			app.serverErrorResponse(w, r, err)
			return
		}
	}

	err := app.sessionManager.Destroy(r.Context())
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (app *Application) checkCredentials(w http.ResponseWriter, r *http.Request) (*domain.User, bool) {
	logger := app.contextGetLogger(r)

	var input api.LoginRequest

	err := app.readJSON(w, r, &input)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return nil, false
	}

	err = app.validator.Struct(input)
	if err != nil {
		logger.Warn("login validation failed")
		app.invalidCredentialsResponse(w, r)
		return nil, false
	}

	user, err := app.userRepo.GetByEmail(r.Context(), input.Email)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			logger.Warn("login attempt for non-existent user")
			app.invalidCredentialsResponse(w, r)
		default:
			logger.Error("failed to get user by email during login", "error", err)
			app.serverErrorResponse(w, r, err)
		}

		return nil, false
	}

	match, err := user.Password.Matches(input.Password)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return nil, false
	}

	if !match {
		logger.Warn("login failed due to incorrect password")
		app.invalidCredentialsResponse(w, r)
		return nil, false
	}

	return user, true
}

func (app *Application) revokeToken(ctx context.Context, claims *domain.AccessClaims) error {
	ttl := time.Until(claims.ExpiresAt.Time)
	if ttl <= 0 {
		return nil
	}

	return app.redis.Set(ctx, revokedTokenKeyPrefix+claims.ID, 1, ttl).Err()
}

func (app *Application) isTokenRevoked(ctx context.Context, tokenId string) (bool, error) {
	_, err := app.redis.Get(ctx, revokedTokenKeyPrefix+tokenId).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil
		}

		return false, err
	}

	return true, nil
}

func valueOrEmpty(s *string) string {
	if s == nil {
		return ""
	}

	return *s
}
