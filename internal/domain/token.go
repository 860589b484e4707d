package domain

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const tokenIssuer = "theatre-api-service"

type AccessToken struct {
	Plaintext string
	Expiry    time.Time
}

type AccessClaims struct {
	jwt.RegisteredClaims
	Staff bool `json:"staff"`
}

// UserID returns the subject of the token as a user id.
func (c AccessClaims) UserID() (int, error) {
	return strconv.Atoi(c.Subject)
}

func GenerateAccessToken(secret []byte, user *User, ttl time.Duration) (*AccessToken, error) {
	now := time.Now()
	expiry := now.Add(ttl)

	claims := AccessClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Issuer:    tokenIssuer,
			Subject:   strconv.Itoa(user.ID),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiry),
		},
		Staff: user.IsStaff,
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
	if err != nil {
		return nil, err
	}

	return &AccessToken{Plaintext: signed, Expiry: expiry}, nil
}

func ParseAccessToken(secret []byte, plaintext string) (*AccessClaims, error) {
	var claims AccessClaims

	_, err := jwt.ParseWithClaims(
		plaintext,
		&claims,
		func(t *jwt.Token) (any, error) {
			return secret, nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(tokenIssuer),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return nil, errors.Join(ErrInvalidCredentials, err)
	}

	if _, err := claims.UserID(); err != nil {
		return nil, fmt.Errorf("%w: malformed subject", ErrInvalidCredentials)
	}

	return &claims, nil
}
