package utils

import (
	"fmt"
	"strings"
	"time"

	"timeweave/core/config"
	"timeweave/core/errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// TokenClaims is the payload of a creator session token. Creators have no
// accounts; the ID is minted when the session is issued and identifies every
// meeting the same browser creates.
type TokenClaims struct {
	CreatorID uuid.UUID `json:"creator_id"`
	Scope     string    `json:"scope"`
	jwt.RegisteredClaims
}

func GenerateToken(creatorID uuid.UUID, scope string) (string, error) {
	cfg, ok := config.GetSafe()
	if !ok {
		return "", fmt.Errorf("config not initialized")
	}

	now := time.Now()
	claims := &TokenClaims{
		CreatorID: creatorID,
		Scope:     scope,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(cfg.JWT.AccessTTLHour) * time.Hour)),
			ID:        uuid.NewString(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(cfg.JWT.Secret))
}

func ValidateAndParseToken(tokenString string) (*TokenClaims, *errors.AppError) {
	cfg, ok := config.GetSafe()
	if !ok {
		return nil, errors.NewAppError(errors.ErrInternalServer, "config not initialized", nil)
	}

	claims := &TokenClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(cfg.JWT.Secret), nil
	})
	if err != nil {
		if strings.Contains(err.Error(), jwt.ErrTokenExpired.Error()) {
			return nil, errors.NewAppError(errors.ErrTokenExpired, "token has expired", err)
		}
		return nil, errors.NewAppError(errors.ErrInvalidTokenFormat, "invalid token", err)
	}
	if !token.Valid {
		return nil, errors.NewAppError(errors.ErrInvalidTokenFormat, "invalid token", nil)
	}

	return claims, nil
}

func GetTokenFromHeader(c echo.Context) (string, *errors.AppError) {
	header := c.Request().Header.Get(echo.HeaderAuthorization)
	if header == "" {
		return "", errors.NewAppError(errors.ErrMissingAuthorizationHeader, "missing Authorization header", nil)
	}

	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", errors.NewAppError(errors.ErrInvalidTokenFormat, "Authorization header must be a Bearer token", nil)
	}

	return strings.TrimSpace(parts[1]), nil
}
