package http

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"meddelivery/internal/core/domain/model/kernel"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

const actorContextKey = "actor"

var ErrTokenIsInvalid = errors.New("token is invalid")

// Claims identify the caller: the subject is the actor id, role one of
// customer, pharmacy or driver.
type Claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// TokenIssuer signs and verifies HS256 bearer tokens.
type TokenIssuer struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewTokenIssuer(secret string, ttl time.Duration) (*TokenIssuer, error) {
	if secret == "" {
		return nil, errors.New("jwt secret is empty")
	}
	return &TokenIssuer{secret: []byte(secret), ttl: ttl, now: time.Now}, nil
}

func (i *TokenIssuer) Issue(actor kernel.Actor) (string, error) {
	if err := actor.Validate(); err != nil {
		return "", err
	}

	now := i.now()
	claims := Claims{
		Role: actor.Role().String(),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   actor.ID().String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(i.ttl)),
		},
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(i.secret)
}

// Parse verifies the token and returns the actor it was issued for.
func (i *TokenIssuer) Parse(token string) (kernel.Actor, error) {
	var claims Claims
	_, err := jwt.ParseWithClaims(token, &claims, func(*jwt.Token) (any, error) {
		return i.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithTimeFunc(i.now))
	if err != nil {
		return kernel.Actor{}, errors.Join(ErrTokenIsInvalid, err)
	}

	id, err := kernel.UUIDFromString(claims.Subject)
	if err != nil {
		return kernel.Actor{}, errors.Join(ErrTokenIsInvalid, err)
	}
	role, err := kernel.ParseRole(claims.Role)
	if err != nil {
		return kernel.Actor{}, errors.Join(ErrTokenIsInvalid, err)
	}

	return kernel.NewActor(id, role)
}

// Authenticate rejects requests without a valid bearer token with 401 and
// stores the caller's actor in the echo context.
func Authenticate(issuer *TokenIssuer) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			header := ctx.Request().Header.Get(echo.HeaderAuthorization)
			token, found := strings.CutPrefix(header, "Bearer ")
			if !found || token == "" {
				return ctx.JSON(http.StatusUnauthorized, Error{
					Code:    http.StatusUnauthorized,
					Message: "Missing bearer token",
				})
			}

			actor, err := issuer.Parse(token)
			if err != nil {
				return ctx.JSON(http.StatusUnauthorized, Error{
					Code:    http.StatusUnauthorized,
					Message: "Invalid bearer token",
				})
			}

			ctx.Set(actorContextKey, actor)
			return next(ctx)
		}
	}
}

// actorFrom returns the actor stored by Authenticate.
func actorFrom(ctx echo.Context) (kernel.Actor, bool) {
	actor, ok := ctx.Get(actorContextKey).(kernel.Actor)
	return actor, ok
}
