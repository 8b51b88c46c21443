package http

import (
	"net/http"

	"meddelivery/internal/adapters/in/http/api"

	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"
)

// NewRouter wires the server behind authentication and request validation.
// /health and /swagger/* are public.
func NewRouter(server *Server, issuer *TokenIssuer) (*echo.Echo, error) {
	doc, err := api.Load()
	if err != nil {
		return nil, err
	}
	if err = api.RegisterSwagger(doc); err != nil {
		return nil, err
	}

	validate, err := ValidateRequests(doc)
	if err != nil {
		return nil, err
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = func(err error, ctx echo.Context) {
		if ctx.Response().Committed {
			return
		}
		_ = server.writeError(ctx, err)
	}

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	RegisterHandlers(e.Group(BasePath, Authenticate(issuer), validate), server)

	return e, nil
}
