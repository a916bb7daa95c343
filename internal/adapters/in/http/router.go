package http

import (
	"context"
	"net/http"

	"fieldservice/internal/adapters/in/http/docs"
	"fieldservice/internal/generated/servers"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.uber.org/zap"
)

// HealthCheck reports whether the service can reach its storage.
type HealthCheck func(ctx context.Context) error

// NewRouter wires the API, the Swagger UI and the health endpoint into one echo instance.
func NewRouter(server *Server, health HealthCheck, logger *zap.SugaredLogger) (*echo.Echo, error) {
	swagger, err := servers.GetSwagger()
	if err != nil {
		return nil, err
	}
	validator, err := RequestValidator(swagger)
	if err != nil {
		return nil, err
	}
	if err = docs.Register(); err != nil {
		return nil, err
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = ErrorHandler(logger)

	e.Use(middleware.Recover())
	e.Use(AccessLog(logger))
	e.Use(AccountScope())
	e.Use(validator)

	e.GET("/health", func(c echo.Context) error {
		if health != nil {
			if err := health(c.Request().Context()); err != nil {
				return c.String(http.StatusServiceUnavailable, "Unhealthy")
			}
		}
		return c.String(http.StatusOK, "Healthy")
	})
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	servers.RegisterHandlers(e, server)
	return e, nil
}
