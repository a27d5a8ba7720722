// Package http is the inbound HTTP adapter: the echo router, middleware and the handlers
// implementing servers.ServerInterface.
package http

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"customerorder/internal/generated/servers"
	"customerorder/internal/pkg/validation"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	echoSwagger "github.com/swaggo/echo-swagger"
)

// BasePath prefixes every API route.
const BasePath = "/api/v1"

// RouterConfig carries the transport settings.
type RouterConfig struct {
	AllowOrigins []string
	LogLevel     slog.Level

	// Health reports whether the record store is reachable. Nil means always healthy.
	Health func(ctx context.Context) error
}

// requestValidator adapts the shared go-playground validator to echo.
type requestValidator struct{}

func (requestValidator) Validate(i any) error {
	return validation.Struct(i)
}

// NewRouter builds the echo instance with middleware, API routes and documentation.
func NewRouter(server *Server, cfg RouterConfig, logger *slog.Logger) (*echo.Echo, error) {
	doc, err := servers.GetSwagger()
	if err != nil {
		return nil, err
	}
	docJSON, err := doc.MarshalJSON()
	if err != nil {
		return nil, fmt.Errorf("encode OpenAPI document: %w", err)
	}
	registerDocs(docJSON)

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Logger.SetLevel(gommonLevel(cfg.LogLevel))
	e.Validator = requestValidator{}
	e.HTTPErrorHandler = httpErrorHandler

	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{Generator: uuid.NewString}))
	e.Use(requestLogger(logger.With("component", "http")))
	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     cfg.AllowOrigins,
		AllowCredentials: true,
		AllowHeaders:     []string{"*"},
	}))

	e.GET("/", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"message": "Welcome to the Customer Order API"})
	})
	e.GET("/health", func(c echo.Context) error {
		if cfg.Health != nil {
			if err := cfg.Health(c.Request().Context()); err != nil {
				return c.String(http.StatusServiceUnavailable, "Unhealthy")
			}
		}
		return c.String(http.StatusOK, "Healthy")
	})
	e.GET(BasePath+"/openapi.json", func(c echo.Context) error {
		return c.JSONBlob(http.StatusOK, docJSON)
	})
	e.GET("/swagger/*", echoSwagger.EchoWrapHandler(echoSwagger.InstanceName(docsInstance)))

	servers.RegisterHandlersWithBaseURL(e, server, BasePath)
	return e, nil
}

func requestLogger(logger *slog.Logger) echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			attrs := []any{
				"method", v.Method,
				"uri", v.URI,
				"status", v.Status,
				"latency", v.Latency,
				"request_id", v.RequestID,
			}
			if v.Error != nil {
				logger.WarnContext(c.Request().Context(), "Request failed", append(attrs, "error", v.Error)...)
				return nil
			}
			logger.InfoContext(c.Request().Context(), "Request handled", attrs...)
			return nil
		},
	})
}

func gommonLevel(l slog.Level) log.Lvl {
	switch {
	case l <= slog.LevelDebug:
		return log.DEBUG
	case l <= slog.LevelInfo:
		return log.INFO
	case l <= slog.LevelWarn:
		return log.WARN
	default:
		return log.ERROR
	}
}
