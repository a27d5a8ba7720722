package http

import (
	"errors"
	"net/http"

	"customerorder/internal/generated/servers"
	"customerorder/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// errorDetails overrides the detail text per error kind for one endpoint.
type errorDetails struct {
	invalid      map[string]string // keyed by errs.ValueIsInvalidError.ParamName
	notFound     string
	exists       string
	serverPrefix string
}

// statusFor maps an error kind onto an HTTP status.
func statusFor(err error) int {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errs.IsClientError(err):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func detailFor(err error, d errorDetails) string {
	var invalid *errs.ValueIsInvalidError
	switch {
	case errors.As(err, &invalid) && d.invalid[invalid.ParamName] != "":
		return d.invalid[invalid.ParamName]
	case errors.Is(err, errs.ErrObjectNotFound) && d.notFound != "":
		return d.notFound
	case errors.Is(err, errs.ErrObjectAlreadyExists) && d.exists != "":
		return d.exists
	case !errs.IsClientError(err):
		return d.serverPrefix + err.Error()
	default:
		return err.Error()
	}
}

func respondError(ctx echo.Context, err error, d errorDetails) error {
	return ctx.JSON(statusFor(err), servers.Detail{Detail: detailFor(err, d)})
}

// bindAndValidate decodes the JSON body into dst and runs the registered validator.
// Failures are returned as *echo.HTTPError and rendered by httpErrorHandler.
func bindAndValidate(ctx echo.Context, dst any) error {
	if err := ctx.Bind(dst); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body").SetInternal(err)
	}
	if err := ctx.Validate(dst); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error()).SetInternal(err)
	}
	return nil
}

// httpErrorHandler renders framework errors (unknown routes, bad methods) with the same body shape.
func httpErrorHandler(err error, ctx echo.Context) {
	if ctx.Response().Committed {
		return
	}

	status := http.StatusInternalServerError
	detail := err.Error()
	var he *echo.HTTPError
	if errors.As(err, &he) {
		status = he.Code
		if msg, ok := he.Message.(string); ok {
			detail = msg
		}
	}

	if ctx.Request().Method == http.MethodHead {
		_ = ctx.NoContent(status)
		return
	}
	_ = ctx.JSON(status, servers.Detail{Detail: detail})
}
