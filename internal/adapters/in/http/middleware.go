package http

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"fieldservice/internal/core/domain/model/kernel"
	"fieldservice/internal/pkg/errs"
	"fieldservice/internal/pkg/logging"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/getkin/kin-openapi/openapi3filter"
	"github.com/getkin/kin-openapi/routers/legacy"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// AccountIDHeader carries the account the caller acts for. It is set by the
// authentication collaborator in front of the service.
const AccountIDHeader = "X-Account-ID"

const (
	accountIDKey = "account_id"
	apiPrefix    = "/api/"
)

// AccountScope resolves the account of every API request. Requests outside
// the API (health, swagger) pass through untouched.
func AccountScope() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			if !strings.HasPrefix(ctx.Request().URL.Path, apiPrefix) {
				return next(ctx)
			}

			raw := ctx.Request().Header.Get(AccountIDHeader)
			if raw == "" {
				return errs.NewValueIsRequiredError(AccountIDHeader)
			}
			id, err := kernel.UUIDFromString(raw)
			if err != nil {
				return errs.NewValueIsInvalidErrorWithCause(AccountIDHeader, err)
			}

			ctx.Set(accountIDKey, id)
			return next(ctx)
		}
	}
}

func accountID(ctx echo.Context) kernel.UUID {
	id, _ := ctx.Get(accountIDKey).(kernel.UUID)
	return id
}

// RequestValidator checks requests against the OpenAPI document before they
// reach a handler. Paths the document does not describe are left to echo.
func RequestValidator(swagger *openapi3.T) (echo.MiddlewareFunc, error) {
	swagger.Servers = nil
	router, err := legacy.NewRouter(swagger)
	if err != nil {
		return nil, fmt.Errorf("build openapi router: %w", err)
	}

	options := &openapi3filter.Options{
		AuthenticationFunc: openapi3filter.NoopAuthenticationFunc,
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			req := ctx.Request()
			route, pathParams, err := router.FindRoute(req)
			if err != nil {
				return next(ctx)
			}

			input := &openapi3filter.RequestValidationInput{
				Request:    req,
				PathParams: pathParams,
				Route:      route,
				Options:    options,
			}
			if err = openapi3filter.ValidateRequest(req.Context(), input); err != nil {
				return echo.NewHTTPError(http.StatusBadRequest, validationMessage(err))
			}
			return next(ctx)
		}
	}, nil
}

// validationMessage keeps the reason and the offending location, dropping the
// schema dump kin-openapi appends.
func validationMessage(err error) string {
	var schemaErr *openapi3.SchemaError
	if errors.As(err, &schemaErr) {
		if path := schemaErr.JSONPointer(); len(path) > 0 {
			return fmt.Sprintf("%s: %s", strings.Join(path, "."), schemaErr.Reason)
		}
		return schemaErr.Reason
	}

	var reqErr *openapi3filter.RequestError
	if errors.As(err, &reqErr) {
		switch {
		case reqErr.Parameter != nil && reqErr.Reason != "":
			return fmt.Sprintf("parameter %q: %s", reqErr.Parameter.Name, reqErr.Reason)
		case reqErr.Parameter != nil:
			return fmt.Sprintf("parameter %q: %v", reqErr.Parameter.Name, reqErr.Err)
		case reqErr.Reason != "":
			return reqErr.Reason
		}
	}
	return err.Error()
}

// AccessLog writes one structured entry per request once the response status is known.
func AccessLog(logger *zap.SugaredLogger) echo.MiddlewareFunc {
	logger = logging.Component(logger, "http")

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			start := time.Now()
			if err := next(ctx); err != nil {
				ctx.Error(err)
			}

			fields := []any{
				logging.FieldMethod, ctx.Request().Method,
				logging.FieldPath, ctx.Request().URL.Path,
				logging.FieldStatus, ctx.Response().Status,
				logging.FieldDurationMS, time.Since(start).Milliseconds(),
			}
			if id := accountID(ctx); !id.IsZero() {
				fields = append(fields, logging.FieldAccountID, id.String())
			}

			switch status := ctx.Response().Status; {
			case status >= http.StatusInternalServerError:
				logger.Errorw("request", fields...)
			case status >= http.StatusBadRequest:
				logger.Warnw("request", fields...)
			default:
				logger.Infow("request", fields...)
			}
			return nil
		}
	}
}
