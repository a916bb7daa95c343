package http

import (
	"errors"
	"fmt"
	"net/http"

	"fieldservice/internal/generated/servers"
	"fieldservice/internal/pkg/errs"
	"fieldservice/internal/pkg/logging"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

var kindStatus = map[errs.Kind]int{
	errs.KindValidation:         http.StatusBadRequest,
	errs.KindNotFound:           http.StatusNotFound,
	errs.KindConflict:           http.StatusConflict,
	errs.KindTransactionFailure: http.StatusConflict,
	errs.KindTransactionTimeout: http.StatusGatewayTimeout,
	errs.KindInternal:           http.StatusInternalServerError,
}

// ErrorHandler renders every failure as servers.Error. Domain errors are
// classified with errs.KindOf; echo's own errors keep their status code.
// Internal errors are logged and their message is not exposed.
func ErrorHandler(logger *zap.SugaredLogger) echo.HTTPErrorHandler {
	logger = logging.Component(logger, "http")

	return func(err error, ctx echo.Context) {
		if ctx.Response().Committed {
			return
		}

		response := errorResponse(err)
		if response.Kind == servers.Internal {
			logger.Errorw("request failed",
				logging.FieldMethod, ctx.Request().Method,
				logging.FieldPath, ctx.Request().URL.Path,
				logging.FieldError, err,
			)
		}

		var writeErr error
		if ctx.Request().Method == http.MethodHead {
			writeErr = ctx.NoContent(response.Code)
		} else {
			writeErr = ctx.JSON(response.Code, response)
		}
		if writeErr != nil {
			logger.Warnw("failed to write error response", logging.FieldError, writeErr)
		}
	}
}

func errorResponse(err error) servers.Error {
	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		return servers.Error{
			Code:    httpErr.Code,
			Kind:    kindOfStatus(httpErr.Code),
			Message: fmt.Sprint(httpErr.Message),
		}
	}

	kind := errs.KindOf(err)
	response := servers.Error{
		Code:    kindStatus[kind],
		Kind:    servers.ErrorKind(kind.String()),
		Message: err.Error(),
	}
	if kind == errs.KindInternal {
		response.Message = http.StatusText(http.StatusInternalServerError)
	}
	return response
}

func kindOfStatus(status int) servers.ErrorKind {
	switch {
	case status == http.StatusNotFound:
		return servers.NotFound
	case status == http.StatusConflict:
		return servers.Conflict
	case status == http.StatusGatewayTimeout:
		return servers.TransactionTimeout
	case status < http.StatusInternalServerError:
		return servers.ValidationError
	default:
		return servers.Internal
	}
}
