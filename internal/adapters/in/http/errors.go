package http

import (
	"errors"
	"net/http"

	"packtrack/internal/core/application/usecases/commands"
	"packtrack/internal/core/domain/model/order"
	"packtrack/internal/pkg/auth"
	"packtrack/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// writeError maps application errors onto HTTP status codes and renders the
// JSON error envelope. Unclassified errors become a generic 500: the detail
// goes to the log, never to the client.
func (s *Server) writeError(ctx echo.Context, err error) error {
	code := http.StatusInternalServerError
	message := "internal server error"

	switch {
	case errors.Is(err, commands.ErrInvalidCredentials),
		errors.Is(err, auth.ErrInvalidToken):
		code = http.StatusUnauthorized
		message = err.Error()

	case errors.Is(err, errs.ErrObjectNotFound):
		code = http.StatusNotFound
		message = err.Error()

	case errors.Is(err, errs.ErrConflict):
		code = http.StatusConflict
		message = err.Error()

	case isDomainRuleViolation(err),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		code = http.StatusBadRequest
		message = err.Error()

	default:
		s.logger.Error("request failed", "path", ctx.Path(), "error", err)
	}

	return ctx.JSON(code, Error{Code: code, Message: message})
}

// isDomainRuleViolation classifies lifecycle rule violations, all of which
// are the caller's fault and map to 400.
func isDomainRuleViolation(err error) bool {
	return errors.Is(err, order.ErrOrderNotPending) ||
		errors.Is(err, order.ErrNoEffectiveChange) ||
		errors.Is(err, order.ErrUnknownStatus) ||
		errors.Is(err, order.ErrAlreadyDelivered) ||
		errors.Is(err, order.ErrAlreadyCanceled) ||
		errors.Is(err, order.ErrNotCancelable) ||
		errors.Is(err, commands.ErrEmptyProfilePatch)
}

// badRequest renders a 400 with the given message.
func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, Error{Code: http.StatusBadRequest, Message: message})
}
