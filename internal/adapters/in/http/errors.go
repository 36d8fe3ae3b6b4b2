package http

import (
	"errors"
	"log/slog"
	"net/http"

	"devbook/internal/generated/servers"
	"devbook/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

const validationFailedMessage = "Validation failed"

// writeError maps use case errors onto the API error bodies.
func writeError(ctx echo.Context, err error) error {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return writeMessage(ctx, http.StatusNotFound, err.Error())
	case errs.IsValidationFailure(err):
		return ctx.JSON(http.StatusUnprocessableEntity, servers.ValidationError{
			Code:       http.StatusUnprocessableEntity,
			Message:    validationFailedMessage,
			Attributes: errs.FailedAttributes(err),
		})
	default:
		slog.ErrorContext(ctx.Request().Context(), "request failed",
			"method", ctx.Request().Method,
			"path", ctx.Path(),
			"error", err,
		)
		return writeMessage(ctx, http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError))
	}
}

func writeMessage(ctx echo.Context, status int, message string) error {
	return ctx.JSON(status, servers.Error{
		Code:    status,
		Message: message,
	})
}

func writeValidation(ctx echo.Context, attributes ...string) error {
	return ctx.JSON(http.StatusUnprocessableEntity, servers.ValidationError{
		Code:       http.StatusUnprocessableEntity,
		Message:    validationFailedMessage,
		Attributes: attributes,
	})
}
