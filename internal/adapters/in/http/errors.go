package http

import (
	"errors"
	"net/http"

	"foodrun/internal/core/application/usecases/commands"
	"foodrun/internal/core/application/usecases/queries"
	"foodrun/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// respondError translates an application error into the matching HTTP
// status. Validation failures map to 400, missing objects to 404, lifecycle
// conflicts to 409 and failed logins to 401. Anything unrecognized is a 500
// with a generic message so internals never leak to clients.
func respondError(ctx echo.Context, err error) error {
	switch {
	case errors.Is(err, queries.ErrInvalidCredentials):
		return writeError(ctx, http.StatusUnauthorized, "invalid credentials")
	case errors.Is(err, errs.ErrObjectNotFound):
		return writeError(ctx, http.StatusNotFound, err.Error())
	case errors.Is(err, errs.ErrInvalidState):
		return writeError(ctx, http.StatusConflict, err.Error())
	case isValidationError(err):
		return writeError(ctx, http.StatusBadRequest, err.Error())
	default:
		return writeError(ctx, http.StatusInternalServerError, "internal error")
	}
}

func isValidationError(err error) bool {
	return errors.Is(err, errs.ErrValueIsRequired) ||
		errors.Is(err, errs.ErrValueIsInvalid) ||
		errors.Is(err, errs.ErrValueIsOutOfRange) ||
		errors.Is(err, commands.ErrCartIsEmpty)
}

func writeError(ctx echo.Context, code int, message string) error {
	return ctx.JSON(code, Error{Code: code, Message: message})
}
