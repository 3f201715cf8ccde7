package http

import (
	"errors"
	"net/http"

	borrowerDomain "collateralbook/internal/domain/borrower"
	collateralDomain "collateralbook/internal/domain/collateral"
	loanDomain "collateralbook/internal/domain/loan"
	userDomain "collateralbook/internal/domain/user"
	"collateralbook/internal/usecase/auth"

	"github.com/labstack/echo/v4"
)

// Context keys the auth middleware fills in.
const (
	CtxUserID   = "user_id"
	CtxUsername = "username"
)

func actor(c echo.Context) (userID, username string) {
	userID, _ = c.Get(CtxUserID).(string)
	username, _ = c.Get(CtxUsername).(string)
	return userID, username
}

// writeError maps domain errors onto the HTTP surface. Not-found and
// not-owned are deliberately the same 404.
func writeError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, borrowerDomain.ErrNotFound),
		errors.Is(err, loanDomain.ErrNotFound),
		errors.Is(err, collateralDomain.ErrNotFound):
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: "not found"})
	case errors.Is(err, userDomain.ErrUsernameTaken):
		return c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "validation failed",
			Details: []FieldError{{Field: "username", Message: "already taken"}},
		})
	case errors.Is(err, auth.ErrInvalidCredentials),
		errors.Is(err, auth.ErrInvalidRefresh):
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: err.Error()})
	}
	return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
}
