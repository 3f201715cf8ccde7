package http

import (
	"net/http"

	uc "collateralbook/internal/usecase/changelog"

	"github.com/labstack/echo/v4"
)

type ChangeLogHandler struct{ uc *uc.Usecase }

func NewChangeLogHandler(u *uc.Usecase) *ChangeLogHandler { return &ChangeLogHandler{uc: u} }

// List is the only change-log operation: entries are written by the
// collateral update flow and never edited.
func (h *ChangeLogHandler) List(c echo.Context) error {
	userID, _ := actor(c)
	dtos, err := h.uc.List(c.Request().Context(), userID, uc.ListParams{
		CollateralID: c.QueryParam("collateral"),
		Ordering:     c.QueryParam("ordering"),
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, dtos)
}
