package http

import (
	"net/http"

	uc "collateralbook/internal/usecase/borrower"

	"github.com/labstack/echo/v4"
)

type BorrowerHandler struct{ uc *uc.Usecase }

func NewBorrowerHandler(u *uc.Usecase) *BorrowerHandler { return &BorrowerHandler{uc: u} }

type createBorrowerReq struct {
	CustomerName string `json:"customer_name" validate:"required,max=200"`
	CreditRating string `json:"credit_rating" validate:"required,oneof=AAA AA A BBB BB B CCC D"`
	Sector       string `json:"sector"        validate:"required,oneof=agriculture manufacturing real_estate retail finance other"`
}

type updateBorrowerReq struct {
	CustomerName *string `json:"customer_name" validate:"omitempty,max=200"`
	CreditRating *string `json:"credit_rating" validate:"omitempty,oneof=AAA AA A BBB BB B CCC D"`
	Sector       *string `json:"sector"        validate:"omitempty,oneof=agriculture manufacturing real_estate retail finance other"`
}

func (h *BorrowerHandler) Create(c echo.Context) error {
	var req createBorrowerReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	userID, username := actor(c)
	dto, err := h.uc.Create(c.Request().Context(), userID, username, uc.CreateInput(req))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, dto)
}

func (h *BorrowerHandler) List(c echo.Context) error {
	userID, username := actor(c)
	dtos, err := h.uc.List(c.Request().Context(), userID, username, uc.ListParams{
		Search:   c.QueryParam("search"),
		Ordering: c.QueryParam("ordering"),
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, dtos)
}

func (h *BorrowerHandler) Get(c echo.Context) error {
	userID, username := actor(c)
	dto, err := h.uc.Get(c.Request().Context(), userID, username, c.Param("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *BorrowerHandler) Update(c echo.Context) error {
	var req updateBorrowerReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	userID, username := actor(c)
	dto, err := h.uc.Update(c.Request().Context(), userID, username, c.Param("id"), uc.UpdateInput(req))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *BorrowerHandler) Delete(c echo.Context) error {
	userID, _ := actor(c)
	if err := h.uc.Delete(c.Request().Context(), userID, c.Param("id")); err != nil {
		return writeError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
