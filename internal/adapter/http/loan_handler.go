package http

import (
	"net/http"
	"time"

	uc "collateralbook/internal/usecase/loan"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

type LoanHandler struct{ uc *uc.Usecase }

func NewLoanHandler(u *uc.Usecase) *LoanHandler { return &LoanHandler{uc: u} }

type createLoanReq struct {
	Borrower   string           `json:"borrower"      validate:"required,hex32"`
	LoanAmount *decimal.Decimal `json:"loan_amount"   validate:"required"`
	// Canonical date `YYYY-MM-DD` (aligns with schema DATE)
	StartDate    string `json:"start_date"    validate:"required,datetime=2006-01-02"`
	MaturityDate string `json:"maturity_date" validate:"required,datetime=2006-01-02"`
}

type updateLoanReq struct {
	Borrower     *string          `json:"borrower"      validate:"omitempty,hex32"`
	LoanAmount   *decimal.Decimal `json:"loan_amount"`
	StartDate    *string          `json:"start_date"    validate:"omitempty,datetime=2006-01-02"`
	MaturityDate *string          `json:"maturity_date" validate:"omitempty,datetime=2006-01-02"`
}

func (h *LoanHandler) Create(c echo.Context) error {
	var req createLoanReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	start, _ := time.Parse(time.DateOnly, req.StartDate)
	maturity, _ := time.Parse(time.DateOnly, req.MaturityDate)

	userID, username := actor(c)
	dto, err := h.uc.Create(c.Request().Context(), userID, username, uc.CreateInput{
		BorrowerID:   req.Borrower,
		LoanAmount:   *req.LoanAmount,
		StartDate:    start,
		MaturityDate: maturity,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, dto)
}

func (h *LoanHandler) List(c echo.Context) error {
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

func (h *LoanHandler) Get(c echo.Context) error {
	userID, username := actor(c)
	dto, err := h.uc.Get(c.Request().Context(), userID, username, c.Param("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *LoanHandler) Update(c echo.Context) error {
	var req updateLoanReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	in := uc.UpdateInput{
		BorrowerID: req.Borrower,
		LoanAmount: req.LoanAmount,
	}
	if req.StartDate != nil {
		t, _ := time.Parse(time.DateOnly, *req.StartDate)
		in.StartDate = &t
	}
	if req.MaturityDate != nil {
		t, _ := time.Parse(time.DateOnly, *req.MaturityDate)
		in.MaturityDate = &t
	}

	userID, username := actor(c)
	dto, err := h.uc.Update(c.Request().Context(), userID, username, c.Param("id"), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *LoanHandler) Delete(c echo.Context) error {
	userID, _ := actor(c)
	if err := h.uc.Delete(c.Request().Context(), userID, c.Param("id")); err != nil {
		return writeError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
