package http

import (
	"net/http"

	uc "collateralbook/internal/usecase/collateral"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

type CollateralHandler struct{ uc *uc.Usecase }

func NewCollateralHandler(u *uc.Usecase) *CollateralHandler { return &CollateralHandler{uc: u} }

type createCollateralReq struct {
	Loan        string           `json:"loan"         validate:"required,hex32"`
	AssetType   string           `json:"asset_type"   validate:"required,oneof=property vehicle equipment land stocks other"`
	ValuerName  string           `json:"valuer_name"  validate:"required,max=200"`
	MarketValue *decimal.Decimal `json:"market_value" validate:"required"`
	Status      string           `json:"status"       validate:"omitempty,oneof=active released foreclosed"`
}

type updateCollateralReq struct {
	Loan        *string          `json:"loan"         validate:"omitempty,hex32"`
	AssetType   *string          `json:"asset_type"   validate:"omitempty,oneof=property vehicle equipment land stocks other"`
	ValuerName  *string          `json:"valuer_name"  validate:"omitempty,max=200"`
	MarketValue *decimal.Decimal `json:"market_value"`
	Status      *string          `json:"status"       validate:"omitempty,oneof=active released foreclosed"`
}

func (h *CollateralHandler) Create(c echo.Context) error {
	var req createCollateralReq
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
	dto, err := h.uc.Create(c.Request().Context(), userID, username, uc.CreateInput{
		LoanID:      req.Loan,
		AssetType:   req.AssetType,
		ValuerName:  req.ValuerName,
		MarketValue: *req.MarketValue,
		Status:      req.Status,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, dto)
}

func (h *CollateralHandler) List(c echo.Context) error {
	userID, username := actor(c)
	dtos, err := h.uc.List(c.Request().Context(), userID, username, uc.ListParams{
		Status:    c.QueryParam("status"),
		AssetType: c.QueryParam("asset_type"),
		LTVRisk:   c.QueryParam("ltv_risk"),
		Search:    c.QueryParam("search"),
		Ordering:  c.QueryParam("ordering"),
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, dtos)
}

func (h *CollateralHandler) Get(c echo.Context) error {
	userID, username := actor(c)
	dto, err := h.uc.Get(c.Request().Context(), userID, username, c.Param("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

// Update runs the snapshot→apply→compare→log flow in the usecase; a
// value/status delta leaves exactly one change-log entry behind.
func (h *CollateralHandler) Update(c echo.Context) error {
	var req updateCollateralReq
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
	dto, err := h.uc.Update(c.Request().Context(), userID, username, c.Param("id"), uc.UpdateInput{
		LoanID:      req.Loan,
		AssetType:   req.AssetType,
		ValuerName:  req.ValuerName,
		MarketValue: req.MarketValue,
		Status:      req.Status,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *CollateralHandler) Delete(c echo.Context) error {
	userID, _ := actor(c)
	if err := h.uc.Delete(c.Request().Context(), userID, c.Param("id")); err != nil {
		return writeError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
