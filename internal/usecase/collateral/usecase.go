package collateral

import (
	"context"
	"errors"
	"time"

	borrowerDomain "collateralbook/internal/domain/borrower"
	changelogDomain "collateralbook/internal/domain/changelog"
	collateralDomain "collateralbook/internal/domain/collateral"
	loanDomain "collateralbook/internal/domain/loan"
	"collateralbook/internal/domain/uow"
	"collateralbook/internal/metrics"
	"collateralbook/internal/usecase/ordering"
	"collateralbook/pkg/id"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Usecase struct {
	repo      collateralDomain.Repository
	loans     loanDomain.Repository
	borrowers borrowerDomain.Repository
	uow       uow.UnitOfWork
}

func NewUsecase(r collateralDomain.Repository, loans loanDomain.Repository, borrowers borrowerDomain.Repository, tx uow.UnitOfWork) *Usecase {
	return &Usecase{repo: r, loans: loans, borrowers: borrowers, uow: tx}
}

type CreateInput struct {
	LoanID      string
	AssetType   string
	ValuerName  string
	MarketValue decimal.Decimal
	Status      string
}

// UpdateInput carries only the fields the caller sent; nil means unchanged.
// Only MarketValue and Status participate in change detection.
type UpdateInput struct {
	LoanID      *string
	AssetType   *string
	ValuerName  *string
	MarketValue *decimal.Decimal
	Status      *string
}

type ListParams struct {
	Status    string
	AssetType string
	LTVRisk   string
	Search    string
	Ordering  string
}

type LoanDetailsDTO struct {
	LoanID     string `json:"loan_id"`
	Borrower   string `json:"borrower"`
	LoanAmount string `json:"loan_amount"`
}

type CollateralDTO struct {
	ID          string         `json:"id"`
	CreatedBy   string         `json:"created_by"`
	Loan        string         `json:"loan"`
	LoanDetails LoanDetailsDTO `json:"loan_details"`
	AssetType   string         `json:"asset_type"`
	ValuerName  string         `json:"valuer_name"`
	MarketValue string         `json:"market_value"`
	Status      string         `json:"status"`
	LTVRatio    *float64       `json:"ltv_ratio"`
	LTVRisk     string         `json:"ltv_risk"`
	DateAdded   time.Time      `json:"date_added"`
	LastUpdated time.Time      `json:"last_updated"`
}

// loanInfo is the per-loan context a collateral DTO needs: the loan itself
// plus its borrower's display name.
type loanInfo struct {
	loan         *loanDomain.Loan
	borrowerName string
}

// toDTO recomputes ltv_ratio/ltv_risk from the current loan amount and market
// value on every call; neither is ever stored.
func toDTO(c *collateralDomain.Collateral, username string, li loanInfo) *CollateralDTO {
	dto := &CollateralDTO{
		ID:          c.CollateralID,
		CreatedBy:   username,
		Loan:        c.LoanID,
		AssetType:   string(c.AssetType),
		ValuerName:  c.ValuerName,
		MarketValue: c.MarketValue.StringFixed(2),
		Status:      string(c.Status),
		LTVRisk:     collateralDomain.RiskUnknown,
		DateAdded:   c.CreatedAt,
		LastUpdated: c.UpdatedAt,
	}
	if li.loan != nil {
		dto.LoanDetails = LoanDetailsDTO{
			LoanID:     li.loan.LoanID,
			Borrower:   li.borrowerName,
			LoanAmount: li.loan.LoanAmount.StringFixed(2),
		}
		ratio := collateralDomain.LTVRatio(li.loan.LoanAmount, c.MarketValue)
		dto.LTVRisk = collateralDomain.LTVRisk(ratio)
		if ratio != nil {
			f, _ := ratio.Float64()
			dto.LTVRatio = &f
		}
	}
	return dto
}

// loanInfos batch-resolves loans and borrower names for a set of loan ids.
func (u *Usecase) loanInfos(ctx context.Context, userID string, loanIDs []string) (map[string]loanInfo, error) {
	loans, err := u.loans.ListByLoanIDs(ctx, loanIDs, userID)
	if err != nil {
		return nil, err
	}
	borrowerIDs := make([]string, 0, len(loans))
	seen := make(map[string]bool, len(loans))
	for i := range loans {
		if !seen[loans[i].BorrowerID] {
			seen[loans[i].BorrowerID] = true
			borrowerIDs = append(borrowerIDs, loans[i].BorrowerID)
		}
	}
	borrowers, err := u.borrowers.ListByBorrowerIDs(ctx, borrowerIDs, userID)
	if err != nil {
		return nil, err
	}
	names := make(map[string]string, len(borrowers))
	for i := range borrowers {
		names[borrowers[i].BorrowerID] = borrowers[i].CustomerName
	}

	out := make(map[string]loanInfo, len(loans))
	for i := range loans {
		out[loans[i].LoanID] = loanInfo{loan: &loans[i], borrowerName: names[loans[i].BorrowerID]}
	}
	return out, nil
}

func (u *Usecase) Create(ctx context.Context, userID, username string, in CreateInput) (*CollateralDTO, error) {
	l, err := u.loans.GetByLoanID(ctx, in.LoanID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, loanDomain.ErrNotFound
		}
		return nil, err
	}

	status := collateralDomain.StatusActive
	if in.Status != "" {
		status = collateralDomain.Status(in.Status)
	}
	c := &collateralDomain.Collateral{
		CollateralID: id.NewID32(),
		CreatedBy:    userID,
		LoanID:       l.LoanID,
		AssetType:    collateralDomain.AssetType(in.AssetType),
		ValuerName:   in.ValuerName,
		MarketValue:  in.MarketValue,
		Status:       status,
	}
	if err := u.repo.Create(ctx, c); err != nil {
		return nil, err
	}

	infos, err := u.loanInfos(ctx, userID, []string{c.LoanID})
	if err != nil {
		return nil, err
	}
	return toDTO(c, username, infos[c.LoanID]), nil
}

func (u *Usecase) Get(ctx context.Context, userID, username, collateralID string) (*CollateralDTO, error) {
	c, err := u.repo.GetByCollateralID(ctx, collateralID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, collateralDomain.ErrNotFound
		}
		return nil, err
	}
	infos, err := u.loanInfos(ctx, userID, []string{c.LoanID})
	if err != nil {
		return nil, err
	}
	return toDTO(c, username, infos[c.LoanID]), nil
}

// List narrows in two phases: the store handles owner/status/asset_type/search,
// then the derived ltv_risk predicate runs in memory over the already-built
// DTOs. The second phase is an O(owned records) scan; it cannot be pushed to
// the store because the risk bucket is computed, not a column.
func (u *Usecase) List(ctx context.Context, userID, username string, p ListParams) ([]CollateralDTO, error) {
	q := collateralDomain.ListQuery{
		CreatedBy: userID,
		Status:    p.Status,
		AssetType: p.AssetType,
		Search:    p.Search,
	}
	q.OrderBy, q.Desc = ordering.Parse(p.Ordering, collateralDomain.OrderColumn)
	rows, err := u.repo.List(ctx, q)
	if err != nil {
		return nil, err
	}

	loanIDs := make([]string, 0, len(rows))
	seen := make(map[string]bool, len(rows))
	for i := range rows {
		if !seen[rows[i].LoanID] {
			seen[rows[i].LoanID] = true
			loanIDs = append(loanIDs, rows[i].LoanID)
		}
	}
	infos, err := u.loanInfos(ctx, userID, loanIDs)
	if err != nil {
		return nil, err
	}

	dtos := make([]CollateralDTO, 0, len(rows))
	for i := range rows {
		dtos = append(dtos, *toDTO(&rows[i], username, infos[rows[i].LoanID]))
	}
	return filterByRisk(dtos, p.LTVRisk), nil
}

// filterByRisk is the in-memory phase of the two-phase ltv_risk filter.
func filterByRisk(dtos []CollateralDTO, risk string) []CollateralDTO {
	if risk == "" {
		return dtos
	}
	out := make([]CollateralDTO, 0, len(dtos))
	for i := range dtos {
		if dtos[i].LTVRisk == risk {
			out = append(out, dtos[i])
		}
	}
	return out
}

// Update mutates a collateral and, when market_value or status actually
// changed, appends exactly one change-log entry, all inside one transaction.
// The snapshot comes from the locked read the unit of work performs before
// any mutation; if the log insert fails the update rolls back with it.
func (u *Usecase) Update(ctx context.Context, userID, username, collateralID string, in UpdateInput) (*CollateralDTO, error) {
	var updated *collateralDomain.Collateral
	err := u.uow.WithinCollateralTx(ctx, collateralID, userID, func(r uow.Repos, c *collateralDomain.Collateral) error {
		oldValue := c.MarketValue
		oldStatus := c.Status

		if in.LoanID != nil {
			if _, err := r.Loans.GetByLoanID(ctx, *in.LoanID, userID); err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return loanDomain.ErrNotFound
				}
				return err
			}
			c.LoanID = *in.LoanID
		}
		if in.AssetType != nil {
			c.AssetType = collateralDomain.AssetType(*in.AssetType)
		}
		if in.ValuerName != nil {
			c.ValuerName = *in.ValuerName
		}
		if in.MarketValue != nil {
			c.MarketValue = *in.MarketValue
		}
		if in.Status != nil {
			c.Status = collateralDomain.Status(*in.Status)
		}

		if err := r.Collaterals.Save(ctx, c); err != nil {
			return err
		}

		// exact comparison: decimal equality and plain string equality
		if !oldValue.Equal(c.MarketValue) || oldStatus != c.Status {
			ov, nv := oldValue, c.MarketValue
			entry := &changelogDomain.Entry{
				EntryID:      id.NewID32(),
				CollateralID: c.CollateralID,
				ChangedBy:    &userID,
				OldValue:     &ov,
				NewValue:     &nv,
				OldStatus:    string(oldStatus),
				NewStatus:    string(c.Status),
				Note:         "Updated by " + username,
			}
			if err := r.ChangeLogs.Create(ctx, entry); err != nil {
				return err
			}
			metrics.ChangeLogEntries.Inc()
		}

		updated = c
		return nil
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, collateralDomain.ErrNotFound
		}
		return nil, err
	}

	infos, err := u.loanInfos(ctx, userID, []string{updated.LoanID})
	if err != nil {
		return nil, err
	}
	return toDTO(updated, username, infos[updated.LoanID]), nil
}

func (u *Usecase) Delete(ctx context.Context, userID, collateralID string) error {
	c, err := u.repo.GetByCollateralID(ctx, collateralID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return collateralDomain.ErrNotFound
		}
		return err
	}
	return u.repo.Delete(ctx, c)
}
