package changelog

import (
	"context"
	"errors"
	"time"

	changelogDomain "collateralbook/internal/domain/changelog"
	collateralDomain "collateralbook/internal/domain/collateral"
	userDomain "collateralbook/internal/domain/user"

	"gorm.io/gorm"
)

type Usecase struct {
	repo        changelogDomain.Repository
	collaterals collateralDomain.Repository
	users       userDomain.Repository
}

func NewUsecase(r changelogDomain.Repository, collaterals collateralDomain.Repository, users userDomain.Repository) *Usecase {
	return &Usecase{repo: r, collaterals: collaterals, users: users}
}

type ListParams struct {
	CollateralID string
	Ordering     string
}

type CollateralDetailsDTO struct {
	AssetType string `json:"asset_type"`
	LoanID    string `json:"loan_id"`
}

// EntryDTO: old/new values stay strings to preserve scale, and stay nil when
// the stored column is null. changed_by is the username, nil once the user is
// gone; the note keeps the historical name either way.
type EntryDTO struct {
	ID                string               `json:"id"`
	Collateral        string               `json:"collateral"`
	CollateralDetails CollateralDetailsDTO `json:"collateral_details"`
	ChangedBy         *string              `json:"changed_by"`
	OldValue          *string              `json:"old_value"`
	NewValue          *string              `json:"new_value"`
	OldStatus         string               `json:"old_status"`
	NewStatus         string               `json:"new_status"`
	Note              string               `json:"note"`
	ChangedAt         time.Time            `json:"changed_at"`
}

func (u *Usecase) List(ctx context.Context, userID string, p ListParams) ([]EntryDTO, error) {
	q := changelogDomain.ListQuery{CreatedBy: userID, CollateralID: p.CollateralID}
	// newest-first unless explicitly asked ascending
	q.Ascending = p.Ordering == "changed_at"
	rows, err := u.repo.List(ctx, q)
	if err != nil {
		return nil, err
	}

	details := make(map[string]CollateralDetailsDTO)
	usernames := make(map[string]*string)
	out := make([]EntryDTO, 0, len(rows))
	for i := range rows {
		e := &rows[i]

		d, ok := details[e.CollateralID]
		if !ok {
			c, err := u.collaterals.GetByCollateralID(ctx, e.CollateralID, userID)
			if err != nil {
				if !errors.Is(err, gorm.ErrRecordNotFound) {
					return nil, err
				}
				d = CollateralDetailsDTO{}
			} else {
				d = CollateralDetailsDTO{
					AssetType: collateralDomain.AssetTypeLabel(c.AssetType),
					LoanID:    c.LoanID,
				}
			}
			details[e.CollateralID] = d
		}

		var changedBy *string
		if e.ChangedBy != nil {
			name, ok := usernames[*e.ChangedBy]
			if !ok {
				usr, err := u.users.GetByUserID(ctx, *e.ChangedBy)
				switch {
				case err == nil:
					name = &usr.Username
				case errors.Is(err, gorm.ErrRecordNotFound):
					name = nil
				default:
					return nil, err
				}
				usernames[*e.ChangedBy] = name
			}
			changedBy = name
		}

		dto := EntryDTO{
			ID:                e.EntryID,
			Collateral:        e.CollateralID,
			CollateralDetails: d,
			ChangedBy:         changedBy,
			OldStatus:         e.OldStatus,
			NewStatus:         e.NewStatus,
			Note:              e.Note,
			ChangedAt:         e.ChangedAt,
		}
		if e.OldValue != nil {
			s := e.OldValue.StringFixed(2)
			dto.OldValue = &s
		}
		if e.NewValue != nil {
			s := e.NewValue.StringFixed(2)
			dto.NewValue = &s
		}
		out = append(out, dto)
	}
	return out, nil
}
