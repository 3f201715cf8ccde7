package changelogmock

import (
	"context"
	"errors"

	domain "collateralbook/internal/domain/changelog"
)

var _ domain.Repository = (*Repo)(nil)

var errUnimplemented = errors.New("changelogmock: method not implemented")

// Repo is a function-backed mock that satisfies domain.Repository.
type Repo struct {
	CreateFn func(ctx context.Context, e *domain.Entry) error
	ListFn   func(ctx context.Context, q domain.ListQuery) ([]domain.Entry, error)
}

func (m *Repo) Create(ctx context.Context, e *domain.Entry) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, e)
	}
	return nil
}

func (m *Repo) List(ctx context.Context, q domain.ListQuery) ([]domain.Entry, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx, q)
	}
	return nil, errUnimplemented
}
