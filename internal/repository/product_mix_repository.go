// internal/repository/product_mix_repository.go
package repository

import (
	"context"

	"github.com/territoryiq/backend-go/internal/domain"
)

type ProductMixRepository interface {
	// CountForPeriod reports how many fact rows already exist for the target
	// period, so the caller can warn before a full replace.
	CountForPeriod(ctx context.Context, repID string, year, month int) (int, error)

	// UpsertFact fully replaces the fact row keyed by
	// (rep, account, year, month).
	UpsertFact(ctx context.Context, fact *domain.ProductMixMonthly) error

	ListForYear(ctx context.Context, repID string, year int) ([]domain.ProductMixMonthly, error)
	ListForAccount(ctx context.Context, repID, accountNumber string, year int) ([]domain.ProductMixMonthly, error)
}

type TargetRepository interface {
	GetTargets(ctx context.Context, repID string, year int) (*domain.ProductMixTarget, error)
	UpsertTargets(ctx context.Context, target *domain.ProductMixTarget) error
}
