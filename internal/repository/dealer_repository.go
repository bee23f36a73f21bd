// internal/repository/dealer_repository.go
package repository

import (
	"context"

	"github.com/territoryiq/backend-go/internal/domain"
)

type DealerRepository interface {
	// Registry returns the name→account snapshot used for reconciliation.
	Registry(ctx context.Context, repID string) ([]domain.RegistryEntry, error)

	// UpsertIdentity creates or updates a dealer's identity fields keyed by
	// (rep, account number). Engagement matrix fields are never touched.
	UpsertIdentity(ctx context.Context, repID string, row domain.DealerIdentity) error

	// ListAll returns every dealer record for a rep, matrix included.
	ListAll(ctx context.Context, repID string) ([]domain.DealerRecord, error)
}
