// internal/repository/postgres/dealer_repository.go
package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/territoryiq/backend-go/internal/domain"
)

type dealerRepository struct {
	db *DB
}

func NewDealerRepository(db *DB) *dealerRepository {
	return &dealerRepository{db: db}
}

func (r *dealerRepository) Registry(ctx context.Context, repID string) ([]domain.RegistryEntry, error) {
	query := `
		SELECT dealer_name, account_number
		FROM dealers
		WHERE rep_id = $1
	`

	var entries []domain.RegistryEntry
	if err := sqlx.SelectContext(ctx, r.db, &entries, query, repID); err != nil {
		return nil, fmt.Errorf("failed to fetch dealer registry: %w", err)
	}

	return entries, nil
}

func (r *dealerRepository) UpsertIdentity(ctx context.Context, repID string, row domain.DealerIdentity) error {
	query := `
		INSERT INTO dealers (rep_id, account_number, dealer_name, buying_group, ew_program, last_updated)
		VALUES ($1, $2, $3, $4, $5, NOW())
		ON CONFLICT (rep_id, account_number)
		DO UPDATE SET
			dealer_name = EXCLUDED.dealer_name,
			buying_group = EXCLUDED.buying_group,
			ew_program = EXCLUDED.ew_program,
			last_updated = NOW()
	`

	return r.db.WithTx(ctx, func(tx *sqlx.Tx) error {
		if _, err := tx.ExecContext(ctx, query, repID, row.AccountNumber, row.DealerName, row.BuyingGroup, row.EWProgram); err != nil {
			return fmt.Errorf("failed to upsert dealer %s: %w", row.AccountNumber, err)
		}
		return nil
	})
}

func (r *dealerRepository) ListAll(ctx context.Context, repID string) ([]domain.DealerRecord, error) {
	query := `
		SELECT *
		FROM dealers
		WHERE rep_id = $1
		ORDER BY dealer_name
	`

	var dealers []domain.DealerRecord
	if err := sqlx.SelectContext(ctx, r.db, &dealers, query, repID); err != nil {
		return nil, fmt.Errorf("failed to list dealers: %w", err)
	}

	return dealers, nil
}
