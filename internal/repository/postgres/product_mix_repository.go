// internal/repository/postgres/product_mix_repository.go
package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/territoryiq/backend-go/internal/domain"
)

type productMixRepository struct {
	db *DB
}

func NewProductMixRepository(db *DB) *productMixRepository {
	return &productMixRepository{db: db}
}

func (r *productMixRepository) CountForPeriod(ctx context.Context, repID string, year, month int) (int, error) {
	query := `
		SELECT COUNT(*)
		FROM product_mix_monthly
		WHERE rep_id = $1 AND year = $2 AND month = $3
	`

	var count int
	if err := r.db.QueryRowContext(ctx, query, repID, year, month).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count existing facts: %w", err)
	}

	return count, nil
}

// UpsertFact fully replaces the period row: every column is overwritten, not
// merged, so re-ingesting a report never double-counts.
func (r *productMixRepository) UpsertFact(ctx context.Context, fact *domain.ProductMixMonthly) error {
	query := `
		INSERT INTO product_mix_monthly (
			rep_id, account_number, year, month,
			adura_sales, wood_laminate_sales, sundries_sales, ns_resp_sales, sheet_sales,
			adura_qty, wood_laminate_qty, sundries_qty, ns_resp_qty, sheet_qty,
			adura_orders, wood_laminate_orders, sundries_orders, ns_resp_orders, sheet_orders,
			adura_pct, wood_laminate_pct, sundries_pct, ns_resp_pct, sheet_pct,
			total_sales, total_qty, total_orders, updated_at
		) VALUES (
			:rep_id, :account_number, :year, :month,
			:adura_sales, :wood_laminate_sales, :sundries_sales, :ns_resp_sales, :sheet_sales,
			:adura_qty, :wood_laminate_qty, :sundries_qty, :ns_resp_qty, :sheet_qty,
			:adura_orders, :wood_laminate_orders, :sundries_orders, :ns_resp_orders, :sheet_orders,
			:adura_pct, :wood_laminate_pct, :sundries_pct, :ns_resp_pct, :sheet_pct,
			:total_sales, :total_qty, :total_orders, NOW()
		)
		ON CONFLICT (rep_id, account_number, year, month)
		DO UPDATE SET
			adura_sales = EXCLUDED.adura_sales,
			wood_laminate_sales = EXCLUDED.wood_laminate_sales,
			sundries_sales = EXCLUDED.sundries_sales,
			ns_resp_sales = EXCLUDED.ns_resp_sales,
			sheet_sales = EXCLUDED.sheet_sales,
			adura_qty = EXCLUDED.adura_qty,
			wood_laminate_qty = EXCLUDED.wood_laminate_qty,
			sundries_qty = EXCLUDED.sundries_qty,
			ns_resp_qty = EXCLUDED.ns_resp_qty,
			sheet_qty = EXCLUDED.sheet_qty,
			adura_orders = EXCLUDED.adura_orders,
			wood_laminate_orders = EXCLUDED.wood_laminate_orders,
			sundries_orders = EXCLUDED.sundries_orders,
			ns_resp_orders = EXCLUDED.ns_resp_orders,
			sheet_orders = EXCLUDED.sheet_orders,
			adura_pct = EXCLUDED.adura_pct,
			wood_laminate_pct = EXCLUDED.wood_laminate_pct,
			sundries_pct = EXCLUDED.sundries_pct,
			ns_resp_pct = EXCLUDED.ns_resp_pct,
			sheet_pct = EXCLUDED.sheet_pct,
			total_sales = EXCLUDED.total_sales,
			total_qty = EXCLUDED.total_qty,
			total_orders = EXCLUDED.total_orders,
			updated_at = NOW()
	`

	return r.db.WithTx(ctx, func(tx *sqlx.Tx) error {
		if _, err := tx.NamedExecContext(ctx, query, fact); err != nil {
			return fmt.Errorf("failed to upsert fact for %s: %w", fact.AccountNumber, err)
		}
		return nil
	})
}

func (r *productMixRepository) ListForYear(ctx context.Context, repID string, year int) ([]domain.ProductMixMonthly, error) {
	query := `
		SELECT *
		FROM product_mix_monthly
		WHERE rep_id = $1 AND year = $2
	`

	var facts []domain.ProductMixMonthly
	if err := sqlx.SelectContext(ctx, r.db, &facts, query, repID, year); err != nil {
		return nil, fmt.Errorf("failed to list facts for year: %w", err)
	}

	return facts, nil
}

func (r *productMixRepository) ListForAccount(ctx context.Context, repID, accountNumber string, year int) ([]domain.ProductMixMonthly, error) {
	query := `
		SELECT *
		FROM product_mix_monthly
		WHERE rep_id = $1 AND account_number = $2 AND year = $3
		ORDER BY month ASC
	`

	var facts []domain.ProductMixMonthly
	if err := sqlx.SelectContext(ctx, r.db, &facts, query, repID, accountNumber, year); err != nil {
		return nil, fmt.Errorf("failed to list facts for account: %w", err)
	}

	return facts, nil
}

type targetRepository struct {
	db *DB
}

func NewTargetRepository(db *DB) *targetRepository {
	return &targetRepository{db: db}
}

func (r *targetRepository) GetTargets(ctx context.Context, repID string, year int) (*domain.ProductMixTarget, error) {
	query := `
		SELECT *
		FROM product_mix_targets
		WHERE rep_id = $1 AND year = $2
	`

	var target domain.ProductMixTarget
	err := sqlx.GetContext(ctx, r.db, &target, query, repID, year)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch targets: %w", err)
	}

	return &target, nil
}

func (r *targetRepository) UpsertTargets(ctx context.Context, target *domain.ProductMixTarget) error {
	query := `
		INSERT INTO product_mix_targets (
			rep_id, year, adura_target, wood_laminate_target, sundries_target,
			ns_resp_target, sheet_target, updated_at
		) VALUES (
			:rep_id, :year, :adura_target, :wood_laminate_target, :sundries_target,
			:ns_resp_target, :sheet_target, NOW()
		)
		ON CONFLICT (rep_id, year)
		DO UPDATE SET
			adura_target = EXCLUDED.adura_target,
			wood_laminate_target = EXCLUDED.wood_laminate_target,
			sundries_target = EXCLUDED.sundries_target,
			ns_resp_target = EXCLUDED.ns_resp_target,
			sheet_target = EXCLUDED.sheet_target,
			updated_at = NOW()
	`

	return r.db.WithTx(ctx, func(tx *sqlx.Tx) error {
		if _, err := tx.NamedExecContext(ctx, query, target); err != nil {
			return fmt.Errorf("failed to upsert targets: %w", err)
		}
		return nil
	})
}
