// internal/service/import_service.go
package service

import (
	"context"
	"fmt"
	"io"

	"github.com/rs/zerolog/log"
	"github.com/territoryiq/backend-go/internal/cache"
	"github.com/territoryiq/backend-go/internal/domain"
	"github.com/territoryiq/backend-go/internal/pipeline"
	"github.com/territoryiq/backend-go/internal/repository"
)

// ImportService runs both CSV pipelines: the account-mapping upsert and the
// two-phase (preview, commit) monthly sales import.
type ImportService struct {
	dealers repository.DealerRepository
	mix     repository.ProductMixRepository
	cache   cache.TerritoryCache
}

func NewImportService(dealers repository.DealerRepository, mix repository.ProductMixRepository, territoryCache cache.TerritoryCache) *ImportService {
	return &ImportService{
		dealers: dealers,
		mix:     mix,
		cache:   territoryCache,
	}
}

// ImportAccountMapping parses the dealer list CSV and upserts one identity
// row per dealer. Rows missing a name or account number count as errors; a
// storage failure on one row does not stop the rest.
func (s *ImportService) ImportAccountMapping(ctx context.Context, repID string, r io.Reader) (*domain.ImportResult, error) {
	rows, skipped, err := pipeline.ParseAccountMapping(r)
	if err != nil {
		return nil, err
	}

	result := &domain.ImportResult{Details: []string{}}
	result.Errors += skipped

	for _, row := range rows {
		if err := s.dealers.UpsertIdentity(ctx, repID, row); err != nil {
			result.Errors++
			result.Details = append(result.Details, fmt.Sprintf("Failed to import %s: %v", row.DealerName, err))
			continue
		}
		result.Success++
	}

	log.Info().
		Str("rep_id", repID).
		Int("success", result.Success).
		Int("errors", result.Errors).
		Msg("account mapping import finished")

	return result, nil
}

// PreviewSales is the side-effect-free first phase of a sales upload: parse,
// reconcile against the dealer registry, aggregate per account and summarize.
// Nothing is written; the returned parsed data is what the commit phase
// accepts after the user confirms.
func (s *ImportService) PreviewSales(ctx context.Context, repID string, r io.Reader) (*domain.SalesPreview, error) {
	entries, err := s.dealers.Registry(ctx, repID)
	if err != nil {
		return nil, fmt.Errorf("failed to load dealer registry: %w", err)
	}

	lines, err := pipeline.ParseSalesReport(r)
	if err != nil {
		return nil, err
	}

	rec := pipeline.NewReconciler(entries)
	agg := pipeline.Aggregate(lines, rec)

	names := make(map[string]string, len(entries))
	for _, e := range entries {
		names[e.AccountNumber] = e.DealerName
	}

	preview := agg.BuildPreview(names)

	log.Info().
		Str("rep_id", repID).
		Int("rows", len(lines)).
		Int("accounts", preview.DealerCount).
		Int("unmatched", len(preview.UnmatchedDealers)).
		Msg("sales preview built")

	return preview, nil
}

// ExistingFactCount reports how many fact rows the target period already has,
// so the caller can warn that a commit will replace them.
func (s *ImportService) ExistingFactCount(ctx context.Context, repID string, year, month int) (int, error) {
	return s.mix.CountForPeriod(ctx, repID, year, month)
}

// CommitSales is the second phase: each account's aggregated totals become a
// fact row fully replacing the (rep, account, year, month) period. Writes are
// best effort per row; unmatched dealers reported during preview are counted
// as errors here as well since their rows never made it into parsed data.
func (s *ImportService) CommitSales(ctx context.Context, repID string, year, month int, parsed []domain.AccountSales, unmatched []string) (*domain.ImportResult, error) {
	result := &domain.ImportResult{Details: []string{}}

	for _, name := range unmatched {
		result.Errors++
		result.Details = append(result.Details, fmt.Sprintf("Dealer not found (upload dealer list first): %s", name))
	}

	for _, acct := range parsed {
		fact := pipeline.BuildFact(repID, year, month, acct)
		if err := s.mix.UpsertFact(ctx, &fact); err != nil {
			result.Errors++
			result.Details = append(result.Details, fmt.Sprintf("Failed %s: %v", acct.AccountNumber, err))
			continue
		}
		result.Success++
	}

	if err := s.cache.InvalidateRep(ctx, repID); err != nil {
		log.Warn().Err(err).Str("rep_id", repID).Msg("failed to invalidate territory cache")
	}

	log.Info().
		Str("rep_id", repID).
		Int("year", year).
		Int("month", month).
		Int("success", result.Success).
		Int("errors", result.Errors).
		Msg("sales commit finished")

	return result, nil
}
