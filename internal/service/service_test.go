package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/territoryiq/backend-go/internal/domain"
)

// In-memory stand-ins for the postgres repositories.

type stubDealerRepo struct {
	registry   []domain.RegistryEntry
	dealers    []domain.DealerRecord
	identities map[string]domain.DealerIdentity
	failFor    map[string]error
	listErr    error
}

func newStubDealerRepo() *stubDealerRepo {
	return &stubDealerRepo{
		identities: make(map[string]domain.DealerIdentity),
		failFor:    make(map[string]error),
	}
}

func (r *stubDealerRepo) Registry(ctx context.Context, repID string) ([]domain.RegistryEntry, error) {
	if r.listErr != nil {
		return nil, r.listErr
	}
	return r.registry, nil
}

func (r *stubDealerRepo) UpsertIdentity(ctx context.Context, repID string, row domain.DealerIdentity) error {
	if err := r.failFor[row.AccountNumber]; err != nil {
		return err
	}
	r.identities[row.AccountNumber] = row
	return nil
}

func (r *stubDealerRepo) ListAll(ctx context.Context, repID string) ([]domain.DealerRecord, error) {
	if r.listErr != nil {
		return nil, r.listErr
	}
	return r.dealers, nil
}

type stubMixRepo struct {
	facts   map[string]domain.ProductMixMonthly
	failFor map[string]error
	listErr error
}

func newStubMixRepo() *stubMixRepo {
	return &stubMixRepo{
		facts:   make(map[string]domain.ProductMixMonthly),
		failFor: make(map[string]error),
	}
}

func factKey(repID, account string, year, month int) string {
	return fmt.Sprintf("%s/%s/%d/%d", repID, account, year, month)
}

func (r *stubMixRepo) CountForPeriod(ctx context.Context, repID string, year, month int) (int, error) {
	count := 0
	for _, f := range r.facts {
		if f.RepID == repID && f.Year == year && f.Month == month {
			count++
		}
	}
	return count, nil
}

func (r *stubMixRepo) UpsertFact(ctx context.Context, fact *domain.ProductMixMonthly) error {
	if err := r.failFor[fact.AccountNumber]; err != nil {
		return err
	}
	r.facts[factKey(fact.RepID, fact.AccountNumber, fact.Year, fact.Month)] = *fact
	return nil
}

func (r *stubMixRepo) ListForYear(ctx context.Context, repID string, year int) ([]domain.ProductMixMonthly, error) {
	if r.listErr != nil {
		return nil, r.listErr
	}
	var result []domain.ProductMixMonthly
	for _, f := range r.facts {
		if f.RepID == repID && f.Year == year {
			result = append(result, f)
		}
	}
	return result, nil
}

func (r *stubMixRepo) ListForAccount(ctx context.Context, repID, accountNumber string, year int) ([]domain.ProductMixMonthly, error) {
	var result []domain.ProductMixMonthly
	for _, f := range r.facts {
		if f.RepID == repID && f.AccountNumber == accountNumber && f.Year == year {
			result = append(result, f)
		}
	}
	return result, nil
}

type stubTargetRepo struct {
	target *domain.ProductMixTarget
}

func (r *stubTargetRepo) GetTargets(ctx context.Context, repID string, year int) (*domain.ProductMixTarget, error) {
	if r.target != nil && r.target.RepID == repID && r.target.Year == year {
		return r.target, nil
	}
	return nil, nil
}

func (r *stubTargetRepo) UpsertTargets(ctx context.Context, target *domain.ProductMixTarget) error {
	r.target = target
	return nil
}

// spyCache records invalidations and serves a fixed overview on demand.
type spyCache struct {
	overview      *domain.TerritoryOverview
	sets          int
	invalidations []string
}

func (c *spyCache) GetOverview(ctx context.Context, repID string, year int) (*domain.TerritoryOverview, bool, error) {
	if c.overview != nil {
		return c.overview, true, nil
	}
	return nil, false, nil
}

func (c *spyCache) SetOverview(ctx context.Context, repID string, year int, overview *domain.TerritoryOverview) error {
	c.sets++
	return nil
}

func (c *spyCache) InvalidateRep(ctx context.Context, repID string) error {
	c.invalidations = append(c.invalidations, repID)
	return nil
}

var errStorage = errors.New("storage unavailable")
