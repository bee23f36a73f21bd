// internal/service/territory_service.go
package service

import (
	"context"
	"sort"

	"github.com/rs/zerolog/log"
	"github.com/territoryiq/backend-go/internal/analytics"
	"github.com/territoryiq/backend-go/internal/cache"
	"github.com/territoryiq/backend-go/internal/domain"
	"github.com/territoryiq/backend-go/internal/repository"
)

// TerritoryService serves the dashboard reads: year-scoped overviews, monthly
// rollups, per-account product mix and targets.
type TerritoryService struct {
	dealers repository.DealerRepository
	mix     repository.ProductMixRepository
	targets repository.TargetRepository
	cache   cache.TerritoryCache
}

func NewTerritoryService(dealers repository.DealerRepository, mix repository.ProductMixRepository, targets repository.TargetRepository, territoryCache cache.TerritoryCache) *TerritoryService {
	return &TerritoryService{
		dealers: dealers,
		mix:     mix,
		targets: targets,
		cache:   territoryCache,
	}
}

// Overview aggregates all fact rows for the year and merges in the
// penetration gap analysis computed from the live dealer matrix.
func (s *TerritoryService) Overview(ctx context.Context, repID string, year int) (*domain.TerritoryOverview, error) {
	if cached, hit, err := s.cache.GetOverview(ctx, repID, year); err != nil {
		log.Warn().Err(err).Str("rep_id", repID).Msg("territory cache read failed")
	} else if hit {
		return cached, nil
	}

	facts, err := s.mix.ListForYear(ctx, repID, year)
	if err != nil {
		return nil, err
	}

	dealers, err := s.dealers.ListAll(ctx, repID)
	if err != nil {
		return nil, err
	}

	names := make(map[string]string, len(dealers))
	for _, d := range dealers {
		names[d.AccountNumber] = d.DealerName
	}

	overview := &domain.TerritoryOverview{
		DealerCount: len(dealers),
		TopDealers:  []domain.TerritoryTopDealer{},
	}

	type accountTotal struct {
		sales  float64
		orders int
	}
	perAccount := make(map[string]*accountTotal)
	accountOrder := make([]string, 0)

	for i := range facts {
		f := &facts[i]
		overview.TotalSales += f.TotalSales
		overview.TotalOrders += f.TotalOrders
		overview.TotalQty += f.TotalQty

		overview.CategorySales.Adura += f.AduraSales
		overview.CategorySales.WoodLaminate += f.WoodLaminateSales
		overview.CategorySales.Sundries += f.SundriesSales
		overview.CategorySales.NsResp += f.NsRespSales
		overview.CategorySales.Sheet += f.SheetSales

		overview.CategoryOrders.Adura += f.AduraOrders
		overview.CategoryOrders.WoodLaminate += f.WoodLaminateOrders
		overview.CategoryOrders.Sundries += f.SundriesOrders
		overview.CategoryOrders.NsResp += f.NsRespOrders
		overview.CategoryOrders.Sheet += f.SheetOrders

		t, ok := perAccount[f.AccountNumber]
		if !ok {
			t = &accountTotal{}
			perAccount[f.AccountNumber] = t
			accountOrder = append(accountOrder, f.AccountNumber)
		}
		t.sales += f.TotalSales
		t.orders += f.TotalOrders
	}

	for _, account := range accountOrder {
		t := perAccount[account]
		name := names[account]
		if name == "" {
			name = account
		}
		overview.TopDealers = append(overview.TopDealers, domain.TerritoryTopDealer{
			DealerName:    name,
			AccountNumber: account,
			TotalSales:    t.sales,
			TotalOrders:   t.orders,
		})
	}
	sort.SliceStable(overview.TopDealers, func(i, j int) bool {
		return overview.TopDealers[i].TotalSales > overview.TopDealers[j].TotalSales
	})
	if len(overview.TopDealers) > 10 {
		overview.TopDealers = overview.TopDealers[:10]
	}

	overview.PenetrationStats = analytics.ComputePenetration(dealers)

	if err := s.cache.SetOverview(ctx, repID, year, overview); err != nil {
		log.Warn().Err(err).Str("rep_id", repID).Msg("territory cache write failed")
	}

	return overview, nil
}

// MonthlyMix rolls all accounts up into one synthetic fact row per month with
// recomputed percentage shares, sorted by month.
func (s *TerritoryService) MonthlyMix(ctx context.Context, repID string, year int) ([]domain.ProductMixMonthly, error) {
	facts, err := s.mix.ListForYear(ctx, repID, year)
	if err != nil {
		return nil, err
	}

	byMonth := make(map[int]*domain.ProductMixMonthly)
	for i := range facts {
		f := &facts[i]
		m, ok := byMonth[f.Month]
		if !ok {
			m = &domain.ProductMixMonthly{
				RepID:         repID,
				AccountNumber: "TERRITORY",
				Year:          year,
				Month:         f.Month,
			}
			byMonth[f.Month] = m
		}
		m.TotalSales += f.TotalSales
		m.TotalOrders += f.TotalOrders
		m.TotalQty += f.TotalQty
		m.AduraSales += f.AduraSales
		m.WoodLaminateSales += f.WoodLaminateSales
		m.SundriesSales += f.SundriesSales
		m.NsRespSales += f.NsRespSales
		m.SheetSales += f.SheetSales
	}

	result := make([]domain.ProductMixMonthly, 0, len(byMonth))
	for _, m := range byMonth {
		if m.TotalSales != 0 {
			m.AduraPct = m.AduraSales / m.TotalSales * 100
			m.WoodLaminatePct = m.WoodLaminateSales / m.TotalSales * 100
			m.SundriesPct = m.SundriesSales / m.TotalSales * 100
			m.NsRespPct = m.NsRespSales / m.TotalSales * 100
			m.SheetPct = m.SheetSales / m.TotalSales * 100
		}
		result = append(result, *m)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Month < result[j].Month })

	return result, nil
}

// ProductMix returns one account's months for a year, ascending.
func (s *TerritoryService) ProductMix(ctx context.Context, repID, accountNumber string, year int) ([]domain.ProductMixMonthly, error) {
	return s.mix.ListForAccount(ctx, repID, accountNumber, year)
}

// Dealers lists all dealer records for the rep.
func (s *TerritoryService) Dealers(ctx context.Context, repID string) ([]domain.DealerRecord, error) {
	return s.dealers.ListAll(ctx, repID)
}

// Targets returns the rep's annual targets row, or nil when unset.
func (s *TerritoryService) Targets(ctx context.Context, repID string, year int) (*domain.ProductMixTarget, error) {
	return s.targets.GetTargets(ctx, repID, year)
}

// SaveTargets upserts the rep's annual targets.
func (s *TerritoryService) SaveTargets(ctx context.Context, target *domain.ProductMixTarget) error {
	return s.targets.UpsertTargets(ctx, target)
}
