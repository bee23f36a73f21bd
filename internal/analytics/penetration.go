// internal/analytics/penetration.go
package analytics

import (
	"math"
	"sort"

	"github.com/territoryiq/backend-go/internal/domain"
)

// ComputePenetration derives the territory-wide gap analysis from the live
// dealer set: per-category engaged/active counts, the overall penetration
// percentage, and the ranked opportunity list. One in-memory pass; the dealer
// set is a few hundred rows at most.
func ComputePenetration(dealers []domain.DealerRecord) domain.PenetrationStats {
	stats := domain.PenetrationStats{
		SegmentPenetration:  penetrationFor(dealers, domain.SegmentAttributes()),
		StockingPenetration: penetrationFor(dealers, domain.StockingAttributes()),
		Opportunities:       []domain.DealerOpportunity{},
	}

	for _, p := range stats.SegmentPenetration {
		stats.TotalActivePositions += p.Active
		stats.TotalPossiblePositions += p.Engaged
	}
	for _, p := range stats.StockingPenetration {
		stats.TotalActivePositions += p.Active
		stats.TotalPossiblePositions += p.Engaged
	}
	stats.OverallPenetrationPct = roundedPct(stats.TotalActivePositions, stats.TotalPossiblePositions)

	stats.Opportunities = opportunities(dealers)
	return stats
}

func penetrationFor(dealers []domain.DealerRecord, attrs []domain.Attribute) []domain.CategoryPenetration {
	result := make([]domain.CategoryPenetration, 0, len(attrs))
	for _, attr := range attrs {
		var engaged, active int
		for i := range dealers {
			d := &dealers[i]
			if !attr.Engaged(d) {
				continue
			}
			engaged++
			if attr.Active(d) {
				active++
			}
		}
		result = append(result, domain.CategoryPenetration{
			Label:          attr.Label,
			Engaged:        engaged,
			Active:         active,
			Gap:            engaged - active,
			PenetrationPct: roundedPct(active, engaged),
		})
	}
	return result
}

// opportunities collects dealers with at least one engaged-but-not-active
// category, sorted descending by gap count. The sort is stable so ties keep
// the original dealer order; the list is truncated to the top 10.
func opportunities(dealers []domain.DealerRecord) []domain.DealerOpportunity {
	attrs := domain.AllAttributes()
	opps := make([]domain.DealerOpportunity, 0)

	for i := range dealers {
		d := &dealers[i]
		var gaps []string
		for _, attr := range attrs {
			if attr.Engaged(d) && !attr.Active(d) {
				gaps = append(gaps, attr.Label)
			}
		}
		if len(gaps) == 0 {
			continue
		}
		opps = append(opps, domain.DealerOpportunity{
			ID:            d.ID,
			DealerName:    d.DealerName,
			AccountNumber: d.AccountNumber,
			Categories:    gaps,
		})
	}

	sort.SliceStable(opps, func(i, j int) bool {
		return len(opps[i].Categories) > len(opps[j].Categories)
	})
	if len(opps) > 10 {
		opps = opps[:10]
	}
	return opps
}

func roundedPct(active, engaged int) int {
	if engaged <= 0 {
		return 0
	}
	return int(math.Round(float64(active) / float64(engaged) * 100))
}
