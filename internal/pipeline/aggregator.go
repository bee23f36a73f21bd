// internal/pipeline/aggregator.go
package pipeline

import (
	"fmt"
	"sort"
	"strings"

	"github.com/territoryiq/backend-go/internal/domain"
)

// Aggregation is the result of folding a sales report into per-account
// category totals for a single period.
type Aggregation struct {
	// Accounts in first-seen order, one entry per distinct account number.
	Accounts []domain.AccountSales

	// Unmapped product groups in first-seen order and the revenue they
	// carried. These rows contribute to no total; the warning is the only
	// trace of them.
	UnmappedGroups []string
	UnmappedValue  float64

	unmatched []string
}

// Aggregate reconciles and accumulates parsed sales lines. Lines whose dealer
// name is not in the registry are dropped (and reported through the
// reconciler); lines with an unmapped product group are dropped but tracked.
func Aggregate(lines []SalesLine, rec *Reconciler) *Aggregation {
	agg := &Aggregation{}
	index := make(map[string]int)
	seenGroups := make(map[string]struct{})

	for _, line := range lines {
		account, ok := rec.Resolve(line.DealerName)
		if !ok {
			continue
		}

		category, mapped := domain.CategoryForProductGroup(line.ProductGroup)
		if !mapped {
			if _, seen := seenGroups[line.ProductGroup]; !seen {
				seenGroups[line.ProductGroup] = struct{}{}
				agg.UnmappedGroups = append(agg.UnmappedGroups, line.ProductGroup)
			}
			agg.UnmappedValue += line.Value
			continue
		}

		i, ok := index[account]
		if !ok {
			i = len(agg.Accounts)
			index[account] = i
			agg.Accounts = append(agg.Accounts, domain.AccountSales{AccountNumber: account})
		}

		agg.Accounts[i].Sales.Add(category, line.Value)
		agg.Accounts[i].Qty.Add(category, line.Quantity)
		agg.Accounts[i].Orders.Add(category, line.Orders)
	}

	agg.unmatched = rec.Unmatched()
	return agg
}

// BuildPreview derives the confirmation summary shown to the user before
// anything is written: grand totals, category breakdown, top dealers by sales
// and the warning list. Dealer names in the top list come from the registry
// lookup the caller already did, so only account numbers are available here.
func (a *Aggregation) BuildPreview(dealerNames map[string]string) *domain.SalesPreview {
	preview := &domain.SalesPreview{
		ParsedData:       a.Accounts,
		DealerCount:      len(a.Accounts),
		Warnings:         []string{},
		UnmatchedDealers: a.unmatched,
	}
	if preview.UnmatchedDealers == nil {
		preview.UnmatchedDealers = []string{}
	}

	type ranked struct {
		name  string
		sales float64
	}
	top := make([]ranked, 0, len(a.Accounts))

	for _, acct := range a.Accounts {
		for _, c := range domain.Categories {
			preview.ByCategory.Add(c, acct.Sales.Get(c))
			preview.ByCategoryOrders.Add(c, acct.Orders.Get(c))
		}
		name := dealerNames[acct.AccountNumber]
		if name == "" {
			name = acct.AccountNumber
		}
		top = append(top, ranked{name: name, sales: acct.Sales.Total()})
	}

	preview.TotalSales = preview.ByCategory.Total()
	preview.TotalOrders = preview.ByCategoryOrders.Total()

	sort.SliceStable(top, func(i, j int) bool { return top[i].sales > top[j].sales })
	if len(top) > 10 {
		top = top[:10]
	}
	preview.TopDealers = make([]domain.TopDealer, 0, len(top))
	for _, t := range top {
		preview.TopDealers = append(preview.TopDealers, domain.TopDealer{Name: t.name, Sales: t.sales})
	}

	if len(a.unmatched) > 0 {
		preview.Warnings = append(preview.Warnings,
			fmt.Sprintf("Dealers not found (upload dealer list first): %s", strings.Join(a.unmatched, ", ")))
	}
	if len(a.UnmappedGroups) > 0 {
		preview.Warnings = append(preview.Warnings,
			fmt.Sprintf("Unmapped product groups excluded from totals (%.2f in sales): %s",
				a.UnmappedValue, strings.Join(a.UnmappedGroups, ", ")))
	}

	return preview
}

// BuildFact turns one account's aggregated totals into a fact row for the
// target period, computing grand totals and percentage shares. Percentages
// are 0 across the board when total sales is 0.
func BuildFact(repID string, year, month int, acct domain.AccountSales) domain.ProductMixMonthly {
	fact := domain.ProductMixMonthly{
		RepID:         repID,
		AccountNumber: acct.AccountNumber,
		Year:          year,
		Month:         month,

		AduraSales:        acct.Sales.Adura,
		WoodLaminateSales: acct.Sales.WoodLaminate,
		SundriesSales:     acct.Sales.Sundries,
		NsRespSales:       acct.Sales.NsResp,
		SheetSales:        acct.Sales.Sheet,

		AduraQty:        acct.Qty.Adura,
		WoodLaminateQty: acct.Qty.WoodLaminate,
		SundriesQty:     acct.Qty.Sundries,
		NsRespQty:       acct.Qty.NsResp,
		SheetQty:        acct.Qty.Sheet,

		AduraOrders:        acct.Orders.Adura,
		WoodLaminateOrders: acct.Orders.WoodLaminate,
		SundriesOrders:     acct.Orders.Sundries,
		NsRespOrders:       acct.Orders.NsResp,
		SheetOrders:        acct.Orders.Sheet,

		TotalSales:  acct.Sales.Total(),
		TotalQty:    acct.Qty.Total(),
		TotalOrders: acct.Orders.Total(),
	}

	fact.AduraPct = percentage(fact.AduraSales, fact.TotalSales)
	fact.WoodLaminatePct = percentage(fact.WoodLaminateSales, fact.TotalSales)
	fact.SundriesPct = percentage(fact.SundriesSales, fact.TotalSales)
	fact.NsRespPct = percentage(fact.NsRespSales, fact.TotalSales)
	fact.SheetPct = percentage(fact.SheetSales, fact.TotalSales)

	return fact
}

// percentage computes a category's share for any non-zero total. A
// credit-heavy month can net negative and still gets shares.
func percentage(part, total float64) float64 {
	if total == 0 {
		return 0
	}
	return part / total * 100
}
