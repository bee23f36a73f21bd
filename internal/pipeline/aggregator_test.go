package pipeline

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/territoryiq/backend-go/internal/domain"
)

func acmeRegistry() *Reconciler {
	return NewReconciler([]domain.RegistryEntry{
		{DealerName: "Acme Floors", AccountNumber: "A100"},
		{DealerName: "Budget Carpet", AccountNumber: "B200"},
	})
}

func TestAggregateSingleDealer(t *testing.T) {
	lines := []SalesLine{
		{DealerName: "Acme Floors", ProductGroup: "MANN. ADURA LUXURY TILE", Value: 1000, Quantity: 50, Orders: 2},
	}

	agg := Aggregate(lines, acmeRegistry())
	require.Len(t, agg.Accounts, 1)

	acct := agg.Accounts[0]
	assert.Equal(t, "A100", acct.AccountNumber)
	assert.Equal(t, 1000.0, acct.Sales.Adura)
	assert.Equal(t, 50.0, acct.Qty.Adura)
	assert.Equal(t, 2, acct.Orders.Adura)
	assert.Equal(t, 1000.0, acct.Sales.Total())
}

func TestAggregateAccumulatesPerAccount(t *testing.T) {
	lines := []SalesLine{
		{DealerName: "Acme Floors", ProductGroup: "MANN. ADURA LUXURY TILE", Value: 600, Orders: 1},
		{DealerName: "Budget Carpet", ProductGroup: "TITEBOND", Value: 100, Orders: 1},
		{DealerName: "Acme Floors", ProductGroup: "MANN. ADURA LUXURY TILE", Value: 400, Orders: 2},
		{DealerName: "Acme Floors", ProductGroup: "SOMERSET WOOD", Value: 250, Orders: 1},
	}

	agg := Aggregate(lines, acmeRegistry())
	require.Len(t, agg.Accounts, 2)

	// First-seen account order
	assert.Equal(t, "A100", agg.Accounts[0].AccountNumber)
	assert.Equal(t, "B200", agg.Accounts[1].AccountNumber)

	acme := agg.Accounts[0]
	assert.Equal(t, 1000.0, acme.Sales.Adura)
	assert.Equal(t, 250.0, acme.Sales.WoodLaminate)
	assert.Equal(t, 3, acme.Orders.Adura)
	assert.Equal(t, 1250.0, acme.Sales.Total())
}

func TestAggregateDropsUnmatchedDealers(t *testing.T) {
	lines := []SalesLine{
		{DealerName: "Unknown Co", ProductGroup: "MANN. ADURA LUXURY TILE", Value: 999},
		{DealerName: "Acme Floors", ProductGroup: "TITEBOND", Value: 100},
	}

	agg := Aggregate(lines, acmeRegistry())
	require.Len(t, agg.Accounts, 1)
	assert.Equal(t, "A100", agg.Accounts[0].AccountNumber)
	assert.Equal(t, []string{"Unknown Co"}, agg.unmatched)
}

func TestAggregateTracksUnmappedGroups(t *testing.T) {
	lines := []SalesLine{
		{DealerName: "Acme Floors", ProductGroup: "MYSTERY BRAND", Value: 300},
		{DealerName: "Acme Floors", ProductGroup: "MYSTERY BRAND", Value: 200},
		{DealerName: "Acme Floors", ProductGroup: "TITEBOND", Value: 100},
	}

	agg := Aggregate(lines, acmeRegistry())
	require.Len(t, agg.Accounts, 1)

	// Unmapped revenue never reaches any bucket or total
	assert.Equal(t, 100.0, agg.Accounts[0].Sales.Total())
	assert.Equal(t, []string{"MYSTERY BRAND"}, agg.UnmappedGroups)
	assert.Equal(t, 500.0, agg.UnmappedValue)
}

func TestBuildPreviewTotalsAndWarnings(t *testing.T) {
	lines := []SalesLine{
		{DealerName: "Acme Floors", ProductGroup: "MANN. ADURA LUXURY TILE", Value: 1000, Orders: 2},
		{DealerName: "Budget Carpet", ProductGroup: "TITEBOND", Value: 400, Orders: 1},
		{DealerName: "Unknown Co", ProductGroup: "TITEBOND", Value: 50, Orders: 1},
		{DealerName: "Acme Floors", ProductGroup: "MYSTERY BRAND", Value: 75},
	}

	agg := Aggregate(lines, acmeRegistry())
	preview := agg.BuildPreview(map[string]string{"A100": "Acme Floors", "B200": "Budget Carpet"})

	assert.Equal(t, 2, preview.DealerCount)
	assert.Equal(t, 1400.0, preview.TotalSales)
	assert.Equal(t, 3, preview.TotalOrders)
	assert.Equal(t, 1000.0, preview.ByCategory.Adura)
	assert.Equal(t, 400.0, preview.ByCategory.Sundries)

	// Category breakdown always sums to the grand total
	assert.Equal(t, preview.TotalSales, preview.ByCategory.Total())

	require.Len(t, preview.TopDealers, 2)
	assert.Equal(t, "Acme Floors", preview.TopDealers[0].Name)
	assert.Equal(t, 1000.0, preview.TopDealers[0].Sales)

	assert.Equal(t, []string{"Unknown Co"}, preview.UnmatchedDealers)
	require.Len(t, preview.Warnings, 2)
	assert.Contains(t, preview.Warnings[0], "Unknown Co")
	assert.Contains(t, preview.Warnings[1], "MYSTERY BRAND")
}

func TestBuildPreviewTopDealersTruncatedAndStable(t *testing.T) {
	var entries []domain.RegistryEntry
	var lines []SalesLine
	for i := 0; i < 12; i++ {
		name := string(rune('A'+i)) + " Flooring"
		account := string(rune('A'+i)) + "100"
		entries = append(entries, domain.RegistryEntry{DealerName: name, AccountNumber: account})
		// All equal sales, so the stable sort keeps first-seen order
		lines = append(lines, SalesLine{DealerName: name, ProductGroup: "TITEBOND", Value: 100})
	}

	agg := Aggregate(lines, NewReconciler(entries))
	preview := agg.BuildPreview(nil)

	require.Len(t, preview.TopDealers, 10)
	// No name map given, so account numbers stand in
	assert.Equal(t, "A100", preview.TopDealers[0].Name)
	assert.Equal(t, "J100", preview.TopDealers[9].Name)
}

func TestBuildPreviewEmptyReport(t *testing.T) {
	agg := Aggregate(nil, NewReconciler(nil))
	preview := agg.BuildPreview(nil)

	assert.Equal(t, 0, preview.DealerCount)
	assert.Equal(t, 0.0, preview.TotalSales)
	assert.Empty(t, preview.Warnings)
	assert.NotNil(t, preview.UnmatchedDealers)
}

func TestBuildFactPercentages(t *testing.T) {
	acct := domain.AccountSales{AccountNumber: "A100"}
	acct.Sales.Adura = 750
	acct.Sales.Sundries = 250
	acct.Qty.Adura = 30
	acct.Orders.Adura = 3
	acct.Orders.Sundries = 1

	fact := BuildFact("rep-1", 2026, 3, acct)

	assert.Equal(t, "rep-1", fact.RepID)
	assert.Equal(t, "A100", fact.AccountNumber)
	assert.Equal(t, 2026, fact.Year)
	assert.Equal(t, 3, fact.Month)

	assert.Equal(t, 1000.0, fact.TotalSales)
	assert.Equal(t, 4, fact.TotalOrders)
	assert.Equal(t, 75.0, fact.AduraPct)
	assert.Equal(t, 25.0, fact.SundriesPct)
	assert.Equal(t, 0.0, fact.SheetPct)

	sum := fact.AduraPct + fact.WoodLaminatePct + fact.SundriesPct + fact.NsRespPct + fact.SheetPct
	assert.InDelta(t, 100.0, sum, 1e-9)
}

func TestBuildFactNegativeTotal(t *testing.T) {
	// Returns exceeding sales net a negative month; shares are still computed
	acct := domain.AccountSales{AccountNumber: "A100"}
	acct.Sales.Adura = -80
	acct.Sales.Sundries = 40

	fact := BuildFact("rep-1", 2026, 2, acct)

	assert.Equal(t, -40.0, fact.TotalSales)
	assert.Equal(t, 200.0, fact.AduraPct)
	assert.Equal(t, -100.0, fact.SundriesPct)
}

func TestBuildFactZeroTotal(t *testing.T) {
	fact := BuildFact("rep-1", 2026, 3, domain.AccountSales{AccountNumber: "A100"})

	assert.Equal(t, 0.0, fact.TotalSales)
	assert.Equal(t, 0.0, fact.AduraPct)
	assert.Equal(t, 0.0, fact.WoodLaminatePct)
	assert.Equal(t, 0.0, fact.SundriesPct)
	assert.Equal(t, 0.0, fact.NsRespPct)
	assert.Equal(t, 0.0, fact.SheetPct)
}

func TestBuildFactSingleDealerFullShare(t *testing.T) {
	csv := salesHeader + `Acme Floors,MANN. ADURA LUXURY TILE,"1,000",50,2` + "\n"

	lines, err := ParseSalesReport(strings.NewReader(csv))
	require.NoError(t, err)

	agg := Aggregate(lines, acmeRegistry())
	require.Len(t, agg.Accounts, 1)

	fact := BuildFact("rep-1", 2026, 1, agg.Accounts[0])
	assert.Equal(t, 1000.0, fact.AduraSales)
	assert.Equal(t, 1000.0, fact.TotalSales)
	assert.Equal(t, 100.0, fact.AduraPct)
	assert.Equal(t, 50.0, fact.AduraQty)
	assert.Equal(t, 2, fact.AduraOrders)
}
