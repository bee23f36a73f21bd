package service

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/territoryiq/backend-go/internal/domain"
)

const (
	salesHeader   = "Customer - Parent  Account,Product Group - C O L0,Value,Quantity,Count\n"
	mappingHeader = "Customer - Parent  Account,Customer - Account  Number,Buying Group,EW Program\n"
)

func newImportFixture() (*ImportService, *stubDealerRepo, *stubMixRepo, *spyCache) {
	dealers := newStubDealerRepo()
	mix := newStubMixRepo()
	c := &spyCache{}
	return NewImportService(dealers, mix, c), dealers, mix, c
}

func TestImportAccountMapping(t *testing.T) {
	svc, dealers, _, _ := newImportFixture()

	csv := mappingHeader +
		"Acme Floors,A100,CarpetsPlus,Gold\n" +
		"Budget Carpet,B200,,\n" +
		",C300,,\n"

	result, err := svc.ImportAccountMapping(context.Background(), "rep-1", strings.NewReader(csv))
	require.NoError(t, err)

	assert.Equal(t, 2, result.Success)
	assert.Equal(t, 1, result.Errors)
	assert.Len(t, dealers.identities, 2)
	assert.Equal(t, "Acme Floors", dealers.identities["A100"].DealerName)
}

func TestImportAccountMappingPartialFailure(t *testing.T) {
	svc, dealers, _, _ := newImportFixture()
	dealers.failFor["B200"] = errStorage

	csv := mappingHeader +
		"Acme Floors,A100,,\n" +
		"Budget Carpet,B200,,\n" +
		"City Tile,C300,,\n"

	result, err := svc.ImportAccountMapping(context.Background(), "rep-1", strings.NewReader(csv))
	require.NoError(t, err)

	assert.Equal(t, 2, result.Success)
	assert.Equal(t, 1, result.Errors)
	require.Len(t, result.Details, 1)
	assert.Contains(t, result.Details[0], "Budget Carpet")
}

func TestImportAccountMappingBadHeader(t *testing.T) {
	svc, _, _, _ := newImportFixture()

	_, err := svc.ImportAccountMapping(context.Background(), "rep-1", strings.NewReader("Dealer,Account\nAcme,A100\n"))
	require.Error(t, err)
}

func TestPreviewSales(t *testing.T) {
	svc, dealers, _, _ := newImportFixture()
	dealers.registry = []domain.RegistryEntry{
		{DealerName: "Acme Floors", AccountNumber: "A100"},
	}

	csv := salesHeader +
		`Acme Floors,MANN. ADURA LUXURY TILE,"1,000",50,2` + "\n" +
		"Unknown Co,TITEBOND,300,5,1\n"

	preview, err := svc.PreviewSales(context.Background(), "rep-1", strings.NewReader(csv))
	require.NoError(t, err)

	assert.Equal(t, 1, preview.DealerCount)
	assert.Equal(t, 1000.0, preview.TotalSales)
	assert.Equal(t, []string{"Unknown Co"}, preview.UnmatchedDealers)
	require.Len(t, preview.TopDealers, 1)
	assert.Equal(t, "Acme Floors", preview.TopDealers[0].Name)
}

func TestPreviewSalesRegistryFailure(t *testing.T) {
	svc, dealers, _, _ := newImportFixture()
	dealers.listErr = errStorage

	_, err := svc.PreviewSales(context.Background(), "rep-1", strings.NewReader(salesHeader))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "dealer registry")
}

func TestCommitSales(t *testing.T) {
	svc, _, mix, spy := newImportFixture()

	acct := domain.AccountSales{AccountNumber: "A100"}
	acct.Sales.Adura = 1000
	acct.Orders.Adura = 2

	result, err := svc.CommitSales(context.Background(), "rep-1", 2026, 3, []domain.AccountSales{acct}, nil)
	require.NoError(t, err)

	assert.Equal(t, 1, result.Success)
	assert.Equal(t, 0, result.Errors)

	fact, ok := mix.facts[factKey("rep-1", "A100", 2026, 3)]
	require.True(t, ok)
	assert.Equal(t, 1000.0, fact.AduraSales)
	assert.Equal(t, 100.0, fact.AduraPct)
	assert.Equal(t, []string{"rep-1"}, spy.invalidations)
}

func TestCommitSalesIdempotent(t *testing.T) {
	svc, _, mix, _ := newImportFixture()

	acct := domain.AccountSales{AccountNumber: "A100"}
	acct.Sales.Sundries = 500
	parsed := []domain.AccountSales{acct}

	ctx := context.Background()
	_, err := svc.CommitSales(ctx, "rep-1", 2026, 3, parsed, nil)
	require.NoError(t, err)
	_, err = svc.CommitSales(ctx, "rep-1", 2026, 3, parsed, nil)
	require.NoError(t, err)

	// Re-committing the same period replaces, never duplicates
	count, err := svc.ExistingFactCount(ctx, "rep-1", 2026, 3)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
	assert.Equal(t, 500.0, mix.facts[factKey("rep-1", "A100", 2026, 3)].SundriesSales)
}

func TestCommitSalesPartialFailure(t *testing.T) {
	svc, _, mix, _ := newImportFixture()
	mix.failFor["B200"] = errStorage

	parsed := []domain.AccountSales{
		{AccountNumber: "A100"},
		{AccountNumber: "B200"},
		{AccountNumber: "C300"},
	}

	result, err := svc.CommitSales(context.Background(), "rep-1", 2026, 3, parsed, nil)
	require.NoError(t, err)

	assert.Equal(t, 2, result.Success)
	assert.Equal(t, 1, result.Errors)
	require.Len(t, result.Details, 1)
	assert.Contains(t, result.Details[0], "B200")
}

func TestCommitSalesCountsUnmatchedAsErrors(t *testing.T) {
	svc, _, _, _ := newImportFixture()

	result, err := svc.CommitSales(context.Background(), "rep-1", 2026, 3, nil, []string{"Unknown Co", "Other Co"})
	require.NoError(t, err)

	assert.Equal(t, 0, result.Success)
	assert.Equal(t, 2, result.Errors)
	assert.Contains(t, result.Details[0], "Unknown Co")
}
