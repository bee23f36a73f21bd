package pipeline

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const mappingHeader = "Customer - Parent  Account,Customer - Account  Number,Buying Group,EW Program\n"

func TestParseAccountMapping(t *testing.T) {
	csv := mappingHeader +
		"Acme Floors,A100,CarpetsPlus,Gold\n" +
		"Budget Carpet,B200,,\n"

	rows, skipped, err := ParseAccountMapping(strings.NewReader(csv))
	require.NoError(t, err)
	assert.Equal(t, 0, skipped)
	require.Len(t, rows, 2)

	assert.Equal(t, "Acme Floors", rows[0].DealerName)
	assert.Equal(t, "A100", rows[0].AccountNumber)
	require.NotNil(t, rows[0].BuyingGroup)
	assert.Equal(t, "CarpetsPlus", *rows[0].BuyingGroup)
	require.NotNil(t, rows[0].EWProgram)
	assert.Equal(t, "Gold", *rows[0].EWProgram)

	assert.Nil(t, rows[1].BuyingGroup)
	assert.Nil(t, rows[1].EWProgram)
}

func TestParseAccountMappingSkipsIncompleteRows(t *testing.T) {
	csv := mappingHeader +
		",A100,,\n" +
		"Acme Floors,,,\n" +
		"Budget Carpet,B200,,\n"

	rows, skipped, err := ParseAccountMapping(strings.NewReader(csv))
	require.NoError(t, err)
	assert.Equal(t, 2, skipped)
	require.Len(t, rows, 1)
	assert.Equal(t, "B200", rows[0].AccountNumber)
}

func TestParseAccountMappingMissingColumnFails(t *testing.T) {
	csv := "Dealer,Account\nAcme Floors,A100\n"

	_, _, err := ParseAccountMapping(strings.NewReader(csv))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing required column")
}
