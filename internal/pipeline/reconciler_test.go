package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/territoryiq/backend-go/internal/domain"
)

func TestReconcilerResolve(t *testing.T) {
	rec := NewReconciler([]domain.RegistryEntry{
		{DealerName: "Acme Floors", AccountNumber: "A100"},
		{DealerName: "Budget Carpet ", AccountNumber: "B200"},
	})

	account, ok := rec.Resolve("Acme Floors")
	assert.True(t, ok)
	assert.Equal(t, "A100", account)

	// Surrounding whitespace is trimmed on both sides of the match
	account, ok = rec.Resolve("  Budget Carpet ")
	assert.True(t, ok)
	assert.Equal(t, "B200", account)

	// A registry hit never lands in the unmatched list
	assert.Empty(t, rec.Unmatched())
}

func TestReconcilerCaseSensitive(t *testing.T) {
	rec := NewReconciler([]domain.RegistryEntry{
		{DealerName: "Acme Floors", AccountNumber: "A100"},
	})

	_, ok := rec.Resolve("ACME FLOORS")
	assert.False(t, ok)
	assert.Equal(t, []string{"ACME FLOORS"}, rec.Unmatched())
}

func TestReconcilerUnmatchedDedupedInOrder(t *testing.T) {
	rec := NewReconciler(nil)

	for i := 0; i < 3; i++ {
		_, ok := rec.Resolve("Unknown Co")
		assert.False(t, ok)
	}
	rec.Resolve("Another Co")
	rec.Resolve("Unknown Co")

	assert.Equal(t, []string{"Unknown Co", "Another Co"}, rec.Unmatched())
}
