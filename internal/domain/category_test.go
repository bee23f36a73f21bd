package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCategoryForProductGroup(t *testing.T) {
	tests := []struct {
		group string
		want  Category
	}{
		{"MANN. ADURA LUXURY TILE", CategoryAdura},
		{"SOMERSET WOOD", CategoryWoodLaminate},
		{"MANN. LAMINATE FLOORING", CategoryWoodLaminate},
		{"TITEBOND", CategorySundries},
		{"PAD FUTURE FOAM", CategorySundries},
		{"NORTH STAR FLOORING", CategoryNsResp},
		{"RESPONSIVE INDUSTRIES", CategoryNsResp},
		{"MANN. RESIDENTIAL VINYL", CategorySheet},
		{"MANN. COMMERCIAL VINYL & VCT", CategorySheet},
	}

	for _, tt := range tests {
		got, ok := CategoryForProductGroup(tt.group)
		assert.True(t, ok, tt.group)
		assert.Equal(t, tt.want, got, tt.group)
	}
}

func TestCategoryForProductGroupExactMatchOnly(t *testing.T) {
	_, ok := CategoryForProductGroup("titebond")
	assert.False(t, ok)

	_, ok = CategoryForProductGroup("TITEBOND ")
	assert.False(t, ok)

	_, ok = CategoryForProductGroup("NEW VENDOR LINE")
	assert.False(t, ok)
}

func TestCategoryTotals(t *testing.T) {
	var totals CategoryTotals
	totals.Add(CategoryAdura, 100)
	totals.Add(CategoryAdura, 50)
	totals.Add(CategorySheet, 25)

	assert.Equal(t, 150.0, totals.Get(CategoryAdura))
	assert.Equal(t, 25.0, totals.Get(CategorySheet))
	assert.Equal(t, 0.0, totals.Get(CategorySundries))
	assert.Equal(t, 175.0, totals.Total())
}

func TestCategoryCounts(t *testing.T) {
	var counts CategoryCounts
	for _, c := range Categories {
		counts.Add(c, 2)
	}
	assert.Equal(t, 10, counts.Total())
	assert.Equal(t, 2, counts.Get(CategoryNsResp))
}

func TestCategoryStrings(t *testing.T) {
	assert.Equal(t, "adura", CategoryAdura.String())
	assert.Equal(t, "NS/Responsive", CategoryNsResp.Label())
	assert.Equal(t, "Wood/Laminate", CategoryWoodLaminate.Label())
}
