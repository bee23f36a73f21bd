// internal/domain/category.go
package domain

// Category is one of the five product-mix buckets every mapped product
// group rolls up into.
type Category int

const (
	CategoryAdura Category = iota
	CategoryWoodLaminate
	CategorySundries
	CategoryNsResp
	CategorySheet
)

// Categories lists all buckets in display order.
var Categories = []Category{
	CategoryAdura,
	CategoryWoodLaminate,
	CategorySundries,
	CategoryNsResp,
	CategorySheet,
}

func (c Category) String() string {
	switch c {
	case CategoryAdura:
		return "adura"
	case CategoryWoodLaminate:
		return "wood_laminate"
	case CategorySundries:
		return "sundries"
	case CategoryNsResp:
		return "ns_resp"
	case CategorySheet:
		return "sheet"
	}
	return "unknown"
}

// Label returns the human-readable category name used on the dashboard.
func (c Category) Label() string {
	switch c {
	case CategoryAdura:
		return "Adura"
	case CategoryWoodLaminate:
		return "Wood/Laminate"
	case CategorySundries:
		return "Sundries"
	case CategoryNsResp:
		return "NS/Responsive"
	case CategorySheet:
		return "Sheet"
	}
	return "Unknown"
}

// productGroupCategories maps the raw "Product Group - C O L0" labels from the
// vendor sales export to a category. Matching is exact and case-sensitive.
// Append-only: when the vendor introduces a new product group it must be added
// here, otherwise its revenue silently disappears from every total.
var productGroupCategories = map[string]Category{
	"MANN. ADURA LUXURY TILE":      CategoryAdura,
	"BJELIN":                       CategoryWoodLaminate,
	"LAUZON WOOD":                  CategoryWoodLaminate,
	"PAD CARPENTER COMPANY":        CategorySundries,
	"RESPONSIVE INDUSTRIES":        CategoryNsResp,
	"SOMERSET WOOD":                CategoryWoodLaminate,
	"TITEBOND":                     CategorySundries,
	"MANN. LAMINATE FLOORING":      CategoryWoodLaminate,
	"NORTH STAR FLOORING":          CategoryNsResp,
	"PAD FUTURE FOAM":              CategorySundries,
	"BURKE-MERCER":                 CategorySundries,
	"MANNINGTON ON MAIN":           CategorySundries,
	"MANN. RESIDENTIAL VINYL":      CategorySheet,
	"DIVERSIFIED INDUSTRIES":       CategorySundries,
	"SUREPLY AND REVOLUTIONS":      CategorySundries,
	"MANN. WOOD":                   CategoryWoodLaminate,
	"MANN. RUBBER":                 CategorySundries,
	"MANN. COMMERCIAL VINYL & VCT": CategorySheet,
}

// CategoryForProductGroup resolves a raw product-group label to its category.
func CategoryForProductGroup(label string) (Category, bool) {
	c, ok := productGroupCategories[label]
	return c, ok
}

// CategoryTotals holds one float value per category (sales or quantity).
type CategoryTotals struct {
	Adura        float64 `json:"adura"`
	WoodLaminate float64 `json:"wood_laminate"`
	Sundries     float64 `json:"sundries"`
	NsResp       float64 `json:"ns_resp"`
	Sheet        float64 `json:"sheet"`
}

// Add accumulates v into the bucket for c.
func (t *CategoryTotals) Add(c Category, v float64) {
	switch c {
	case CategoryAdura:
		t.Adura += v
	case CategoryWoodLaminate:
		t.WoodLaminate += v
	case CategorySundries:
		t.Sundries += v
	case CategoryNsResp:
		t.NsResp += v
	case CategorySheet:
		t.Sheet += v
	}
}

// Get returns the bucket value for c.
func (t CategoryTotals) Get(c Category) float64 {
	switch c {
	case CategoryAdura:
		return t.Adura
	case CategoryWoodLaminate:
		return t.WoodLaminate
	case CategorySundries:
		return t.Sundries
	case CategoryNsResp:
		return t.NsResp
	case CategorySheet:
		return t.Sheet
	}
	return 0
}

// Total sums all five buckets.
func (t CategoryTotals) Total() float64 {
	return t.Adura + t.WoodLaminate + t.Sundries + t.NsResp + t.Sheet
}

// CategoryCounts holds one integer count per category (order counts).
type CategoryCounts struct {
	Adura        int `json:"adura"`
	WoodLaminate int `json:"wood_laminate"`
	Sundries     int `json:"sundries"`
	NsResp       int `json:"ns_resp"`
	Sheet        int `json:"sheet"`
}

func (t *CategoryCounts) Add(c Category, v int) {
	switch c {
	case CategoryAdura:
		t.Adura += v
	case CategoryWoodLaminate:
		t.WoodLaminate += v
	case CategorySundries:
		t.Sundries += v
	case CategoryNsResp:
		t.NsResp += v
	case CategorySheet:
		t.Sheet += v
	}
}

func (t CategoryCounts) Get(c Category) int {
	switch c {
	case CategoryAdura:
		return t.Adura
	case CategoryWoodLaminate:
		return t.WoodLaminate
	case CategorySundries:
		return t.Sundries
	case CategoryNsResp:
		return t.NsResp
	case CategorySheet:
		return t.Sheet
	}
	return 0
}

// Total sums all five buckets.
func (t CategoryCounts) Total() int {
	return t.Adura + t.WoodLaminate + t.Sundries + t.NsResp + t.Sheet
}
