// internal/domain/overview.go
package domain

// CategoryPenetration is the engaged/active breakdown for one engagement
// matrix column, computed fresh from the live dealer set.
type CategoryPenetration struct {
	Label          string `json:"label"`
	Engaged        int    `json:"engaged"`
	Active         int    `json:"active"`
	Gap            int    `json:"gap"`
	PenetrationPct int    `json:"penetration_pct"`
}

// DealerOpportunity is a dealer with at least one category that is engaged
// but not yet served by us.
type DealerOpportunity struct {
	ID            string   `json:"id"`
	DealerName    string   `json:"dealer_name"`
	AccountNumber string   `json:"account_number"`
	Categories    []string `json:"categories"`
}

// PenetrationStats is the territory-wide gap analysis over the dealer matrix.
type PenetrationStats struct {
	SegmentPenetration     []CategoryPenetration `json:"segment_penetration"`
	StockingPenetration    []CategoryPenetration `json:"stocking_penetration"`
	TotalActivePositions   int                   `json:"total_active_positions"`
	TotalPossiblePositions int                   `json:"total_possible_positions"`
	OverallPenetrationPct  int                   `json:"overall_penetration_pct"`
	Opportunities          []DealerOpportunity   `json:"opportunities"`
}

// TerritoryTopDealer ranks a dealer by annual sales in the overview.
type TerritoryTopDealer struct {
	DealerName    string  `json:"dealer_name"`
	AccountNumber string  `json:"account_number"`
	TotalSales    float64 `json:"total_sales"`
	TotalOrders   int     `json:"total_orders"`
}

// TerritoryOverview is the year-scoped rollup of all fact rows for a rep,
// merged with the penetration analytics.
type TerritoryOverview struct {
	TotalSales     float64              `json:"total_sales"`
	TotalOrders    int                  `json:"total_orders"`
	TotalQty       float64              `json:"total_qty"`
	DealerCount    int                  `json:"dealer_count"`
	CategorySales  CategoryTotals       `json:"category_sales"`
	CategoryOrders CategoryCounts       `json:"category_orders"`
	TopDealers     []TerritoryTopDealer `json:"top_dealers"`
	PenetrationStats
}
