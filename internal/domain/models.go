// internal/domain/models.go
package domain

import "time"

// DealerRecord is a dealer account owned by a rep, including the engagement
// matrix tracked for market segments and stocking categories. For each
// category the first boolean means the dealer operates in it at all and the
// *_active boolean means the category is currently served by us.
type DealerRecord struct {
	ID            string  `json:"id" db:"id"`
	RepID         string  `json:"rep_id" db:"rep_id"`
	AccountNumber string  `json:"account_number" db:"account_number"`
	DealerName    string  `json:"dealer_name" db:"dealer_name"`
	LocationCount int     `json:"location_count" db:"location_count"`
	BuyingGroup   *string `json:"buying_group" db:"buying_group"`
	EWProgram     *string `json:"ew_program" db:"ew_program"`

	// Market segments
	Retail                        bool    `json:"retail" db:"retail"`
	RetailActive                  bool    `json:"retail_active" db:"retail_active"`
	RetailNote                    *string `json:"retail_note" db:"retail_note"`
	BuilderDealerControlled       bool    `json:"builder_dealer_controlled" db:"builder_dealer_controlled"`
	BuilderDealerControlledActive bool    `json:"builder_dealer_controlled_active" db:"builder_dealer_controlled_active"`
	BuilderDealerControlledNote   *string `json:"builder_dealer_controlled_note" db:"builder_dealer_controlled_note"`
	BuilderNationalSpec           bool    `json:"builder_national_spec" db:"builder_national_spec"`
	BuilderNationalSpecActive     bool    `json:"builder_national_spec_active" db:"builder_national_spec_active"`
	BuilderNationalSpecNote       *string `json:"builder_national_spec_note" db:"builder_national_spec_note"`
	CommercialNegotiated          bool    `json:"commercial_negotiated" db:"commercial_negotiated"`
	CommercialNegotiatedActive    bool    `json:"commercial_negotiated_active" db:"commercial_negotiated_active"`
	CommercialNegotiatedNote      *string `json:"commercial_negotiated_note" db:"commercial_negotiated_note"`
	CommercialSpecBids            bool    `json:"commercial_spec_bids" db:"commercial_spec_bids"`
	CommercialSpecBidsActive      bool    `json:"commercial_spec_bids_active" db:"commercial_spec_bids_active"`
	CommercialSpecBidsNote        *string `json:"commercial_spec_bids_note" db:"commercial_spec_bids_note"`
	WholesaleToInstallers         bool    `json:"wholesale_to_installers" db:"wholesale_to_installers"`
	WholesaleToInstallersActive   bool    `json:"wholesale_to_installers_active" db:"wholesale_to_installers_active"`
	WholesaleToInstallersNote     *string `json:"wholesale_to_installers_note" db:"wholesale_to_installers_note"`
	MultifamilyReplacement        bool    `json:"multifamily_replacement" db:"multifamily_replacement"`
	MultifamilyReplacementActive  bool    `json:"multifamily_replacement_active" db:"multifamily_replacement_active"`
	MultifamilyReplacementNote    *string `json:"multifamily_replacement_note" db:"multifamily_replacement_note"`
	MultifamilyNew                bool    `json:"multifamily_new" db:"multifamily_new"`
	MultifamilyNewActive          bool    `json:"multifamily_new_active" db:"multifamily_new_active"`
	MultifamilyNewNote            *string `json:"multifamily_new_note" db:"multifamily_new_note"`

	// Stocking categories
	StockingWPC            bool    `json:"stocking_wpc" db:"stocking_wpc"`
	StockingWPCActive      bool    `json:"stocking_wpc_active" db:"stocking_wpc_active"`
	StockingWPCNote        *string `json:"stocking_wpc_note" db:"stocking_wpc_note"`
	StockingSPC            bool    `json:"stocking_spc" db:"stocking_spc"`
	StockingSPCActive      bool    `json:"stocking_spc_active" db:"stocking_spc_active"`
	StockingSPCNote        *string `json:"stocking_spc_note" db:"stocking_spc_note"`
	StockingWood           bool    `json:"stocking_wood" db:"stocking_wood"`
	StockingWoodActive     bool    `json:"stocking_wood_active" db:"stocking_wood_active"`
	StockingWoodNote       *string `json:"stocking_wood_note" db:"stocking_wood_note"`
	StockingSpecials       bool    `json:"stocking_specials" db:"stocking_specials"`
	StockingSpecialsActive bool    `json:"stocking_specials_active" db:"stocking_specials_active"`
	StockingSpecialsNote   *string `json:"stocking_specials_note" db:"stocking_specials_note"`
	StockingPad            bool    `json:"stocking_pad" db:"stocking_pad"`
	StockingPadActive      bool    `json:"stocking_pad_active" db:"stocking_pad_active"`
	StockingPadNote        *string `json:"stocking_pad_note" db:"stocking_pad_note"`
	StockingRevPly         bool    `json:"stocking_rev_ply" db:"stocking_rev_ply"`
	StockingRevPlyActive   bool    `json:"stocking_rev_ply_active" db:"stocking_rev_ply_active"`
	StockingRevPlyNote     *string `json:"stocking_rev_ply_note" db:"stocking_rev_ply_note"`

	Notes       *string   `json:"notes" db:"notes"`
	LastUpdated time.Time `json:"last_updated" db:"last_updated"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}

// RegistryEntry is the minimal dealer identity used to reconcile free-text
// names in sales reports against account numbers.
type RegistryEntry struct {
	DealerName    string `json:"dealer_name" db:"dealer_name"`
	AccountNumber string `json:"account_number" db:"account_number"`
}

// DealerIdentity is one row from the account-mapping CSV.
type DealerIdentity struct {
	DealerName    string  `json:"dealer_name"`
	AccountNumber string  `json:"account_number"`
	BuyingGroup   *string `json:"buying_group"`
	EWProgram     *string `json:"ew_program"`
}

// ProductMixMonthly is one sales fact row per (rep, account, year, month).
// Re-uploading a period fully replaces the row.
type ProductMixMonthly struct {
	ID            string `json:"id" db:"id"`
	RepID         string `json:"rep_id" db:"rep_id"`
	AccountNumber string `json:"account_number" db:"account_number"`
	Year          int    `json:"year" db:"year"`
	Month         int    `json:"month" db:"month"`

	AduraSales        float64 `json:"adura_sales" db:"adura_sales"`
	WoodLaminateSales float64 `json:"wood_laminate_sales" db:"wood_laminate_sales"`
	SundriesSales     float64 `json:"sundries_sales" db:"sundries_sales"`
	NsRespSales       float64 `json:"ns_resp_sales" db:"ns_resp_sales"`
	SheetSales        float64 `json:"sheet_sales" db:"sheet_sales"`

	AduraQty        float64 `json:"adura_qty" db:"adura_qty"`
	WoodLaminateQty float64 `json:"wood_laminate_qty" db:"wood_laminate_qty"`
	SundriesQty     float64 `json:"sundries_qty" db:"sundries_qty"`
	NsRespQty       float64 `json:"ns_resp_qty" db:"ns_resp_qty"`
	SheetQty        float64 `json:"sheet_qty" db:"sheet_qty"`

	AduraOrders        int `json:"adura_orders" db:"adura_orders"`
	WoodLaminateOrders int `json:"wood_laminate_orders" db:"wood_laminate_orders"`
	SundriesOrders     int `json:"sundries_orders" db:"sundries_orders"`
	NsRespOrders       int `json:"ns_resp_orders" db:"ns_resp_orders"`
	SheetOrders        int `json:"sheet_orders" db:"sheet_orders"`

	AduraPct        float64 `json:"adura_pct" db:"adura_pct"`
	WoodLaminatePct float64 `json:"wood_laminate_pct" db:"wood_laminate_pct"`
	SundriesPct     float64 `json:"sundries_pct" db:"sundries_pct"`
	NsRespPct       float64 `json:"ns_resp_pct" db:"ns_resp_pct"`
	SheetPct        float64 `json:"sheet_pct" db:"sheet_pct"`

	TotalSales  float64 `json:"total_sales" db:"total_sales"`
	TotalQty    float64 `json:"total_qty" db:"total_qty"`
	TotalOrders int     `json:"total_orders" db:"total_orders"`

	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// ProductMixTarget holds per-category annual targets for a rep.
type ProductMixTarget struct {
	ID                 string    `json:"id" db:"id"`
	RepID              string    `json:"rep_id" db:"rep_id"`
	Year               int       `json:"year" db:"year"`
	AduraTarget        float64   `json:"adura_target" db:"adura_target"`
	WoodLaminateTarget float64   `json:"wood_laminate_target" db:"wood_laminate_target"`
	SundriesTarget     float64   `json:"sundries_target" db:"sundries_target"`
	NsRespTarget       float64   `json:"ns_resp_target" db:"ns_resp_target"`
	SheetTarget        float64   `json:"sheet_target" db:"sheet_target"`
	CreatedAt          time.Time `json:"created_at" db:"created_at"`
	UpdatedAt          time.Time `json:"updated_at" db:"updated_at"`
}

// AccountSales is the aggregated per-account slice of one sales report,
// carried from the preview phase to the commit phase.
type AccountSales struct {
	AccountNumber string         `json:"account_number"`
	Sales         CategoryTotals `json:"sales"`
	Qty           CategoryTotals `json:"qty"`
	Orders        CategoryCounts `json:"orders"`
}

// ImportResult summarizes a batch import: rows written, rows failed, and a
// human-readable detail line per failure.
type ImportResult struct {
	Success int      `json:"success"`
	Errors  int      `json:"errors"`
	Details []string `json:"details"`
}

// TopDealer is one entry in the preview's ranked dealer list.
type TopDealer struct {
	Name  string  `json:"name"`
	Sales float64 `json:"sales"`
}

// SalesPreview is returned by the side-effect-free first phase of a sales
// upload so the user can confirm before anything is written.
type SalesPreview struct {
	ParsedData       []AccountSales `json:"parsed_data"`
	TotalSales       float64        `json:"total_sales"`
	TotalOrders      int            `json:"total_orders"`
	DealerCount      int            `json:"dealer_count"`
	ByCategory       CategoryTotals `json:"by_category"`
	ByCategoryOrders CategoryCounts `json:"by_category_orders"`
	TopDealers       []TopDealer    `json:"top_dealers"`
	Warnings         []string       `json:"warnings"`
	UnmatchedDealers []string       `json:"unmatched_dealers"`
}
