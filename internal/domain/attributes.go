// internal/domain/attributes.go
package domain

// Attribute describes one engagement matrix column pair: a typed accessor into
// DealerRecord instead of building field names from strings.
type Attribute struct {
	Key     string
	Label   string
	Engaged func(*DealerRecord) bool
	Active  func(*DealerRecord) bool
}

var segmentAttributes = []Attribute{
	{
		Key: "retail", Label: "Retail",
		Engaged: func(d *DealerRecord) bool { return d.Retail },
		Active:  func(d *DealerRecord) bool { return d.RetailActive },
	},
	{
		Key: "builder_dealer_controlled", Label: "Builder (Dealer Controlled)",
		Engaged: func(d *DealerRecord) bool { return d.BuilderDealerControlled },
		Active:  func(d *DealerRecord) bool { return d.BuilderDealerControlledActive },
	},
	{
		Key: "builder_national_spec", Label: "Builder (National Spec)",
		Engaged: func(d *DealerRecord) bool { return d.BuilderNationalSpec },
		Active:  func(d *DealerRecord) bool { return d.BuilderNationalSpecActive },
	},
	{
		Key: "commercial_negotiated", Label: "Commercial (Negotiated)",
		Engaged: func(d *DealerRecord) bool { return d.CommercialNegotiated },
		Active:  func(d *DealerRecord) bool { return d.CommercialNegotiatedActive },
	},
	{
		Key: "commercial_spec_bids", Label: "Commercial (Spec Bids)",
		Engaged: func(d *DealerRecord) bool { return d.CommercialSpecBids },
		Active:  func(d *DealerRecord) bool { return d.CommercialSpecBidsActive },
	},
	{
		Key: "wholesale_to_installers", Label: "Wholesale to Installers",
		Engaged: func(d *DealerRecord) bool { return d.WholesaleToInstallers },
		Active:  func(d *DealerRecord) bool { return d.WholesaleToInstallersActive },
	},
	{
		Key: "multifamily_replacement", Label: "Multifamily (Replacement)",
		Engaged: func(d *DealerRecord) bool { return d.MultifamilyReplacement },
		Active:  func(d *DealerRecord) bool { return d.MultifamilyReplacementActive },
	},
	{
		Key: "multifamily_new", Label: "Multifamily (New)",
		Engaged: func(d *DealerRecord) bool { return d.MultifamilyNew },
		Active:  func(d *DealerRecord) bool { return d.MultifamilyNewActive },
	},
}

var stockingAttributes = []Attribute{
	{
		Key: "stocking_wpc", Label: "WPC",
		Engaged: func(d *DealerRecord) bool { return d.StockingWPC },
		Active:  func(d *DealerRecord) bool { return d.StockingWPCActive },
	},
	{
		Key: "stocking_spc", Label: "SPC",
		Engaged: func(d *DealerRecord) bool { return d.StockingSPC },
		Active:  func(d *DealerRecord) bool { return d.StockingSPCActive },
	},
	{
		Key: "stocking_wood", Label: "Wood",
		Engaged: func(d *DealerRecord) bool { return d.StockingWood },
		Active:  func(d *DealerRecord) bool { return d.StockingWoodActive },
	},
	{
		Key: "stocking_specials", Label: "Specials",
		Engaged: func(d *DealerRecord) bool { return d.StockingSpecials },
		Active:  func(d *DealerRecord) bool { return d.StockingSpecialsActive },
	},
	{
		Key: "stocking_pad", Label: "Pad",
		Engaged: func(d *DealerRecord) bool { return d.StockingPad },
		Active:  func(d *DealerRecord) bool { return d.StockingPadActive },
	},
	{
		Key: "stocking_rev_ply", Label: "RevPly",
		Engaged: func(d *DealerRecord) bool { return d.StockingRevPly },
		Active:  func(d *DealerRecord) bool { return d.StockingRevPlyActive },
	},
}

// SegmentAttributes returns the 8 market-segment matrix columns.
func SegmentAttributes() []Attribute { return segmentAttributes }

// StockingAttributes returns the 6 stocking matrix columns.
func StockingAttributes() []Attribute { return stockingAttributes }

// AllAttributes returns segments followed by stocking categories.
func AllAttributes() []Attribute {
	all := make([]Attribute, 0, len(segmentAttributes)+len(stockingAttributes))
	all = append(all, segmentAttributes...)
	all = append(all, stockingAttributes...)
	return all
}
