package catalog

// DefaultCatalog returns a sample catalog populated with representative
// commercial-print stocks, boxes, and a baseline carrier rate table. This
// mirrors the teacher's model.DefaultInventory(): concrete sample data a
// caller can start from or override entirely, never logic.
func DefaultCatalog() Catalog {
	return Catalog{
		Papers: []PaperStock{
			NewPaperStock("BW-80-TEXT", "80# Opaque Text (Uncoated)", 118, Uncoated, "Smooth", 25, 38, 0.042, "BW interior"),
			NewPaperStock("COLOR-100-TEXT", "100# Gloss Text (Coated)", 148, Coated, "Gloss", 25, 38, 0.068, "Color interior"),
			NewPaperStock("BW-60-TEXT", "60# Opaque Text (Uncoated)", 89, Uncoated, "Smooth", 25, 38, 0.031, "BW interior (lightweight)"),
		},
		Covers: []PaperStock{
			NewPaperStock("COVER-100-SILK", "100# Silk Cover (Coated)", 270, Coated, "Silk", 26, 40, 0.145, "Cover"),
			NewPaperStock("COVER-80-UNCOATED", "80# Uncoated Cover", 216, Uncoated, "Smooth", 26, 40, 0.098, "Cover"),
		},
		InteriorPPI: map[InteriorPPIKey]float64{
			{Type: "Opaque", Weight: "60#"}:  550,
			{Type: "Opaque", Weight: "80#"}:  400,
			{Type: "Gloss", Weight: "80#"}:   430,
			{Type: "Gloss", Weight: "100#"}:  380,
		},
		CoverCaliper: map[CoverCaliperKey]float64{
			{Type: "Silk", Weight: "100#"}:     0.0095,
			{Type: "Uncoated", Weight: "80#"}:  0.0085,
			{Type: "Gloss", Weight: "10pt"}:    0.0100,
			{Type: "Gloss", Weight: "12pt"}:    0.0120,
		},
		ShippingBoxes: []ShippingBox{
			{Name: "Standard Small Box", WidthIn: 11.75, LengthIn: 8.75, HeightIn: 4.75, CostPerBox: 1.10},
			{Name: "Standard Medium Box", WidthIn: 14.0, LengthIn: 11.0, MultiDepthIn: []float64{6.0, 9.0, 12.0}, CostPerBox: 1.45},
			{Name: "Standard Large Box", WidthIn: 18.0, LengthIn: 14.0, HeightIn: 12.0, CostPerBox: 2.10},
		},
		CarrierRates: Carrier{
			Tiers: []CarrierTier{
				{MaxWeightLb: 1, CostUSD: 8.50},
				{MaxWeightLb: 5, CostUSD: 12.25},
				{MaxWeightLb: 10, CostUSD: 16.00},
				{MaxWeightLb: 20, CostUSD: 24.50},
				{MaxWeightLb: 30, CostUSD: 32.00},
				{MaxWeightLb: 50, CostUSD: 44.00},
			},
			OverflowPerLb: 0.75,
		},
	}
}
