// Package catalog holds the read-only lookup tables for press-sheet sizes,
// paper and cover stocks, shipping boxes, and carrier rates. All tables are
// total over their declared enum/SKU keys: a missing key is an error, never
// a silent zero (spec.md §3).
package catalog

import (
	"fmt"
	"sort"

	"github.com/google/uuid"

	"github.com/piwi3910/printcore/internal/errkind"
)

// Coating distinguishes coated from uncoated paper stock.
type Coating string

const (
	Coated   Coating = "coated"
	Uncoated Coating = "uncoated"
)

// caliperFactor implements spec.md §4.5 step 4: caliper_i = gsm_i * factor_i / 25400.
func (c Coating) caliperFactor() float64 {
	if c == Coated {
		return 0.9
	}
	return 1.3
}

// CaliperInches returns the sheet caliper in inches for a given basis weight.
func CaliperInches(gsm float64, coating Coating) float64 {
	return gsm * coating.caliperFactor() / 25400.0
}

// PaperStock is a printable stock keyed by SKU (spec.md §3).
type PaperStock struct {
	ID            string  `json:"id"`
	SKU           string  `json:"sku"`
	Name          string  `json:"name"`
	GSM           float64 `json:"gsm"`
	Coating       Coating `json:"coating"`
	Finish        string  `json:"finish"`
	ParentWidthIn float64 `json:"parent_width_in"`
	ParentHeightIn float64 `json:"parent_height_in"`
	CostPerSheet  float64 `json:"cost_per_sheet"`
	Material      string  `json:"material"` // free-text catalog grouping, e.g. "Text", "Cover"
	UsageTag      string  `json:"usage_tag"`
}

// NewPaperStock builds a PaperStock with a generated catalog ID, following
// the teacher's NewPart/NewStockSheet id-assignment convention.
func NewPaperStock(sku, name string, gsm float64, coating Coating, finish string, parentW, parentH, costPerSheet float64, usage string) PaperStock {
	return PaperStock{
		ID:             uuid.New().String()[:8],
		SKU:            sku,
		Name:           name,
		GSM:            gsm,
		Coating:        coating,
		Finish:         finish,
		ParentWidthIn:  parentW,
		ParentHeightIn: parentH,
		CostPerSheet:   costPerSheet,
		UsageTag:       usage,
	}
}

// InteriorPPIKey looks up an interior stock's spine-contribution PPI; interior
// stock tables key this directly (type x weight -> PPI) rather than deriving
// it from caliper, per spec.md §4.2.
type InteriorPPIKey struct {
	Type   string
	Weight string
}

// CoverCaliperKey looks up cover stock caliper by type x weight.
type CoverCaliperKey struct {
	Type   string
	Weight string
}

// ShippingBox is an available packing box. MultiDepthIn, when non-empty,
// flattens to one virtual box per depth (spec.md §4.2).
type ShippingBox struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	WidthIn      float64   `json:"width_in"`
	LengthIn     float64   `json:"length_in"`
	HeightIn     float64   `json:"height_in,omitempty"`
	MultiDepthIn []float64 `json:"multi_depth_in,omitempty"`
	CostPerBox   float64   `json:"cost_per_box"`
}

// Flatten expands a multi-depth box declaration into one box per depth, each
// carrying a distinct name (the parent name followed by the depth, e.g.
// "Medium 6in"), or returns the single box unchanged.
func (b ShippingBox) Flatten() []ShippingBox {
	if len(b.MultiDepthIn) == 0 {
		return []ShippingBox{b}
	}
	out := make([]ShippingBox, 0, len(b.MultiDepthIn))
	for _, d := range b.MultiDepthIn {
		flat := b
		flat.HeightIn = d
		flat.MultiDepthIn = nil
		flat.Name = fmt.Sprintf("%s %gin", b.Name, d)
		out = append(out, flat)
	}
	return out
}

// CarrierTier is one step of the carrier rate function: weights at or below
// MaxWeightLb cost CostUSD. Tiers must be supplied in ascending MaxWeightLb
// order; Carrier.Cost is a monotonically non-decreasing function of weight.
type CarrierTier struct {
	MaxWeightLb float64 `json:"max_weight_lb"`
	CostUSD     float64 `json:"cost_usd"`
}

// Carrier bundles a step-tier table with a linear overflow slope applied
// beyond the last declared tier.
type Carrier struct {
	Tiers          []CarrierTier `json:"tiers"`
	OverflowPerLb  float64       `json:"overflow_per_lb"`
}

// Cost returns the carrier charge for a shipment of the given weight. The
// function is guaranteed monotonically non-decreasing in weight (spec.md
// §4.2; see TestCarrierCostMonotonic).
func (c Carrier) Cost(weightLb float64) float64 {
	if len(c.Tiers) == 0 {
		return 0
	}
	for _, t := range c.Tiers {
		if weightLb <= t.MaxWeightLb {
			return t.CostUSD
		}
	}
	last := c.Tiers[len(c.Tiers)-1]
	overflow := weightLb - last.MaxWeightLb
	return last.CostUSD + overflow*c.OverflowPerLb
}

// Catalog bundles every read-only lookup table the engines depend on.
type Catalog struct {
	Papers        []PaperStock
	Covers        []PaperStock
	InteriorPPI   map[InteriorPPIKey]float64
	CoverCaliper  map[CoverCaliperKey]float64
	ShippingBoxes []ShippingBox
	CarrierRates  Carrier
}

// FindPaperBySKU looks up an interior/BW/color paper stock by SKU. A missing
// SKU is an error, never silent zero.
func (c Catalog) FindPaperBySKU(sku string) (PaperStock, error) {
	for _, p := range c.Papers {
		if p.SKU == sku {
			return p, nil
		}
	}
	return PaperStock{}, errkind.Newf(errkind.UnknownPaperSKU, "no paper stock registered for SKU %q", sku)
}

// FindCoverBySKU looks up a cover stock by SKU.
func (c Catalog) FindCoverBySKU(sku string) (PaperStock, error) {
	for _, p := range c.Covers {
		if p.SKU == sku {
			return p, nil
		}
	}
	return PaperStock{}, errkind.Newf(errkind.UnknownPaperSKU, "no cover stock registered for SKU %q", sku)
}

// InteriorPagesPerInch looks up the printed-pages-per-inch for an interior
// stock's (type, weight) pair.
func (c Catalog) InteriorPagesPerInch(typ, weight string) (float64, error) {
	ppi, ok := c.InteriorPPI[InteriorPPIKey{Type: typ, Weight: weight}]
	if !ok {
		return 0, errkind.Newf(errkind.UnknownPaperSKU, "no interior PPI entry for %s/%s", typ, weight)
	}
	return ppi, nil
}

// CoverCaliperInches looks up a cover stock's per-sheet caliper by (type, weight).
func (c Catalog) CoverCaliperInches(typ, weight string) (float64, error) {
	cal, ok := c.CoverCaliper[CoverCaliperKey{Type: typ, Weight: weight}]
	if !ok {
		return 0, errkind.Newf(errkind.UnknownPaperSKU, "no cover caliper entry for %s/%s", typ, weight)
	}
	return cal, nil
}

// PaperNames returns SKUs for UI/report dropdowns, sorted for deterministic output.
func (c Catalog) PaperNames() []string {
	names := make([]string, 0, len(c.Papers))
	for _, p := range c.Papers {
		names = append(names, p.SKU)
	}
	sort.Strings(names)
	return names
}

// AllShippingBoxes returns every box, with multi-depth declarations flattened.
func (c Catalog) AllShippingBoxes() []ShippingBox {
	var out []ShippingBox
	for _, b := range c.ShippingBoxes {
		out = append(out, b.Flatten()...)
	}
	return out
}

// FindShippingBoxByName returns the flattened box matching name, or an error.
func (c Catalog) FindShippingBoxByName(name string) (ShippingBox, error) {
	for _, b := range c.AllShippingBoxes() {
		if b.Name == name {
			return b, nil
		}
	}
	return ShippingBox{}, errkind.Newf(errkind.UnknownPaperSKU, "no shipping box registered named %q", name)
}
