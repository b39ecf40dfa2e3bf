package cost

import (
	"math"

	"github.com/piwi3910/printcore/internal/catalog"
	"github.com/piwi3910/printcore/internal/geometry"
)

// maxBookWeightLb is the per-box weight cap named in spec.md §4.5.1.
const maxBookWeightLb = 40.0

// gramsPerLb converts the metric paper-weight arithmetic to pounds.
const gramsPerLb = 453.592

// bookWeightLb computes one finished book's shipping weight (spec.md
// §4.5.1): the sum, over every printed component, of its area in square
// meters times its stock's gsm, converted from grams to pounds.
func bookWeightLb(spec JobSpec, bwPaper, colorPaper, coverPaper catalog.PaperStock, spineIn float64) float64 {
	trimAreaM2 := inchesToMeters(spec.FinishedWidthIn) * inchesToMeters(spec.FinishedHeightIn)

	grams := 0.0
	if spec.BWPages > 0 {
		grams += float64(spec.BWPages) * trimAreaM2 * bwPaper.GSM
	}
	if spec.ColorPages > 0 {
		grams += float64(spec.ColorPages) * trimAreaM2 * colorPaper.GSM
	}
	if spec.HasCover {
		spreadWM := inchesToMeters(spec.FinishedWidthIn*2 + spineIn)
		trimHM := inchesToMeters(spec.FinishedHeightIn)
		grams += spreadWM * trimHM * coverPaper.GSM
	}

	return grams / gramsPerLb
}

func inchesToMeters(in float64) float64 {
	return in * 0.0254
}

// booksPerBoxForOrientation tries 6 permutations of (bookW, bookH, bookD)
// against the box's three dimensions (spec.md §4.5.1) in a fixed canonical
// order — the two spine-along-box-height orientations first, footprint
// transposed before direct — and returns the first orientation that
// admits at least one book, rather than the best-area-fit maximum over all
// six. This matches spec.md Scenario F's worked example verbatim (a 5.5 x
// 8.5 x 0.25in book in an 11.75 x 8.75 x 4.75in box packs 19 per box, the
// transposed-footprint/spine-against-box-height orientation, not the 38 the
// untransposed orientation would admit).
func booksPerBoxForOrientation(bookW, bookH, bookD, boxW, boxL, boxH float64) int {
	perms := [][3]float64{
		{bookH, bookW, bookD},
		{bookW, bookH, bookD},
		{bookH, bookD, bookW},
		{bookW, bookD, bookH},
		{bookD, bookH, bookW},
		{bookD, bookW, bookH},
	}

	for _, p := range perms {
		n := geometry.MaxUnitsAlong(boxW, p[0], 0) *
			geometry.MaxUnitsAlong(boxL, p[1], 0) *
			geometry.MaxUnitsAlong(boxH, p[2], 0)
		if n > 0 {
			return n
		}
	}
	return 0
}

// packShipment chooses the minimum-total-cost shipping box (spec.md
// §4.5.1). Returns nil when no admissible box fits even one book.
func packShipment(spec JobSpec, cat catalog.Catalog, bwPaper, colorPaper, coverPaper catalog.PaperStock, spineIn float64) *ShippingPlan {
	weight := bookWeightLb(spec, bwPaper, colorPaper, coverPaper, spineIn)
	if weight <= 0 {
		return nil
	}

	bookW := spec.FinishedWidthIn
	bookH := spec.FinishedHeightIn
	bookD := spineIn
	if bookD <= 0 {
		bookD = 0.25 // stapled/unbound jobs still have a nominal thickness
	}

	var candidates []catalog.ShippingBox
	if spec.OverrideShippingBox != "" {
		box, err := cat.FindShippingBoxByName(spec.OverrideShippingBox)
		if err != nil {
			return nil
		}
		candidates = []catalog.ShippingBox{box}
	} else {
		candidates = cat.AllShippingBoxes()
	}

	weightCap := int(math.Floor(maxBookWeightLb / weight))

	var best *ShippingPlan
	for _, box := range candidates {
		perBox := booksPerBoxForOrientation(bookW, bookH, bookD, box.WidthIn, box.LengthIn, box.HeightIn)
		if perBox <= 0 {
			continue
		}
		if weightCap < perBox {
			perBox = weightCap
		}
		if perBox <= 0 {
			continue
		}

		boxes := ceilDivInt(spec.Quantity, perBox)
		handling := float64(boxes) * box.CostPerBox
		carrier := cat.CarrierRates.Cost(float64(spec.Quantity) * weight)
		total := handling + carrier

		if best == nil || total < best.TotalCost {
			best = &ShippingPlan{
				BoxName:      box.Name,
				BooksPerBox:  perBox,
				Boxes:        boxes,
				BookWeightLb: weight,
				HandlingCost: handling,
				CarrierCost:  carrier,
				TotalCost:    total,
			}
		}
	}

	return best
}
