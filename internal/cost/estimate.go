package cost

import (
	"fmt"
	"math"

	"github.com/piwi3910/printcore/internal/catalog"
	"github.com/piwi3910/printcore/internal/geometry"
)

const (
	colorClickCost = 0.039
	bwClickCost    = 0.009

	laminationGlossPerCover = 0.30
	laminationMattePerCover = 0.60

	setupMinutesBase  = 20
	perfectSetupExtra = 15
	saddleSetupExtra  = 10

	printingSheetsPerMinute = 15.0
	laminatingMetersPerMin  = 5.0

	perfectBooksPerHour = 300.0
	saddleBooksPerHour  = 400.0
	bindingInefficiency = 1.20

	trimmingBaseMinutes     = 10.0
	trimmingBatchSize       = 250
	trimmingMinutesPerBatch = 5.0

	wastageFactor = 0.15
)

// Estimate computes a full cost breakdown for spec against cat (spec.md
// §4.5). It never returns a Go error; domain failures populate
// Breakdown.Error with every numeric field left zero (spec.md §7).
func Estimate(spec JobSpec, cat catalog.Catalog) Breakdown {
	totalInteriorPages := spec.BWPages + spec.ColorPages

	// Step 1: validate.
	if spec.Binding == SaddleStitch && totalInteriorPages%4 != 0 {
		return errorBreakdown("Saddle stitch requires the total interior page count to be a multiple of 4.")
	}
	if spec.Quantity <= 0 {
		return errorBreakdown("quantity must be positive")
	}

	// Step 2: spoilage multiplier.
	spoilage := 1 + spec.SpoilagePercent/100

	var bwPaper, colorPaper, coverPaper catalog.PaperStock
	var err error

	if spec.BWPages > 0 {
		bwPaper, err = cat.FindPaperBySKU(spec.BWPaperSKU)
		if err != nil {
			return errorBreakdown(fmt.Sprintf("black-and-white paper %q not found in catalog", spec.BWPaperSKU))
		}
	}
	if spec.ColorPages > 0 {
		colorPaper, err = cat.FindPaperBySKU(spec.ColorPaperSKU)
		if err != nil {
			return errorBreakdown(fmt.Sprintf("color paper %q not found in catalog", spec.ColorPaperSKU))
		}
	}
	if spec.HasCover {
		coverPaper, err = cat.FindCoverBySKU(spec.CoverPaperSKU)
		if err != nil {
			return errorBreakdown(fmt.Sprintf("cover paper %q not found in catalog", spec.CoverPaperSKU))
		}
	}

	// Step 3: n-up per paper.
	bwNUp, colorNUp := 0, 0
	if spec.BWPages > 0 {
		bwNUp = nUpForParent(bwPaper.ParentWidthIn, bwPaper.ParentHeightIn, spec.FinishedWidthIn, spec.FinishedHeightIn)
		if bwNUp == 0 {
			return errorBreakdown(fmt.Sprintf("finished size %.2fx%.2fin does not fit black-and-white paper %q", spec.FinishedWidthIn, spec.FinishedHeightIn, spec.BWPaperSKU))
		}
	}
	if spec.ColorPages > 0 {
		colorNUp = nUpForParent(colorPaper.ParentWidthIn, colorPaper.ParentHeightIn, spec.FinishedWidthIn, spec.FinishedHeightIn)
		if colorNUp == 0 {
			return errorBreakdown(fmt.Sprintf("finished size %.2fx%.2fin does not fit color paper %q", spec.FinishedWidthIn, spec.FinishedHeightIn, spec.ColorPaperSKU))
		}
	}

	// Step 4: spine width for cover fitting.
	spineIn := 0.0
	if spec.HasCover && spec.Binding == PerfectBound {
		leavesBW := ceilDivInt(spec.BWPages, 2)
		leavesColor := ceilDivInt(spec.ColorPages, 2)
		caliperBW := 0.0
		caliperColor := 0.0
		if spec.BWPages > 0 {
			caliperBW = catalog.CaliperInches(bwPaper.GSM, bwPaper.Coating)
		}
		if spec.ColorPages > 0 {
			caliperColor = catalog.CaliperInches(colorPaper.GSM, colorPaper.Coating)
		}
		spineIn = float64(leavesBW)*caliperBW + float64(leavesColor)*caliperColor
	}

	coverNUp := 0
	if spec.HasCover {
		coverSpreadW := 2*spec.FinishedWidthIn + spineIn
		if fits(coverPaper.ParentWidthIn, coverPaper.ParentHeightIn, coverSpreadW, spec.FinishedHeightIn) {
			coverNUp = 1
		} else {
			return errorBreakdown(fmt.Sprintf("cover spread %.2fx%.2fin does not fit cover stock %q", coverSpreadW, spec.FinishedHeightIn, spec.CoverPaperSKU))
		}
	}

	// Step 5: press sheets.
	bwSheets := pressSheets(spec.Quantity, spec.BWPages, bwNUp, spoilage)
	colorSheets := pressSheets(spec.Quantity, spec.ColorPages, colorNUp, spoilage)
	coverSheets := 0
	if spec.HasCover {
		coverSheets = ceilWithSpoilage(ceilDivInt(spec.Quantity, coverNUp), spoilage)
	}

	// Step 6: clicks.
	bwClicks := bwSheets * 2
	colorClicks := colorSheets * 2
	coverSides := 1
	if spec.CoverPrintsBothSides {
		coverSides = 2
	}
	coverClicks := coverSheets * coverSides
	totalClicks := bwClicks + colorClicks + coverClicks

	coverClickRate := bwClickCost
	if spec.CoverPrintColor == Color {
		coverClickRate = colorClickCost
	}
	clickCost := float64(bwClicks)*bwClickCost + float64(colorClicks)*colorClickCost + float64(coverClicks)*coverClickRate

	// Step 7: paper cost.
	paperCost := float64(bwSheets)*bwPaper.CostPerSheet + float64(colorSheets)*colorPaper.CostPerSheet + float64(coverSheets)*coverPaper.CostPerSheet

	// Step 8: lamination.
	laminationCost := 0.0
	switch spec.Lamination {
	case LaminationGloss:
		laminationCost = laminationGlossPerCover * float64(spec.Quantity)
	case LaminationMatte:
		laminationCost = laminationMattePerCover * float64(spec.Quantity)
	}

	// Step 9: labor time.
	setupMinutes := float64(setupMinutesBase)
	switch spec.Binding {
	case PerfectBound:
		setupMinutes += perfectSetupExtra
	case SaddleStitch:
		setupMinutes += saddleSetupExtra
	}

	totalPressSheets := bwSheets + colorSheets + coverSheets
	printingMinutes := float64(totalPressSheets) / printingSheetsPerMinute

	laminatingMinutes := 0.0
	if spec.Lamination != LaminationNone && spec.HasCover {
		laminatingMinutes = float64(coverSheets) * coverPaper.ParentHeightIn * 0.0254 / laminatingMetersPerMin
	}

	bindingMinutes := 0.0
	switch spec.Binding {
	case PerfectBound:
		bindingMinutes = (float64(spec.Quantity) / perfectBooksPerHour) * 60 * bindingInefficiency
	case SaddleStitch:
		bindingMinutes = (float64(spec.Quantity) / saddleBooksPerHour) * 60 * bindingInefficiency
	}

	trimmingMinutes := trimmingBaseMinutes + math.Ceil(float64(spec.Quantity)/trimmingBatchSize)*trimmingMinutesPerBatch

	wastageMinutes := wastageFactor * (setupMinutes + printingMinutes + laminatingMinutes + bindingMinutes + trimmingMinutes)
	totalMinutes := setupMinutes + printingMinutes + laminatingMinutes + bindingMinutes + trimmingMinutes + wastageMinutes
	laborCost := totalMinutes / 60 * spec.LaborRatePerHour

	// Step 10-11: subtotal, markup.
	subtotal := paperCost + clickCost + laminationCost + laborCost
	markupAmount := subtotal * spec.MarkupPercent / 100

	// Step 12: shipping (optional, added after markup).
	var shipping *ShippingPlan
	if spec.CalculateShipping {
		shipping = packShipment(spec, cat, bwPaper, colorPaper, coverPaper, spineIn)
	}

	total := subtotal + markupAmount
	if shipping != nil {
		total += shipping.TotalCost
	}

	return Breakdown{
		BWPressSheets:    bwSheets,
		ColorPressSheets: colorSheets,
		CoverPressSheets: coverSheets,
		BWNUp:            bwNUp,
		ColorNUp:         colorNUp,
		CoverNUp:         coverNUp,
		TotalClicks:      totalClicks,
		PaperCost:        paperCost,
		ClickCost:        clickCost,
		LaminationCost:   laminationCost,
		LaborCost:        laborCost,
		SetupMinutes:     setupMinutes,
		PrintingMinutes:  printingMinutes,
		LaminatingMinutes: laminatingMinutes,
		BindingMinutes:   bindingMinutes,
		TrimmingMinutes:  trimmingMinutes,
		WastageMinutes:   wastageMinutes,
		ProductionHours:  totalMinutes / 60,
		Shipping:         shipping,
		Subtotal:         subtotal,
		MarkupAmount:     markupAmount,
		Total:            total,
		PricePerUnit:     total / float64(spec.Quantity),
		SpineWidthIn:     spineIn,
	}
}

// nUpForParent returns the better of the two orthogonal fits of the
// finished trim size onto a parent sheet (spec.md §4.5 step 3).
func nUpForParent(parentW, parentH, trimW, trimH float64) int {
	upright := geometry.MaxUnitsAlong(parentW, trimW, 0) * geometry.MaxUnitsAlong(parentH, trimH, 0)
	rotated := geometry.MaxUnitsAlong(parentW, trimH, 0) * geometry.MaxUnitsAlong(parentH, trimW, 0)
	if rotated > upright {
		return rotated
	}
	return upright
}

func fits(parentW, parentH, w, h float64) bool {
	return geometry.Fits(w, h, parentW, parentH) || geometry.Fits(h, w, parentW, parentH)
}

// pressSheets implements spec.md §4.5 step 5: ceil(quantity * leaves / n_up)
// * spoilage_multiplier, rounded up. The division is ceiled on its own
// before spoilage is applied, then the spoiled result is ceiled again —
// collapsing the two ceilings into one (ceiling only the final product)
// undercounts sheets whenever the raw division isn't already an integer.
func pressSheets(quantity, pages, nUp int, spoilage float64) int {
	if pages == 0 {
		return 0
	}
	leaves := ceilDivInt(pages, 2)
	sheets := ceilDivInt(quantity*leaves, nUp)
	return ceilWithSpoilage(sheets, spoilage)
}

// ceilWithSpoilage applies the outer ceiling of spec.md §4.5 step 5 to an
// already-ceiled sheet count.
func ceilWithSpoilage(sheets int, spoilage float64) int {
	return int(math.Ceil(float64(sheets) * spoilage))
}

func ceilDivInt(a, b int) int {
	if b <= 0 {
		return 0
	}
	return (a + b - 1) / b
}
