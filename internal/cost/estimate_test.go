package cost

import (
	"testing"

	"github.com/piwi3910/printcore/internal/catalog"
)

func baseJobSpec() JobSpec {
	return JobSpec{
		Quantity:         500,
		FinishedWidthIn:  5.5,
		FinishedHeightIn: 8.5,
		BWPages:          96,
		BWPaperSKU:       "BW-80-TEXT",
		HasCover:         true,
		CoverPaperSKU:    "COVER-100-SILK",
		CoverPrintColor:  Color,
		Lamination:       LaminationNone,
		Binding:          PerfectBound,
		LaborRatePerHour: 45,
		MarkupPercent:    35,
		SpoilagePercent:  0,
	}
}

// Scenario D: 18 interior pages saddle-stitched is not a multiple of 4.
func TestScenarioDSaddleStitchPageCountGuard(t *testing.T) {
	spec := baseJobSpec()
	spec.Binding = SaddleStitch
	spec.BWPages = 18
	spec.HasCover = false

	b := Estimate(spec, catalog.DefaultCatalog())

	want := "Saddle stitch requires the total interior page count to be a multiple of 4."
	if b.Error != want {
		t.Fatalf("expected error %q, got %q", want, b.Error)
	}
	if b.Total != 0 || b.PaperCost != 0 || b.PricePerUnit != 0 || b.BWPressSheets != 0 {
		t.Errorf("expected every numeric field zeroed on error, got %+v", b)
	}
}

func TestSaddleStitchMultipleOfFourSucceeds(t *testing.T) {
	spec := baseJobSpec()
	spec.Binding = SaddleStitch
	spec.BWPages = 16
	spec.HasCover = false

	b := Estimate(spec, catalog.DefaultCatalog())
	if b.Error != "" {
		t.Fatalf("unexpected error: %s", b.Error)
	}
}

// pressSheets implements spec.md §4.5 step 5 as two nested ceilings:
// ceil(ceil(quantity*leaves/n_up) * spoilage), not a single ceiling applied
// to the un-ceiled raw division.
func TestPressSheetsCeilsBeforeAndAfterSpoilage(t *testing.T) {
	// leaves = ceil(2/2) = 1; 51*1/5 = 10.2 -> inner ceil 11 -> 11*1.03 = 11.33 -> outer ceil 12.
	got := pressSheets(51, 2, 5, 1.03)
	if got != 12 {
		t.Errorf("expected 12 sheets, got %d", got)
	}
}

func TestPressSheetsWholeDivisionNoSpoilage(t *testing.T) {
	// leaves = ceil(96/2) = 48; 500*48/4 = 6000, no spoilage to apply.
	got := pressSheets(500, 96, 4, 1.0)
	if got != 6000 {
		t.Errorf("expected 6000 sheets, got %d", got)
	}
}

func TestPressSheetsZeroPagesIsZeroSheets(t *testing.T) {
	if got := pressSheets(500, 0, 4, 1.0); got != 0 {
		t.Errorf("expected 0 sheets for 0 pages, got %d", got)
	}
}

// Property #8: total cost is monotonically non-decreasing in quantity,
// bw_pages, color_pages, markup_percent, labor_rate, and spoilage_percent,
// holding all else equal.
func TestCostMonotonicInQuantity(t *testing.T) {
	cat := catalog.DefaultCatalog()
	spec := baseJobSpec()
	prev := 0.0
	for _, qty := range []int{100, 250, 500, 1000, 2000} {
		spec.Quantity = qty
		b := Estimate(spec, cat)
		if b.Error != "" {
			t.Fatalf("unexpected error at quantity %d: %s", qty, b.Error)
		}
		if b.Total < prev-1e-6 {
			t.Fatalf("total decreased from %.4f to %.4f at quantity %d", prev, b.Total, qty)
		}
		prev = b.Total
	}
}

func TestCostMonotonicInBWPages(t *testing.T) {
	cat := catalog.DefaultCatalog()
	spec := baseJobSpec()
	spec.HasCover = false
	prev := 0.0
	for _, pages := range []int{16, 32, 64, 96, 128} {
		spec.BWPages = pages
		b := Estimate(spec, cat)
		if b.Error != "" {
			t.Fatalf("unexpected error at bw pages %d: %s", pages, b.Error)
		}
		if b.Total < prev-1e-6 {
			t.Fatalf("total decreased at bw pages %d", pages)
		}
		prev = b.Total
	}
}

func TestCostMonotonicInColorPages(t *testing.T) {
	cat := catalog.DefaultCatalog()
	spec := baseJobSpec()
	spec.ColorPaperSKU = "COLOR-100-TEXT"
	prev := 0.0
	for _, pages := range []int{0, 8, 16, 32} {
		spec.ColorPages = pages
		b := Estimate(spec, cat)
		if b.Error != "" {
			t.Fatalf("unexpected error at color pages %d: %s", pages, b.Error)
		}
		if b.Total < prev-1e-6 {
			t.Fatalf("total decreased at color pages %d", pages)
		}
		prev = b.Total
	}
}

func TestCostMonotonicInMarkupPercent(t *testing.T) {
	cat := catalog.DefaultCatalog()
	spec := baseJobSpec()
	prev := 0.0
	for _, markup := range []float64{0, 10, 25, 50, 100} {
		spec.MarkupPercent = markup
		b := Estimate(spec, cat)
		if b.Error != "" {
			t.Fatalf("unexpected error at markup %.1f: %s", markup, b.Error)
		}
		if b.Total < prev-1e-6 {
			t.Fatalf("total decreased at markup %.1f", markup)
		}
		prev = b.Total
	}
}

func TestCostMonotonicInLaborRate(t *testing.T) {
	cat := catalog.DefaultCatalog()
	spec := baseJobSpec()
	prev := 0.0
	for _, rate := range []float64{20, 35, 45, 60, 90} {
		spec.LaborRatePerHour = rate
		b := Estimate(spec, cat)
		if b.Error != "" {
			t.Fatalf("unexpected error at labor rate %.1f: %s", rate, b.Error)
		}
		if b.Total < prev-1e-6 {
			t.Fatalf("total decreased at labor rate %.1f", rate)
		}
		prev = b.Total
	}
}

func TestCostMonotonicInSpoilagePercent(t *testing.T) {
	cat := catalog.DefaultCatalog()
	spec := baseJobSpec()
	prev := 0.0
	for _, spoil := range []float64{0, 2, 5, 10, 20} {
		spec.SpoilagePercent = spoil
		b := Estimate(spec, cat)
		if b.Error != "" {
			t.Fatalf("unexpected error at spoilage %.1f: %s", spoil, b.Error)
		}
		if b.Total < prev-1e-6 {
			t.Fatalf("total decreased at spoilage %.1f", spoil)
		}
		prev = b.Total
	}
}

// Property #10: running the estimator twice on the same spec yields
// bit-identical breakdowns.
func TestEstimateIsIdempotent(t *testing.T) {
	cat := catalog.DefaultCatalog()
	spec := baseJobSpec()
	spec.CalculateShipping = true

	a := Estimate(spec, cat)
	b := Estimate(spec, cat)

	aShip, bShip := a.Shipping, b.Shipping
	a.Shipping, b.Shipping = nil, nil
	if a != b {
		t.Fatalf("expected identical breakdowns (excluding shipping pointer identity), got %+v vs %+v", a, b)
	}
	if aShip == nil || bShip == nil {
		t.Fatal("expected a shipping plan to be computed both times")
	}
	if *aShip != *bShip {
		t.Fatalf("expected identical shipping plans, got %+v vs %+v", *aShip, *bShip)
	}
}
