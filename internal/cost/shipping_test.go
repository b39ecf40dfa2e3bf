package cost

import (
	"testing"

	"github.com/piwi3910/printcore/internal/catalog"
)

// Scenario F (orientation): a 5.5 x 8.5 x 0.25in book into the baseline
// catalog's 11.75 x 8.75 x 4.75in "Standard Small Box" admits 19 books per
// box — the canonical transposed-footprint/spine-against-box-height
// orientation spec.md §8 names, not the 38 the untransposed orientation
// would otherwise admit.
func TestScenarioFBooksPerBoxOrientation(t *testing.T) {
	got := booksPerBoxForOrientation(5.5, 8.5, 0.25, 11.75, 8.75, 4.75)
	if got != 19 {
		t.Fatalf("expected 19 books per box, got %d", got)
	}
}

// Scenario F (box count): 500 books at 19/box requires ceil(500/19) = 27 boxes.
func TestScenarioFBoxCount(t *testing.T) {
	got := ceilDivInt(500, 19)
	if got != 27 {
		t.Fatalf("expected 27 boxes, got %d", got)
	}
}

// Scenario F end to end: an engineered paper stock brings book weight to
// the scenario's stated 0.6lb, confirming the full pipeline (weight ->
// orientation -> weight cap -> box choice -> carrier lookup) agrees with
// the worked example.
func TestScenarioFPackShipmentEndToEnd(t *testing.T) {
	cat := catalog.DefaultCatalog()
	bwPaper := catalog.NewPaperStock("BW-TEST", "test stock", 90.223, catalog.Uncoated, "Smooth", 25, 38, 0.05, "test")

	spec := JobSpec{
		Quantity:            500,
		FinishedWidthIn:     5.5,
		FinishedHeightIn:    8.5,
		BWPages:             100,
		OverrideShippingBox: "Standard Small Box",
	}

	plan := packShipment(spec, cat, bwPaper, catalog.PaperStock{}, catalog.PaperStock{}, 0.25)
	if plan == nil {
		t.Fatal("expected a shipping plan")
	}
	if plan.BookWeightLb < 0.55 || plan.BookWeightLb > 0.65 {
		t.Fatalf("expected book weight near 0.6lb, got %.4f", plan.BookWeightLb)
	}
	if plan.BooksPerBox != 19 {
		t.Fatalf("expected 19 books per box, got %d", plan.BooksPerBox)
	}
	if plan.Boxes != 27 {
		t.Fatalf("expected 27 boxes, got %d", plan.Boxes)
	}

	wantCarrier := cat.CarrierRates.Cost(float64(spec.Quantity) * plan.BookWeightLb)
	if plan.CarrierCost != wantCarrier {
		t.Fatalf("expected carrier cost %.4f, got %.4f", wantCarrier, plan.CarrierCost)
	}
}

func TestPackShipmentOverrideBoxUnknownNameYieldsNil(t *testing.T) {
	cat := catalog.DefaultCatalog()
	bwPaper, _ := cat.FindPaperBySKU("BW-80-TEXT")
	spec := JobSpec{
		Quantity:            500,
		FinishedWidthIn:     5.5,
		FinishedHeightIn:    8.5,
		BWPages:             96,
		OverrideShippingBox: "Not A Real Box",
	}
	if plan := packShipment(spec, cat, bwPaper, catalog.PaperStock{}, catalog.PaperStock{}, 0); plan != nil {
		t.Fatalf("expected nil plan for unknown override box, got %+v", plan)
	}
}

// Property #9: shipping packing soundness, across a spread of job sizes —
// chosen books_per_box*boxes covers quantity, the book fits the chosen box
// in at least one orientation (books_per_box > 0 implies a fit), and the
// per-box weight never exceeds the 40lb cap.
func TestShippingPackingSoundness(t *testing.T) {
	cat := catalog.DefaultCatalog()
	bwPaper, err := cat.FindPaperBySKU("BW-80-TEXT")
	if err != nil {
		t.Fatal(err)
	}

	for _, qty := range []int{1, 10, 250, 500, 5000} {
		spec := JobSpec{
			Quantity:         qty,
			FinishedWidthIn:  5.5,
			FinishedHeightIn: 8.5,
			BWPages:          96,
		}
		plan := packShipment(spec, cat, bwPaper, catalog.PaperStock{}, catalog.PaperStock{}, 0)
		if plan == nil {
			t.Fatalf("expected a shipping plan at quantity %d", qty)
		}
		if plan.BooksPerBox <= 0 {
			t.Errorf("quantity %d: expected at least one book to fit per box", qty)
		}
		if plan.BooksPerBox*plan.Boxes < qty {
			t.Errorf("quantity %d: books_per_box*boxes = %d < quantity", qty, plan.BooksPerBox*plan.Boxes)
		}
		if float64(plan.BooksPerBox)*plan.BookWeightLb > maxBookWeightLb+1e-9 {
			t.Errorf("quantity %d: per-box weight %.4f exceeds the %.0flb cap", qty, float64(plan.BooksPerBox)*plan.BookWeightLb, maxBookWeightLb)
		}
	}
}

// Idempotence at the packer level: repeated calls on the same inputs choose
// the same box.
func TestPackShipmentIdempotent(t *testing.T) {
	cat := catalog.DefaultCatalog()
	bwPaper, _ := cat.FindPaperBySKU("BW-80-TEXT")
	spec := JobSpec{
		Quantity:         500,
		FinishedWidthIn:  5.5,
		FinishedHeightIn: 8.5,
		BWPages:          96,
	}

	a := packShipment(spec, cat, bwPaper, catalog.PaperStock{}, catalog.PaperStock{}, 0)
	b := packShipment(spec, cat, bwPaper, catalog.PaperStock{}, catalog.PaperStock{}, 0)
	if a == nil || b == nil {
		t.Fatal("expected shipping plans")
	}
	if *a != *b {
		t.Fatalf("expected identical shipping plans, got %+v vs %+v", *a, *b)
	}
}
