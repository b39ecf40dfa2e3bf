// Package cost implements the print-job cost estimator (spec.md §4.5): a
// pure function from a job specification and catalog to a cost breakdown,
// grounded in the teacher's internal/model/calculator.go
// (CalculatePurchaseEstimate's spoilage/waste ceiling-sheet arithmetic
// shape) and internal/model/offcut.go (proportional-area costing pattern).
package cost

// PrintColor selects black-and-white or color printing for a component.
type PrintColor int

const (
	BW PrintColor = iota
	Color
)

// Lamination selects a finish applied to the cover.
type Lamination int

const (
	LaminationNone Lamination = iota
	LaminationGloss
	LaminationMatte
)

// Binding selects the job's binding method.
type Binding int

const (
	BindingNone Binding = iota
	PerfectBound
	SaddleStitch
)

// JobSpec is the immutable input to Estimate (spec.md §3 "Cost job specification").
type JobSpec struct {
	Quantity int

	FinishedWidthIn  float64
	FinishedHeightIn float64

	BWPages     int
	BWPaperSKU  string
	ColorPages  int
	ColorPaperSKU string

	HasCover            bool
	CoverPaperSKU       string
	CoverPrintColor     PrintColor
	CoverPrintsBothSides bool

	Lamination Lamination
	Binding    Binding

	LaborRatePerHour float64
	MarkupPercent    float64
	SpoilagePercent  float64

	CalculateShipping   bool
	OverrideShippingBox string // catalog box name; empty = consider all boxes
}

// LineItem is a label/amount pair used by the estimator's own summary
// printing (cmd/estimate), grounded in the teacher's
// renderSummaryPage "Sheet Breakdown" table pattern.
type LineItem struct {
	Label  string
	Amount float64
}

// ShippingPlan describes the chosen shipping packing (spec.md §4.5.1).
type ShippingPlan struct {
	BoxName      string
	BooksPerBox  int
	Boxes        int
	BookWeightLb float64
	HandlingCost float64
	CarrierCost  float64
	TotalCost    float64
}

// Breakdown is the output of Estimate (spec.md §3 "Cost breakdown"). It
// never represents failure via a Go error (spec.md §7) — Error is populated
// and every numeric field left zero instead.
type Breakdown struct {
	Error string

	BWPressSheets    int
	ColorPressSheets int
	CoverPressSheets int

	BWNUp    int
	ColorNUp int
	CoverNUp int

	TotalClicks int

	PaperCost     float64
	ClickCost     float64
	LaminationCost float64
	LaborCost     float64

	SetupMinutes     float64
	PrintingMinutes  float64
	LaminatingMinutes float64
	BindingMinutes   float64
	TrimmingMinutes  float64
	WastageMinutes   float64
	ProductionHours  float64

	Shipping *ShippingPlan

	Subtotal     float64
	MarkupAmount float64
	Total        float64
	PricePerUnit float64

	SpineWidthIn float64
}

// AsLineItems returns the per-category cost breakdown as label/amount pairs,
// in the order a printed estimate would list them.
func (b Breakdown) AsLineItems() []LineItem {
	items := []LineItem{
		{"Paper", b.PaperCost},
		{"Clicks", b.ClickCost},
		{"Lamination", b.LaminationCost},
		{"Labor", b.LaborCost},
	}
	if b.Shipping != nil {
		items = append(items, LineItem{"Shipping", b.Shipping.TotalCost})
	}
	items = append(items,
		LineItem{"Subtotal", b.Subtotal},
		LineItem{"Markup", b.MarkupAmount},
		LineItem{"Total", b.Total},
	)
	return items
}

func errorBreakdown(msg string) Breakdown {
	return Breakdown{Error: msg}
}
