// Command estimate is a thin demo binary over the cost estimator: it builds
// a job spec from flags, runs it against the default catalog, and prints the
// resulting breakdown (mirrors the teacher's cmd/cnc-calculator).
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/piwi3910/printcore/internal/catalog"
	"github.com/piwi3910/printcore/internal/cost"
)

func main() {
	quantity := flag.Int("qty", 500, "quantity")
	widthIn := flag.Float64("width", 5.5, "finished width, inches")
	heightIn := flag.Float64("height", 8.5, "finished height, inches")
	bwPages := flag.Int("bw-pages", 96, "black-and-white interior pages")
	colorPages := flag.Int("color-pages", 0, "color interior pages")
	bwSKU := flag.String("bw-sku", "BW-80-TEXT", "black-and-white paper SKU")
	colorSKU := flag.String("color-sku", "COLOR-100-TEXT", "color paper SKU")
	hasCover := flag.Bool("cover", true, "job has a cover")
	coverSKU := flag.String("cover-sku", "COVER-100-SILK", "cover paper SKU")
	bindingFlag := flag.String("binding", "perfect", "binding: perfect, saddle, none")
	laborRate := flag.Float64("labor-rate", 45.0, "labor rate per hour, USD")
	markup := flag.Float64("markup", 35.0, "markup percent")
	spoilage := flag.Float64("spoilage", 3.0, "spoilage percent")
	shipping := flag.Bool("shipping", true, "calculate shipping")
	flag.Parse()

	binding, err := parseBinding(*bindingFlag)
	if err != nil {
		fmt.Fprintln(os.Stderr, "estimate:", err)
		os.Exit(1)
	}

	spec := cost.JobSpec{
		Quantity:            *quantity,
		FinishedWidthIn:      *widthIn,
		FinishedHeightIn:     *heightIn,
		BWPages:              *bwPages,
		BWPaperSKU:           *bwSKU,
		ColorPages:           *colorPages,
		ColorPaperSKU:        *colorSKU,
		HasCover:             *hasCover,
		CoverPaperSKU:        *coverSKU,
		CoverPrintColor:      cost.Color,
		CoverPrintsBothSides: false,
		Lamination:           cost.LaminationGloss,
		Binding:              binding,
		LaborRatePerHour:     *laborRate,
		MarkupPercent:        *markup,
		SpoilagePercent:      *spoilage,
		CalculateShipping:    *shipping,
	}

	breakdown := cost.Estimate(spec, catalog.DefaultCatalog())
	if breakdown.Error != "" {
		fmt.Fprintln(os.Stderr, "estimate: error:", breakdown.Error)
		os.Exit(1)
	}

	for _, item := range breakdown.AsLineItems() {
		fmt.Printf("%-12s %8.2f\n", item.Label, item.Amount)
	}
	fmt.Printf("price/unit   %8.4f\n", breakdown.PricePerUnit)
	if breakdown.Shipping != nil {
		fmt.Printf("shipping: %d boxes of %q, %d books/box\n", breakdown.Shipping.Boxes, breakdown.Shipping.BoxName, breakdown.Shipping.BooksPerBox)
	}
}

func parseBinding(s string) (cost.Binding, error) {
	switch s {
	case "perfect":
		return cost.PerfectBound, nil
	case "saddle":
		return cost.SaddleStitch, nil
	case "none":
		return cost.BindingNone, nil
	default:
		return 0, fmt.Errorf("unknown binding %q", s)
	}
}
