// Command impose is a thin demo binary over the impose engine: it reads a
// source PDF, runs one imposition job against it, and writes the resulting
// chunk(s) to disk (mirrors the teacher's cmd/slabcut — a small library-demo
// main, not an application in its own right).
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/piwi3910/printcore/internal/impose"
	"github.com/piwi3910/printcore/internal/pdfsurface"
	"github.com/piwi3910/printcore/internal/slug"
)

func main() {
	input := flag.String("input", "", "source PDF path")
	title := flag.String("out", "imposed", "output title (chunk suffixes appended as needed)")
	longIn := flag.Float64("sheet-long", 17.0, "press sheet long side, inches")
	shortIn := flag.Float64("sheet-short", 11.0, "press sheet short side, inches")
	columns := flag.Int("columns", 2, "slot columns")
	rows := flag.Int("rows", 2, "slot rows")
	bleedIn := flag.Float64("bleed", 0.125, "bleed, inches")
	duplex := flag.Bool("duplex", true, "duplex (forced true in booklet mode)")
	modeFlag := flag.String("type", "stack", "imposition type: stack, repeat, collate_cut, booklet")
	includeSlug := flag.Bool("slug", true, "include job slug (QR + text)")
	flag.Parse()

	if *input == "" {
		fmt.Fprintln(os.Stderr, "impose: -input is required")
		os.Exit(1)
	}

	impType, err := parseImpositionType(*modeFlag)
	if err != nil {
		fmt.Fprintln(os.Stderr, "impose:", err)
		os.Exit(1)
	}

	doc, err := pdfsurface.ReadInputPDF(*input)
	if err != nil {
		fmt.Fprintln(os.Stderr, "impose: reading input:", err)
		os.Exit(1)
	}

	info, err := os.Stat(*input)
	var inputBytes int64
	if err == nil {
		inputBytes = info.Size()
	}

	spec := impose.ImpositionSpec{
		SelectedSheet:  impose.SheetSize{Name: "custom", LongIn: *longIn, ShortIn: *shortIn},
		Columns:        *columns,
		Rows:           *rows,
		BleedIn:        *bleedIn,
		ImpositionType: impType,
		Orientation:    impose.Auto,
		Duplex:         *duplex,
		IncludeSlug:    *includeSlug,
		ShowSpineMarks: true,
	}

	jobSlug := slug.JobSlug{
		JobID:        "DEMO-0001",
		Customer:     "Sample Customer",
		Filename:     *input,
		Quantity:     1,
		DueDate:      "12/31/26",
		TrimWidthIn:  *shortIn,
		TrimHeightIn: *longIn,
	}

	outputs, report, err := impose.Impose(spec, doc, func() (impose.DrawingSurface, error) {
		return pdfsurface.NewBufferSurface(), nil
	}, impose.ImposeOptions{
		Slug:           jobSlug,
		InputFileBytes: inputBytes,
		Progress: func(chunkIndex, sheetIndex, totalSheets int) {
			fmt.Printf("chunk %d: sheet %d/%d\n", chunkIndex, sheetIndex+1, totalSheets)
		},
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, "impose: run failed:", err)
		os.Exit(1)
	}

	for _, chunk := range outputs {
		name := impose.ChunkLabel(*title, chunk.PartIndex, chunk.TotalParts)
		if err := os.WriteFile(name, chunk.Bytes, 0o644); err != nil {
			fmt.Fprintln(os.Stderr, "impose: writing", name, ":", err)
			os.Exit(1)
		}
		fmt.Println("wrote", name)
	}

	fmt.Printf("total sheets: %d, slots per sheet: %d, orientation: %v\n", report.TotalSheets, report.SlotsPerSheet, report.Orientation)
	for _, w := range report.Warnings {
		fmt.Println("warning:", w)
	}
}

func parseImpositionType(s string) (impose.ImpositionType, error) {
	switch s {
	case "stack":
		return impose.Stack, nil
	case "repeat":
		return impose.Repeat, nil
	case "collate_cut":
		return impose.CollateCut, nil
	case "booklet":
		return impose.Booklet, nil
	default:
		return 0, fmt.Errorf("unknown imposition type %q", s)
	}
}
