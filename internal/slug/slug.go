// Package slug builds the job-slug QR payload and its human-readable
// companion line embedded on every imposed press sheet (spec.md §4.3
// "Marking", §6 "Slug QR payload"), grounded in the teacher's
// internal/export/labels.go (LabelInfo + qrcode.Encode JSON-ish payload).
package slug

import (
	"fmt"
	"strings"

	qrcode "github.com/skip2/go-qrcode"

	"github.com/piwi3910/printcore/internal/errkind"
)

// JobSlug carries purely informational job metadata embedded in marking
// output (spec.md §3, §6).
type JobSlug struct {
	JobID        string
	Customer     string
	Contact      string
	Filename     string
	Quantity     int
	DueDate      string // MM/DD/YY, pre-formatted by the caller
	TrimWidthIn  float64
	TrimHeightIn float64
	InteriorSpec string
	CoverSpec    string
	Finishing    string
	Binding      string
	Notes        string
	PONumber     string
	Salesperson  string
}

// Payload renders the plain multiline QR text exactly in the field order of
// spec.md §6.
func Payload(s JobSlug, sheetIndex, totalSheets int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Sheet: %d/%d\n", sheetIndex+1, totalSheets)
	fmt.Fprintf(&b, "JobID: %s\n", s.JobID)
	fmt.Fprintf(&b, "Customer: %s\n", s.Customer)
	fmt.Fprintf(&b, "Contact: %s\n", s.Contact)
	fmt.Fprintf(&b, "File: %s\n", s.Filename)
	fmt.Fprintf(&b, "Qty: %d\n", s.Quantity)
	fmt.Fprintf(&b, "Due: %s\n", s.DueDate)
	fmt.Fprintf(&b, "Trim: %.3fx%.3f\n", s.TrimWidthIn, s.TrimHeightIn)
	fmt.Fprintf(&b, "Interior: %s\n", s.InteriorSpec)
	fmt.Fprintf(&b, "Cover: %s\n", s.CoverSpec)
	fmt.Fprintf(&b, "Finish: %s\n", s.Finishing)
	fmt.Fprintf(&b, "Binding: %s\n", s.Binding)
	fmt.Fprintf(&b, "Notes: %s", s.Notes)
	return b.String()
}

// SummaryLine is the single human-readable line printed alongside the QR
// code (spec.md §4.3, marking item 4).
func SummaryLine(s JobSlug, sheetIndex, totalSheets int) string {
	return fmt.Sprintf("Sheet %d/%d  |  %s  |  Qty %d  |  Due %s  |  Trim %.2f x %.2f",
		sheetIndex+1, totalSheets, s.JobID, s.Quantity, s.DueDate, s.TrimWidthIn, s.TrimHeightIn)
}

// PNG encodes the payload as a QR symbol PNG at the given pixel size.
func PNG(payload string, sizePx int) ([]byte, error) {
	data, err := qrcode.Encode(payload, qrcode.Medium, sizePx)
	if err != nil {
		return nil, errkind.Newf(errkind.QrGenerationError, "encoding job-slug QR: %v", err)
	}
	return data, nil
}
