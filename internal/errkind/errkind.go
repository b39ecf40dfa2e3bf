// Package errkind defines the enumerated error kinds shared by the
// imposition engine, the cover/template engine, and the cost estimator.
package errkind

import "fmt"

// Kind identifies the category of a toolkit error.
type Kind int

const (
	// Configuration errors — surfaced at plan time, before any output is produced.
	InvalidGeometry Kind = iota
	LayoutExceedsSheet
	BleedExceedsPage
	InvalidPageCountForBinding
	UnknownPaperSKU
	FinishedSizeDoesNotFitPaper
	CoverSpreadDoesNotFitCover

	// External errors — propagated from the PDF/QR adapters.
	PdfParseError
	PdfRenderError
	QrGenerationError

	// Control.
	Cancelled
)

func (k Kind) String() string {
	switch k {
	case InvalidGeometry:
		return "InvalidGeometry"
	case LayoutExceedsSheet:
		return "LayoutExceedsSheet"
	case BleedExceedsPage:
		return "BleedExceedsPage"
	case InvalidPageCountForBinding:
		return "InvalidPageCountForBinding"
	case UnknownPaperSKU:
		return "UnknownPaperSKU"
	case FinishedSizeDoesNotFitPaper:
		return "FinishedSizeDoesNotFitPaper"
	case CoverSpreadDoesNotFitCover:
		return "CoverSpreadDoesNotFitCover"
	case PdfParseError:
		return "PdfParseError"
	case PdfRenderError:
		return "PdfRenderError"
	case QrGenerationError:
		return "QrGenerationError"
	case Cancelled:
		return "Cancelled"
	default:
		return "Unknown"
	}
}

// ToolkitError is the single error type returned by core operations.
// Each call returns exactly one Kind or success (spec §7).
type ToolkitError struct {
	Kind   Kind
	Detail string
}

func New(kind Kind, detail string) *ToolkitError {
	return &ToolkitError{Kind: kind, Detail: detail}
}

func Newf(kind Kind, format string, args ...any) *ToolkitError {
	return &ToolkitError{Kind: kind, Detail: fmt.Sprintf(format, args...)}
}

func (e *ToolkitError) Error() string {
	if e.Detail == "" {
		return e.Kind.String()
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Detail)
}

// Is reports whether err is a ToolkitError of the given kind, for use with
// errors.Is-style checks in caller code.
func Is(err error, kind Kind) bool {
	te, ok := err.(*ToolkitError)
	return ok && te.Kind == kind
}
