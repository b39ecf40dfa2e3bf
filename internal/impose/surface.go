package impose

import "github.com/piwi3910/printcore/internal/geometry"

// PageHandle is an opaque reference to a page of the source input document,
// as returned by an InputDocument's reader (spec.md §3 "opaque handle").
type PageHandle any

// EmbeddedHandle is an opaque reference to a page embedded onto an output
// sheet (spec.md §4.3 "Rendering").
type EmbeddedHandle any

// ImageHandle is an opaque reference to an embedded raster image (job-slug
// QR code).
type ImageHandle any

// RGB is a stroke/fill color in 0-255 per-channel components.
type RGB [3]int

// Transform places an embedded page on a sheet: translation plus optional
// 180-degree rotation around the placed rectangle's center (spec.md §4.3
// "Alternate rotation").
type Transform struct {
	Rect     geometry.Rect
	Rotate180 bool
}

// DrawingSurface is the small capability set the imposition and cover
// engines depend on; a concrete PDF library sits behind it (spec.md §4.3
// "Rendering", §9 "the PDF library is treated as a capability set").
type DrawingSurface interface {
	AddPage(widthPt, heightPt float64) error
	EmbedPage(page PageHandle, clip *geometry.Rect) (EmbeddedHandle, error)
	DrawEmbedded(h EmbeddedHandle, t Transform) error
	DrawRectangle(r geometry.Rect, stroke RGB, fill *RGB, lineWidthPt float64, dashed bool) error
	DrawLine(x1, y1, x2, y2 float64, color RGB, widthPt float64, dashed bool) error
	DrawText(x, y float64, text string, sizePt float64, color RGB) error
	EmbedPNG(data []byte) (ImageHandle, error)
	DrawImage(h ImageHandle, r geometry.Rect) error
	Serialize() ([]byte, error)
}

// CancelToken is checked at every suspension point named in spec.md §5:
// each input-page read, each embedded-page draw, each QR generation, each
// chunk save.
type CancelToken interface {
	Cancelled() bool
}

// neverCancel is the default token used when a caller passes none.
type neverCancel struct{}

func (neverCancel) Cancelled() bool { return false }

// NoCancellation returns a CancelToken that never cancels.
func NoCancellation() CancelToken { return neverCancel{} }

// ProgressSink receives (chunk_index, sheet_index, total_sheets) tuples as
// the engine renders (spec.md §9).
type ProgressSink func(chunkIndex, sheetIndex, totalSheets int)
