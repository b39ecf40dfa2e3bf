// Package impose implements the imposition engine (spec.md §4.3): it plans
// a grid of slots on a press sheet, paginates input pages into those slots
// according to an imposition mode, computes crop/spine/slug marks, and
// drives an injected DrawingSurface to render the result — optionally split
// across multiple output chunks.
package impose

import (
	"github.com/piwi3910/printcore/internal/geometry"
	"github.com/piwi3910/printcore/internal/slug"
)

// Orientation selects which side of the press sheet runs horizontally.
type Orientation int

const (
	Auto Orientation = iota
	Portrait
	Landscape
)

// ImpositionType selects the pagination strategy (spec.md §4.3).
type ImpositionType int

const (
	Stack ImpositionType = iota
	Repeat
	CollateCut
	Booklet
)

// ReadingDirection affects booklet spread assignment and spine-slug polarity.
type ReadingDirection int

const (
	LTR ReadingDirection = iota
	RTL
)

// RowOffset enables a half-column stagger on odd rows.
type RowOffset int

const (
	OffsetNone RowOffset = iota
	OffsetHalf
)

// AlternateRotation rotates every odd column or row 180 degrees.
type AlternateRotation int

const (
	RotateNone AlternateRotation = iota
	RotateAlternateColumns
	RotateAlternateRows
)

// SlipColor names the first-sheet slip separator color, or None to disable it.
type SlipColor string

const (
	SlipGrey   SlipColor = "Grey"
	SlipYellow SlipColor = "Yellow"
	SlipGreen  SlipColor = "Green"
	SlipPink   SlipColor = "Pink"
	SlipBlue   SlipColor = "Blue"
	SlipNone   SlipColor = "None"
)

// SheetSize is a named press sheet record in inches.
type SheetSize struct {
	Name      string
	LongIn    float64
	ShortIn   float64
}

// ImpositionSpec is the immutable configuration for one imposition job
// (spec.md §3).
type ImpositionSpec struct {
	SelectedSheet SheetSize

	Columns int
	Rows    int

	BleedIn            float64
	HorizontalGutterIn float64
	VerticalGutterIn   float64

	ImpositionType ImpositionType
	Orientation    Orientation
	Duplex         bool
	ReadingDir     ReadingDirection
	RowOffset      RowOffset
	AltRotation    AlternateRotation
	CreepIn        float64

	IncludeSlug        bool
	ShowSpineMarks     bool
	FirstSheetSlipColor SlipColor
}

// Normalize applies the booklet-mode forcing rules from spec.md §3:
// booklet mode is always 2 columns x 1 row and duplex.
func (s ImpositionSpec) Normalize() ImpositionSpec {
	if s.ImpositionType == Booklet {
		s.Columns = 2
		s.Rows = 1
		s.Duplex = true
	}
	if s.Columns < 1 {
		s.Columns = 1
	}
	if s.Rows < 1 {
		s.Rows = 1
	}
	return s
}

// InputDocument is an opaque handle to the external source PDF: page count
// plus, per page, width/height in points (spec.md §3). The imposition
// engine never parses PDF bytes itself.
type InputDocument interface {
	PageCount() int
	PageSize(index int) (widthPt, heightPt float64)
}

// Slot is one cell of the press-sheet grid.
type Slot struct {
	Row, Col int
	Rect     geometry.Rect // in points, sheet-local coordinates
}

// SheetFace holds the page-index assignment for one side (front or back) of
// one sheet. PageIndex == -1 means the slot is empty (blank).
type SheetFace struct {
	PageIndex    []int     // len == len(Slots), indexed the same as the sheet's Slots
	RotatedSlots []bool    // 180-degree rotation per slot (alternate_rotation)
	SpineIsLeft  []bool    // binding-edge polarity per slot, for spine-slug text
	CreepOffsetIn []float64 // per-slot horizontal creep shift in inches (booklet only)
}

// SheetPlan is one physical press sheet: its slot grid plus front/back page
// assignments.
type SheetPlan struct {
	Index       int
	Orientation Orientation
	SheetWidthPt, SheetHeightPt float64
	Slots       []Slot
	Front       SheetFace
	Back        SheetFace // zero value (nil PageIndex) when not duplex
	IsFirst     bool
	IsLast      bool
}

// PlanResult is the output of the planning phase: the sheet grid (without
// pagination) plus the chosen orientation and any plan-time warnings.
type PlanResult struct {
	Orientation  Orientation
	CellWidthPt  float64
	CellHeightPt float64
	ColumnStridePt float64
	RowStridePt    float64
	Slots          []Slot
	SheetWidthPt, SheetHeightPt float64
	Warnings       []string
}

// ImpositionReport summarizes a completed imposition run (spec.md §6).
type ImpositionReport struct {
	TotalSheets   int
	SlotsPerSheet int
	Orientation   Orientation
	Warnings      []string
}
