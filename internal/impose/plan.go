package impose

import (
	"math"

	"github.com/piwi3910/printcore/internal/errkind"
	"github.com/piwi3910/printcore/internal/geometry"
)

// Plan computes the grid geometry for the given spec and a representative
// input page size (spec.md §4.3, "Planning"). All input pages in a single-
// page-stream job share one trim size, so planning is driven by page 0.
func Plan(spec ImpositionSpec, doc InputDocument) (PlanResult, error) {
	spec = spec.Normalize()

	if doc.PageCount() == 0 {
		return PlanResult{}, errkind.New(errkind.InvalidGeometry, "input document has no pages")
	}

	cellW, cellH := doc.PageSize(0)
	if cellW <= 0 || cellH <= 0 {
		return PlanResult{}, errkind.New(errkind.InvalidGeometry, "input page has non-positive dimensions")
	}

	bleedPt := geometry.InchToPt(spec.BleedIn)
	if 2*bleedPt >= cellW || 2*bleedPt >= cellH {
		return PlanResult{}, errkind.Newf(errkind.BleedExceedsPage,
			"bleed %.3fin exceeds half the input page (%.2f x %.2f pt)", spec.BleedIn, cellW, cellH)
	}

	hGutter := geometry.InchToPt(spec.HorizontalGutterIn)
	vGutter := geometry.InchToPt(spec.VerticalGutterIn)

	columnStride := cellW + hGutter
	rowStride := cellH + vGutter

	// Half-row stagger widens the required content-block width by half a
	// column stride (spec.md §4.3 step 2).
	blockWidth := float64(spec.Columns)*columnStride - hGutter
	if spec.RowOffset == OffsetHalf && spec.Rows > 1 {
		blockWidth += columnStride / 2
	}
	blockHeight := float64(spec.Rows)*rowStride - vGutter

	orientation, sheetW, sheetH, warnings, err := chooseOrientation(spec, blockWidth, blockHeight)
	if err != nil {
		return PlanResult{}, err
	}

	start := geometry.CenterFit(sheetW, sheetH, blockWidth, blockHeight)

	slots := make([]Slot, 0, spec.Columns*spec.Rows)
	for row := 0; row < spec.Rows; row++ {
		offsetX := 0.0
		if spec.RowOffset == OffsetHalf && row%2 == 1 {
			offsetX = columnStride / 2
		}
		// Row 0 sits at the top of the sheet; y grows upward (PDF convention),
		// so row 0's origin is the highest y.
		y := start.Y + float64(spec.Rows-1-row)*rowStride
		for col := 0; col < spec.Columns; col++ {
			x := start.X + float64(col)*columnStride + offsetX
			rect, rerr := geometry.NewRect(x, y, cellW, cellH)
			if rerr != nil {
				return PlanResult{}, rerr
			}
			if rect.X < -1e-6 || rect.Right() > sheetW+1e-6 || rect.Y < -1e-6 || rect.Top() > sheetH+1e-6 {
				return PlanResult{}, errkind.Newf(errkind.LayoutExceedsSheet,
					"slot (row=%d, col=%d) falls outside the press sheet", row, col)
			}
			slots = append(slots, Slot{Row: row, Col: col, Rect: rect})
		}
	}

	return PlanResult{
		Orientation:    orientation,
		CellWidthPt:    cellW,
		CellHeightPt:   cellH,
		ColumnStridePt: columnStride,
		RowStridePt:    rowStride,
		Slots:          slots,
		SheetWidthPt:   sheetW,
		SheetHeightPt:  sheetH,
		Warnings:       warnings,
	}, nil
}

// chooseOrientation implements spec.md §4.3 step 3: if auto, prefer whichever
// of landscape/portrait admits the content block; if both fit, prefer the
// higher aspect-ratio match (the "Absolute Max Layout" heuristic of
// DESIGN.md Open Question #3 ties toward landscape).
func chooseOrientation(spec ImpositionSpec, blockW, blockH float64) (Orientation, float64, float64, []string, error) {
	longPt := geometry.InchToPt(spec.SelectedSheet.LongIn)
	shortPt := geometry.InchToPt(spec.SelectedSheet.ShortIn)

	landscapeW, landscapeH := longPt, shortPt
	portraitW, portraitH := shortPt, longPt

	fitsLandscape := geometry.Fits(blockW, blockH, landscapeW, landscapeH)
	fitsPortrait := geometry.Fits(blockW, blockH, portraitW, portraitH)

	var warnings []string

	switch spec.Orientation {
	case Portrait:
		if !fitsPortrait {
			return 0, 0, 0, nil, errkind.Newf(errkind.LayoutExceedsSheet,
				"content block %.2f x %.2f pt does not fit portrait sheet %.2f x %.2f pt", blockW, blockH, portraitW, portraitH)
		}
		return Portrait, portraitW, portraitH, warnings, nil
	case Landscape:
		if !fitsLandscape {
			return 0, 0, 0, nil, errkind.Newf(errkind.LayoutExceedsSheet,
				"content block %.2f x %.2f pt does not fit landscape sheet %.2f x %.2f pt", blockW, blockH, landscapeW, landscapeH)
		}
		return Landscape, landscapeW, landscapeH, warnings, nil
	default: // Auto
		switch {
		case fitsLandscape && fitsPortrait:
			// Prefer the orientation whose aspect ratio is closer to the
			// content block's; ties go to landscape.
			blockAspect := blockW / blockH
			landscapeMismatch := math.Abs(blockAspect - landscapeW/landscapeH)
			portraitMismatch := math.Abs(blockAspect - portraitW/portraitH)
			if portraitMismatch < landscapeMismatch {
				return Portrait, portraitW, portraitH, warnings, nil
			}
			return Landscape, landscapeW, landscapeH, warnings, nil
		case fitsLandscape:
			return Landscape, landscapeW, landscapeH, warnings, nil
		case fitsPortrait:
			return Portrait, portraitW, portraitH, warnings, nil
		default:
			return 0, 0, 0, nil, errkind.Newf(errkind.LayoutExceedsSheet,
				"content block %.2f x %.2f pt fits neither orientation of sheet %q", blockW, blockH, spec.SelectedSheet.Name)
		}
	}
}
