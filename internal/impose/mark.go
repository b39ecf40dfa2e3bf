package impose

import (
	"github.com/piwi3910/printcore/internal/geometry"
	"github.com/piwi3910/printcore/internal/slug"
)

// Crop-mark sizing is not pinned to a specific numeric value by the source
// (spec.md §4.3 names the parameters L_crop/o_crop without fixed numbers);
// these are standard commercial-print defaults (1/9" mark length, 1/12"
// offset from trim).
const (
	DefaultCropMarkLengthPt = 8.0
	DefaultCropMarkOffsetPt = 6.0

	spineSlugFontPt   = 6.0
	spineSlugStridePt = 54.0 // vertical repeat of "FRONT SPINE"/"BACK SPINE"

	jobSlugQRTargetPt  = 20.0 * geometry.PointsPerMM // 2cm target size, spec.md §4.3 item 4
	jobSlugStripPt     = jobSlugQRTargetPt + 4
	jobSlugTextFontPt  = 7.0
)

var (
	black = RGB{0, 0, 0}
	white = RGB{255, 255, 255}
	cyan  = RGB{0, 160, 200}
	pink  = RGB{230, 150, 190}
)

var slipColorRGB = map[SlipColor]RGB{
	SlipGrey:   {170, 170, 170},
	SlipYellow: {240, 210, 60},
	SlipGreen:  {110, 190, 110},
	SlipPink:   {230, 150, 190},
	SlipBlue:   {110, 150, 220},
}

// CropMark is a single crop-mark line segment in sheet-local points.
type CropMark struct {
	X1, Y1, X2, Y2 float64
}

// SpineIndicator is the triangle-plus-label mark drawn below the trim
// rectangle on the binding edge (spec.md §4.3 item 2).
type SpineIndicator struct {
	TriangleBase geometry.Rect
	LabelX       float64
	LabelY       float64
}

// SpineSlugLine is one repeated "FRONT SPINE"/"BACK SPINE" string within the
// bleed strip of the binding edge (spec.md §4.3 item 3).
type SpineSlugLine struct {
	X, Y float64
	Text string
}

// JobSlugBlock is the QR-plus-text strip along the bottom of a sheet
// (spec.md §4.3 item 4).
type JobSlugBlock struct {
	QRRect   geometry.Rect
	Payload  string
	TextX    float64
	TextY    float64
	TextLine string
}

// SheetMarks is the complete set of overlays for one rendered sheet face.
type SheetMarks struct {
	CropMarks      []CropMark
	SpineIndicator *SpineIndicator
	SpineSlugLines []SpineSlugLine
	JobSlug        *JobSlugBlock
	SlipFill       bool
	SlipColor      RGB
}

type neighborFlags struct {
	top, bottom, left, right bool
}

func findNeighbors(s Slot, all []Slot) neighborFlags {
	var nf neighborFlags
	for _, o := range all {
		if o.Row == s.Row-1 && o.Col == s.Col {
			nf.top = true
		}
		if o.Row == s.Row+1 && o.Col == s.Col {
			nf.bottom = true
		}
		if o.Row == s.Row && o.Col == s.Col-1 {
			nf.left = true
		}
		if o.Row == s.Row && o.Col == s.Col+1 {
			nf.right = true
		}
	}
	return nf
}

// trimRect returns the trim rectangle inside a slot's cell (bleed removed,
// centered) (spec.md §4.3 step 1).
func trimRect(cell geometry.Rect, bleedPt float64) geometry.Rect {
	r, err := geometry.NewRect(cell.X+bleedPt, cell.Y+bleedPt, cell.W-2*bleedPt, cell.H-2*bleedPt)
	if err != nil {
		// bleed is already validated against the cell at plan time; a
		// degenerate trim here means the cell itself was degenerate.
		return cell
	}
	return r
}

// cropMarksForSlot builds the (up to 8) crop-mark segments for one slot,
// suppressing marks that would fall into a neighboring cell of the same
// sheet (spec.md §4.3 item 1).
func cropMarksForSlot(cell geometry.Rect, nf neighborFlags, bleedPt, lengthPt, offsetPt float64) []CropMark {
	t := trimRect(cell, bleedPt)
	var marks []CropMark

	// Top-left corner.
	if !nf.top {
		marks = append(marks, CropMark{t.X, t.Top() + offsetPt, t.X, t.Top() + offsetPt + lengthPt})
	}
	if !nf.left {
		marks = append(marks, CropMark{t.X - offsetPt - lengthPt, t.Top(), t.X - offsetPt, t.Top()})
	}
	// Top-right corner.
	if !nf.top {
		marks = append(marks, CropMark{t.Right(), t.Top() + offsetPt, t.Right(), t.Top() + offsetPt + lengthPt})
	}
	if !nf.right {
		marks = append(marks, CropMark{t.Right() + offsetPt, t.Top(), t.Right() + offsetPt + lengthPt, t.Top()})
	}
	// Bottom-left corner.
	if !nf.bottom {
		marks = append(marks, CropMark{t.X, t.Y - offsetPt - lengthPt, t.X, t.Y - offsetPt})
	}
	if !nf.left {
		marks = append(marks, CropMark{t.X - offsetPt - lengthPt, t.Y, t.X - offsetPt, t.Y})
	}
	// Bottom-right corner.
	if !nf.bottom {
		marks = append(marks, CropMark{t.Right(), t.Y - offsetPt - lengthPt, t.Right(), t.Y - offsetPt})
	}
	if !nf.right {
		marks = append(marks, CropMark{t.Right() + offsetPt, t.Y, t.Right() + offsetPt + lengthPt, t.Y})
	}

	return marks
}

// spineIndicatorForSheet places the triangle+"SPINE" label below the trim
// rectangle on the binding edge of the first/last sheet of a multi-column
// job (spec.md §4.3 item 2).
func spineIndicatorForSheet(spec ImpositionSpec, slots []Slot, bleedPt float64) *SpineIndicator {
	if !spec.ShowSpineMarks || spec.Columns <= 1 {
		return nil
	}
	if len(slots) == 0 {
		return nil
	}

	// Binding edge sits between the two center-most columns; approximate
	// its x by the midpoint of the content block.
	minX, maxX, minY := slots[0].Rect.X, slots[0].Rect.Right(), slots[0].Rect.Y
	for _, s := range slots {
		if s.Rect.X < minX {
			minX = s.Rect.X
		}
		if s.Rect.Right() > maxX {
			maxX = s.Rect.Right()
		}
		if s.Rect.Y < minY {
			minY = s.Rect.Y
		}
	}
	midX := (minX + maxX) / 2

	base, err := geometry.NewRect(midX-6, minY-bleedPt-16, 12, 10)
	if err != nil {
		return nil
	}
	return &SpineIndicator{
		TriangleBase: base,
		LabelX:       midX - 14,
		LabelY:       minY - bleedPt - 20,
	}
}

// spineSlugLinesForSlot repeats "FRONT SPINE"/"BACK SPINE" vertically within
// the bleed strip of the binding edge of one slot (spec.md §4.3 item 3).
func spineSlugLinesForSlot(cell geometry.Rect, bleedPt float64, spineIsLeft, isBack bool) []SpineSlugLine {
	if bleedPt <= 0 {
		return nil
	}
	text := "FRONT SPINE"
	if isBack {
		text = "BACK SPINE"
	}

	t := trimRect(cell, bleedPt)
	x := t.X - bleedPt/2
	if !spineIsLeft {
		x = t.Right() + bleedPt/2
	}

	var lines []SpineSlugLine
	for y := t.Y + spineSlugStridePt/2; y < t.Top(); y += spineSlugStridePt {
		lines = append(lines, SpineSlugLine{X: x, Y: y, Text: text})
	}
	return lines
}

// buildJobSlug assembles the QR-plus-text strip along the bottom of the
// sheet (spec.md §4.3 item 4, §6 "Slug QR payload").
func buildJobSlug(s slug.JobSlug, sheetWidthPt float64, sheetIndex, totalSheets int) (*JobSlugBlock, error) {
	payload := slug.Payload(s, sheetIndex, totalSheets)
	qrRect, err := geometry.NewRect(8, 4, jobSlugQRTargetPt, jobSlugQRTargetPt)
	if err != nil {
		return nil, err
	}
	return &JobSlugBlock{
		QRRect:   qrRect,
		Payload:  payload,
		TextX:    qrRect.Right() + 6,
		TextY:    4 + jobSlugQRTargetPt/2,
		TextLine: slug.SummaryLine(s, sheetIndex, totalSheets),
	}, nil
}

// BuildSheetMarks assembles every overlay for one sheet face (spec.md
// §4.3 "Marking"). isBack selects the back-face marking variants; totalSheets
// is the job's overall sheet count, used only for slug text.
func BuildSheetMarks(spec ImpositionSpec, s slug.JobSlug, plan SheetPlan, face SheetFace, isBack bool, totalSheets int) (SheetMarks, error) {
	bleedPt := geometry.InchToPt(spec.BleedIn)

	var marks SheetMarks
	for _, sl := range plan.Slots {
		nf := findNeighbors(sl, plan.Slots)
		marks.CropMarks = append(marks.CropMarks, cropMarksForSlot(sl.Rect, nf, bleedPt, DefaultCropMarkLengthPt, DefaultCropMarkOffsetPt)...)
	}

	if plan.IsFirst || plan.IsLast {
		marks.SpineIndicator = spineIndicatorForSheet(spec, plan.Slots, bleedPt)
	}

	for i, sl := range plan.Slots {
		if i >= len(face.SpineIsLeft) {
			break
		}
		marks.SpineSlugLines = append(marks.SpineSlugLines, spineSlugLinesForSlot(sl.Rect, bleedPt, face.SpineIsLeft[i], isBack)...)
	}

	if spec.IncludeSlug {
		jb, err := buildJobSlug(s, plan.SheetWidthPt, plan.Index, totalSheets)
		if err != nil {
			return SheetMarks{}, err
		}
		marks.JobSlug = jb
	}

	if !isBack && plan.IsFirst && spec.FirstSheetSlipColor != SlipNone && spec.FirstSheetSlipColor != "" {
		if rgb, ok := slipColorRGB[spec.FirstSheetSlipColor]; ok {
			marks.SlipFill = true
			marks.SlipColor = rgb
		}
	}

	return marks, nil
}
