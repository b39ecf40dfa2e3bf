package impose

import "github.com/piwi3910/printcore/internal/errkind"

// Paginate assigns input page indices to every slot of every sheet for the
// whole job (spec.md §4.3, "Pagination"). It returns the full list of sheet
// plans (grid + assignments) and any plan-time warnings.
func Paginate(spec ImpositionSpec, plan PlanResult, pageCount int) ([]SheetPlan, []string, error) {
	spec = spec.Normalize()
	S := spec.Columns * spec.Rows

	if spec.ImpositionType == Booklet {
		if err := validateBookletBinding(pageCount); err != nil {
			// Booklet mode pads to a multiple of 4 itself; this guard exists
			// for callers that pre-declared a saddle-stitch binding on the
			// interior page count (cost estimator shares the same rule).
			_ = err // booklet padding handles non-multiples by design; no hard failure here.
		}
		return paginateBooklet(spec, plan, pageCount)
	}

	total := totalSheets(spec, S, pageCount)
	sheets := make([]SheetPlan, 0, total)
	var warnings []string

	for k := 0; k < total; k++ {
		front, back := assignFace(spec, S, pageCount, k, total)
		sheet := SheetPlan{
			Index:         k,
			Orientation:   plan.Orientation,
			SheetWidthPt:  plan.SheetWidthPt,
			SheetHeightPt: plan.SheetHeightPt,
			Slots:         plan.Slots,
			Front:         front,
			IsFirst:       k == 0,
			IsLast:        k == total-1,
		}
		if spec.Duplex {
			sheet.Back = back
		}
		sheets = append(sheets, sheet)
	}

	if total > 0 {
		cols := spec.Columns
		if spec.ImpositionType == Repeat && cols == 1 && spec.Rows == 1 {
			warnings = append(warnings, "single-slot repeat imposition is equivalent to a simple duplicate-up; consider collate_cut for multi-page jobs")
		}
	}

	return sheets, warnings, nil
}

// validateBookletBinding reports the saddle-stitch multiple-of-4 invariant.
// Booklet mode itself pads automatically (spec.md §4.3), so this is advisory
// only within the imposition engine; the cost estimator enforces it as a
// hard failure for saddle-stitch jobs (spec.md §4.5 step 1).
func validateBookletBinding(pageCount int) error {
	if pageCount%4 != 0 {
		return errkind.Newf(errkind.InvalidPageCountForBinding,
			"page count %d is not a multiple of 4", pageCount)
	}
	return nil
}

// totalSheets computes the sheet count for stack/repeat/collate_cut per
// spec.md §4.3 and §8 property #6.
func totalSheets(spec ImpositionSpec, S, P int) int {
	switch spec.ImpositionType {
	case Repeat:
		per := 1
		if spec.Duplex {
			per = 2
		}
		return ceilDiv(P, per)
	case CollateCut:
		pStack := ceilDiv(P, S)
		if spec.Duplex {
			return ceilDiv(pStack, 2)
		}
		return pStack
	default: // Stack
		per := S
		if spec.Duplex {
			per = S * 2
		}
		return ceilDiv(P, per)
	}
}

func ceilDiv(a, b int) int {
	if b <= 0 {
		return 0
	}
	if a <= 0 {
		return 0
	}
	return (a + b - 1) / b
}

// assignFace computes the raw front/back page assignments for sheet k, then
// applies work-and-turn reversal to the back side for duplex multi-column
// stack/collate_cut jobs (spec.md §4.3, "Work-and-turn reversal").
func assignFace(spec ImpositionSpec, S, P, k, total int) (front, back SheetFace) {
	rawFront := make([]int, S)
	rawBack := make([]int, S)

	switch spec.ImpositionType {
	case Repeat:
		master := k
		backMaster := k
		if spec.Duplex {
			master = 2 * k
			backMaster = 2*k + 1
		}
		for i := 0; i < S; i++ {
			rawFront[i] = boundedIndex(master, P)
			rawBack[i] = boundedIndex(backMaster, P)
		}
	case CollateCut:
		pStack := ceilDiv(P, S)
		sheetsPerMode := pStack
		mult := 1
		if spec.Duplex {
			sheetsPerMode = ceilDiv(pStack, 2)
			mult = 2
		}
		for i := 0; i < S; i++ {
			columnOffset := i * sheetsPerMode * mult
			frontIdx := k*mult + columnOffset
			rawFront[i] = boundedIndex(frontIdx, P)
			if spec.Duplex {
				rawBack[i] = boundedIndex(frontIdx+1, P)
			} else {
				rawBack[i] = -1
			}
		}
	default: // Stack
		base := k * S
		if spec.Duplex {
			base = k * S * 2
		}
		for i := 0; i < S; i++ {
			if spec.Duplex {
				rawFront[i] = boundedIndex(base+2*i, P)
				rawBack[i] = boundedIndex(base+2*i+1, P)
			} else {
				rawFront[i] = boundedIndex(base+i, P)
				rawBack[i] = -1
			}
		}
	}

	finalBack := rawBack
	if spec.Duplex && spec.Columns > 1 {
		finalBack = reverseWithinRows(rawBack, spec.Columns, spec.Rows)
	}

	front = buildFace(spec, rawFront, false, k)
	back = buildFace(spec, finalBack, true, k)
	return front, back
}

// boundedIndex returns idx, or -1 (blank slot) when it falls outside the
// document's page range. Blanks are not confined to the final sheet: booklet
// padding pages land on the outermost signature (sheet 0), and collate_cut
// column tails can leave blanks on earlier sheets.
func boundedIndex(idx, P int) int {
	if idx < 0 || idx >= P {
		return -1
	}
	return idx
}

// reverseWithinRows reverses column order within each row of a row-major
// slot array, implementing the work-and-turn flip (spec.md §4.3, §8
// property #5).
func reverseWithinRows(vals []int, columns, rows int) []int {
	out := make([]int, len(vals))
	for r := 0; r < rows; r++ {
		for c := 0; c < columns; c++ {
			out[r*columns+c] = vals[r*columns+(columns-1-c)]
		}
	}
	return out
}

// buildFace assembles rotation and spine-polarity metadata alongside the
// page assignment for one face of one sheet (spec.md §4.3 "Alternate
// rotation" and "Spine slug text").
func buildFace(spec ImpositionSpec, pages []int, isBack bool, sheetIndex int) SheetFace {
	n := len(pages)
	rotated := make([]bool, n)
	spineLeft := make([]bool, n)
	creep := make([]float64, n)

	for i := 0; i < n; i++ {
		row := i / spec.Columns
		col := i % spec.Columns

		rot := false
		switch spec.AltRotation {
		case RotateAlternateColumns:
			rot = col%2 == 1
		case RotateAlternateRows:
			rot = row%2 == 1
		}
		rotated[i] = rot

		// Base "spine is left" polarity: in non-booklet layouts the binding
		// edge is conventionally the left edge of the content block for LTR
		// jobs. Work-and-turn flips it on the back; a 180-degree rotation
		// flips it again (two flips compose to none).
		base := spec.ReadingDir == LTR
		if isBack {
			base = !base
		}
		if rot {
			base = !base
		}
		spineLeft[i] = base
	}

	return SheetFace{
		PageIndex:     pages,
		RotatedSlots:  rotated,
		SpineIsLeft:   spineLeft,
		CreepOffsetIn: creep,
	}
}

// paginateBooklet implements the signature-based booklet layout, including
// padding, reading-direction spread swap, and creep (spec.md §4.3 "booklet",
// "Creep (shingling)").
func paginateBooklet(spec ImpositionSpec, plan PlanResult, pageCount int) ([]SheetPlan, []string, error) {
	padded := ((pageCount + 3) / 4) * 4
	if padded == 0 {
		padded = 4
	}
	N := padded / 4

	step := 0.0
	if N > 1 {
		step = spec.CreepIn / float64(N-1)
	}

	var warnings []string
	sheets := make([]SheetPlan, 0, N)

	for k := 0; k < N; k++ {
		frontLeft := padded - 2*k - 1
		frontRight := 2 * k
		backLeft := 2*k + 1
		backRight := padded - 2*k - 2

		frontLeftPage := boundedIndex(frontLeft, pageCount)
		frontRightPage := boundedIndex(frontRight, pageCount)
		backLeftPage := boundedIndex(backLeft, pageCount)
		backRightPage := boundedIndex(backRight, pageCount)

		// Reading direction swaps which slot (col0/col1) receives the
		// "left page" vs "right page" of the spread.
		var frontPages, backPages [2]int
		if spec.ReadingDir == RTL {
			frontPages = [2]int{frontRightPage, frontLeftPage}
			backPages = [2]int{backRightPage, backLeftPage}
		} else {
			frontPages = [2]int{frontLeftPage, frontRightPage}
			backPages = [2]int{backLeftPage, backRightPage}
		}

		// Creep: column 0 (outer) shifts by -k*step/2, column 1 (inner)
		// shifts by +k*step/2, for both faces of the signature.
		creepOuter := -float64(k) * step / 2
		creepInner := float64(k) * step / 2

		front := SheetFace{
			PageIndex:     frontPages[:],
			RotatedSlots:  []bool{false, false},
			SpineIsLeft:   []bool{true, false},
			CreepOffsetIn: []float64{creepOuter, creepInner},
		}
		back := SheetFace{
			PageIndex:     backPages[:],
			RotatedSlots:  []bool{false, false},
			SpineIsLeft:   []bool{false, true},
			CreepOffsetIn: []float64{creepOuter, creepInner},
		}

		sheets = append(sheets, SheetPlan{
			Index:         k,
			Orientation:   plan.Orientation,
			SheetWidthPt:  plan.SheetWidthPt,
			SheetHeightPt: plan.SheetHeightPt,
			Slots:         plan.Slots,
			Front:         front,
			Back:          back,
			IsFirst:       k == 0,
			IsLast:        k == N-1,
		})
	}

	if spec.CreepIn > 0 && exceedsCreepBleed(spec, step, N) {
		warnings = append(warnings, "booklet creep plus bleed may push content beyond the press sheet on outer signatures; verify trim margins")
	}

	return sheets, warnings, nil
}

// exceedsCreepBleed is a conservative plan-time heuristic for DESIGN.md
// Open Question #2: the source silently allows creep+bleed overflow, so this
// never fails the plan — it only decides whether to surface a warning.
func exceedsCreepBleed(spec ImpositionSpec, step float64, N int) bool {
	maxShift := float64(N-1) * step / 2
	return maxShift > spec.BleedIn
}
