package impose

import (
	"github.com/piwi3910/printcore/internal/errkind"
	"github.com/piwi3910/printcore/internal/geometry"
	"github.com/piwi3910/printcore/internal/slug"
)

// ChunkOutput is one serialized output document tagged with its position in
// the job (spec.md §6 "Imposition operation").
type ChunkOutput struct {
	PartIndex  int
	TotalParts int
	Bytes      []byte
}

// SurfaceFactory creates a fresh DrawingSurface for each output chunk —
// chunked jobs serialize one document per chunk, so the engine needs a new
// surface per chunk rather than a single long-lived one.
type SurfaceFactory func() (DrawingSurface, error)

// ImposeOptions bundles the optional knobs of an imposition run.
type ImposeOptions struct {
	Slug            slug.JobSlug
	Cancel          CancelToken
	Progress        ProgressSink
	InputFileBytes  int64
}

// Impose runs the full plan → paginate → mark → render pipeline (spec.md
// §4.3, §5, §6) and returns the ordered output chunks plus a summary report.
//
// Ordering is strictly sheet index ascending, front before back within a
// sheet, and slots row-major within a side (spec.md §5) — this falls out of
// Paginate's output order and the per-slot loop below, never reshuffled.
func Impose(spec ImpositionSpec, doc InputDocument, newSurface SurfaceFactory, opts ImposeOptions) ([]ChunkOutput, ImpositionReport, error) {
	spec = spec.Normalize()
	cancel := opts.Cancel
	if cancel == nil {
		cancel = NoCancellation()
	}

	planResult, err := Plan(spec, doc)
	if err != nil {
		return nil, ImpositionReport{}, err
	}

	sheets, pagWarnings, err := Paginate(spec, planResult, doc.PageCount())
	if err != nil {
		return nil, ImpositionReport{}, err
	}

	warnings := append(append([]string{}, planResult.Warnings...), pagWarnings...)
	totalSheets := len(sheets)
	slotsPerSheet := spec.Columns * spec.Rows

	chunkPlan := PlanChunks(spec, opts.InputFileBytes, totalSheets)
	if chunkPlan.TotalChunks == 0 {
		report := ImpositionReport{
			TotalSheets:   0,
			SlotsPerSheet: slotsPerSheet,
			Orientation:   planResult.Orientation,
			Warnings:      warnings,
		}
		return nil, report, nil
	}

	var outputs []ChunkOutput

	for chunkIdx := 0; chunkIdx < chunkPlan.TotalChunks; chunkIdx++ {
		if cancel.Cancelled() {
			return outputs, ImpositionReport{}, errkind.New(errkind.Cancelled, "cancelled before chunk save")
		}

		start := chunkIdx * chunkPlan.SheetsPerChunk
		end := start + chunkPlan.SheetsPerChunk
		if end > totalSheets {
			end = totalSheets
		}

		surface, serr := newSurface()
		if serr != nil {
			return outputs, ImpositionReport{}, errkind.Newf(errkind.PdfRenderError, "creating surface for chunk %d: %v", chunkIdx, serr)
		}

		for sheetIdx := start; sheetIdx < end; sheetIdx++ {
			if cancel.Cancelled() {
				return outputs, ImpositionReport{}, errkind.New(errkind.Cancelled, "cancelled before rendering sheet")
			}

			sheet := sheets[sheetIdx]
			if rerr := renderSheet(surface, spec, doc, opts.Slug, sheet, totalSheets, cancel); rerr != nil {
				return outputs, ImpositionReport{}, rerr
			}

			if opts.Progress != nil {
				opts.Progress(chunkIdx, sheetIdx, totalSheets)
			}
		}

		bytes, serr := surface.Serialize()
		if serr != nil {
			return outputs, ImpositionReport{}, errkind.Newf(errkind.PdfRenderError, "serializing chunk %d: %v", chunkIdx, serr)
		}

		outputs = append(outputs, ChunkOutput{
			PartIndex:  chunkIdx,
			TotalParts: chunkPlan.TotalChunks,
			Bytes:      bytes,
		})
	}

	report := ImpositionReport{
		TotalSheets:   totalSheets,
		SlotsPerSheet: slotsPerSheet,
		Orientation:   planResult.Orientation,
		Warnings:      warnings,
	}
	return outputs, report, nil
}

// renderSheet draws one physical sheet: front face, then back face when
// duplex, each in row-major slot order (spec.md §5 "Ordering").
func renderSheet(surface DrawingSurface, spec ImpositionSpec, doc InputDocument, s slug.JobSlug, sheet SheetPlan, totalSheets int, cancel CancelToken) error {
	if err := surface.AddPage(sheet.SheetWidthPt, sheet.SheetHeightPt); err != nil {
		return errkind.Newf(errkind.PdfRenderError, "adding sheet %d front page: %v", sheet.Index, err)
	}
	if err := renderFace(surface, spec, doc, s, sheet, sheet.Front, false, totalSheets, cancel); err != nil {
		return err
	}

	if spec.Duplex {
		if err := surface.AddPage(sheet.SheetWidthPt, sheet.SheetHeightPt); err != nil {
			return errkind.Newf(errkind.PdfRenderError, "adding sheet %d back page: %v", sheet.Index, err)
		}
		if err := renderFace(surface, spec, doc, s, sheet, sheet.Back, true, totalSheets, cancel); err != nil {
			return err
		}
	}

	return nil
}

func renderFace(surface DrawingSurface, spec ImpositionSpec, doc InputDocument, s slug.JobSlug, sheet SheetPlan, face SheetFace, isBack bool, totalSheets int, cancel CancelToken) error {
	marks, err := BuildSheetMarks(spec, s, sheet, face, isBack, totalSheets)
	if err != nil {
		return err
	}

	if marks.SlipFill {
		if marks.JobSlug != nil && cancel.Cancelled() {
			return errkind.New(errkind.Cancelled, "cancelled before QR generation")
		}
		return renderSlipSheet(surface, sheet, marks)
	}

	for i, sl := range sheet.Slots {
		if i >= len(face.PageIndex) {
			break
		}
		if cancel.Cancelled() {
			return errkind.New(errkind.Cancelled, "cancelled before embedded-page draw")
		}

		pageIdx := face.PageIndex[i]
		if pageIdx < 0 {
			continue // blank slot on the final sheet
		}

		rect := sl.Rect
		if i < len(face.CreepOffsetIn) && face.CreepOffsetIn[i] != 0 {
			shiftPt := geometry.InchToPt(face.CreepOffsetIn[i])
			rect.X += shiftPt
		}

		pageHandle, rerr := doc.(pageReader).ReadPage(pageIdx)
		if rerr != nil {
			return errkind.Newf(errkind.PdfParseError, "reading input page %d: %v", pageIdx, rerr)
		}

		embedded, eerr := surface.EmbedPage(pageHandle, nil)
		if eerr != nil {
			return errkind.Newf(errkind.PdfParseError, "embedding input page %d: %v", pageIdx, eerr)
		}

		rotate := i < len(face.RotatedSlots) && face.RotatedSlots[i]
		if err := surface.DrawEmbedded(embedded, Transform{Rect: rect, Rotate180: rotate}); err != nil {
			return errkind.Newf(errkind.PdfRenderError, "drawing embedded page %d: %v", pageIdx, err)
		}
	}

	return drawOverlays(surface, marks, cancel)
}

// pageReader is implemented by InputDocument adapters that can hand back a
// PageHandle for a given zero-based index (pdfsurface.FileDocument does).
type pageReader interface {
	ReadPage(index int) (PageHandle, error)
}

func drawOverlays(surface DrawingSurface, marks SheetMarks, cancel CancelToken) error {
	for _, cm := range marks.CropMarks {
		if err := surface.DrawLine(cm.X1, cm.Y1, cm.X2, cm.Y2, black, 0.5, false); err != nil {
			return errkind.Newf(errkind.PdfRenderError, "drawing crop mark: %v", err)
		}
	}

	if marks.SpineIndicator != nil {
		if err := surface.DrawRectangle(marks.SpineIndicator.TriangleBase, black, nil, 0.5, false); err != nil {
			return errkind.Newf(errkind.PdfRenderError, "drawing spine indicator: %v", err)
		}
		if err := surface.DrawText(marks.SpineIndicator.LabelX, marks.SpineIndicator.LabelY, "SPINE", 6, black); err != nil {
			return errkind.Newf(errkind.PdfRenderError, "drawing spine label: %v", err)
		}
	}

	for _, sl := range marks.SpineSlugLines {
		if err := surface.DrawText(sl.X, sl.Y, sl.Text, spineSlugFontPt, black); err != nil {
			return errkind.Newf(errkind.PdfRenderError, "drawing spine slug text: %v", err)
		}
	}

	if marks.JobSlug != nil {
		if cancel.Cancelled() {
			return errkind.New(errkind.Cancelled, "cancelled before QR generation")
		}
		png, qerr := slugPNG(marks.JobSlug.Payload)
		if qerr != nil {
			return qerr
		}
		img, ierr := surface.EmbedPNG(png)
		if ierr != nil {
			return errkind.Newf(errkind.PdfRenderError, "embedding job-slug QR: %v", ierr)
		}
		if err := surface.DrawImage(img, marks.JobSlug.QRRect); err != nil {
			return errkind.Newf(errkind.PdfRenderError, "drawing job-slug QR: %v", err)
		}
		if err := surface.DrawText(marks.JobSlug.TextX, marks.JobSlug.TextY, marks.JobSlug.TextLine, jobSlugTextFontPt, black); err != nil {
			return errkind.Newf(errkind.PdfRenderError, "drawing job-slug text: %v", err)
		}
	}

	return nil
}

func slugPNG(payload string) ([]byte, error) {
	return slug.PNG(payload, int(jobSlugQRTargetPt))
}

// renderSlipSheet fills the entire sheet with the chosen slip color and
// knocks out slot areas and the slug strip to white (spec.md §4.3 item 4).
func renderSlipSheet(surface DrawingSurface, sheet SheetPlan, marks SheetMarks) error {
	full, err := geometry.NewRect(0, 0, sheet.SheetWidthPt, sheet.SheetHeightPt)
	if err != nil {
		return errkind.Newf(errkind.PdfRenderError, "building slip-sheet rect: %v", err)
	}
	if err := surface.DrawRectangle(full, marks.SlipColor, &marks.SlipColor, 0, false); err != nil {
		return errkind.Newf(errkind.PdfRenderError, "filling slip sheet: %v", err)
	}

	for _, sl := range sheet.Slots {
		if err := surface.DrawRectangle(sl.Rect, black, &white, 0.5, false); err != nil {
			return errkind.Newf(errkind.PdfRenderError, "knocking out slot on slip sheet: %v", err)
		}
	}

	if marks.JobSlug != nil {
		strip, err := geometry.NewRect(0, 0, sheet.SheetWidthPt, jobSlugStripPt+8)
		if err != nil {
			return errkind.Newf(errkind.PdfRenderError, "building slug strip rect: %v", err)
		}
		if err := surface.DrawRectangle(strip, white, &white, 0, false); err != nil {
			return errkind.Newf(errkind.PdfRenderError, "knocking out slug strip on slip sheet: %v", err)
		}
	}

	return drawOverlaysForSlip(surface, marks)
}

func drawOverlaysForSlip(surface DrawingSurface, marks SheetMarks) error {
	if marks.JobSlug == nil {
		return nil
	}
	png, qerr := slugPNG(marks.JobSlug.Payload)
	if qerr != nil {
		return qerr
	}
	img, ierr := surface.EmbedPNG(png)
	if ierr != nil {
		return errkind.Newf(errkind.PdfRenderError, "embedding job-slug QR on slip sheet: %v", ierr)
	}
	if err := surface.DrawImage(img, marks.JobSlug.QRRect); err != nil {
		return errkind.Newf(errkind.PdfRenderError, "drawing job-slug QR on slip sheet: %v", err)
	}
	return surface.DrawText(marks.JobSlug.TextX, marks.JobSlug.TextY, marks.JobSlug.TextLine, jobSlugTextFontPt, black)
}
