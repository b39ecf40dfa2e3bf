// Package cover implements the book-cover geometry engine (spec.md §4.4):
// spine width, full-cover spread dimensions, and a two-page PDF template
// emitted through the same impose.DrawingSurface adapter the imposition
// engine uses, grounded in the teacher's internal/export/pdf.go drawing
// conventions (dashed guides, labeled bands) and internal/model/calculator.go
// (pure-function cost/geometry arithmetic shape).
package cover

import (
	"github.com/piwi3910/printcore/internal/errkind"
	"github.com/piwi3910/printcore/internal/geometry"
	"github.com/piwi3910/printcore/internal/impose"
)

// HingeOffsetIn is the dashed hinge-safe guide distance from each spine
// line (spec.md §4.4, "1/8 inch").
const HingeOffsetIn = 0.125

// Spine computes the spine width in inches (spec.md §4.4): pages/PPI plus
// twice the cover caliper. A warning is returned when the page count is odd,
// since printed signatures are always an even number of leaves.
func Spine(interiorPPI, coverCaliperIn float64, pages int) (widthIn float64, oddPageWarning bool) {
	widthIn = float64(pages)/interiorPPI + 2*coverCaliperIn
	oddPageWarning = pages%2 != 0
	return widthIn, oddPageWarning
}

// Spread computes the full-cover spread dimensions (spec.md §4.4).
func Spread(trimWIn, trimHIn, spineIn, bleedIn float64) (widthIn, heightIn float64) {
	widthIn = 2*trimWIn + spineIn + 2*bleedIn
	heightIn = trimHIn + 2*bleedIn
	return widthIn, heightIn
}

// TemplateSpec bundles the inputs EmitTemplate needs beyond the already
// computed spine/spread geometry.
type TemplateSpec struct {
	TrimWidthIn  float64
	TrimHeightIn float64
	BleedIn      float64
	SpineIn      float64
}

var (
	black = impose.RGB{0, 0, 0}
	cyan  = impose.RGB{0, 160, 200}
	pink  = impose.RGB{230, 150, 190}
)

// EmitTemplate draws the two-page cover template (outside, then inside) onto
// surface (spec.md §4.4).
func EmitTemplate(surface impose.DrawingSurface, spec TemplateSpec) error {
	spreadW, spreadH := Spread(spec.TrimWidthIn, spec.TrimHeightIn, spec.SpineIn, spec.BleedIn)
	wPt := geometry.InchToPt(spreadW)
	hPt := geometry.InchToPt(spreadH)
	bleedPt := geometry.InchToPt(spec.BleedIn)
	trimWPt := geometry.InchToPt(spec.TrimWidthIn)
	trimHPt := geometry.InchToPt(spec.TrimHeightIn)
	spinePt := geometry.InchToPt(spec.SpineIn)
	hingePt := geometry.InchToPt(HingeOffsetIn)

	trim, err := geometry.NewRect(bleedPt, bleedPt, spreadPtWidth(trimWPt, spinePt), trimHPt)
	if err != nil {
		return errkind.Newf(errkind.InvalidGeometry, "building cover trim rect: %v", err)
	}

	spineLeftX := bleedPt + trimWPt
	spineRightX := spineLeftX + spinePt

	if err := surface.AddPage(wPt, hPt); err != nil {
		return wrapRender("adding outside-cover page", err)
	}
	if err := drawTrimAndSpineGuides(surface, trim, spineLeftX, spineRightX, bleedPt+trimHPt, hingePt); err != nil {
		return err
	}
	if err := labelOutside(surface, trim, spineLeftX, spineRightX, bleedPt, trimHPt); err != nil {
		return err
	}

	if err := surface.AddPage(wPt, hPt); err != nil {
		return wrapRender("adding inside-cover page", err)
	}
	if err := drawTrimAndSpineGuides(surface, trim, spineLeftX, spineRightX, bleedPt+trimHPt, hingePt); err != nil {
		return err
	}
	if err := labelInside(surface, spineLeftX, spinePt, hingePt, bleedPt, trimHPt); err != nil {
		return err
	}

	return nil
}

func spreadPtWidth(trimWPt, spinePt float64) float64 {
	return 2*trimWPt + spinePt
}

func drawTrimAndSpineGuides(surface impose.DrawingSurface, trim geometry.Rect, spineLeftX, spineRightX, topY, hingePt float64) error {
	if err := surface.DrawRectangle(trim, black, nil, 0.75, false); err != nil {
		return wrapRender("drawing trim rectangle", err)
	}
	if err := surface.DrawLine(spineLeftX, trim.Y, spineLeftX, topY, cyan, 0.75, false); err != nil {
		return wrapRender("drawing left spine line", err)
	}
	if err := surface.DrawLine(spineRightX, trim.Y, spineRightX, topY, cyan, 0.75, false); err != nil {
		return wrapRender("drawing right spine line", err)
	}
	if err := surface.DrawLine(spineLeftX-hingePt, trim.Y, spineLeftX-hingePt, topY, black, 0.5, true); err != nil {
		return wrapRender("drawing left hinge guide", err)
	}
	if err := surface.DrawLine(spineLeftX+hingePt, trim.Y, spineLeftX+hingePt, topY, black, 0.5, true); err != nil {
		return wrapRender("drawing left-spine inner hinge guide", err)
	}
	if err := surface.DrawLine(spineRightX-hingePt, trim.Y, spineRightX-hingePt, topY, black, 0.5, true); err != nil {
		return wrapRender("drawing right-spine inner hinge guide", err)
	}
	if err := surface.DrawLine(spineRightX+hingePt, trim.Y, spineRightX+hingePt, topY, black, 0.5, true); err != nil {
		return wrapRender("drawing right hinge guide", err)
	}
	return nil
}

func labelOutside(surface impose.DrawingSurface, trim geometry.Rect, spineLeftX, spineRightX, bleedPt, trimHPt float64) error {
	midY := bleedPt + trimHPt/2
	if err := surface.DrawText(trim.X+8, midY, "BACK COVER", 8, black); err != nil {
		return wrapRender("labeling back cover", err)
	}
	if err := surface.DrawText((spineLeftX+spineRightX)/2-10, midY, "SPINE", 7, black); err != nil {
		return wrapRender("labeling spine", err)
	}
	if err := surface.DrawText(spineRightX+8, midY, "FRONT COVER", 8, black); err != nil {
		return wrapRender("labeling front cover", err)
	}
	return nil
}

func labelInside(surface impose.DrawingSurface, spineLeftX, spinePt, hingePt, bleedPt, trimHPt float64) error {
	bandWidth := spinePt + 2*hingePt
	band, err := geometry.NewRect(spineLeftX-hingePt, bleedPt, bandWidth, trimHPt)
	if err != nil {
		return errkind.Newf(errkind.InvalidGeometry, "building glue-area band: %v", err)
	}
	if err := surface.DrawRectangle(band, pink, &pink, 0, false); err != nil {
		return wrapRender("drawing glue-area band", err)
	}
	midY := bleedPt + trimHPt/2
	if err := surface.DrawText(band.X+2, bleedPt+14, "NO PRINTING - GLUE AREA", 7, black); err != nil {
		return wrapRender("labeling glue area", err)
	}
	if err := surface.DrawText(band.X-80, midY, "INSIDE BACK COVER", 8, black); err != nil {
		return wrapRender("labeling inside back cover", err)
	}
	if err := surface.DrawText(band.Right()+8, midY, "INSIDE FRONT COVER", 8, black); err != nil {
		return wrapRender("labeling inside front cover", err)
	}
	return nil
}

func wrapRender(action string, err error) error {
	return errkind.Newf(errkind.PdfRenderError, "%s: %v", action, err)
}
