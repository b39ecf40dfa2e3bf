// Package pdfsurface implements impose.DrawingSurface over go-pdf/fpdf and
// exposes an impose.InputDocument reader backed by phpdave11/gofpdi,
// grounded in the teacher's internal/export/pdf.go (drawing calls) and
// _examples/other_examples/f601d385_phpdave11-gofpdi__writer.go.go (PDF
// page reading/embedding).
package pdfsurface

import (
	"bytes"
	"fmt"
	"os"

	fpdf "github.com/go-pdf/fpdf"
	gofpdi "github.com/phpdave11/gofpdi"

	"github.com/piwi3910/printcore/internal/errkind"
	"github.com/piwi3910/printcore/internal/geometry"
	"github.com/piwi3910/printcore/internal/impose"
)

// pageRef identifies one page of one source file; it is the concrete type
// behind impose.PageHandle for documents opened through ReadInputPDF.
type pageRef struct {
	File   string
	PageNo int // 1-based, as gofpdi/fpdf expect
}

// FileDocument implements impose.InputDocument (and the unexported
// pageReader contract render.go type-asserts for) over a PDF file on disk.
type FileDocument struct {
	path     string
	numPages int
	sizes    map[int][2]float64 // 1-based page -> (w, h) in points
}

// ReadInputPDF opens path and reads its page count and per-page dimensions
// via gofpdi, without rendering anything (spec.md §8 "External Interfaces").
func ReadInputPDF(path string) (*FileDocument, error) {
	imp := gofpdi.NewImporter()
	n := imp.SetSourceFile(path)
	if n <= 0 {
		return nil, errkind.Newf(errkind.PdfParseError, "no pages found in %q", path)
	}

	sizes := make(map[int][2]float64, n)
	for pageNo, boxes := range imp.GetPageSizes() {
		box, ok := boxes["/MediaBox"]
		if !ok {
			continue
		}
		sizes[pageNo] = [2]float64{box["w"], box["h"]}
	}

	return &FileDocument{path: path, numPages: n, sizes: sizes}, nil
}

func (d *FileDocument) PageCount() int { return d.numPages }

func (d *FileDocument) PageSize(index int) (widthPt, heightPt float64) {
	s, ok := d.sizes[index+1]
	if !ok {
		return 0, 0
	}
	return s[0], s[1]
}

// ReadPage returns the opaque handle render.go embeds via DrawingSurface.
func (d *FileDocument) ReadPage(index int) (impose.PageHandle, error) {
	if index < 0 || index >= d.numPages {
		return nil, errkind.Newf(errkind.PdfParseError, "page index %d out of range (0-%d)", index, d.numPages-1)
	}
	return pageRef{File: d.path, PageNo: index + 1}, nil
}

// Surface is the fpdf-backed impose.DrawingSurface implementation.
type Surface struct {
	pdf        *fpdf.Fpdf
	outputPath string
	imgCounter int
}

func newSurface() *Surface {
	pdf := fpdf.New("P", "pt", "", "")
	pdf.SetMargins(0, 0, 0)
	pdf.SetAutoPageBreak(false, 0)
	return &Surface{pdf: pdf}
}

// NewBufferSurface creates a surface whose Serialize only returns bytes in
// memory (spec.md §8 "External Interfaces").
func NewBufferSurface() impose.DrawingSurface {
	return newSurface()
}

// NewFileSurface creates a surface that, in addition to returning bytes from
// Serialize, writes them to outputPath. The cmd/impose demo does not use it:
// it takes buffer surfaces and writes each chunk itself.
func NewFileSurface(outputPath string) impose.DrawingSurface {
	s := newSurface()
	s.outputPath = outputPath
	return s
}

func (s *Surface) AddPage(widthPt, heightPt float64) error {
	orientation := "P"
	if widthPt > heightPt {
		orientation = "L"
	}
	s.pdf.AddPageFormat(orientation, fpdf.SizeType{Wd: widthPt, Ht: heightPt})
	return s.pdf.Error()
}

func (s *Surface) EmbedPage(page impose.PageHandle, clip *geometry.Rect) (impose.EmbeddedHandle, error) {
	ref, ok := page.(pageRef)
	if !ok {
		return nil, fmt.Errorf("pdfsurface: unsupported page handle type %T", page)
	}
	box := "/MediaBox"
	tplid := s.pdf.ImportPage(ref.File, ref.PageNo, box)
	if err := s.pdf.Error(); err != nil {
		return nil, err
	}
	return tplid, nil
}

func (s *Surface) DrawEmbedded(h impose.EmbeddedHandle, t impose.Transform) error {
	tplid, ok := h.(int)
	if !ok {
		return fmt.Errorf("pdfsurface: unsupported embedded handle type %T", h)
	}

	if t.Rotate180 {
		cx := t.Rect.X + t.Rect.W/2
		cy := t.Rect.Y + t.Rect.H/2
		s.pdf.TransformBegin()
		s.pdf.TransformRotate(180, cx, cy)
		s.pdf.UseImportedTemplate(tplid, t.Rect.X, t.Rect.Y, t.Rect.W, t.Rect.H)
		s.pdf.TransformEnd()
	} else {
		s.pdf.UseImportedTemplate(tplid, t.Rect.X, t.Rect.Y, t.Rect.W, t.Rect.H)
	}
	return s.pdf.Error()
}

func (s *Surface) DrawRectangle(r geometry.Rect, stroke impose.RGB, fill *impose.RGB, lineWidthPt float64, dashed bool) error {
	s.pdf.SetDrawColor(stroke[0], stroke[1], stroke[2])
	style := "D"
	if fill != nil {
		s.pdf.SetFillColor(fill[0], fill[1], fill[2])
		style = "FD"
	}
	if lineWidthPt > 0 {
		s.pdf.SetLineWidth(lineWidthPt)
	}
	if dashed {
		s.pdf.SetDashPattern([]float64{3, 2}, 0)
	} else {
		s.pdf.SetDashPattern(nil, 0)
	}
	s.pdf.Rect(r.X, r.Y, r.W, r.H, style)
	return s.pdf.Error()
}

func (s *Surface) DrawLine(x1, y1, x2, y2 float64, color impose.RGB, widthPt float64, dashed bool) error {
	s.pdf.SetDrawColor(color[0], color[1], color[2])
	if widthPt > 0 {
		s.pdf.SetLineWidth(widthPt)
	}
	if dashed {
		s.pdf.SetDashPattern([]float64{2, 1}, 0)
	} else {
		s.pdf.SetDashPattern(nil, 0)
	}
	s.pdf.Line(x1, y1, x2, y2)
	return s.pdf.Error()
}

func (s *Surface) DrawText(x, y float64, text string, sizePt float64, color impose.RGB) error {
	s.pdf.SetTextColor(color[0], color[1], color[2])
	s.pdf.SetFont("Helvetica", "", sizePt)
	s.pdf.Text(x, y, text)
	return s.pdf.Error()
}

func (s *Surface) EmbedPNG(data []byte) (impose.ImageHandle, error) {
	name := fmt.Sprintf("slug-%d", s.imgCounter)
	s.imgCounter++
	opts := fpdf.ImageOptions{ImageType: "PNG", ReadDpi: false}
	s.pdf.RegisterImageOptionsReader(name, opts, bytes.NewReader(data))
	if err := s.pdf.Error(); err != nil {
		return nil, err
	}
	return name, nil
}

func (s *Surface) DrawImage(h impose.ImageHandle, r geometry.Rect) error {
	name, ok := h.(string)
	if !ok {
		return fmt.Errorf("pdfsurface: unsupported image handle type %T", h)
	}
	s.pdf.ImageOptions(name, r.X, r.Y, r.W, r.H, false, fpdf.ImageOptions{ImageType: "PNG"}, 0, "")
	return s.pdf.Error()
}

func (s *Surface) Serialize() ([]byte, error) {
	var buf bytes.Buffer
	if err := s.pdf.Output(&buf); err != nil {
		return nil, err
	}
	if s.outputPath != "" {
		if err := os.WriteFile(s.outputPath, buf.Bytes(), 0o644); err != nil {
			return nil, err
		}
	}
	return buf.Bytes(), nil
}
