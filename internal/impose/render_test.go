package impose

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/piwi3910/printcore/internal/geometry"
)

// renderFakeDoc implements both InputDocument and pageReader.
type renderFakeDoc struct {
	pages int
	w, h  float64
}

func (d renderFakeDoc) PageCount() int                          { return d.pages }
func (d renderFakeDoc) PageSize(index int) (float64, float64)   { return d.w, d.h }
func (d renderFakeDoc) ReadPage(index int) (PageHandle, error)  { return index, nil }

// fakeSurface records every call in order so ordering invariants can be
// asserted without a real PDF backend.
type fakeSurface struct {
	events []string
	cancel CancelToken
}

func (f *fakeSurface) AddPage(w, h float64) error {
	f.events = append(f.events, "AddPage")
	return nil
}
func (f *fakeSurface) EmbedPage(page PageHandle, clip *geometry.Rect) (EmbeddedHandle, error) {
	f.events = append(f.events, "EmbedPage")
	return page, nil
}
func (f *fakeSurface) DrawEmbedded(h EmbeddedHandle, t Transform) error {
	f.events = append(f.events, "DrawEmbedded")
	return nil
}
func (f *fakeSurface) DrawRectangle(r geometry.Rect, stroke RGB, fill *RGB, lw float64, dashed bool) error {
	f.events = append(f.events, "DrawRectangle")
	return nil
}
func (f *fakeSurface) DrawLine(x1, y1, x2, y2 float64, color RGB, w float64, dashed bool) error {
	f.events = append(f.events, "DrawLine")
	return nil
}
func (f *fakeSurface) DrawText(x, y float64, text string, size float64, color RGB) error {
	f.events = append(f.events, "DrawText")
	return nil
}
func (f *fakeSurface) EmbedPNG(data []byte) (ImageHandle, error) {
	f.events = append(f.events, "EmbedPNG")
	return "img", nil
}
func (f *fakeSurface) DrawImage(h ImageHandle, r geometry.Rect) error {
	f.events = append(f.events, "DrawImage")
	return nil
}
func (f *fakeSurface) Serialize() ([]byte, error) {
	f.events = append(f.events, "Serialize")
	return []byte("pdf-bytes"), nil
}

func indexOf(events []string, name string) int {
	for i, e := range events {
		if e == name {
			return i
		}
	}
	return -1
}

func countOf(events []string, name string) int {
	n := 0
	for _, e := range events {
		if e == name {
			n++
		}
	}
	return n
}

func TestImposeAddsFrontAndBackPagePerSheet(t *testing.T) {
	spec := ImpositionSpec{
		SelectedSheet:  letterLandscapeSheet(),
		Columns:        2,
		Rows:           2,
		ImpositionType: Stack,
		Orientation:    Landscape,
		Duplex:         true,
	}
	doc := renderFakeDoc{pages: 16, w: 180, h: 252}

	var surfaces []*fakeSurface
	factory := func() (DrawingSurface, error) {
		s := &fakeSurface{}
		surfaces = append(surfaces, s)
		return s, nil
	}

	outputs, report, err := Impose(spec, doc, factory, ImposeOptions{})
	require.NoError(t, err)
	require.Len(t, outputs, 1)
	assert.Equal(t, 2, report.TotalSheets)

	events := surfaces[0].events
	firstAddPage := indexOf(events, "AddPage")
	require.GreaterOrEqual(t, firstAddPage, 0)
	// Two AddPage calls per sheet (front, back) x 2 sheets = 4.
	assert.Equal(t, 4, countOf(events, "AddPage"))
	assert.Equal(t, 1, countOf(events, "Serialize"))
}

func TestImposeHonoursCancellationBeforeRendering(t *testing.T) {
	spec := ImpositionSpec{
		SelectedSheet:  letterLandscapeSheet(),
		Columns:        1,
		Rows:           1,
		ImpositionType: Stack,
		Orientation:    Landscape,
	}
	doc := renderFakeDoc{pages: 4, w: 180, h: 252}

	factory := func() (DrawingSurface, error) { return &fakeSurface{}, nil }
	cancelled := alwaysCancelled{}

	_, _, err := Impose(spec, doc, factory, ImposeOptions{Cancel: cancelled})
	assert.Error(t, err)
}

type alwaysCancelled struct{}

func (alwaysCancelled) Cancelled() bool { return true }

func TestImposeReportsProgressPerSheet(t *testing.T) {
	spec := ImpositionSpec{
		SelectedSheet:  letterLandscapeSheet(),
		Columns:        1,
		Rows:           1,
		ImpositionType: Stack,
		Orientation:    Landscape,
	}
	doc := renderFakeDoc{pages: 3, w: 180, h: 252}
	factory := func() (DrawingSurface, error) { return &fakeSurface{}, nil }

	var seen []int
	progress := func(chunkIndex, sheetIndex, totalSheets int) {
		seen = append(seen, sheetIndex)
	}

	_, report, err := Impose(spec, doc, factory, ImposeOptions{Progress: progress})
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2}, seen)
	assert.Equal(t, 3, report.TotalSheets)
}
