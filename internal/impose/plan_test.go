package impose

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeDoc struct {
	pages  int
	w, h   float64
}

func (d fakeDoc) PageCount() int { return d.pages }
func (d fakeDoc) PageSize(index int) (float64, float64) { return d.w, d.h }

func letterLandscapeSheet() SheetSize {
	return SheetSize{Name: "11x17", LongIn: 17, ShortIn: 11}
}

func TestPlanStackTwoByTwoLandscape(t *testing.T) {
	spec := ImpositionSpec{
		SelectedSheet:  letterLandscapeSheet(),
		Columns:        2,
		Rows:           2,
		ImpositionType: Stack,
		Orientation:    Landscape,
	}
	doc := fakeDoc{pages: 8, w: 306, h: 396} // 4.25 x 5.5 in, in points

	res, err := Plan(spec, doc)
	require.NoError(t, err)
	assert.Equal(t, Landscape, res.Orientation)
	assert.Len(t, res.Slots, 4)
	for _, s := range res.Slots {
		assert.GreaterOrEqual(t, s.Rect.X, -1e-6)
		assert.LessOrEqual(t, s.Rect.Right(), res.SheetWidthPt+1e-6)
		assert.GreaterOrEqual(t, s.Rect.Y, -1e-6)
		assert.LessOrEqual(t, s.Rect.Top(), res.SheetHeightPt+1e-6)
	}
}

func TestPlanRejectsEmptyDocument(t *testing.T) {
	spec := ImpositionSpec{SelectedSheet: letterLandscapeSheet(), Columns: 1, Rows: 1}
	_, err := Plan(spec, fakeDoc{pages: 0})
	assert.Error(t, err)
}

func TestPlanRejectsBleedExceedingPage(t *testing.T) {
	spec := ImpositionSpec{SelectedSheet: letterLandscapeSheet(), Columns: 1, Rows: 1, BleedIn: 10}
	_, err := Plan(spec, fakeDoc{pages: 1, w: 100, h: 100})
	assert.Error(t, err)
}

func TestPlanRejectsLayoutExceedingSheet(t *testing.T) {
	spec := ImpositionSpec{
		SelectedSheet:  SheetSize{Name: "tiny", LongIn: 2, ShortIn: 1},
		Columns:        4,
		Rows:           4,
		ImpositionType: Stack,
	}
	_, err := Plan(spec, fakeDoc{pages: 16, w: 200, h: 200})
	assert.Error(t, err)
}

func TestPlanAutoOrientationPrefersLandscapeOnTie(t *testing.T) {
	// A square sheet ties both orientations; landscape should win.
	spec := ImpositionSpec{
		SelectedSheet:  SheetSize{Name: "square", LongIn: 10, ShortIn: 10},
		Columns:        1,
		Rows:           1,
		Orientation:    Auto,
		ImpositionType: Stack,
	}
	res, err := Plan(spec, fakeDoc{pages: 1, w: 72, h: 72})
	require.NoError(t, err)
	assert.Equal(t, Landscape, res.Orientation)
}

func TestPlanHalfRowOffsetWidensBlock(t *testing.T) {
	base := ImpositionSpec{
		SelectedSheet:  letterLandscapeSheet(),
		Columns:        2,
		Rows:           2,
		ImpositionType: Stack,
		Orientation:    Landscape,
	}
	doc := fakeDoc{pages: 8, w: 144, h: 144}

	withoutOffset, err := Plan(base, doc)
	require.NoError(t, err)

	offsetSpec := base
	offsetSpec.RowOffset = OffsetHalf
	withOffset, err := Plan(offsetSpec, doc)
	require.NoError(t, err)

	assert.NotEqual(t, withoutOffset.Slots[2].Rect.X, withOffset.Slots[2].Rect.X)
}
