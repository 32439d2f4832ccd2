package raster_test

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/katalvlaran/sparsepgm/raster"
	"github.com/stretchr/testify/require"
)

//----------------------------------------------------------------------------//
// StampBorder
//----------------------------------------------------------------------------//

// TestStampBorderFiveByFive stamps a 1-pixel border on an empty 5×5 image.
func TestStampBorderFiveByFive(t *testing.T) {
	im, err := raster.New[int](5, 5)
	require.NoError(t, err)

	require.NoError(t, im.StampBorder(1, 9))

	want := "9 9 9 9 9\n" +
		"9 0 0 0 9\n" +
		"9 0 0 0 9\n" +
		"9 0 0 0 9\n" +
		"9 9 9 9 9\n"
	if diff := cmp.Diff(want, im.Pixels()); diff != "" {
		t.Errorf("StampBorder(1, 9) mismatch (-want +got):\n%s", diff)
	}
	require.Equal(t, 16, im.Count())
	require.NoError(t, im.Grid().Check())
}

// TestStampBorderReplacesExisting ensures pre-existing border pixels are overwritten.
func TestStampBorderReplacesExisting(t *testing.T) {
	im := mustImage(t, [][]uint8{
		{1, 2, 3, 4, 5, 6},
		{7, 8, 9, 1, 2, 3},
		{4, 5, 6, 7, 8, 9},
		{1, 0, 0, 0, 0, 1},
		{0, 0, 0, 0, 0, 0},
		{9, 9, 9, 9, 9, 9},
	})
	require.NoError(t, im.StampBorder(2, 255))

	want := "255 255 255 255 255 255\n" +
		"255 255 255 255 255 255\n" +
		"255 255 6 7 255 255\n" +
		"255 255 0 0 255 255\n" +
		"255 255 255 255 255 255\n" +
		"255 255 255 255 255 255\n"
	if diff := cmp.Diff(want, im.Pixels()); diff != "" {
		t.Errorf("StampBorder(2, 255) mismatch (-want +got):\n%s", diff)
	}
	require.NoError(t, im.Grid().Check())
}

// TestStampBorderZeroClears verifies that a zero border removes stored cells.
func TestStampBorderZeroClears(t *testing.T) {
	im := mustImage(t, [][]int{
		{5, 5, 5, 5},
		{5, 5, 5, 5},
		{5, 5, 5, 5},
		{5, 5, 5, 5},
		{5, 5, 5, 5},
	})
	require.NoError(t, im.StampBorder(1, 0))
	require.Equal(t, 6, im.Count())
	require.Equal(t, "0 0 0 0\n0 5 5 0\n0 5 5 0\n0 5 5 0\n0 0 0 0\n", im.Pixels())
}

// TestStampBorderUnsupported covers rejected thicknesses and the no-mutation guarantee.
func TestStampBorderUnsupported(t *testing.T) {
	cases := []struct {
		name       string
		rows, cols int
		thickness  int
	}{
		{"HalfOfSquare", 4, 4, 2},
		{"HalfOfLargerDim", 4, 8, 4},
		{"HalfOfSmallerDim", 10, 4, 2},
		{"TooLarge", 6, 6, 9},
		{"Negative", 6, 6, -1},
		{"SingleRow", 1, 10, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			im, err := raster.New[int](tc.rows, tc.cols)
			require.NoError(t, err)
			require.NoError(t, im.Set(0, 0, 3))
			before := im.Clone()

			require.ErrorIs(t, im.StampBorder(tc.thickness, 255), raster.ErrUnsupportedBorder)
			require.True(t, before.Equal(im), "failed StampBorder must not mutate")
		})
	}
}

// TestStampBorderNegativeValue rejects negative fill values before writing.
func TestStampBorderNegativeValue(t *testing.T) {
	im, err := raster.New[int](6, 6)
	require.NoError(t, err)
	require.ErrorIs(t, im.StampBorder(1, -4), raster.ErrNegativeValue)
	require.Equal(t, 0, im.Count())
}

//----------------------------------------------------------------------------//
// Invert
//----------------------------------------------------------------------------//

// TestInvertFourByFour is the reference scenario: a single 100 pixel at (1,1).
func TestInvertFourByFour(t *testing.T) {
	im, err := raster.New[int](4, 4)
	require.NoError(t, err)
	require.NoError(t, im.Set(1, 1, 100))

	before := "0 0 0 0\n0 100 0 0\n0 0 0 0\n0 0 0 0\n"
	if diff := cmp.Diff(before, im.Pixels()); diff != "" {
		t.Fatalf("before invert (-want +got):\n%s", diff)
	}

	require.NoError(t, im.Invert(255))
	after := "255 255 255 255\n255 155 255 255\n255 255 255 255\n255 255 255 255\n"
	if diff := cmp.Diff(after, im.Pixels()); diff != "" {
		t.Errorf("after invert (-want +got):\n%s", diff)
	}
	require.Equal(t, 16, im.Count())
	require.NoError(t, im.Grid().Check())
}

// TestInvertDeletesMax ensures max-valued pixels become absent.
func TestInvertDeletesMax(t *testing.T) {
	im := mustImage(t, [][]uint8{
		{255, 0},
		{10, 255},
	})
	require.NoError(t, im.Invert(255))
	require.Equal(t, "0 255\n245 0\n", im.Pixels())
	require.Equal(t, 2, im.Count())
	require.False(t, im.Grid().Has(0, 0))
	require.NoError(t, im.Grid().Check())
}

// TestInvertInvolution checks that inverting twice restores random images.
func TestInvertInvolution(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	for trial := 0; trial < 20; trial++ {
		rows, cols := rng.Intn(6)+1, rng.Intn(6)+1
		im, err := raster.New[uint16](rows, cols)
		require.NoError(t, err)
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				if rng.Intn(3) == 0 {
					require.NoError(t, im.Set(r, c, uint16(rng.Intn(16))))
				}
			}
		}
		orig := im.Clone()

		require.NoError(t, im.Invert(15))
		require.NoError(t, im.Grid().Check())
		require.NoError(t, im.Invert(15))
		require.True(t, orig.Equal(im), "trial %d:\n%s\nvs\n%s", trial, orig, im)
	}
}

// TestInvertErrors covers the validation pass.
func TestInvertErrors(t *testing.T) {
	im := mustImage(t, [][]int{{1, 300}})
	require.ErrorIs(t, im.Invert(255), raster.ErrValueExceedsMax)
	require.Equal(t, "1 300\n", im.Pixels(), "failed Invert must not mutate")

	require.ErrorIs(t, im.Invert(0), raster.ErrInvalidMax)
	require.ErrorIs(t, im.Invert(-5), raster.ErrInvalidMax)
}

//----------------------------------------------------------------------------//
// Rotate
//----------------------------------------------------------------------------//

// TestRotateClockwise checks the 90° mapping and that the source is untouched.
func TestRotateClockwise(t *testing.T) {
	im := mustImage(t, [][]int{
		{1, 2, 3},
		{4, 0, 6},
	})
	rot := im.Rotate()

	require.Equal(t, 3, rot.Rows())
	require.Equal(t, 2, rot.Cols())
	require.Equal(t, "4 1\n0 2\n6 3\n", rot.Pixels())
	require.Equal(t, im.Count(), rot.Count(), "background must stay absent")
	require.Equal(t, "1 2 3\n4 0 6\n", im.Pixels())
	require.NoError(t, rot.Grid().Check())
}

// TestRotateVariants covers counter-clockwise and half-turn rotations.
func TestRotateVariants(t *testing.T) {
	im := mustImage(t, [][]int{
		{1, 2, 3},
		{4, 5, 6},
	})
	require.Equal(t, "3 6\n2 5\n1 4\n", im.RotateCounterClockwise().Pixels())
	require.Equal(t, "6 5 4\n3 2 1\n", im.Rotate180().Pixels())
	require.True(t, im.Equal(im.Rotate().RotateCounterClockwise()))
}

// TestRotateComposition checks the two- and four-turn properties on a non-square image.
func TestRotateComposition(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	rows, cols := 4, 7
	im, err := raster.New[uint8](rows, cols)
	require.NoError(t, err)
	for i := 0; i < 12; i++ {
		require.NoError(t, im.Set(rng.Intn(rows), rng.Intn(cols), uint8(rng.Intn(200)+1)))
	}

	twice := im.Rotate().Rotate()
	require.Equal(t, rows, twice.Rows())
	require.Equal(t, cols, twice.Cols())
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			got, err := twice.At(r, c)
			require.NoError(t, err)
			want, err := im.At(rows-1-r, cols-1-c)
			require.NoError(t, err)
			require.Equal(t, want, got, "(%d,%d)", r, c)
		}
	}
	require.True(t, twice.Equal(im.Rotate180()))

	four := twice.Rotate().Rotate()
	require.True(t, im.Equal(four))
}

//----------------------------------------------------------------------------//
// Text rendering
//----------------------------------------------------------------------------//

// TestTextHeader verifies the P2 header layout (columns before rows).
func TestTextHeader(t *testing.T) {
	im := mustImage(t, [][]uint16{
		{0, 0, 7},
		{1, 0, 0},
	})
	want := "P2\n3 2\n255\n0 0 7\n1 0 0\n"
	if diff := cmp.Diff(want, im.Text(255)); diff != "" {
		t.Errorf("Text mismatch (-want +got):\n%s", diff)
	}
}

// TestDebugText verifies placeholder glyphs and tab separators.
func TestDebugText(t *testing.T) {
	im := mustImage(t, [][]int{
		{0, 12},
		{3, 0},
	})
	require.Equal(t, ".\t12\n3\t.\n", im.DebugText())
	require.Equal(t, im.DebugText(), im.String())
}

//----------------------------------------------------------------------------//
// Components
//----------------------------------------------------------------------------//

// TestComponentsConn4 uses the classic island grid.
//
//	0 1 1 0
//	1 1 0 0
//	0 0 1 1
//
// Expected with Conn4: 2 regions of sizes 4 and 2.
func TestComponentsConn4(t *testing.T) {
	im := mustImage(t, [][]uint8{
		{0, 1, 1, 0},
		{1, 1, 0, 0},
		{0, 0, 1, 1},
	})
	comps := im.Components(raster.Conn4)
	require.Len(t, comps, 2)

	sizes := []int{len(comps[0]), len(comps[1])}
	sort.Ints(sizes)
	require.Equal(t, []int{2, 4}, sizes)
	require.Equal(t, raster.Point{Row: 0, Col: 1}, comps[0][0], "regions are seeded in row-major order")
}

// TestComponentsConn8 joins diagonal neighbors into one region.
func TestComponentsConn8(t *testing.T) {
	im := mustImage(t, [][]uint8{
		{1, 0, 0, 0, 1},
		{0, 1, 0, 1, 0},
		{0, 0, 1, 0, 0},
		{0, 1, 0, 1, 0},
		{1, 0, 0, 0, 1},
	})
	require.Len(t, im.Components(raster.Conn4), 9)

	comps := im.Components(raster.Conn8)
	require.Len(t, comps, 1)
	require.Len(t, comps[0], 9)
}
