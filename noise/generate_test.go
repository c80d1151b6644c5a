package noise

import (
	"sync"
	"testing"

	"github.com/chewxy/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateBufferSizes(t *testing.T) {
	n := Simplex(UniformFrequency(0.1), 1)

	for _, width := range []int{0, 1, 3, 16, 100} {
		values, _, _ := n.Generate1D(0, width)
		require.Len(t, values, width, "1d width=%d", width)
	}
	for _, tc := range [][2]int{{0, 0}, {1, 1}, {4, 4}, {7, 13}, {16, 3}} {
		values, _, _ := n.Generate2D(0, 0, tc[0], tc[1])
		require.Len(t, values, tc[0]*tc[1], "2d %dx%d", tc[0], tc[1])
	}
	for _, tc := range [][3]int{{0, 4, 4}, {2, 3, 5}, {4, 4, 4}} {
		values, _, _ := n.Generate3D(0, 0, 0, tc[0], tc[1], tc[2])
		require.Len(t, values, tc[0]*tc[1]*tc[2], "3d %dx%dx%d", tc[0], tc[1], tc[2])
	}
}

func TestGenerateZeroExtentSentinels(t *testing.T) {
	values, mn, mx := Simplex(UniformFrequency(0.1), 1).Generate1D(0, 0)
	require.Empty(t, values)
	assert.Equal(t, float32(math32.MaxFloat32), mn)
	assert.Equal(t, float32(-math32.MaxFloat32), mx)
}

func TestGenerateConstant2D(t *testing.T) {
	values, mn, mx := Constant(0.5).Generate2D(0, 0, 4, 4)
	require.Len(t, values, 16)
	for _, v := range values {
		require.Equal(t, float32(0.5), v)
	}
	assert.Equal(t, float32(0.5), mn)
	assert.Equal(t, float32(0.5), mx)
}

func TestGenerateClampedConstant1D(t *testing.T) {
	values, _, _ := Constant(1.0).Clamp(-0.2, 0.2).Generate1D(0, 5)
	require.Len(t, values, 5)
	for _, v := range values {
		require.Equal(t, float32(0.2), v)
	}
}

// checkExtremes recomputes min/max from the returned buffer and compares
// them against the reported values. Extents deliberately include sizes not
// divisible by any lane width so partial blocks are exercised: the excess
// lanes of the trailing block must not leak into min/max.
func checkExtremes(t *testing.T, values []float32, mn, mx float32) {
	t.Helper()
	require.NotEmpty(t, values)
	wantMin, wantMax := values[0], values[0]
	for _, v := range values {
		if v < wantMin {
			wantMin = v
		}
		if v > wantMax {
			wantMax = v
		}
	}
	assert.Equal(t, wantMin, mn, "reported min")
	assert.Equal(t, wantMax, mx, "reported max")
}

func TestGenerateMinMax1D(t *testing.T) {
	n := Simplex(UniformFrequency(0.013), 77)
	for _, width := range []int{1, 7, 64, 1023} {
		values, mn, mx := n.Generate1D(-100, width)
		checkExtremes(t, values, mn, mx)
	}
}

func TestGenerateMinMax2D(t *testing.T) {
	n := Perlin(UniformFrequency(0.031), 4)
	values, mn, mx := n.Generate2D(3, -7, 33, 17)
	checkExtremes(t, values, mn, mx)
}

func TestGenerateMinMax3D(t *testing.T) {
	n := Simplex(UniformFrequency(0.09), 12).Fbm(3, 0.5, 2.0)
	values, mn, mx := n.Generate3D(0, 0, 0, 5, 9, 7)
	checkExtremes(t, values, mn, mx)
}

func TestGenerateDeterminism(t *testing.T) {
	n := Simplex(UniformFrequency(0.02), 9).Fbm(4, 0.5, 2.0).Abs()
	a, amn, amx := n.Generate2D(10, 20, 31, 29)
	b, bmn, bmx := n.Generate2D(10, 20, 31, 29)
	require.Equal(t, a, b)
	assert.Equal(t, amn, bmn)
	assert.Equal(t, amx, bmx)
}

func TestGenerateConcurrentReuse(t *testing.T) {
	n := Perlin(UniformFrequency(0.05), 33).MulValue(0.5).AddValue(0.5)
	want, _, _ := n.Generate1D(0, 257)

	var wg sync.WaitGroup
	results := make([][]float32, 8)
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			results[g], _, _ = n.Generate1D(0, 257)
		}(g)
	}
	wg.Wait()

	for g, got := range results {
		require.Equal(t, want, got, "goroutine %d", g)
	}
}

// The flattened layout puts the outer signature axis first: 2D index is
// x*height + y, 3D is x*depth*height + z*height + y. Single-point
// generations at shifted origins must land on the same values.
func TestGenerate2DIndexing(t *testing.T) {
	n := Simplex(UniformFrequency(0.17), 5)
	const width, height = 3, 5
	values, _, _ := n.Generate2D(10, -5, width, height)
	for xi := 0; xi < width; xi++ {
		for yi := 0; yi < height; yi++ {
			point, _, _ := n.Generate2D(10+float32(xi), -5+float32(yi), 1, 1)
			require.Equal(t, point[0], values[xi*height+yi], "xi=%d yi=%d", xi, yi)
		}
	}
}

func TestGenerate3DIndexing(t *testing.T) {
	n := Simplex(UniformFrequency(0.23), 8)
	const width, height, depth = 2, 3, 4
	values, _, _ := n.Generate3D(1, 2, 3, width, height, depth)
	for xi := 0; xi < width; xi++ {
		for zi := 0; zi < depth; zi++ {
			for yi := 0; yi < height; yi++ {
				point, _, _ := n.Generate3D(1+float32(xi), 2+float32(yi), 3+float32(zi), 1, 1, 1)
				require.Equal(t, point[0], values[xi*depth*height+zi*height+yi],
					"xi=%d yi=%d zi=%d", xi, yi, zi)
			}
		}
	}
}
