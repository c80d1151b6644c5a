package noise

import "testing"

func TestSimplexRange(t *testing.T) {
	for _, seed := range []int32{0, 1, -7, 123456} {
		_, mn, mx := Simplex(UniformFrequency(0.137), seed).Generate2D(-50, -50, 100, 100)
		if mn < -1.1 || mx > 1.1 {
			t.Errorf("seed %d: 2d output [%v, %v] outside the -1..1 convention", seed, mn, mx)
		}
	}

	_, mn, mx := Simplex(UniformFrequency(0.137), 3).Generate3D(0, 0, 0, 24, 24, 24)
	if mn < -1.1 || mx > 1.1 {
		t.Errorf("3d output [%v, %v] outside the -1..1 convention", mn, mx)
	}

	_, mn, mx = Simplex(UniformFrequency(0.137), 3).Generate1D(-500, 1000)
	if mn < -1.1 || mx > 1.1 {
		t.Errorf("1d output [%v, %v] outside the -1..1 convention", mn, mx)
	}
}

func TestSimplexNotConstant(t *testing.T) {
	values, mn, mx := Simplex(UniformFrequency(0.1), 1).Generate2D(0, 0, 32, 32)
	if mn == mx {
		t.Fatalf("simplex produced a constant field (%v)", mn)
	}
	distinct := map[float32]struct{}{}
	for _, v := range values {
		distinct[v] = struct{}{}
	}
	if len(distinct) < 16 {
		t.Errorf("expected a varied field, got %d distinct values", len(distinct))
	}
}

func TestSimplexSeedsDiffer(t *testing.T) {
	a, _, _ := Simplex(UniformFrequency(0.1), 1).Generate2D(0, 0, 16, 16)
	b, _, _ := Simplex(UniformFrequency(0.1), 2).Generate2D(0, 0, 16, 16)
	same := true
	for i := range a {
		if a[i] != b[i] {
			same = false
			break
		}
	}
	if same {
		t.Error("different seeds produced identical fields")
	}
}

func TestSimplexZeroFrequency(t *testing.T) {
	// Zero frequency collapses every sample onto the lattice origin,
	// where gradient noise is identically zero.
	values, _, _ := Simplex(UniformFrequency(0), 9).Generate1D(0, 32)
	for i, v := range values {
		if v != 0 {
			t.Errorf("sample %d: got %v, want 0", i, v)
		}
	}
}

func TestSimplexMeanNearZero(t *testing.T) {
	values, _, _ := Simplex(UniformFrequency(0.073), 42).Generate2D(0, 0, 64, 64)
	var sum float64
	for _, v := range values {
		sum += float64(v)
	}
	mean := sum / float64(len(values))
	if mean < -0.25 || mean > 0.25 {
		t.Errorf("field mean %v is far from zero", mean)
	}
}
