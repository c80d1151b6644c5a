package noise

import (
	"testing"

	"github.com/chewxy/math32"
)

func TestBaselineKernels(t *testing.T) {
	a := []float32{1, -2, 3.5, 0}
	b := []float32{0.5, 4, -3.5, 0}
	dst := make([]float32, 4)

	baselineKernels.add(dst, a, b)
	for i, want := range []float32{1.5, 2, 0, 0} {
		if dst[i] != want {
			t.Errorf("add lane %d: got %v, want %v", i, dst[i], want)
		}
	}

	baselineKernels.min(dst, a, b)
	for i, want := range []float32{0.5, -2, -3.5, 0} {
		if dst[i] != want {
			t.Errorf("min lane %d: got %v, want %v", i, dst[i], want)
		}
	}

	baselineKernels.max(dst, a, b)
	for i, want := range []float32{1, 4, 3.5, 0} {
		if dst[i] != want {
			t.Errorf("max lane %d: got %v, want %v", i, dst[i], want)
		}
	}

	baselineKernels.abs(dst, a)
	for i, want := range []float32{1, 2, 3.5, 0} {
		if dst[i] != want {
			t.Errorf("abs lane %d: got %v, want %v", i, dst[i], want)
		}
	}

	baselineKernels.clamp(dst, a, -1, 1)
	for i, want := range []float32{1, -1, 1, 0} {
		if dst[i] != want {
			t.Errorf("clamp lane %d: got %v, want %v", i, dst[i], want)
		}
	}

	if got := baselineKernels.reduceMin(a); got != -2 {
		t.Errorf("reduceMin: got %v, want -2", got)
	}
	if got := baselineKernels.reduceMax(a); got != 3.5 {
		t.Errorf("reduceMax: got %v, want 3.5", got)
	}
}

// The accelerated tier must compute the same mathematical function as the
// baseline. For the ops in the table this is exact, not approximate: they
// are single IEEE operations per lane.
func TestTierEquivalence(t *testing.T) {
	a := []float32{1.25, -7.5, 0, 3.875, -0.001, 42, -42, 0.5}
	b := []float32{-2.5, 7.5, 1, -3.875, 0.002, 2, 2, 0.25}

	binary := []struct {
		name string
		base func(dst, a, b []float32)
		vek  func(dst, a, b []float32)
	}{
		{"add", baselineKernels.add, vekKernels.add},
		{"sub", baselineKernels.sub, vekKernels.sub},
		{"mul", baselineKernels.mul, vekKernels.mul},
		{"min", baselineKernels.min, vekKernels.min},
		{"max", baselineKernels.max, vekKernels.max},
	}
	for _, op := range binary {
		want := make([]float32, len(a))
		got := make([]float32, len(a))
		op.base(want, a, b)
		op.vek(got, a, b)
		for i := range want {
			if got[i] != want[i] {
				t.Errorf("%s lane %d: vek %v, baseline %v", op.name, i, got[i], want[i])
			}
		}
	}

	want := make([]float32, len(a))
	got := make([]float32, len(a))
	baselineKernels.abs(want, a)
	vekKernels.abs(got, a)
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("abs lane %d: vek %v, baseline %v", i, got[i], want[i])
		}
	}

	baselineKernels.addNumber(want, a, 1.5)
	vekKernels.addNumber(got, a, 1.5)
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("addNumber lane %d: vek %v, baseline %v", i, got[i], want[i])
		}
	}

	baselineKernels.mulNumber(want, a, -0.25)
	vekKernels.mulNumber(got, a, -0.25)
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("mulNumber lane %d: vek %v, baseline %v", i, got[i], want[i])
		}
	}

	if bm, vm := baselineKernels.reduceMin(a), vekKernels.reduceMin(a); bm != vm {
		t.Errorf("reduceMin: vek %v, baseline %v", vm, bm)
	}
	if bm, vm := baselineKernels.reduceMax(a), vekKernels.reduceMax(a); bm != vm {
		t.Errorf("reduceMax: vek %v, baseline %v", vm, bm)
	}
}

func TestKernelAliasing(t *testing.T) {
	for _, tab := range []*kernelTable{&baselineKernels, &vekKernels} {
		v := []float32{1, 2, 3, 4}
		tab.addNumber(v, v, 1)
		for i, want := range []float32{2, 3, 4, 5} {
			if v[i] != want {
				t.Errorf("%s addNumber aliased lane %d: got %v, want %v", tab.name, i, v[i], want)
			}
		}
		tab.mul(v, v, v)
		for i, want := range []float32{4, 9, 16, 25} {
			if v[i] != want {
				t.Errorf("%s mul aliased lane %d: got %v, want %v", tab.name, i, v[i], want)
			}
		}
	}
}

func TestSplatIota(t *testing.T) {
	v := make([]float32, 5)
	splat(v, math32.MaxFloat32)
	for i := range v {
		if v[i] != math32.MaxFloat32 {
			t.Fatalf("splat lane %d: got %v", i, v[i])
		}
	}
	iotaBlock(v, -2)
	for i, want := range []float32{-2, -1, 0, 1, 2} {
		if v[i] != want {
			t.Errorf("iota lane %d: got %v, want %v", i, v[i], want)
		}
	}
}
