package noise

import "testing"

func TestDispatchConsistency(t *testing.T) {
	if LaneCount() < 1 {
		t.Fatalf("LaneCount() = %d, want >= 1", LaneCount())
	}
	if got, want := CurrentWidth(), LaneCount()*4; got != want {
		t.Errorf("CurrentWidth() = %d, want %d (4 bytes per float32 lane)", got, want)
	}
	if got, want := CurrentName(), CurrentLevel().String(); got != want {
		t.Errorf("CurrentName() = %q, want %q", got, want)
	}
}

func TestDispatchLevelString(t *testing.T) {
	names := map[DispatchLevel]string{
		DispatchScalar: "scalar",
		DispatchSSE2:   "sse2",
		DispatchAVX2:   "avx2",
		DispatchAVX512: "avx512",
		DispatchNEON:   "neon",
	}
	for level, want := range names {
		if got := level.String(); got != want {
			t.Errorf("DispatchLevel(%d).String() = %q, want %q", level, got, want)
		}
	}
	if got := DispatchLevel(99).String(); got != "unknown" {
		t.Errorf("DispatchLevel(99).String() = %q, want %q", got, "unknown")
	}
}

func TestResolveKernelsStable(t *testing.T) {
	a := resolveKernels()
	b := resolveKernels()
	if a != b {
		t.Error("resolveKernels returned different tables across calls")
	}
	if currentLevel == DispatchScalar && a.name != "baseline" {
		t.Errorf("scalar mode resolved tier %q, want baseline", a.name)
	}
	if currentLevel != DispatchScalar && a.name != "vek" {
		t.Errorf("%s mode resolved tier %q, want vek", currentLevel, a.name)
	}
}
