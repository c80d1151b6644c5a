package noise

import (
	"os"
	"strconv"
)

// DispatchLevel represents the SIMD instruction tier the engine runs on.
type DispatchLevel int

const (
	// DispatchScalar indicates width-1 evaluation, pure Go.
	DispatchScalar DispatchLevel = iota

	// DispatchSSE2 indicates SSE2-class vectors (x86-64 baseline, 128-bit).
	DispatchSSE2

	// DispatchAVX2 indicates AVX2-class vectors (256-bit).
	DispatchAVX2

	// DispatchAVX512 indicates AVX-512-class vectors (512-bit).
	DispatchAVX512

	// DispatchNEON indicates ARM NEON-class vectors (128-bit).
	DispatchNEON
)

// String returns a human-readable name for the dispatch level.
func (d DispatchLevel) String() string {
	switch d {
	case DispatchScalar:
		return "scalar"
	case DispatchSSE2:
		return "sse2"
	case DispatchAVX2:
		return "avx2"
	case DispatchAVX512:
		return "avx512"
	case DispatchNEON:
		return "neon"
	default:
		return "unknown"
	}
}

// currentLevel is the tier detected for this process.
// Set by init() in dispatch_*.go files.
var currentLevel DispatchLevel

// currentWidth is the vector register width in bytes for the current tier.
// Set by init() in dispatch_*.go files.
var currentWidth int

// currentName is the human-readable name of the current tier.
// Set by init() in dispatch_*.go files.
var currentName string

// CurrentLevel returns the instruction tier the engine resolved at startup.
// The tier is fixed for the life of the process.
func CurrentLevel() DispatchLevel {
	return currentLevel
}

// CurrentWidth returns the vector register width in bytes for the resolved
// tier: 4 for scalar, 16 for SSE2/NEON, 32 for AVX2, 64 for AVX-512.
func CurrentWidth() int {
	return currentWidth
}

// CurrentName returns a human-readable name for the resolved tier, for
// example "avx2", "neon" or "scalar".
func CurrentName() string {
	return currentName
}

// LaneCount returns the number of float32 values processed per vector
// operation for the resolved tier. Always at least 1.
func LaneCount() int {
	return currentWidth / 4
}

// NoSimdEnv checks if the FMC_NOISE_NO_SIMD environment variable is set.
// When set, the engine uses width-1 scalar evaluation regardless of CPU
// capabilities. This is useful for testing and debugging.
func NoSimdEnv() bool {
	val := os.Getenv("FMC_NOISE_NO_SIMD")
	if val == "" {
		return false
	}
	// Any non-empty value is considered true, but also parse as bool
	if b, err := strconv.ParseBool(val); err == nil {
		return b
	}
	return true
}

func setScalarMode() {
	currentLevel = DispatchScalar
	currentWidth = 4
	currentName = "scalar"
}
