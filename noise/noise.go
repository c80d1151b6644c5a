// Package noise evaluates procedural noise expressions over dense
// coordinate grids using vector-lane execution with runtime CPU dispatch.
//
// Callers build an expression from a base noise (Simplex, Perlin or a
// constant) and chain combinators onto it, then request a batch evaluation
// over a rectangular region:
//
//	values, min, max := noise.Simplex(noise.UniformFrequency(0.01), 42).
//		Fbm(5, 0.5, 2.0).
//		Abs().
//		AddValue(0.5).
//		Generate2D(0, 0, 256, 256)
//
// Expressions are immutable: every combinator returns a new expression
// wrapping the previous one, so expressions can be shared between
// goroutines and reused across any number of Generate calls. Each Generate
// call compiles the expression into a node tree specialized for the lane
// width the current hardware supports and walks the grid in lane-wide
// blocks.
package noise

// opKind identifies an expression node variant.
type opKind uint8

const (
	opSimplex opKind = iota
	opPerlin
	opConstant
	opFbm
	opAbs
	opSquare
	opAddNoise
	opAddValue
	opMulNoise
	opMulValue
	opClamp
	opMax
	opMin
	opLerp
	opRange
)

// opNode is one node of an expression tree. Nodes are never mutated after
// construction, which makes sharing subtrees between expressions safe.
type opNode struct {
	kind opKind

	// Base noise payload.
	seed      int32
	frequency Frequency

	// Constant / AddValue / MulValue payload.
	value float32

	// Fbm payload. scaledAmplitude is derived at construction so the
	// octave sum comes out normalized without a trailing divide.
	octaves         uint32
	gain            float32
	lacunarity      float32
	scaledAmplitude float32

	// Clamp / Range bounds.
	low  float32
	high float32

	// Children. source doubles as the selector for Lerp and Range;
	// left/right double as the low/high branches.
	source *opNode
	left   *opNode
	right  *opNode
}

// Noise is an immutable noise expression.
//
// The zero value is not a valid expression; start from Simplex, Perlin or
// Constant.
type Noise struct {
	op *opNode
}

// Simplex creates a simplex noise expression with the given per-axis
// frequency and seed. Output is conventionally in [-1, 1].
func Simplex(frequency Frequency, seed int32) Noise {
	return Noise{op: &opNode{kind: opSimplex, frequency: frequency, seed: seed}}
}

// Perlin creates a Perlin noise expression with the given per-axis
// frequency and seed. Output is conventionally in [-1, 1].
func Perlin(frequency Frequency, seed int32) Noise {
	return Noise{op: &opNode{kind: opPerlin, frequency: frequency, seed: seed}}
}

// Constant creates an expression that evaluates to value everywhere.
// Useful for shifting and scaling other noises:
//
//	// Simplex moved from -1..1 to 0..1
//	n := noise.Simplex(noise.UniformFrequency(0.01), 1).
//		Mul(noise.Constant(0.5)).
//		Add(noise.Constant(0.5))
func Constant(value float32) Noise {
	return Noise{op: &opNode{kind: opConstant, value: value}}
}

// Fbm wraps the expression in fractal Brownian motion: octaves layers of
// the source are summed, each successive octave with its frequency
// multiplied by lacunarity and its amplitude by gain. The sum is
// normalized so the envelope of the result matches the source's.
//
// Panics if octaves is zero.
func (n Noise) Fbm(octaves uint32, gain, lacunarity float32) Noise {
	if octaves == 0 {
		panic("noise: fbm requires at least one octave")
	}

	// Pre-scale the first octave's amplitude by the inverse of the
	// amplitude sum. With gain 0.5 and two octaves the raw sum has an
	// envelope of 1.5x the source's; starting at 2/3 instead of 1 lands
	// the result back at 1x with no divide per sample.
	amp := gain
	scaled := float32(1.0)
	for i := uint32(1); i < octaves; i++ {
		scaled += amp
		amp *= gain
	}
	scaled = 1.0 / scaled

	return Noise{op: &opNode{
		kind:            opFbm,
		octaves:         octaves,
		gain:            gain,
		lacunarity:      lacunarity,
		scaledAmplitude: scaled,
		source:          n.op,
	}}
}

// Abs takes the absolute value of the expression.
func (n Noise) Abs() Noise {
	return Noise{op: &opNode{kind: opAbs, source: n.op}}
}

// Square squares the expression.
func (n Noise) Square() Noise {
	return Noise{op: &opNode{kind: opSquare, source: n.op}}
}

// Add sums two expressions. The result is not normalized.
func (n Noise) Add(other Noise) Noise {
	return Noise{op: &opNode{kind: opAddNoise, left: n.op, right: other.op}}
}

// Mul multiplies two expressions. The result is not normalized.
func (n Noise) Mul(other Noise) Noise {
	return Noise{op: &opNode{kind: opMulNoise, left: n.op, right: other.op}}
}

// AddValue adds a scalar to the expression.
func (n Noise) AddValue(v float32) Noise {
	return Noise{op: &opNode{kind: opAddValue, value: v, source: n.op}}
}

// MulValue multiplies the expression by a scalar.
func (n Noise) MulValue(v float32) Noise {
	return Noise{op: &opNode{kind: opMulValue, value: v, source: n.op}}
}

// Clamp clamps the expression between min and max.
func (n Noise) Clamp(min, max float32) Noise {
	return Noise{op: &opNode{kind: opClamp, low: min, high: max, source: n.op}}
}

// Max takes the per-sample maximum of two expressions.
func (n Noise) Max(other Noise) Noise {
	return Noise{op: &opNode{kind: opMax, left: n.op, right: other.op}}
}

// Min takes the per-sample minimum of two expressions.
func (n Noise) Min(other Noise) Noise {
	return Noise{op: &opNode{kind: opMin, left: n.op, right: other.op}}
}

// Lerp blends between low and high using the receiver as the selector.
// The selector is required to be in -1..1; it is remapped to a 0..1
// interpolation factor.
func (n Noise) Lerp(high, low Noise) Noise {
	return Noise{op: &opNode{kind: opLerp, source: n.op, left: low.op, right: high.op}}
}

// Range interpolates between lowNoise and highNoise using the receiver as
// the selector. Where the selector exceeds high the result is highNoise
// alone, below low it is lowNoise alone, and in between the two are
// blended by where the selector falls in the band. The selector is
// required to be in -1..1.
func (n Noise) Range(high, low float32, highNoise, lowNoise Noise) Noise {
	return Noise{op: &opNode{
		kind:   opRange,
		low:    low,
		high:   high,
		source: n.op,
		left:   lowNoise.op,
		right:  highNoise.op,
	}}
}
