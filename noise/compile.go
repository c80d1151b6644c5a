// Copyright 2026 fmc-noise Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package noise

// dims is the output rank a tree is compiled for.
type dims uint8

const (
	dims1 dims = iota + 1
	dims2
	dims3
)

// evaluator function types, one per output rank. Evaluators operate
// elementwise across the lane count, write into the node's own scratch
// buffer and return it.
type (
	evalFunc1 func(n *node, x []float32) []float32
	evalFunc2 func(n *node, x, y []float32) []float32
	evalFunc3 func(n *node, x, y, z []float32) []float32
)

// node is one node of a compiled tree. The tree is isomorphic to the
// expression it was compiled from, but every node carries the resolved
// kernel table, per-rank evaluators and preallocated lane-wide scratch.
// A compiled tree is owned by exactly one Generate call.
type node struct {
	lanes int
	kern  *kernelTable
	rng   *generator

	seed            int32
	freq            Frequency
	value           float32
	octaves         uint32
	gain            float32
	lacunarity      float32
	scaledAmplitude float32
	low             float32
	high            float32

	source *node
	left   *node
	right  *node

	eval1 evalFunc1
	eval2 evalFunc2
	eval3 evalFunc3

	// out receives the node's result. sx/sy/sz hold rescaled coordinates
	// for fbm octaves; t holds interpolation factors for lerp and range.
	out []float32
	sx  []float32
	sy  []float32
	sz  []float32
	t   []float32
}

type tree struct {
	root  *node
	lanes int
	rng   generator
}

// compileTree walks the expression depth-first and produces an isomorphic
// node tree specialized for the current lane count and kernel tier. Trees
// are rebuilt on every Generate call and never cached.
func compileTree(op *opNode, d dims) *tree {
	t := &tree{lanes: LaneCount()}
	t.rng = newGenerator(firstSeed(op))
	t.root = compileNode(op, d, t.lanes, resolveKernels(), &t.rng)
	return t
}

// firstSeed finds the seed of the first base noise in depth-first order.
// It seeds the tree's generator; individual base nodes additionally mix in
// their own seed when hashing, so every seed in the expression
// contributes.
func firstSeed(op *opNode) int32 {
	s, _ := findSeed(op)
	return s
}

func findSeed(op *opNode) (int32, bool) {
	if op == nil {
		return 0, false
	}
	switch op.kind {
	case opSimplex, opPerlin:
		return op.seed, true
	}
	for _, child := range []*opNode{op.source, op.left, op.right} {
		if s, ok := findSeed(child); ok {
			return s, true
		}
	}
	return 0, false
}

func compileNode(op *opNode, d dims, lanes int, kern *kernelTable, rng *generator) *node {
	n := &node{
		lanes:           lanes,
		kern:            kern,
		rng:             rng,
		seed:            op.seed,
		freq:            op.frequency,
		value:           op.value,
		octaves:         op.octaves,
		gain:            op.gain,
		lacunarity:      op.lacunarity,
		scaledAmplitude: op.scaledAmplitude,
		low:             op.low,
		high:            op.high,
		out:             make([]float32, lanes),
	}

	// Children are compiled per position. Expression subtrees may be
	// shared between expressions, so each position gets its own compiled
	// node and scratch.
	if op.source != nil {
		n.source = compileNode(op.source, d, lanes, kern, rng)
	}
	if op.left != nil {
		n.left = compileNode(op.left, d, lanes, kern, rng)
	}
	if op.right != nil {
		n.right = compileNode(op.right, d, lanes, kern, rng)
	}

	switch op.kind {
	case opSimplex:
		n.eval1, n.eval2, n.eval3 = simplexEval1, simplexEval2, simplexEval3
	case opPerlin:
		// 1D Perlin routes to the simplex line kernel; a one dimensional
		// lattice has too few gradients for Perlin's construction to be
		// worth having.
		n.eval1, n.eval2, n.eval3 = simplexEval1, perlinEval2, perlinEval3
	case opConstant:
		n.eval1, n.eval2, n.eval3 = constantEval1, constantEval2, constantEval3
	case opFbm:
		n.eval1, n.eval2, n.eval3 = fbmEval1, fbmEval2, fbmEval3
		n.sx = make([]float32, lanes)
		if d >= dims2 {
			n.sy = make([]float32, lanes)
		}
		if d >= dims3 {
			n.sz = make([]float32, lanes)
		}
	case opAbs:
		n.eval1, n.eval2, n.eval3 = absEval1, absEval2, absEval3
	case opSquare:
		n.eval1, n.eval2, n.eval3 = squareEval1, squareEval2, squareEval3
	case opAddNoise:
		n.eval1, n.eval2, n.eval3 = addNoiseEval1, addNoiseEval2, addNoiseEval3
	case opAddValue:
		n.eval1, n.eval2, n.eval3 = addValueEval1, addValueEval2, addValueEval3
	case opMulNoise:
		n.eval1, n.eval2, n.eval3 = mulNoiseEval1, mulNoiseEval2, mulNoiseEval3
	case opMulValue:
		n.eval1, n.eval2, n.eval3 = mulValueEval1, mulValueEval2, mulValueEval3
	case opClamp:
		n.eval1, n.eval2, n.eval3 = clampEval1, clampEval2, clampEval3
	case opMax:
		n.eval1, n.eval2, n.eval3 = maxEval1, maxEval2, maxEval3
	case opMin:
		n.eval1, n.eval2, n.eval3 = minEval1, minEval2, minEval3
	case opLerp:
		n.eval1, n.eval2, n.eval3 = lerpEval1, lerpEval2, lerpEval3
		n.t = make([]float32, lanes)
	case opRange:
		n.eval1, n.eval2, n.eval3 = rangeEval1, rangeEval2, rangeEval3
	default:
		panic("noise: unknown expression node")
	}

	return n
}

// execute1 evaluates the tree's root over one lane block. The generator is
// reset first so every block replays the same hash stream.
func (t *tree) execute1(x []float32) []float32 {
	t.rng.reset()
	return t.root.eval1(t.root, x)
}

func (t *tree) execute2(x, y []float32) []float32 {
	t.rng.reset()
	return t.root.eval2(t.root, x, y)
}

func (t *tree) execute3(x, y, z []float32) []float32 {
	t.rng.reset()
	return t.root.eval3(t.root, x, y, z)
}
