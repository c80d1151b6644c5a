package noise

import "math/bits"

// generator is a small wyrand-style counter hash used by the base noise
// kernels for lattice hashing. It is not cryptographic. See
// https://github.com/wangyi-fudan/wyhash for the construction.
type generator struct {
	// The initial seed is kept so the stream can be reset between block
	// evaluations, making repeated evaluations of the same compiled tree
	// reproducible.
	seed  uint64
	state uint64
}

func newGenerator(seed int32) generator {
	s := uint64(uint32(seed))
	return generator{seed: s, state: s}
}

func (g *generator) next() int32 {
	g.state += 0x2d358dccaa6c78a5
	hi, lo := bits.Mul64(g.state, g.state^0x8bb84b93962eacc9)
	return int32(uint32(lo ^ hi))
}

func (g *generator) reset() {
	g.state = g.seed
}
