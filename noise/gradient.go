package noise

import "math/bits"

// Lattice hashing: deterministic pseudo-random mapping from integer
// grid-cell coordinates plus a seed to a gradient index. Uses the same
// multiply-fold mixer family as the generator, with the wyhash secret
// constants as per-axis multipliers so neighboring cells decorrelate.

func wymix(a, b uint64) uint64 {
	hi, lo := bits.Mul64(a, b)
	return hi ^ lo
}

func latticeHash1(seed int32, x int32) uint32 {
	h := uint64(uint32(seed))*0xa0761d6478bd642f ^ uint64(uint32(x))*0xe7037ed1a0b428db
	return uint32(wymix(h, h^0x8ebc6af09c88c6e3))
}

func latticeHash2(seed int32, x, y int32) uint32 {
	h := uint64(uint32(seed))*0xa0761d6478bd642f ^
		uint64(uint32(x))*0xe7037ed1a0b428db ^
		uint64(uint32(y))*0x8ebc6af09c88c6e3
	return uint32(wymix(h, h^0x589965cc75374cc3))
}

func latticeHash3(seed int32, x, y, z int32) uint32 {
	h := uint64(uint32(seed))*0xa0761d6478bd642f ^
		uint64(uint32(x))*0xe7037ed1a0b428db ^
		uint64(uint32(y))*0x8ebc6af09c88c6e3 ^
		uint64(uint32(z))*0x589965cc75374cc3
	return uint32(wymix(h, h^0x1d8e4e27c47d124f))
}

// grad1 picks one of 16 line gradients (magnitudes 1..8, both signs) and
// applies it to the distance x.
func grad1(hash uint32, x float32) float32 {
	g := 1.0 + float32(hash&7)
	if hash&8 != 0 {
		g = -g
	}
	return g * x
}

// grad2 computes the dot product of one of 8 edge gradients and (x, y).
func grad2(hash uint32, x, y float32) float32 {
	h := hash & 7
	u, v := x, y
	if h >= 4 {
		u, v = y, x
	}
	if h&1 != 0 {
		u = -u
	}
	if h&2 != 0 {
		v = -v
	}
	return u + v
}

// grad3 computes the dot product of one of 12 cube-edge gradients and
// (x, y, z).
func grad3(hash uint32, x, y, z float32) float32 {
	h := hash & 15
	u := x
	if h >= 8 {
		u = y
	}
	v := y
	if h >= 4 {
		if h == 12 || h == 14 {
			v = x
		} else {
			v = z
		}
	}
	if h&1 != 0 {
		u = -u
	}
	if h&2 != 0 {
		v = -v
	}
	return u + v
}
