package noise

// Fractal Brownian motion evaluates its source once per octave through the
// same compiled subtree, rescaling the coordinates by lacunarity between
// octaves instead of materializing one subtree copy per octave. This keeps
// the compiled tree linear in the expression size even for nested fbm.
//
// The accumulation order is load-bearing: octave 0 runs at the node's base
// frequency with amplitude equal to the pre-derived normalization factor,
// and frequency/amplitude are stepped after each octave. Changing the
// order changes the floating-point rounding of the sum.

func fbmEval1(n *node, x []float32) []float32 {
	out, sx := n.out, n.sx
	copy(sx, x)
	splat(out, 0)
	amplitude := n.scaledAmplitude
	src := n.source
	for o := uint32(0); o < n.octaves; o++ {
		s := src.eval1(src, sx)
		for i := range out {
			out[i] += s[i] * amplitude
		}
		amplitude *= n.gain
		if o+1 < n.octaves {
			n.kern.mulNumber(sx, sx, n.lacunarity)
		}
	}
	return out
}

func fbmEval2(n *node, x, y []float32) []float32 {
	out, sx, sy := n.out, n.sx, n.sy
	copy(sx, x)
	copy(sy, y)
	splat(out, 0)
	amplitude := n.scaledAmplitude
	src := n.source
	for o := uint32(0); o < n.octaves; o++ {
		s := src.eval2(src, sx, sy)
		for i := range out {
			out[i] += s[i] * amplitude
		}
		amplitude *= n.gain
		if o+1 < n.octaves {
			n.kern.mulNumber(sx, sx, n.lacunarity)
			n.kern.mulNumber(sy, sy, n.lacunarity)
		}
	}
	return out
}

func fbmEval3(n *node, x, y, z []float32) []float32 {
	out, sx, sy, sz := n.out, n.sx, n.sy, n.sz
	copy(sx, x)
	copy(sy, y)
	copy(sz, z)
	splat(out, 0)
	amplitude := n.scaledAmplitude
	src := n.source
	for o := uint32(0); o < n.octaves; o++ {
		s := src.eval3(src, sx, sy, sz)
		for i := range out {
			out[i] += s[i] * amplitude
		}
		amplitude *= n.gain
		if o+1 < n.octaves {
			n.kern.mulNumber(sx, sx, n.lacunarity)
			n.kern.mulNumber(sy, sy, n.lacunarity)
			n.kern.mulNumber(sz, sz, n.lacunarity)
		}
	}
	return out
}
