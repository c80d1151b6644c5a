package noise

// Frequency holds the per-axis frequencies of a base noise. Axes that are
// not generated (e.g. Y and Z for Generate1D) are ignored.
type Frequency struct {
	X float32
	Y float32
	Z float32
}

// UniformFrequency returns a Frequency with all axes set to v. This is the
// common case, as anisotropic noise is rarely what you want.
func UniformFrequency(v float32) Frequency {
	return Frequency{X: v, Y: v, Z: v}
}

// Frequency1D returns a Frequency for 1D generation.
func Frequency1D(x float32) Frequency {
	return Frequency{X: x}
}

// Frequency2D returns a Frequency for 2D generation.
func Frequency2D(x, y float32) Frequency {
	return Frequency{X: x, Y: y}
}

// Frequency3D returns a Frequency for 3D generation.
func Frequency3D(x, y, z float32) Frequency {
	return Frequency{X: x, Y: y, Z: z}
}
