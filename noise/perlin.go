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

import "github.com/chewxy/math32"

// Classic Perlin gradient noise with the quintic fade curve, gradients
// drawn from the seeded lattice hash. 1D requests are compiled to the
// simplex line kernel instead (see compileNode).

func perlinEval2(n *node, x, y []float32) []float32 {
	out := n.out
	seed := n.seed
	fx, fy := n.freq.X, n.freq.Y
	for i := range out {
		out[i] = perlin2(seed, x[i]*fx, y[i]*fy)
	}
	return out
}

func perlinEval3(n *node, x, y, z []float32) []float32 {
	out := n.out
	seed := n.seed
	fx, fy, fz := n.freq.X, n.freq.Y, n.freq.Z
	for i := range out {
		out[i] = perlin3(seed, x[i]*fx, y[i]*fy, z[i]*fz)
	}
	return out
}

// fade is Perlin's quintic interpolant 6t^5 - 15t^4 + 10t^3.
func fade(t float32) float32 {
	return t * t * t * (t*(t*6-15) + 10)
}

func lerpScalar(a, b, t float32) float32 {
	return a + t*(b-a)
}

func perlin2(seed int32, x, y float32) float32 {
	xf := math32.Floor(x)
	yf := math32.Floor(y)
	xi := int32(xf)
	yi := int32(yf)
	dx := x - xf
	dy := y - yf

	u := fade(dx)
	v := fade(dy)

	n00 := grad2(latticeHash2(seed, xi, yi), dx, dy)
	n10 := grad2(latticeHash2(seed, xi+1, yi), dx-1, dy)
	n01 := grad2(latticeHash2(seed, xi, yi+1), dx, dy-1)
	n11 := grad2(latticeHash2(seed, xi+1, yi+1), dx-1, dy-1)

	return lerpScalar(lerpScalar(n00, n10, u), lerpScalar(n01, n11, u), v)
}

func perlin3(seed int32, x, y, z float32) float32 {
	xf := math32.Floor(x)
	yf := math32.Floor(y)
	zf := math32.Floor(z)
	xi := int32(xf)
	yi := int32(yf)
	zi := int32(zf)
	dx := x - xf
	dy := y - yf
	dz := z - zf

	u := fade(dx)
	v := fade(dy)
	w := fade(dz)

	n000 := grad3(latticeHash3(seed, xi, yi, zi), dx, dy, dz)
	n100 := grad3(latticeHash3(seed, xi+1, yi, zi), dx-1, dy, dz)
	n010 := grad3(latticeHash3(seed, xi, yi+1, zi), dx, dy-1, dz)
	n110 := grad3(latticeHash3(seed, xi+1, yi+1, zi), dx-1, dy-1, dz)
	n001 := grad3(latticeHash3(seed, xi, yi, zi+1), dx, dy, dz-1)
	n101 := grad3(latticeHash3(seed, xi+1, yi, zi+1), dx-1, dy, dz-1)
	n011 := grad3(latticeHash3(seed, xi, yi+1, zi+1), dx, dy-1, dz-1)
	n111 := grad3(latticeHash3(seed, xi+1, yi+1, zi+1), dx-1, dy-1, dz-1)

	x00 := lerpScalar(n000, n100, u)
	x10 := lerpScalar(n010, n110, u)
	x01 := lerpScalar(n001, n101, u)
	x11 := lerpScalar(n011, n111, u)

	return lerpScalar(lerpScalar(x00, x10, v), lerpScalar(x01, x11, v), w)
}
