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

// Simplex noise after Gustavson's reference construction, with the
// permutation table replaced by seeded lattice hashing so every seed gets
// its own gradient field without a table rebuild.

const (
	// Skew/unskew factors for 2D: (sqrt(3)-1)/2 and (3-sqrt(3))/6.
	skew2   = 0.36602540378443865
	unskew2 = 0.21132486540518713

	// Skew/unskew factors for 3D: 1/3 and 1/6.
	skew3   = 1.0 / 3.0
	unskew3 = 1.0 / 6.0
)

func simplexEval1(n *node, x []float32) []float32 {
	out := n.out
	seed := n.seed
	fx := n.freq.X
	for i := range out {
		out[i] = simplex1(seed, x[i]*fx)
	}
	return out
}

func simplexEval2(n *node, x, y []float32) []float32 {
	out := n.out
	seed := n.seed
	fx, fy := n.freq.X, n.freq.Y
	for i := range out {
		out[i] = simplex2(seed, x[i]*fx, y[i]*fy)
	}
	return out
}

func simplexEval3(n *node, x, y, z []float32) []float32 {
	out := n.out
	seed := n.seed
	fx, fy, fz := n.freq.X, n.freq.Y, n.freq.Z
	for i := range out {
		out[i] = simplex3(seed, x[i]*fx, y[i]*fy, z[i]*fz)
	}
	return out
}

// simplex1 is gradient noise on a line: two lattice points, quartic decay.
func simplex1(seed int32, x float32) float32 {
	i0 := math32.Floor(x)
	i1 := i0 + 1
	x0 := x - i0
	x1 := x0 - 1

	t0 := 1 - x0*x0
	t0 *= t0
	n0 := t0 * t0 * grad1(latticeHash1(seed, int32(i0)), x0)

	t1 := 1 - x1*x1
	t1 *= t1
	n1 := t1 * t1 * grad1(latticeHash1(seed, int32(i1)), x1)

	// The maximum is around 2.53; scale into -1..1.
	return 0.395 * (n0 + n1)
}

func simplex2(seed int32, x, y float32) float32 {
	// Skew the input space to find the simplex cell.
	s := (x + y) * skew2
	i := math32.Floor(x + s)
	j := math32.Floor(y + s)

	t := (i + j) * unskew2
	x0 := x - (i - t)
	y0 := y - (j - t)

	// Offsets for the middle corner: upper or lower triangle.
	var i1, j1 float32
	if x0 > y0 {
		i1 = 1
	} else {
		j1 = 1
	}

	x1 := x0 - i1 + unskew2
	y1 := y0 - j1 + unskew2
	x2 := x0 - 1 + 2*unskew2
	y2 := y0 - 1 + 2*unskew2

	ii := int32(i)
	jj := int32(j)

	var n0, n1, n2 float32

	t0 := 0.5 - x0*x0 - y0*y0
	if t0 > 0 {
		t0 *= t0
		n0 = t0 * t0 * grad2(latticeHash2(seed, ii, jj), x0, y0)
	}

	t1 := 0.5 - x1*x1 - y1*y1
	if t1 > 0 {
		t1 *= t1
		n1 = t1 * t1 * grad2(latticeHash2(seed, ii+int32(i1), jj+int32(j1)), x1, y1)
	}

	t2 := 0.5 - x2*x2 - y2*y2
	if t2 > 0 {
		t2 *= t2
		n2 = t2 * t2 * grad2(latticeHash2(seed, ii+1, jj+1), x2, y2)
	}

	// Scale into -1..1.
	return 70 * (n0 + n1 + n2)
}

func simplex3(seed int32, x, y, z float32) float32 {
	s := (x + y + z) * skew3
	i := math32.Floor(x + s)
	j := math32.Floor(y + s)
	k := math32.Floor(z + s)

	t := (i + j + k) * unskew3
	x0 := x - (i - t)
	y0 := y - (j - t)
	z0 := z - (k - t)

	// Rank the coordinates to pick the simplex traversal order.
	var i1, j1, k1 float32
	var i2, j2, k2 float32
	if x0 >= y0 {
		switch {
		case y0 >= z0:
			i1, i2, j2 = 1, 1, 1
		case x0 >= z0:
			i1, i2, k2 = 1, 1, 1
		default:
			k1, i2, k2 = 1, 1, 1
		}
	} else {
		switch {
		case y0 < z0:
			k1, j2, k2 = 1, 1, 1
		case x0 < z0:
			j1, j2, k2 = 1, 1, 1
		default:
			j1, i2, j2 = 1, 1, 1
		}
	}

	x1 := x0 - i1 + unskew3
	y1 := y0 - j1 + unskew3
	z1 := z0 - k1 + unskew3
	x2 := x0 - i2 + 2*unskew3
	y2 := y0 - j2 + 2*unskew3
	z2 := z0 - k2 + 2*unskew3
	x3 := x0 - 1 + 3*unskew3
	y3 := y0 - 1 + 3*unskew3
	z3 := z0 - 1 + 3*unskew3

	ii := int32(i)
	jj := int32(j)
	kk := int32(k)

	var n0, n1, n2, n3 float32

	t0 := 0.6 - x0*x0 - y0*y0 - z0*z0
	if t0 > 0 {
		t0 *= t0
		n0 = t0 * t0 * grad3(latticeHash3(seed, ii, jj, kk), x0, y0, z0)
	}

	t1 := 0.6 - x1*x1 - y1*y1 - z1*z1
	if t1 > 0 {
		t1 *= t1
		n1 = t1 * t1 * grad3(latticeHash3(seed, ii+int32(i1), jj+int32(j1), kk+int32(k1)), x1, y1, z1)
	}

	t2 := 0.6 - x2*x2 - y2*y2 - z2*z2
	if t2 > 0 {
		t2 *= t2
		n2 = t2 * t2 * grad3(latticeHash3(seed, ii+int32(i2), jj+int32(j2), kk+int32(k2)), x2, y2, z2)
	}

	t3 := 0.6 - x3*x3 - y3*y3 - z3*z3
	if t3 > 0 {
		t3 *= t3
		n3 = t3 * t3 * grad3(latticeHash3(seed, ii+1, jj+1, kk+1), x3, y3, z3)
	}

	// Scale into -1..1.
	return 32 * (n0 + n1 + n2 + n3)
}
