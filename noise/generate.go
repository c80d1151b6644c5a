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

// The grid drivers compile the expression once, then walk the requested
// extent in lane-wide blocks along the innermost axis. A trailing partial
// block is evaluated at full width and only the valid leading lanes are
// scattered into the output; the excess lanes are computed but never read
// and never counted toward min/max.
//
// Min/max are tracked lane-wise across full blocks and horizontally
// reduced once at the end, folded with the scalar min/max of any
// remainder lanes.

// extremes accumulates the observed minimum and maximum.
type extremes struct {
	kern   *kernelTable
	minAcc []float32
	maxAcc []float32
	min    float32
	max    float32
}

func newExtremes(k *kernelTable, lanes int) extremes {
	e := extremes{
		kern:   k,
		minAcc: make([]float32, lanes),
		maxAcc: make([]float32, lanes),
		min:    math32.MaxFloat32,
		max:    -math32.MaxFloat32,
	}
	splat(e.minAcc, math32.MaxFloat32)
	splat(e.maxAcc, -math32.MaxFloat32)
	return e
}

func (e *extremes) block(f []float32) {
	e.kern.min(e.minAcc, e.minAcc, f)
	e.kern.max(e.maxAcc, e.maxAcc, f)
}

func (e *extremes) lane(v float32) {
	if v < e.min {
		e.min = v
	}
	if v > e.max {
		e.max = v
	}
}

func (e *extremes) reduce() (float32, float32) {
	mn := e.kern.reduceMin(e.minAcc)
	if e.min < mn {
		mn = e.min
	}
	mx := e.kern.reduceMax(e.maxAcc)
	if e.max > mx {
		mx = e.max
	}
	return mn, mx
}

// iota fills dst with start, start+1, ....
func iotaBlock(dst []float32, start float32) {
	for i := range dst {
		dst[i] = start + float32(i)
	}
}

// Generate1D evaluates the expression over width points starting at x and
// stepping by 1. It returns the values plus the minimum and maximum
// observed. A zero width yields an empty buffer with min/max left at the
// float32 extremes.
func (n Noise) Generate1D(x float32, width int) ([]float32, float32, float32) {
	t := compileTree(n.op, dims1)
	k := resolveKernels()
	lanes := t.lanes

	out := make([]float32, width)
	ext := newExtremes(k, lanes)

	xv := make([]float32, lanes)
	iotaBlock(xv, x)

	i := 0
	for b := 0; b < width/lanes; b++ {
		f := t.execute1(xv)
		ext.block(f)
		copy(out[i:], f)
		i += lanes
		k.addNumber(xv, xv, float32(lanes))
	}
	if rem := width % lanes; rem != 0 {
		f := t.execute1(xv)
		for j := 0; j < rem; j++ {
			out[i] = f[j]
			ext.lane(f[j])
			i++
		}
	}

	mn, mx := ext.reduce()
	return out, mn, mx
}

// Generate2D evaluates the expression over a width x height plane starting
// at (x, y). Values are laid out with index = x*height + y, so the outer
// axis of the signature comes first in the flattened buffer:
//
//	values, _, _ := n.Generate2D(0, 0, width, height)
//	v := values[xi*height+yi]
func (n Noise) Generate2D(x, y float32, width, height int) ([]float32, float32, float32) {
	t := compileTree(n.op, dims2)
	k := resolveKernels()
	lanes := t.lanes

	out := make([]float32, width*height)
	ext := newExtremes(k, lanes)

	yBase := make([]float32, lanes)
	iotaBlock(yBase, y)
	xv := make([]float32, lanes)
	yv := make([]float32, lanes)
	splat(xv, x)

	rem := height % lanes
	i := 0
	for xi := 0; xi < width; xi++ {
		copy(yv, yBase)
		for b := 0; b < height/lanes; b++ {
			f := t.execute2(xv, yv)
			ext.block(f)
			copy(out[i:], f)
			i += lanes
			k.addNumber(yv, yv, float32(lanes))
		}
		if rem != 0 {
			f := t.execute2(xv, yv)
			for j := 0; j < rem; j++ {
				out[i] = f[j]
				ext.lane(f[j])
				i++
			}
		}
		k.addNumber(xv, xv, 1)
	}

	mn, mx := ext.reduce()
	return out, mn, mx
}

// Generate3D evaluates the expression over a width x height x depth volume
// starting at (x, y, z). Values are laid out with
// index = x*depth*height + z*height + y.
func (n Noise) Generate3D(x, y, z float32, width, height, depth int) ([]float32, float32, float32) {
	t := compileTree(n.op, dims3)
	k := resolveKernels()
	lanes := t.lanes

	out := make([]float32, width*height*depth)
	ext := newExtremes(k, lanes)

	yBase := make([]float32, lanes)
	iotaBlock(yBase, y)
	xv := make([]float32, lanes)
	yv := make([]float32, lanes)
	zv := make([]float32, lanes)
	splat(xv, x)

	rem := height % lanes
	i := 0
	for xi := 0; xi < width; xi++ {
		splat(zv, z)
		for zi := 0; zi < depth; zi++ {
			copy(yv, yBase)
			for b := 0; b < height/lanes; b++ {
				f := t.execute3(xv, yv, zv)
				ext.block(f)
				copy(out[i:], f)
				i += lanes
				k.addNumber(yv, yv, float32(lanes))
			}
			if rem != 0 {
				f := t.execute3(xv, yv, zv)
				for j := 0; j < rem; j++ {
					out[i] = f[j]
					ext.lane(f[j])
					i++
				}
			}
			k.addNumber(zv, zv, 1)
		}
		k.addNumber(xv, xv, 1)
	}

	mn, mx := ext.reduce()
	return out, mn, mx
}
