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

import "github.com/viterin/vek/vek32"

// vekKernels is the accelerated tier, backed by viterin/vek's float32
// routines (AVX2 on amd64, NEON-friendly pure Go elsewhere). Used for all
// non-scalar dispatch levels; the lane count still comes from the resolved
// level, vek only supplies the elementwise bodies.
//
// The kernelTable contract allows dst to alias any operand, but vek's
// _Into routines reject all overlap: dst == a routes to the equivalent
// _Inplace routine, and dst == b falls back to the shared baseline block
// (bit-identical, single IEEE op per lane) since vek has no entry point
// for it.
var vekKernels = kernelTable{
	name: "vek",
	add: func(dst, a, b []float32) {
		switch {
		case aliased(dst, b):
			addBlock(dst, a, b)
		case aliased(dst, a):
			vek32.Add_Inplace(dst, b)
		default:
			vek32.Add_Into(dst, a, b)
		}
	},
	sub: func(dst, a, b []float32) {
		switch {
		case aliased(dst, b):
			subBlock(dst, a, b)
		case aliased(dst, a):
			vek32.Sub_Inplace(dst, b)
		default:
			vek32.Sub_Into(dst, a, b)
		}
	},
	mul: func(dst, a, b []float32) {
		switch {
		case aliased(dst, b):
			mulBlock(dst, a, b)
		case aliased(dst, a):
			vek32.Mul_Inplace(dst, b)
		default:
			vek32.Mul_Into(dst, a, b)
		}
	},
	min: func(dst, a, b []float32) {
		switch {
		case aliased(dst, b):
			minBlock(dst, a, b)
		case aliased(dst, a):
			vek32.Minimum_Inplace(dst, b)
		default:
			vek32.Minimum_Into(dst, a, b)
		}
	},
	max: func(dst, a, b []float32) {
		switch {
		case aliased(dst, b):
			maxBlock(dst, a, b)
		case aliased(dst, a):
			vek32.Maximum_Inplace(dst, b)
		default:
			vek32.Maximum_Into(dst, a, b)
		}
	},
	abs: func(dst, a []float32) {
		if aliased(dst, a) {
			vek32.Abs_Inplace(dst)
		} else {
			vek32.Abs_Into(dst, a)
		}
	},
	addNumber: func(dst, a []float32, v float32) {
		if aliased(dst, a) {
			vek32.AddNumber_Inplace(dst, v)
		} else {
			vek32.AddNumber_Into(dst, a, v)
		}
	},
	mulNumber: func(dst, a []float32, v float32) {
		if aliased(dst, a) {
			vek32.MulNumber_Inplace(dst, v)
		} else {
			vek32.MulNumber_Into(dst, a, v)
		}
	},
	clamp: clampBlock,
	reduceMin: func(a []float32) float32 {
		return vek32.Min(a)
	},
	reduceMax: func(a []float32) float32 {
		return vek32.Max(a)
	},
}

// aliased reports whether dst and a are the same lane block. Tables only
// ever see whole scratch buffers, so aliasing is always exact.
func aliased(dst, a []float32) bool {
	return len(dst) > 0 && len(a) > 0 && &dst[0] == &a[0]
}
