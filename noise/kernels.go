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

import (
	"sync"

	"github.com/chewxy/math32"
)

// kernelTable is the set of elementwise lane-block operations the node
// evaluators and grid drivers are built from. Every tier provides the same
// signatures; which table runs is resolved once per process. All slices
// passed to a table have the same length (the lane count), and dst may
// alias any operand.
type kernelTable struct {
	name string

	add func(dst, a, b []float32)
	sub func(dst, a, b []float32)
	mul func(dst, a, b []float32)
	min func(dst, a, b []float32)
	max func(dst, a, b []float32)
	abs func(dst, a []float32)

	addNumber func(dst, a []float32, v float32)
	mulNumber func(dst, a []float32, v float32)
	clamp     func(dst, a []float32, lo, hi float32)

	reduceMin func(a []float32) float32
	reduceMax func(a []float32) float32
}

// resolveKernels returns the kernel table for the current dispatch level.
// Resolution is write-once and safe to race on first use from multiple
// goroutines; the table is immutable afterwards.
var resolveKernels = sync.OnceValue(func() *kernelTable {
	if currentLevel == DispatchScalar {
		return &baselineKernels
	}
	return &vekKernels
})

// baselineKernels is the pure Go fallback tier. It is used in scalar mode
// (lane count 1) and serves as the reference the accelerated tier is
// tested against.
var baselineKernels = kernelTable{
	name:      "baseline",
	add:       addBlock,
	sub:       subBlock,
	mul:       mulBlock,
	min:       minBlock,
	max:       maxBlock,
	abs:       absBlock,
	addNumber: addNumberBlock,
	mulNumber: mulNumberBlock,
	clamp:     clampBlock,
	reduceMin: reduceMinBlock,
	reduceMax: reduceMaxBlock,
}

func addBlock(dst, a, b []float32) {
	for i := range dst {
		dst[i] = a[i] + b[i]
	}
}

func subBlock(dst, a, b []float32) {
	for i := range dst {
		dst[i] = a[i] - b[i]
	}
}

func mulBlock(dst, a, b []float32) {
	for i := range dst {
		dst[i] = a[i] * b[i]
	}
}

func minBlock(dst, a, b []float32) {
	for i := range dst {
		if b[i] < a[i] {
			dst[i] = b[i]
		} else {
			dst[i] = a[i]
		}
	}
}

func maxBlock(dst, a, b []float32) {
	for i := range dst {
		if b[i] > a[i] {
			dst[i] = b[i]
		} else {
			dst[i] = a[i]
		}
	}
}

func absBlock(dst, a []float32) {
	for i := range dst {
		dst[i] = math32.Abs(a[i])
	}
}

func addNumberBlock(dst, a []float32, v float32) {
	for i := range dst {
		dst[i] = a[i] + v
	}
}

func mulNumberBlock(dst, a []float32, v float32) {
	for i := range dst {
		dst[i] = a[i] * v
	}
}

// clampBlock clamps each lane to [lo, hi]. Shared by both tiers: the
// accelerated backend has no single clamp primitive and two passes over a
// lane block cost more than this loop.
func clampBlock(dst, a []float32, lo, hi float32) {
	for i := range dst {
		v := a[i]
		if v < lo {
			v = lo
		} else if v > hi {
			v = hi
		}
		dst[i] = v
	}
}

func reduceMinBlock(a []float32) float32 {
	m := a[0]
	for _, v := range a[1:] {
		if v < m {
			m = v
		}
	}
	return m
}

func reduceMaxBlock(a []float32) float32 {
	m := a[0]
	for _, v := range a[1:] {
		if v > m {
			m = v
		}
	}
	return m
}

// splat sets every lane of dst to v.
func splat(dst []float32, v float32) {
	for i := range dst {
		dst[i] = v
	}
}
