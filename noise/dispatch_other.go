//go:build !amd64 && !arm64

package noise

func init() {
	// Other architectures fall back to width-1 scalar evaluation for now.
	// Future implementations will add:
	// - wasm: SIMD128 support
	// - riscv64: Vector extension support
	setScalarMode()
}
