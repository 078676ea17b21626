//go:build amd64 && !purego

// Package avx2 registers the scan kernels selected on AVX2-capable CPUs.
package avx2

import (
	"github.com/cwbudde/algo-find1st/internal/scan"
	"github.com/cwbudde/algo-find1st/internal/scan/registry"
	"github.com/cwbudde/algo-vecmath/cpu"
)

// The kernels are currently the 4x-unrolled scalar loops.
// TODO: replace Float64/Float32 with a VCMPPD/VMOVMSKPD block kernel that
// tests 4 lanes per instruction and falls back to the scalar tail.
func init() {
	registry.Global.Register(registry.OpEntry{
		Name:      "avx2",
		SIMDLevel: cpu.SIMDAVX2,
		Priority:  20,

		Float64: scan.FirstUnrolled[float64],
		Float32: scan.FirstUnrolled[float32],
		Int64:   scan.FirstUnrolled[int64],
		Uint8:   scan.FirstUnrolled[uint8],
	})
}
