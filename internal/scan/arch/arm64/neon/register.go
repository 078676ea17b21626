//go:build arm64 && !purego

// Package neon registers the scan kernels selected on ARM NEON CPUs.
package neon

import (
	"github.com/cwbudde/algo-find1st/internal/scan"
	"github.com/cwbudde/algo-find1st/internal/scan/registry"
	"github.com/cwbudde/algo-vecmath/cpu"
)

func init() {
	registry.Global.Register(registry.OpEntry{
		Name:      "neon",
		SIMDLevel: cpu.SIMDNEON,
		Priority:  15,

		Float64: scan.FirstUnrolled[float64],
		Float32: scan.FirstUnrolled[float32],
		Int64:   scan.FirstUnrolled[int64],
		Uint8:   scan.FirstUnrolled[uint8],
	})
}
