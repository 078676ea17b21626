// Package generic registers the pure Go scan kernels.
//
// This entry is the fallback for every CPU and the only one selected when
// ForceGeneric is set or the module is built with the purego tag.
package generic

import (
	"github.com/cwbudde/algo-find1st/internal/scan"
	"github.com/cwbudde/algo-find1st/internal/scan/registry"
	"github.com/cwbudde/algo-vecmath/cpu"
)

func init() {
	registry.Global.Register(registry.OpEntry{
		Name:      "generic",
		SIMDLevel: cpu.SIMDNone,
		Priority:  0,

		Float64: scan.First[float64],
		Float32: scan.First[float32],
		Int64:   scan.First[int64],
		Uint8:   scan.First[uint8],
	})
}
