//go:build amd64 && !purego

package find

import (
	_ "github.com/cwbudde/algo-find1st/internal/scan/arch/amd64/avx2" // register AVX2 kernels
	_ "github.com/cwbudde/algo-find1st/internal/scan/arch/generic"    // register generic kernels
)
