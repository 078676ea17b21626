//go:build (!amd64 && !arm64) || purego

package find

import (
	_ "github.com/cwbudde/algo-find1st/internal/scan/arch/generic"
)
