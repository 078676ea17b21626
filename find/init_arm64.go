//go:build arm64 && !purego

package find

import (
	_ "github.com/cwbudde/algo-find1st/internal/scan/arch/arm64/neon"
	_ "github.com/cwbudde/algo-find1st/internal/scan/arch/generic"
)
