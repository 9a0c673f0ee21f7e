package system

import (
	"fmt"
	"log/slog"
)

// clampNonNegative enforces a counter floor of zero
// Debug builds (-tags arenadebug) panic so the defect surfaces at its source
func clampNonNegative[T int | float64](name string, v *T, logger *slog.Logger) {
	if *v >= 0 {
		return
	}
	if debugInvariants {
		panic(fmt.Sprintf("invariant violated: %s = %v < 0", name, *v))
	}
	logger.Error("invariant violated, clamping", "counter", name, "value", *v)
	*v = 0
}
