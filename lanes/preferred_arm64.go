//go:build arm64

package lanes

import "golang.org/x/sys/cpu"

func init() {
	if s := envPreferredShape(); s != 0 {
		preferredShape = s
		return
	}
	// NEON (ASIMD) is part of the ARMv8-A base architecture, so this is
	// effectively always 128-bit. SVE would allow wider registers but has
	// no fixed width to report.
	if cpu.ARM64.HasASIMD {
		preferredShape = Shape128
	} else {
		preferredShape = Shape64
	}
}
