package kernel

import (
	"os"
	"strings"
)

// Impl identifies a kernel implementation.
type Impl uint8

const (
	// Generic is plain Go multiply-and-add.
	Generic Impl = iota
	// FMA accumulates sums of squares with math.FMA, one rounding per step.
	FMA
)

// String returns the string representation of an Impl.
func (i Impl) String() string {
	switch i {
	case Generic:
		return "generic"
	case FMA:
		return "fma"
	default:
		return "unknown"
	}
}

// ParseImpl parses a string into an Impl value.
func ParseImpl(s string) (Impl, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "generic":
		return Generic, true
	case "fma":
		return FMA, true
	default:
		return Generic, false
	}
}

// EnvOverride is the environment variable consulted at init.
const EnvOverride = "EUCLID_KERNEL"

var (
	active      Impl
	hasOverride bool

	// set by platform-specific init
	hasFMA bool
)

// initCapabilities is called from the platform-specific init functions
// after CPU features are detected.
func initCapabilities() {
	if override := os.Getenv(EnvOverride); override != "" {
		if impl, ok := ParseImpl(override); ok && isAvailable(impl) {
			hasOverride = true
			use(impl)
			return
		}
	}

	if hasFMA {
		use(FMA)
		return
	}
	use(Generic)
}

func isAvailable(impl Impl) bool {
	switch impl {
	case Generic:
		return true
	case FMA:
		return hasFMA
	default:
		return false
	}
}

// Active returns the implementation in use.
func Active() Impl {
	return active
}

// IsOverridden reports whether EUCLID_KERNEL selected the implementation.
func IsOverridden() bool {
	return hasOverride
}

// HasFMA reports whether the CPU has hardware fused multiply-add.
func HasFMA() bool {
	return hasFMA
}
