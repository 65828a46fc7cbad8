package decimalvec

// DefaultPrecision is the number of significant digits kept by division
// and square roots.
const DefaultPrecision int32 = 30

type options struct {
	precision int32
}

// Option configures a Vector at construction.
type Option func(*options)

// WithPrecision sets the significant digits kept by rounding operations.
// Values below 1 are ignored.
func WithPrecision(digits int32) Option {
	return func(o *options) {
		if digits > 0 {
			o.precision = digits
		}
	}
}

func applyOptions(opts []Option) options {
	o := options{precision: DefaultPrecision}
	for _, fn := range opts {
		fn(&o)
	}
	return o
}
