// Package euclid provides immutable n-dimensional Euclidean vectors.
//
// A Vector is built from a non-empty sequence of finite coordinates and
// never changes afterwards. Every operation returns a new Vector or a
// scalar, so vectors can be shared between goroutines without locking.
//
// # Quick Start
//
//	v := euclid.MustNew(3, 4)
//	w, _ := euclid.New(1, 0)
//
//	v.Magnitude()         // 5
//	u, _ := v.Normalize() // (0.6, 0.8)
//	d, _ := v.Dot(w)      // 3
//	θ, _ := v.AngleWith(w)
//	p, _ := v.ProjectOnto(w) // (3, 0)
//	r, _ := v.RejectFrom(w)  // (0, 4)
//
// # Errors
//
// Failures are returned, never panicked:
//
//   - ErrInvalidArgument (ErrEmptyCoordinates, ErrNonNumeric): bad input
//   - *ErrDimensionMismatch: operands of different dimension
//   - ErrZeroVector: normalizing, or projecting onto, the zero vector
//   - ErrAngleWithZeroVector: an angle involving the zero vector
//   - *ErrInvalidDimension: cross product of non-3-dimensional vectors
//
// # Exactness
//
// Equal and IsOrthogonal compare exactly. IsParallel accepts an angle of
// 0 or π within DefaultTolerance of the cosine. The *Within variants and
// ApproxEqual take explicit tolerances. For exact decimal arithmetic see
// package decimalvec.
package euclid
