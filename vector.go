package euclid

import (
	"math"
	"slices"
	"strconv"
	"strings"

	"github.com/hupe1980/euclid/internal/kernel"
)

// DefaultTolerance is the bound IsParallel applies to the sine of the angle
// between two vectors.
const DefaultTolerance = 1e-12

// Number is the set of Go types a Vector can be built from.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Vector is an immutable n-dimensional Euclidean vector.
//
// Vectors are values: every operation returns a new Vector and none of
// them modify the receiver or the argument, so a Vector may be shared
// between goroutines freely. The zero Vector has dimension 0 and is not
// a valid vector; operations on it fail with ErrInvalidArgument.
type Vector struct {
	coords []float64
}

// New returns a vector with the given coordinates. The slice is copied.
func New(coords ...float64) (Vector, error) {
	if len(coords) == 0 {
		return Vector{}, ErrEmptyCoordinates
	}
	for _, c := range coords {
		if math.IsNaN(c) || math.IsInf(c, 0) {
			return Vector{}, ErrNonNumeric
		}
	}
	return Vector{coords: slices.Clone(coords)}, nil
}

// MustNew is like New but panics on error.
func MustNew(coords ...float64) Vector {
	v, err := New(coords...)
	if err != nil {
		panic(err)
	}
	return v
}

// FromSlice converts a slice of any Go number type into a Vector.
func FromSlice[T Number](s []T) (Vector, error) {
	if len(s) == 0 {
		return Vector{}, ErrEmptyCoordinates
	}
	coords := make([]float64, len(s))
	for i, x := range s {
		coords[i] = float64(x)
	}
	return New(coords...)
}

// FromAny builds a Vector from a dynamically typed value. It accepts
// slices of Go number types and []any whose elements are all numbers.
// Anything else fails with ErrNonNumeric.
func FromAny(v any) (Vector, error) {
	switch s := v.(type) {
	case Vector:
		return New(s.coords...)
	case []float64:
		return FromSlice(s)
	case []float32:
		return FromSlice(s)
	case []int:
		return FromSlice(s)
	case []int8:
		return FromSlice(s)
	case []int16:
		return FromSlice(s)
	case []int32:
		return FromSlice(s)
	case []int64:
		return FromSlice(s)
	case []uint:
		return FromSlice(s)
	case []uint8:
		return FromSlice(s)
	case []uint16:
		return FromSlice(s)
	case []uint32:
		return FromSlice(s)
	case []uint64:
		return FromSlice(s)
	case []any:
		if len(s) == 0 {
			return Vector{}, ErrEmptyCoordinates
		}
		coords := make([]float64, len(s))
		for i, e := range s {
			f, ok := toFloat(e)
			if !ok {
				return Vector{}, ErrNonNumeric
			}
			coords[i] = f
		}
		return New(coords...)
	default:
		return Vector{}, ErrNonNumeric
	}
}

func toFloat(v any) (float64, bool) {
	switch x := v.(type) {
	case float64:
		return x, true
	case float32:
		return float64(x), true
	case int:
		return float64(x), true
	case int8:
		return float64(x), true
	case int16:
		return float64(x), true
	case int32:
		return float64(x), true
	case int64:
		return float64(x), true
	case uint:
		return float64(x), true
	case uint8:
		return float64(x), true
	case uint16:
		return float64(x), true
	case uint32:
		return float64(x), true
	case uint64:
		return float64(x), true
	default:
		return 0, false
	}
}

// Zero returns the zero vector of dimension dim.
func Zero(dim int) (Vector, error) {
	if dim < 1 {
		return Vector{}, ErrEmptyCoordinates
	}
	return Vector{coords: make([]float64, dim)}, nil
}

// Dimension returns the number of coordinates.
func (v Vector) Dimension() int {
	return len(v.coords)
}

// Coordinates returns a copy of the coordinates.
func (v Vector) Coordinates() []float64 {
	return slices.Clone(v.coords)
}

// At returns the i-th coordinate. It panics if i is out of range.
func (v Vector) At(i int) float64 {
	return v.coords[i]
}

// Equal reports whether v and w have exactly the same coordinates.
//
// The comparison is exact. Results of floating-point arithmetic rarely
// compare equal to hand-written literals; use ApproxEqual for those.
func (v Vector) Equal(w Vector) bool {
	return slices.Equal(v.coords, w.coords)
}

// ApproxEqual reports whether v and w have the same dimension and every
// pair of coordinates differs by at most tol.
func (v Vector) ApproxEqual(w Vector, tol float64) bool {
	if len(v.coords) != len(w.coords) {
		return false
	}
	for i := range v.coords {
		if math.Abs(v.coords[i]-w.coords[i]) > tol {
			return false
		}
	}
	return true
}

// IsZero reports whether v has coordinates and every one of them is zero.
// The zero Vector{} has none, so it is not the zero vector.
func (v Vector) IsZero() bool {
	if len(v.coords) == 0 {
		return false
	}
	for _, c := range v.coords {
		if c != 0 {
			return false
		}
	}
	return true
}

// String formats v as "Vector: (x, y, ...)".
func (v Vector) String() string {
	var sb strings.Builder
	sb.WriteString("Vector: (")
	for i, c := range v.coords {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(strconv.FormatFloat(c, 'g', -1, 64))
	}
	sb.WriteByte(')')
	return sb.String()
}

func (v Vector) check(w Vector) error {
	return CheckDimensions(len(v.coords), len(w.coords))
}

// finite wraps coords in a Vector, failing with ErrOverflow if arithmetic
// produced a NaN or an infinity.
func finite(coords []float64) (Vector, error) {
	for _, c := range coords {
		if math.IsNaN(c) || math.IsInf(c, 0) {
			return Vector{}, ErrOverflow
		}
	}
	return Vector{coords: coords}, nil
}

// Add returns v + w.
func (v Vector) Add(w Vector) (Vector, error) {
	if err := v.check(w); err != nil {
		return Vector{}, err
	}
	out := make([]float64, len(v.coords))
	kernel.Add(out, v.coords, w.coords)
	return finite(out)
}

// Sub returns v - w.
func (v Vector) Sub(w Vector) (Vector, error) {
	if err := v.check(w); err != nil {
		return Vector{}, err
	}
	out := make([]float64, len(v.coords))
	kernel.Sub(out, v.coords, w.coords)
	return finite(out)
}

// Scale returns c * v. It fails with ErrNonNumeric if c is NaN or an
// infinity, and with ErrOverflow if a coordinate of the product is.
func (v Vector) Scale(c float64) (Vector, error) {
	if len(v.coords) == 0 {
		return Vector{}, ErrEmptyCoordinates
	}
	if math.IsNaN(c) || math.IsInf(c, 0) {
		return Vector{}, ErrNonNumeric
	}
	out := make([]float64, len(v.coords))
	kernel.Scale(out, v.coords, c)
	return finite(out)
}

// Magnitude returns the Euclidean length of v. It is 0 for Vector{} and
// +Inf only when the true length exceeds math.MaxFloat64.
func (v Vector) Magnitude() float64 {
	return kernel.Norm(v.coords)
}

// Normalize returns the unit vector in the direction of v.
func (v Vector) Normalize() (Vector, error) {
	if len(v.coords) == 0 {
		return Vector{}, ErrEmptyCoordinates
	}
	if v.IsZero() {
		return Vector{}, ErrZeroVector
	}
	// 1/mag overflows for subnormal magnitudes.
	out := make([]float64, len(v.coords))
	mag := v.Magnitude()
	if math.IsInf(mag, 1) {
		kernel.Div(out, v.coords, kernel.MaxAbs(v.coords))
		mag = kernel.Norm(out)
		kernel.Div(out, out, mag)
	} else {
		kernel.Div(out, v.coords, mag)
	}
	return Vector{coords: out}, nil
}

// Distance returns the Euclidean distance between v and w.
func (v Vector) Distance(w Vector) (float64, error) {
	d, err := v.Sub(w)
	if err != nil {
		return 0, err
	}
	return d.Magnitude(), nil
}

// Dot returns the inner product of v and w. It fails with ErrOverflow if
// the sum does not fit in a float64.
func (v Vector) Dot(w Vector) (float64, error) {
	if err := v.check(w); err != nil {
		return 0, err
	}
	d := kernel.Dot(v.coords, w.coords)
	if math.IsNaN(d) || math.IsInf(d, 0) {
		return 0, ErrOverflow
	}
	return d, nil
}

// units returns v and w normalized.
func (v Vector) units(w Vector) (Vector, Vector, error) {
	if err := v.check(w); err != nil {
		return Vector{}, Vector{}, err
	}
	u1, err := v.Normalize()
	if err != nil {
		return Vector{}, Vector{}, ErrAngleWithZeroVector
	}
	u2, err := w.Normalize()
	if err != nil {
		return Vector{}, Vector{}, ErrAngleWithZeroVector
	}
	return u1, u2, nil
}

// cosine returns the cosine of the angle between v and w, clamped to
// [-1, 1].
func (v Vector) cosine(w Vector) (float64, error) {
	u1, u2, err := v.units(w)
	if err != nil {
		return 0, err
	}
	return clamp(kernel.Dot(u1.coords, u2.coords)), nil
}

func clamp(c float64) float64 {
	return max(-1, min(1, c))
}

// AngleWith returns the angle between v and w in radians, in [0, π].
// It fails with ErrAngleWithZeroVector if either vector is zero.
func (v Vector) AngleWith(w Vector) (float64, error) {
	c, err := v.cosine(w)
	if err != nil {
		return 0, err
	}
	return math.Acos(c), nil
}

// AngleWithDegrees is like AngleWith but returns degrees.
func (v Vector) AngleWithDegrees(w Vector) (float64, error) {
	rad, err := v.AngleWith(w)
	if err != nil {
		return 0, err
	}
	return rad * (180 / math.Pi), nil
}

// IsParallel reports whether v and w point in the same or exactly opposite
// directions. The zero vector is parallel to every vector.
func (v Vector) IsParallel(w Vector) (bool, error) {
	return v.IsParallelWithin(w, DefaultTolerance)
}

// IsParallelWithin is like IsParallel but the angle θ is accepted as 0 or π
// when |sin θ| <= tol.
//
// sin θ is the length of the rejection of one unit vector from the other.
func (v Vector) IsParallelWithin(w Vector, tol float64) (bool, error) {
	if err := v.check(w); err != nil {
		return false, err
	}
	if v.IsZero() || w.IsZero() {
		return true, nil
	}
	u1, u2, err := v.units(w)
	if err != nil {
		return false, err
	}
	r := make([]float64, len(u1.coords))
	kernel.Scale(r, u1.coords, kernel.Dot(u1.coords, u2.coords))
	kernel.Sub(r, u2.coords, r)
	return kernel.Norm(r) <= tol, nil
}

// IsOrthogonal reports whether the dot product of v and w is exactly zero.
// The zero vector is orthogonal to every vector.
func (v Vector) IsOrthogonal(w Vector) (bool, error) {
	return v.IsOrthogonalWithin(w, 0)
}

// IsOrthogonalWithin reports whether |v·w| <= tol.
func (v Vector) IsOrthogonalWithin(w Vector, tol float64) (bool, error) {
	d, err := v.Dot(w)
	if err != nil {
		return false, err
	}
	return math.Abs(d) <= tol, nil
}

// ProjectOnto returns the component of v parallel to basis. It fails with
// ErrZeroVector if basis is the zero vector.
func (v Vector) ProjectOnto(basis Vector) (Vector, error) {
	if err := v.check(basis); err != nil {
		return Vector{}, err
	}
	u, err := basis.Normalize()
	if err != nil {
		return Vector{}, err
	}
	d := kernel.Dot(u.coords, v.coords)
	if math.IsInf(d, 0) {
		return Vector{}, ErrOverflow
	}
	return u.Scale(d)
}

// RejectFrom returns the component of v orthogonal to basis, so that
// v == v.ProjectOnto(basis) + v.RejectFrom(basis).
func (v Vector) RejectFrom(basis Vector) (Vector, error) {
	p, err := v.ProjectOnto(basis)
	if err != nil {
		return Vector{}, err
	}
	return v.Sub(p)
}

// Cross returns the right-handed cross product v × w. Both vectors must be
// 3-dimensional.
func (v Vector) Cross(w Vector) (Vector, error) {
	if len(v.coords) == 0 || len(w.coords) == 0 {
		return Vector{}, ErrEmptyCoordinates
	}
	for _, x := range []Vector{v, w} {
		if len(x.coords) != 3 {
			return Vector{}, &ErrInvalidDimension{Op: "cross product", Dimension: len(x.coords), Required: 3}
		}
	}
	x1, y1, z1 := v.coords[0], v.coords[1], v.coords[2]
	x2, y2, z2 := w.coords[0], w.coords[1], w.coords[2]
	return finite([]float64{
		y1*z2 - y2*z1,
		-(x1*z2 - x2*z1),
		x1*y2 - x2*y1,
	})
}

// ParallelogramArea returns the area of the parallelogram spanned by v and w.
func (v Vector) ParallelogramArea(w Vector) (float64, error) {
	c, err := v.Cross(w)
	if err != nil {
		return 0, err
	}
	return c.Magnitude(), nil
}

// TriangleArea returns the area of the triangle spanned by v and w.
func (v Vector) TriangleArea(w Vector) (float64, error) {
	a, err := v.ParallelogramArea(w)
	if err != nil {
		return 0, err
	}
	return a / 2, nil
}
