package decimalvec

import (
	"fmt"
	"math"
	"slices"
	"strings"

	"github.com/hupe1980/euclid"
	"github.com/shopspring/decimal"
)

// Vector is an immutable vector of decimal coordinates.
//
// Results of binary operations carry the receiver's precision.
type Vector struct {
	coords    []decimal.Decimal
	precision int32
}

// New returns a vector with the given coordinates. The slice is copied.
func New(coords []decimal.Decimal, opts ...Option) (Vector, error) {
	if len(coords) == 0 {
		return Vector{}, euclid.ErrEmptyCoordinates
	}
	o := applyOptions(opts)
	return Vector{coords: slices.Clone(coords), precision: o.precision}, nil
}

// FromFloats converts float64 coordinates to decimals.
func FromFloats(coords []float64, opts ...Option) (Vector, error) {
	if len(coords) == 0 {
		return Vector{}, euclid.ErrEmptyCoordinates
	}
	ds := make([]decimal.Decimal, len(coords))
	for i, c := range coords {
		if math.IsNaN(c) || math.IsInf(c, 0) {
			return Vector{}, euclid.ErrNonNumeric
		}
		ds[i] = decimal.NewFromFloat(c)
	}
	return New(ds, opts...)
}

// Parse builds a vector from decimal strings such as "-7.579".
func Parse(values []string, opts ...Option) (Vector, error) {
	if len(values) == 0 {
		return Vector{}, euclid.ErrEmptyCoordinates
	}
	ds := make([]decimal.Decimal, len(values))
	for i, s := range values {
		d, err := decimal.NewFromString(strings.TrimSpace(s))
		if err != nil {
			return Vector{}, fmt.Errorf("%w: %w", euclid.ErrNonNumeric, err)
		}
		ds[i] = d
	}
	return New(ds, opts...)
}

// MustParse is like Parse with default options but panics on error.
func MustParse(values ...string) Vector {
	v, err := Parse(values)
	if err != nil {
		panic(err)
	}
	return v
}

// FromVector converts a float64 vector.
func FromVector(v euclid.Vector, opts ...Option) (Vector, error) {
	return FromFloats(v.Coordinates(), opts...)
}

// Float converts v to a float64 vector. Coordinates beyond float64 range
// fail with euclid.ErrNonNumeric.
func (v Vector) Float() (euclid.Vector, error) {
	fs := make([]float64, len(v.coords))
	for i, c := range v.coords {
		fs[i] = c.InexactFloat64()
	}
	return euclid.New(fs...)
}

// Precision returns the significant digits kept by rounding operations.
func (v Vector) Precision() int32 {
	return v.precision
}

// Dimension returns the number of coordinates.
func (v Vector) Dimension() int {
	return len(v.coords)
}

// Coordinates returns a copy of the coordinates.
func (v Vector) Coordinates() []decimal.Decimal {
	return slices.Clone(v.coords)
}

// At returns the i-th coordinate.
func (v Vector) At(i int) decimal.Decimal {
	return v.coords[i]
}

// Equal reports whether v and w have numerically equal coordinates.
// Precision is not compared.
func (v Vector) Equal(w Vector) bool {
	return slices.EqualFunc(v.coords, w.coords, decimal.Decimal.Equal)
}

// IsZero reports whether v has coordinates and all of them are zero.
func (v Vector) IsZero() bool {
	if len(v.coords) == 0 {
		return false
	}
	for _, c := range v.coords {
		if !c.IsZero() {
			return false
		}
	}
	return true
}

func (v Vector) String() string {
	parts := make([]string, len(v.coords))
	for i, c := range v.coords {
		parts[i] = c.String()
	}
	return "Vector: (" + strings.Join(parts, ", ") + ")"
}

func (v Vector) with(coords []decimal.Decimal) Vector {
	return Vector{coords: coords, precision: v.precision}
}

func (v Vector) check(w Vector) error {
	return euclid.CheckDimensions(len(v.coords), len(w.coords))
}

func (v Vector) zip(w Vector, fn func(a, b decimal.Decimal) decimal.Decimal) (Vector, error) {
	if err := v.check(w); err != nil {
		return Vector{}, err
	}
	out := make([]decimal.Decimal, len(v.coords))
	for i := range out {
		out[i] = fn(v.coords[i], w.coords[i])
	}
	return v.with(out), nil
}

// Add returns v + w.
func (v Vector) Add(w Vector) (Vector, error) {
	return v.zip(w, decimal.Decimal.Add)
}

// Sub returns v - w.
func (v Vector) Sub(w Vector) (Vector, error) {
	return v.zip(w, decimal.Decimal.Sub)
}

// Scale returns c * v.
func (v Vector) Scale(c decimal.Decimal) (Vector, error) {
	if len(v.coords) == 0 {
		return Vector{}, euclid.ErrEmptyCoordinates
	}
	out := make([]decimal.Decimal, len(v.coords))
	for i, x := range v.coords {
		out[i] = x.Mul(c)
	}
	return v.with(out), nil
}

// Dot returns the exact inner product of v and w.
func (v Vector) Dot(w Vector) (decimal.Decimal, error) {
	if err := v.check(w); err != nil {
		return decimal.Zero, err
	}
	return dot(v.coords, w.coords), nil
}

func dot(a, b []decimal.Decimal) decimal.Decimal {
	sum := decimal.Zero
	for i := range a {
		sum = sum.Add(a[i].Mul(b[i]))
	}
	return sum
}

// Magnitude returns the Euclidean length of v rounded to its precision.
func (v Vector) Magnitude() decimal.Decimal {
	return sqrt(dot(v.coords, v.coords), v.precision)
}

// Normalize returns the unit vector in the direction of v.
func (v Vector) Normalize() (Vector, error) {
	if len(v.coords) == 0 {
		return Vector{}, euclid.ErrEmptyCoordinates
	}
	if v.IsZero() {
		return Vector{}, euclid.ErrZeroVector
	}
	mag := v.Magnitude()
	out := make([]decimal.Decimal, len(v.coords))
	for i, x := range v.coords {
		out[i] = quoSig(x, mag, v.precision)
	}
	return v.with(out), nil
}

var (
	one    = decimal.NewFromInt(1)
	negOne = decimal.NewFromInt(-1)
)

func (v Vector) cosine(w Vector) (decimal.Decimal, error) {
	if err := v.check(w); err != nil {
		return decimal.Zero, err
	}
	u1, err := v.Normalize()
	if err != nil {
		return decimal.Zero, euclid.ErrAngleWithZeroVector
	}
	u2, err := w.Normalize()
	if err != nil {
		return decimal.Zero, euclid.ErrAngleWithZeroVector
	}
	return decimal.Min(one, decimal.Max(negOne, dot(u1.coords, u2.coords))), nil
}

// AngleWith returns the angle between v and w in radians.
func (v Vector) AngleWith(w Vector) (float64, error) {
	c, err := v.cosine(w)
	if err != nil {
		return 0, err
	}
	return math.Acos(c.InexactFloat64()), nil
}

// AngleWithDegrees is like AngleWith but returns degrees.
func (v Vector) AngleWithDegrees(w Vector) (float64, error) {
	rad, err := v.AngleWith(w)
	if err != nil {
		return 0, err
	}
	return rad * (180 / math.Pi), nil
}

// IsParallel reports whether v and w point in the same or opposite
// directions: every 2x2 minor v[i]*w[j] - v[j]*w[i] is zero. The zero
// vector is parallel to every vector.
func (v Vector) IsParallel(w Vector) (bool, error) {
	if err := v.check(w); err != nil {
		return false, err
	}
	for i := range v.coords {
		for j := i + 1; j < len(v.coords); j++ {
			if !v.coords[i].Mul(w.coords[j]).Equal(v.coords[j].Mul(w.coords[i])) {
				return false, nil
			}
		}
	}
	return true, nil
}

// IsOrthogonal reports whether v·w is zero.
func (v Vector) IsOrthogonal(w Vector) (bool, error) {
	d, err := v.Dot(w)
	if err != nil {
		return false, err
	}
	return d.IsZero(), nil
}

// ProjectOnto returns the component of v parallel to basis.
func (v Vector) ProjectOnto(basis Vector) (Vector, error) {
	if err := v.check(basis); err != nil {
		return Vector{}, err
	}
	u, err := basis.Normalize()
	if err != nil {
		return Vector{}, err
	}
	p, err := u.Scale(dot(u.coords, v.coords))
	if err != nil {
		return Vector{}, err
	}
	return v.with(p.coords), nil
}

// RejectFrom returns the component of v orthogonal to basis. The sum
// v.ProjectOnto(basis) + v.RejectFrom(basis) equals v exactly.
func (v Vector) RejectFrom(basis Vector) (Vector, error) {
	p, err := v.ProjectOnto(basis)
	if err != nil {
		return Vector{}, err
	}
	return v.Sub(p)
}

// Cross returns the right-handed cross product v × w of two 3-dimensional
// vectors.
func (v Vector) Cross(w Vector) (Vector, error) {
	if len(v.coords) == 0 || len(w.coords) == 0 {
		return Vector{}, euclid.ErrEmptyCoordinates
	}
	for _, x := range []Vector{v, w} {
		if len(x.coords) != 3 {
			return Vector{}, &euclid.ErrInvalidDimension{Op: "cross product", Dimension: len(x.coords), Required: 3}
		}
	}
	x1, y1, z1 := v.coords[0], v.coords[1], v.coords[2]
	x2, y2, z2 := w.coords[0], w.coords[1], w.coords[2]
	return v.with([]decimal.Decimal{
		y1.Mul(z2).Sub(y2.Mul(z1)),
		x1.Mul(z2).Sub(x2.Mul(z1)).Neg(),
		x1.Mul(y2).Sub(x2.Mul(y1)),
	}), nil
}
