package kernel

import "math"

var sumSquaresImpl = sumSquaresGeneric

func use(impl Impl) {
	active = impl
	switch impl {
	case FMA:
		sumSquaresImpl = sumSquaresFMA
	default:
		sumSquaresImpl = sumSquaresGeneric
	}
}

// Dot returns the sum of a[i]*b[i], rounding every product.
//
// Dot never fuses: a[i]*b[j] and b[j]*a[i] must round identically so
// antisymmetric pairs sum to exactly zero on every CPU.
//
// SAFETY: assumes len(a) == len(b).
func Dot(a, b []float64) float64 {
	b = b[:len(a)]
	var ret float64
	for i := range a {
		ret += a[i] * b[i]
	}

	return ret
}

// SumSquares returns the sum of a[i]*a[i]. It is the only kernel the
// FMA implementation changes.
func SumSquares(a []float64) float64 {
	return sumSquaresImpl(a)
}

func sumSquaresGeneric(a []float64) float64 {
	var ret float64
	for _, x := range a {
		ret += x * x
	}

	return ret
}

func sumSquaresFMA(a []float64) float64 {
	var ret float64
	for _, x := range a {
		ret = math.FMA(x, x, ret)
	}

	return ret
}

// Add stores a[i]+b[i] into dst.
//
// SAFETY: assumes len(dst) == len(a) == len(b).
func Add(dst, a, b []float64) {
	b = b[:len(a)]
	dst = dst[:len(a)]
	for i := range a {
		dst[i] = a[i] + b[i]
	}
}

// Sub stores a[i]-b[i] into dst.
func Sub(dst, a, b []float64) {
	b = b[:len(a)]
	dst = dst[:len(a)]
	for i := range a {
		dst[i] = a[i] - b[i]
	}
}

// Scale stores s*a[i] into dst.
func Scale(dst, a []float64, s float64) {
	dst = dst[:len(a)]
	for i := range a {
		dst[i] = s * a[i]
	}
}

// Div stores a[i]/s into dst.
func Div(dst, a []float64, s float64) {
	dst = dst[:len(a)]
	for i := range a {
		dst[i] = a[i] / s
	}
}

// MaxAbs returns the largest absolute value in a, or 0 for an empty slice.
func MaxAbs(a []float64) float64 {
	var m float64
	for _, x := range a {
		if ax := math.Abs(x); ax > m {
			m = ax
		}
	}

	return m
}

// Norm returns the Euclidean norm of a. A NaN coordinate yields NaN.
//
// The plain sum of squares is used when it is a normal, finite number.
// Otherwise the coordinates are rescaled by the largest magnitude first so
// tiny vectors do not collapse to zero and huge ones do not overflow.
func Norm(a []float64) float64 {
	ss := SumSquares(a)
	if math.IsNaN(ss) {
		return ss
	}
	if ss >= minSafeSquares && !math.IsInf(ss, 0) {
		return math.Sqrt(ss)
	}

	m := MaxAbs(a)
	if m == 0 || math.IsInf(m, 0) {
		return m
	}

	var scaled float64
	for _, x := range a {
		y := x / m
		scaled += y * y
	}

	return m * math.Sqrt(scaled)
}

// minSafeSquares is the smallest normal float64; sums of squares below it
// may have lost precision to underflow.
const minSafeSquares = 0x1p-1022
