package decimalvec

import (
	"math"

	"github.com/shopspring/decimal"
)

var half = decimal.New(5, -1)

const (
	maxSqrtIterations = 200
	sqrtGuardDigits   = 4
)

// sqrt returns the square root of x >= 0 rounded to digits significant
// digits, by Newton iteration seeded from the float64 estimate.
func sqrt(x decimal.Decimal, digits int32) decimal.Decimal {
	if x.Sign() <= 0 {
		return decimal.Zero
	}

	guard := digits + sqrtGuardDigits
	z := seed(x)
	for range maxSqrtIterations {
		next := roundSig(z.Add(quoSig(x, z, guard)).Mul(half), guard)
		if next.Equal(z) {
			break
		}
		z = next
	}

	return roundSig(z, digits)
}

func seed(x decimal.Decimal) decimal.Decimal {
	f := math.Sqrt(x.InexactFloat64())
	if f > 0 && !math.IsInf(f, 0) {
		return decimal.NewFromFloat(f)
	}
	// out of float64 range: 10^(half the order of magnitude)
	return decimal.New(1, order(x)/2)
}
