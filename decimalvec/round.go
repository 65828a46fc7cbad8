package decimalvec

import "github.com/shopspring/decimal"

// order returns the n for which 10^(n-1) <= |d| < 10^n. It is 0 for zero.
func order(d decimal.Decimal) int32 {
	if d.IsZero() {
		return 0
	}
	return d.Exponent() + int32(d.NumDigits())
}

// roundSig rounds d to digits significant digits.
func roundSig(d decimal.Decimal, digits int32) decimal.Decimal {
	if d.IsZero() {
		return d
	}
	return d.Round(digits - order(d))
}

// quoSig returns x / y rounded to digits significant digits. y must not be
// zero.
func quoSig(x, y decimal.Decimal, digits int32) decimal.Decimal {
	if x.IsZero() {
		return decimal.Zero
	}
	// one digit beyond the quotient's smallest possible order
	places := digits - order(x) + order(y) + 1
	return roundSig(x.DivRound(y, places), digits)
}
