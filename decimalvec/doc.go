// Package decimalvec provides euclid vectors over decimal coordinates.
//
// Addition, subtraction, multiplication and dot products are exact.
// Division and square roots (Normalize, Magnitude and everything built on
// them) round to the vector's precision, a count of significant digits set
// with WithPrecision. A non-zero vector therefore never has a zero
// magnitude, however small its coordinates. Because
// multiplication is exact, IsParallel and IsOrthogonal need no tolerance.
//
// Errors are the ones defined by package euclid.
package decimalvec
