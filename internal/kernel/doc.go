// Package kernel provides the float64 slice kernels behind euclid.Vector.
//
// The implementation is selected once at package init:
//   - FMA: fused multiply-add accumulation of sums of squares, chosen when
//     the CPU executes
//     math.FMA in hardware (x86-64 FMA3, ARM64). Dot products are never
//     fused.
//   - Generic: plain multiply and add
//
// Set EUCLID_KERNEL=generic or EUCLID_KERNEL=fma to override the choice.
// An override naming an implementation the CPU cannot run is ignored.
//
// This is an internal package. All kernels assume their slice arguments
// have equal length; callers must check.
package kernel
