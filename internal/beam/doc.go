// Package beam evaluates the internal response of a mathematically
// continuous beam segment in closed form.
//
// A [Segment] carries the boundary values a global solver computed for one
// continuous span (start shear, moment, axial force, slope, displacement)
// together with the linearly varying distributed load across the span.
// Successive integration of the equilibrium relations
//
//	dV/dx = -w(x)   dM/dx = V(x)   dN/dx = q(x)
//	dθ/dx = M(x)/EI dδ/dx = θ(x)
//
// yields polynomials of degree at most five, so every query is a fixed
// number of arithmetic operations and extrema are found exactly by
// evaluating a small closed-form candidate set (endpoints plus the real
// in-range roots of the derivative).
//
// Segments are immutable after construction and safe for concurrent use.
package beam
