// Package interleave merges several ordered sequences into one so that every
// source stays evenly spread across the output.
//
// The merge runs for T steps, where T is the total number of elements. At
// step i a source of length L contributes its next element when it has so far
// emitted fewer than L*i/T elements. The comparison is done in integers
// (emitted*T < L*i), so the result never depends on floating point rounding.
// Sources are visited in argument order at every step, which makes the output
// fully deterministic.
package interleave
