// Package ftools provides tolerance-based floating point comparisons for
// gradient stop offsets.
//
// All comparisons share one epsilon so that "at most 0", "at least 1" and
// "equal to the previous offset" checks cannot disagree with each other for
// the same pair of values.
package ftools

import "math"

// Epsilon is the shared comparison tolerance. It absorbs accumulated
// floating point noise from upstream producers without merging stops that
// are meaningfully distinct.
const Epsilon = 1e-10

// Equal reports whether a and b differ by at most Epsilon.
func Equal(a, b float64) bool {
	return math.Abs(a-b) <= Epsilon
}

// Less reports whether a is smaller than b by more than Epsilon.
func Less(a, b float64) bool {
	return a < b && !Equal(a, b)
}

// More reports whether a is greater than b by more than Epsilon.
func More(a, b float64) bool {
	return a > b && !Equal(a, b)
}

// LessOrEqual reports whether a is smaller than b or within Epsilon of it.
func LessOrEqual(a, b float64) bool {
	return a < b || Equal(a, b)
}

// MoreOrEqual reports whether a is greater than b or within Epsilon of it.
func MoreOrEqual(a, b float64) bool {
	return a > b || Equal(a, b)
}
