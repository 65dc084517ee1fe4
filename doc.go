// Package gradient defines the immutable fill-gradient attribute consumed
// by 2D drawing pipelines.
//
// # Overview
//
// A gradient is described by a geometric Style, a few shape parameters
// (border, offsets, angle, step count) and a sequence of color stops along
// the [0, 1] interpolation axis. Callers hand in a start color, an end
// color and an optional raw stop list; construction normalizes all of it
// into a canonical sequence that renderers can consume without further
// validation: non-empty, strictly ascending offsets, the start color
// pinned at 0.0 and the end color (when present) pinned at 1.0.
//
// # Quick Start
//
//	import "github.com/drawkit/gradient"
//
//	// A plain black-to-white linear gradient.
//	attr := gradient.New(gradient.StyleLinear, 0, 0, 0, 0,
//	    gradient.Black, gradient.White, nil, 0)
//
//	for _, stop := range attr.Stops() {
//	    // stop.Offset ascends strictly from 0.
//	}
//
// Attribute values are immutable and cheap to copy: copies share the same
// underlying storage. Default() returns a process-wide default attribute
// that callers can use as a distinct "unset" state; see IsDefault.
//
// # Scope
//
// The package performs no rendering. Sampling stops into pixels, color
// space conversion and persistence all belong to the drawing pipeline
// built on top of these values.
package gradient
