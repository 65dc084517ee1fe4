package gradient

import (
	"slices"
	"sync"
)

// Style specifies the geometric variant of a gradient.
type Style int

const (
	// StyleLinear specifies a gradient along a single axis.
	StyleLinear Style = iota
	// StyleAxial specifies a gradient mirrored around a center axis.
	StyleAxial
	// StyleRadial specifies a circular gradient around a center point.
	StyleRadial
	// StyleElliptical specifies an elliptical gradient around a center point.
	StyleElliptical
	// StyleSquare specifies a square gradient around a center point.
	StyleSquare
	// StyleRect specifies a rectangular gradient around a center point.
	StyleRect
)

// attrData is the shared storage behind Attribute handles. It is never
// modified after construction, so any number of handles can read it
// concurrently.
type attrData struct {
	border  float64
	offsetX float64
	offsetY float64
	angle   float64
	stops   []ColorStop
	style   Style
	steps   int
}

// Attribute describes a gradient fill: its geometric style, shape
// parameters, and the canonical color stop sequence. Attribute is an
// immutable value; copying it is cheap and copies share storage.
//
// The zero value behaves like Default().
type Attribute struct {
	data *attrData
}

var (
	defaultOnce sync.Once
	defaultData *attrData
)

// theDefault returns the process-wide default storage, created on first
// use. Every Default() handle and every zero-value Attribute resolves to
// this one instance; IsDefault tests against it by identity.
func theDefault() *attrData {
	defaultOnce.Do(func() {
		defaultData = &attrData{
			style: StyleLinear,
			stops: []ColorStop{{Offset: 0, Color: Black}},
		}
	})
	return defaultData
}

// New creates a gradient attribute from shape parameters and color data.
//
// start and end are the colors at offsets 0 and 1. raw optionally supplies
// interior stops; it may be unsorted and may contain duplicate or
// out-of-range offsets, which are corrected or dropped during
// normalization (see Stops for the guarantees). steps is the number of
// discrete rendering bands, 0 meaning smooth.
func New(style Style, border, offsetX, offsetY, angle float64, start, end Color, raw []ColorStop, steps int) Attribute {
	return Attribute{data: &attrData{
		border:  border,
		offsetX: offsetX,
		offsetY: offsetY,
		angle:   angle,
		stops:   normalizeStops(start, end, raw),
		style:   style,
		steps:   steps,
	}}
}

// Default returns the process-wide default attribute: linear style, all
// shape parameters zero, a single black stop at offset 0. Repeated calls
// return handles to the same storage.
func Default() Attribute {
	return Attribute{data: theDefault()}
}

func (a Attribute) impl() *attrData {
	if a.data == nil {
		return theDefault()
	}
	return a.data
}

// IsDefault reports whether a shares storage with the process-wide default
// attribute. This is an identity test, not a value comparison: an
// attribute built with New is never the default, even if its fields match
// the default's field for field.
func (a Attribute) IsDefault() bool {
	return a.impl() == theDefault()
}

// Style returns the geometric variant of the gradient.
func (a Attribute) Style() Style { return a.impl().style }

// Border returns the border inset parameter.
func (a Attribute) Border() float64 { return a.impl().border }

// OffsetX returns the horizontal center offset parameter.
func (a Attribute) OffsetX() float64 { return a.impl().offsetX }

// OffsetY returns the vertical center offset parameter.
func (a Attribute) OffsetY() float64 { return a.impl().offsetY }

// Angle returns the gradient rotation angle.
func (a Attribute) Angle() float64 { return a.impl().angle }

// Steps returns the number of discrete rendering bands, 0 meaning smooth.
func (a Attribute) Steps() int { return a.impl().steps }

// Stops returns a copy of the canonical stop sequence. The sequence is
// never empty, its offsets ascend strictly, the first stop has offset 0
// and, when more than one stop exists, the last has offset 1.
func (a Attribute) Stops() []ColorStop {
	return slices.Clone(a.impl().stops)
}

// HasSingleColor reports whether the gradient degenerates to a single flat
// color, i.e. the canonical sequence has fewer than two stops. All-same-
// color inputs were already collapsed during construction, so the length
// check is sufficient.
func (a Attribute) HasSingleColor() bool {
	return len(a.impl().stops) < 2
}

// Equal reports whether two attributes are equal.
//
// The default attribute is a distinct state, not just a value: it never
// compares equal to an attribute built with New, even one whose fields all
// match. Two non-default attributes are equal when every field, including
// the canonical stop sequence, matches exactly.
func (a Attribute) Equal(b Attribute) bool {
	if a.IsDefault() != b.IsDefault() {
		return false
	}
	da, db := a.impl(), b.impl()
	if da == db {
		return true
	}
	return da.style == db.style &&
		da.border == db.border &&
		da.offsetX == db.offsetX &&
		da.offsetY == db.offsetY &&
		da.angle == db.angle &&
		da.steps == db.steps &&
		slices.Equal(da.stops, db.stops)
}
