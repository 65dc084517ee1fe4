package gradient

import (
	"sort"

	"github.com/drawkit/gradient/internal/ftools"
)

// ColorStop represents a color at a specific position in a gradient.
type ColorStop struct {
	Offset float64 // Position in gradient, 0.0 to 1.0
	Color  Color   // Color at this position
}

// Less reports whether s sorts before o. Ordering is by offset alone;
// colors never participate in ordering.
func (s ColorStop) Less(o ColorStop) bool {
	return s.Offset < o.Offset
}

// normalizeStops builds the canonical stop sequence for a gradient from a
// start color, an end color and an optional raw stop list. The raw list may
// be unsorted and may contain duplicate or out-of-range offsets.
//
// The result is never empty, its offsets ascend strictly, the first stop is
// always (0, start) and the last stop, when there is more than one, is
// always (1, end). A gradient whose every color equals the start color
// collapses to the single start stop.
func normalizeStops(start, end Color, raw []ColorStop) []ColorStop {
	// The offset 0 slot is reserved for the explicit start color. Having at
	// least this one stop spares renderers an empty-sequence check.
	stops := make([]ColorStop, 1, len(raw)+2)
	stops[0] = ColorStop{Offset: 0, Color: start}

	if len(raw) == 0 {
		if end != start {
			stops = append(stops, ColorStop{Offset: 1, Color: end})
		}
		return stops
	}

	stops = append(stops, raw...)

	// The start stop is known smallest and must stay first, so only the
	// tail is sorted. Stable sort keeps the input order of equal offsets;
	// the compaction below then retains the first-listed of each group.
	tail := stops[1:]
	sort.SliceStable(tail, func(i, j int) bool { return tail[i].Less(tail[j]) })

	// Compact in place with two cursors over the sorted tail. A candidate
	// survives if its offset lies strictly inside (0, 1) and is not a
	// duplicate of the last kept offset. Offsets at 0 or 1 collide with the
	// reserved start/end slots and are dropped: the explicitly supplied
	// start and end colors always win.
	//
	// All colors being equal is tracked along the way, seeded from the
	// start/end pair and narrowed by every kept stop.
	kept := 0
	allSame := start == end
	for scan := 1; scan < len(stops); scan++ {
		off := stops[scan].Offset

		if ftools.LessOrEqual(off, 0) || ftools.MoreOrEqual(off, 1) {
			Logger().Debug("dropping gradient stop outside (0,1)", "offset", off)
			continue
		}
		if ftools.Equal(off, stops[kept].Offset) {
			Logger().Debug("dropping duplicate gradient stop", "offset", off)
			continue
		}

		kept++
		if kept != scan {
			stops[kept] = stops[scan]
		}
		allSame = allSame && stops[kept].Color == start
	}

	if allSame {
		// Flat gradient: every color equals the start color, so a single
		// stop carries all the information.
		return stops[:1]
	}

	stops = stops[:kept+1]

	// The end color is needed when interior stops survived (they must
	// interpolate toward something at 1) or when it differs from the start.
	if kept > 0 || end != start {
		stops = append(stops, ColorStop{Offset: 1, Color: end})
	}
	return stops
}
