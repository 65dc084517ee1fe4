package gradient

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestColorStopLess(t *testing.T) {
	a := ColorStop{Offset: 0.2, Color: Red}
	b := ColorStop{Offset: 0.7, Color: Blue}
	if !a.Less(b) {
		t.Error("ColorStop.Less() = false for smaller offset, want true")
	}
	if b.Less(a) {
		t.Error("ColorStop.Less() = true for larger offset, want false")
	}
	// Colors do not participate in ordering.
	c := ColorStop{Offset: 0.2, Color: Green}
	if a.Less(c) || c.Less(a) {
		t.Error("ColorStop.Less() ordered stops with equal offsets")
	}
}

func TestNormalizeStops(t *testing.T) {
	tests := []struct {
		name  string
		start Color
		end   Color
		raw   []ColorStop
		want  []ColorStop
	}{
		{
			name:  "no raw stops, same colors",
			start: Black,
			end:   Black,
			want:  []ColorStop{{0, Black}},
		},
		{
			name:  "no raw stops, different colors",
			start: Black,
			end:   White,
			want:  []ColorStop{{0, Black}, {1, White}},
		},
		{
			name:  "interior stop forces end even when start equals end",
			start: Red,
			end:   Red,
			raw:   []ColorStop{{0.5, Blue}},
			want:  []ColorStop{{0, Red}, {0.5, Blue}, {1, Red}},
		},
		{
			name:  "out of range and duplicates dropped",
			start: Red,
			end:   Blue,
			raw: []ColorStop{
				{-0.2, Green},
				{0.3, Green},
				{0.3, Green},
				{1.2, Yellow},
			},
			want: []ColorStop{{0, Red}, {0.3, Green}, {1, Blue}},
		},
		{
			name:  "unsorted raw stops are ordered",
			start: Black,
			end:   White,
			raw: []ColorStop{
				{0.75, Blue},
				{0.25, Red},
				{0.5, Green},
			},
			want: []ColorStop{
				{0, Black},
				{0.25, Red},
				{0.5, Green},
				{0.75, Blue},
				{1, White},
			},
		},
		{
			name:  "raw stop at 0 loses to explicit start color",
			start: Red,
			end:   Blue,
			raw:   []ColorStop{{0, Green}, {0.5, Yellow}},
			want:  []ColorStop{{0, Red}, {0.5, Yellow}, {1, Blue}},
		},
		{
			name:  "raw stop at 1 loses to explicit end color",
			start: Red,
			end:   Blue,
			raw:   []ColorStop{{0.5, Yellow}, {1, Green}},
			want:  []ColorStop{{0, Red}, {0.5, Yellow}, {1, Blue}},
		},
		{
			name:  "all colors identical collapses to one stop",
			start: Green,
			end:   Green,
			raw:   []ColorStop{{0.3, Green}, {0.6, Green}},
			want:  []ColorStop{{0, Green}},
		},
		{
			name:  "identical interior colors but distinct end survive",
			start: Green,
			end:   White,
			raw:   []ColorStop{{0.3, Green}, {0.6, Green}},
			want: []ColorStop{
				{0, Green},
				{0.3, Green},
				{0.6, Green},
				{1, White},
			},
		},
		{
			name:  "only out-of-range raw stops, same colors",
			start: Red,
			end:   Red,
			raw:   []ColorStop{{-1, Green}, {2, Blue}},
			want:  []ColorStop{{0, Red}},
		},
		{
			name:  "only out-of-range raw stops, different colors",
			start: Red,
			end:   Blue,
			raw:   []ColorStop{{-1, Green}, {2, Yellow}},
			want:  []ColorStop{{0, Red}, {1, Blue}},
		},
		{
			name:  "duplicate offsets keep the first listed",
			start: Black,
			end:   White,
			raw:   []ColorStop{{0.5, Green}, {0.5, Yellow}, {0.5, Red}},
			want:  []ColorStop{{0, Black}, {0.5, Green}, {1, White}},
		},
		{
			name:  "offsets within epsilon of 0 and 1 are dropped",
			start: Red,
			end:   Blue,
			raw:   []ColorStop{{1e-12, Green}, {1 - 1e-12, Yellow}},
			want:  []ColorStop{{0, Red}, {1, Blue}},
		},
		{
			name:  "offsets within epsilon of each other collapse",
			start: Red,
			end:   Blue,
			raw:   []ColorStop{{0.5, Green}, {0.5 + 1e-12, Yellow}},
			want:  []ColorStop{{0, Red}, {0.5, Green}, {1, Blue}},
		},
		{
			name:  "offsets beyond epsilon stay distinct",
			start: Red,
			end:   Blue,
			raw:   []ColorStop{{0.5, Green}, {0.5 + 1e-6, Yellow}},
			want: []ColorStop{
				{0, Red},
				{0.5, Green},
				{0.5 + 1e-6, Yellow},
				{1, Blue},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := normalizeStops(tt.start, tt.end, tt.raw)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("normalizeStops() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

// TestNormalizeStopsInvariants checks the structural guarantees of the
// canonical sequence against a spread of malformed inputs.
func TestNormalizeStopsInvariants(t *testing.T) {
	inputs := []struct {
		name  string
		start Color
		end   Color
		raw   []ColorStop
	}{
		{"nil raw", Red, Blue, nil},
		{"empty raw", Red, Red, []ColorStop{}},
		{"reversed", Black, White, []ColorStop{{0.9, Red}, {0.1, Blue}}},
		{"all duplicates", Black, White, []ColorStop{{0.5, Red}, {0.5, Blue}, {0.5, Green}}},
		{"all out of range", Red, Blue, []ColorStop{{-5, Green}, {7, Yellow}}},
		{"boundary claims", Red, Blue, []ColorStop{{0, White}, {1, Black}}},
		{"mixed mess", Cyan, Magenta, []ColorStop{
			{1.5, Red}, {0.5, Blue}, {-0.5, Green}, {0.5, Yellow}, {0.2, White},
		}},
	}

	for _, tt := range inputs {
		t.Run(tt.name, func(t *testing.T) {
			got := normalizeStops(tt.start, tt.end, tt.raw)

			if len(got) == 0 {
				t.Fatal("normalizeStops() returned empty sequence")
			}
			if got[0].Offset != 0 {
				t.Errorf("first offset = %v, want 0", got[0].Offset)
			}
			if got[0].Color != tt.start {
				t.Errorf("first color = %v, want start color %v", got[0].Color, tt.start)
			}
			for i := 1; i < len(got); i++ {
				if got[i].Offset <= got[i-1].Offset {
					t.Errorf("offsets not strictly ascending at %d: %v then %v",
						i, got[i-1].Offset, got[i].Offset)
				}
			}
			if last := got[len(got)-1]; len(got) > 1 {
				if last.Offset != 1 {
					t.Errorf("last offset = %v, want 1", last.Offset)
				}
				if last.Color != tt.end {
					t.Errorf("last color = %v, want end color %v", last.Color, tt.end)
				}
			}
		})
	}
}

func TestNormalizeStopsDoesNotModifyInput(t *testing.T) {
	raw := []ColorStop{{0.9, Red}, {0.1, Blue}, {-1, Green}}
	want := []ColorStop{{0.9, Red}, {0.1, Blue}, {-1, Green}}

	normalizeStops(Black, White, raw)

	if diff := cmp.Diff(want, raw); diff != "" {
		t.Errorf("input slice modified (-want +got):\n%s", diff)
	}
}

func BenchmarkNormalizeStops(b *testing.B) {
	raw := make([]ColorStop, 64)
	for i := range raw {
		raw[i] = ColorStop{Offset: float64(63-i) / 64, Color: Red}
	}
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		normalizeStops(Black, White, raw)
	}
}
