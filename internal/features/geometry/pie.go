package geometry

import (
	"fmt"
	"image/color"
	"math"
)

const (
	// WedgeSamples is the number of arc segments per wedge; the outline
	// holds WedgeSamples+1 arc points after the center.
	WedgeSamples = 100
	// LabelOffset pushes slice labels outside the rim.
	LabelOffset = 20.0
)

// Slice is one pie wedge before layout.
type Slice struct {
	Label string
	Value float64
	Color color.RGBA
}

// Wedge is a laid out slice.
type Wedge struct {
	Slice
	Start   float64
	End     float64
	Outline []Point
	LabelAt Point
}

// Normalize rescales slice values in place so they sum to exactly 100.
func Normalize(slices []Slice) error {
	if len(slices) == 0 {
		return fmt.Errorf("%w: no slices", ErrDegenerate)
	}
	var peak float64
	for _, s := range slices {
		if !finite(s.Value) || s.Value < 0 {
			return fmt.Errorf("%w: slice %q has value %v", ErrDegenerate, s.Label, s.Value)
		}
		peak = math.Max(peak, s.Value)
	}
	if peak == 0 {
		return fmt.Errorf("%w: slice values sum to 0", ErrDegenerate)
	}

	// Summing shares of the largest value keeps huge inputs from overflowing.
	var total float64
	for _, s := range slices {
		total += s.Value / peak
	}
	factor := 100 / total
	for i := range slices {
		slices[i].Value = slices[i].Value / peak * factor
	}
	return nil
}

// Pie lays out normalized slices in file order starting at angle 0.
func Pie(slices []Slice, center Point, radius float64) ([]Wedge, error) {
	if len(slices) == 0 {
		return nil, fmt.Errorf("%w: no slices", ErrDegenerate)
	}
	wedges := make([]Wedge, 0, len(slices))
	start := 0.0
	for _, s := range slices {
		end := start + s.Value/100*2*math.Pi

		outline := make([]Point, 0, WedgeSamples+2)
		outline = append(outline, center)
		for p := 0; p <= WedgeSamples; p++ {
			angle := start + (end-start)*float64(p)/WedgeSamples
			outline = append(outline, Polar(center, radius, angle))
		}

		wedges = append(wedges, Wedge{
			Slice:   s,
			Start:   start,
			End:     end,
			Outline: outline,
			LabelAt: Polar(center, radius+LabelOffset, (start+end)/2),
		})
		start = end
	}
	return wedges, nil
}
