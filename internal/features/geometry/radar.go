package geometry

import (
	"fmt"
	"math"
)

// RingFractions and RingLabels describe the fixed scale drawn behind every
// radar chart, independent of the data.
var (
	RingFractions = []float64{0, 0.25, 0.5, 0.75, 1.0}
	RingLabels    = []int{0, 25, 50, 75, 100}
)

type RadarPoint struct {
	Label string
	Value float64
}

type Ring struct {
	Radius  float64
	Label   int
	LabelAt Point
}

type AxisLabel struct {
	Text string
	At   Point
}

type RadarLayout struct {
	MaxValue float64
	// Polygon holds one vertex per point plus a copy of the first.
	Polygon []Point
	Labels  []AxisLabel
	Rings   []Ring
}

// Radar places point i at angle i*2π/N and radius value/max*maxRadius.
// Angles run counter-clockwise on screen, so y is center.Y - r*sin.
func Radar(points []RadarPoint, center Point, maxRadius, labelRadius float64) (RadarLayout, error) {
	if len(points) == 0 {
		return RadarLayout{}, fmt.Errorf("%w: no radar points", ErrDegenerate)
	}

	maxVal := 0.0
	for _, p := range points {
		if !finite(p.Value) {
			return RadarLayout{}, fmt.Errorf("%w: point %q has value %v", ErrDegenerate, p.Label, p.Value)
		}
		maxVal = math.Max(maxVal, p.Value)
	}
	if maxVal <= 0 {
		return RadarLayout{}, fmt.Errorf("%w: maximum radar value is %v", ErrDegenerate, maxVal)
	}

	step := 2 * math.Pi / float64(len(points))
	layout := RadarLayout{
		MaxValue: maxVal,
		Polygon:  make([]Point, 0, len(points)+1),
		Labels:   make([]AxisLabel, 0, len(points)),
	}
	for i, p := range points {
		angle := step * float64(i)
		r := p.Value / maxVal * maxRadius
		layout.Polygon = append(layout.Polygon, Point{
			X: center.X + r*math.Cos(angle),
			Y: center.Y - r*math.Sin(angle),
		})
		layout.Labels = append(layout.Labels, AxisLabel{
			Text: p.Label,
			At: Point{
				X: center.X + labelRadius*math.Cos(angle),
				Y: center.Y - labelRadius*math.Sin(angle),
			},
		})
	}
	layout.Polygon = append(layout.Polygon, layout.Polygon[0])

	for i, frac := range RingFractions {
		r := maxRadius * frac
		layout.Rings = append(layout.Rings, Ring{
			Radius:  r,
			Label:   RingLabels[i],
			LabelAt: Point{X: center.X + r, Y: center.Y},
		})
	}
	return layout, nil
}
