package geometry_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"csv-charts/internal/features/geometry"
)

const eps = 1e-6

var center = geometry.Point{X: 175, Y: 175}

func sum(slices []geometry.Slice) float64 {
	var total float64
	for _, s := range slices {
		total += s.Value
	}
	return total
}

func TestNormalize_SumsToHundred(t *testing.T) {
	for _, values := range [][]float64{
		{1},
		{1, 2, 3},
		{0.1, 0.2, 0.3, 0.4},
		{1e6, 3, 0, 17.25},
		{33, 33, 33},
	} {
		slices := make([]geometry.Slice, len(values))
		for i, v := range values {
			slices[i] = geometry.Slice{Value: v}
		}

		require.NoError(t, geometry.Normalize(slices))
		assert.InDelta(t, 100, sum(slices), eps, "values %v", values)
	}
}

func TestNormalize_AlreadyHundredUnchanged(t *testing.T) {
	slices := []geometry.Slice{{Label: "A", Value: 25}, {Label: "B", Value: 75}}

	require.NoError(t, geometry.Normalize(slices))

	assert.InDelta(t, 25, slices[0].Value, eps)
	assert.InDelta(t, 75, slices[1].Value, eps)
}

func TestNormalize_Degenerate(t *testing.T) {
	cases := map[string][]geometry.Slice{
		"empty":    nil,
		"all zero": {{Value: 0}, {Value: 0}},
		"negative": {{Value: 10}, {Value: -5}},
		"nan":      {{Value: math.NaN()}},
	}
	for name, slices := range cases {
		t.Run(name, func(t *testing.T) {
			assert.ErrorIs(t, geometry.Normalize(slices), geometry.ErrDegenerate)
		})
	}
}

func TestPie_Example(t *testing.T) {
	slices := []geometry.Slice{{Label: "A", Value: 25}, {Label: "B", Value: 75}}
	require.NoError(t, geometry.Normalize(slices))

	wedges, err := geometry.Pie(slices, center, 100)

	require.NoError(t, err)
	require.Len(t, wedges, 2)
	assert.InDelta(t, 0, wedges[0].Start, eps)
	assert.InDelta(t, math.Pi/2, wedges[0].End, eps)
	assert.InDelta(t, math.Pi/2, wedges[1].Start, eps)
	assert.InDelta(t, 2*math.Pi, wedges[1].End, eps)
	assert.Equal(t, "A", wedges[0].Label)
}

func TestPie_SpansAreContiguous(t *testing.T) {
	slices := []geometry.Slice{{Value: 3}, {Value: 1}, {Value: 4}, {Value: 1}, {Value: 5}, {Value: 9}}
	require.NoError(t, geometry.Normalize(slices))

	wedges, err := geometry.Pie(slices, center, 100)

	require.NoError(t, err)
	assert.Equal(t, 0.0, wedges[0].Start)
	for i := 0; i < len(wedges)-1; i++ {
		assert.Equal(t, wedges[i].End, wedges[i+1].Start)
		assert.Less(t, wedges[i].Start, wedges[i].End)
	}
	assert.InDelta(t, 2*math.Pi, wedges[len(wedges)-1].End, eps)
}

func TestPie_Outline(t *testing.T) {
	slices := []geometry.Slice{{Value: 50}, {Value: 50}}

	wedges, err := geometry.Pie(slices, center, 100)

	require.NoError(t, err)
	outline := wedges[0].Outline
	require.Len(t, outline, geometry.WedgeSamples+2)
	assert.Equal(t, center, outline[0])
	for _, p := range outline[1:] {
		assert.InDelta(t, 100, math.Hypot(p.X-center.X, p.Y-center.Y), eps)
	}
	// First arc point sits at angle 0, last at π.
	assert.InDelta(t, 275, outline[1].X, eps)
	assert.InDelta(t, 75, outline[len(outline)-1].X, eps)

	// Label at the bisector (π/2, straight down on screen), 20px past the rim.
	assert.InDelta(t, 175, wedges[0].LabelAt.X, eps)
	assert.InDelta(t, 295, wedges[0].LabelAt.Y, eps)
}

func TestRadar_ClosedPolygon(t *testing.T) {
	for n := 1; n <= 8; n++ {
		points := make([]geometry.RadarPoint, n)
		for i := range points {
			points[i] = geometry.RadarPoint{Label: string(rune('A' + i)), Value: float64(i + 1)}
		}

		layout, err := geometry.Radar(points, geometry.Point{X: 400, Y: 400}, 350, 375)

		require.NoError(t, err)
		require.Len(t, layout.Polygon, n+1)
		assert.Equal(t, layout.Polygon[0], layout.Polygon[n])
		assert.Len(t, layout.Labels, n)
	}
}

func TestRadar_Scaling(t *testing.T) {
	c := geometry.Point{X: 400, Y: 400}
	points := []geometry.RadarPoint{
		{Label: "speed", Value: 10},
		{Label: "power", Value: 5},
		{Label: "range", Value: 10},
		{Label: "armor", Value: 0},
	}

	layout, err := geometry.Radar(points, c, 350, 375)

	require.NoError(t, err)
	assert.Equal(t, 10.0, layout.MaxValue)
	// angle 0: right of center at full radius
	assert.InDelta(t, 750, layout.Polygon[0].X, eps)
	assert.InDelta(t, 400, layout.Polygon[0].Y, eps)
	// angle π/2: above center (y inverted) at half radius
	assert.InDelta(t, 400, layout.Polygon[1].X, eps)
	assert.InDelta(t, 225, layout.Polygon[1].Y, eps)
	// zero value collapses to the center
	assert.InDelta(t, 400, layout.Polygon[3].X, eps)
	assert.InDelta(t, 400, layout.Polygon[3].Y, eps)
	// labels sit on the label radius
	assert.InDelta(t, 25, layout.Labels[2].At.X, eps)
}

func TestRadar_Rings(t *testing.T) {
	layout, err := geometry.Radar([]geometry.RadarPoint{{Value: 1}}, geometry.Point{X: 400, Y: 400}, 350, 375)

	require.NoError(t, err)
	require.Len(t, layout.Rings, 5)
	for i, ring := range layout.Rings {
		assert.InDelta(t, 350*geometry.RingFractions[i], ring.Radius, eps)
		assert.Equal(t, geometry.RingLabels[i], ring.Label)
	}
}

func TestRadar_Degenerate(t *testing.T) {
	c := geometry.Point{X: 400, Y: 400}

	_, err := geometry.Radar(nil, c, 350, 375)
	assert.ErrorIs(t, err, geometry.ErrDegenerate)

	_, err = geometry.Radar([]geometry.RadarPoint{{Value: 0}, {Value: 0}}, c, 350, 375)
	assert.ErrorIs(t, err, geometry.ErrDegenerate)

	_, err = geometry.Radar([]geometry.RadarPoint{{Value: -1}}, c, 350, 375)
	assert.ErrorIs(t, err, geometry.ErrDegenerate)
}

func TestNormalize_HugeValues(t *testing.T) {
	slices := []geometry.Slice{{Label: "A", Value: 1e308}, {Label: "B", Value: 1e308}, {Label: "C", Value: 0}}

	require.NoError(t, geometry.Normalize(slices))

	assert.InDelta(t, 50, slices[0].Value, eps)
	assert.InDelta(t, 50, slices[1].Value, eps)
	assert.InDelta(t, 0, slices[2].Value, eps)
}
