package charts

import (
	"github.com/fogleman/gg"
)

const (
	markerRadius     = 5.0
	scatterPad       = 5
	scatterFallbackL = -10
	scatterFallbackH = 50
)

func prepareScatter(p *Pipeline, inputs []string) (drawFunc, int, error) {
	first, err := LoadPoints(p.fs, inputs[0])
	if err != nil {
		return nil, 0, err
	}
	second, err := LoadPoints(p.fs, inputs[1])
	if err != nil {
		return nil, 0, err
	}
	return func(dc *gg.Context, fonts *Fonts, title string) {
		DrawScatter(dc, fonts, first, second, title)
	}, len(first) + len(second), nil
}

// scatterRanges covers both series with scatterPad on each side, always
// including the origin.
func scatterRanges(series ...[]Point) (axisRange, axisRange) {
	var all []Point
	for _, s := range series {
		all = append(all, s...)
	}
	if len(all) == 0 {
		fallback := axisRange{min: scatterFallbackL, max: scatterFallbackH}
		return fallback, fallback
	}
	minX, maxX, minY, maxY := extent(all)
	x := axisRange{min: float64(min(minX, 0) - scatterPad), max: float64(max(maxX, 0) + scatterPad)}
	y := axisRange{min: float64(min(minY, 0) - scatterPad), max: float64(max(maxY, 0) + scatterPad)}
	return x, y
}

// DrawScatter plots first as blue triangles and second as red circles.
func DrawScatter(dc *gg.Context, fonts *Fonts, first, second []Point, title string) {
	x, y := scatterRanges(first, second)
	area := newPlotArea(dc, x, y, title != "")
	drawCaption(dc, fonts, title, captionFontSize, chartMargin+captionBand/2)
	area.drawMesh(dc, fonts, nil, nil)

	dc.SetColor(blue)
	for _, p := range first {
		dc.DrawRegularPolygon(3, area.X(float64(p.X)), area.Y(float64(p.Y)), markerRadius, 0)
		dc.Fill()
	}
	dc.SetColor(red)
	for _, p := range second {
		dc.DrawCircle(area.X(float64(p.X)), area.Y(float64(p.Y)), markerRadius)
		dc.Fill()
	}
}
