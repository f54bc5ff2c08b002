package charts

import (
	"github.com/fogleman/gg"
)

const (
	lineXPad       = 1
	lineYPad       = 5
	lineFallbackX  = 10
	lineFallbackY  = 50
	areaFillAlpha  = 0.2
	lineBorderSize = 2.0
)

func prepareLineArea(p *Pipeline, inputs []string) (drawFunc, int, error) {
	points, err := LoadPoints(p.fs, inputs[0])
	if err != nil {
		return nil, 0, err
	}
	return func(dc *gg.Context, fonts *Fonts, title string) {
		DrawLineArea(dc, fonts, points, title)
	}, len(points), nil
}

// lineRanges spans 0..max+pad on both axes; an empty series uses the
// fallback maxima.
func lineRanges(points []Point) (axisRange, axisRange) {
	x := axisRange{min: 0, max: lineFallbackX + lineXPad}
	y := axisRange{min: 0, max: lineFallbackY + lineYPad}
	if len(points) == 0 {
		return x, y
	}
	minX, maxX, minY, maxY := extent(points)
	x = axisRange{min: float64(min(minX, 0)), max: float64(maxX + lineXPad)}
	y = axisRange{min: float64(min(minY, 0)), max: float64(maxY + lineYPad)}
	return x, y
}

// DrawLineArea draws the series in file order as a red line with a
// translucent red area down to y=0.
func DrawLineArea(dc *gg.Context, fonts *Fonts, points []Point, title string) {
	x, y := lineRanges(points)
	area := newPlotArea(dc, x, y, title != "")
	drawCaption(dc, fonts, title, captionFontSize, chartMargin+captionBand/2)
	area.drawMesh(dc, fonts, nil, nil)

	if len(points) == 0 {
		return
	}

	base := area.Y(0)
	dc.NewSubPath()
	dc.MoveTo(area.X(float64(points[0].X)), base)
	for _, p := range points {
		dc.LineTo(area.X(float64(p.X)), area.Y(float64(p.Y)))
	}
	dc.LineTo(area.X(float64(points[len(points)-1].X)), base)
	dc.ClosePath()
	dc.SetColor(withAlpha(red, areaFillAlpha))
	dc.Fill()

	dc.NewSubPath()
	dc.MoveTo(area.X(float64(points[0].X)), area.Y(float64(points[0].Y)))
	for _, p := range points[1:] {
		dc.LineTo(area.X(float64(p.X)), area.Y(float64(p.Y)))
	}
	dc.SetColor(red)
	dc.SetLineWidth(lineBorderSize)
	dc.Stroke()
}
