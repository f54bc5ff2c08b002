package charts

import (
	"math"
	"strconv"

	"github.com/fogleman/gg"
)

const (
	chartMargin   = 5.0
	labelAreaSize = 40.0
	captionBand   = 50.0
	tickCount     = 10
)

var gridColor = withAlpha(black, 0.1)

// plotArea maps data coordinates onto the pixel rectangle of a cartesian chart.
type plotArea struct {
	left, top, right, bottom float64
	xMin, xMax, yMin, yMax   float64
}

type axisRange struct {
	min, max float64
}

// widen keeps the range non-empty so the pixel mapping never divides by zero.
func (r axisRange) widen() axisRange {
	if r.max <= r.min {
		r.max = r.min + 1
	}
	return r
}

func newPlotArea(dc *gg.Context, x, y axisRange, captioned bool) plotArea {
	x, y = x.widen(), y.widen()
	top := chartMargin
	if captioned {
		top += captionBand
	}
	return plotArea{
		left:   chartMargin + labelAreaSize,
		top:    top,
		right:  float64(dc.Width()) - chartMargin,
		bottom: float64(dc.Height()) - chartMargin - labelAreaSize,
		xMin:   x.min,
		xMax:   x.max,
		yMin:   y.min,
		yMax:   y.max,
	}
}

func (p plotArea) X(v float64) float64 {
	return p.left + (v-p.xMin)/(p.xMax-p.xMin)*(p.right-p.left)
}

func (p plotArea) Y(v float64) float64 {
	return p.bottom - (v-p.yMin)/(p.yMax-p.yMin)*(p.bottom-p.top)
}

// drawMesh draws grid lines, axis lines and tick labels. xLabel may be nil
// to print the numeric tick value.
func (p plotArea) drawMesh(dc *gg.Context, fonts *Fonts, xTicks []float64, xLabel func(float64) string) {
	yTicks := niceTicks(p.yMin, p.yMax, tickCount)
	if xTicks == nil {
		xTicks = niceTicks(p.xMin, p.xMax, tickCount)
	}
	if xLabel == nil {
		xLabel = formatTick
	}

	dc.SetLineWidth(1)
	dc.SetColor(gridColor)
	for _, v := range yTicks {
		dc.DrawLine(p.left, p.Y(v), p.right, p.Y(v))
	}
	for _, v := range xTicks {
		dc.DrawLine(p.X(v), p.top, p.X(v), p.bottom)
	}
	dc.Stroke()

	dc.SetColor(black)
	dc.DrawLine(p.left, p.top, p.left, p.bottom)
	dc.DrawLine(p.left, p.bottom, p.right, p.bottom)
	dc.Stroke()

	for _, v := range yTicks {
		drawText(dc, fonts, tickFontSize, black, formatTick(v), p.left-4, p.Y(v), 1, 0.5)
	}
	for _, v := range xTicks {
		drawText(dc, fonts, tickFontSize, black, xLabel(v), p.X(v), p.bottom+4, 0.5, 1)
	}
}

// niceTicks returns round values covering [min, max] with at most about n
// steps of 1, 2 or 5 times a power of ten.
func niceTicks(min, max float64, n int) []float64 {
	if max <= min || n < 1 {
		return []float64{min}
	}
	raw := (max - min) / float64(n)
	mag := math.Pow(10, math.Floor(math.Log10(raw)))
	step := mag
	for _, m := range []float64{1, 2, 5, 10} {
		if raw <= m*mag {
			step = m * mag
			break
		}
	}

	var ticks []float64
	first := math.Ceil(min / step)
	for i := first; i*step <= max+step*1e-9; i++ {
		ticks = append(ticks, i*step)
	}
	return ticks
}

func formatTick(v float64) string {
	if v == math.Trunc(v) {
		return strconv.FormatInt(int64(v), 10)
	}
	return strconv.FormatFloat(v, 'g', 4, 64)
}
