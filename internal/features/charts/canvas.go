package charts

import (
	"image/color"

	"github.com/fogleman/gg"

	"csv-charts/internal/features/geometry"
)

const (
	captionFontSize = 40.0
	labelFontSize   = 15.0
	tickFontSize    = 12.0
)

func newCanvas(width, height int) *gg.Context {
	dc := gg.NewContext(width, height)
	dc.SetColor(white)
	dc.Clear()
	return dc
}

func fillPolygon(dc *gg.Context, points []geometry.Point, c color.Color) {
	if len(points) == 0 {
		return
	}
	dc.NewSubPath()
	dc.MoveTo(points[0].X, points[0].Y)
	for _, p := range points[1:] {
		dc.LineTo(p.X, p.Y)
	}
	dc.ClosePath()
	dc.SetColor(c)
	dc.Fill()
}

func drawText(dc *gg.Context, fonts *Fonts, size float64, c color.Color, s string, x, y, ax, ay float64) {
	fonts.Use(dc, size)
	dc.SetColor(c)
	dc.DrawStringAnchored(s, x, y, ax, ay)
}

// drawCaption centers title in the band above the plot area.
func drawCaption(dc *gg.Context, fonts *Fonts, title string, size, y float64) {
	if title == "" {
		return
	}
	drawText(dc, fonts, size, black, title, float64(dc.Width())/2, y, 0.5, 0.5)
}
