package charts

import "image/color"

var (
	red     = color.RGBA{255, 0, 0, 255}
	green   = color.RGBA{0, 255, 0, 255}
	blue    = color.RGBA{0, 0, 255, 255}
	yellow  = color.RGBA{255, 255, 0, 255}
	magenta = color.RGBA{255, 0, 255, 255}
	cyan    = color.RGBA{0, 255, 255, 255}
	black   = color.RGBA{0, 0, 0, 255}
	white   = color.RGBA{255, 255, 255, 255}
)

// BarPalette colors bars in row order.
var BarPalette = []color.RGBA{red, green, blue, yellow, magenta, cyan, black}

// PaletteColor picks the color for row index, cycling through palette.
func PaletteColor(index int, palette []color.RGBA) color.RGBA {
	if len(palette) == 0 {
		return black
	}
	i := index % len(palette)
	if i < 0 {
		i += len(palette)
	}
	return palette[i]
}

// withAlpha returns c at opacity a in [0,1] as a non-premultiplied color.
func withAlpha(c color.RGBA, a float64) color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: uint8(a*255 + 0.5)}
}
