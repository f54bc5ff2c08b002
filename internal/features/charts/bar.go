package charts

import (
	"math"
	"strconv"

	"github.com/fogleman/gg"
	"github.com/spf13/afero"

	"csv-charts/internal/dataset"
)

const (
	barValuePad      = 5
	barFallbackMax   = 10
	barGapFraction   = 0.1
	barCaptionOffset = 30.0
)

var barSchema = dataset.Schema{
	Name:       "bar",
	Header:     true,
	MinColumns: 2,
	ShapeHint:  "Expected at least 2 columns for label and value.",
	Columns: []dataset.Column{
		{Name: "label", Kind: dataset.Text},
		{Name: "value", Kind: dataset.Integer},
	},
}

// BarEntry is one bar: the first column of a row and the integer in the
// second.
type BarEntry struct {
	Label string
	Value int
}

// LoadBars reads a header CSV through the shared Row loader. The first header
// names the category column and the second the value column.
func LoadBars(fsys afero.Fs, path string) ([]BarEntry, error) {
	rows, err := dataset.LoadRows(fsys, path)
	if err != nil {
		return nil, err
	}
	if len(rows) > 0 && len(rows[0].Headers) < 2 {
		return nil, &dataset.LineError{Line: 1, Reason: barSchema.ShapeHint}
	}
	bars := make([]BarEntry, 0, len(rows))
	for i, row := range rows {
		label, _ := row.Get(row.Headers[0])
		raw, _ := row.Get(row.Headers[1])
		v, err := strconv.ParseInt(raw, 10, 32)
		if err != nil {
			return nil, &dataset.LineError{Line: i + 2, Reason: "Invalid value. Expected an integer."}
		}
		bars = append(bars, BarEntry{Label: label, Value: int(v)})
	}
	return bars, nil
}

func prepareBar(p *Pipeline, inputs []string) (drawFunc, int, error) {
	bars, err := LoadBars(p.fs, inputs[0])
	if err != nil {
		return nil, 0, err
	}
	return func(dc *gg.Context, fonts *Fonts, title string) {
		DrawBar(dc, fonts, bars, title)
	}, len(bars), nil
}

// DrawBar draws one bar per entry, colored by PaletteColor over BarPalette.
func DrawBar(dc *gg.Context, fonts *Fonts, bars []BarEntry, title string) {
	y := axisRange{min: 0, max: barFallbackMax}
	if len(bars) > 0 {
		lo, hi := 0, math.MinInt
		for _, b := range bars {
			lo = min(lo, b.Value)
			hi = max(hi, b.Value)
		}
		y = axisRange{min: float64(lo), max: float64(max(hi, 0) + barValuePad)}
	}
	x := axisRange{min: 0, max: float64(max(len(bars), 1))}

	area := newPlotArea(dc, x, y, title != "")
	drawCaption(dc, fonts, title, captionFontSize, chartMargin+barCaptionOffset)

	ticks := make([]float64, len(bars))
	for i := range bars {
		ticks[i] = float64(i) + 0.5
	}
	area.drawMesh(dc, fonts, ticks, func(v float64) string {
		i := int(v)
		if i < 0 || i >= len(bars) {
			return ""
		}
		return bars[i].Label
	})

	for i, b := range bars {
		x0 := area.X(float64(i) + barGapFraction/2)
		x1 := area.X(float64(i+1) - barGapFraction/2)
		y0 := area.Y(0)
		y1 := area.Y(float64(b.Value))
		dc.SetColor(PaletteColor(i, BarPalette))
		dc.DrawRectangle(x0, math.Min(y0, y1), x1-x0, math.Abs(y1-y0))
		dc.Fill()
	}
}
