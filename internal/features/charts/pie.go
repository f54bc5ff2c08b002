package charts

import (
	"image/color"
	"math/rand"
	"strconv"

	"github.com/fogleman/gg"
	"github.com/spf13/afero"

	"csv-charts/internal/dataset"
	"csv-charts/internal/features/geometry"
)

const (
	pieRadius        = 100.0
	pieTitleFontSize = 24.0
	pieTitleY        = 25.0
)

var pieCenter = geometry.Point{X: 175, Y: 175}

var pieSchema = dataset.Schema{
	Name:       "pie",
	Header:     true,
	MinColumns: 2,
	MaxColumns: 5,
	ShapeHint:  "Expected at least 2 columns for label and value.",
	Columns: []dataset.Column{
		{Name: "label", Kind: dataset.Text},
		{Name: "value", Kind: dataset.Float},
		{Name: "RGB color value", Kind: dataset.Byte, Optional: true},
		{Name: "RGB color value", Kind: dataset.Byte, Optional: true},
		{Name: "RGB color value", Kind: dataset.Byte, Optional: true},
	},
}

// LoadSlices reads label,value[,r,g,b] records. Rows without all three color
// columns get a color drawn from rng.
func LoadSlices(fsys afero.Fs, path string, rng *rand.Rand) ([]geometry.Slice, error) {
	records, err := dataset.Records(fsys, path, pieSchema)
	if err != nil {
		return nil, err
	}
	slices := make([]geometry.Slice, 0, len(records))
	for _, rec := range records {
		if err := pieSchema.Check(rec); err != nil {
			return nil, err
		}
		value, _ := strconv.ParseFloat(rec.Fields[1], 64)
		slices = append(slices, geometry.Slice{
			Label: rec.Fields[0],
			Value: value,
			Color: sliceColor(rec.Fields, rng),
		})
	}
	return slices, nil
}

func sliceColor(fields []string, rng *rand.Rand) color.RGBA {
	if len(fields) == len(pieSchema.Columns) {
		r, _ := strconv.ParseUint(fields[2], 10, 8)
		g, _ := strconv.ParseUint(fields[3], 10, 8)
		b, _ := strconv.ParseUint(fields[4], 10, 8)
		return color.RGBA{uint8(r), uint8(g), uint8(b), 255}
	}
	return RandomColor(rng)
}

// RandomColor draws each channel uniformly from 0..255.
func RandomColor(rng *rand.Rand) color.RGBA {
	return color.RGBA{uint8(rng.Intn(256)), uint8(rng.Intn(256)), uint8(rng.Intn(256)), 255}
}

// PieWedges loads, normalizes and lays out a pie CSV. All-zero or negative
// values fail with geometry.ErrDegenerate.
func PieWedges(fsys afero.Fs, path string, rng *rand.Rand) ([]geometry.Wedge, error) {
	slices, err := LoadSlices(fsys, path, rng)
	if err != nil {
		return nil, err
	}
	if err := geometry.Normalize(slices); err != nil {
		return nil, err
	}
	return geometry.Pie(slices, pieCenter, pieRadius)
}

func preparePie(p *Pipeline, inputs []string) (drawFunc, int, error) {
	wedges, err := PieWedges(p.fs, inputs[0], p.rng)
	if err != nil {
		return nil, 0, err
	}
	return func(dc *gg.Context, fonts *Fonts, title string) {
		DrawPie(dc, fonts, wedges, title)
	}, len(wedges), nil
}

// DrawPie fills each wedge, labels it outside the rim and draws the title.
func DrawPie(dc *gg.Context, fonts *Fonts, wedges []geometry.Wedge, title string) {
	for _, w := range wedges {
		fillPolygon(dc, w.Outline, w.Color)
		drawText(dc, fonts, labelFontSize, black, w.Label, w.LabelAt.X, w.LabelAt.Y, 0.5, 0.5)
	}
	drawCaption(dc, fonts, title, pieTitleFontSize, pieTitleY)
}
