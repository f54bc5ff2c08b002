package charts

import (
	"strconv"

	"github.com/fogleman/gg"
	"github.com/spf13/afero"

	"csv-charts/internal/dataset"
	"csv-charts/internal/features/geometry"
)

const (
	radarMaxRadius    = 350.0
	radarLabelRadius  = 375.0
	radarRingAlpha    = 0.1
	radarFillAlpha    = 0.5
	radarTitleFont    = 24.0
	radarTitleMargin  = 10.0
	radarRingFontSize = 15.0
)

var radarCenter = geometry.Point{X: 400, Y: 400}

var radarSchema = dataset.Schema{
	Name:       "radar",
	Header:     true,
	MinColumns: 2,
	ShapeHint:  "Expected at least 2 columns for label and value.",
	Columns: []dataset.Column{
		{Name: "label", Kind: dataset.Text},
		{Name: "value", Kind: dataset.Float},
	},
}

// LoadRadarPoints reads label,value records; extra columns are ignored.
func LoadRadarPoints(fsys afero.Fs, path string) ([]geometry.RadarPoint, error) {
	records, err := dataset.Records(fsys, path, radarSchema)
	if err != nil {
		return nil, err
	}
	points := make([]geometry.RadarPoint, 0, len(records))
	for _, rec := range records {
		if err := radarSchema.Check(rec); err != nil {
			return nil, err
		}
		v, _ := strconv.ParseFloat(rec.Fields[1], 64)
		points = append(points, geometry.RadarPoint{Label: rec.Fields[0], Value: v})
	}
	return points, nil
}

func prepareRadar(p *Pipeline, inputs []string) (drawFunc, int, error) {
	points, err := LoadRadarPoints(p.fs, inputs[0])
	if err != nil {
		return nil, 0, err
	}
	layout, err := geometry.Radar(points, radarCenter, radarMaxRadius, radarLabelRadius)
	if err != nil {
		return nil, 0, err
	}
	return func(dc *gg.Context, fonts *Fonts, title string) {
		DrawRadar(dc, fonts, layout, title)
	}, len(points), nil
}

// DrawRadar draws the fixed percentage rings, the axis labels and the data
// polygon.
func DrawRadar(dc *gg.Context, fonts *Fonts, layout geometry.RadarLayout, title string) {
	dc.SetLineWidth(1)
	for _, ring := range layout.Rings {
		dc.SetColor(withAlpha(black, radarRingAlpha))
		dc.DrawCircle(radarCenter.X, radarCenter.Y, ring.Radius)
		dc.Stroke()
		drawText(dc, fonts, radarRingFontSize, black, strconv.Itoa(ring.Label), ring.LabelAt.X, ring.LabelAt.Y, 0, 0)
	}

	for _, l := range layout.Labels {
		drawText(dc, fonts, labelFontSize, black, l.Text, l.At.X, l.At.Y, 0.5, 0.5)
	}

	fillPolygon(dc, layout.Polygon, withAlpha(red, radarFillAlpha))

	if title != "" {
		drawText(dc, fonts, radarTitleFont, black, title, radarTitleMargin, radarTitleMargin, 0, 1)
	}
}
