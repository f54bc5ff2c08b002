package charts

import (
	"strconv"

	"github.com/spf13/afero"

	"csv-charts/internal/dataset"
)

// pointSchema is shared by the scatter and line/area charts: headerless,
// exactly two integer columns.
var pointSchema = dataset.Schema{
	Name:       "points",
	MinColumns: 2,
	MaxColumns: 2,
	ShapeHint:  "Expected exactly 2 columns for x and y values.",
	Columns: []dataset.Column{
		{Name: "x value", Kind: dataset.Integer},
		{Name: "y value", Kind: dataset.Integer},
	},
}

type Point struct {
	X, Y int
}

// LoadPoints returns one Point per record of a headerless x,y CSV, in file
// order.
func LoadPoints(fsys afero.Fs, path string) ([]Point, error) {
	records, err := dataset.Records(fsys, path, pointSchema)
	if err != nil {
		return nil, err
	}
	points := make([]Point, 0, len(records))
	for _, rec := range records {
		if err := pointSchema.Check(rec); err != nil {
			return nil, err
		}
		x, _ := strconv.ParseInt(rec.Fields[0], 10, 32)
		y, _ := strconv.ParseInt(rec.Fields[1], 10, 32)
		points = append(points, Point{X: int(x), Y: int(y)})
	}
	return points, nil
}

func extent(points []Point) (minX, maxX, minY, maxY int) {
	minX, minY = points[0].X, points[0].Y
	maxX, maxY = minX, minY
	for _, p := range points[1:] {
		minX, maxX = min(minX, p.X), max(maxX, p.X)
		minY, maxY = min(minY, p.Y), max(maxY, p.Y)
	}
	return
}
