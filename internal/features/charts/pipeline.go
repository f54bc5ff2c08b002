package charts

import (
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/fogleman/gg"
	"github.com/spf13/afero"
	"go.uber.org/zap"

	"csv-charts/internal/dataset"
	"csv-charts/internal/infra/fs"
	logging "csv-charts/internal/infra/log"
)

// Kind selects one of the five chart types. The numeric values match the
// menu entries of the interactive shell.
type Kind int

const (
	Bar Kind = iota + 1
	Scatter
	Pie
	LineArea
	Radar
)

// Kinds lists every chart type in menu order.
var Kinds = []Kind{Bar, Scatter, Pie, LineArea, Radar}

func (k Kind) String() string {
	switch k {
	case Bar:
		return "bar chart"
	case Scatter:
		return "scatter plot"
	case Pie:
		return "pie chart"
	case LineArea:
		return "line and area chart"
	case Radar:
		return "radar chart"
	default:
		return fmt.Sprintf("chart(%d)", int(k))
	}
}

// Inputs is the number of CSV files the chart reads.
func (k Kind) Inputs() int {
	if c, ok := registry[k]; ok {
		return c.inputs
	}
	return 0
}

// Size is the canvas size in pixels.
func (k Kind) Size() (width, height int) {
	if c, ok := registry[k]; ok {
		return c.width, c.height
	}
	return 0, 0
}

// Request is one chart to draw.
type Request struct {
	Kind   Kind
	Inputs []string
	Output string
	Title  string
}

// drawFunc paints prepared data onto the canvas.
type drawFunc func(dc *gg.Context, fonts *Fonts, title string)

// chart describes one chart type: what its input looks like and how to turn
// validated files into a drawFunc.
type chart struct {
	schema        dataset.Schema
	inputs        int
	width, height int
	prepare       func(p *Pipeline, inputs []string) (drawFunc, int, error)
}

var registry = map[Kind]chart{
	Bar:      {schema: barSchema, inputs: 1, width: 640, height: 480, prepare: prepareBar},
	Scatter:  {schema: pointSchema, inputs: 2, width: 600, height: 400, prepare: prepareScatter},
	Pie:      {schema: pieSchema, inputs: 1, width: 350, height: 350, prepare: preparePie},
	LineArea: {schema: pointSchema, inputs: 1, width: 600, height: 400, prepare: prepareLineArea},
	Radar:    {schema: radarSchema, inputs: 1, width: 800, height: 800, prepare: prepareRadar},
}

// Pipeline validates, loads and renders chart requests against one
// filesystem.
type Pipeline struct {
	fs    afero.Fs
	fonts *Fonts
	rng   *rand.Rand
}

// NewPipeline wires the chart renderers. rng supplies colors for pie slices
// without explicit RGB columns; nil seeds one from the clock.
func NewPipeline(fsys afero.Fs, fonts *Fonts, rng *rand.Rand) *Pipeline {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if fonts == nil {
		fonts = &Fonts{}
	}
	return &Pipeline{fs: fsys, fonts: fonts, rng: rng}
}

// Render runs validate → load → draw → write for req. Every input is
// validated before anything is loaded, and nothing touches req.Output until
// the canvas is complete.
func (p *Pipeline) Render(req Request) error {
	c, ok := registry[req.Kind]
	if !ok {
		return fmt.Errorf("unknown chart kind %d", int(req.Kind))
	}
	if len(req.Inputs) != c.inputs {
		return fmt.Errorf("%s needs %d input file(s), got %d", req.Kind, c.inputs, len(req.Inputs))
	}

	requestID := logging.GenerateRequestID()
	started := time.Now()
	logging.LogInfo("Chart request",
		logging.RequestID(requestID),
		zap.String("kind", req.Kind.String()),
		zap.Strings("inputs", req.Inputs),
		zap.String("output", req.Output))

	for _, in := range req.Inputs {
		if err := dataset.Validate(p.fs, in, c.schema); err != nil {
			logging.LogWarn("Validation failed", logging.RequestID(requestID),
				zap.String("path", in), zap.Error(err))
			return err
		}
		logging.LogDebug("Input validated", logging.RequestID(requestID), zap.String("path", in))
	}

	draw, rows, err := c.prepare(p, req.Inputs)
	if err != nil {
		logging.LogWarn("Load failed", logging.RequestID(requestID), zap.Error(err))
		return err
	}

	dc := newCanvas(req.Kind.Size())
	draw(dc, p.fonts, req.Title)

	size, err := fs.WriteExclusive(p.fs, req.Output, func(w io.Writer) error {
		return dc.EncodePNG(w)
	})
	if err != nil {
		logging.LogError("Write failed", logging.RequestID(requestID),
			zap.String("output", req.Output), zap.Error(err))
		return err
	}

	logging.LogSuccess("Chart generated",
		logging.RequestID(requestID),
		zap.String("kind", req.Kind.String()),
		zap.String("output", req.Output),
		zap.Int("rows", rows),
		zap.Int64("file_size", size),
		zap.Int64("duration_ms", time.Since(started).Milliseconds()))
	return nil
}
