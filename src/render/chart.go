package render

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"math"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/imrehg/typhoons/src/logging"
	"github.com/imrehg/typhoons/src/typhoon"
)

// ErrNoData is returned when there is nothing to plot.
var ErrNoData = errors.New("no data to plot")

// Line is one plotted series in display units.
type Line struct {
	Name  string
	Color color.RGBA
	Width float64 // points
	X     []float64
	Y     []float64
}

// Options controls the figure. Sizes are pixels, font sizes are points.
type Options struct {
	Width  int
	Height int
	DPI    float64

	Title  string
	XLabel string
	YLabel string

	TitleFontSize  float64
	LabelFontSize  float64
	TickFontSize   float64
	LegendFontSize float64

	// Footnote is stamped into the bottom-right corner when non-empty.
	Footnote string
}

// DefaultOptions matches a 12x9 inch figure at 100 DPI.
func DefaultOptions() Options {
	return Options{
		Width:          1200,
		Height:         900,
		DPI:            100,
		Title:          "Atmospheric pressure during typhoon passage",
		XLabel:         "Time-delta from minimum atm. pressure (h)",
		YLabel:         "Atmospheric pressure (hPa)",
		TitleFontSize:  22,
		LabelFontSize:  16,
		TickFontSize:   12,
		LegendFontSize: 18,
	}
}

// LinesFromSeries maps aligned typhoon series to plot lines, keeping order.
func LinesFromSeries(series []typhoon.Series) []Line {
	lines := make([]Line, 0, len(series))
	for _, s := range series {
		lines = append(lines, Line{
			Name:  s.Event.Label,
			Color: s.Event.Color,
			Width: 1.5,
			X:     s.Hours,
			Y:     s.HPa,
		})
	}
	return lines
}

// XExtent returns the x range spanned by the first and last point of l.
func XExtent(l Line) (float64, float64) {
	lo, hi := l.X[0], l.X[len(l.X)-1]
	if lo > hi {
		lo, hi = hi, lo
	}
	if lo == hi {
		lo, hi = lo-1, hi+1
	}
	return lo, hi
}

// Build assembles the chart. The x axis is fixed to the extent of the first
// line; every line is clipped to it.
func Build(lines []Line, opts Options) (*chart.Chart, error) {
	if len(lines) == 0 || len(lines[0].X) == 0 {
		return nil, ErrNoData
	}
	xMin, xMax := XExtent(lines[0])

	series := []chart.Series{}
	yMin := math.MaxFloat64
	yMax := -math.MaxFloat64
	for _, l := range lines {
		if len(l.X) != len(l.Y) {
			return nil, fmt.Errorf("%q: %d x values but %d y values", l.Name, len(l.X), len(l.Y))
		}
		xs, ys := ClipToRange(l.X, l.Y, xMin, xMax)
		if len(xs) == 0 {
			logging.Warnf("[render] %q has no points within %.2f..%.2f, skipped", l.Name, xMin, xMax)
			continue
		}
		for _, v := range ys {
			yMin = math.Min(yMin, v)
			yMax = math.Max(yMax, v)
		}
		series = append(series, chart.ContinuousSeries{
			Name:    l.Name,
			YAxis:   chart.YAxisSecondary,
			XValues: xs,
			YValues: ys,
			Style: chart.Style{
				StrokeColor: drawing.Color{R: l.Color.R, G: l.Color.G, B: l.Color.B, A: l.Color.A},
				StrokeWidth: l.Width * opts.DPI / 72,
			},
		})
	}
	// The y range covers only what is visible inside the x window, so points
	// of longer logs outside it do not stretch the pressure axis.
	yLo, yHi := niceAxisBounds(yMin, yMax)
	yRange := &chart.ContinuousRange{Min: yLo, Max: yHi}
	yTicks := niceTicks(yLo, yHi, 8)

	grid := chart.Style{StrokeColor: drawing.ColorFromHex("d0d0d0"), StrokeWidth: 1}
	tickStyle := chart.Style{FontSize: opts.TickFontSize}
	nameStyle := chart.Style{FontSize: opts.LabelFontSize}

	ch := &chart.Chart{
		Title:      opts.Title,
		TitleStyle: chart.Style{FontSize: opts.TitleFontSize},
		Width:      opts.Width,
		Height:     opts.Height,
		DPI:        opts.DPI,
		Background: chart.Style{Padding: chart.Box{Top: 80, Left: 24, Right: 40, Bottom: 24}},
		XAxis: chart.XAxis{
			Name:           opts.XLabel,
			NameStyle:      nameStyle,
			Style:          tickStyle,
			Range:          &chart.ContinuousRange{Min: xMin, Max: xMax},
			Ticks:          niceTicks(xMin, xMax, 10),
			GridMajorStyle: grid,
		},
		// Series live on the left-hand axis. The hidden right-hand one carries the
		// same range and ticks: go-chart v2 derives the secondary range from
		// YAxis.Ticks whenever YAxisSecondary.Ticks is set.
		YAxis: chart.YAxis{
			Style: chart.Style{Hidden: true},
			Range: &chart.ContinuousRange{Min: yLo, Max: yHi},
			Ticks: yTicks,
		},
		YAxisSecondary: chart.YAxis{
			Name:           opts.YLabel,
			NameStyle:      nameStyle,
			Style:          tickStyle,
			Range:          yRange,
			Ticks:          yTicks,
			GridMajorStyle: grid,
		},
		Series: series,
	}
	ch.Elements = []chart.Renderable{lowerLeftLegend(ch, chart.Style{FontSize: opts.LegendFontSize})}
	return ch, nil
}

// Render draws the lines and returns the decoded image.
func Render(lines []Line, opts Options) (image.Image, error) {
	defer logging.TimeTrack(logging.Now(), "render")
	ch, err := Build(lines, opts)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := ch.Render(chart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("render chart: %w", err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		return nil, fmt.Errorf("decode chart: %w", err)
	}
	return drawNote(img, opts.Footnote), nil
}

// EncodePNG encodes img as PNG.
func EncodePNG(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("png encode: %w", err)
	}
	return buf.Bytes(), nil
}
