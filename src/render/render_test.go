package render

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/imrehg/typhoons/src/typhoon"
)

func sampleLines() []Line {
	return []Line{
		{
			Name:  "Soulik (2013)\n[Eye passing almost directly above]",
			Color: color.RGBA{A: 255},
			Width: 1.5,
			X:     []float64{-10, -5, 0, 5, 10},
			Y:     []float64{1000, 990, 960, 985, 1002},
		},
		{
			Name:  "Soudelor (2015)\n[Eye passing about 70km away]",
			Color: color.RGBA{B: 255, A: 255},
			Width: 1.5,
			X:     []float64{-20, -8, 0, 8, 20},
			Y:     []float64{1004, 992, 975, 990, 1003},
		},
	}
}

func TestClipToRange(t *testing.T) {
	xs, ys := ClipToRange([]float64{-3, -1, 1, 3}, []float64{0, 2, 4, 6}, -2, 2)
	assert.Equal(t, []float64{-2, -1, 1, 2}, xs)
	assert.Equal(t, []float64{1, 2, 4, 5}, ys)
}

func TestClipToRange_InsideUnchanged(t *testing.T) {
	x := []float64{0, 1, 2}
	y := []float64{5, 6, 7}
	xs, ys := ClipToRange(x, y, 0, 2)
	assert.Equal(t, x, xs)
	assert.Equal(t, y, ys)
}

func TestClipToRange_SegmentSpanningWholeWindow(t *testing.T) {
	xs, ys := ClipToRange([]float64{-10, 10}, []float64{0, 20}, -5, 5)
	assert.Equal(t, []float64{-5, 5}, xs)
	assert.Equal(t, []float64{5, 15}, ys)
}

func TestClipToRange_DescendingAndOutside(t *testing.T) {
	xs, ys := ClipToRange([]float64{4, 0}, []float64{8, 0}, 1, 2)
	assert.Equal(t, []float64{2, 1}, xs)
	assert.Equal(t, []float64{4, 2}, ys)

	xs, ys = ClipToRange([]float64{5, 6, 7}, []float64{1, 2, 3}, 0, 1)
	assert.Empty(t, xs)
	assert.Empty(t, ys)
}

func TestNiceTicks_WithinRangeAndIncreasing(t *testing.T) {
	cases := [][2]float64{{-12.3, 20.7}, {955, 1015}, {0, 1}, {-0.004, 0.009}}
	for _, c := range cases {
		ticks := niceTicks(c[0], c[1], 8)
		require.GreaterOrEqual(t, len(ticks), 2, "range %v", c)
		for i, tk := range ticks {
			assert.GreaterOrEqual(t, tk.Value, c[0]-1e-9)
			assert.LessOrEqual(t, tk.Value, c[1]+1e-9)
			if i > 0 {
				assert.Greater(t, tk.Value, ticks[i-1].Value)
			}
		}
	}
}

func TestNiceAxisBounds_ContainsData(t *testing.T) {
	lo, hi := niceAxisBounds(963.4, 1008.2)
	assert.LessOrEqual(t, lo, 963.4)
	assert.GreaterOrEqual(t, hi, 1008.2)
	assert.Equal(t, lo, math.Floor(lo))

	lo, hi = niceAxisBounds(5, 5)
	assert.Less(t, lo, hi)
}

func TestFormatTick(t *testing.T) {
	assert.Equal(t, "0", formatTick(0))
	assert.Equal(t, "0", formatTick(-1e-12))
	assert.Equal(t, "-2.5", formatTick(-2.5))
	assert.Equal(t, "1000", formatTick(1000.0000000001))
}

func TestBuild_FixesXRangeToFirstLine(t *testing.T) {
	ch, err := Build(sampleLines(), DefaultOptions())
	require.NoError(t, err)

	xr, ok := ch.XAxis.Range.(*chart.ContinuousRange)
	require.True(t, ok)
	assert.Equal(t, -10.0, xr.Min)
	assert.Equal(t, 10.0, xr.Max)

	require.Len(t, ch.Series, 2)
	second := ch.Series[1].(chart.ContinuousSeries)
	assert.Equal(t, -10.0, second.XValues[0])
	assert.Equal(t, 10.0, second.XValues[len(second.XValues)-1])
	assert.Equal(t, chart.YAxisSecondary, second.YAxis)
	assert.Equal(t, "Atmospheric pressure during typhoon passage", ch.Title)
	assert.Equal(t, 22.0, ch.TitleStyle.FontSize)
}

func TestBuild_BothYAxesShareRangeAndTicks(t *testing.T) {
	ch, err := Build(sampleLines(), DefaultOptions())
	require.NoError(t, err)

	require.NotEmpty(t, ch.YAxisSecondary.Ticks)
	assert.Equal(t, ch.YAxisSecondary.Ticks, ch.YAxis.Ticks)
	primary := ch.YAxis.Range.(*chart.ContinuousRange)
	secondary := ch.YAxisSecondary.Range.(*chart.ContinuousRange)
	assert.Equal(t, secondary.Min, primary.Min)
	assert.Equal(t, secondary.Max, primary.Max)
	assert.True(t, ch.YAxis.Style.Hidden)

	first := ch.Series[0].(chart.ContinuousSeries)
	assert.Equal(t, drawing.ColorBlack, first.Style.StrokeColor)
	second := ch.Series[1].(chart.ContinuousSeries)
	assert.Equal(t, drawing.ColorBlue, second.Style.StrokeColor)
}

func TestBuild_YRangeIgnoresPointsOutsideXWindow(t *testing.T) {
	lines := sampleLines()
	lines[1].X = append([]float64{-100}, lines[1].X...)
	lines[1].Y = append([]float64{1100}, lines[1].Y...)

	ch, err := Build(lines, DefaultOptions())
	require.NoError(t, err)
	yr := ch.YAxisSecondary.Range.(*chart.ContinuousRange)
	assert.Less(t, yr.Max, 1100.0)
	assert.LessOrEqual(t, yr.Min, 960.0)
}

func TestRender_DefaultEventsWritesChart(t *testing.T) {
	soulik := typhoon.Series{Event: typhoon.Soulik, Hours: []float64{-2, -1, 0, 1, 2}, HPa: []float64{1005, 980, 965, 990, 1001}}
	soudelor := typhoon.Series{Event: typhoon.Soudelor, Hours: []float64{-5, -3, 0, 3, 6}, HPa: []float64{995, 988, 975, 982, 990}}

	img, err := Render(LinesFromSeries([]typhoon.Series{soulik, soudelor}), DefaultOptions())
	require.NoError(t, err)
	require.NotNil(t, img)

	data, err := EncodePNG(img)
	require.NoError(t, err)
	assert.NotEmpty(t, data)
}

func TestBuild_Errors(t *testing.T) {
	_, err := Build(nil, DefaultOptions())
	assert.ErrorIs(t, err, ErrNoData)

	_, err = Build([]Line{{Name: "bad", X: []float64{0, 1}, Y: []float64{1}}}, DefaultOptions())
	assert.Error(t, err)
}

func TestXExtent_SinglePointWidened(t *testing.T) {
	lo, hi := XExtent(Line{X: []float64{3}})
	assert.Less(t, lo, hi)
	lo, hi = XExtent(Line{X: []float64{4, 1, -2}})
	assert.Equal(t, -2.0, lo)
	assert.Equal(t, 4.0, hi)
}

func countPixels(img image.Image, match func(r, g, b uint32) bool) int {
	n := 0
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			r, g, bl, _ := img.At(x, y).RGBA()
			if match(r>>8, g>>8, bl>>8) {
				n++
			}
		}
	}
	return n
}

func TestRender_SizeAndSeriesColors(t *testing.T) {
	img, err := Render(sampleLines(), DefaultOptions())
	require.NoError(t, err)

	assert.Equal(t, 1200, img.Bounds().Dx())
	assert.Equal(t, 900, img.Bounds().Dy())

	blue := countPixels(img, func(r, g, b uint32) bool { return b > 180 && r < 90 && g < 90 })
	assert.Greater(t, blue, 50, "expected the blue series to be drawn")
}

func TestRender_PixelEquivalentAcrossRuns(t *testing.T) {
	a, err := Render(sampleLines(), DefaultOptions())
	require.NoError(t, err)
	b, err := Render(sampleLines(), DefaultOptions())
	require.NoError(t, err)

	require.Equal(t, a.Bounds(), b.Bounds())
	diff := 0
	for y := 0; y < a.Bounds().Dy(); y++ {
		for x := 0; x < a.Bounds().Dx(); x++ {
			if a.At(x, y) != b.At(x, y) {
				diff++
			}
		}
	}
	assert.Zero(t, diff)
}

func TestRender_Footnote(t *testing.T) {
	opts := DefaultOptions()
	plain, err := Render(sampleLines(), opts)
	require.NoError(t, err)

	opts.Footnote = "BMP085 near 25.024179, 121.528492"
	noted, err := Render(sampleLines(), opts)
	require.NoError(t, err)

	changed := 0
	b := plain.Bounds()
	for y := b.Max.Y - 20; y < b.Max.Y; y++ {
		for x := b.Max.X - 300; x < b.Max.X; x++ {
			if plain.At(x, y) != noted.At(x, y) {
				changed++
			}
		}
	}
	assert.Greater(t, changed, 0)
}

func TestEncodePNG_RoundTripsPixels(t *testing.T) {
	img, err := Render(sampleLines(), DefaultOptions())
	require.NoError(t, err)
	data, err := EncodePNG(img)
	require.NoError(t, err)

	back, err := png.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, img.Bounds(), back.Bounds())
	r1, g1, b1, a1 := img.At(600, 450).RGBA()
	r2, g2, b2, a2 := back.At(600, 450).RGBA()
	assert.Equal(t, []uint32{r1, g1, b1, a1}, []uint32{r2, g2, b2, a2})
}

func TestLinesFromSeries(t *testing.T) {
	s := typhoon.Series{Event: typhoon.Soudelor, Hours: []float64{-1, 0}, HPa: []float64{990, 980}}
	lines := LinesFromSeries([]typhoon.Series{s})
	require.Len(t, lines, 1)
	assert.Equal(t, typhoon.Soudelor.Label, lines[0].Name)
	assert.Equal(t, color.RGBA{B: 255, A: 255}, lines[0].Color)
	assert.Equal(t, 1.5, lines[0].Width)
}

func TestWriteFileAtomic(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "Typhoon_Comparison.png")

	require.NoError(t, WriteFileAtomic(p, []byte("first")))
	require.NoError(t, WriteFileAtomic(p, []byte("second")))

	b, err := os.ReadFile(p)
	require.NoError(t, err)
	assert.Equal(t, "second", string(b))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temp files must not be left behind")
}

func TestWriteFileAtomic_MissingDir(t *testing.T) {
	err := WriteFileAtomic(filepath.Join(t.TempDir(), "nope", "out.png"), []byte("x"))
	assert.Error(t, err)
}
