package render

import (
	"math"
	"strconv"

	chart "github.com/wcharczuk/go-chart/v2"
)

// niceStep picks a 1/2/2.5/5 x 10^k step that splits span into roughly n intervals.
func niceStep(span float64, n int) float64 {
	mag := math.Pow(10, math.Floor(math.Log10(span/float64(n-1))))
	best := mag
	bestScore := math.MaxFloat64
	for _, c := range []float64{1, 2, 2.5, 5, 10} {
		step := c * mag
		count := math.Max(2, math.Ceil(span/step))
		if score := math.Abs(count - float64(n)); score < bestScore {
			bestScore = score
			best = step
		}
	}
	return best
}

// niceAxisBounds widens [min,max] by 5% and snaps both ends outward to the
// tick step, so the first and last tick sit on the axis ends.
func niceAxisBounds(min, max float64) (float64, float64) {
	if math.IsNaN(min) || math.IsNaN(max) {
		return min, max
	}
	if max <= min {
		max = min + 1
	}
	pad := (max - min) * 0.05
	step := niceStep(max-min+2*pad, 8)
	return math.Floor((min-pad)/step) * step, math.Ceil((max+pad)/step) * step
}

// niceTicks generates roughly n ticks covering [min, max]. Ticks outside
// [min, max] are dropped so they never land off the plot.
func niceTicks(min, max float64, n int) []chart.Tick {
	if n < 2 || math.IsNaN(min) || math.IsNaN(max) {
		return nil
	}
	if max <= min {
		max = min + 1
	}
	step := niceStep(max-min, n)
	eps := step * 1e-9
	start := math.Ceil((min-eps)/step) * step
	ticks := []chart.Tick{}
	for i := 0; ; i++ {
		v := start + float64(i)*step
		if v > max+eps || len(ticks) > n+2 {
			break
		}
		ticks = append(ticks, chart.Tick{Value: v, Label: formatTick(v)})
	}
	return ticks
}

func formatTick(v float64) string {
	r := math.Round(v*1e6) / 1e6
	if r == 0 {
		return "0"
	}
	return strconv.FormatFloat(r, 'f', -1, 64)
}
