package render

// ClipToRange keeps the part of the polyline (xs, ys) that lies within
// lo <= x <= hi. Where a segment crosses an edge, an interpolated point is
// added on the edge so the line ends exactly at the plot border.
func ClipToRange(xs, ys []float64, lo, hi float64) ([]float64, []float64) {
	if lo > hi {
		lo, hi = hi, lo
	}
	inside := func(x float64) bool { return x >= lo && x <= hi }
	var cx, cy []float64
	for i := range xs {
		if i > 0 {
			for _, e := range crossings(xs[i-1], xs[i], lo, hi) {
				cx = append(cx, e)
				cy = append(cy, lerp(xs[i-1], ys[i-1], xs[i], ys[i], e))
			}
		}
		if inside(xs[i]) {
			cx = append(cx, xs[i])
			cy = append(cy, ys[i])
		}
	}
	return cx, cy
}

// crossings returns the edges strictly between a and b, ordered from a towards b.
func crossings(a, b, lo, hi float64) []float64 {
	var out []float64
	if a < b {
		for _, e := range []float64{lo, hi} {
			if a < e && e < b {
				out = append(out, e)
			}
		}
	} else if a > b {
		for _, e := range []float64{hi, lo} {
			if b < e && e < a {
				out = append(out, e)
			}
		}
	}
	return out
}

func lerp(x0, y0, x1, y1, x float64) float64 {
	return y0 + (y1-y0)*(x-x0)/(x1-x0)
}
