package barolog

// MinIndex returns the index of the smallest value. Ties resolve to the
// earliest index.
func MinIndex(values []float64) (int, error) {
	if len(values) == 0 {
		return 0, ErrEmptyDataset
	}
	best := 0
	for i := 1; i < len(values); i++ {
		if values[i] < values[best] {
			best = i
		}
	}
	return best, nil
}

// Recenter returns times shifted so that times[ref] becomes zero.
func Recenter(times []float64, ref int) []float64 {
	out := make([]float64, len(times))
	origin := times[ref]
	for i, t := range times {
		out[i] = t - origin
	}
	return out
}
