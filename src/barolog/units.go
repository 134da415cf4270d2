package barolog

// ConvertDate converts seconds to hours.
func ConvertDate(seconds float64) float64 { return seconds / 3600 }

// ConvertPressure converts pascal to hectopascal.
func ConvertPressure(pa float64) float64 { return pa / 100.0 }

// ConvertDates applies ConvertDate to every element.
func ConvertDates(seconds []float64) []float64 { return mapValues(seconds, ConvertDate) }

// ConvertPressures applies ConvertPressure to every element.
func ConvertPressures(pa []float64) []float64 { return mapValues(pa, ConvertPressure) }

func mapValues(in []float64, fn func(float64) float64) []float64 {
	out := make([]float64, len(in))
	for i, v := range in {
		out[i] = fn(v)
	}
	return out
}
