package barolog

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMinIndex(t *testing.T) {
	cases := []struct {
		name   string
		values []float64
		want   int
	}{
		{"single", []float64{101325}, 0},
		{"middle", []float64{101325, 100500, 101000}, 1},
		{"last", []float64{3, 2, 1}, 2},
		{"ties pick first", []float64{5, 1, 4, 1, 1}, 1},
		{"negative", []float64{0, -2, -1}, 1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := MinIndex(tc.values)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestMinIndex_Empty(t *testing.T) {
	_, err := MinIndex(nil)
	assert.ErrorIs(t, err, ErrEmptyDataset)
}

func TestRecenter_ZeroAtReference(t *testing.T) {
	times := []float64{100, 160, 220, 280}
	for k := range times {
		got := Recenter(times, k)
		assert.Equal(t, 0.0, got[k])
		assert.Len(t, got, len(times))
	}
	assert.Equal(t, []float64{-60, 0, 60, 120}, Recenter(times, 1))
	// input is not modified
	assert.Equal(t, []float64{100, 160, 220, 280}, times)
}

func TestSamplePressuresAlignOnMinimum(t *testing.T) {
	body := "1000,25,101325\n1060,25,100500\n1120,25,101000\n"
	ds, err := ReadCSV(strings.NewReader(body), "soulik", FormatEpochSeconds)
	require.NoError(t, err)

	k, err := MinIndex(ds.Pressures)
	require.NoError(t, err)
	assert.Equal(t, 1, k)

	delta := Recenter(ds.Times, k)
	assert.Equal(t, 0.0, delta[k])
	assert.Equal(t, []float64{-60, 0, 60}, delta)
}

func TestConverters_Invertible(t *testing.T) {
	for _, x := range []float64{0, 1, -1, 3600, 101325, 96342.5, -7200.25, 1e9, math.SmallestNonzeroFloat64} {
		assert.InDelta(t, x, ConvertPressure(x)*100, 1e-9*math.Max(1, math.Abs(x)))
		assert.InDelta(t, x, ConvertDate(x)*3600, 1e-9*math.Max(1, math.Abs(x)))
	}
}

func TestConverters_Values(t *testing.T) {
	assert.Equal(t, 1013.25, ConvertPressure(101325))
	assert.Equal(t, 2.0, ConvertDate(7200))
	assert.Equal(t, []float64{-1, 0, 0.5}, ConvertDates([]float64{-3600, 0, 1800}))
	assert.Equal(t, []float64{1005, 1010.5}, ConvertPressures([]float64{100500, 101050}))
	assert.Empty(t, ConvertDates(nil))
}
