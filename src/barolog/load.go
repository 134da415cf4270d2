package barolog

import (
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
)

func readFrame(r io.Reader) (dataframe.DataFrame, error) {
	df := dataframe.ReadCSV(r,
		dataframe.HasHeader(false),
		dataframe.DetectTypes(false),
		dataframe.DefaultType(series.String),
		dataframe.WithDelimiter(','),
		dataframe.WithComments('#'),
	)
	if df.Err != nil {
		return df, df.Err
	}
	if df.Nrow() == 0 {
		return df, ErrEmptyDataset
	}
	if df.Ncol() <= PressureColumn {
		return df, fmt.Errorf("%w: %d columns, need at least %d", ErrMalformedRow, df.Ncol(), PressureColumn+1)
	}
	return df, nil
}

func loadFrame(path string) (dataframe.DataFrame, error) {
	f, err := os.Open(path)
	if err != nil {
		return dataframe.DataFrame{}, err
	}
	defer f.Close()
	df, err := readFrame(f)
	if err != nil {
		return df, fmt.Errorf("read %s: %w", path, err)
	}
	return df, nil
}

// ReadCSV parses a single logger file from r.
func ReadCSV(r io.Reader, name string, format Format) (Dataset, error) {
	df, err := readFrame(r)
	if err != nil {
		return Dataset{}, fmt.Errorf("read %s: %w", name, err)
	}
	return frameToDataset(df, name, format)
}

// LoadFiles reads every path and concatenates the rows in argument order.
// Rows are neither sorted nor de-duplicated at file boundaries.
func LoadFiles(name string, format Format, paths ...string) (Dataset, error) {
	if len(paths) == 0 {
		return Dataset{}, fmt.Errorf("%s: no input files: %w", name, ErrEmptyDataset)
	}
	var all dataframe.DataFrame
	for i, p := range paths {
		df, err := loadFrame(p)
		if err != nil {
			return Dataset{}, err
		}
		if i == 0 {
			all = df
			continue
		}
		if df.Ncol() != all.Ncol() {
			return Dataset{}, fmt.Errorf("append %s: %w: %d columns, previous files have %d", p, ErrMalformedRow, df.Ncol(), all.Ncol())
		}
		all = all.RBind(df)
		if all.Err != nil {
			return Dataset{}, fmt.Errorf("append %s: %w", p, all.Err)
		}
	}
	return frameToDataset(all, name, format)
}

func frameToDataset(df dataframe.DataFrame, name string, format Format) (Dataset, error) {
	n := df.Nrow()
	ds := Dataset{
		Name:      name,
		Times:     make([]float64, n),
		Pressures: make([]float64, n),
	}
	cols := df.Ncol()
	for i := 0; i < n; i++ {
		for j := 0; j < cols; j++ {
			e := df.Elem(i, j)
			if e.IsNA() {
				return Dataset{}, fmt.Errorf("%s row %d column %d: %w: missing value", name, i+1, j, ErrMalformedRow)
			}
			var v float64
			var err error
			if j == TimeColumn {
				v, err = parseTime(e.String(), format)
			} else {
				v, err = parseFloat(e.String())
			}
			if err != nil {
				return Dataset{}, fmt.Errorf("%s row %d column %d: %w: %v", name, i+1, j, ErrMalformedRow, err)
			}
			switch j {
			case TimeColumn:
				ds.Times[i] = v
			case PressureColumn:
				ds.Pressures[i] = v
			}
		}
	}
	return ds, nil
}

func parseTime(s string, format Format) (float64, error) {
	switch format {
	case FormatEpochSeconds:
		return parseFloat(s)
	case FormatTimestamp:
		t, err := time.ParseInLocation(TimestampLayout, strings.TrimSpace(s), time.UTC)
		if err != nil {
			return 0, err
		}
		return float64(t.Unix()) + float64(t.Nanosecond())/1e9, nil
	default:
		return 0, fmt.Errorf("unsupported time format %v", format)
	}
}

func parseFloat(s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("non-finite value %q", s)
	}
	return v, nil
}
