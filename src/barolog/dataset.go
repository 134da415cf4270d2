package barolog

import "errors"

// Column positions shared by both logger formats.
const (
	TimeColumn     = 0
	PressureColumn = 2
)

// TimestampLayout matches the 2015 logger's "%Y-%m-%d %H:%M:%S.%f" stamps.
const TimestampLayout = "2006-01-02 15:04:05.999999"

var (
	// ErrEmptyDataset is returned when a file or series has no rows.
	ErrEmptyDataset = errors.New("empty dataset")
	// ErrMalformedRow is returned for rows with missing or unparsable fields.
	ErrMalformedRow = errors.New("malformed row")
)

// Format selects how the time column is decoded.
type Format int

const (
	FormatEpochSeconds Format = iota
	FormatTimestamp
)

func (f Format) String() string {
	switch f {
	case FormatEpochSeconds:
		return "epoch-seconds"
	case FormatTimestamp:
		return "timestamp"
	default:
		return "unknown"
	}
}

// Dataset is one recording: time in seconds and pressure in pascal, row aligned.
type Dataset struct {
	Name      string
	Times     []float64
	Pressures []float64
}

// Len returns the number of rows.
func (d Dataset) Len() int { return len(d.Times) }
