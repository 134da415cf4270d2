package typhoon

import (
	"fmt"
	"path/filepath"

	"github.com/imrehg/typhoons/src/barolog"
	"github.com/imrehg/typhoons/src/logging"
)

// Series is an event re-centred on its pressure minimum, in display units.
type Series struct {
	Event    Event
	Rows     int
	MinIndex int
	// Hours is the time-delta from the minimum; Hours[MinIndex] == 0.
	Hours []float64
	HPa   []float64
}

// MinPressure returns the lowest pressure in hPa.
func (s Series) MinPressure() float64 { return s.HPa[s.MinIndex] }

// HoursBefore returns how long the log runs before the minimum, as a positive number.
func (s Series) HoursBefore() float64 { return -s.Hours[0] }

// HoursAfter returns how long the log runs past the minimum.
func (s Series) HoursAfter() float64 { return s.Hours[len(s.Hours)-1] }

// Align locates the pressure minimum of ds and converts it into a Series.
func Align(ev Event, ds barolog.Dataset) (Series, error) {
	k, err := barolog.MinIndex(ds.Pressures)
	if err != nil {
		return Series{}, fmt.Errorf("%s: %w", ev.Title(), err)
	}
	delta := barolog.Recenter(ds.Times, k)
	return Series{
		Event:    ev,
		Rows:     ds.Len(),
		MinIndex: k,
		Hours:    barolog.ConvertDates(delta),
		HPa:      barolog.ConvertPressures(ds.Pressures),
	}, nil
}

// Load reads every file of ev from dir.
func Load(dir string, ev Event) (barolog.Dataset, error) {
	paths := make([]string, len(ev.Files))
	for i, f := range ev.Files {
		paths[i] = filepath.Join(dir, f)
	}
	return barolog.LoadFiles(ev.Title(), ev.Format, paths...)
}

// Compare loads and aligns every event in order. The first failure aborts.
func Compare(dir string, events []Event) ([]Series, error) {
	defer logging.TimeTrack(logging.Now(), "load and align")
	out := make([]Series, 0, len(events))
	for _, ev := range events {
		ds, err := Load(dir, ev)
		if err != nil {
			return nil, err
		}
		s, err := Align(ev, ds)
		if err != nil {
			return nil, err
		}
		logging.Infof("[%s] rows=%d files=%d min=%.2fhPa at row %d (%.1fh before, %.1fh after)",
			ev.Title(), s.Rows, len(ev.Files), s.MinPressure(), s.MinIndex, s.HoursBefore(), s.HoursAfter())
		out = append(out, s)
	}
	return out, nil
}
