// Package typhoon describes the recorded typhoon passages and turns raw
// pressure logs into series aligned on the eye passage.
//
// Data was recorded with a BMP085 breakout board, an Arduino Nano and a
// Raspberry Pi, near (but not exactly at) 25.024179, 121.528492.
package typhoon

import (
	"fmt"
	"image/color"

	"github.com/imrehg/typhoons/src/barolog"
)

// Recording site and hardware, shared by both events.
const (
	SiteLatitude  = 25.024179
	SiteLongitude = 121.528492
	Sensor        = "BMP085"
)

// Event is one typhoon passage and the logger files that captured it.
type Event struct {
	Name   string
	Year   int
	Label  string // legend text, may span lines
	Color  color.RGBA
	Files  []string
	Format barolog.Format
}

// Soulik (2013) was logged in a single file with epoch seconds.
var Soulik = Event{
	Name:   "Soulik",
	Year:   2013,
	Label:  "Soulik (2013)\n[Eye passing almost directly above]",
	Color:  color.RGBA{A: 255},
	Files:  []string{"barolog_201307111346.csv"},
	Format: barolog.FormatEpochSeconds,
}

// Soudelor (2015) was logged in two files; recording stopped briefly and resumed.
var Soudelor = Event{
	Name:   "Soudelor",
	Year:   2015,
	Label:  "Soudelor (2015)\n[Eye passing about 70km away]",
	Color:  color.RGBA{B: 255, A: 255},
	Files:  []string{"templog_20150807_190517.csv", "templog_20150808_183532.csv"},
	Format: barolog.FormatTimestamp,
}

// DefaultEvents returns the compared events in plot order. The first event
// defines the x-axis extent.
func DefaultEvents() []Event {
	return []Event{Soulik, Soudelor}
}

// Title returns "Name (Year)".
func (e Event) Title() string {
	return fmt.Sprintf("%s (%d)", e.Name, e.Year)
}
