package typhoon

import (
	"encoding/json"
	"os"
)

// EventSummary is the per-event part of Summary.
type EventSummary struct {
	Name           string   `json:"name"`
	Year           int      `json:"year"`
	Files          []string `json:"files"`
	Rows           int      `json:"rows"`
	MinIndex       int      `json:"min_index"`
	MinPressureHPa float64  `json:"min_pressure_hpa"`
	HoursBefore    float64  `json:"hours_before_min"`
	HoursAfter     float64  `json:"hours_after_min"`
}

// Summary describes one comparison run.
type Summary struct {
	Sensor    string         `json:"sensor"`
	Latitude  float64        `json:"latitude"`
	Longitude float64        `json:"longitude"`
	Output    string         `json:"output,omitempty"`
	Events    []EventSummary `json:"events"`
}

// Summarize collects the headline numbers of each aligned series.
func Summarize(series []Series, output string) Summary {
	sum := Summary{
		Sensor:    Sensor,
		Latitude:  SiteLatitude,
		Longitude: SiteLongitude,
		Output:    output,
		Events:    make([]EventSummary, 0, len(series)),
	}
	for _, s := range series {
		sum.Events = append(sum.Events, EventSummary{
			Name:           s.Event.Name,
			Year:           s.Event.Year,
			Files:          s.Event.Files,
			Rows:           s.Rows,
			MinIndex:       s.MinIndex,
			MinPressureHPa: s.MinPressure(),
			HoursBefore:    s.HoursBefore(),
			HoursAfter:     s.HoursAfter(),
		})
	}
	return sum
}

// WriteJSON writes the summary as indented JSON.
func (s Summary) WriteJSON(path string) error {
	b, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, append(b, '\n'), 0o644)
}
