package render

import (
	"strings"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

const (
	legendMargin      = 12
	legendPadding     = 10
	legendSampleLen   = 36
	legendSampleGap   = 10
	legendLineSpacing = 4
	legendEntryGap    = 12
)

var legendDefaults = chart.Style{
	FillColor:   drawing.ColorWhite,
	FontColor:   drawing.ColorBlack,
	FontSize:    10,
	StrokeColor: drawing.ColorFromHex("bbbbbb"),
	StrokeWidth: 1,
}

type legendEntry struct {
	lines []string
	style chart.Style
	width int
	// heights of each text line
	heights []int
}

func (e legendEntry) height() int {
	h := 0
	for i, lh := range e.heights {
		if i > 0 {
			h += legendLineSpacing
		}
		h += lh
	}
	return h
}

// lowerLeftLegend draws a legend anchored to the bottom-left corner of the
// plot area. Series names may contain newlines; each line is drawn separately.
func lowerLeftLegend(c *chart.Chart, userDefaults chart.Style) chart.Renderable {
	return func(r chart.Renderer, cb chart.Box, chartDefaults chart.Style) {
		st := userDefaults.InheritFrom(chartDefaults.InheritFrom(legendDefaults))
		r.SetFont(st.GetFont())
		r.SetFontSize(st.GetFontSize())
		r.SetFontColor(st.GetFontColor())

		var entries []legendEntry
		for _, s := range c.Series {
			name := s.GetName()
			if name == "" {
				continue
			}
			e := legendEntry{lines: strings.Split(name, "\n"), style: s.GetStyle()}
			for _, line := range e.lines {
				tb := r.MeasureText(line)
				if tb.Width() > e.width {
					e.width = tb.Width()
				}
				e.heights = append(e.heights, tb.Height())
			}
			entries = append(entries, e)
		}
		if len(entries) == 0 {
			return
		}

		contentW, contentH := 0, 0
		for i, e := range entries {
			if i > 0 {
				contentH += legendEntryGap
			}
			contentH += e.height()
			if w := legendSampleLen + legendSampleGap + e.width; w > contentW {
				contentW = w
			}
		}
		box := chart.Box{
			Left:   cb.Left + legendMargin,
			Bottom: cb.Bottom - legendMargin,
		}
		box.Right = box.Left + contentW + 2*legendPadding
		box.Top = box.Bottom - contentH - 2*legendPadding

		r.SetFillColor(st.GetFillColor())
		r.SetStrokeColor(st.GetStrokeColor())
		r.SetStrokeWidth(st.GetStrokeWidth())
		r.MoveTo(box.Left, box.Top)
		r.LineTo(box.Right, box.Top)
		r.LineTo(box.Right, box.Bottom)
		r.LineTo(box.Left, box.Bottom)
		r.LineTo(box.Left, box.Top)
		r.Close()
		r.FillStroke()

		r.SetFont(st.GetFont())
		r.SetFontSize(st.GetFontSize())
		r.SetFontColor(st.GetFontColor())
		y := box.Top + legendPadding
		sx := box.Left + legendPadding
		tx := sx + legendSampleLen + legendSampleGap
		for i, e := range entries {
			if i > 0 {
				y += legendEntryGap
			}
			mid := y + e.height()/2
			r.SetStrokeColor(e.style.GetStrokeColor())
			r.SetStrokeWidth(e.style.GetStrokeWidth())
			r.MoveTo(sx, mid)
			r.LineTo(sx+legendSampleLen, mid)
			r.Stroke()

			ly := y
			for j, line := range e.lines {
				if j > 0 {
					ly += legendLineSpacing
				}
				ly += e.heights[j]
				r.Text(line, tx, ly)
			}
			y += e.height()
		}
	}
}
