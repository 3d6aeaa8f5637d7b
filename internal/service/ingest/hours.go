package ingest

import (
	"math"
	"strconv"
	"strings"
	"time"
)

const clockLayout = "15:04"

// computeHours converts an entry's timing fields into a non-negative
// fractional-hour value. An explicit start/end pair takes precedence over
// the textual duration; the duration field accepts "H:MM" or a plain
// decimal. Hour computation is advisory: anything unparseable resolves to
// 0.0 rather than failing the record.
func computeHours(start, end, duration *string) float64 {
	if start != nil && end != nil {
		from, errFrom := time.Parse(clockLayout, *start)
		to, errTo := time.Parse(clockLayout, *end)
		if errFrom == nil && errTo == nil {
			h := to.Sub(from).Hours()
			if h < 0 {
				return 0
			}
			return round2(h)
		}
	}

	if duration == nil {
		return 0
	}

	text := strings.TrimSpace(*duration)
	if h, m, ok := strings.Cut(text, ":"); ok {
		hours, errH := strconv.ParseFloat(h, 64)
		minutes, errM := strconv.ParseFloat(m, 64)
		if errH != nil || errM != nil || hours < 0 || minutes < 0 {
			return 0
		}
		return round2(hours + minutes/60)
	}

	v, err := strconv.ParseFloat(text, 64)
	if err != nil || v < 0 {
		return 0
	}
	return round2(v)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
