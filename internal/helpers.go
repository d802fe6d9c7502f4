package internal

import "time"

const (
	formatDDMMYYYY = "02.01.2006"
)

func Format(date time.Time) string {
	return date.Format(formatDDMMYYYY)
}

// FormatPeriod renders a reporting window; a window inside one day shows that day only.
func FormatPeriod(from, to time.Time) string {
	switch {
	case from.IsZero() && to.IsZero():
		return "all time"
	case from.IsZero():
		return "until " + Format(to)
	case to.IsZero():
		return "since " + Format(from)
	case Format(from) == Format(to):
		return Format(from)
	}
	return Format(from) + " - " + Format(to)
}
