package timeutil

import (
	"fmt"
	"time"
)

// Relative форматирует момент времени относительно текущего:
// "Just now", "5 minutes ago", "2 hours ago", "3 days ago"
func Relative(t time.Time) string {
	return RelativeTo(t, time.Now())
}

// RelativeTo форматирует момент времени относительно заданного "сейчас"
func RelativeTo(t, now time.Time) string {
	elapsed := now.Sub(t)

	switch {
	case elapsed < time.Minute:
		return "Just now"
	case elapsed < time.Hour:
		return plural(int(elapsed.Minutes()), "minute")
	case elapsed < 24*time.Hour:
		return plural(int(elapsed.Hours()), "hour")
	default:
		return plural(int(elapsed.Hours()/24), "day")
	}
}

func plural(n int, unit string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s ago", unit)
	}

	return fmt.Sprintf("%d %ss ago", n, unit)
}
