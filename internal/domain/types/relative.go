package types

import (
	"time"

	"github.com/dustin/go-humanize"
)

// RelativeDays renders a day offset the way people say it: "today",
// "tomorrow", "5 days from now", "3 days ago".
func RelativeDays(days int) string {
	switch days {
	case 0:
		return "today"
	case 1:
		return "tomorrow"
	}
	now := time.Unix(0, 0)
	return humanize.RelTime(now.Add(time.Duration(days)*humanize.Day), now, "ago", "from now")
}
