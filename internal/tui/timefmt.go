package tui

import (
	"fmt"
	"time"
)

// relativeAge renders "how long ago" labels for the history sidebar and
// message headers.
func relativeAge(thenMillis int64, now time.Time) string {
	then := time.UnixMilli(thenMillis)
	d := now.Sub(then)
	switch {
	case d < 0 || d < time.Minute:
		return "just now"
	case d < time.Hour:
		return fmt.Sprintf("%dm ago", int(d.Minutes()))
	case d < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(d.Hours()))
	case d < 30*24*time.Hour:
		return fmt.Sprintf("%dd ago", int(d.Hours()/24))
	default:
		return then.Format("2006-01-02")
	}
}
