package report

import "fmt"

// FormatTimeMillis renders a millisecond duration as M:SS.mmm, with unbounded
// minutes, for example 61234 -> "1:01.234".
func FormatTimeMillis(millis int64) string {
	minutes := millis / 60000
	millis -= minutes * 60000
	seconds := millis / 1000
	millis -= seconds * 1000
	return fmt.Sprintf("%d:%02d.%03d", minutes, seconds, millis)
}
