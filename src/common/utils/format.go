package utils

import "fmt"

// walks of a day or more are not worth printing as a clock time
const maxWalkingSeconds = 86400

// FormatWalkingTime renders a walking duration in seconds as hh:mm:ss, or
// "too long" for anything of a day or more.
func FormatWalkingTime(seconds int64) string {
	if seconds >= maxWalkingSeconds || seconds < 0 {
		return "too long"
	}

	hours := seconds / 3600
	minutes := (seconds % 3600) / 60
	secs := seconds % 60
	return fmt.Sprintf("%02d:%02d:%02d", hours, minutes, secs)
}
