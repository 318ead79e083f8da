package clockface

import "time"

// TimeText formats t for the watch face: "15:04" in 24-hour mode, "3:04"
// in 12-hour mode. The 12-hour form drops the leading zero so the sprite
// narrows for single-digit hours.
func TimeText(t time.Time, twentyFourHour bool) string {
	if twentyFourHour {
		return t.Format("15:04")
	}
	return t.Format("3:04")
}

// NextMinute returns the delay from t until the next minute boundary.
// On an exact boundary it returns a full minute.
func NextMinute(t time.Time) time.Duration {
	return t.Truncate(time.Minute).Add(time.Minute).Sub(t)
}

// IsHourTop reports whether t is in the first minute of an hour, which is
// when the hourly chime plays.
func IsHourTop(t time.Time) bool {
	return t.Minute() == 0
}
