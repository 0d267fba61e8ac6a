package service

import (
	"fmt"
	"time"
)

var seoul = loadSeoul()

// Korea has not observed DST since 1988, so a fixed +09:00 zone is an exact
// fallback when the tz database is unavailable.
func loadSeoul() *time.Location {
	loc, err := time.LoadLocation("Asia/Seoul")
	if err != nil {
		return time.FixedZone("KST", 9*60*60)
	}
	return loc
}

// FormatTimestamp renders t the way a ko-KR locale renders a date-time in
// Asia/Seoul, e.g. "2025. 1. 5. 오후 3:04:05".
func FormatTimestamp(t time.Time) string {
	t = t.In(seoul)

	period := "오전"
	if t.Hour() >= 12 {
		period = "오후"
	}
	hour := t.Hour() % 12
	if hour == 0 {
		hour = 12
	}

	return fmt.Sprintf("%d. %d. %d. %s %d:%02d:%02d",
		t.Year(), int(t.Month()), t.Day(), period, hour, t.Minute(), t.Second())
}
