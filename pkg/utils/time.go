package utils

import "time"

// DayWindow returns the inclusive [00:00:00, 23:59:59] bounds of now's
// calendar day in now's location, as unix milliseconds.
func DayWindow(now time.Time) (int64, int64) {
	y, m, d := now.Date()
	start := time.Date(y, m, d, 0, 0, 0, 0, now.Location())
	end := time.Date(y, m, d, 23, 59, 59, 0, now.Location())
	return start.UnixMilli(), end.UnixMilli()
}

// FormatDate renders a unix-milli timestamp as an ISO date in loc.
func FormatDate(ms int64, loc *time.Location) string {
	return time.UnixMilli(ms).In(loc).Format("2006-01-02")
}

// CivilDays counts whole calendar days since the unix epoch for t's date.
// Two timestamps on the same calendar day map to the same value, so the
// difference between two results is the calendar-day gap.
func CivilDays(t time.Time) int64 {
	y, m, d := t.Date()
	midnight := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return midnight.Unix() / 86400
}
