package utils

import "time"

// Lithuania time location (EET/EEST, +02:00/+03:00)
var ltLoc = func() *time.Location {
	if loc, err := time.LoadLocation("Europe/Vilnius"); err == nil {
		return loc
	}
	return time.FixedZone("EET", 2*3600)
}()

func NowUnixSeconds() int64 { return time.Now().Unix() }

// Convert an epoch value in seconds to Lithuanian time.
// Returns zero time if t<=0 to let callers decide how to render.
func FromUnixSecondsLT(t int64) time.Time {
	if t <= 0 {
		return time.Time{}
	}
	return time.Unix(t, 0).In(ltLoc)
}

func FormatRFC3339LT(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.In(ltLoc).Format(time.RFC3339)
}

// FormatDateLT renders a bare date, the form complaint listings use.
func FormatDateLT(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.In(ltLoc).Format("2006-01-02")
}
