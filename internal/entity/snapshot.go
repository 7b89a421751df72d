package entity

import "time"

// Weekdays is indexed by ISO weekday with Monday = 0.
var Weekdays = [7]string{"Mon.", "Tue.", "Wed.", "Thu.", "Fri.", "Sat.", "Sun."}

// TimeSnapshot is what one tick puts on screen.
type TimeSnapshot struct {
	Time    string // 15:04:05
	Date    string // 2006-01-02 (Mon.)
	Weekday string
}

// NewTimeSnapshot formats t in its own location.
func NewTimeSnapshot(t time.Time) TimeSnapshot {
	wd := Weekdays[ISOWeekday(t)]
	return TimeSnapshot{
		Time:    t.Format("15:04:05"),
		Date:    t.Format("2006-01-02") + " (" + wd + ")",
		Weekday: wd,
	}
}

// ISOWeekday maps time.Weekday (Sunday = 0) onto Monday = 0 ... Sunday = 6.
func ISOWeekday(t time.Time) int {
	return (int(t.Weekday()) + 6) % 7
}
