package entity

import (
	"image"
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewTimeSnapshot(t *testing.T) {
	tests := []struct {
		at   time.Time
		time string
		date string
	}{
		{time.Date(2025, 4, 12, 9, 5, 3, 0, time.UTC), "09:05:03", "2025-04-12 (Sat.)"},
		{time.Date(2025, 4, 13, 23, 59, 59, 0, time.UTC), "23:59:59", "2025-04-13 (Sun.)"},
		{time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), "00:00:00", "2024-01-01 (Mon.)"},
		{time.Date(2026, 10, 21, 12, 30, 0, 0, time.UTC), "12:30:00", "2026-10-21 (Wed.)"},
	}
	for _, tt := range tests {
		snap := NewTimeSnapshot(tt.at)
		assert.Equal(t, tt.time, snap.Time)
		assert.Equal(t, tt.date, snap.Date)
	}
}

func TestSnapshotPatternsAllWeekdays(t *testing.T) {
	timeRe := regexp.MustCompile(`^\d{2}:\d{2}:\d{2}$`)
	dateRe := regexp.MustCompile(`^\d{4}-\d{2}-\d{2} \((Mon|Tue|Wed|Thu|Fri|Sat|Sun)\.\)$`)

	// 2025-03-03 is a Monday
	start := time.Date(2025, 3, 3, 7, 8, 9, 0, time.Local)
	for i := 0; i < 14; i++ {
		at := start.AddDate(0, 0, i).Add(time.Duration(i) * 37 * time.Minute)
		snap := NewTimeSnapshot(at)
		assert.Regexp(t, timeRe, snap.Time)
		assert.Regexp(t, dateRe, snap.Date)
		assert.Equal(t, Weekdays[i%7], snap.Weekday)
		assert.Equal(t, i%7, ISOWeekday(start.AddDate(0, 0, i)))
	}
}

func TestOverlayStateBackground(t *testing.T) {
	var s OverlayState
	assert.False(t, s.HasBackground())
	w, h := s.BackgroundSize()
	assert.Zero(t, w)
	assert.Zero(t, h)

	s.Background = image.NewRGBA(image.Rect(0, 0, 32, 18))
	assert.True(t, s.HasBackground())
	w, h = s.BackgroundSize()
	assert.Equal(t, 32, w)
	assert.Equal(t, 18, h)
}
