package timetable

import "time"

// WeekBounds spans exactly seven calendar days: midnight of the week's first
// day through the last millisecond of its seventh.
type WeekBounds struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// Contains reports whether t falls inside the bounds (both ends inclusive).
func (b WeekBounds) Contains(t time.Time) bool {
	return !t.Before(b.Start) && !t.After(b.End)
}

// WeekBounds locates the current week for a reference instant. The start is
// found by walking back to the convention's first weekday, so bounds stay
// correct across month and year edges.
func (c Convention) WeekBounds(now time.Time) WeekBounds {
	back := (int(now.Weekday()) - int(c.WeekStart) + 7) % 7
	year, month, day := now.Date()
	start := time.Date(year, month, day-back, 0, 0, 0, 0, now.Location())
	last := start.AddDate(0, 0, 6)
	end := time.Date(last.Year(), last.Month(), last.Day(), 23, 59, 59, int(999*time.Millisecond), last.Location())
	return WeekBounds{Start: start, End: end}
}
