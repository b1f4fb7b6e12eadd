package timetable

import (
	"time"

	"github.com/campus-tools/timetable-api/internal/models"
)

// Project flattens the stored courses into the class blocks belonging to the
// week around now, preserving course insertion order and within-course
// meeting order.
//
// Week membership is a two-tier rule. A meeting with a parseable date is
// included strictly when that date falls inside the week bounds; the date is
// authoritative and a dated meeting outside the week stays excluded even if
// its weekday is a working day. Only meetings without a usable date fall back
// to the recurring-weekday test. Meetings whose time range cannot be parsed
// contribute nothing.
//
// When compressed is true every block's range is passed through the Ramadan
// slot table before projection.
func (c Convention) Project(courses []models.Course, now time.Time, compressed bool) []ClassBlock {
	bounds := c.WeekBounds(now)
	blocks := make([]ClassBlock, 0)

	for courseIdx, course := range courses {
		colorIdx := courseIdx % len(models.CourseColors)
		for _, meeting := range course.Classes {
			if !c.includes(meeting.Day, bounds, now.Location()) {
				continue
			}
			start, end, ok := ParseTimeRange(meeting.Time)
			if !ok {
				continue
			}
			if compressed {
				start, end = Remap(start, end)
			}
			blocks = append(blocks, ClassBlock{
				CourseName:  course.Name,
				Lecturer:    course.Lecturer,
				Day:         DayToken(meeting.Day),
				StartHour:   start.Hour,
				StartMinute: start.Minute,
				EndHour:     end.Hour,
				EndMinute:   end.Minute,
				Room:        meeting.Room,
				ColorIndex:  colorIdx,
			})
		}
	}
	return blocks
}

func (c Convention) includes(day string, bounds WeekBounds, loc *time.Location) bool {
	if date, ok := MeetingDate(day, loc); ok {
		return bounds.Contains(date)
	}
	return c.IsRecurring(DayToken(day))
}
