package dto

import "github.com/campus-tools/timetable-api/internal/models"

// CreateCourseRequest carries a new course with its raw schedule text. The
// text is normalized by the schedule parser at save time; segments that do
// not fit the schedule grammar are dropped, not rejected.
type CreateCourseRequest struct {
	Name         string `json:"name" validate:"required"`
	Lecturer     string `json:"lecturer" validate:"required"`
	ScheduleText string `json:"schedule_text" validate:"required"`
}

// CourseItem is a stored course with its list position and display color.
// Positions are not stable across deletes.
type CourseItem struct {
	Position int                   `json:"position"`
	Name     string                `json:"name"`
	Lecturer string                `json:"lecturer"`
	Classes  []models.ClassMeeting `json:"classes"`
	Color    models.CourseColor    `json:"color"`
}
