package dto

import "github.com/campus-tools/timetable-api/internal/models"

// ClassBlockItem is one projected class occurrence as served to clients,
// with 12-hour labels and the resolved palette entry alongside the raw
// hour/minute fields.
type ClassBlockItem struct {
	CourseName  string             `json:"course_name"`
	Lecturer    string             `json:"lecturer"`
	Day         string             `json:"day"`
	StartHour   int                `json:"start_hour"`
	StartMinute int                `json:"start_minute"`
	EndHour     int                `json:"end_hour"`
	EndMinute   int                `json:"end_minute"`
	StartLabel  string             `json:"start_label"`
	EndLabel    string             `json:"end_label"`
	Room        string             `json:"room"`
	ColorIndex  int                `json:"color_index"`
	Color       models.CourseColor `json:"color"`
}

// WeekResponse is the current week's projection.
type WeekResponse struct {
	WeekStart   string           `json:"week_start"`
	WeekEnd     string           `json:"week_end"`
	Convention  string           `json:"convention"`
	RamadanMode bool             `json:"ramadan_mode"`
	Blocks      []ClassBlockItem `json:"blocks"`
}

// UpcomingItem is the selected next or ongoing class.
type UpcomingItem struct {
	ClassBlockItem
	Ongoing bool `json:"ongoing"`
}

// ModeResponse reports the Ramadan mode flag.
type ModeResponse struct {
	Active bool `json:"active"`
}

// UpdateModeRequest toggles the Ramadan mode flag.
type UpdateModeRequest struct {
	Active *bool `json:"active" validate:"required"`
}
