package service

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campus-tools/timetable-api/internal/dto"
)

type weekProviderStub struct {
	week *dto.WeekResponse
	err  error
}

func (s *weekProviderStub) Week(ctx context.Context) (*dto.WeekResponse, error) {
	return s.week, s.err
}

func exportWeek() *dto.WeekResponse {
	return &dto.WeekResponse{
		WeekStart: "2026-02-23",
		WeekEnd:   "2026-03-01",
		Blocks: []dto.ClassBlockItem{{
			CourseName: "Algorithms",
			Lecturer:   "Dr. X",
			Day:        "Mon",
			StartLabel: "8:00 AM",
			EndLabel:   "10:00 AM",
			Room:       "Block-A 101",
		}},
	}
}

func TestExportServiceWeekCSV(t *testing.T) {
	svc := NewExportService(&weekProviderStub{week: exportWeek()}, nil)

	payload, filename, err := svc.WeekCSV(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "timetable-2026-02-23.csv", filename)

	content := string(payload)
	assert.True(t, strings.HasPrefix(content, "Day,Start,End,Course,Lecturer,Room"))
	assert.Contains(t, content, "Mon,8:00 AM,10:00 AM,Algorithms,Dr. X,Block-A 101")
}

func TestExportServiceWeekPDF(t *testing.T) {
	svc := NewExportService(&weekProviderStub{week: exportWeek()}, nil)

	payload, filename, err := svc.WeekPDF(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "timetable-2026-02-23.pdf", filename)
	assert.True(t, strings.HasPrefix(string(payload), "%PDF"))
}
