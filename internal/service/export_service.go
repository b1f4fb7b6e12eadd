package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/campus-tools/timetable-api/internal/dto"
	"github.com/campus-tools/timetable-api/pkg/export"
)

type weekProvider interface {
	Week(ctx context.Context) (*dto.WeekResponse, error)
}

// ExportService renders the current week as downloadable CSV or PDF.
type ExportService struct {
	weeks  weekProvider
	csv    *export.CSVExporter
	pdf    *export.PDFExporter
	logger *zap.Logger
}

// NewExportService instantiates ExportService.
func NewExportService(weeks weekProvider, logger *zap.Logger) *ExportService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ExportService{
		weeks:  weeks,
		csv:    export.NewCSVExporter(),
		pdf:    export.NewPDFExporter(),
		logger: logger,
	}
}

// WeekCSV renders the current week as CSV bytes.
func (s *ExportService) WeekCSV(ctx context.Context) ([]byte, string, error) {
	week, err := s.weeks.Week(ctx)
	if err != nil {
		return nil, "", err
	}
	payload, err := s.csv.Render(weekDataset(week))
	if err != nil {
		return nil, "", fmt.Errorf("render week csv: %w", err)
	}
	return payload, exportFilename(week, "csv"), nil
}

// WeekPDF renders the current week as PDF bytes.
func (s *ExportService) WeekPDF(ctx context.Context) ([]byte, string, error) {
	week, err := s.weeks.Week(ctx)
	if err != nil {
		return nil, "", err
	}
	title := fmt.Sprintf("Weekly Timetable %s - %s", week.WeekStart, week.WeekEnd)
	payload, err := s.pdf.Render(weekDataset(week), title)
	if err != nil {
		return nil, "", fmt.Errorf("render week pdf: %w", err)
	}
	return payload, exportFilename(week, "pdf"), nil
}

func weekDataset(week *dto.WeekResponse) export.Dataset {
	headers := []string{"Day", "Start", "End", "Course", "Lecturer", "Room"}
	rows := make([]map[string]string, 0, len(week.Blocks))
	for _, block := range week.Blocks {
		rows = append(rows, map[string]string{
			"Day":      block.Day,
			"Start":    block.StartLabel,
			"End":      block.EndLabel,
			"Course":   block.CourseName,
			"Lecturer": block.Lecturer,
			"Room":     block.Room,
		})
	}
	return export.Dataset{Headers: headers, Rows: rows}
}

func exportFilename(week *dto.WeekResponse, ext string) string {
	return fmt.Sprintf("timetable-%s.%s", week.WeekStart, ext)
}
