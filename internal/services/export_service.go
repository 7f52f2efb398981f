package services

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/Mallqui258/Automatizacion2/internal/metrics"
	"github.com/Mallqui258/Automatizacion2/internal/models"
	"github.com/Mallqui258/Automatizacion2/internal/repositories"
	"github.com/Mallqui258/Automatizacion2/internal/scoring"
	"github.com/xuri/excelize/v2"
)

// Export formats
const (
	ExportFormatXLSX = "xlsx"
	ExportFormatCSV  = "csv"
)

const exportSheet = "Sessions"

const exportTimeLayout = "2006-01-02 15:04:05"

// ExportService writes stored sessions, with their answers and scored
// profile, as a spreadsheet.
type ExportService interface {
	ExportSessions(ctx context.Context, format string, filters repositories.SessionFilters) (*ExportFile, error)
}

type ExportFile struct {
	Name        string
	ContentType string
	Data        []byte
}

type exportService struct {
	repo   repositories.Repository
	engine *scoring.Engine
	logger *ServiceLogger
	now    func() time.Time
}

func NewExportService(repo repositories.Repository, engine *scoring.Engine, logger *slog.Logger) ExportService {
	return &exportService{
		repo:   repo,
		engine: engine,
		logger: NewServiceLogger(logger, LogConfig{Service: "casm83", Component: "export"}),
		now:    func() time.Time { return time.Now().UTC() },
	}
}

func (s *exportService) ExportSessions(ctx context.Context, format string, filters repositories.SessionFilters) (file *ExportFile, err error) {
	op := s.logger.WithOperation(ctx, "export_sessions", "")
	defer func() { op.LogResult(err) }()

	format = strings.ToLower(strings.TrimSpace(format))
	if format == "" {
		format = ExportFormatXLSX
	}
	if format != ExportFormatXLSX && format != ExportFormatCSV {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedExportFormat, format)
	}

	start := time.Now()
	defer metrics.ObserveExport(format, start)

	sessions, _, err := s.repo.Session().ListWithResponses(ctx, filters)
	if err != nil {
		return nil, fmt.Errorf("failed to list sessions: %w", err)
	}

	rows := make([][]interface{}, 0, len(sessions))
	for _, session := range sessions {
		row, err := s.sessionRow(session)
		if err != nil {
			return nil, err
		}
		rows = append(rows, row)
	}

	name := fmt.Sprintf("casm83_sessions_%s.%s", s.now().Format("20060102_150405"), format)
	switch format {
	case ExportFormatCSV:
		data, err := writeCSV(exportHeaders(), rows)
		if err != nil {
			return nil, err
		}
		return &ExportFile{Name: name, ContentType: "text/csv; charset=utf-8", Data: data}, nil
	default:
		data, err := writeXLSX(exportHeaders(), rows)
		if err != nil {
			return nil, err
		}
		return &ExportFile{
			Name:        name,
			ContentType: "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
			Data:        data,
		}, nil
	}
}

// exportHeaders lists the columns: session data, score and level per scale,
// then one column per question.
func exportHeaders() []string {
	headers := []string{"session_id", "sex", "completed", "created_at", "completed_at", "answered_questions"}
	for _, code := range models.AllScales() {
		headers = append(headers, code.String()+"_score", code.String()+"_level")
	}
	for n := 1; n <= models.TotalQuestions; n++ {
		headers = append(headers, "Q"+strconv.Itoa(n))
	}
	return headers
}

func (s *exportService) sessionRow(session *models.TestSession) ([]interface{}, error) {
	answers := session.Answers()
	profile, err := s.engine.Profile(session.Sex, answers)
	if err != nil {
		return nil, fmt.Errorf("failed to score session %s: %w", session.ID, err)
	}

	completedAt := ""
	if session.CompletedAt != nil {
		completedAt = session.CompletedAt.UTC().Format(exportTimeLayout)
	}

	row := []interface{}{
		session.ID,
		string(session.Sex),
		session.Completed,
		session.CreatedAt.UTC().Format(exportTimeLayout),
		completedAt,
		profile.AnsweredQuestions,
	}
	for _, score := range profile.Scores {
		row = append(row, score.Score, score.Interpretation.String())
	}
	for n := 1; n <= models.TotalQuestions; n++ {
		row = append(row, strings.Join(answers[n].Options(), ""))
	}
	return row, nil
}

func writeCSV(headers []string, rows [][]interface{}) ([]byte, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	if err := writer.Write(headers); err != nil {
		return nil, fmt.Errorf("failed to write CSV header: %w", err)
	}
	record := make([]string, len(headers))
	for _, row := range rows {
		for i, value := range row {
			record[i] = fmt.Sprint(value)
		}
		if err := writer.Write(record); err != nil {
			return nil, fmt.Errorf("failed to write CSV row: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("CSV writer error: %w", err)
	}
	return buf.Bytes(), nil
}

func writeXLSX(headers []string, rows [][]interface{}) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(exportSheet)
	if err != nil {
		return nil, fmt.Errorf("failed to create Excel sheet: %w", err)
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, fmt.Errorf("failed to remove default sheet: %w", err)
	}

	header := make([]interface{}, len(headers))
	for i, h := range headers {
		header[i] = h
	}
	if err := f.SetSheetRow(exportSheet, "A1", &header); err != nil {
		return nil, fmt.Errorf("failed to write Excel header: %w", err)
	}

	for i := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		if err := f.SetSheetRow(exportSheet, cell, &rows[i]); err != nil {
			return nil, fmt.Errorf("failed to write Excel row %d: %w", i+2, err)
		}
	}

	if err := f.SetPanes(exportSheet, &excelize.Panes{
		Freeze:      true,
		XSplit:      1,
		YSplit:      1,
		TopLeftCell: "B2",
		ActivePane:  "bottomRight",
	}); err != nil {
		return nil, fmt.Errorf("failed to freeze header: %w", err)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to write Excel file: %w", err)
	}
	return buf.Bytes(), nil
}
