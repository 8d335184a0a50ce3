// Package reportrepository contains the PostgreSQL implementation of the
// grade report repository
package reportrepository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"gitlab.com/cgrader-2025.net/internal/core/ports/primary"
	"gitlab.com/cgrader-2025.net/internal/core/ports/secondary"
	"gitlab.com/cgrader-2025.net/internal/domain"
)

var _ secondary.ReportRepository = (*ReportRepository)(nil)

// ReportRepository persists grade reports with PostgreSQL
type ReportRepository struct {
	db     *sqlx.DB
	logger primary.Logger
}

// NewReportRepository creates a new PostgreSQL report repository
func NewReportRepository(db *sqlx.DB, logger primary.Logger) *ReportRepository {
	return &ReportRepository{
		db:     db,
		logger: logger,
	}
}

type reportRow struct {
	ID        uuid.UUID    `db:"id"`
	StudentID string       `db:"student_id"`
	Source    string       `db:"source"`
	Score     int          `db:"score"`
	Feedback  string       `db:"feedback"`
	Results   []byte       `db:"results"`
	CreatedAt sql.NullTime `db:"created_at"`
}

// SaveReport saves a grade report
func (r *ReportRepository) SaveReport(ctx context.Context, report *domain.GradeReport) error {
	resultsJSON, err := json.Marshal(report.Results)
	if err != nil {
		r.logger.Error("Failed to marshal scenario results", "error", err)
		return fmt.Errorf("failed to marshal scenario results: %w", err)
	}

	query := `
		INSERT INTO grade_reports (
			id, student_id, source, score, feedback, results, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err = r.db.ExecContext(
		ctx,
		query,
		report.ID,
		report.StudentID,
		report.Source,
		report.Score,
		report.Feedback,
		resultsJSON,
		report.CreatedAt,
	)
	if err != nil {
		r.logger.Error("Failed to save grade report", "error", err)
		return fmt.Errorf("failed to save grade report: %w", err)
	}

	return nil
}

// GetReport fetches a report by id; returns nil when no report exists
func (r *ReportRepository) GetReport(ctx context.Context, id uuid.UUID) (*domain.GradeReport, error) {
	query := `
		SELECT id, student_id, source, score, feedback, results, created_at
		FROM grade_reports
		WHERE id = $1
	`

	var row reportRow
	if err := r.db.GetContext(ctx, &row, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get grade report: %w", err)
	}

	return rowToReport(&row)
}

// ListReportsByStudent returns the student's most recent reports
func (r *ReportRepository) ListReportsByStudent(ctx context.Context, studentID string, limit int) ([]*domain.GradeReport, error) {
	if limit <= 0 {
		limit = 20
	}

	query := `
		SELECT id, student_id, source, score, feedback, results, created_at
		FROM grade_reports
		WHERE student_id = $1
		ORDER BY created_at DESC
		LIMIT $2
	`

	var rows []reportRow
	if err := r.db.SelectContext(ctx, &rows, query, studentID, limit); err != nil {
		return nil, fmt.Errorf("failed to list grade reports: %w", err)
	}

	reports := make([]*domain.GradeReport, 0, len(rows))
	for i := range rows {
		report, err := rowToReport(&rows[i])
		if err != nil {
			return nil, err
		}
		reports = append(reports, report)
	}
	return reports, nil
}

func rowToReport(row *reportRow) (*domain.GradeReport, error) {
	var results []domain.ScenarioResult
	if len(row.Results) > 0 {
		if err := json.Unmarshal(row.Results, &results); err != nil {
			return nil, fmt.Errorf("failed to unmarshal scenario results: %w", err)
		}
	}
	report := &domain.GradeReport{
		ID:        row.ID,
		StudentID: row.StudentID,
		Source:    row.Source,
		Score:     row.Score,
		Feedback:  row.Feedback,
		Results:   results,
	}
	if row.CreatedAt.Valid {
		report.CreatedAt = row.CreatedAt.Time
	}
	return report, nil
}
