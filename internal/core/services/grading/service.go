package grading

import (
	"context"

	"github.com/google/uuid"

	"gitlab.com/cgrader-2025.net/internal/domain"
)

type IGradingService interface {
	// Grade runs the full catalog against the submission and returns the
	// resulting report.
	Grade(ctx context.Context, submission *domain.Submission) (*domain.GradeReport, error)
	GetReport(ctx context.Context, id uuid.UUID) (*domain.GradeReport, error)
	ListReports(ctx context.Context, studentID string, limit int) ([]*domain.GradeReport, error)
}
