package secondary

import (
	"context"

	"github.com/google/uuid"

	"gitlab.com/cgrader-2025.net/internal/domain"
)

type ReportRepository interface {
	SaveReport(ctx context.Context, report *domain.GradeReport) error
	GetReport(ctx context.Context, id uuid.UUID) (*domain.GradeReport, error)
	ListReportsByStudent(ctx context.Context, studentID string, limit int) ([]*domain.GradeReport, error)
}
