package grading

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"gitlab.com/cgrader-2025.net/internal/core/ports/primary"
	"gitlab.com/cgrader-2025.net/internal/core/ports/secondary"
	"gitlab.com/cgrader-2025.net/internal/domain"
	"gitlab.com/cgrader-2025.net/internal/static/errs"
)

var _ IGradingService = (*GradingService)(nil)

// GradingService orchestrates one grading run: it drives the executor per
// scenario, judges the captured output and aggregates score and feedback.
type GradingService struct {
	executor  secondary.CodeExecutor
	reports   secondary.ReportRepository
	runLock   secondary.RunLock
	scenarios []domain.Scenario
	logger    primary.Logger
}

// NewGradingService creates a new grading service over the fixed catalog
func NewGradingService(
	executor secondary.CodeExecutor,
	reports secondary.ReportRepository,
	runLock secondary.RunLock,
	logger primary.Logger,
) *GradingService {
	return &GradingService{
		executor:  executor,
		reports:   reports,
		runLock:   runLock,
		scenarios: Catalog(),
		logger:    logger,
	}
}

// Grade runs every scenario sequentially, scores the results and persists the
// report. Only one run may be in flight at a time; callers racing the lock get
// errs.RunInFlight. Anything panicking inside the run is recovered here and
// surfaced as errs.GradingAborted with no partial report.
func (s *GradingService) Grade(ctx context.Context, submission *domain.Submission) (report *domain.GradeReport, err error) {
	defer func() {
		if r := recover(); r != nil {
			s.logger.Error("Grading run panicked", "submissionId", submission.ID, "panic", r)
			report = nil
			err = errs.GradingAborted
		}
	}()

	if strings.TrimSpace(submission.Source) == "" {
		return nil, errs.EmptySource
	}

	acquired, err := s.runLock.Acquire(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to acquire run lock: %w", err)
	}
	if !acquired {
		return nil, errs.RunInFlight
	}
	defer func() {
		if relErr := s.runLock.Release(context.Background()); relErr != nil {
			s.logger.Warn("Failed to release run lock", "error", relErr)
		}
	}()

	s.logger.Info("Grading run started", "submissionId", submission.ID, "studentId", submission.StudentID)

	results := s.runAll(ctx, submission.Source)
	score := Score(results, submission.Source)
	feedback := Feedback(results, score, submission.Source)

	report = domain.NewGradeReport(submission.StudentID, submission.Source, score, feedback, results)
	if saveErr := s.reports.SaveReport(ctx, report); saveErr != nil {
		// The run itself finished; losing history must not lose the grade.
		s.logger.Error("Failed to persist grade report", "reportId", report.ID, "error", saveErr)
	}

	s.logger.Info("Grading run finished", "reportId", report.ID, "score", score)
	return report, nil
}

// runAll executes the catalog in order. An execution failure terminates the
// run immediately: compile and runtime failures are scenario-independent, so
// the remaining scenarios would only repeat the same failure and produce
// misleading verdicts.
func (s *GradingService) runAll(ctx context.Context, source string) []domain.ScenarioResult {
	results := make([]domain.ScenarioResult, 0, len(s.scenarios))
	for _, sc := range s.scenarios {
		outcome := s.executor.Execute(ctx, source, sc.StdinScript)
		if !outcome.Succeeded {
			results = append(results, domain.ScenarioResult{
				Name:              sc.Name,
				StdinDisplay:      sc.StdinDisplay(),
				ExpectedSum:       sc.ExpectedSum,
				Points:            sc.Points,
				Validation:        sc.Validation,
				Passed:            false,
				Reason:            domain.ReasonExecutionFailed,
				Note:              outcome.Diagnostic,
				CompilationFailed: true,
			})
			break
		}

		parsed := ParseOutput(outcome.Stdout)
		verdict := Compare(sc.ExpectedSum, parsed)
		results = append(results, domain.ScenarioResult{
			Name:         sc.Name,
			StdinDisplay: sc.StdinDisplay(),
			ExpectedSum:  sc.ExpectedSum,
			Points:       sc.Points,
			Validation:   sc.Validation,
			Passed:       verdict.Passed,
			ReportedSum:  parsed.ReportedSum,
			Reason:       verdict.Reason,
			Note:         verdict.Note,
		})
	}
	return results
}

// GetReport fetches a persisted report by id
func (s *GradingService) GetReport(ctx context.Context, id uuid.UUID) (*domain.GradeReport, error) {
	report, err := s.reports.GetReport(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get report: %w", err)
	}
	if report == nil {
		return nil, errs.ReportNotFound
	}
	return report, nil
}

// ListReports returns the student's most recent reports
func (s *GradingService) ListReports(ctx context.Context, studentID string, limit int) ([]*domain.GradeReport, error) {
	reports, err := s.reports.ListReportsByStudent(ctx, studentID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list reports: %w", err)
	}
	return reports, nil
}
