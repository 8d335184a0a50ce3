package grading

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"

	"gitlab.com/cgrader-2025.net/internal/domain"
	"gitlab.com/cgrader-2025.net/internal/static/errs"
)

type nopLogger struct{}

func (nopLogger) Info(msg string, args ...interface{})  {}
func (nopLogger) Error(msg string, args ...interface{}) {}
func (nopLogger) Debug(msg string, args ...interface{}) {}
func (nopLogger) Warn(msg string, args ...interface{})  {}

// stubExecutor replays scripted outcomes in order and counts calls.
type stubExecutor struct {
	outcomes []*domain.ExecutionOutcome
	calls    int
	panics   bool
}

func (s *stubExecutor) Execute(ctx context.Context, sourceText, stdinScript string) *domain.ExecutionOutcome {
	if s.panics {
		panic("executor exploded")
	}
	if s.calls >= len(s.outcomes) {
		return &domain.ExecutionOutcome{Succeeded: false, Status: domain.StatusRuntimeError, Diagnostic: "no scripted outcome"}
	}
	outcome := s.outcomes[s.calls]
	s.calls++
	return outcome
}

type memoryReportRepo struct {
	saved []*domain.GradeReport
}

func (m *memoryReportRepo) SaveReport(ctx context.Context, report *domain.GradeReport) error {
	m.saved = append(m.saved, report)
	return nil
}

func (m *memoryReportRepo) GetReport(ctx context.Context, id uuid.UUID) (*domain.GradeReport, error) {
	for _, r := range m.saved {
		if r.ID == id {
			return r, nil
		}
	}
	return nil, nil
}

func (m *memoryReportRepo) ListReportsByStudent(ctx context.Context, studentID string, limit int) ([]*domain.GradeReport, error) {
	var out []*domain.GradeReport
	for _, r := range m.saved {
		if r.StudentID == studentID {
			out = append(out, r)
		}
	}
	return out, nil
}

type stubLock struct {
	busy     bool
	acquired int
	released int
}

func (l *stubLock) Acquire(ctx context.Context) (bool, error) {
	if l.busy {
		return false, nil
	}
	l.acquired++
	return true, nil
}

func (l *stubLock) Release(ctx context.Context) error {
	l.released++
	return nil
}

func success(stdout string) *domain.ExecutionOutcome {
	return &domain.ExecutionOutcome{
		Succeeded:  true,
		Status:     domain.StatusSuccess,
		Diagnostic: "exit code 0",
		Stdout:     stdout,
	}
}

func newTestService(executor *stubExecutor) (*GradingService, *memoryReportRepo, *stubLock) {
	repo := &memoryReportRepo{}
	lock := &stubLock{}
	svc := NewGradingService(executor, repo, lock, nopLogger{})
	return svc, repo, lock
}

func TestGradeReferenceSubmissionScoresFull(t *testing.T) {
	executor := &stubExecutor{outcomes: []*domain.ExecutionOutcome{
		success("The sum is 15\n"),
		success("The sum is 150\n"),
		success("enter a positive number\nThe sum is 39\n"),
		success("enter a positive number\nThe sum is 25\n"),
	}}
	svc, repo, lock := newTestService(executor)

	report, err := svc.Grade(context.Background(), domain.NewSubmission("alice", guardedLoopSource))
	if err != nil {
		t.Fatalf("grade: %v", err)
	}

	if report.Score != 100 {
		t.Errorf("score = %d, want 100", report.Score)
	}
	if report.Feedback != msgPerfect {
		t.Errorf("feedback = %q, want the congratulatory message", report.Feedback)
	}
	if len(report.Results) != 4 {
		t.Fatalf("results = %d, want 4", len(report.Results))
	}
	for i, r := range report.Results {
		if !r.Passed {
			t.Errorf("scenario %d failed: %s", i, r.Note)
		}
	}
	if executor.calls != 4 {
		t.Errorf("executor called %d times, want 4", executor.calls)
	}
	if len(repo.saved) != 1 {
		t.Errorf("persisted %d reports, want 1", len(repo.saved))
	}
	if lock.released != 1 {
		t.Errorf("lock released %d times, want 1", lock.released)
	}
}

func TestGradeCompileFailureShortCircuits(t *testing.T) {
	executor := &stubExecutor{outcomes: []*domain.ExecutionOutcome{
		{Succeeded: false, Status: domain.StatusCompilationError, Diagnostic: "main.c:3: error: expected ';'"},
		success("15\n"),
	}}
	svc, _, _ := newTestService(executor)

	report, err := svc.Grade(context.Background(), domain.NewSubmission("alice", "int main( { }"))
	if err != nil {
		t.Fatalf("grade: %v", err)
	}

	if executor.calls != 1 {
		t.Errorf("executor called %d times, want 1 (remaining scenarios must be skipped)", executor.calls)
	}
	if len(report.Results) != 1 {
		t.Fatalf("results = %d, want 1", len(report.Results))
	}
	if !report.Results[0].CompilationFailed {
		t.Error("result should be marked as a compilation failure")
	}
	if report.Results[0].Note != "main.c:3: error: expected ';'" {
		t.Errorf("note = %q, want the engine diagnostic", report.Results[0].Note)
	}
	if report.Score != 0 {
		t.Errorf("score = %d, want 0", report.Score)
	}
	if report.Feedback != msgCompileFailure {
		t.Errorf("feedback = %q, want the compile failure message", report.Feedback)
	}
}

func TestGradeUnconditionalSummer(t *testing.T) {
	// A submission that sums the first five inputs regardless of sign passes
	// the two plain scenarios and fails both validation scenarios.
	executor := &stubExecutor{outcomes: []*domain.ExecutionOutcome{
		success("15\n"),
		success("150\n"),
		success("17\n"), // 0 + -3 + 5 + 7 + 8
		success("0\n"),  // -1 + 0 + -2 + 0 + 3
	}}
	svc, _, _ := newTestService(executor)

	source := `
#include <stdio.h>
int main(void) {
    int sum = 0, v, i;
    for (i = 0; i < 5; i++) {
        scanf("%d", &v);
        sum += v;
    }
    printf("%d\n", sum);
    return 0;
}
`
	report, err := svc.Grade(context.Background(), domain.NewSubmission("bob", source))
	if err != nil {
		t.Fatalf("grade: %v", err)
	}

	// functional 80 * 50/100 = 40, quality 10 (loop present, no guard)
	if report.Score != 50 {
		t.Errorf("score = %d, want 50", report.Score)
	}
	if !strings.Contains(report.Feedback, hintValidation) {
		t.Errorf("feedback %q should contain the validation hint", report.Feedback)
	}
	if report.Results[2].Passed || report.Results[3].Passed {
		t.Error("validation scenarios must fail for the unconditional summer")
	}
}

func TestGradeRunInFlight(t *testing.T) {
	executor := &stubExecutor{}
	repo := &memoryReportRepo{}
	lock := &stubLock{busy: true}
	svc := NewGradingService(executor, repo, lock, nopLogger{})

	_, err := svc.Grade(context.Background(), domain.NewSubmission("alice", guardedLoopSource))
	if !errors.Is(err, errs.RunInFlight) {
		t.Fatalf("err = %v, want errs.RunInFlight", err)
	}
	if executor.calls != 0 {
		t.Error("executor must not run while another run holds the lock")
	}
}

func TestGradeEmptySource(t *testing.T) {
	svc, _, lock := newTestService(&stubExecutor{})

	_, err := svc.Grade(context.Background(), domain.NewSubmission("alice", "   \n"))
	if !errors.Is(err, errs.EmptySource) {
		t.Fatalf("err = %v, want errs.EmptySource", err)
	}
	if lock.acquired != 0 {
		t.Error("empty submissions must be rejected before taking the lock")
	}
}

func TestGradeRecoversFromPanic(t *testing.T) {
	executor := &stubExecutor{panics: true}
	svc, repo, lock := newTestService(executor)

	report, err := svc.Grade(context.Background(), domain.NewSubmission("alice", guardedLoopSource))
	if !errors.Is(err, errs.GradingAborted) {
		t.Fatalf("err = %v, want errs.GradingAborted", err)
	}
	if report != nil {
		t.Error("no partial report may survive an aborted run")
	}
	if len(repo.saved) != 0 {
		t.Error("aborted runs must not persist reports")
	}
	if lock.released != 1 {
		t.Error("the lock must be released even when the run panics")
	}
}

func TestGetReportNotFound(t *testing.T) {
	svc, _, _ := newTestService(&stubExecutor{})

	_, err := svc.GetReport(context.Background(), uuid.New())
	if !errors.Is(err, errs.ReportNotFound) {
		t.Fatalf("err = %v, want errs.ReportNotFound", err)
	}
}

func TestGradeFreshResultsPerRun(t *testing.T) {
	outcomes := []*domain.ExecutionOutcome{
		success("15\n"), success("150\n"), success("39\n"), success("25\n"),
		success("15\n"), success("150\n"), success("39\n"), success("25\n"),
	}
	executor := &stubExecutor{outcomes: outcomes}
	svc, repo, _ := newTestService(executor)

	first, err := svc.Grade(context.Background(), domain.NewSubmission("alice", guardedLoopSource))
	if err != nil {
		t.Fatalf("first grade: %v", err)
	}
	second, err := svc.Grade(context.Background(), domain.NewSubmission("alice", guardedLoopSource))
	if err != nil {
		t.Fatalf("second grade: %v", err)
	}

	if first.ID == second.ID {
		t.Error("each run must produce a fresh report")
	}
	if len(repo.saved) != 2 {
		t.Errorf("persisted %d reports, want 2", len(repo.saved))
	}
}
