package cexec

import (
	"context"
	"testing"
	"time"

	"gitlab.com/cgrader-2025.net/internal/config"
	"gitlab.com/cgrader-2025.net/internal/domain"
)

type nopLogger struct{}

func (nopLogger) Info(msg string, args ...interface{})  {}
func (nopLogger) Error(msg string, args ...interface{}) {}
func (nopLogger) Debug(msg string, args ...interface{}) {}
func (nopLogger) Warn(msg string, args ...interface{})  {}

func TestExecuteMissingCompilerResolvesToOutcome(t *testing.T) {
	executor := NewExecutor(&config.GraderCfg{
		CompilerPath:    "/nonexistent/compiler",
		WorkDir:         t.TempDir(),
		ScenarioTimeout: 3 * time.Second,
	}, nopLogger{})

	outcome := executor.Execute(context.Background(), "int main(void) { return 0; }", "")

	if outcome == nil {
		t.Fatal("Execute must always return an outcome")
	}
	if outcome.Succeeded {
		t.Error("a missing compiler cannot succeed")
	}
	if outcome.Status != domain.StatusCompilationError {
		t.Errorf("status = %s, want %s", outcome.Status, domain.StatusCompilationError)
	}
	if outcome.Diagnostic == "" {
		t.Error("failed outcomes must carry a diagnostic")
	}
}

func TestExecuteExpiredContextResolvesToTimeout(t *testing.T) {
	executor := NewExecutor(&config.GraderCfg{
		CompilerPath:    "/nonexistent/compiler",
		WorkDir:         t.TempDir(),
		ScenarioTimeout: time.Nanosecond,
	}, nopLogger{})

	outcome := executor.Execute(context.Background(), "int main(void) { return 0; }", "")

	if outcome.Succeeded {
		t.Error("an expired deadline cannot succeed")
	}
	if outcome.Status != domain.StatusTimeout {
		t.Errorf("status = %s, want %s", outcome.Status, domain.StatusTimeout)
	}
}
