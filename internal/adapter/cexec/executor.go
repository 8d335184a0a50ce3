// Package cexec runs submitted C programs by compiling and executing them in
// a scratch directory. It implements the CodeExecutor port: every failure
// mode, including compiler errors, crashes and timeouts, resolves to an
// ExecutionOutcome value.
package cexec

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"gitlab.com/cgrader-2025.net/internal/config"
	"gitlab.com/cgrader-2025.net/internal/core/ports/primary"
	"gitlab.com/cgrader-2025.net/internal/core/ports/secondary"
	"gitlab.com/cgrader-2025.net/internal/domain"
)

var _ secondary.CodeExecutor = (*Executor)(nil)

// Executor compiles and runs a submission with a hard wall-clock timeout per
// execution.
type Executor struct {
	compilerPath string
	workDir      string
	timeout      time.Duration
	logger       primary.Logger
}

// NewExecutor creates an executor from the grader configuration
func NewExecutor(cfg *config.GraderCfg, logger primary.Logger) *Executor {
	return &Executor{
		compilerPath: cfg.CompilerPath,
		workDir:      cfg.WorkDir,
		timeout:      cfg.ScenarioTimeout,
		logger:       logger,
	}
}

// Execute compiles the source and runs the binary with the stdin script. The
// timeout bounds the whole compile-and-run pass.
func (e *Executor) Execute(ctx context.Context, sourceText, stdinScript string) (outcome *domain.ExecutionOutcome) {
	defer func() {
		if r := recover(); r != nil {
			e.logger.Error("Executor panicked", "panic", r)
			outcome = failure(domain.StatusRuntimeError, fmt.Sprintf("internal executor failure: %v", r), "")
		}
	}()

	runCtx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()

	dir, err := os.MkdirTemp(e.workDir, "cgrader-*")
	if err != nil {
		return failure(domain.StatusRuntimeError, fmt.Sprintf("failed to create scratch directory: %v", err), "")
	}
	defer os.RemoveAll(dir)

	sourceFile := filepath.Join(dir, "main.c")
	if err := os.WriteFile(sourceFile, []byte(sourceText), 0o600); err != nil {
		return failure(domain.StatusRuntimeError, fmt.Sprintf("failed to write source: %v", err), "")
	}

	if diag, err := e.compile(runCtx, dir); err != nil {
		if errors.Is(runCtx.Err(), context.DeadlineExceeded) {
			return failure(domain.StatusTimeout, e.timeoutDiagnostic(), "")
		}
		return failure(domain.StatusCompilationError, diag, "")
	}

	return e.run(runCtx, dir, stdinScript)
}

func (e *Executor) compile(ctx context.Context, dir string) (string, error) {
	var stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, e.compilerPath, "main.c", "-O2", "-o", "main")
	cmd.Dir = dir
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		diag := strings.TrimSpace(stderr.String())
		if diag == "" {
			diag = fmt.Sprintf("compilation failed: %v", err)
		}
		return diag, err
	}
	return "", nil
}

func (e *Executor) run(ctx context.Context, dir, stdinScript string) *domain.ExecutionOutcome {
	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, filepath.Join(dir, "main"))
	cmd.Dir = dir
	cmd.Stdin = strings.NewReader(stdinScript)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	if errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return failure(domain.StatusTimeout, e.timeoutDiagnostic(), stdout.String())
	}
	if err != nil {
		diag := strings.TrimSpace(stderr.String())
		if diag == "" {
			diag = fmt.Sprintf("program terminated abnormally: %v", err)
		}
		return failure(domain.StatusRuntimeError, diag, stdout.String())
	}

	return &domain.ExecutionOutcome{
		Succeeded:  true,
		Status:     domain.StatusSuccess,
		Diagnostic: fmt.Sprintf("exit code %d", cmd.ProcessState.ExitCode()),
		Stdout:     stdout.String(),
	}
}

func (e *Executor) timeoutDiagnostic() string {
	return fmt.Sprintf("execution exceeded the %dms time limit", e.timeout.Milliseconds())
}

func failure(status domain.Status, diagnostic, stdout string) *domain.ExecutionOutcome {
	return &domain.ExecutionOutcome{
		Succeeded:  false,
		Status:     status,
		Diagnostic: diagnostic,
		Stdout:     stdout,
	}
}
