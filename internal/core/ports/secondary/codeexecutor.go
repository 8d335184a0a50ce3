package secondary

import (
	"context"

	"gitlab.com/cgrader-2025.net/internal/domain"
)

type CodeExecutor interface {
	// Execute runs the submitted C source with the given stdin script and
	// resolves every outcome, including compile errors, runtime traps and
	// timeouts, into an ExecutionOutcome. Implementations must not panic and
	// must not leak errors past this boundary.
	Execute(ctx context.Context, sourceText, stdinScript string) *domain.ExecutionOutcome
}
