package secondary

import "context"

// RunLock guards the single-grading-run-in-flight rule. Acquire returns false
// when another run already holds the lock.
type RunLock interface {
	Acquire(ctx context.Context) (bool, error)
	Release(ctx context.Context) error
}
