package domain

// Status classifies the outcome of one execution of the submitted program
type Status string

const (
	StatusSuccess          Status = "SUCCESS"
	StatusCompilationError Status = "COMPILATION_ERROR"
	StatusRuntimeError     Status = "RUNTIME_ERROR"
	StatusTimeout          Status = "TIMEOUT"
)

// ExecutionOutcome is the value every execution resolves to. Failures at the
// execution boundary never surface as errors or panics; they are folded into
// Succeeded=false with the engine's message in Diagnostic and Stdout holding
// whatever was captured before the failure.
type ExecutionOutcome struct {
	Succeeded  bool
	Status     Status
	Diagnostic string
	Stdout     string
}
