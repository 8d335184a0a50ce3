package errs

import "errors"

var (
	RunInFlight    = errors.New("a grading run is already in flight")
	EmptySource    = errors.New("submission source is empty")
	GradingAborted = errors.New("grading run aborted by an internal error")
	ReportNotFound = errors.New("grade report not found")
)
