package grading

import "regexp"

// Crude textual checks over the raw source, not static analysis. They
// approximate "used a loop" and "validated positivity" without parsing C.
var (
	iterationPattern       = regexp.MustCompile(`\b(for|while|do)\b`)
	positivityGuardPattern = regexp.MustCompile(`(<=|<|>)\s*[01]\b`)
)

// HasIterationConstruct reports whether any C iteration keyword appears in the
// source.
func HasIterationConstruct(source string) bool {
	return iterationPattern.MatchString(source)
}

// HasPositivityGuard reports whether the source contains a comparison of some
// value against 0 or 1 using <=, < or >.
func HasPositivityGuard(source string) bool {
	return positivityGuardPattern.MatchString(source)
}
