package grading

import (
	"strings"

	"gitlab.com/cgrader-2025.net/internal/domain"
)

const (
	msgCompileFailure = "Your program failed to compile or crashed while running. Fix the reported error and try again."
	msgPerfect        = "Excellent work! Your program passes every scenario."

	hintSum        = "Check how you compute the sum: add each accepted value to a running total and print that total once at the end."
	hintValidation = "Your program must reject non-positive values and keep prompting until it has read five positive integers."
	hintLoop       = "Use a loop (for or while) to read the five values instead of repeating the code."
	hintGuard      = "Add a condition that checks each value is greater than zero before accepting it."

	msgBandHigh = "Good work, only minor issues remain."
	msgBandMid  = "You are making progress, but some scenarios still fail."
	msgBandLow  = "Your solution needs more work on the reading loop, input validation and sum logic."
)

// Feedback synthesizes the diagnostic message for a finished run. Hints are
// keyed off the structured verdict reasons on the results, never off note
// wording.
func Feedback(results []domain.ScenarioResult, score int, source string) string {
	if len(results) > 0 && results[0].CompilationFailed {
		return msgCompileFailure
	}
	if score == 100 {
		return msgPerfect
	}

	var hints []string
	if anyFailedWithReason(results, domain.ReasonWrongSum) {
		hints = append(hints, hintSum)
	}
	if anyFailedValidation(results) {
		hints = append(hints, hintValidation)
	}
	if !HasIterationConstruct(source) {
		hints = append(hints, hintLoop)
	}
	if !HasPositivityGuard(source) {
		hints = append(hints, hintGuard)
	}
	if len(hints) > 0 {
		return strings.Join(hints, " ")
	}

	switch {
	case score >= 80:
		return msgBandHigh
	case score >= 60:
		return msgBandMid
	default:
		return msgBandLow
	}
}

func anyFailedWithReason(results []domain.ScenarioResult, reason domain.VerdictReason) bool {
	for _, r := range results {
		if !r.Passed && r.Reason == reason {
			return true
		}
	}
	return false
}

func anyFailedValidation(results []domain.ScenarioResult) bool {
	for _, r := range results {
		if !r.Passed && r.Validation {
			return true
		}
	}
	return false
}
