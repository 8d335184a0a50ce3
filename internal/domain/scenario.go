package domain

import "strings"

// Scenario represents one fixed stdin script the submission is graded against
type Scenario struct {
	Name        string
	StdinScript string
	ExpectedSum int
	Points      int
	// Validation marks scenarios whose stdin contains non-positive values,
	// testing that the submission re-prompts instead of summing them.
	Validation bool
}

// StdinDisplay returns the stdin script as a single space-separated line for
// presentation.
func (s Scenario) StdinDisplay() string {
	return strings.Join(strings.Fields(s.StdinScript), " ")
}
