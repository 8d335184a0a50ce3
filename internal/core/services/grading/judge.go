package grading

import (
	"fmt"

	"gitlab.com/cgrader-2025.net/internal/domain"
)

// Verdict is the judge's decision for one scenario. Reason is a structured
// code so the feedback synthesizer never has to match on note wording.
type Verdict struct {
	Passed bool
	Reason domain.VerdictReason
	Note   string
}

// Compare judges the parsed output against the expected sum. Integer equality
// only, no tolerance.
func Compare(expectedSum int, parsed domain.ParsedOutput) Verdict {
	if parsed.ReportedSum == nil {
		return Verdict{
			Passed: false,
			Reason: domain.ReasonNoOutput,
			Note:   "No numeric sum was found in the program output. Print the final sum as a number, and do not print any further numbers after it.",
		}
	}
	if *parsed.ReportedSum != expectedSum {
		return Verdict{
			Passed: false,
			Reason: domain.ReasonWrongSum,
			Note:   fmt.Sprintf("Expected sum %d but the program reported %d.", expectedSum, *parsed.ReportedSum),
		}
	}
	return Verdict{
		Passed: true,
		Reason: domain.ReasonCorrect,
		Note:   fmt.Sprintf("Correct sum %d.", expectedSum),
	}
}
