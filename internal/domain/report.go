package domain

import (
	"time"

	"github.com/google/uuid"
)

// ParsedOutput is what the output interpreter extracts from program stdout.
// ReportedSum is nil when no integer was found in the output.
type ParsedOutput struct {
	ReportedSum *int
	Numbers     []int
}

// VerdictReason is a structured cause attached to every scenario verdict so
// downstream components never have to pattern-match note text.
type VerdictReason string

const (
	ReasonCorrect         VerdictReason = "CORRECT"
	ReasonWrongSum        VerdictReason = "WRONG_SUM"
	ReasonNoOutput        VerdictReason = "NO_OUTPUT"
	ReasonExecutionFailed VerdictReason = "EXECUTION_FAILED"
)

// ScenarioResult represents the outcome of grading one scenario
type ScenarioResult struct {
	Name              string        `json:"name"`
	StdinDisplay      string        `json:"stdin"`
	ExpectedSum       int           `json:"expectedSum"`
	Points            int           `json:"points"`
	Validation        bool          `json:"validation"`
	Passed            bool          `json:"passed"`
	ReportedSum       *int          `json:"reportedSum,omitempty"`
	Reason            VerdictReason `json:"reason"`
	Note              string        `json:"note"`
	CompilationFailed bool          `json:"compilationFailed"`
}

// GradeReport is the final artifact of one grading run. When the first result
// has CompilationFailed set it is the sole result and Score is 0.
type GradeReport struct {
	ID        uuid.UUID        `json:"id"`
	StudentID string           `json:"studentId"`
	Source    string           `json:"-"`
	Score     int              `json:"score"`
	Feedback  string           `json:"feedback"`
	Results   []ScenarioResult `json:"results"`
	CreatedAt time.Time        `json:"createdAt"`
}

// NewGradeReport creates a report for a finished run
func NewGradeReport(studentID, source string, score int, feedback string, results []ScenarioResult) *GradeReport {
	return &GradeReport{
		ID:        uuid.New(),
		StudentID: studentID,
		Source:    source,
		Score:     score,
		Feedback:  feedback,
		Results:   results,
		CreatedAt: time.Now(),
	}
}
