package domain

import (
	"time"

	"github.com/google/uuid"
)

// Submission represents one C source submission to be graded
type Submission struct {
	ID          uuid.UUID
	StudentID   string
	Source      string
	SubmittedAt time.Time
}

// NewSubmission creates a new submission
func NewSubmission(studentID, source string) *Submission {
	return &Submission{
		ID:          uuid.New(),
		StudentID:   studentID,
		Source:      source,
		SubmittedAt: time.Now(),
	}
}
