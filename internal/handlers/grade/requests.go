package grade

// GradeRequest represents a request to grade a submission
type GradeRequest struct {
	Source string `json:"source"`
}
