package grading

import (
	"regexp"
	"strconv"

	"gitlab.com/cgrader-2025.net/internal/domain"
)

var integerPattern = regexp.MustCompile(`-?[0-9]+`)

// ParseOutput extracts every decimal integer from raw program output. The
// reported sum is the last integer found: the grading convention trusts only
// the final printed number as the student's answer, so diagnostic numbers
// printed earlier are ignored. Nil ReportedSum means no integer was found.
func ParseOutput(stdout string) domain.ParsedOutput {
	matches := integerPattern.FindAllString(stdout, -1)
	numbers := make([]int, 0, len(matches))
	for _, m := range matches {
		n, err := strconv.Atoi(m)
		if err != nil {
			continue
		}
		numbers = append(numbers, n)
	}
	parsed := domain.ParsedOutput{Numbers: numbers}
	if len(numbers) > 0 {
		last := numbers[len(numbers)-1]
		parsed.ReportedSum = &last
	}
	return parsed
}
