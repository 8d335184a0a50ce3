package grading

import (
	"math"

	"gitlab.com/cgrader-2025.net/internal/domain"
)

const (
	functionalMax = 80.0
	qualityMax    = 20
	qualityLoop   = 10
	qualityGuard  = 10
)

// Score converts scenario results plus the two source heuristics into a 0-100
// score. A compilation failure on the first result forces 0: non-executing
// code earns no partial credit.
func Score(results []domain.ScenarioResult, source string) int {
	if len(results) == 0 {
		return 0
	}
	if results[0].CompilationFailed {
		return 0
	}

	totalPoints := 0
	passedPoints := 0
	for _, r := range results {
		totalPoints += r.Points
		if r.Passed {
			passedPoints += r.Points
		}
	}
	functional := 0.0
	if totalPoints > 0 {
		functional = functionalMax * float64(passedPoints) / float64(totalPoints)
	}

	quality := qualityMax
	if !HasIterationConstruct(source) {
		quality -= qualityLoop
	}
	if !HasPositivityGuard(source) {
		quality -= qualityGuard
	}
	if quality < 0 {
		quality = 0
	}

	score := math.Round(functional + float64(quality))
	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}
	return int(score)
}
