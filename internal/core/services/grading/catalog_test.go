package grading

import (
	"strconv"
	"strings"
	"testing"
)

func TestCatalogShape(t *testing.T) {
	scenarios := Catalog()

	if len(scenarios) != 4 {
		t.Fatalf("catalog has %d scenarios, want 4", len(scenarios))
	}

	total := 0
	for _, sc := range scenarios {
		total += sc.Points
		if !strings.HasSuffix(sc.StdinScript, "\n") {
			t.Errorf("scenario %q stdin script is not newline terminated", sc.Name)
		}
	}
	if total != 100 {
		t.Errorf("points total %d, want 100", total)
	}
}

func TestCatalogExpectedSums(t *testing.T) {
	scenarios := Catalog()

	wantSums := []int{15, 150, 39, 25}
	wantValidation := []bool{false, false, true, true}
	for i, sc := range scenarios {
		if sc.ExpectedSum != wantSums[i] {
			t.Errorf("scenario %d expected sum = %d, want %d", i, sc.ExpectedSum, wantSums[i])
		}
		if sc.Validation != wantValidation[i] {
			t.Errorf("scenario %d validation = %v, want %v", i, sc.Validation, wantValidation[i])
		}
	}
}

func TestCatalogValidationSumsSkipNonPositive(t *testing.T) {
	// The expected sum of a validation scenario is the sum of the first five
	// positive values in its stdin, in order.
	for _, sc := range Catalog() {
		sum, count := 0, 0
		for _, field := range strings.Fields(sc.StdinScript) {
			if count == 5 {
				break
			}
			v, err := strconv.Atoi(field)
			if err != nil {
				t.Fatalf("scenario %q has non-numeric stdin %q", sc.Name, field)
			}
			if v > 0 {
				sum += v
				count++
			}
		}
		if count != 5 {
			t.Errorf("scenario %q stdin has fewer than five positive values", sc.Name)
		}
		if sum != sc.ExpectedSum {
			t.Errorf("scenario %q expected sum = %d, first five positives sum to %d", sc.Name, sc.ExpectedSum, sum)
		}
	}
}
