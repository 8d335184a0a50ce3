package grading

import "gitlab.com/cgrader-2025.net/internal/domain"

// Catalog returns the fixed scenarios the exercise is graded against. The
// exercise: read five positive integers, re-prompting on non-positive input,
// and print their sum. Points total 100.
func Catalog() []domain.Scenario {
	return []domain.Scenario{
		{
			Name:        "simple values",
			StdinScript: "1\n2\n3\n4\n5\n",
			ExpectedSum: 15,
			Points:      25,
		},
		{
			Name:        "larger values",
			StdinScript: "10\n20\n30\n40\n50\n",
			ExpectedSum: 150,
			Points:      25,
		},
		{
			// zero and a negative precede the five positive values 5,7,8,9,10
			Name:        "rejects zero and negatives",
			StdinScript: "0\n-3\n5\n7\n8\n9\n10\n11\n",
			ExpectedSum: 39,
			Points:      25,
			Validation:  true,
		},
		{
			// several non-positive values interleaved; sum of 3,4,5,6,7
			Name:        "repeated invalid input",
			StdinScript: "-1\n0\n-2\n0\n3\n4\n5\n6\n7\n",
			ExpectedSum: 25,
			Points:      25,
			Validation:  true,
		},
	}
}
