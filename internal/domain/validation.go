package domain

import (
	"slices"

	"github.com/go-playground/validator/v10"
)

// validate is the package-level validator instance used for struct validation.
var validate = validator.New(validator.WithRequiredStructEnabled())

// cloneRankings creates a deep copy of a rankings map to prevent aliasing.
// Returns nil for nil input to maintain consistency.
func cloneRankings(m map[Voter][]Candidate) map[Voter][]Candidate {
	if m == nil {
		return nil
	}
	result := make(map[Voter][]Candidate, len(m))
	for voter, ranking := range m {
		result[voter] = slices.Clone(ranking)
	}
	return result
}
