package domain

import (
	"errors"
	"fmt"
)

// ErrInvalidVoter indicates that an identifier used as a voter is not part of the profile.
var ErrInvalidVoter = errors.New("invalid voter")

// ErrInvalidTieBreaker indicates that the tie-breaking agent is not part of the profile.
// It wraps ErrInvalidVoter so callers matching on either sentinel see it.
var ErrInvalidTieBreaker = fmt.Errorf("invalid tie-breaking agent: %w", ErrInvalidVoter)

// ErrInvalidCandidate indicates that an identifier used as a candidate is not part of the profile.
var ErrInvalidCandidate = errors.New("invalid candidate")

// ErrDimensionMismatch indicates that a score vector length differs from the candidate count.
var ErrDimensionMismatch = errors.New("score vector length must match the number of candidates")

// ErrInconsistentProfile indicates that the rankings do not form a strict
// total order over one shared candidate set.
var ErrInconsistentProfile = errors.New("inconsistent preference profile")

// ErrNoCandidates indicates that a selection was requested over an empty candidate set.
var ErrNoCandidates = errors.New("no candidates to choose from")

// ErrUnknownRule indicates that the requested voting rule is not supported.
var ErrUnknownRule = errors.New("unknown voting rule")

// ErrInvalidRequest indicates that an election request contains invalid data.
var ErrInvalidRequest = errors.New("invalid election request")
