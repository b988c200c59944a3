package voting

import (
	"slices"

	"github.com/ahrav/go-ballot/internal/domain"
)

// STVResult holds the survivors of plurality elimination and the round history.
type STVResult struct {
	// Survivors is the final working set: one candidate, or every candidate of
	// the last round when they all tied at the minimum.
	Survivors []domain.Candidate

	// Rounds records each round in order.
	Rounds []domain.EliminationRound
}

// STVTally runs plurality elimination until at most one candidate survives.
//
// Each round a voter supports the surviving candidate with the lowest
// original rank on their ballot. Every candidate at the minimum support is
// eliminated together; if that would eliminate all survivors the loop stops
// and the pre-elimination set is kept. The working set shrinks every round
// it does not stop, so the loop runs at most NumCandidates-1 rounds.
func STVTally(profile *domain.Profile) STVResult {
	working := profile.Candidates()
	var rounds []domain.EliminationRound

	for len(working) > 1 {
		counts := firstPreferences(profile, working)
		eliminated := bottomCandidates(working, counts)

		round := domain.EliminationRound{Number: len(rounds) + 1, Counts: counts}
		if len(eliminated) == len(working) {
			rounds = append(rounds, round)
			break
		}

		round.Eliminated = eliminated
		rounds = append(rounds, round)
		working = slices.DeleteFunc(working, func(c domain.Candidate) bool {
			return slices.Contains(eliminated, c)
		})
	}

	return STVResult{Survivors: working, Rounds: rounds}
}

// STV elects a winner by single transferable vote, breaking any final tie
// with tieBreak's ranking.
func STV(profile *domain.Profile, tieBreak domain.Voter) (domain.Candidate, error) {
	return TieBreak(profile, STVTally(profile).Survivors, tieBreak)
}

// firstPreferences counts, for every survivor, the voters whose highest
// ranked surviving candidate it is.
func firstPreferences(profile *domain.Profile, survivors []domain.Candidate) map[domain.Candidate]int {
	counts := zeroScores(survivors)
	profile.EachRanking(func(_ domain.Voter, ranking []domain.Candidate) {
		for _, c := range ranking {
			if _, alive := counts[c]; alive {
				counts[c]++
				return
			}
		}
	})
	return counts
}
