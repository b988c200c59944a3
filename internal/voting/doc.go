// Package voting implements social-choice rules over a domain.Profile.
//
// Every rule is a pure function of an immutable profile: it reads ranks,
// builds a candidate to score table, and hands the set of top candidates to
// TieBreak, which picks the tie-breaking voter's favourite among them.
// Dictatorship is the exception and needs no tie-break.
//
// Rules:
//
//   - Dictatorship: the designated voter's top choice
//   - ScoringRule: generic positional scoring with a caller-supplied vector
//   - Plurality, Veto, Borda: fixed score vectors over the same engine
//   - STV: repeated plurality elimination until one candidate remains
//
// The package holds no state, so rules over the same profile may run
// concurrently without coordination.
package voting
