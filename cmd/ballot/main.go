// Command ballot evaluates every voting rule over one preference profile and
// prints the winners.
//
// Usage:
//
//	ballot [-profile rankings.json] [-tiebreak 1] [-scores 2,1,0]
//
// The profile file maps voter IDs to rankings, most preferred first:
//
//	{"1": [3, 1, 2], "2": [1, 3, 2], "3": [2, 1, 3]}
//
// Without -profile the three-voter sample above is used.
package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/ahrav/go-ballot/internal/domain"
	"github.com/ahrav/go-ballot/internal/voting"
)

// missingVoter is deliberately absent from the sample profile.
const missingVoter domain.Voter = 4

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		slog.Error("ballot failed", "error", err)
		os.Exit(1)
	}
}

func run(args []string, out io.Writer) error {
	fs := flag.NewFlagSet("ballot", flag.ContinueOnError)
	fs.SetOutput(out)
	profilePath := fs.String("profile", "", "path to a JSON file of voter rankings")
	tieBreak := fs.Int("tiebreak", 1, "voter whose ranking breaks ties")
	scores := fs.String("scores", "", "comma-separated score vector for the scoring rule")
	if err := fs.Parse(args); err != nil {
		return err
	}

	rankings, err := loadRankings(*profilePath)
	if err != nil {
		return err
	}
	profile, err := domain.NewProfile(rankings)
	if err != nil {
		return err
	}

	vector, err := parseVector(*scores)
	if err != nil {
		return err
	}

	agent := domain.Voter(*tieBreak)
	printDictatorships(out, profile)
	printRules(out, profile, vector, agent)
	return nil
}

func printDictatorships(out io.Writer, profile *domain.Profile) {
	fmt.Fprintln(out, "Testing dictatorship() success...")
	for _, v := range profile.Voters() {
		winner, err := voting.Dictatorship(profile, v)
		if err != nil {
			fmt.Fprintf(out, "Voter: %d | Error: %v\n", v, err)
			continue
		}
		fmt.Fprintf(out, "Voter: %d | Winner: %d\n", v, winner)
	}

	fmt.Fprintln(out, "Testing dictatorship() failure...")
	if _, err := voting.Dictatorship(profile, missingVoter); err != nil {
		fmt.Fprintln(out, err)
	} else {
		fmt.Fprintf(out, "Voter %d is part of this profile\n", missingVoter)
	}
}

func printRules(out io.Writer, profile *domain.Profile, vector []int, agent domain.Voter) {
	fmt.Fprintf(out, "Rules with tie-break voter %d...\n", agent)

	if vector == nil {
		vector = voting.BordaVector(profile.NumCandidates())
	}
	rules := []struct {
		name   string
		decide func() (domain.Candidate, error)
	}{
		{fmt.Sprintf("scoring %v", vector), func() (domain.Candidate, error) {
			return voting.ScoringRule(profile, vector, agent)
		}},
		{"plurality", func() (domain.Candidate, error) { return voting.Plurality(profile, agent) }},
		{"veto", func() (domain.Candidate, error) { return voting.Veto(profile, agent) }},
		{"borda", func() (domain.Candidate, error) { return voting.Borda(profile, agent) }},
		{"stv", func() (domain.Candidate, error) { return voting.STV(profile, agent) }},
	}

	for _, r := range rules {
		winner, err := r.decide()
		if err != nil {
			fmt.Fprintf(out, "Rule: %s | Error: %v\n", r.name, err)
			continue
		}
		fmt.Fprintf(out, "Rule: %s | Winner: %d\n", r.name, winner)
	}
}

func loadRankings(path string) (map[domain.Voter][]domain.Candidate, error) {
	if path == "" {
		return map[domain.Voter][]domain.Candidate{
			1: {3, 1, 2},
			2: {1, 3, 2},
			3: {2, 1, 3},
		}, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read profile: %w", err)
	}
	var rankings map[domain.Voter][]domain.Candidate
	if err := json.Unmarshal(data, &rankings); err != nil {
		return nil, fmt.Errorf("parse profile %s: %w", path, err)
	}
	return rankings, nil
}

// parseVector parses "2,1,0". An empty string yields nil.
func parseVector(s string) ([]int, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	parts := strings.Split(s, ",")
	vector := make([]int, 0, len(parts))
	for _, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, fmt.Errorf("parse score vector %q: %w", s, err)
		}
		vector = append(vector, n)
	}
	return vector, nil
}
