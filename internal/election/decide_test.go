package election

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ahrav/go-ballot/internal/domain"
)

func TestDecide(t *testing.T) {
	profile, err := domain.NewProfile(sampleRankings())
	require.NoError(t, err)

	tests := []struct {
		name      string
		rule      domain.Rule
		agent     domain.Voter
		want      domain.Candidate
		wantTop   []domain.Candidate
		tieBroken bool
		scores    map[domain.Candidate]int
	}{
		{
			name: "dictatorship", rule: domain.RuleDictatorship, agent: 2,
			want: 1, wantTop: []domain.Candidate{1},
		},
		{
			name: "scoring_borda_vector", rule: domain.RuleScoring, agent: 1,
			want: 1, wantTop: []domain.Candidate{1},
			scores: map[domain.Candidate]int{1: 4, 2: 2, 3: 3},
		},
		{
			name: "plurality_three_way_tie", rule: domain.RulePlurality, agent: 1,
			want: 3, wantTop: []domain.Candidate{1, 2, 3}, tieBroken: true,
			scores: map[domain.Candidate]int{1: 1, 2: 1, 3: 1},
		},
		{
			name: "veto", rule: domain.RuleVeto, agent: 2,
			want: 1, wantTop: []domain.Candidate{1},
			scores: map[domain.Candidate]int{1: 3, 2: 1, 3: 2},
		},
		{
			name: "borda", rule: domain.RuleBorda, agent: 3,
			want: 1, wantTop: []domain.Candidate{1},
			scores: map[domain.Candidate]int{1: 4, 2: 2, 3: 3},
		},
		{
			name: "stv_total_tie", rule: domain.RuleSTV, agent: 3,
			want: 2, wantTop: []domain.Candidate{1, 2, 3}, tieBroken: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := createRequest(tt.rule, tt.agent)
			outcome, err := Decide(profile, req)
			require.NoError(t, err)

			assert.Equal(t, tt.rule, outcome.Rule)
			assert.Equal(t, tt.want, outcome.Winner)
			assert.Equal(t, tt.wantTop, outcome.TopCandidates)
			assert.Equal(t, tt.tieBroken, outcome.TieBroken)
			assert.Equal(t, tt.scores, outcome.Scores)
			assert.Equal(t, domain.ElectionID(req.ClientIdempotencyKey), outcome.ElectionID)
			assert.Equal(t, 3, outcome.VoterCount)
			assert.Equal(t, 3, outcome.CandidateCount)
			require.NoError(t, outcome.Validate())
		})
	}
}

func TestDecide_STVRounds(t *testing.T) {
	profile, err := domain.NewProfile(sampleRankings())
	require.NoError(t, err)

	outcome, err := Decide(profile, createRequest(domain.RuleSTV, 1))
	require.NoError(t, err)
	require.Len(t, outcome.Rounds, 1)
	assert.Equal(t, 1, outcome.Rounds[0].Number)
	assert.Empty(t, outcome.Rounds[0].Eliminated)
	assert.Nil(t, outcome.Scores)
}

func TestDecide_Errors(t *testing.T) {
	profile, err := domain.NewProfile(sampleRankings())
	require.NoError(t, err)

	tests := []struct {
		name    string
		req     domain.ElectionRequest
		wantErr error
	}{
		{name: "unknown_dictator", req: createRequest(domain.RuleDictatorship, 4), wantErr: domain.ErrInvalidVoter},
		{name: "unknown_tie_breaker", req: createRequest(domain.RuleBorda, 4), wantErr: domain.ErrInvalidTieBreaker},
		{
			name: "short_vector",
			req: func() domain.ElectionRequest {
				r := createRequest(domain.RuleScoring, 1)
				r.ScoreVector = []int{1, 0}
				return r
			}(),
			wantErr: domain.ErrDimensionMismatch,
		},
		{name: "unknown_rule", req: createRequest("condorcet", 1), wantErr: domain.ErrUnknownRule},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			outcome, err := Decide(profile, tt.req)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Nil(t, outcome)
		})
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{domain.ErrInvalidTieBreaker, ErrTypeInvalidTieBreaker},
		{domain.ErrInvalidVoter, ErrTypeInvalidVoter},
		{domain.ErrInvalidCandidate, ErrTypeInvalidCandidate},
		{domain.ErrDimensionMismatch, ErrTypeDimensionMismatch},
		{domain.ErrNoCandidates, ErrTypeNoCandidates},
		{domain.ErrUnknownRule, ErrTypeUnknownRule},
		{domain.ErrInconsistentProfile, ErrTypeInconsistentProfile},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, classify(tt.err))
			assert.Contains(t, NonRetryableErrorTypes(), tt.want)
		})
	}
}
