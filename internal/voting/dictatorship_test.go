package voting

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ahrav/go-ballot/internal/domain"
)

func TestDictatorship(t *testing.T) {
	p := sampleProfile(t)

	tests := []struct {
		name  string
		agent domain.Voter
		want  domain.Candidate
	}{
		{name: "voter_1_prefers_3", agent: 1, want: 3},
		{name: "voter_2_prefers_1", agent: 2, want: 1},
		{name: "voter_3_prefers_2", agent: 3, want: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Dictatorship(p, tt.agent)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)

			rank, err := p.Rank(got, tt.agent)
			require.NoError(t, err)
			assert.Zero(t, rank, "dictator's choice must be ranked first")
		})
	}
}

func TestDictatorship_InvalidAgent(t *testing.T) {
	p := sampleProfile(t)

	for _, agent := range []domain.Voter{4, 0, -1} {
		_, err := Dictatorship(p, agent)
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrInvalidVoter)
		assert.NotErrorIs(t, err, domain.ErrInvalidTieBreaker)
	}
}
