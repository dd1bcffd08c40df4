package types

import (
	"testing"

	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
	fuzz "github.com/google/gofuzz"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParamsValidate(t *testing.T) {
	specs := map[string]struct {
		src    Params
		expErr *sdkerrors.Error
	}{
		"default": {
			src: DefaultParams(),
		},
		"quorum at max": {
			src: NewParams(MaxQuorumThreshold, MinVotingPeriodFloor),
		},
		"quorum zero": {
			src: NewParams(0, MinVotingPeriodFloor),
		},
		"quorum above max": {
			src:    NewParams(5500, MinVotingPeriodFloor),
			expErr: ErrThresholdTooHigh,
		},
		"quorum one above max": {
			src:    NewParams(MaxQuorumThreshold+1, MinVotingPeriodFloor),
			expErr: ErrThresholdTooHigh,
		},
		"period below floor": {
			src:    NewParams(DefaultQuorumThreshold, 1800),
			expErr: ErrPeriodTooShort,
		},
		"period one below floor": {
			src:    NewParams(DefaultQuorumThreshold, MinVotingPeriodFloor-1),
			expErr: ErrPeriodTooShort,
		},
		"period at max": {
			src: NewParams(DefaultQuorumThreshold, MaxVotingPeriod),
		},
		"period above max": {
			src:    NewParams(DefaultQuorumThreshold, MaxVotingPeriod+1),
			expErr: ErrPeriodTooLong,
		},
	}
	for name, spec := range specs {
		t.Run(name, func(t *testing.T) {
			gotErr := spec.src.Validate()
			if spec.expErr != nil {
				require.True(t, spec.expErr.Is(gotErr), "got %#+v", gotErr)
				return
			}
			require.NoError(t, gotErr)
		})
	}
}

func TestParamsValidateRandom(t *testing.T) {
	f := fuzz.New()
	for i := 0; i < 100; i++ {
		var p Params
		f.Fuzz(&p)
		expValid := p.QuorumThreshold <= MaxQuorumThreshold && p.MinVotingPeriod >= MinVotingPeriodFloor && p.MinVotingPeriod <= MaxVotingPeriod
		assert.Equal(t, expValid, p.Validate() == nil, "params: %s", p)
	}
}

func TestParamsString(t *testing.T) {
	assert.Equal(t, "quorum_threshold: 2000\nmin_voting_period: 3600\nversion: 0\n", DefaultParams().String())
}
