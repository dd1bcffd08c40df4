package cli

import (
	"bytes"
	"errors"
	"testing"

	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/knowscroll/contentgov/x/content/types"
)

func TestTxCmds(t *testing.T) {
	sender, other := types.RandomAccAddress(), types.RandomAccAddress()
	from := "--from=" + sender.String()
	specs := map[string]struct {
		args   []string
		expMsg sdk.Msg
		expErr bool
	}{
		"create draft": {
			args:   []string{"create-draft", "1", "Episode 1", "ipfs://episode-1", from, "--proposal-id=7", "--voting-period=7200", "--metadata-uri=ipfs://meta"},
			expMsg: types.NewMsgCreateContentDraft(sender, 1, "Episode 1", "ipfs://episode-1", "ipfs://meta", 7, 7200),
		},
		"create draft with defaults": {
			args:   []string{"create-draft", "1", "Episode 1", "ipfs://episode-1", from},
			expMsg: types.NewMsgCreateContentDraft(sender, 1, "Episode 1", "ipfs://episode-1", "", 0, 86400),
		},
		"create draft with empty title": {
			args:   []string{"create-draft", "1", "", "ipfs://episode-1", from},
			expErr: true,
		},
		"create draft without sender": {
			args:   []string{"create-draft", "1", "Episode 1", "ipfs://episode-1"},
			expErr: true,
		},
		"vote yes": {
			args:   []string{"vote", "2", "yes", from},
			expMsg: types.NewMsgCastVote(sender, 2, true),
		},
		"vote against": {
			args:   []string{"vote", "2", "against", from},
			expMsg: types.NewMsgCastVote(sender, 2, false),
		},
		"vote false": {
			args:   []string{"vote", "2", "false", from},
			expMsg: types.NewMsgCastVote(sender, 2, false),
		},
		"vote invalid support": {
			args:   []string{"vote", "2", "maybe", from},
			expErr: true,
		},
		"vote invalid draft id": {
			args:   []string{"vote", "two", "yes", from},
			expErr: true,
		},
		"execute": {
			args:   []string{"execute", "2", from},
			expMsg: types.NewMsgExecuteContentApproval(sender, 2),
		},
		"set quorum": {
			args:   []string{"set-quorum", "3000", from},
			expMsg: types.NewMsgSetQuorumThreshold(sender, 3000),
		},
		"set quorum too high": {
			args:   []string{"set-quorum", "5500", from},
			expErr: true,
		},
		"set min period": {
			args:   []string{"set-min-period", "7200", from},
			expMsg: types.NewMsgSetMinVotingPeriod(sender, 7200),
		},
		"set min period too short": {
			args:   []string{"set-min-period", "1800", from},
			expErr: true,
		},
		"transfer ownership": {
			args:   []string{"transfer-ownership", other.String(), from},
			expMsg: types.NewMsgTransferOwnership(sender, other),
		},
		"transfer ownership invalid address": {
			args:   []string{"transfer-ownership", "invalid", from},
			expErr: true,
		},
	}
	for name, spec := range specs {
		t.Run(name, func(t *testing.T) {
			var gotMsg sdk.Msg
			cmd := NewTxCmd(func(_ *cobra.Command, msg sdk.Msg) ([]byte, error) {
				gotMsg = msg
				return []byte(`{"ok":true}`), nil
			})
			var out bytes.Buffer
			setOutput(cmd, &out)
			cmd.SetArgs(spec.args)

			// when
			gotErr := cmd.Execute()

			// then
			if spec.expErr {
				require.Error(t, gotErr)
				assert.Nil(t, gotMsg)
				return
			}
			require.NoError(t, gotErr)
			assert.Equal(t, spec.expMsg, gotMsg)
			assert.Equal(t, "{\"ok\":true}\n", out.String())
		})
	}
}

func TestTxCmdDeliveryFailure(t *testing.T) {
	cmd := NewTxCmd(func(_ *cobra.Command, msg sdk.Msg) ([]byte, error) {
		return nil, types.ErrVotingEnded
	})
	setOutput(cmd, &bytes.Buffer{})
	cmd.SetArgs([]string{"vote", "1", "yes", "--from=" + types.RandomAccAddress().String()})

	gotErr := cmd.Execute()
	assert.True(t, types.ErrVotingEnded.Is(gotErr))
}

func TestQueryCmds(t *testing.T) {
	voter := types.RandomAccAddress()
	specs := map[string]struct {
		args    []string
		expPath string
		expErr  bool
	}{
		"draft":               {args: []string{"draft", "1"}, expPath: "draft/1"},
		"draft alias":         {args: []string{"d", "1"}, expPath: "draft/1"},
		"draft invalid id":    {args: []string{"draft", "one"}, expErr: true},
		"channel drafts":      {args: []string{"channel-drafts", "7"}, expPath: "channel-drafts/7"},
		"total":               {args: []string{"total"}, expPath: "total"},
		"has voted":           {args: []string{"has-voted", "1", voter.String()}, expPath: "has-voted/1/" + voter.String()},
		"has voted bad voter": {args: []string{"has-voted", "1", "invalid"}, expErr: true},
		"votes":               {args: []string{"votes", "1"}, expPath: "votes/1"},
		"params":              {args: []string{"params"}, expPath: "params"},
		"owner":               {args: []string{"owner"}, expPath: "owner"},
		"shares ledger":       {args: []string{"shares-ledger"}, expPath: "shares-ledger"},
		"too many args":       {args: []string{"params", "1"}, expErr: true},
	}
	for name, spec := range specs {
		t.Run(name, func(t *testing.T) {
			var gotPath string
			cmd := NewQueryCmd(func(_ *cobra.Command, path string) ([]byte, error) {
				gotPath = path
				return []byte(`{}`), nil
			})
			var out bytes.Buffer
			setOutput(cmd, &out)
			cmd.SetArgs(spec.args)

			gotErr := cmd.Execute()
			if spec.expErr {
				require.Error(t, gotErr)
				assert.Empty(t, gotPath)
				return
			}
			require.NoError(t, gotErr)
			assert.Equal(t, spec.expPath, gotPath)
			assert.Equal(t, "{}\n", out.String())
		})
	}
}

func TestQueryCmdFailure(t *testing.T) {
	cmd := NewQueryCmd(func(_ *cobra.Command, path string) ([]byte, error) {
		return nil, errors.New("testing")
	})
	setOutput(cmd, &bytes.Buffer{})
	cmd.SetArgs([]string{"total"})
	assert.EqualError(t, cmd.Execute(), "testing")
}

// setOutput redirects all command output. Query commands bind stdout when their flags are added.
func setOutput(cmd *cobra.Command, w *bytes.Buffer) {
	cmd.SetOut(w)
	cmd.SetErr(&bytes.Buffer{})
	for _, c := range cmd.Commands() {
		setOutput(c, w)
	}
}
