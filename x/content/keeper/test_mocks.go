package keeper

import (
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/knowscroll/contentgov/x/content/types"
)

var _ types.SmartQuerier = SmartQuerierMock{}

// SmartQuerierMock mocks the contract query
type SmartQuerierMock struct {
	QuerySmartFn func(ctx sdk.Context, contractAddr sdk.AccAddress, req []byte) ([]byte, error)
}

func (m SmartQuerierMock) QuerySmart(ctx sdk.Context, contractAddr sdk.AccAddress, req []byte) ([]byte, error) {
	if m.QuerySmartFn == nil {
		panic("not expected to be called")
	}
	return m.QuerySmartFn(ctx, contractAddr, req)
}

var _ ContentKeeper = ContentKeeperMock{}

// ContentKeeperMock mocks the keeper methods used by the msg server
type ContentKeeperMock struct {
	CreateContentDraftFn     func(ctx sdk.Context, creator sdk.AccAddress, channelID uint64, title, contentURI, metadataURI string, proposalID uint64, votingPeriod uint64) (uint64, error)
	CastVoteFn               func(ctx sdk.Context, voter sdk.AccAddress, draftID uint64, support bool) (sdk.Int, error)
	ExecuteContentApprovalFn func(ctx sdk.Context, draftID uint64) (bool, error)
	SetQuorumThresholdFn     func(ctx sdk.Context, sender sdk.AccAddress, threshold uint64) error
	SetMinVotingPeriodFn     func(ctx sdk.Context, sender sdk.AccAddress, period uint64) error
	TransferOwnershipFn      func(ctx sdk.Context, sender, newOwner sdk.AccAddress) error
}

func (m ContentKeeperMock) CreateContentDraft(ctx sdk.Context, creator sdk.AccAddress, channelID uint64, title, contentURI, metadataURI string, proposalID uint64, votingPeriod uint64) (uint64, error) {
	if m.CreateContentDraftFn == nil {
		panic("not expected to be called")
	}
	return m.CreateContentDraftFn(ctx, creator, channelID, title, contentURI, metadataURI, proposalID, votingPeriod)
}

func (m ContentKeeperMock) CastVote(ctx sdk.Context, voter sdk.AccAddress, draftID uint64, support bool) (sdk.Int, error) {
	if m.CastVoteFn == nil {
		panic("not expected to be called")
	}
	return m.CastVoteFn(ctx, voter, draftID, support)
}

func (m ContentKeeperMock) ExecuteContentApproval(ctx sdk.Context, draftID uint64) (bool, error) {
	if m.ExecuteContentApprovalFn == nil {
		panic("not expected to be called")
	}
	return m.ExecuteContentApprovalFn(ctx, draftID)
}

func (m ContentKeeperMock) SetQuorumThreshold(ctx sdk.Context, sender sdk.AccAddress, threshold uint64) error {
	if m.SetQuorumThresholdFn == nil {
		panic("not expected to be called")
	}
	return m.SetQuorumThresholdFn(ctx, sender, threshold)
}

func (m ContentKeeperMock) SetMinVotingPeriod(ctx sdk.Context, sender sdk.AccAddress, period uint64) error {
	if m.SetMinVotingPeriodFn == nil {
		panic("not expected to be called")
	}
	return m.SetMinVotingPeriodFn(ctx, sender, period)
}

func (m ContentKeeperMock) TransferOwnership(ctx sdk.Context, sender, newOwner sdk.AccAddress) error {
	if m.TransferOwnershipFn == nil {
		panic("not expected to be called")
	}
	return m.TransferOwnershipFn(ctx, sender, newOwner)
}
