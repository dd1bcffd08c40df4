package keeper

import (
	"testing"
	"time"

	"github.com/cosmos/cosmos-sdk/store"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"
	"github.com/tendermint/tendermint/libs/log"
	tmproto "github.com/tendermint/tendermint/proto/tendermint/types"
	dbm "github.com/tendermint/tm-db"

	"github.com/knowscroll/contentgov/x/content/types"
	shareskeeper "github.com/knowscroll/contentgov/x/shares/keeper"
	sharestypes "github.com/knowscroll/contentgov/x/shares/types"
)

// genesisTime is the block time of a fresh test context
var genesisTime = time.Date(2024, time.January, 1, 12, 0, 0, 0, time.UTC)

type TestKeepers struct {
	ContentKeeper Keeper
	SharesKeeper  shareskeeper.Keeper
	Owner         sdk.AccAddress
}

// createMinTestInput mounts the content and shares stores and initializes the content config
// with default params, a random owner and the shares registry as ledger.
func createMinTestInput(t *testing.T) (sdk.Context, TestKeepers) {
	keyContent := sdk.NewKVStoreKey(types.StoreKey)
	keyShares := sdk.NewKVStoreKey(sharestypes.StoreKey)

	db := dbm.NewMemDB()
	ms := store.NewCommitMultiStore(db)
	ms.MountStoreWithDB(keyContent, sdk.StoreTypeIAVL, db)
	ms.MountStoreWithDB(keyShares, sdk.StoreTypeIAVL, db)
	require.NoError(t, ms.LoadLatestVersion())

	ctx := sdk.NewContext(ms, tmproto.Header{
		Height: 1234567,
		Time:   genesisTime,
	}, false, log.NewNopLogger())

	sharesKeeper := shareskeeper.NewKeeper(keyShares)
	k := NewKeeper(types.ModuleCdc, keyContent, sharesKeeper)
	owner := types.RandomAccAddress()
	require.NoError(t, k.InitConfig(ctx, owner, sharestypes.LedgerAddress, types.DefaultParams()))
	return ctx, TestKeepers{ContentKeeper: k, SharesKeeper: sharesKeeper, Owner: owner}
}

// setShares sets balances for channel 1 and returns the accounts in order
func setShares(t *testing.T, ctx sdk.Context, k shareskeeper.Keeper, channelID uint64, amounts ...int64) []sdk.AccAddress {
	r := make([]sdk.AccAddress, len(amounts))
	for i, a := range amounts {
		r[i] = types.RandomAccAddress()
		require.NoError(t, k.SetBalance(ctx, channelID, r[i], sdk.NewInt(a)))
	}
	return r
}

// createDraft creates a draft in the channel with the given voting period in seconds
func createDraft(t *testing.T, ctx sdk.Context, k Keeper, channelID uint64, votingPeriod uint64) uint64 {
	id, err := k.CreateContentDraft(ctx, types.RandomAccAddress(), channelID, "Episode", "ipfs://episode", "", 1, votingPeriod)
	require.NoError(t, err)
	return id
}
