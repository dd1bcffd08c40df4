package types

// legacy querier routes
const (
	QueryContentDraft         = "draft"
	QueryChannelContentDrafts = "channel-drafts"
	QueryTotalContentDrafts   = "total"
	QueryHasVoted             = "has-voted"
	QueryVotes                = "votes"
	QueryParams               = "params"
	QueryOwner                = "owner"
	QuerySharesLedger         = "shares-ledger"
)

// QueryContentDraftResponse is a draft with its status at query time
type QueryContentDraftResponse struct {
	Draft  ContentDraft `json:"draft" yaml:"draft"`
	Status DraftStatus  `json:"status" yaml:"status"`
}

// QueryChannelContentDraftsResponse ids in creation order
type QueryChannelContentDraftsResponse struct {
	ChannelID uint64   `json:"channel_id" yaml:"channel_id"`
	DraftIDs  []uint64 `json:"draft_ids" yaml:"draft_ids"`
}

type QueryTotalContentDraftsResponse struct {
	Total uint64 `json:"total" yaml:"total"`
}

type QueryHasVotedResponse struct {
	DraftID uint64 `json:"draft_id" yaml:"draft_id"`
	Voter   string `json:"voter" yaml:"voter"`
	Voted   bool   `json:"voted" yaml:"voted"`
}

type QueryVotesResponse struct {
	Votes []VoteRecord `json:"votes" yaml:"votes"`
}

type QueryAddressResponse struct {
	Address string `json:"address" yaml:"address"`
}
