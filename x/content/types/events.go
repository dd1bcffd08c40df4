package types

// content module event types
const (
	EventTypeContentDraftCreated    = "content_draft_created"
	EventTypeVoteCast               = "vote_cast"
	EventTypeContentApproved        = "content_approved"
	EventTypeContentRejected        = "content_rejected"
	EventTypeQuorumThresholdUpdated = "quorum_threshold_updated"
	EventTypeMinVotingPeriodUpdated = "min_voting_period_updated"
	EventTypeOwnershipTransferred   = "ownership_transferred"

	AttributeKeyDraftID       = "draft_id"
	AttributeKeyChannelID     = "channel_id"
	AttributeKeyProposalID    = "proposal_id"
	AttributeKeyTitle         = "title"
	AttributeKeyContentURI    = "content_uri"
	AttributeKeyStartTime     = "start_time"
	AttributeKeyEndTime       = "end_time"
	AttributeKeyVoter         = "voter"
	AttributeKeySupport       = "support"
	AttributeKeyWeight        = "weight"
	AttributeKeyOldValue      = "old_value"
	AttributeKeyNewValue      = "new_value"
	AttributeKeyPreviousOwner = "previous_owner"
	AttributeKeyNewOwner      = "new_owner"
	AttributeValueCategory    = ModuleName
)
