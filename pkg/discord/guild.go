package discord

// Guild is the full guild snapshot delivered by guild create.
type Guild struct {
	ID                ID
	Name              string
	Icon              *string
	OwnerID           ID
	Permissions       *Permissions
	MemberCount       *uint64
	Large             bool
	Unavailable       bool
	Description       *string
	PreferredLocale   string
	VerificationLevel uint8
	PremiumTier       uint8
	Channels          []Channel
	Threads           []Channel
	Members           []Member
	Roles             []Role
	Emojis            []Emoji
	Stickers          []Sticker
	Presences         []Presence
	VoiceStates       []VoiceState
	StageInstances    []StageInstance
}

// PartialGuild is the guild payload of a guild update. It carries no child lists
// other than roles and emojis, which the cache does not rebuild from it.
type PartialGuild struct {
	ID          ID
	Name        string
	Icon        *string
	OwnerID     ID
	Permissions *Permissions
	MemberCount *uint64
	Description *string
	Roles       []Role
	Emojis      []Emoji
}

// UnavailableGuildRef names a guild that is not currently available.
type UnavailableGuildRef struct {
	ID          ID
	Unavailable bool
}
