package discord

// Emoji is a custom guild emoji.
type Emoji struct {
	ID            ID
	Name          string
	Animated      bool
	Available     bool
	Managed       bool
	RequireColons bool
	Roles         []ID
	User          *User
}

// Sticker is a custom guild sticker.
type Sticker struct {
	ID          ID
	GuildID     *ID
	PackID      *ID
	Name        string
	Description *string
	Tags        string
	Kind        uint8
	FormatType  uint8
	Available   bool
	SortValue   *uint64
	User        *User
}

// IntegrationAccount is the external account of an integration.
type IntegrationAccount struct {
	ID   string
	Name string
}

// GuildIntegration is a guild integration such as a bot or subscription.
type GuildIntegration struct {
	ID      ID
	GuildID *ID
	Name    string
	Kind    string
	Enabled bool
	Syncing *bool
	RoleID  *ID
	User    *User
	Account IntegrationAccount
	Revoked *bool
}

// StageInstance is a live stage in a stage channel.
type StageInstance struct {
	ID                    ID
	GuildID               ID
	ChannelID             ID
	Topic                 string
	PrivacyLevel          uint8
	GuildScheduledEventID *ID
}
