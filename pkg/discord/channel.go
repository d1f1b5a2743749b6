package discord

import "time"

// ChannelType identifies the kind of a channel.
type ChannelType uint8

const (
	// ChannelGuildText is a guild text channel.
	ChannelGuildText ChannelType = 0
	// ChannelPrivate is a direct message channel.
	ChannelPrivate ChannelType = 1
	// ChannelGuildVoice is a guild voice channel.
	ChannelGuildVoice ChannelType = 2
	// ChannelGroup is a group direct message channel.
	ChannelGroup ChannelType = 3
	// ChannelGuildCategory is a guild category.
	ChannelGuildCategory ChannelType = 4
	// ChannelGuildNews is a guild announcement channel.
	ChannelGuildNews ChannelType = 5
	// ChannelGuildStore is a guild store channel.
	ChannelGuildStore ChannelType = 6
	// ChannelGuildNewsThread is a thread inside an announcement channel.
	ChannelGuildNewsThread ChannelType = 10
	// ChannelGuildPublicThread is a public thread.
	ChannelGuildPublicThread ChannelType = 11
	// ChannelGuildPrivateThread is a private thread.
	ChannelGuildPrivateThread ChannelType = 12
	// ChannelGuildStageVoice is a stage channel.
	ChannelGuildStageVoice ChannelType = 13
)

// IsGuild reports whether channels of this type belong to a guild.
func (t ChannelType) IsGuild() bool {
	return t != ChannelPrivate && t != ChannelGroup
}

// IsThread reports whether channels of this type are threads.
func (t ChannelType) IsThread() bool {
	switch t {
	case ChannelGuildNewsThread, ChannelGuildPublicThread, ChannelGuildPrivateThread:
		return true
	default:
		return false
	}
}

// String returns a stable lowercase name.
func (t ChannelType) String() string {
	switch t {
	case ChannelGuildText:
		return "guild_text"
	case ChannelPrivate:
		return "private"
	case ChannelGuildVoice:
		return "guild_voice"
	case ChannelGroup:
		return "group"
	case ChannelGuildCategory:
		return "guild_category"
	case ChannelGuildNews:
		return "guild_news"
	case ChannelGuildStore:
		return "guild_store"
	case ChannelGuildNewsThread:
		return "guild_news_thread"
	case ChannelGuildPublicThread:
		return "guild_public_thread"
	case ChannelGuildPrivateThread:
		return "guild_private_thread"
	case ChannelGuildStageVoice:
		return "guild_stage_voice"
	default:
		return "unknown"
	}
}

// PermissionOverwrite adjusts permissions for one role or member in a channel.
type PermissionOverwrite struct {
	ID    ID
	Kind  uint8
	Allow Permissions
	Deny  Permissions
}

// ThreadMetadata carries thread-only channel state.
type ThreadMetadata struct {
	Archived            bool
	AutoArchiveDuration int
	ArchiveTimestamp    *time.Time
	Locked              bool
}

// Channel is a channel or thread snapshot.
type Channel struct {
	ID                   ID
	Kind                 ChannelType
	GuildID              *ID
	Name                 *string
	Topic                *string
	Position             *int64
	ParentID             *ID
	OwnerID              *ID
	NSFW                 bool
	LastMessageID        *ID
	LastPinTimestamp     *time.Time
	Bitrate              *uint32
	UserLimit            *uint32
	RateLimitPerUser     *uint32
	PermissionOverwrites []PermissionOverwrite
	Recipients           []User
	ThreadMetadata       *ThreadMetadata
}
