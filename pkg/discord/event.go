package discord

import "time"

// EventKind is the gateway dispatch name of an event.
type EventKind string

const (
	EventReady               EventKind = "READY"
	EventUserUpdate          EventKind = "USER_UPDATE"
	EventGuildCreate         EventKind = "GUILD_CREATE"
	EventGuildUpdate         EventKind = "GUILD_UPDATE"
	EventGuildDelete         EventKind = "GUILD_DELETE"
	EventUnavailableGuild    EventKind = "UNAVAILABLE_GUILD"
	EventChannelCreate       EventKind = "CHANNEL_CREATE"
	EventChannelUpdate       EventKind = "CHANNEL_UPDATE"
	EventChannelDelete       EventKind = "CHANNEL_DELETE"
	EventChannelPinsUpdate   EventKind = "CHANNEL_PINS_UPDATE"
	EventThreadCreate        EventKind = "THREAD_CREATE"
	EventThreadUpdate        EventKind = "THREAD_UPDATE"
	EventThreadDelete        EventKind = "THREAD_DELETE"
	EventThreadListSync      EventKind = "THREAD_LIST_SYNC"
	EventMemberAdd           EventKind = "GUILD_MEMBER_ADD"
	EventMemberUpdate        EventKind = "GUILD_MEMBER_UPDATE"
	EventMemberRemove        EventKind = "GUILD_MEMBER_REMOVE"
	EventMemberChunk         EventKind = "GUILD_MEMBERS_CHUNK"
	EventRoleCreate          EventKind = "GUILD_ROLE_CREATE"
	EventRoleUpdate          EventKind = "GUILD_ROLE_UPDATE"
	EventRoleDelete          EventKind = "GUILD_ROLE_DELETE"
	EventEmojisUpdate        EventKind = "GUILD_EMOJIS_UPDATE"
	EventStickersUpdate      EventKind = "GUILD_STICKERS_UPDATE"
	EventIntegrationCreate   EventKind = "INTEGRATION_CREATE"
	EventIntegrationUpdate   EventKind = "INTEGRATION_UPDATE"
	EventIntegrationDelete   EventKind = "INTEGRATION_DELETE"
	EventPresenceUpdate      EventKind = "PRESENCE_UPDATE"
	EventVoiceStateUpdate    EventKind = "VOICE_STATE_UPDATE"
	EventMessageCreate       EventKind = "MESSAGE_CREATE"
	EventMessageUpdate       EventKind = "MESSAGE_UPDATE"
	EventMessageDelete       EventKind = "MESSAGE_DELETE"
	EventMessageDeleteBulk   EventKind = "MESSAGE_DELETE_BULK"
	EventReactionAdd         EventKind = "MESSAGE_REACTION_ADD"
	EventReactionRemove      EventKind = "MESSAGE_REACTION_REMOVE"
	EventReactionRemoveAll   EventKind = "MESSAGE_REACTION_REMOVE_ALL"
	EventReactionRemoveEmoji EventKind = "MESSAGE_REACTION_REMOVE_EMOJI"
	EventStageInstanceCreate EventKind = "STAGE_INSTANCE_CREATE"
	EventStageInstanceUpdate EventKind = "STAGE_INSTANCE_UPDATE"
	EventStageInstanceDelete EventKind = "STAGE_INSTANCE_DELETE"
	EventInteractionCreate   EventKind = "INTERACTION_CREATE"
)

// Event is a typed gateway change event. The set of implementations is closed
// to this package.
type Event interface {
	Kind() EventKind
	event()
}

// Ready is the first event of a session.
type Ready struct {
	User      CurrentUser
	Guilds    []UnavailableGuildRef
	SessionID string
}

// UserUpdate replaces the current user.
type UserUpdate struct {
	User CurrentUser
}

// GuildCreate carries a full guild snapshot.
type GuildCreate struct {
	Guild Guild
}

// GuildUpdate carries changed top-level guild fields.
type GuildUpdate struct {
	Guild PartialGuild
}

// GuildDelete removes a guild, or marks it unavailable during an outage.
type GuildDelete struct {
	ID          ID
	Unavailable bool
}

// UnavailableGuild marks a guild unavailable.
type UnavailableGuild struct {
	ID ID
}

// ChannelCreate carries a new channel.
type ChannelCreate struct {
	Channel Channel
}

// ChannelUpdate carries a changed channel.
type ChannelUpdate struct {
	Channel Channel
}

// ChannelDelete carries the deleted channel.
type ChannelDelete struct {
	Channel Channel
}

// ChannelPinsUpdate reports a change of a channel's pinned messages.
type ChannelPinsUpdate struct {
	ChannelID        ID
	GuildID          *ID
	LastPinTimestamp *time.Time
}

// ThreadCreate carries a new thread.
type ThreadCreate struct {
	Channel Channel
}

// ThreadUpdate carries a changed thread.
type ThreadUpdate struct {
	Channel Channel
}

// ThreadDelete identifies a deleted thread.
type ThreadDelete struct {
	ID       ID
	GuildID  ID
	ParentID ID
	Type     ChannelType
}

// ThreadListSync carries every active thread of the listed parent channels.
type ThreadListSync struct {
	GuildID    ID
	ChannelIDs []ID
	Threads    []Channel
}

// MemberAdd carries a member that joined a guild.
type MemberAdd struct {
	GuildID ID
	Member  Member
}

// MemberUpdate carries the changed fields of a guild member.
type MemberUpdate struct {
	GuildID                    ID
	User                       User
	Nick                       *string
	Avatar                     *string
	Roles                      []ID
	JoinedAt                   *time.Time
	PremiumSince               *time.Time
	CommunicationDisabledUntil *time.Time
	Deaf                       *bool
	Mute                       *bool
	Pending                    bool
	Flags                      *uint64
}

// MemberRemove reports a member that left a guild.
type MemberRemove struct {
	GuildID ID
	User    User
}

// MemberChunk is one page of a guild member request.
type MemberChunk struct {
	GuildID    ID
	Members    []Member
	Presences  []Presence
	ChunkIndex int
	ChunkCount int
	NotFound   []ID
	Nonce      *string
}

// RoleCreate carries a new role.
type RoleCreate struct {
	GuildID ID
	Role    Role
}

// RoleUpdate carries a changed role.
type RoleUpdate struct {
	GuildID ID
	Role    Role
}

// RoleDelete identifies a deleted role.
type RoleDelete struct {
	GuildID ID
	RoleID  ID
}

// GuildEmojisUpdate carries the complete emoji list of a guild.
type GuildEmojisUpdate struct {
	GuildID ID
	Emojis  []Emoji
}

// GuildStickersUpdate carries the complete sticker list of a guild.
type GuildStickersUpdate struct {
	GuildID  ID
	Stickers []Sticker
}

// IntegrationCreate carries a new integration. Its GuildID is always set.
type IntegrationCreate struct {
	Integration GuildIntegration
}

// IntegrationUpdate carries a changed integration. Its GuildID is always set.
type IntegrationUpdate struct {
	Integration GuildIntegration
}

// IntegrationDelete identifies a removed integration.
type IntegrationDelete struct {
	ID            ID
	GuildID       ID
	ApplicationID *ID
}

// PresenceUpdate carries a full presence replacement.
type PresenceUpdate struct {
	Presence Presence
}

// VoiceStateUpdate carries a full voice state replacement.
type VoiceStateUpdate struct {
	VoiceState VoiceState
}

// MessageCreate carries a new message.
type MessageCreate struct {
	Message Message
}

// MessageUpdate carries the changed fields of a message. Absent fields are nil.
type MessageUpdate struct {
	ID              ID
	ChannelID       ID
	GuildID         *ID
	Author          *User
	Content         *string
	EditedTimestamp *time.Time
	Pinned          *bool
	MentionEveryone *bool
	Mentions        *[]User
	MentionRoles    *[]ID
	Attachments     *[]Attachment
	Embeds          *[]Embed
	Flags           *uint64
}

// MessageDelete identifies a deleted message.
type MessageDelete struct {
	ID        ID
	ChannelID ID
	GuildID   *ID
}

// MessageDeleteBulk identifies several deleted messages of one channel.
type MessageDeleteBulk struct {
	IDs       []ID
	ChannelID ID
	GuildID   *ID
}

// GatewayReaction is the payload of reaction add and remove events.
type GatewayReaction struct {
	UserID    ID
	ChannelID ID
	MessageID ID
	GuildID   *ID
	Member    *Member
	Emoji     ReactionType
}

// ReactionAdd reports one user adding one reaction.
type ReactionAdd struct {
	Reaction GatewayReaction
}

// ReactionRemove reports one user removing one reaction.
type ReactionRemove struct {
	Reaction GatewayReaction
}

// ReactionRemoveAll reports that every reaction was removed from a message.
type ReactionRemoveAll struct {
	ChannelID ID
	MessageID ID
	GuildID   *ID
}

// ReactionRemoveEmoji reports that every reaction of one emoji was removed.
type ReactionRemoveEmoji struct {
	ChannelID ID
	MessageID ID
	GuildID   ID
	Emoji     ReactionType
}

// StageInstanceCreate carries a new stage instance.
type StageInstanceCreate struct {
	StageInstance StageInstance
}

// StageInstanceUpdate carries a changed stage instance.
type StageInstanceUpdate struct {
	StageInstance StageInstance
}

// StageInstanceDelete carries the deleted stage instance.
type StageInstanceDelete struct {
	StageInstance StageInstance
}

// InteractionCreate carries an invoked interaction.
type InteractionCreate struct {
	Interaction Interaction
}

func (*Ready) Kind() EventKind               { return EventReady }
func (*UserUpdate) Kind() EventKind          { return EventUserUpdate }
func (*GuildCreate) Kind() EventKind         { return EventGuildCreate }
func (*GuildUpdate) Kind() EventKind         { return EventGuildUpdate }
func (*GuildDelete) Kind() EventKind         { return EventGuildDelete }
func (*UnavailableGuild) Kind() EventKind    { return EventUnavailableGuild }
func (*ChannelCreate) Kind() EventKind       { return EventChannelCreate }
func (*ChannelUpdate) Kind() EventKind       { return EventChannelUpdate }
func (*ChannelDelete) Kind() EventKind       { return EventChannelDelete }
func (*ChannelPinsUpdate) Kind() EventKind   { return EventChannelPinsUpdate }
func (*ThreadCreate) Kind() EventKind        { return EventThreadCreate }
func (*ThreadUpdate) Kind() EventKind        { return EventThreadUpdate }
func (*ThreadDelete) Kind() EventKind        { return EventThreadDelete }
func (*ThreadListSync) Kind() EventKind      { return EventThreadListSync }
func (*MemberAdd) Kind() EventKind           { return EventMemberAdd }
func (*MemberUpdate) Kind() EventKind        { return EventMemberUpdate }
func (*MemberRemove) Kind() EventKind        { return EventMemberRemove }
func (*MemberChunk) Kind() EventKind         { return EventMemberChunk }
func (*RoleCreate) Kind() EventKind          { return EventRoleCreate }
func (*RoleUpdate) Kind() EventKind          { return EventRoleUpdate }
func (*RoleDelete) Kind() EventKind          { return EventRoleDelete }
func (*GuildEmojisUpdate) Kind() EventKind   { return EventEmojisUpdate }
func (*GuildStickersUpdate) Kind() EventKind { return EventStickersUpdate }
func (*IntegrationCreate) Kind() EventKind   { return EventIntegrationCreate }
func (*IntegrationUpdate) Kind() EventKind   { return EventIntegrationUpdate }
func (*IntegrationDelete) Kind() EventKind   { return EventIntegrationDelete }
func (*PresenceUpdate) Kind() EventKind      { return EventPresenceUpdate }
func (*VoiceStateUpdate) Kind() EventKind    { return EventVoiceStateUpdate }
func (*MessageCreate) Kind() EventKind       { return EventMessageCreate }
func (*MessageUpdate) Kind() EventKind       { return EventMessageUpdate }
func (*MessageDelete) Kind() EventKind       { return EventMessageDelete }
func (*MessageDeleteBulk) Kind() EventKind   { return EventMessageDeleteBulk }
func (*ReactionAdd) Kind() EventKind         { return EventReactionAdd }
func (*ReactionRemove) Kind() EventKind      { return EventReactionRemove }
func (*ReactionRemoveAll) Kind() EventKind   { return EventReactionRemoveAll }
func (*ReactionRemoveEmoji) Kind() EventKind { return EventReactionRemoveEmoji }
func (*StageInstanceCreate) Kind() EventKind { return EventStageInstanceCreate }
func (*StageInstanceUpdate) Kind() EventKind { return EventStageInstanceUpdate }
func (*StageInstanceDelete) Kind() EventKind { return EventStageInstanceDelete }
func (*InteractionCreate) Kind() EventKind   { return EventInteractionCreate }

func (*Ready) event()               {}
func (*UserUpdate) event()          {}
func (*GuildCreate) event()         {}
func (*GuildUpdate) event()         {}
func (*GuildDelete) event()         {}
func (*UnavailableGuild) event()    {}
func (*ChannelCreate) event()       {}
func (*ChannelUpdate) event()       {}
func (*ChannelDelete) event()       {}
func (*ChannelPinsUpdate) event()   {}
func (*ThreadCreate) event()        {}
func (*ThreadUpdate) event()        {}
func (*ThreadDelete) event()        {}
func (*ThreadListSync) event()      {}
func (*MemberAdd) event()           {}
func (*MemberUpdate) event()        {}
func (*MemberRemove) event()        {}
func (*MemberChunk) event()         {}
func (*RoleCreate) event()          {}
func (*RoleUpdate) event()          {}
func (*RoleDelete) event()          {}
func (*GuildEmojisUpdate) event()   {}
func (*GuildStickersUpdate) event() {}
func (*IntegrationCreate) event()   {}
func (*IntegrationUpdate) event()   {}
func (*IntegrationDelete) event()   {}
func (*PresenceUpdate) event()      {}
func (*VoiceStateUpdate) event()    {}
func (*MessageCreate) event()       {}
func (*MessageUpdate) event()       {}
func (*MessageDelete) event()       {}
func (*MessageDeleteBulk) event()   {}
func (*ReactionAdd) event()         {}
func (*ReactionRemove) event()      {}
func (*ReactionRemoveAll) event()   {}
func (*ReactionRemoveEmoji) event() {}
func (*StageInstanceCreate) event() {}
func (*StageInstanceUpdate) event() {}
func (*StageInstanceDelete) event() {}
func (*InteractionCreate) event()   {}
