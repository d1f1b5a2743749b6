package cache

import (
	"time"

	"guildcache/pkg/discord"
)

// Values published in the cache are never mutated after they become visible.
// Kinds that events update in place expose Clone; the cache clones, mutates
// the clone and swaps it in under the entry's lock.

// Channel is the capability set the cache needs from a cached channel.
type Channel interface {
	ID() discord.ID
	GuildID() (discord.ID, bool)
	Kind() discord.ChannelType
	ParentID() (discord.ID, bool)
	SetLastPinTimestamp(timestamp *time.Time)
	Clone() Channel
}

// CurrentUser is the capability set of the cached current user.
type CurrentUser interface {
	ID() discord.ID
}

// Emoji is the capability set of a cached emoji.
type Emoji interface {
	ID() discord.ID
	EqualEmoji(emoji discord.Emoji) bool
}

// Guild is the capability set of a cached guild.
type Guild interface {
	ID() discord.ID
	OwnerID() discord.ID
	SetUnavailable(unavailable bool)
	UpdateWithGuildUpdate(update *discord.GuildUpdate)
	IncreaseMemberCount(amount uint64)
	DecreaseMemberCount(amount uint64)
	Clone() Guild
}

// Integration is the capability set of a cached guild integration.
type Integration interface {
	ID() discord.ID
	EqualIntegration(integration discord.GuildIntegration) bool
}

// Member is the capability set of a cached guild member.
type Member interface {
	UserID() discord.ID
	Roles() []discord.ID
	CommunicationDisabledUntil() *time.Time
	Avatar() *string
	Deaf() (deaf bool, known bool)
	Mute() (mute bool, known bool)
	UpdateWithMemberUpdate(update *discord.MemberUpdate)
	EqualMember(member discord.Member) bool
	EqualPartialMember(member discord.PartialMember) bool
	EqualInteractionMember(member discord.InteractionMember) bool
	Clone() Member
}

// Message is the capability set of a cached message, including the reaction
// list primitives used by reaction events.
type Message interface {
	ID() discord.ID
	ChannelID() discord.ID
	UpdateWithMessageUpdate(update *discord.MessageUpdate)
	Reactions() []Reaction
	AddReaction(reaction Reaction)
	SetReaction(idx int, reaction Reaction)
	RemoveReaction(idx int)
	RetainReactions(keep func(Reaction) bool)
	ClearReactions()
	Clone() Message
}

// Presence is the capability set of a cached presence.
type Presence interface {
	UserID() discord.ID
}

// Role is the capability set of a cached role.
type Role interface {
	ID() discord.ID
	Position() int64
	Permissions() discord.Permissions
	EqualRole(role discord.Role) bool
}

// StageInstance is the capability set of a cached stage instance.
type StageInstance interface {
	ID() discord.ID
	ChannelID() discord.ID
	EqualStageInstance(stage discord.StageInstance) bool
}

// Sticker is the capability set of a cached sticker.
type Sticker interface {
	ID() discord.ID
	EqualSticker(sticker discord.Sticker) bool
}

// User is the capability set of a cached user.
type User interface {
	ID() discord.ID
	EqualUser(user discord.User) bool
}

// VoiceState is the capability set of a cached voice state.
type VoiceState interface {
	UserID() discord.ID
	ChannelID() discord.ID
}

// Reaction is one emoji entry of a cached message's reaction list. UserIDs
// lists the distinct reacting users observed by the cache in arrival order;
// Count may exceed len(UserIDs) when the message arrived with reactions.
type Reaction struct {
	Emoji   discord.ReactionType
	Count   int
	Me      bool
	UserIDs []discord.ID
}

func (r Reaction) clone() Reaction {
	r.UserIDs = append([]discord.ID(nil), r.UserIDs...)
	return r
}

// GuildResource pairs a cached value with the guild that owns it.
type GuildResource[T any] struct {
	GuildID discord.ID
	Value   T
}

func ownerOf[T any](resource GuildResource[T]) discord.ID {
	return resource.GuildID
}
