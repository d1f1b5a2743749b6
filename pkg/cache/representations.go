package cache

import "guildcache/pkg/discord"

// Representations constructs the cached value of every entity kind. Callers
// may swap any constructor to store a smaller or richer representation.
type Representations struct {
	Channel       func(channel discord.Channel) Channel
	CurrentUser   func(user discord.CurrentUser) CurrentUser
	Emoji         func(emoji discord.Emoji) Emoji
	Guild         func(guild discord.Guild) Guild
	Integration   func(integration discord.GuildIntegration) Integration
	Member        func(guildID discord.ID, member discord.Member) Member
	PartialMember func(guildID discord.ID, userID discord.ID, member discord.PartialMember) Member
	// InteractionMember receives the voice flags, which interaction payloads omit.
	InteractionMember func(guildID discord.ID, userID discord.ID, member discord.InteractionMember, deaf, mute *bool) Member
	Message           func(message discord.Message) Message
	Presence          func(presence discord.Presence) Presence
	Role              func(role discord.Role) Role
	StageInstance     func(stage discord.StageInstance) StageInstance
	Sticker           func(sticker discord.Sticker) Sticker
	User              func(user discord.User) User
	VoiceState        func(channelID discord.ID, guildID discord.ID, state discord.VoiceState) VoiceState
}

// DefaultRepresentations returns constructors for the Cached* types.
func DefaultRepresentations() Representations {
	return Representations{
		Channel:           NewCachedChannel,
		CurrentUser:       NewCachedCurrentUser,
		Emoji:             NewCachedEmoji,
		Guild:             NewCachedGuild,
		Integration:       NewCachedIntegration,
		Member:            NewCachedMember,
		PartialMember:     NewCachedPartialMember,
		InteractionMember: NewCachedInteractionMember,
		Message:           NewCachedMessage,
		Presence:          NewCachedPresence,
		Role:              NewCachedRole,
		StageInstance:     NewCachedStageInstance,
		Sticker:           NewCachedSticker,
		User:              NewCachedUser,
		VoiceState:        NewCachedVoiceState,
	}
}

func (r Representations) withDefaults() Representations {
	defaults := DefaultRepresentations()
	if r.Channel == nil {
		r.Channel = defaults.Channel
	}
	if r.CurrentUser == nil {
		r.CurrentUser = defaults.CurrentUser
	}
	if r.Emoji == nil {
		r.Emoji = defaults.Emoji
	}
	if r.Guild == nil {
		r.Guild = defaults.Guild
	}
	if r.Integration == nil {
		r.Integration = defaults.Integration
	}
	if r.Member == nil {
		r.Member = defaults.Member
	}
	if r.PartialMember == nil {
		r.PartialMember = defaults.PartialMember
	}
	if r.InteractionMember == nil {
		r.InteractionMember = defaults.InteractionMember
	}
	if r.Message == nil {
		r.Message = defaults.Message
	}
	if r.Presence == nil {
		r.Presence = defaults.Presence
	}
	if r.Role == nil {
		r.Role = defaults.Role
	}
	if r.StageInstance == nil {
		r.StageInstance = defaults.StageInstance
	}
	if r.Sticker == nil {
		r.Sticker = defaults.Sticker
	}
	if r.User == nil {
		r.User = defaults.User
	}
	if r.VoiceState == nil {
		r.VoiceState = defaults.VoiceState
	}

	return r
}
