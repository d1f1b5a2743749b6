package cache

import "guildcache/pkg/discord"

// CachedRole is the default role representation.
type CachedRole struct {
	role discord.Role
}

// NewCachedRole builds the default role representation.
func NewCachedRole(role discord.Role) Role {
	return &CachedRole{role: role}
}

// ID returns the role id.
func (r *CachedRole) ID() discord.ID { return r.role.ID }

// Position returns the role position in the hierarchy.
func (r *CachedRole) Position() int64 { return r.role.Position }

// Permissions returns the role permission bits.
func (r *CachedRole) Permissions() discord.Permissions { return r.role.Permissions }

// Name returns the role name.
func (r *CachedRole) Name() string { return r.role.Name }

// Role returns the stored role payload.
func (r *CachedRole) Role() discord.Role { return r.role }

// EqualRole reports whether role matches the cached role.
func (r *CachedRole) EqualRole(role discord.Role) bool { return r.role.Equal(role) }

// CachedEmoji is the default emoji representation. The creator is referenced
// by id.
type CachedEmoji struct {
	id            discord.ID
	name          string
	animated      bool
	available     bool
	managed       bool
	requireColons bool
	roles         []discord.ID
	userID        *discord.ID
}

// NewCachedEmoji builds the default emoji representation.
func NewCachedEmoji(emoji discord.Emoji) Emoji {
	cached := &CachedEmoji{
		id:            emoji.ID,
		name:          emoji.Name,
		animated:      emoji.Animated,
		available:     emoji.Available,
		managed:       emoji.Managed,
		requireColons: emoji.RequireColons,
		roles:         cloneIDs(emoji.Roles),
	}
	if emoji.User != nil {
		userID := emoji.User.ID
		cached.userID = &userID
	}

	return cached
}

// ID returns the emoji id.
func (e *CachedEmoji) ID() discord.ID { return e.id }

// Name returns the emoji name.
func (e *CachedEmoji) Name() string { return e.name }

// Animated reports whether the emoji is animated.
func (e *CachedEmoji) Animated() bool { return e.animated }

// EqualEmoji reports whether emoji matches the cached emoji.
func (e *CachedEmoji) EqualEmoji(emoji discord.Emoji) bool {
	var userID *discord.ID
	if emoji.User != nil {
		userID = &emoji.User.ID
	}

	return e.id == emoji.ID &&
		e.name == emoji.Name &&
		e.animated == emoji.Animated &&
		e.available == emoji.Available &&
		e.managed == emoji.Managed &&
		e.requireColons == emoji.RequireColons &&
		discord.EqualIDs(e.roles, emoji.Roles) &&
		equalOptionalID(e.userID, userID)
}

// CachedSticker is the default sticker representation.
type CachedSticker struct {
	sticker discord.Sticker
	userID  *discord.ID
}

// NewCachedSticker builds the default sticker representation.
func NewCachedSticker(sticker discord.Sticker) Sticker {
	cached := &CachedSticker{sticker: sticker}
	if sticker.User != nil {
		userID := sticker.User.ID
		cached.userID = &userID
	}
	cached.sticker.User = nil

	return cached
}

// ID returns the sticker id.
func (s *CachedSticker) ID() discord.ID { return s.sticker.ID }

// Name returns the sticker name.
func (s *CachedSticker) Name() string { return s.sticker.Name }

// EqualSticker reports whether sticker matches the cached sticker.
func (s *CachedSticker) EqualSticker(sticker discord.Sticker) bool {
	var userID *discord.ID
	if sticker.User != nil {
		userID = &sticker.User.ID
	}
	own := s.sticker

	return own.ID == sticker.ID &&
		own.Name == sticker.Name &&
		equalOptionalString(own.Description, sticker.Description) &&
		own.Tags == sticker.Tags &&
		own.Kind == sticker.Kind &&
		own.FormatType == sticker.FormatType &&
		own.Available == sticker.Available &&
		equalOptionalID(own.PackID, sticker.PackID) &&
		equalOptionalID(s.userID, userID)
}

// CachedIntegration is the default integration representation.
type CachedIntegration struct {
	integration discord.GuildIntegration
}

// NewCachedIntegration builds the default integration representation.
func NewCachedIntegration(integration discord.GuildIntegration) Integration {
	return &CachedIntegration{integration: integration}
}

// ID returns the integration id.
func (i *CachedIntegration) ID() discord.ID { return i.integration.ID }

// Integration returns the stored snapshot.
func (i *CachedIntegration) Integration() discord.GuildIntegration { return i.integration }

// EqualIntegration reports whether integration matches the cached integration.
func (i *CachedIntegration) EqualIntegration(integration discord.GuildIntegration) bool {
	own := i.integration
	ownUser, otherUser := own.User, integration.User

	return own.ID == integration.ID &&
		equalOptionalID(own.GuildID, integration.GuildID) &&
		own.Name == integration.Name &&
		own.Kind == integration.Kind &&
		own.Enabled == integration.Enabled &&
		equalOptionalID(own.RoleID, integration.RoleID) &&
		own.Account == integration.Account &&
		((ownUser == nil && otherUser == nil) || (ownUser != nil && otherUser != nil && ownUser.Equal(*otherUser)))
}

// CachedStageInstance is the default stage instance representation.
type CachedStageInstance struct {
	stage discord.StageInstance
}

// NewCachedStageInstance builds the default stage instance representation.
func NewCachedStageInstance(stage discord.StageInstance) StageInstance {
	return &CachedStageInstance{stage: stage}
}

// ID returns the stage instance id.
func (s *CachedStageInstance) ID() discord.ID { return s.stage.ID }

// ChannelID returns the stage channel.
func (s *CachedStageInstance) ChannelID() discord.ID { return s.stage.ChannelID }

// Topic returns the stage topic.
func (s *CachedStageInstance) Topic() string { return s.stage.Topic }

// EqualStageInstance reports whether stage matches the cached stage instance.
func (s *CachedStageInstance) EqualStageInstance(stage discord.StageInstance) bool {
	own := s.stage

	return own.ID == stage.ID &&
		own.GuildID == stage.GuildID &&
		own.ChannelID == stage.ChannelID &&
		own.Topic == stage.Topic &&
		own.PrivacyLevel == stage.PrivacyLevel &&
		equalOptionalID(own.GuildScheduledEventID, stage.GuildScheduledEventID)
}

func equalOptionalID(a, b *discord.ID) bool {
	if a == nil || b == nil {
		return a == b
	}

	return *a == *b
}

func equalOptionalString(a, b *string) bool {
	if a == nil || b == nil {
		return a == b
	}

	return *a == *b
}
