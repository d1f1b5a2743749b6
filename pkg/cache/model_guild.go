package cache

import "guildcache/pkg/discord"

// CachedGuild is the default guild representation. It keeps the guild's own
// fields; children live in their own stores.
type CachedGuild struct {
	id              discord.ID
	name            string
	icon            *string
	description     *string
	ownerID         discord.ID
	permissions     *discord.Permissions
	memberCount     *uint64
	large           bool
	unavailable     bool
	preferredLocale string
	premiumTier     uint8
}

// NewCachedGuild builds the default guild representation.
func NewCachedGuild(guild discord.Guild) Guild {
	return &CachedGuild{
		id:              guild.ID,
		name:            guild.Name,
		icon:            guild.Icon,
		description:     guild.Description,
		ownerID:         guild.OwnerID,
		permissions:     guild.Permissions,
		memberCount:     guild.MemberCount,
		large:           guild.Large,
		unavailable:     guild.Unavailable,
		preferredLocale: guild.PreferredLocale,
		premiumTier:     guild.PremiumTier,
	}
}

// ID returns the guild id.
func (g *CachedGuild) ID() discord.ID { return g.id }

// OwnerID returns the guild owner's user id.
func (g *CachedGuild) OwnerID() discord.ID { return g.ownerID }

// Name returns the guild name.
func (g *CachedGuild) Name() string { return g.name }

// Icon returns the icon hash, if set.
func (g *CachedGuild) Icon() *string { return g.icon }

// Large reports whether the guild is considered large.
func (g *CachedGuild) Large() bool { return g.large }

// Unavailable reports whether the guild is in an outage.
func (g *CachedGuild) Unavailable() bool { return g.unavailable }

// Permissions returns the current user's permissions when the payload carried them.
func (g *CachedGuild) Permissions() (discord.Permissions, bool) {
	if g.permissions == nil {
		return 0, false
	}

	return *g.permissions, true
}

// MemberCount returns the approximate member count when known.
func (g *CachedGuild) MemberCount() (uint64, bool) {
	if g.memberCount == nil {
		return 0, false
	}

	return *g.memberCount, true
}

// SetUnavailable flags the guild as unavailable or available.
func (g *CachedGuild) SetUnavailable(unavailable bool) {
	g.unavailable = unavailable
}

// UpdateWithGuildUpdate applies the fields carried by a guild update.
func (g *CachedGuild) UpdateWithGuildUpdate(update *discord.GuildUpdate) {
	g.name = update.Guild.Name
	g.ownerID = update.Guild.OwnerID
	g.permissions = update.Guild.Permissions
	g.icon = update.Guild.Icon
	g.description = update.Guild.Description
}

// IncreaseMemberCount adds amount to a known member count.
func (g *CachedGuild) IncreaseMemberCount(amount uint64) {
	if g.memberCount == nil {
		return
	}
	count := *g.memberCount + amount
	g.memberCount = &count
}

// DecreaseMemberCount subtracts amount from a known member count, stopping at zero.
func (g *CachedGuild) DecreaseMemberCount(amount uint64) {
	if g.memberCount == nil {
		return
	}
	count := *g.memberCount
	if amount > count {
		amount = count
	}
	count -= amount
	g.memberCount = &count
}

// Clone returns a copy safe to mutate.
func (g *CachedGuild) Clone() Guild {
	cloned := *g
	return &cloned
}
