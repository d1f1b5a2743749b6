package cache

import (
	"time"

	"guildcache/pkg/discord"
)

// CachedMember is the default member representation. The user profile is
// stored once in the user store and referenced by id.
type CachedMember struct {
	guildID                    discord.ID
	userID                     discord.ID
	avatar                     *string
	communicationDisabledUntil *time.Time
	deaf                       *bool
	mute                       *bool
	flags                      uint64
	joinedAt                   *time.Time
	nick                       *string
	pending                    bool
	premiumSince               *time.Time
	roles                      []discord.ID
}

// NewCachedMember builds a member from a full member payload.
func NewCachedMember(guildID discord.ID, member discord.Member) Member {
	return &CachedMember{
		guildID:                    guildID,
		userID:                     member.User.ID,
		avatar:                     member.Avatar,
		communicationDisabledUntil: member.CommunicationDisabledUntil,
		deaf:                       &member.Deaf,
		mute:                       &member.Mute,
		flags:                      member.Flags,
		joinedAt:                   member.JoinedAt,
		nick:                       member.Nick,
		pending:                    member.Pending,
		premiumSince:               member.PremiumSince,
		roles:                      cloneIDs(member.Roles),
	}
}

// NewCachedPartialMember builds a member from the fragment embedded in a
// message or interaction. The payload's own user wins over userID.
func NewCachedPartialMember(guildID discord.ID, userID discord.ID, member discord.PartialMember) Member {
	if member.User != nil {
		userID = member.User.ID
	}

	return &CachedMember{
		guildID:                    guildID,
		userID:                     userID,
		avatar:                     member.Avatar,
		communicationDisabledUntil: member.CommunicationDisabledUntil,
		deaf:                       &member.Deaf,
		mute:                       &member.Mute,
		flags:                      member.Flags,
		joinedAt:                   member.JoinedAt,
		nick:                       member.Nick,
		premiumSince:               member.PremiumSince,
		roles:                      cloneIDs(member.Roles),
	}
}

// NewCachedInteractionMember builds a member from resolved interaction data.
func NewCachedInteractionMember(
	guildID discord.ID,
	userID discord.ID,
	member discord.InteractionMember,
	deaf, mute *bool,
) Member {
	return &CachedMember{
		guildID:                    guildID,
		userID:                     userID,
		avatar:                     member.Avatar,
		communicationDisabledUntil: member.CommunicationDisabledUntil,
		deaf:                       deaf,
		mute:                       mute,
		flags:                      member.Flags,
		joinedAt:                   member.JoinedAt,
		nick:                       member.Nick,
		pending:                    member.Pending,
		premiumSince:               member.PremiumSince,
		roles:                      cloneIDs(member.Roles),
	}
}

// GuildID returns the guild the member belongs to.
func (m *CachedMember) GuildID() discord.ID { return m.guildID }

// UserID returns the member's user id.
func (m *CachedMember) UserID() discord.ID { return m.userID }

// Avatar returns the guild avatar hash, if set.
func (m *CachedMember) Avatar() *string { return m.avatar }

// CommunicationDisabledUntil returns when a timeout ends, if one is set.
func (m *CachedMember) CommunicationDisabledUntil() *time.Time { return m.communicationDisabledUntil }

// Nick returns the guild nickname, if set.
func (m *CachedMember) Nick() *string { return m.nick }

// JoinedAt returns when the member joined, if known.
func (m *CachedMember) JoinedAt() *time.Time { return m.joinedAt }

// PremiumSince returns when the member started boosting, if they do.
func (m *CachedMember) PremiumSince() *time.Time { return m.premiumSince }

// Pending reports whether the member has not passed membership screening.
func (m *CachedMember) Pending() bool { return m.pending }

// Flags returns the member flag bits.
func (m *CachedMember) Flags() uint64 { return m.flags }

// Roles returns a copy of the member's role ids.
func (m *CachedMember) Roles() []discord.ID {
	return cloneIDs(m.roles)
}

// Deaf returns the server deaf flag and whether it is known.
func (m *CachedMember) Deaf() (bool, bool) {
	if m.deaf == nil {
		return false, false
	}

	return *m.deaf, true
}

// Mute returns the server mute flag and whether it is known.
func (m *CachedMember) Mute() (bool, bool) {
	if m.mute == nil {
		return false, false
	}

	return *m.mute, true
}

// UpdateWithMemberUpdate applies the fields carried by a member update.
func (m *CachedMember) UpdateWithMemberUpdate(update *discord.MemberUpdate) {
	m.avatar = update.Avatar
	m.communicationDisabledUntil = update.CommunicationDisabledUntil
	if update.Deaf != nil {
		m.deaf = update.Deaf
	}
	if update.Mute != nil {
		m.mute = update.Mute
	}
	if update.Flags != nil {
		m.flags = *update.Flags
	}
	if update.JoinedAt != nil {
		m.joinedAt = update.JoinedAt
	}
	m.nick = update.Nick
	m.pending = update.Pending
	m.premiumSince = update.PremiumSince
	m.roles = cloneIDs(update.Roles)
}

// EqualMember reports whether member matches the cached member.
func (m *CachedMember) EqualMember(member discord.Member) bool {
	return m.userID == member.User.ID &&
		discord.EqualTime(m.communicationDisabledUntil, member.CommunicationDisabledUntil) &&
		discord.EqualIDs(m.roles, member.Roles)
}

// EqualPartialMember reports whether member matches the cached member.
func (m *CachedMember) EqualPartialMember(member discord.PartialMember) bool {
	return discord.EqualTime(m.communicationDisabledUntil, member.CommunicationDisabledUntil) &&
		discord.EqualIDs(m.roles, member.Roles)
}

// EqualInteractionMember reports whether member matches the cached member.
func (m *CachedMember) EqualInteractionMember(member discord.InteractionMember) bool {
	return discord.EqualIDs(m.roles, member.Roles)
}

// Clone returns a copy safe to mutate.
func (m *CachedMember) Clone() Member {
	cloned := *m
	cloned.roles = cloneIDs(m.roles)
	return &cloned
}

func cloneIDs(ids []discord.ID) []discord.ID {
	if ids == nil {
		return nil
	}

	return append([]discord.ID(nil), ids...)
}
