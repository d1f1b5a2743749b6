package cache

import "guildcache/pkg/discord"

// CachedUser is the default user representation.
type CachedUser struct {
	user discord.User
}

// NewCachedUser builds the default user representation.
func NewCachedUser(user discord.User) User {
	return &CachedUser{user: user}
}

// ID returns the user id.
func (u *CachedUser) ID() discord.ID { return u.user.ID }

// User returns the stored profile.
func (u *CachedUser) User() discord.User { return u.user }

// EqualUser reports whether user matches the cached profile.
func (u *CachedUser) EqualUser(user discord.User) bool {
	return u.user.Equal(user)
}

// CachedCurrentUser is the default current user representation.
type CachedCurrentUser struct {
	user discord.CurrentUser
}

// NewCachedCurrentUser builds the default current user representation.
func NewCachedCurrentUser(user discord.CurrentUser) CurrentUser {
	return &CachedCurrentUser{user: user}
}

// ID returns the current user id.
func (u *CachedCurrentUser) ID() discord.ID { return u.user.ID }

// User returns the stored profile.
func (u *CachedCurrentUser) User() discord.CurrentUser { return u.user }
