package cache

import "guildcache/pkg/discord"

// cacheUser stores user and, when guildID is set, records that the guild
// references it. An identical stored profile is not rewritten.
func (c *Cache) cacheUser(user discord.User, guildID *discord.ID) {
	if !c.Wants(ResourceUser) {
		return
	}

	upsert := func(old User, exists bool) User {
		if exists && old.EqualUser(user) {
			return old
		}
		return c.reps.User(user)
	}

	if guildID == nil {
		c.users.Upsert(user.ID, upsert)
		return
	}

	guild := *guildID
	c.userGuilds.Update(user.ID, func(guilds map[discord.ID]struct{}) {
		c.users.Upsert(user.ID, upsert)
		guilds[guild] = struct{}{}
	})
}

// releaseUser drops a guild's reference to a user and removes the user when
// no guild references it anymore.
func (c *Cache) releaseUser(userID, guildID discord.ID) {
	c.userGuilds.Release(userID, guildID, func() {
		c.users.Remove(userID)
	})
}

func (c *Cache) cacheCurrentUser(user discord.CurrentUser) {
	cached := c.reps.CurrentUser(user)

	c.currentUserMu.Lock()
	defer c.currentUserMu.Unlock()
	c.currentUser = cached
}

func (c *Cache) updateReady(ev *discord.Ready) {
	if c.Wants(ResourceUserCurrent) {
		c.cacheCurrentUser(ev.User)
	}
	if c.Wants(ResourceGuild) {
		for _, guild := range ev.Guilds {
			c.unavailableGuild(guild.ID)
		}
	}
}

func (c *Cache) updateUserUpdate(ev *discord.UserUpdate) {
	if c.Wants(ResourceUserCurrent) {
		c.cacheCurrentUser(ev.User)
	}
}
