package cache

import (
	"guildcache/pkg/cache/internal/store"
	"guildcache/pkg/discord"
)

// cachePresence replaces a user's presence in guildID. Presences nested in a
// guild create omit their guild id, so the enclosing guild wins.
func (c *Cache) cachePresence(guildID discord.ID, presence discord.Presence) {
	presence.GuildID = guildID
	userID := presence.UserID()
	key := guildKey{guildID: guildID, id: userID}

	store.UpsertGuildItem(c.guildPresences, c.presences, guildID, userID, key, func(Presence, bool) Presence {
		return c.reps.Presence(presence)
	})
}

func (c *Cache) updatePresenceUpdate(ev *discord.PresenceUpdate) {
	if !c.Wants(ResourcePresence) || !ev.Presence.GuildID.IsValid() {
		return
	}

	c.cachePresence(ev.Presence.GuildID, ev.Presence)
}
