package cache

import (
	"guildcache/pkg/cache/internal/store"
	"guildcache/pkg/discord"
)

func (c *Cache) cacheRole(guildID discord.ID, role discord.Role) {
	store.UpsertOwnedItem(c.guildRoles, c.roles, guildID, role.ID, role.ID, ownerOf[Role],
		func(old GuildResource[Role], exists bool) GuildResource[Role] {
			if exists && old.GuildID == guildID && old.Value.EqualRole(role) {
				return old
			}
			return GuildResource[Role]{GuildID: guildID, Value: c.reps.Role(role)}
		})
}

func (c *Cache) cacheRoles(guildID discord.ID, roles []discord.Role) {
	for _, role := range roles {
		c.cacheRole(guildID, role)
	}
}

// deleteRole removes a role from the guild that owns it in the cache, which
// wins over the guild named by the event.
func (c *Cache) deleteRole(guildID, roleID discord.ID) {
	if role, ok := c.roles.Get(roleID); ok {
		guildID = role.GuildID
	}
	store.RemoveGuildItem(c.guildRoles, c.roles, guildID, roleID, roleID)
}

func (c *Cache) updateRoleCreate(ev *discord.RoleCreate) {
	if c.Wants(ResourceRole) {
		c.cacheRole(ev.GuildID, ev.Role)
	}
}

func (c *Cache) updateRoleUpdate(ev *discord.RoleUpdate) {
	if c.Wants(ResourceRole) {
		c.cacheRole(ev.GuildID, ev.Role)
	}
}

func (c *Cache) updateRoleDelete(ev *discord.RoleDelete) {
	if c.Wants(ResourceRole) {
		c.deleteRole(ev.GuildID, ev.RoleID)
	}
}
