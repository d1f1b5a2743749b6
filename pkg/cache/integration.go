package cache

import (
	"guildcache/pkg/cache/internal/store"
	"guildcache/pkg/discord"
)

func (c *Cache) cacheIntegration(guildID discord.ID, integration discord.GuildIntegration) {
	if integration.User != nil {
		c.cacheUser(*integration.User, nil)
	}
	key := guildKey{guildID: guildID, id: integration.ID}
	store.UpsertGuildItem(c.guildIntegrations, c.integrations, guildID, integration.ID, key,
		func(old GuildResource[Integration], exists bool) GuildResource[Integration] {
			if exists && old.Value.EqualIntegration(integration) {
				return old
			}
			return GuildResource[Integration]{GuildID: guildID, Value: c.reps.Integration(integration)}
		})
}

func (c *Cache) upsertIntegration(integration discord.GuildIntegration) {
	if !c.Wants(ResourceIntegration) || integration.GuildID == nil {
		return
	}

	c.cacheIntegration(*integration.GuildID, integration)
}

func (c *Cache) updateIntegrationCreate(ev *discord.IntegrationCreate) {
	c.upsertIntegration(ev.Integration)
}

func (c *Cache) updateIntegrationUpdate(ev *discord.IntegrationUpdate) {
	c.upsertIntegration(ev.Integration)
}

func (c *Cache) updateIntegrationDelete(ev *discord.IntegrationDelete) {
	if !c.Wants(ResourceIntegration) {
		return
	}

	key := guildKey{guildID: ev.GuildID, id: ev.ID}
	store.RemoveGuildItem(c.guildIntegrations, c.integrations, ev.GuildID, ev.ID, key)
}
