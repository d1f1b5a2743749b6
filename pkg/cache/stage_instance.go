package cache

import (
	"guildcache/pkg/cache/internal/store"
	"guildcache/pkg/discord"
)

func (c *Cache) cacheStageInstance(guildID discord.ID, stage discord.StageInstance) {
	store.UpsertOwnedItem(c.guildStageInstances, c.stageInstances, guildID, stage.ID, stage.ID, ownerOf[StageInstance],
		func(old GuildResource[StageInstance], exists bool) GuildResource[StageInstance] {
			if exists && old.GuildID == guildID && old.Value.EqualStageInstance(stage) {
				return old
			}
			return GuildResource[StageInstance]{GuildID: guildID, Value: c.reps.StageInstance(stage)}
		})
}

func (c *Cache) updateStageInstanceCreate(ev *discord.StageInstanceCreate) {
	if c.Wants(ResourceStageInstance) {
		c.cacheStageInstance(ev.StageInstance.GuildID, ev.StageInstance)
	}
}

func (c *Cache) updateStageInstanceUpdate(ev *discord.StageInstanceUpdate) {
	if c.Wants(ResourceStageInstance) {
		c.cacheStageInstance(ev.StageInstance.GuildID, ev.StageInstance)
	}
}

func (c *Cache) updateStageInstanceDelete(ev *discord.StageInstanceDelete) {
	if !c.Wants(ResourceStageInstance) {
		return
	}

	stage := ev.StageInstance
	guildID := stage.GuildID
	if cached, ok := c.stageInstances.Get(stage.ID); ok {
		guildID = cached.GuildID
	}
	store.RemoveGuildItem(c.guildStageInstances, c.stageInstances, guildID, stage.ID, stage.ID)
}
