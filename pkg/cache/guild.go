package cache

import "guildcache/pkg/discord"

// cacheGuild applies a full guild snapshot. Children cached from an earlier
// snapshot of the same guild are dropped first.
func (c *Cache) cacheGuild(guild discord.Guild) {
	guildID := guild.ID

	c.removeGuildChildren(guildID)
	c.ensureGuildIndexes(guildID)

	if c.Wants(ResourceChannel) {
		c.cacheGuildChannels(guildID, guild.Channels)
		c.cacheGuildChannels(guildID, guild.Threads)
	}
	for _, member := range guild.Members {
		c.cacheMember(guildID, member)
	}
	if c.Wants(ResourceRole) {
		c.cacheRoles(guildID, guild.Roles)
	}
	if c.Wants(ResourceEmoji) {
		c.cacheEmojis(guildID, guild.Emojis)
	}
	if c.Wants(ResourceSticker) {
		c.cacheStickers(guildID, guild.Stickers)
	}
	if c.Wants(ResourcePresence) {
		for _, presence := range guild.Presences {
			c.cachePresence(guildID, presence)
		}
	}
	if c.Wants(ResourceVoiceState) {
		for _, state := range guild.VoiceStates {
			c.cacheVoiceState(guildID, state)
		}
	}
	if c.Wants(ResourceStageInstance) {
		for _, stage := range guild.StageInstances {
			c.cacheStageInstance(guildID, stage)
		}
	}

	if c.Wants(ResourceGuild) {
		c.unavailableGuilds.Remove(guildID)
		c.guilds.Set(guildID, c.reps.Guild(guild))
	}
}

// ensureGuildIndexes creates the guild's index of every enabled kind, so a
// cached guild reports an empty child list rather than none at all.
func (c *Cache) ensureGuildIndexes(guildID discord.ID) {
	if c.Wants(ResourceChannel) {
		c.guildChannels.Ensure(guildID)
	}
	if c.Wants(ResourceEmoji) {
		c.guildEmojis.Ensure(guildID)
	}
	if c.Wants(ResourceIntegration) {
		c.guildIntegrations.Ensure(guildID)
	}
	if c.Wants(ResourceMember) || c.Wants(ResourceMemberCurrent) {
		c.guildMembers.Ensure(guildID)
	}
	if c.Wants(ResourcePresence) {
		c.guildPresences.Ensure(guildID)
	}
	if c.Wants(ResourceRole) {
		c.guildRoles.Ensure(guildID)
	}
	if c.Wants(ResourceStageInstance) {
		c.guildStageInstances.Ensure(guildID)
	}
	if c.Wants(ResourceSticker) {
		c.guildStickers.Ensure(guildID)
	}
	if c.Wants(ResourceVoiceState) {
		c.guildVoiceStates.Ensure(guildID)
	}
}

// deleteGuild removes a guild's children. An unavailable guild keeps its
// record, flagged unavailable; otherwise the record is removed too.
func (c *Cache) deleteGuild(guildID discord.ID, unavailable bool) {
	if unavailable {
		c.guilds.Mutate(guildID, func(guild Guild) Guild {
			guild = guild.Clone()
			guild.SetUnavailable(true)
			return guild
		})
	} else {
		c.guilds.Remove(guildID)
		c.unavailableGuilds.Remove(guildID)
	}

	c.removeGuildChildren(guildID)
}

func (c *Cache) unavailableGuild(guildID discord.ID) {
	c.unavailableGuilds.Set(guildID, struct{}{})
	c.deleteGuild(guildID, true)
}

// removeGuildChildren unlinks every guild index and removes the entities it
// pointed at. Users lose this guild's reference.
func (c *Cache) removeGuildChildren(guildID discord.ID) {
	c.guildChannels.Drain(guildID, func(id discord.ID) {
		c.channels.Remove(id)
		c.channelMessages.Remove(id)
	})
	c.guildEmojis.Drain(guildID, func(id discord.ID) {
		c.emojis.Remove(id)
	})
	c.guildIntegrations.Drain(guildID, func(id discord.ID) {
		c.integrations.Remove(guildKey{guildID: guildID, id: id})
	})
	c.guildMembers.Drain(guildID, func(userID discord.ID) {
		if _, removed := c.members.Remove(guildKey{guildID: guildID, id: userID}); removed {
			c.releaseUser(userID, guildID)
		}
	})
	c.guildPresences.Drain(guildID, func(userID discord.ID) {
		c.presences.Remove(guildKey{guildID: guildID, id: userID})
	})
	c.guildRoles.Drain(guildID, func(id discord.ID) {
		c.roles.Remove(id)
	})
	c.guildStageInstances.Drain(guildID, func(id discord.ID) {
		c.stageInstances.Remove(id)
	})
	c.guildStickers.Drain(guildID, func(id discord.ID) {
		c.stickers.Remove(id)
	})
	c.guildVoiceStates.Drain(guildID, func(userID discord.ID) {
		key := guildKey{guildID: guildID, id: userID}
		if state, removed := c.voiceStates.Remove(key); removed {
			c.voiceChannelStates.Release(state.ChannelID(), key, nil)
		}
	})
}

func (c *Cache) updateGuildCreate(ev *discord.GuildCreate) {
	c.cacheGuild(ev.Guild)
}

func (c *Cache) updateGuildUpdate(ev *discord.GuildUpdate) {
	if !c.Wants(ResourceGuild) {
		return
	}

	c.guilds.Mutate(ev.Guild.ID, func(guild Guild) Guild {
		guild = guild.Clone()
		guild.UpdateWithGuildUpdate(ev)
		return guild
	})
}

func (c *Cache) updateGuildDelete(ev *discord.GuildDelete) {
	if ev.Unavailable {
		if c.Wants(ResourceGuild) {
			c.unavailableGuild(ev.ID)
			return
		}
		c.deleteGuild(ev.ID, true)
		return
	}

	c.deleteGuild(ev.ID, false)
}

func (c *Cache) updateUnavailableGuild(ev *discord.UnavailableGuild) {
	if !c.Wants(ResourceGuild) {
		return
	}

	c.unavailableGuild(ev.ID)
}
