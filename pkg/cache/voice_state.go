package cache

import (
	"guildcache/pkg/cache/internal/store"
	"guildcache/pkg/discord"
)

// cacheVoiceState replaces a user's voice state. A state without a channel
// means the user left voice and removes it.
func (c *Cache) cacheVoiceState(guildID discord.ID, state discord.VoiceState) {
	userID := state.UserID
	key := guildKey{guildID: guildID, id: userID}

	if previous, ok := c.voiceStates.Get(key); ok {
		if state.ChannelID == nil || *state.ChannelID != previous.ChannelID() {
			c.voiceChannelStates.Release(previous.ChannelID(), key, nil)
		}
	}

	if state.ChannelID == nil {
		store.RemoveGuildItem(c.guildVoiceStates, c.voiceStates, guildID, userID, key)
		return
	}

	channelID := *state.ChannelID
	store.UpsertGuildItem(c.guildVoiceStates, c.voiceStates, guildID, userID, key, func(VoiceState, bool) VoiceState {
		return c.reps.VoiceState(channelID, guildID, state)
	})
	c.voiceChannelStates.Add(channelID, key)
}

func (c *Cache) updateVoiceStateUpdate(ev *discord.VoiceStateUpdate) {
	state := ev.VoiceState
	if state.GuildID == nil {
		return
	}
	guildID := *state.GuildID

	if c.Wants(ResourceVoiceState) {
		c.cacheVoiceState(guildID, state)
	}
	if state.Member != nil {
		c.cacheMember(guildID, *state.Member)
	}
}
