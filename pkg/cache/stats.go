package cache

import "guildcache/pkg/cache/internal/history"

// Stats counts cached entities per kind.
type Stats struct {
	Guilds            int `json:"guilds"`
	UnavailableGuilds int `json:"unavailable_guilds"`
	Channels          int `json:"channels"`
	Messages          int `json:"messages"`
	Members           int `json:"members"`
	Presences         int `json:"presences"`
	Roles             int `json:"roles"`
	Emojis            int `json:"emojis"`
	Stickers          int `json:"stickers"`
	Integrations      int `json:"integrations"`
	StageInstances    int `json:"stage_instances"`
	Users             int `json:"users"`
	VoiceStates       int `json:"voice_states"`
}

// Stats returns approximate entity counts; concurrent updates may skew them.
func (c *Cache) Stats() Stats {
	messages := 0
	for _, channelID := range c.channelMessages.Keys() {
		c.channelMessages.View(channelID, func(ring *history.Ring[Message]) {
			messages += ring.Len()
		})
	}

	return Stats{
		Guilds:            c.guilds.Len(),
		UnavailableGuilds: c.unavailableGuilds.Len(),
		Channels:          c.channels.Len(),
		Messages:          messages,
		Members:           c.members.Len(),
		Presences:         c.presences.Len(),
		Roles:             c.roles.Len(),
		Emojis:            c.emojis.Len(),
		Stickers:          c.stickers.Len(),
		Integrations:      c.integrations.Len(),
		StageInstances:    c.stageInstances.Len(),
		Users:             c.users.Len(),
		VoiceStates:       c.voiceStates.Len(),
	}
}
