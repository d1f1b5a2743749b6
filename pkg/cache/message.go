package cache

import (
	"guildcache/pkg/cache/internal/history"
	"guildcache/pkg/discord"
)

// mutateMessage applies fn to a clone of a cached message and stores the
// clone in place. It reports false when the message is not cached, which is
// the normal case once it has been evicted.
func (c *Cache) mutateMessage(channelID, messageID discord.ID, fn func(Message)) bool {
	var found bool
	c.channelMessages.Mutate(channelID, func(ring *history.Ring[Message]) *history.Ring[Message] {
		idx := ring.Index(matchMessage(messageID))
		if idx < 0 {
			return ring
		}
		message := ring.At(idx).Clone()
		fn(message)
		ring.Set(idx, message)
		found = true
		return ring
	})

	return found
}

func (c *Cache) updateMessageCreate(ev *discord.MessageCreate) {
	message := ev.Message

	var memberGuild *discord.ID
	if message.Member != nil && message.GuildID != nil && c.wantsMember(message.Author.ID) {
		memberGuild = message.GuildID
	}
	c.cacheUser(message.Author, memberGuild)
	if memberGuild != nil {
		c.cachePartialMember(*memberGuild, message.Author.ID, *message.Member)
	}

	if !c.Wants(ResourceMessage) {
		return
	}

	cached := c.reps.Message(message)
	size := c.cfg.messageCacheSize
	c.channelMessages.Upsert(message.ChannelID, func(ring *history.Ring[Message], exists bool) *history.Ring[Message] {
		if !exists || ring == nil {
			ring = history.New[Message](size)
		}
		if idx := ring.Index(matchMessage(message.ID)); idx >= 0 {
			ring.Set(idx, cached)
			return ring
		}
		ring.Push(cached)
		return ring
	})
}

func (c *Cache) updateMessageUpdate(ev *discord.MessageUpdate) {
	if !c.Wants(ResourceMessage) {
		return
	}

	if !c.mutateMessage(ev.ChannelID, ev.ID, func(message Message) {
		message.UpdateWithMessageUpdate(ev)
	}) {
		c.logger.Debug("message update for uncached message",
			"channel_id", ev.ChannelID,
			"message_id", ev.ID,
		)
	}
}

func (c *Cache) updateMessageDelete(ev *discord.MessageDelete) {
	if !c.Wants(ResourceMessage) {
		return
	}

	c.removeMessages(ev.ChannelID, []discord.ID{ev.ID})
}

func (c *Cache) updateMessageDeleteBulk(ev *discord.MessageDeleteBulk) {
	if !c.Wants(ResourceMessage) {
		return
	}

	c.removeMessages(ev.ChannelID, ev.IDs)
}

func (c *Cache) removeMessages(channelID discord.ID, messageIDs []discord.ID) {
	c.channelMessages.Mutate(channelID, func(ring *history.Ring[Message]) *history.Ring[Message] {
		for _, messageID := range messageIDs {
			if idx := ring.Index(matchMessage(messageID)); idx >= 0 {
				ring.Remove(idx)
			}
		}
		return ring
	})
}
