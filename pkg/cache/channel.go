package cache

import (
	"guildcache/pkg/cache/internal/store"
	"guildcache/pkg/discord"
)

func channelOwner(channel Channel) discord.ID {
	guildID, _ := channel.GuildID()
	return guildID
}

func (c *Cache) cacheChannel(channel discord.Channel) {
	channelID := channel.ID
	upsert := func(Channel, bool) Channel {
		return c.reps.Channel(channel)
	}

	if channel.GuildID == nil {
		c.channels.Upsert(channelID, upsert)
		return
	}
	store.UpsertOwnedItem(c.guildChannels, c.channels, *channel.GuildID, channelID, channelID, channelOwner, upsert)
}

// cacheGuildChannels caches channels nested in a guild payload, which carry
// no guild id of their own.
func (c *Cache) cacheGuildChannels(guildID discord.ID, channels []discord.Channel) {
	for _, channel := range channels {
		channel.GuildID = &guildID
		c.cacheChannel(channel)
	}
}

// deleteChannel removes a channel, its message history and, for a non-thread
// channel, the cached threads under it. The guild recorded on the cached
// channel wins over guildID.
func (c *Cache) deleteChannel(channelID discord.ID, guildID *discord.ID) {
	var (
		owner   discord.ID
		inGuild bool
	)
	if cached, ok := c.channels.Get(channelID); ok {
		owner, inGuild = cached.GuildID()
	}
	if !inGuild && guildID != nil {
		owner, inGuild = *guildID, true
	}

	c.channelMessages.Remove(channelID)
	if !inGuild {
		c.channels.Remove(channelID)
		return
	}
	removed, ok := store.RemoveGuildItem(c.guildChannels, c.channels, owner, channelID, channelID)
	if !ok || removed.Kind().IsThread() {
		return
	}

	siblings, _ := c.guildChannels.Members(owner)
	for _, id := range siblings {
		child, found := c.channels.Get(id)
		if !found || !child.Kind().IsThread() {
			continue
		}
		if parentID, hasParent := child.ParentID(); hasParent && parentID == channelID {
			c.deleteChannel(id, &owner)
		}
	}
}

func (c *Cache) updateChannelCreate(ev *discord.ChannelCreate) {
	if c.Wants(ResourceChannel) {
		c.cacheChannel(ev.Channel)
	}
}

func (c *Cache) updateChannelUpdate(ev *discord.ChannelUpdate) {
	if c.Wants(ResourceChannel) {
		c.cacheChannel(ev.Channel)
	}
}

func (c *Cache) updateChannelDelete(ev *discord.ChannelDelete) {
	if c.Wants(ResourceChannel) {
		c.deleteChannel(ev.Channel.ID, ev.Channel.GuildID)
	}
}

func (c *Cache) updateChannelPinsUpdate(ev *discord.ChannelPinsUpdate) {
	if !c.Wants(ResourceChannel) {
		return
	}

	c.channels.Mutate(ev.ChannelID, func(channel Channel) Channel {
		channel = channel.Clone()
		channel.SetLastPinTimestamp(ev.LastPinTimestamp)
		return channel
	})
}

func (c *Cache) updateThreadCreate(ev *discord.ThreadCreate) {
	if c.Wants(ResourceChannel) {
		c.cacheChannel(ev.Channel)
	}
}

func (c *Cache) updateThreadUpdate(ev *discord.ThreadUpdate) {
	if c.Wants(ResourceChannel) {
		c.cacheChannel(ev.Channel)
	}
}

func (c *Cache) updateThreadDelete(ev *discord.ThreadDelete) {
	if c.Wants(ResourceChannel) {
		c.deleteChannel(ev.ID, &ev.GuildID)
	}
}

func (c *Cache) updateThreadListSync(ev *discord.ThreadListSync) {
	if c.Wants(ResourceChannel) {
		c.cacheGuildChannels(ev.GuildID, ev.Threads)
	}
}
