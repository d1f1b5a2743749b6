package cache

import (
	"time"

	"guildcache/pkg/discord"
)

// CachedChannel is the default channel and thread representation.
type CachedChannel struct {
	channel discord.Channel
}

// NewCachedChannel builds the default channel representation.
func NewCachedChannel(channel discord.Channel) Channel {
	return &CachedChannel{channel: cloneChannel(channel)}
}

// ID returns the channel id.
func (c *CachedChannel) ID() discord.ID { return c.channel.ID }

// Kind returns the channel type.
func (c *CachedChannel) Kind() discord.ChannelType { return c.channel.Kind }

// GuildID returns the owning guild, if any.
func (c *CachedChannel) GuildID() (discord.ID, bool) {
	return optionalID(c.channel.GuildID)
}

// ParentID returns the parent category or thread parent, if any.
func (c *CachedChannel) ParentID() (discord.ID, bool) {
	return optionalID(c.channel.ParentID)
}

// Name returns the channel name, empty for direct messages.
func (c *CachedChannel) Name() string {
	if c.channel.Name == nil {
		return ""
	}

	return *c.channel.Name
}

// LastPinTimestamp returns when a message was last pinned.
func (c *CachedChannel) LastPinTimestamp() *time.Time {
	return c.channel.LastPinTimestamp
}

// Channel returns a copy of the stored snapshot.
func (c *CachedChannel) Channel() discord.Channel {
	return cloneChannel(c.channel)
}

// SetLastPinTimestamp records when a message was last pinned.
func (c *CachedChannel) SetLastPinTimestamp(timestamp *time.Time) {
	c.channel.LastPinTimestamp = timestamp
}

// Clone returns a copy safe to mutate.
func (c *CachedChannel) Clone() Channel {
	return &CachedChannel{channel: cloneChannel(c.channel)}
}

func cloneChannel(channel discord.Channel) discord.Channel {
	channel.PermissionOverwrites = append([]discord.PermissionOverwrite(nil), channel.PermissionOverwrites...)
	channel.Recipients = append([]discord.User(nil), channel.Recipients...)
	if channel.ThreadMetadata != nil {
		metadata := *channel.ThreadMetadata
		channel.ThreadMetadata = &metadata
	}

	return channel
}

func optionalID(id *discord.ID) (discord.ID, bool) {
	if id == nil {
		return 0, false
	}

	return *id, true
}
