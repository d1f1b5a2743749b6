package cache

import (
	"guildcache/pkg/cache/internal/store"
	"guildcache/pkg/discord"
)

// replaceGuildItems drops indexed ids of guildID that are absent from keep,
// removing them from items while the guild's set is locked.
func replaceGuildItems[V any](
	index *store.Index[discord.ID, discord.ID],
	items *store.Map[discord.ID, V],
	guildID discord.ID,
	keep map[discord.ID]struct{},
) {
	index.Update(guildID, func(set map[discord.ID]struct{}) {
		for id := range set {
			if _, ok := keep[id]; ok {
				continue
			}
			delete(set, id)
			items.Remove(id)
		}
	})
}

func (c *Cache) cacheEmoji(guildID discord.ID, emoji discord.Emoji) {
	if emoji.User != nil {
		c.cacheUser(*emoji.User, nil)
	}
	store.UpsertOwnedItem(c.guildEmojis, c.emojis, guildID, emoji.ID, emoji.ID, ownerOf[Emoji],
		func(old GuildResource[Emoji], exists bool) GuildResource[Emoji] {
			if exists && old.GuildID == guildID && old.Value.EqualEmoji(emoji) {
				return old
			}
			return GuildResource[Emoji]{GuildID: guildID, Value: c.reps.Emoji(emoji)}
		})
}

// cacheEmojis replaces the guild's emoji set with emojis.
func (c *Cache) cacheEmojis(guildID discord.ID, emojis []discord.Emoji) {
	keep := make(map[discord.ID]struct{}, len(emojis))
	for _, emoji := range emojis {
		keep[emoji.ID] = struct{}{}
	}
	replaceGuildItems(c.guildEmojis, c.emojis, guildID, keep)

	for _, emoji := range emojis {
		c.cacheEmoji(guildID, emoji)
	}
}

func (c *Cache) cacheSticker(guildID discord.ID, sticker discord.Sticker) {
	if sticker.User != nil {
		c.cacheUser(*sticker.User, nil)
	}
	store.UpsertOwnedItem(c.guildStickers, c.stickers, guildID, sticker.ID, sticker.ID, ownerOf[Sticker],
		func(old GuildResource[Sticker], exists bool) GuildResource[Sticker] {
			if exists && old.GuildID == guildID && old.Value.EqualSticker(sticker) {
				return old
			}
			return GuildResource[Sticker]{GuildID: guildID, Value: c.reps.Sticker(sticker)}
		})
}

// cacheStickers replaces the guild's sticker set with stickers.
func (c *Cache) cacheStickers(guildID discord.ID, stickers []discord.Sticker) {
	keep := make(map[discord.ID]struct{}, len(stickers))
	for _, sticker := range stickers {
		keep[sticker.ID] = struct{}{}
	}
	replaceGuildItems(c.guildStickers, c.stickers, guildID, keep)

	for _, sticker := range stickers {
		c.cacheSticker(guildID, sticker)
	}
}

func (c *Cache) updateGuildEmojisUpdate(ev *discord.GuildEmojisUpdate) {
	if c.Wants(ResourceEmoji) {
		c.cacheEmojis(ev.GuildID, ev.Emojis)
	}
}

func (c *Cache) updateGuildStickersUpdate(ev *discord.GuildStickersUpdate) {
	if c.Wants(ResourceSticker) {
		c.cacheStickers(ev.GuildID, ev.Stickers)
	}
}
