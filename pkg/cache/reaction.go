package cache

import (
	"slices"

	"guildcache/pkg/discord"
)

func indexReaction(reactions []Reaction, emoji discord.ReactionType) int {
	return slices.IndexFunc(reactions, func(reaction Reaction) bool {
		return reaction.Emoji.Same(emoji)
	})
}

func (c *Cache) isCurrentUser(userID discord.ID) bool {
	currentID, ok := c.currentUserID()
	return ok && currentID == userID
}

func (c *Cache) updateReactionAdd(ev *discord.ReactionAdd) {
	payload := ev.Reaction
	if payload.Member != nil && payload.GuildID != nil {
		c.cacheMember(*payload.GuildID, *payload.Member)
	}
	if !c.Wants(ResourceReaction) {
		return
	}

	me := c.isCurrentUser(payload.UserID)
	c.mutateMessage(payload.ChannelID, payload.MessageID, func(message Message) {
		reactions := message.Reactions()
		idx := indexReaction(reactions, payload.Emoji)
		if idx < 0 {
			message.AddReaction(Reaction{
				Emoji:   payload.Emoji,
				Count:   1,
				Me:      me,
				UserIDs: []discord.ID{payload.UserID},
			})
			return
		}

		reaction := reactions[idx]
		if slices.Contains(reaction.UserIDs, payload.UserID) {
			return
		}
		reaction.UserIDs = append(reaction.UserIDs, payload.UserID)
		// The message payload already counted the current user's reaction.
		if !(me && reaction.Me) {
			reaction.Count++
		}
		reaction.Me = reaction.Me || me
		message.SetReaction(idx, reaction)
	})
}

func (c *Cache) updateReactionRemove(ev *discord.ReactionRemove) {
	if !c.Wants(ResourceReaction) {
		return
	}

	payload := ev.Reaction
	me := c.isCurrentUser(payload.UserID)
	c.mutateMessage(payload.ChannelID, payload.MessageID, func(message Message) {
		reactions := message.Reactions()
		idx := indexReaction(reactions, payload.Emoji)
		if idx < 0 {
			return
		}

		reaction := reactions[idx]
		pos := slices.Index(reaction.UserIDs, payload.UserID)
		// An unknown reactor only counts when the message payload reported
		// reactors this cache never saw.
		if pos < 0 && reaction.Count <= len(reaction.UserIDs) {
			return
		}
		if pos >= 0 {
			reaction.UserIDs = slices.Delete(reaction.UserIDs, pos, pos+1)
		}
		reaction.Count--
		if me {
			reaction.Me = false
		}
		if reaction.Count <= 0 {
			message.RemoveReaction(idx)
			return
		}
		message.SetReaction(idx, reaction)
	})
}

func (c *Cache) updateReactionRemoveAll(ev *discord.ReactionRemoveAll) {
	if !c.Wants(ResourceReaction) {
		return
	}

	c.mutateMessage(ev.ChannelID, ev.MessageID, func(message Message) {
		message.ClearReactions()
	})
}

func (c *Cache) updateReactionRemoveEmoji(ev *discord.ReactionRemoveEmoji) {
	if !c.Wants(ResourceReaction) {
		return
	}

	c.mutateMessage(ev.ChannelID, ev.MessageID, func(message Message) {
		message.RetainReactions(func(reaction Reaction) bool {
			return !reaction.Emoji.Same(ev.Emoji)
		})
	})
}
