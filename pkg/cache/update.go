package cache

import "guildcache/pkg/discord"

// Update applies one event to the cache. Events of disabled kinds, events for
// entities that are not cached and unknown events are ignored.
func (c *Cache) Update(event discord.Event) {
	switch ev := event.(type) {
	case *discord.Ready:
		apply(ev, c.updateReady)
	case *discord.UserUpdate:
		apply(ev, c.updateUserUpdate)
	case *discord.GuildCreate:
		apply(ev, c.updateGuildCreate)
	case *discord.GuildUpdate:
		apply(ev, c.updateGuildUpdate)
	case *discord.GuildDelete:
		apply(ev, c.updateGuildDelete)
	case *discord.UnavailableGuild:
		apply(ev, c.updateUnavailableGuild)
	case *discord.ChannelCreate:
		apply(ev, c.updateChannelCreate)
	case *discord.ChannelUpdate:
		apply(ev, c.updateChannelUpdate)
	case *discord.ChannelDelete:
		apply(ev, c.updateChannelDelete)
	case *discord.ChannelPinsUpdate:
		apply(ev, c.updateChannelPinsUpdate)
	case *discord.ThreadCreate:
		apply(ev, c.updateThreadCreate)
	case *discord.ThreadUpdate:
		apply(ev, c.updateThreadUpdate)
	case *discord.ThreadDelete:
		apply(ev, c.updateThreadDelete)
	case *discord.ThreadListSync:
		apply(ev, c.updateThreadListSync)
	case *discord.MemberAdd:
		apply(ev, c.updateMemberAdd)
	case *discord.MemberUpdate:
		apply(ev, c.updateMemberUpdate)
	case *discord.MemberRemove:
		apply(ev, c.updateMemberRemove)
	case *discord.MemberChunk:
		apply(ev, c.updateMemberChunk)
	case *discord.RoleCreate:
		apply(ev, c.updateRoleCreate)
	case *discord.RoleUpdate:
		apply(ev, c.updateRoleUpdate)
	case *discord.RoleDelete:
		apply(ev, c.updateRoleDelete)
	case *discord.GuildEmojisUpdate:
		apply(ev, c.updateGuildEmojisUpdate)
	case *discord.GuildStickersUpdate:
		apply(ev, c.updateGuildStickersUpdate)
	case *discord.IntegrationCreate:
		apply(ev, c.updateIntegrationCreate)
	case *discord.IntegrationUpdate:
		apply(ev, c.updateIntegrationUpdate)
	case *discord.IntegrationDelete:
		apply(ev, c.updateIntegrationDelete)
	case *discord.PresenceUpdate:
		apply(ev, c.updatePresenceUpdate)
	case *discord.VoiceStateUpdate:
		apply(ev, c.updateVoiceStateUpdate)
	case *discord.MessageCreate:
		apply(ev, c.updateMessageCreate)
	case *discord.MessageUpdate:
		apply(ev, c.updateMessageUpdate)
	case *discord.MessageDelete:
		apply(ev, c.updateMessageDelete)
	case *discord.MessageDeleteBulk:
		apply(ev, c.updateMessageDeleteBulk)
	case *discord.ReactionAdd:
		apply(ev, c.updateReactionAdd)
	case *discord.ReactionRemove:
		apply(ev, c.updateReactionRemove)
	case *discord.ReactionRemoveAll:
		apply(ev, c.updateReactionRemoveAll)
	case *discord.ReactionRemoveEmoji:
		apply(ev, c.updateReactionRemoveEmoji)
	case *discord.StageInstanceCreate:
		apply(ev, c.updateStageInstanceCreate)
	case *discord.StageInstanceUpdate:
		apply(ev, c.updateStageInstanceUpdate)
	case *discord.StageInstanceDelete:
		apply(ev, c.updateStageInstanceDelete)
	case *discord.InteractionCreate:
		apply(ev, c.updateInteractionCreate)
	case nil:
	default:
		c.logger.Debug("cache ignored event", "kind", event.Kind())
	}
}

func apply[E any](ev *E, handler func(*E)) {
	if ev != nil {
		handler(ev)
	}
}
