package discord

// PartitionKey returns the id whose events must be applied in receipt order:
// the guild id for guild events, otherwise the channel id. It reports false
// for session-wide events such as Ready and UserUpdate.
func PartitionKey(event Event) (ID, bool) {
	switch ev := event.(type) {
	case *GuildCreate:
		return ev.Guild.ID, true
	case *GuildUpdate:
		return ev.Guild.ID, true
	case *GuildDelete:
		return ev.ID, true
	case *UnavailableGuild:
		return ev.ID, true
	case *ChannelCreate:
		return channelKey(ev.Channel)
	case *ChannelUpdate:
		return channelKey(ev.Channel)
	case *ChannelDelete:
		return channelKey(ev.Channel)
	case *ChannelPinsUpdate:
		return optionalKey(ev.GuildID, ev.ChannelID)
	case *ThreadCreate:
		return channelKey(ev.Channel)
	case *ThreadUpdate:
		return channelKey(ev.Channel)
	case *ThreadDelete:
		return ev.GuildID, true
	case *ThreadListSync:
		return ev.GuildID, true
	case *MemberAdd:
		return ev.GuildID, true
	case *MemberUpdate:
		return ev.GuildID, true
	case *MemberRemove:
		return ev.GuildID, true
	case *MemberChunk:
		return ev.GuildID, true
	case *RoleCreate:
		return ev.GuildID, true
	case *RoleUpdate:
		return ev.GuildID, true
	case *RoleDelete:
		return ev.GuildID, true
	case *GuildEmojisUpdate:
		return ev.GuildID, true
	case *GuildStickersUpdate:
		return ev.GuildID, true
	case *IntegrationCreate:
		return optionalKey(ev.Integration.GuildID, 0)
	case *IntegrationUpdate:
		return optionalKey(ev.Integration.GuildID, 0)
	case *IntegrationDelete:
		return ev.GuildID, true
	case *PresenceUpdate:
		return ev.Presence.GuildID, true
	case *VoiceStateUpdate:
		return optionalKey(ev.VoiceState.GuildID, 0)
	case *MessageCreate:
		return optionalKey(ev.Message.GuildID, ev.Message.ChannelID)
	case *MessageUpdate:
		return optionalKey(ev.GuildID, ev.ChannelID)
	case *MessageDelete:
		return optionalKey(ev.GuildID, ev.ChannelID)
	case *MessageDeleteBulk:
		return optionalKey(ev.GuildID, ev.ChannelID)
	case *ReactionAdd:
		return optionalKey(ev.Reaction.GuildID, ev.Reaction.ChannelID)
	case *ReactionRemove:
		return optionalKey(ev.Reaction.GuildID, ev.Reaction.ChannelID)
	case *ReactionRemoveAll:
		return optionalKey(ev.GuildID, ev.ChannelID)
	case *ReactionRemoveEmoji:
		return ev.GuildID, true
	case *StageInstanceCreate:
		return ev.StageInstance.GuildID, true
	case *StageInstanceUpdate:
		return ev.StageInstance.GuildID, true
	case *StageInstanceDelete:
		return ev.StageInstance.GuildID, true
	case *InteractionCreate:
		var channelID ID
		if ev.Interaction.ChannelID != nil {
			channelID = *ev.Interaction.ChannelID
		}
		return optionalKey(ev.Interaction.GuildID, channelID)
	default:
		return 0, false
	}
}

func channelKey(channel Channel) (ID, bool) {
	return optionalKey(channel.GuildID, channel.ID)
}

func optionalKey(guildID *ID, fallback ID) (ID, bool) {
	if guildID != nil && guildID.IsValid() {
		return *guildID, true
	}

	return fallback, fallback.IsValid()
}
