package discord

import (
	"fmt"

	"github.com/bwmarrin/discordgo"
)

// Fields reports whether the raw dispatch payload carried a key. discordgo
// decodes an absent field and its zero value alike; conversions that must
// tell them apart consult Fields.
type Fields func(path string) bool

// Has reports whether path was present. A nil Fields reports nothing.
func (f Fields) Has(path string) bool {
	return f != nil && f(path)
}

// ReactionRemoveEmojiPayload is the MESSAGE_REACTION_REMOVE_EMOJI body, for
// which discordgo declares no event type.
type ReactionRemoveEmojiPayload struct {
	discordgo.MessageReaction
}

// FromGateway converts a decoded discordgo dispatch payload into a cache
// event, parsing every snowflake into an ID.
func FromGateway(payload any, fields Fields) (Event, error) {
	c := &converter{}
	event := c.event(payload, fields)
	if c.err != nil {
		return nil, fmt.Errorf("convert %T: %w", payload, c.err)
	}
	if event == nil {
		return nil, fmt.Errorf("convert %T: %w", payload, ErrUnknownEvent)
	}

	return event, nil
}

func (c *converter) event(payload any, fields Fields) Event {
	switch ev := payload.(type) {
	case *discordgo.Ready:
		ready := &Ready{User: c.currentUser(ev.User), SessionID: ev.SessionID}
		for _, guild := range ev.Guilds {
			if guild == nil {
				continue
			}
			ready.Guilds = append(ready.Guilds, UnavailableGuildRef{ID: c.id(guild.ID), Unavailable: guild.Unavailable})
		}
		return ready
	case *discordgo.UserUpdate:
		return &UserUpdate{User: c.currentUser(ev.User)}

	case *discordgo.GuildCreate:
		if !c.need(ev.Guild != nil, "guild") {
			return nil
		}
		if ev.Unavailable {
			return &UnavailableGuild{ID: c.id(ev.ID)}
		}
		return &GuildCreate{Guild: c.guild(ev.Guild, fields)}
	case *discordgo.GuildUpdate:
		if !c.need(ev.Guild != nil, "guild") {
			return nil
		}
		return &GuildUpdate{Guild: c.partialGuild(ev.Guild, fields)}
	case *discordgo.GuildDelete:
		if !c.need(ev.Guild != nil, "guild") {
			return nil
		}
		return &GuildDelete{ID: c.id(ev.ID), Unavailable: ev.Unavailable}

	case *discordgo.ChannelCreate:
		return &ChannelCreate{Channel: c.channel(ev.Channel)}
	case *discordgo.ChannelUpdate:
		return &ChannelUpdate{Channel: c.channel(ev.Channel)}
	case *discordgo.ChannelDelete:
		return &ChannelDelete{Channel: c.channel(ev.Channel)}
	case *discordgo.ChannelPinsUpdate:
		return &ChannelPinsUpdate{
			ChannelID:        c.id(ev.ChannelID),
			GuildID:          c.optionalID(ev.GuildID),
			LastPinTimestamp: c.timestamp(ev.LastPinTimestamp),
		}

	case *discordgo.ThreadCreate:
		return &ThreadCreate{Channel: c.channel(ev.Channel)}
	case *discordgo.ThreadUpdate:
		return &ThreadUpdate{Channel: c.channel(ev.Channel)}
	case *discordgo.ThreadDelete:
		if !c.need(ev.Channel != nil, "thread") {
			return nil
		}
		deleted := &ThreadDelete{ID: c.id(ev.ID), GuildID: c.id(ev.GuildID), Type: ChannelType(ev.Type)}
		if parentID := c.optionalID(ev.ParentID); parentID != nil {
			deleted.ParentID = *parentID
		}
		return deleted
	case *discordgo.ThreadListSync:
		return &ThreadListSync{
			GuildID:    c.id(ev.GuildID),
			ChannelIDs: c.ids(ev.ChannelIDs),
			Threads:    c.channels(ev.Threads),
		}

	case *discordgo.GuildMemberAdd:
		if !c.need(ev.Member != nil, "member") {
			return nil
		}
		return &MemberAdd{GuildID: c.id(ev.GuildID), Member: c.member(ev.Member)}
	case *discordgo.GuildMemberUpdate:
		if !c.need(ev.Member != nil, "member") {
			return nil
		}
		return c.memberUpdate(ev.Member, fields)
	case *discordgo.GuildMemberRemove:
		if !c.need(ev.Member != nil, "member") {
			return nil
		}
		return &MemberRemove{GuildID: c.id(ev.GuildID), User: c.user(ev.User)}
	case *discordgo.GuildMembersChunk:
		return &MemberChunk{
			GuildID:    c.id(ev.GuildID),
			Members:    c.members(ev.Members),
			Presences:  c.presences(ev.Presences),
			ChunkIndex: ev.ChunkIndex,
			ChunkCount: ev.ChunkCount,
			NotFound:   c.ids(ev.NotFound),
			Nonce:      optionalString(ev.Nonce),
		}

	case *discordgo.GuildRoleCreate:
		if !c.need(ev.GuildRole != nil, "role") {
			return nil
		}
		return &RoleCreate{GuildID: c.id(ev.GuildID), Role: c.role(ev.Role)}
	case *discordgo.GuildRoleUpdate:
		if !c.need(ev.GuildRole != nil, "role") {
			return nil
		}
		return &RoleUpdate{GuildID: c.id(ev.GuildID), Role: c.role(ev.Role)}
	case *discordgo.GuildRoleDelete:
		return &RoleDelete{GuildID: c.id(ev.GuildID), RoleID: c.id(ev.RoleID)}
	case *discordgo.GuildEmojisUpdate:
		return &GuildEmojisUpdate{GuildID: c.id(ev.GuildID), Emojis: c.emojis(ev.Emojis)}
	case *discordgo.GuildStickersUpdate:
		return &GuildStickersUpdate{GuildID: c.id(ev.GuildID), Stickers: c.stickers(ev.Stickers)}

	case *discordgo.IntegrationCreate:
		return &IntegrationCreate{Integration: c.integration(ev.GuildID, ev.Integration)}
	case *discordgo.IntegrationUpdate:
		return &IntegrationUpdate{Integration: c.integration(ev.GuildID, ev.Integration)}
	case *discordgo.IntegrationDelete:
		return &IntegrationDelete{
			ID:            c.id(ev.ID),
			GuildID:       c.id(ev.GuildID),
			ApplicationID: c.optionalID(ev.ApplicationID),
		}

	case *discordgo.PresenceUpdate:
		return &PresenceUpdate{Presence: c.presence(ev.GuildID, &ev.Presence)}
	case *discordgo.VoiceStateUpdate:
		return &VoiceStateUpdate{VoiceState: c.voiceState(ev.VoiceState)}

	case *discordgo.MessageCreate:
		return &MessageCreate{Message: c.message(ev.Message)}
	case *discordgo.MessageUpdate:
		if !c.need(ev.Message != nil, "message") {
			return nil
		}
		update := c.messageUpdate(ev.Message, fields)
		return &update
	case *discordgo.MessageDelete:
		if !c.need(ev.Message != nil, "message") {
			return nil
		}
		return &MessageDelete{ID: c.id(ev.ID), ChannelID: c.id(ev.ChannelID), GuildID: c.optionalID(ev.GuildID)}
	case *discordgo.MessageDeleteBulk:
		return &MessageDeleteBulk{
			IDs:       c.ids(ev.Messages),
			ChannelID: c.id(ev.ChannelID),
			GuildID:   c.optionalID(ev.GuildID),
		}

	case *discordgo.MessageReactionAdd:
		return &ReactionAdd{Reaction: c.gatewayReaction(ev.MessageReaction, ev.Member)}
	case *discordgo.MessageReactionRemove:
		return &ReactionRemove{Reaction: c.gatewayReaction(ev.MessageReaction, nil)}
	case *discordgo.MessageReactionRemoveAll:
		if !c.need(ev.MessageReaction != nil, "reaction") {
			return nil
		}
		return &ReactionRemoveAll{
			ChannelID: c.id(ev.ChannelID),
			MessageID: c.id(ev.MessageID),
			GuildID:   c.optionalID(ev.GuildID),
		}
	case *ReactionRemoveEmojiPayload:
		return &ReactionRemoveEmoji{
			ChannelID: c.id(ev.ChannelID),
			MessageID: c.id(ev.MessageID),
			GuildID:   c.id(ev.GuildID),
			Emoji:     c.reactionType(ev.Emoji),
		}

	case *discordgo.StageInstanceEventCreate:
		return &StageInstanceCreate{StageInstance: c.stageInstance(ev.StageInstance)}
	case *discordgo.StageInstanceEventUpdate:
		return &StageInstanceUpdate{StageInstance: c.stageInstance(ev.StageInstance)}
	case *discordgo.StageInstanceEventDelete:
		return &StageInstanceDelete{StageInstance: c.stageInstance(ev.StageInstance)}

	case *discordgo.InteractionCreate:
		return &InteractionCreate{Interaction: c.interaction(ev.Interaction)}
	}

	return nil
}

// memberUpdate keeps the voice flags and member flags nil unless the raw
// payload carried them.
func (c *converter) memberUpdate(member *discordgo.Member, fields Fields) *MemberUpdate {
	update := &MemberUpdate{
		GuildID:                    c.id(member.GuildID),
		User:                       c.user(member.User),
		Nick:                       optionalString(member.Nick),
		Avatar:                     optionalString(member.Avatar),
		Roles:                      c.ids(member.Roles),
		JoinedAt:                   optionalTime(member.JoinedAt),
		PremiumSince:               member.PremiumSince,
		CommunicationDisabledUntil: member.CommunicationDisabledUntil,
		Pending:                    member.Pending,
	}
	if fields.Has("deaf") {
		update.Deaf = &member.Deaf
	}
	if fields.Has("mute") {
		update.Mute = &member.Mute
	}
	if fields.Has("flags") {
		flags := uint64(member.Flags)
		update.Flags = &flags
	}

	return update
}
