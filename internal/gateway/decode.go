package gateway

import (
	"encoding/json"
	"fmt"

	"github.com/bwmarrin/discordgo"
	"github.com/tidwall/gjson"

	"guildcache/pkg/discord"
)

// opDispatch is the gateway opcode of dispatch frames.
const opDispatch = 0

type payloadFactory func() any

func payload[T any]() payloadFactory {
	return func() any { return new(T) }
}

// payloads maps each handled dispatch name to the discordgo struct its body
// decodes into.
var payloads = map[discord.EventKind]payloadFactory{
	discord.EventReady:               payload[discordgo.Ready](),
	discord.EventUserUpdate:          payload[discordgo.UserUpdate](),
	discord.EventGuildCreate:         payload[discordgo.GuildCreate](),
	discord.EventGuildUpdate:         payload[discordgo.GuildUpdate](),
	discord.EventGuildDelete:         payload[discordgo.GuildDelete](),
	discord.EventChannelCreate:       payload[discordgo.ChannelCreate](),
	discord.EventChannelUpdate:       payload[discordgo.ChannelUpdate](),
	discord.EventChannelDelete:       payload[discordgo.ChannelDelete](),
	discord.EventChannelPinsUpdate:   payload[discordgo.ChannelPinsUpdate](),
	discord.EventThreadCreate:        payload[discordgo.ThreadCreate](),
	discord.EventThreadUpdate:        payload[discordgo.ThreadUpdate](),
	discord.EventThreadDelete:        payload[discordgo.ThreadDelete](),
	discord.EventThreadListSync:      payload[discordgo.ThreadListSync](),
	discord.EventMemberAdd:           payload[discordgo.GuildMemberAdd](),
	discord.EventMemberUpdate:        payload[discordgo.GuildMemberUpdate](),
	discord.EventMemberRemove:        payload[discordgo.GuildMemberRemove](),
	discord.EventMemberChunk:         payload[discordgo.GuildMembersChunk](),
	discord.EventRoleCreate:          payload[discordgo.GuildRoleCreate](),
	discord.EventRoleUpdate:          payload[discordgo.GuildRoleUpdate](),
	discord.EventRoleDelete:          payload[discordgo.GuildRoleDelete](),
	discord.EventEmojisUpdate:        payload[discordgo.GuildEmojisUpdate](),
	discord.EventStickersUpdate:      payload[discordgo.GuildStickersUpdate](),
	discord.EventIntegrationCreate:   payload[discordgo.IntegrationCreate](),
	discord.EventIntegrationUpdate:   payload[discordgo.IntegrationUpdate](),
	discord.EventIntegrationDelete:   payload[discordgo.IntegrationDelete](),
	discord.EventPresenceUpdate:      payload[discordgo.PresenceUpdate](),
	discord.EventVoiceStateUpdate:    payload[discordgo.VoiceStateUpdate](),
	discord.EventMessageCreate:       payload[discordgo.MessageCreate](),
	discord.EventMessageUpdate:       payload[discordgo.MessageUpdate](),
	discord.EventMessageDelete:       payload[discordgo.MessageDelete](),
	discord.EventMessageDeleteBulk:   payload[discordgo.MessageDeleteBulk](),
	discord.EventReactionAdd:         payload[discordgo.MessageReactionAdd](),
	discord.EventReactionRemove:      payload[discordgo.MessageReactionRemove](),
	discord.EventReactionRemoveAll:   payload[discordgo.MessageReactionRemoveAll](),
	discord.EventReactionRemoveEmoji: payload[discord.ReactionRemoveEmojiPayload](),
	discord.EventStageInstanceCreate: payload[discordgo.StageInstanceEventCreate](),
	discord.EventStageInstanceUpdate: payload[discordgo.StageInstanceEventUpdate](),
	discord.EventStageInstanceDelete: payload[discordgo.StageInstanceEventDelete](),
	discord.EventInteractionCreate:   payload[discordgo.InteractionCreate](),
}

// DecodeFrame decodes one {"op":0,"t":NAME,"d":{...}} frame. Frames with
// another opcode or an event name the cache does not handle return
// ErrSkipFrame.
func DecodeFrame(frame []byte) (discord.Event, error) {
	if !gjson.ValidBytes(frame) {
		return nil, fmt.Errorf("decode frame: %w", ErrMalformedFrame)
	}
	fields := gjson.GetManyBytes(frame, "op", "t", "d")
	op, name, data := fields[0], fields[1], fields[2]
	if !op.Exists() || !data.Exists() {
		return nil, fmt.Errorf("decode frame: %w", ErrMalformedFrame)
	}
	if op.Int() != opDispatch {
		return nil, ErrSkipFrame
	}

	kind := discord.EventKind(name.String())
	newPayload, ok := payloads[kind]
	if !ok {
		return nil, fmt.Errorf("decode frame %q: %w", kind, ErrSkipFrame)
	}

	raw := []byte(data.Raw)
	body := newPayload()
	if err := json.Unmarshal(raw, body); err != nil {
		return nil, fmt.Errorf("decode frame %s: %w: %w", kind, ErrMalformedFrame, err)
	}
	event, err := discord.FromGateway(body, func(path string) bool {
		return gjson.GetBytes(raw, path).Exists()
	})
	if err != nil {
		return nil, fmt.Errorf("decode frame %s: %w", kind, err)
	}

	return event, nil
}
