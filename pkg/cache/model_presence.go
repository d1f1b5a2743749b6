package cache

import (
	"time"

	"guildcache/pkg/discord"
)

// CachedPresence is the default presence representation. The user is
// referenced by id.
type CachedPresence struct {
	guildID      discord.ID
	userID       discord.ID
	status       discord.Status
	activities   []discord.Activity
	clientStatus discord.ClientStatus
}

// NewCachedPresence builds the default presence representation.
func NewCachedPresence(presence discord.Presence) Presence {
	return &CachedPresence{
		guildID:      presence.GuildID,
		userID:       presence.UserID(),
		status:       presence.Status,
		activities:   append([]discord.Activity(nil), presence.Activities...),
		clientStatus: presence.ClientStatus,
	}
}

// UserID returns the user the presence belongs to.
func (p *CachedPresence) UserID() discord.ID { return p.userID }

// GuildID returns the guild the presence was reported in.
func (p *CachedPresence) GuildID() discord.ID { return p.guildID }

// Status returns the overall status.
func (p *CachedPresence) Status() discord.Status { return p.status }

// ClientStatus returns the per-platform status.
func (p *CachedPresence) ClientStatus() discord.ClientStatus { return p.clientStatus }

// Activities returns a copy of the activity list.
func (p *CachedPresence) Activities() []discord.Activity {
	return append([]discord.Activity(nil), p.activities...)
}

// CachedVoiceState is the default voice state representation. The embedded
// member is cached separately.
type CachedVoiceState struct {
	channelID               discord.ID
	guildID                 discord.ID
	userID                  discord.ID
	sessionID               string
	deaf                    bool
	mute                    bool
	selfDeaf                bool
	selfMute                bool
	selfStream              bool
	selfVideo               bool
	suppress                bool
	requestToSpeakTimestamp *time.Time
}

// NewCachedVoiceState builds the default voice state representation.
func NewCachedVoiceState(channelID discord.ID, guildID discord.ID, state discord.VoiceState) VoiceState {
	return &CachedVoiceState{
		channelID:               channelID,
		guildID:                 guildID,
		userID:                  state.UserID,
		sessionID:               state.SessionID,
		deaf:                    state.Deaf,
		mute:                    state.Mute,
		selfDeaf:                state.SelfDeaf,
		selfMute:                state.SelfMute,
		selfStream:              state.SelfStream,
		selfVideo:               state.SelfVideo,
		suppress:                state.Suppress,
		requestToSpeakTimestamp: state.RequestToSpeakTimestamp,
	}
}

// UserID returns the user in voice.
func (v *CachedVoiceState) UserID() discord.ID { return v.userID }

// ChannelID returns the voice channel the user is in.
func (v *CachedVoiceState) ChannelID() discord.ID { return v.channelID }

// GuildID returns the guild of the voice channel.
func (v *CachedVoiceState) GuildID() discord.ID { return v.guildID }

// SessionID returns the voice session id.
func (v *CachedVoiceState) SessionID() string { return v.sessionID }

// SelfMute reports whether the user muted themselves.
func (v *CachedVoiceState) SelfMute() bool { return v.selfMute }

// SelfDeaf reports whether the user deafened themselves.
func (v *CachedVoiceState) SelfDeaf() bool { return v.selfDeaf }
