package discord

import "time"

// VoiceState is a user's voice connection state.
//
// A nil ChannelID means the user left voice.
type VoiceState struct {
	GuildID                 *ID
	ChannelID               *ID
	UserID                  ID
	Member                  *Member
	SessionID               string
	Deaf                    bool
	Mute                    bool
	SelfDeaf                bool
	SelfMute                bool
	SelfStream              bool
	SelfVideo               bool
	Suppress                bool
	RequestToSpeakTimestamp *time.Time
}
