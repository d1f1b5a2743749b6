package discord

import (
	"errors"
	"slices"
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/google/go-cmp/cmp"
)

func fieldsOf(keys ...string) Fields {
	return func(path string) bool {
		return slices.Contains(keys, path)
	}
}

func idRef(id ID) *ID {
	return &id
}

func stringRef(value string) *string {
	return &value
}

func TestFromGateway(t *testing.T) {
	t.Parallel()

	deaf := true
	content := "edited"
	memberCount := uint64(0)
	position := int64(3)

	tests := []struct {
		name    string
		payload any
		fields  Fields
		want    Event
	}{
		{
			name: "unavailable guild create",
			payload: &discordgo.GuildCreate{Guild: &discordgo.Guild{
				ID:          "1",
				Unavailable: true,
			}},
			want: &UnavailableGuild{ID: 1},
		},
		{
			name: "guild create keeps present zero member count",
			payload: &discordgo.GuildCreate{Guild: &discordgo.Guild{
				ID:       "1",
				Name:     "guild",
				OwnerID:  "2",
				Channels: []*discordgo.Channel{{ID: "3", GuildID: "1", Name: "general", Position: 3}},
			}},
			fields: fieldsOf("member_count"),
			want: &GuildCreate{Guild: Guild{
				ID:          1,
				Name:        "guild",
				OwnerID:     2,
				MemberCount: &memberCount,
				Channels: []Channel{{
					ID:       3,
					GuildID:  idRef(1),
					Name:     stringRef("general"),
					Position: &position,
				}},
				Threads:        []Channel{},
				Members:        []Member{},
				Roles:          []Role{},
				Emojis:         []Emoji{},
				Stickers:       []Sticker{},
				Presences:      []Presence{},
				VoiceStates:    []VoiceState{},
				StageInstances: []StageInstance{},
			}},
		},
		{
			name: "reaction add with unicode emoji and member",
			payload: &discordgo.MessageReactionAdd{
				MessageReaction: &discordgo.MessageReaction{
					UserID:    "5",
					MessageID: "4",
					ChannelID: "2",
					GuildID:   "1",
					Emoji:     discordgo.Emoji{Name: "😀"},
				},
				Member: &discordgo.Member{User: &discordgo.User{ID: "5", Username: "five"}, Roles: []string{"7"}},
			},
			want: &ReactionAdd{Reaction: GatewayReaction{
				UserID:    5,
				ChannelID: 2,
				MessageID: 4,
				GuildID:   idRef(1),
				Member:    &Member{User: User{ID: 5, Name: "five"}, Roles: []ID{7}},
				Emoji:     ReactionType{Name: "😀"},
			}},
		},
		{
			name: "reaction remove with custom emoji in a direct message",
			payload: &discordgo.MessageReactionRemove{MessageReaction: &discordgo.MessageReaction{
				UserID:    "5",
				MessageID: "4",
				ChannelID: "2",
				Emoji:     discordgo.Emoji{ID: "6", Name: "custom"},
			}},
			want: &ReactionRemove{Reaction: GatewayReaction{
				UserID:    5,
				ChannelID: 2,
				MessageID: 4,
				Emoji:     ReactionType{ID: idRef(6), Name: "custom"},
			}},
		},
		{
			name: "reaction remove emoji",
			payload: &ReactionRemoveEmojiPayload{MessageReaction: discordgo.MessageReaction{
				MessageID: "4",
				ChannelID: "2",
				GuildID:   "1",
				Emoji:     discordgo.Emoji{Name: "🗺️"},
			}},
			want: &ReactionRemoveEmoji{ChannelID: 2, MessageID: 4, GuildID: 1, Emoji: ReactionType{Name: "🗺️"}},
		},
		{
			name: "member update keeps absent voice flags nil",
			payload: &discordgo.GuildMemberUpdate{Member: &discordgo.Member{
				GuildID: "1",
				User:    &discordgo.User{ID: "5", Username: "five"},
				Deaf:    true,
				Nick:    "nick",
			}},
			fields: fieldsOf("deaf"),
			want: &MemberUpdate{
				GuildID: 1,
				User:    User{ID: 5, Name: "five"},
				Nick:    stringRef("nick"),
				Deaf:    &deaf,
			},
		},
		{
			name: "message update carries only present fields",
			payload: &discordgo.MessageUpdate{Message: &discordgo.Message{
				ID:        "4",
				ChannelID: "2",
				Content:   "edited",
				Pinned:    false,
			}},
			fields: fieldsOf("content"),
			want:   &MessageUpdate{ID: 4, ChannelID: 2, Content: &content},
		},
		{
			name: "presence with id only user",
			payload: &discordgo.PresenceUpdate{
				GuildID:  "1",
				Presence: discordgo.Presence{User: &discordgo.User{ID: "6"}, Status: discordgo.StatusIdle},
			},
			want: &PresenceUpdate{Presence: Presence{GuildID: 1, User: PresenceUser{ID: 6}, Status: StatusIdle}},
		},
		{
			name:    "message delete bulk",
			payload: &discordgo.MessageDeleteBulk{Messages: []string{"4", "5"}, ChannelID: "2"},
			want:    &MessageDeleteBulk{IDs: []ID{4, 5}, ChannelID: 2},
		},
		{
			name:    "channel pins update",
			payload: &discordgo.ChannelPinsUpdate{ChannelID: "2", GuildID: "1"},
			want:    &ChannelPinsUpdate{ChannelID: 2, GuildID: idRef(1)},
		},
	}

	for _, testCase := range tests {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			got, err := FromGateway(testCase.payload, testCase.fields)
			if err != nil {
				t.Fatalf("FromGateway() error = %v", err)
			}
			if diff := cmp.Diff(testCase.want, got); diff != "" {
				t.Fatalf("FromGateway() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestFromGatewayInteractionResolvesData(t *testing.T) {
	t.Parallel()

	payload := &discordgo.InteractionCreate{Interaction: &discordgo.Interaction{
		ID:      "9",
		AppID:   "8",
		Type:    discordgo.InteractionApplicationCommand,
		GuildID: "1",
		Member:  &discordgo.Member{User: &discordgo.User{ID: "5", Username: "five"}, Permissions: 8},
		Data: discordgo.ApplicationCommandInteractionData{
			ID:   "10",
			Name: "ping",
			Resolved: &discordgo.ApplicationCommandInteractionDataResolved{
				Users:   map[string]*discordgo.User{"6": {ID: "6", Username: "six"}},
				Members: map[string]*discordgo.Member{"6": {Nick: "sixer"}},
			},
		},
	}}

	got, err := FromGateway(payload, nil)
	if err != nil {
		t.Fatalf("FromGateway() error = %v", err)
	}
	created, ok := got.(*InteractionCreate)
	if !ok {
		t.Fatalf("FromGateway() = %T, want *InteractionCreate", got)
	}

	admin := Permissions(8)
	want := Interaction{
		ID:            9,
		ApplicationID: 8,
		Kind:          uint8(discordgo.InteractionApplicationCommand),
		GuildID:       idRef(1),
		Member:        &PartialMember{User: &User{ID: 5, Name: "five"}, Permissions: &admin},
		Data: &InteractionData{
			ID:   10,
			Name: "ping",
			Resolved: &ResolvedData{
				Users:   map[ID]User{6: {ID: 6, Name: "six"}},
				Members: map[ID]InteractionMember{6: {Nick: stringRef("sixer")}},
			},
		},
	}
	if diff := cmp.Diff(want, created.Interaction); diff != "" {
		t.Fatalf("Interaction mismatch (-want +got):\n%s", diff)
	}
}

func TestFromGatewayErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		payload any
		wantErr error
	}{
		{
			name:    "malformed id",
			payload: &discordgo.GuildRoleDelete{RoleID: "x", GuildID: "1"},
			wantErr: ErrInvalidID,
		},
		{
			name:    "missing required id",
			payload: &discordgo.MessageDeleteBulk{Messages: []string{"4"}},
			wantErr: ErrInvalidID,
		},
		{
			name:    "missing channel",
			payload: &discordgo.ChannelCreate{},
			wantErr: ErrMissingField,
		},
		{
			name:    "member without user",
			payload: &discordgo.GuildMemberAdd{Member: &discordgo.Member{GuildID: "1"}},
			wantErr: ErrMissingField,
		},
		{
			name:    "no cache event",
			payload: &discordgo.TypingStart{ChannelID: "2"},
			wantErr: ErrUnknownEvent,
		},
	}

	for _, testCase := range tests {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			got, err := FromGateway(testCase.payload, nil)
			if !errors.Is(err, testCase.wantErr) {
				t.Fatalf("FromGateway() error = %v, want %v", err, testCase.wantErr)
			}
			if got != nil {
				t.Fatalf("FromGateway() = %#v, want nil", got)
			}
		})
	}
}
