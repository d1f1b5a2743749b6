package cache

import (
	"errors"
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"

	"guildcache/pkg/discord"
)

func TestParseResourceType(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		want    ResourceType
		wantErr error
	}{
		{name: "single kind", input: "voice_state", want: ResourceVoiceState},
		{name: "case and spaces", input: " Member_Current ", want: ResourceMemberCurrent},
		{name: "all", input: "all", want: ResourceAll},
		{name: "none", input: "none", want: 0},
		{name: "unknown", input: "webhook", wantErr: ErrUnknownResourceType},
	}

	for _, testCase := range tests {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			got, err := ParseResourceType(testCase.input)
			if !errors.Is(err, testCase.wantErr) {
				t.Fatalf("ParseResourceType(%q) error = %v, want %v", testCase.input, err, testCase.wantErr)
			}
			if got != testCase.want {
				t.Fatalf("ParseResourceType(%q) = %v, want %v", testCase.input, got, testCase.want)
			}
		})
	}
}

func TestResourceTypeString(t *testing.T) {
	t.Parallel()

	kinds, err := ParseResourceTypes([]string{"message", "guild", "reaction"})
	if err != nil {
		t.Fatalf("ParseResourceTypes() error = %v", err)
	}
	if got := kinds.String(); got != "guild|message|reaction" {
		t.Fatalf("String() = %q, want guild|message|reaction", got)
	}
	if got := ResourceAll.String(); got != "all" {
		t.Fatalf("ResourceAll.String() = %q, want all", got)
	}
	if !ResourceAll.Contains(kinds) {
		t.Fatal("ResourceAll does not contain every kind")
	}
}

// applyEveryKind feeds one event of every cached kind for guild 1. User 3
// is the current user; user 6 is another member.
func applyEveryKind(cache *Cache) {
	guild := testGuild(1)
	guild.Channels = []discord.Channel{testChannel(2, nil)}
	guild.Threads = []discord.Channel{testThread(11, 2, nil)}
	guild.Roles = []discord.Role{{ID: 20}}
	guild.Members = []discord.Member{testMember(3), testMember(6)}
	guild.Emojis = []discord.Emoji{{ID: 21, Name: "wave"}}
	guild.Stickers = []discord.Sticker{{ID: 22}}
	guild.Presences = []discord.Presence{{User: discord.PresenceUser{ID: 6}, Status: discord.StatusOnline}}
	guild.VoiceStates = []discord.VoiceState{{ChannelID: idPtr(2), UserID: 6}}
	guild.StageInstances = []discord.StageInstance{{ID: 23, GuildID: 1, ChannelID: 2}}

	cache.Update(&discord.Ready{User: discord.CurrentUser{ID: 3}})
	cache.Update(&discord.GuildCreate{Guild: guild})
	cache.Update(&discord.IntegrationCreate{Integration: discord.GuildIntegration{ID: 24, GuildID: idPtr(1), Name: "bot"}})
	cache.Update(&discord.MessageCreate{Message: testMessage(4, 2, idPtr(1), 3)})
	cache.Update(reactionAdd(3, grinning))
	cache.Update(&discord.VoiceStateUpdate{VoiceState: discord.VoiceState{GuildID: idPtr(1), ChannelID: idPtr(2), UserID: 7}})
	cache.Update(&discord.PresenceUpdate{Presence: discord.Presence{
		GuildID: 1,
		User:    discord.PresenceUser{ID: 7},
		Status:  discord.StatusIdle,
	}})
}

func TestResourceFilterSkipsDisabledKinds(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		disabled ResourceType
		absent   func(cache *Cache) []string
	}{
		{
			name:     "guild",
			disabled: ResourceGuild,
			absent: func(cache *Cache) (found []string) {
				if _, ok := cache.Guild(1); ok {
					found = append(found, "Guild(1)")
				}
				if cache.IsGuildUnavailable(1) {
					found = append(found, "IsGuildUnavailable(1)")
				}
				return found
			},
		},
		{
			name:     "channel",
			disabled: ResourceChannel,
			absent: func(cache *Cache) (found []string) {
				if _, ok := cache.Channel(2); ok {
					found = append(found, "Channel(2)")
				}
				if _, ok := cache.Channel(11); ok {
					found = append(found, "Channel(11)")
				}
				if _, ok := cache.GuildChannels(1); ok {
					found = append(found, "GuildChannels(1)")
				}
				return found
			},
		},
		{
			name:     "role",
			disabled: ResourceRole,
			absent: func(cache *Cache) (found []string) {
				if _, ok := cache.Role(20); ok {
					found = append(found, "Role(20)")
				}
				if _, ok := cache.GuildRoles(1); ok {
					found = append(found, "GuildRoles(1)")
				}
				return found
			},
		},
		{
			name:     "member keeps only the current user",
			disabled: ResourceMember,
			absent: func(cache *Cache) (found []string) {
				if _, ok := cache.Member(1, 6); ok {
					found = append(found, "Member(1, 6)")
				}
				if ids, _ := cache.GuildMembers(1); len(ids) != 1 || ids[0] != 3 {
					found = append(found, fmt.Sprintf("GuildMembers(1) = %v", ids))
				}
				return found
			},
		},
		{
			name:     "member current",
			disabled: ResourceMember | ResourceMemberCurrent,
			absent: func(cache *Cache) (found []string) {
				if _, ok := cache.Member(1, 3); ok {
					found = append(found, "Member(1, 3)")
				}
				if _, ok := cache.GuildMembers(1); ok {
					found = append(found, "GuildMembers(1)")
				}
				return found
			},
		},
		{
			name:     "presence",
			disabled: ResourcePresence,
			absent: func(cache *Cache) (found []string) {
				for _, userID := range []discord.ID{6, 7} {
					if _, ok := cache.Presence(1, userID); ok {
						found = append(found, fmt.Sprintf("Presence(1, %d)", userID))
					}
				}
				if _, ok := cache.GuildPresences(1); ok {
					found = append(found, "GuildPresences(1)")
				}
				return found
			},
		},
		{
			name:     "voice state",
			disabled: ResourceVoiceState,
			absent: func(cache *Cache) (found []string) {
				for _, userID := range []discord.ID{6, 7} {
					if _, ok := cache.VoiceState(1, userID); ok {
						found = append(found, fmt.Sprintf("VoiceState(1, %d)", userID))
					}
				}
				if _, ok := cache.GuildVoiceStates(1); ok {
					found = append(found, "GuildVoiceStates(1)")
				}
				if _, ok := cache.VoiceChannelStates(2); ok {
					found = append(found, "VoiceChannelStates(2)")
				}
				return found
			},
		},
		{
			name:     "message",
			disabled: ResourceMessage,
			absent: func(cache *Cache) (found []string) {
				if _, ok := cache.Message(2, 4); ok {
					found = append(found, "Message(2, 4)")
				}
				if _, ok := cache.ChannelMessages(2); ok {
					found = append(found, "ChannelMessages(2)")
				}
				return found
			},
		},
		{
			name:     "reaction",
			disabled: ResourceReaction,
			absent: func(cache *Cache) (found []string) {
				message, ok := cache.Message(2, 4)
				if !ok {
					return []string{"no Message(2, 4) to check"}
				}
				if reactions := message.Reactions(); len(reactions) != 0 {
					found = append(found, fmt.Sprintf("Reactions() = %v", reactions))
				}
				return found
			},
		},
		{
			name:     "user",
			disabled: ResourceUser,
			absent: func(cache *Cache) (found []string) {
				for _, userID := range []discord.ID{3, 6} {
					if _, ok := cache.User(userID); ok {
						found = append(found, fmt.Sprintf("User(%d)", userID))
					}
					if _, ok := cache.UserGuilds(userID); ok {
						found = append(found, fmt.Sprintf("UserGuilds(%d)", userID))
					}
				}
				return found
			},
		},
		{
			name:     "user current",
			disabled: ResourceUserCurrent,
			absent: func(cache *Cache) (found []string) {
				if _, ok := cache.CurrentUser(); ok {
					found = append(found, "CurrentUser()")
				}
				return found
			},
		},
		{
			name:     "integration",
			disabled: ResourceIntegration,
			absent: func(cache *Cache) (found []string) {
				if _, ok := cache.Integration(1, 24); ok {
					found = append(found, "Integration(1, 24)")
				}
				if _, ok := cache.GuildIntegrations(1); ok {
					found = append(found, "GuildIntegrations(1)")
				}
				return found
			},
		},
		{
			name:     "sticker",
			disabled: ResourceSticker,
			absent: func(cache *Cache) (found []string) {
				if _, ok := cache.Sticker(22); ok {
					found = append(found, "Sticker(22)")
				}
				if _, ok := cache.GuildStickers(1); ok {
					found = append(found, "GuildStickers(1)")
				}
				return found
			},
		},
		{
			name:     "emoji",
			disabled: ResourceEmoji,
			absent: func(cache *Cache) (found []string) {
				if _, ok := cache.Emoji(21); ok {
					found = append(found, "Emoji(21)")
				}
				if _, ok := cache.GuildEmojis(1); ok {
					found = append(found, "GuildEmojis(1)")
				}
				return found
			},
		},
		{
			name:     "stage instance",
			disabled: ResourceStageInstance,
			absent: func(cache *Cache) (found []string) {
				if _, ok := cache.StageInstance(23); ok {
					found = append(found, "StageInstance(23)")
				}
				if _, ok := cache.GuildStageInstances(1); ok {
					found = append(found, "GuildStageInstances(1)")
				}
				return found
			},
		},
	}

	for _, testCase := range tests {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			cache := New(WithResourceTypes(ResourceAll &^ testCase.disabled))
			applyEveryKind(cache)

			if found := testCase.absent(cache); len(found) != 0 {
				t.Fatalf("%s disabled but cached: %v", testCase.disabled, found)
			}
		})
	}
}

func TestResourceFilterCoversEveryKind(t *testing.T) {
	t.Parallel()

	cache := New()
	applyEveryKind(cache)

	stats := cache.Stats()
	want := Stats{
		Guilds:         1,
		Channels:       2,
		Messages:       1,
		Members:        2,
		Presences:      2,
		Roles:          1,
		Emojis:         1,
		Stickers:       1,
		Integrations:   1,
		StageInstances: 1,
		Users:          2,
		VoiceStates:    2,
	}
	if diff := cmp.Diff(want, stats); diff != "" {
		t.Fatalf("Stats() mismatch (-want +got):\n%s", diff)
	}
}

func TestWithMessageCacheSizeIgnoresInvalid(t *testing.T) {
	t.Parallel()

	cache := New(WithMessageCacheSize(0), WithMessageCacheSize(-3))
	if got := cache.Config().MessageCacheSize; got != defaultMessageCacheSize {
		t.Fatalf("MessageCacheSize = %d, want %d", got, defaultMessageCacheSize)
	}
}
