package cache

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"guildcache/pkg/discord"
)

func TestChannelDeleteCascadesToThreads(t *testing.T) {
	t.Parallel()

	cache := New()
	guild := testGuild(1)
	guild.Channels = []discord.Channel{testChannel(10, nil), testChannel(20, nil)}
	guild.Threads = []discord.Channel{testThread(11, 10, nil), testThread(21, 20, nil)}
	cache.Update(&discord.GuildCreate{Guild: guild})
	cache.Update(&discord.MessageCreate{Message: testMessage(100, 11, idPtr(1), 5)})

	cache.Update(&discord.ChannelDelete{Channel: testChannel(10, idPtr(1))})

	channels, _ := cache.GuildChannels(1)
	if diff := cmp.Diff([]discord.ID{20, 21}, channels); diff != "" {
		t.Fatalf("GuildChannels() mismatch (-want +got):\n%s", diff)
	}
	if _, ok := cache.Channel(11); ok {
		t.Fatal("thread of deleted channel still cached")
	}
	if _, ok := cache.ChannelMessages(11); ok {
		t.Fatal("thread history still cached")
	}
}

func TestThreadDeleteKeepsParent(t *testing.T) {
	t.Parallel()

	cache := New()
	cache.Update(&discord.ChannelCreate{Channel: testChannel(10, idPtr(1))})
	cache.Update(&discord.ThreadCreate{Channel: testThread(11, 10, idPtr(1))})
	cache.Update(&discord.ThreadDelete{ID: 11, GuildID: 1, ParentID: 10, Type: discord.ChannelGuildPublicThread})

	channels, _ := cache.GuildChannels(1)
	if diff := cmp.Diff([]discord.ID{10}, channels); diff != "" {
		t.Fatalf("GuildChannels() mismatch (-want +got):\n%s", diff)
	}
}

func TestThreadListSyncBackfillsGuildID(t *testing.T) {
	t.Parallel()

	cache := New()
	cache.Update(&discord.ThreadListSync{
		GuildID: 1,
		Threads: []discord.Channel{testThread(11, 10, nil), testThread(12, 10, nil)},
	})

	channels, _ := cache.GuildChannels(1)
	if diff := cmp.Diff([]discord.ID{11, 12}, channels); diff != "" {
		t.Fatalf("GuildChannels() mismatch (-want +got):\n%s", diff)
	}
}

func TestChannelPinsUpdate(t *testing.T) {
	t.Parallel()

	cache := New()
	cache.Update(&discord.ChannelCreate{Channel: testChannel(10, idPtr(1))})

	pinned := time.Date(2023, 5, 1, 0, 0, 0, 0, time.UTC)
	cache.Update(&discord.ChannelPinsUpdate{ChannelID: 10, GuildID: idPtr(1), LastPinTimestamp: &pinned})

	channel, _ := cache.Channel(10)
	got := channel.(*CachedChannel).LastPinTimestamp()
	if got == nil || !got.Equal(pinned) {
		t.Fatalf("LastPinTimestamp() = %v, want %v", got, pinned)
	}
}

func TestPrivateChannelIsNotGuildIndexed(t *testing.T) {
	t.Parallel()

	cache := New()
	cache.Update(&discord.ChannelCreate{Channel: discord.Channel{ID: 7, Kind: discord.ChannelPrivate}})

	channel, ok := cache.Channel(7)
	if !ok {
		t.Fatal("private channel not cached")
	}
	if _, inGuild := channel.GuildID(); inGuild {
		t.Fatal("private channel reports a guild")
	}

	cache.Update(&discord.ChannelDelete{Channel: discord.Channel{ID: 7, Kind: discord.ChannelPrivate}})
	if _, ok := cache.Channel(7); ok {
		t.Fatal("private channel kept after delete")
	}
}
