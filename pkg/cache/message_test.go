package cache

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"guildcache/pkg/discord"
)

func messageIDs(cache *Cache, channelID discord.ID) []discord.ID {
	messages, _ := cache.ChannelMessages(channelID)
	ids := make([]discord.ID, 0, len(messages))
	for _, message := range messages {
		ids = append(ids, message.ID())
	}

	return ids
}

func TestMessageHistoryIsBounded(t *testing.T) {
	t.Parallel()

	cache := New(WithMessageCacheSize(3))
	for id := discord.ID(1); id <= 5; id++ {
		cache.Update(&discord.MessageCreate{Message: testMessage(id, 9, idPtr(1), 10)})
	}

	if diff := cmp.Diff([]discord.ID{5, 4, 3}, messageIDs(cache, 9)); diff != "" {
		t.Fatalf("ChannelMessages() mismatch (-want +got):\n%s", diff)
	}
	if _, ok := cache.Message(9, 1); ok {
		t.Fatal("oldest message not evicted")
	}
}

func TestMessageCreateReplacesDuplicate(t *testing.T) {
	t.Parallel()

	cache := New()
	cache.Update(&discord.MessageCreate{Message: testMessage(1, 9, nil, 10)})
	duplicate := testMessage(1, 9, nil, 10)
	duplicate.Content = "edited"
	cache.Update(&discord.MessageCreate{Message: duplicate})

	if diff := cmp.Diff([]discord.ID{1}, messageIDs(cache, 9)); diff != "" {
		t.Fatalf("ChannelMessages() mismatch (-want +got):\n%s", diff)
	}
	message, _ := cache.Message(9, 1)
	if got := message.(*CachedMessage).Content(); got != "edited" {
		t.Fatalf("Content() = %q, want edited", got)
	}
}

func TestMessageUpdateMergesPartialFields(t *testing.T) {
	t.Parallel()

	cache := New()
	cache.Update(&discord.MessageCreate{Message: testMessage(1, 9, nil, 10)})
	before, _ := cache.Message(9, 1)

	content := "pong"
	pinned := true
	cache.Update(&discord.MessageUpdate{ID: 1, ChannelID: 9, Content: &content, Pinned: &pinned})

	after, _ := cache.Message(9, 1)
	cached := after.(*CachedMessage)
	if cached.Content() != "pong" || !cached.Pinned() {
		t.Fatalf("message = (%q, %v), want (pong, true)", cached.Content(), cached.Pinned())
	}
	if cached.AuthorID() != 10 {
		t.Fatalf("AuthorID() = %d, want 10", cached.AuthorID())
	}
	if before.(*CachedMessage).Content() != "ping" {
		t.Fatal("update mutated a previously returned snapshot")
	}

	cache.Update(&discord.MessageUpdate{ID: 2, ChannelID: 9, Content: &content})
	if got := messageIDs(cache, 9); len(got) != 1 {
		t.Fatalf("update of uncached message changed history: %v", got)
	}
}

func TestMessageDeletes(t *testing.T) {
	t.Parallel()

	cache := New()
	for id := discord.ID(1); id <= 4; id++ {
		cache.Update(&discord.MessageCreate{Message: testMessage(id, 9, nil, 10)})
	}

	cache.Update(&discord.MessageDelete{ID: 2, ChannelID: 9})
	if diff := cmp.Diff([]discord.ID{4, 3, 1}, messageIDs(cache, 9)); diff != "" {
		t.Fatalf("after delete (-want +got):\n%s", diff)
	}

	cache.Update(&discord.MessageDeleteBulk{IDs: []discord.ID{1, 4, 77}, ChannelID: 9})
	if diff := cmp.Diff([]discord.ID{3}, messageIDs(cache, 9)); diff != "" {
		t.Fatalf("after bulk delete (-want +got):\n%s", diff)
	}
}

func TestMessageCreateCachesAuthorAndMember(t *testing.T) {
	t.Parallel()

	cache := New()
	message := testMessage(1, 9, idPtr(5), 10)
	message.Member = &discord.PartialMember{Roles: []discord.ID{3}}
	cache.Update(&discord.MessageCreate{Message: message})

	if _, ok := cache.User(10); !ok {
		t.Fatal("author not cached")
	}
	member, ok := cache.Member(5, 10)
	if !ok {
		t.Fatal("author member not cached")
	}
	if diff := cmp.Diff([]discord.ID{3}, member.Roles()); diff != "" {
		t.Fatalf("Roles() mismatch (-want +got):\n%s", diff)
	}
	guilds, _ := cache.UserGuilds(10)
	if diff := cmp.Diff([]discord.ID{5}, guilds); diff != "" {
		t.Fatalf("UserGuilds() mismatch (-want +got):\n%s", diff)
	}
}
