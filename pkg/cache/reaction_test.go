package cache

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"guildcache/pkg/discord"
)

var (
	grinning = discord.ReactionType{Name: "😀"}
	worldMap = discord.ReactionType{Name: "🗺️"}
	custom   = discord.ReactionType{ID: idPtr(6), Name: "custom"}
)

func reactionAdd(userID discord.ID, emoji discord.ReactionType) *discord.ReactionAdd {
	return &discord.ReactionAdd{Reaction: discord.GatewayReaction{
		UserID:    userID,
		ChannelID: 2,
		MessageID: 4,
		GuildID:   idPtr(1),
		Emoji:     emoji,
	}}
}

func reactionRemove(userID discord.ID, emoji discord.ReactionType) *discord.ReactionRemove {
	return &discord.ReactionRemove{Reaction: discord.GatewayReaction{
		UserID:    userID,
		ChannelID: 2,
		MessageID: 4,
		GuildID:   idPtr(1),
		Emoji:     emoji,
	}}
}

// newReactionCache caches message 4 in channel 2 and adds reactions by user 3
// (grinning) and user 5 (grinning, world map, custom emoji 6). User 5 is the
// current user.
func newReactionCache(t *testing.T) *Cache {
	t.Helper()

	cache := New()
	cache.Update(&discord.Ready{User: discord.CurrentUser{ID: 5}})
	cache.Update(&discord.MessageCreate{Message: testMessage(4, 2, idPtr(1), 3)})
	cache.Update(reactionAdd(3, grinning))
	cache.Update(reactionAdd(5, grinning))
	cache.Update(reactionAdd(5, worldMap))
	cache.Update(reactionAdd(5, custom))

	return cache
}

func reactionsOf(t *testing.T, cache *Cache) []Reaction {
	t.Helper()

	message, ok := cache.Message(2, 4)
	if !ok {
		t.Fatal("message 4 not cached")
	}

	return message.Reactions()
}

func TestReactionAddKeepsInsertionOrder(t *testing.T) {
	t.Parallel()

	cache := newReactionCache(t)
	want := []Reaction{
		{Emoji: grinning, Count: 2, Me: true, UserIDs: []discord.ID{3, 5}},
		{Emoji: worldMap, Count: 1, Me: true, UserIDs: []discord.ID{5}},
		{Emoji: custom, Count: 1, Me: true, UserIDs: []discord.ID{5}},
	}
	if diff := cmp.Diff(want, reactionsOf(t, cache)); diff != "" {
		t.Fatalf("Reactions() mismatch (-want +got):\n%s", diff)
	}

	cache.Update(reactionAdd(3, grinning))
	if diff := cmp.Diff(want, reactionsOf(t, cache)); diff != "" {
		t.Fatalf("duplicate add changed reactions (-want +got):\n%s", diff)
	}
}

func TestReactionRemove(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		removes []*discord.ReactionRemove
		want    []Reaction
	}{
		{
			name:    "decrements shared emoji",
			removes: []*discord.ReactionRemove{reactionRemove(5, grinning)},
			want: []Reaction{
				{Emoji: grinning, Count: 1, Me: false, UserIDs: []discord.ID{3}},
				{Emoji: worldMap, Count: 1, Me: true, UserIDs: []discord.ID{5}},
				{Emoji: custom, Count: 1, Me: true, UserIDs: []discord.ID{5}},
			},
		},
		{
			name:    "removes last reactor positionally",
			removes: []*discord.ReactionRemove{reactionRemove(5, worldMap)},
			want: []Reaction{
				{Emoji: grinning, Count: 2, Me: true, UserIDs: []discord.ID{3, 5}},
				{Emoji: custom, Count: 1, Me: true, UserIDs: []discord.ID{5}},
			},
		},
		{
			name: "custom emoji matched by id",
			removes: []*discord.ReactionRemove{
				reactionRemove(5, discord.ReactionType{ID: idPtr(6), Name: "renamed"}),
			},
			want: []Reaction{
				{Emoji: grinning, Count: 2, Me: true, UserIDs: []discord.ID{3, 5}},
				{Emoji: worldMap, Count: 1, Me: true, UserIDs: []discord.ID{5}},
			},
		},
		{
			name:    "non reactor leaves emoji untouched",
			removes: []*discord.ReactionRemove{reactionRemove(9, worldMap)},
			want: []Reaction{
				{Emoji: grinning, Count: 2, Me: true, UserIDs: []discord.ID{3, 5}},
				{Emoji: worldMap, Count: 1, Me: true, UserIDs: []discord.ID{5}},
				{Emoji: custom, Count: 1, Me: true, UserIDs: []discord.ID{5}},
			},
		},
		{
			name: "repeated remove keeps other reactor",
			removes: []*discord.ReactionRemove{
				reactionRemove(5, grinning),
				reactionRemove(5, grinning),
			},
			want: []Reaction{
				{Emoji: grinning, Count: 1, Me: false, UserIDs: []discord.ID{3}},
				{Emoji: worldMap, Count: 1, Me: true, UserIDs: []discord.ID{5}},
				{Emoji: custom, Count: 1, Me: true, UserIDs: []discord.ID{5}},
			},
		},
	}

	for _, testCase := range tests {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			cache := newReactionCache(t)
			for _, remove := range testCase.removes {
				cache.Update(remove)
			}
			if diff := cmp.Diff(testCase.want, reactionsOf(t, cache)); diff != "" {
				t.Fatalf("Reactions() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestReactionRemoveEmojiKeepsOthersInOrder(t *testing.T) {
	t.Parallel()

	cache := newReactionCache(t)
	cache.Update(&discord.ReactionRemoveEmoji{ChannelID: 2, MessageID: 4, GuildID: 1, Emoji: grinning})

	want := []Reaction{
		{Emoji: worldMap, Count: 1, Me: true, UserIDs: []discord.ID{5}},
		{Emoji: custom, Count: 1, Me: true, UserIDs: []discord.ID{5}},
	}
	if diff := cmp.Diff(want, reactionsOf(t, cache)); diff != "" {
		t.Fatalf("Reactions() mismatch (-want +got):\n%s", diff)
	}
}

func TestReactionRemoveAll(t *testing.T) {
	t.Parallel()

	cache := newReactionCache(t)
	cache.Update(&discord.ReactionRemoveAll{ChannelID: 2, MessageID: 4, GuildID: idPtr(1)})

	if got := reactionsOf(t, cache); len(got) != 0 {
		t.Fatalf("Reactions() = %v, want none", got)
	}
}

func TestReactionOnEvictedMessageIsIgnored(t *testing.T) {
	t.Parallel()

	cache := New(WithMessageCacheSize(1))
	cache.Update(&discord.MessageCreate{Message: testMessage(4, 2, idPtr(1), 3)})
	cache.Update(&discord.MessageCreate{Message: testMessage(5, 2, idPtr(1), 3)})
	cache.Update(reactionAdd(3, grinning))

	if _, ok := cache.Message(2, 4); ok {
		t.Fatal("evicted message still cached")
	}
	message, _ := cache.Message(2, 5)
	if got := message.Reactions(); len(got) != 0 {
		t.Fatalf("reaction landed on another message: %v", got)
	}
}

func TestReactionCountedByMessagePayload(t *testing.T) {
	t.Parallel()

	cache := New()
	cache.Update(&discord.Ready{User: discord.CurrentUser{ID: 5}})
	message := testMessage(4, 2, idPtr(1), 3)
	message.Reactions = []discord.Reaction{{Emoji: grinning, Count: 3, Me: true}}
	cache.Update(&discord.MessageCreate{Message: message})

	cache.Update(reactionAdd(5, grinning))
	if got := reactionsOf(t, cache)[0].Count; got != 3 {
		t.Fatalf("Count after echo of own reaction = %d, want 3", got)
	}
	cache.Update(reactionAdd(7, grinning))
	if got := reactionsOf(t, cache)[0].Count; got != 4 {
		t.Fatalf("Count after new reactor = %d, want 4", got)
	}
}

func TestReactionRemoveOfPayloadOnlyReactor(t *testing.T) {
	t.Parallel()

	cache := New()
	message := testMessage(4, 2, idPtr(1), 3)
	message.Reactions = []discord.Reaction{{Emoji: grinning, Count: 2}}
	cache.Update(&discord.MessageCreate{Message: message})

	cache.Update(reactionRemove(7, grinning))
	if got := reactionsOf(t, cache)[0].Count; got != 1 {
		t.Fatalf("Count after unseen reactor left = %d, want 1", got)
	}
}
