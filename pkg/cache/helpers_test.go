package cache

import (
	"testing"
	"time"

	"guildcache/pkg/discord"
)

func idPtr(id discord.ID) *discord.ID {
	return &id
}

func testUser(id discord.ID) discord.User {
	return discord.User{ID: id, Name: "user", Discriminator: "0001"}
}

func testMember(userID discord.ID) discord.Member {
	joinedAt := time.Date(2021, 1, 1, 0, 0, 0, 0, time.UTC)
	return discord.Member{
		User:     testUser(userID),
		Roles:    []discord.ID{},
		JoinedAt: &joinedAt,
	}
}

func testChannel(id discord.ID, guildID *discord.ID) discord.Channel {
	name := "general"
	return discord.Channel{ID: id, Kind: discord.ChannelGuildText, GuildID: guildID, Name: &name}
}

func testThread(id, parentID discord.ID, guildID *discord.ID) discord.Channel {
	name := "thread"
	return discord.Channel{
		ID:       id,
		Kind:     discord.ChannelGuildPublicThread,
		GuildID:  guildID,
		ParentID: &parentID,
		Name:     &name,
	}
}

func testGuild(id discord.ID) discord.Guild {
	memberCount := uint64(0)
	return discord.Guild{
		ID:          id,
		Name:        "guild",
		OwnerID:     1,
		MemberCount: &memberCount,
	}
}

func testMessage(id, channelID discord.ID, guildID *discord.ID, authorID discord.ID) discord.Message {
	return discord.Message{
		ID:        id,
		ChannelID: channelID,
		GuildID:   guildID,
		Author:    testUser(authorID),
		Content:   "ping",
		Timestamp: time.Date(2021, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

func cachedGuild(t *testing.T, cache *Cache, guildID discord.ID) *CachedGuild {
	t.Helper()

	guild, ok := cache.Guild(guildID)
	if !ok {
		t.Fatalf("guild %d not cached", guildID)
	}
	concrete, ok := guild.(*CachedGuild)
	if !ok {
		t.Fatalf("guild %d has representation %T, want *CachedGuild", guildID, guild)
	}

	return concrete
}

func memberCount(t *testing.T, cache *Cache, guildID discord.ID) uint64 {
	t.Helper()

	count, ok := cachedGuild(t, cache, guildID).MemberCount()
	if !ok {
		t.Fatalf("guild %d has no member count", guildID)
	}

	return count
}

func guildMemberCount(cache *Cache, guildID discord.ID) int {
	members, _ := cache.GuildMembers(guildID)
	return len(members)
}
