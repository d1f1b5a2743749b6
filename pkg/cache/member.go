package cache

import (
	"guildcache/pkg/cache/internal/store"
	"guildcache/pkg/discord"
)

// wantsMember reports whether a member of userID is cached: always with
// ResourceMember, and only for the current user with ResourceMemberCurrent.
func (c *Cache) wantsMember(userID discord.ID) bool {
	if c.Wants(ResourceMember) {
		return true
	}
	if !c.Wants(ResourceMemberCurrent) {
		return false
	}
	currentID, ok := c.currentUserID()

	return ok && currentID == userID
}

func (c *Cache) cacheMember(guildID discord.ID, member discord.Member) {
	userID := member.User.ID
	if !c.wantsMember(userID) {
		return
	}

	c.cacheUser(member.User, &guildID)
	key := guildKey{guildID: guildID, id: userID}
	store.UpsertGuildItem(c.guildMembers, c.members, guildID, userID, key, func(old Member, exists bool) Member {
		if exists && old.EqualMember(member) {
			return old
		}
		return c.reps.Member(guildID, member)
	})
}

func (c *Cache) cachePartialMember(guildID, userID discord.ID, member discord.PartialMember) {
	if member.User != nil {
		userID = member.User.ID
	}
	if !c.wantsMember(userID) {
		return
	}

	if member.User != nil {
		c.cacheUser(*member.User, &guildID)
	}
	key := guildKey{guildID: guildID, id: userID}
	store.UpsertGuildItem(c.guildMembers, c.members, guildID, userID, key, func(old Member, exists bool) Member {
		if exists && old.EqualPartialMember(member) {
			return old
		}
		return c.reps.PartialMember(guildID, userID, member)
	})
}

// cacheInteractionMember keeps the voice flags of an already cached member,
// since interaction payloads do not carry them.
func (c *Cache) cacheInteractionMember(guildID, userID discord.ID, member discord.InteractionMember) {
	if !c.wantsMember(userID) {
		return
	}

	key := guildKey{guildID: guildID, id: userID}
	store.UpsertGuildItem(c.guildMembers, c.members, guildID, userID, key, func(old Member, exists bool) Member {
		if !exists {
			return c.reps.InteractionMember(guildID, userID, member, nil, nil)
		}
		if old.EqualInteractionMember(member) {
			return old
		}
		var deaf, mute *bool
		if value, known := old.Deaf(); known {
			deaf = &value
		}
		if value, known := old.Mute(); known {
			mute = &value
		}
		return c.reps.InteractionMember(guildID, userID, member, deaf, mute)
	})
}

func (c *Cache) removeMember(guildID, userID discord.ID) {
	key := guildKey{guildID: guildID, id: userID}
	if _, ok := store.RemoveGuildItem(c.guildMembers, c.members, guildID, userID, key); !ok {
		return
	}
	c.releaseUser(userID, guildID)
}

func (c *Cache) updateMemberAdd(ev *discord.MemberAdd) {
	if c.Wants(ResourceGuild) {
		c.guilds.Mutate(ev.GuildID, func(guild Guild) Guild {
			guild = guild.Clone()
			guild.IncreaseMemberCount(1)
			return guild
		})
	}

	c.cacheMember(ev.GuildID, ev.Member)
}

func (c *Cache) updateMemberRemove(ev *discord.MemberRemove) {
	if c.Wants(ResourceGuild) {
		c.guilds.Mutate(ev.GuildID, func(guild Guild) Guild {
			guild = guild.Clone()
			guild.DecreaseMemberCount(1)
			return guild
		})
	}

	c.removeMember(ev.GuildID, ev.User.ID)
}

func (c *Cache) updateMemberUpdate(ev *discord.MemberUpdate) {
	if !c.wantsMember(ev.User.ID) {
		return
	}

	key := guildKey{guildID: ev.GuildID, id: ev.User.ID}
	if !c.members.Has(key) {
		return
	}
	c.cacheUser(ev.User, &ev.GuildID)
	c.members.Mutate(key, func(member Member) Member {
		member = member.Clone()
		member.UpdateWithMemberUpdate(ev)
		return member
	})
}

func (c *Cache) updateMemberChunk(ev *discord.MemberChunk) {
	for _, member := range ev.Members {
		c.cacheMember(ev.GuildID, member)
	}
	if !c.Wants(ResourcePresence) {
		return
	}
	for _, presence := range ev.Presences {
		c.cachePresence(ev.GuildID, presence)
	}
}
