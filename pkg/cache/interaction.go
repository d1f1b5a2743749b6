package cache

import "guildcache/pkg/discord"

func (c *Cache) updateInteractionCreate(ev *discord.InteractionCreate) {
	interaction := ev.Interaction
	guildID := interaction.GuildID

	if member := interaction.Member; member != nil && member.User != nil {
		if guildID != nil && c.wantsMember(member.User.ID) {
			c.cachePartialMember(*guildID, member.User.ID, *member)
		} else {
			c.cacheUser(*member.User, nil)
		}
	}
	if interaction.User != nil {
		c.cacheUser(*interaction.User, nil)
	}

	if interaction.Data == nil || interaction.Data.Resolved == nil {
		return
	}
	resolved := interaction.Data.Resolved
	for userID, user := range resolved.Users {
		member, hasMember := resolved.Members[userID]
		if guildID == nil || !hasMember || !c.wantsMember(userID) {
			c.cacheUser(user, nil)
			continue
		}
		c.cacheUser(user, guildID)
		c.cacheInteractionMember(*guildID, userID, member)
	}
}
