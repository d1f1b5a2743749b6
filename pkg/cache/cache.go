// Package cache keeps an in-memory mirror of guild state built from gateway
// change events.
//
// A Cache is safe for concurrent use. Update applies one event; accessors
// return snapshots and report false when an entity is not cached. Entity
// kinds can be switched off with WithResourceTypes, and every cached value is
// built by a replaceable constructor from WithRepresentations.
package cache

import (
	"cmp"
	"log/slog"
	"slices"
	"sync"

	"guildcache/pkg/cache/internal/history"
	"guildcache/pkg/cache/internal/store"
	"guildcache/pkg/discord"
)

// guildKey addresses an entity scoped to one guild, such as a member.
type guildKey struct {
	guildID discord.ID
	id      discord.ID
}

func hashGuildKey(key guildKey) uint32 {
	return store.HashPair(uint64(key.guildID), uint64(key.id))
}

func hashID(id discord.ID) uint32 {
	return store.HashUint64(id)
}

// Cache is the in-memory entity cache.
type Cache struct {
	cfg    config
	reps   Representations
	logger *slog.Logger

	currentUserMu sync.Mutex
	currentUser   CurrentUser

	channels          *store.Map[discord.ID, Channel]
	channelMessages   *store.Map[discord.ID, *history.Ring[Message]]
	emojis            *store.Map[discord.ID, GuildResource[Emoji]]
	guilds            *store.Map[discord.ID, Guild]
	integrations      *store.Map[guildKey, GuildResource[Integration]]
	members           *store.Map[guildKey, Member]
	presences         *store.Map[guildKey, Presence]
	roles             *store.Map[discord.ID, GuildResource[Role]]
	stageInstances    *store.Map[discord.ID, GuildResource[StageInstance]]
	stickers          *store.Map[discord.ID, GuildResource[Sticker]]
	unavailableGuilds *store.Map[discord.ID, struct{}]
	users             *store.Map[discord.ID, User]
	voiceStates       *store.Map[guildKey, VoiceState]

	guildChannels       *store.Index[discord.ID, discord.ID]
	guildEmojis         *store.Index[discord.ID, discord.ID]
	guildIntegrations   *store.Index[discord.ID, discord.ID]
	guildMembers        *store.Index[discord.ID, discord.ID]
	guildPresences      *store.Index[discord.ID, discord.ID]
	guildRoles          *store.Index[discord.ID, discord.ID]
	guildStageInstances *store.Index[discord.ID, discord.ID]
	guildStickers       *store.Index[discord.ID, discord.ID]
	guildVoiceStates    *store.Index[discord.ID, discord.ID]
	userGuilds          *store.Index[discord.ID, discord.ID]
	voiceChannelStates  *store.Index[discord.ID, guildKey]
}

// New creates an empty cache.
func New(options ...Option) *Cache {
	cfg := defaultConfig()
	for _, option := range options {
		option(&cfg)
	}

	return &Cache{
		cfg:    cfg,
		reps:   cfg.representations,
		logger: cfg.logger,

		channels:          store.NewMap[discord.ID, Channel](hashID),
		channelMessages:   store.NewMap[discord.ID, *history.Ring[Message]](hashID),
		emojis:            store.NewMap[discord.ID, GuildResource[Emoji]](hashID),
		guilds:            store.NewMap[discord.ID, Guild](hashID),
		integrations:      store.NewMap[guildKey, GuildResource[Integration]](hashGuildKey),
		members:           store.NewMap[guildKey, Member](hashGuildKey),
		presences:         store.NewMap[guildKey, Presence](hashGuildKey),
		roles:             store.NewMap[discord.ID, GuildResource[Role]](hashID),
		stageInstances:    store.NewMap[discord.ID, GuildResource[StageInstance]](hashID),
		stickers:          store.NewMap[discord.ID, GuildResource[Sticker]](hashID),
		unavailableGuilds: store.NewMap[discord.ID, struct{}](hashID),
		users:             store.NewMap[discord.ID, User](hashID),
		voiceStates:       store.NewMap[guildKey, VoiceState](hashGuildKey),

		guildChannels:       store.NewIndex[discord.ID, discord.ID](hashID),
		guildEmojis:         store.NewIndex[discord.ID, discord.ID](hashID),
		guildIntegrations:   store.NewIndex[discord.ID, discord.ID](hashID),
		guildMembers:        store.NewIndex[discord.ID, discord.ID](hashID),
		guildPresences:      store.NewIndex[discord.ID, discord.ID](hashID),
		guildRoles:          store.NewIndex[discord.ID, discord.ID](hashID),
		guildStageInstances: store.NewIndex[discord.ID, discord.ID](hashID),
		guildStickers:       store.NewIndex[discord.ID, discord.ID](hashID),
		guildVoiceStates:    store.NewIndex[discord.ID, discord.ID](hashID),
		userGuilds:          store.NewIndex[discord.ID, discord.ID](hashID),
		voiceChannelStates:  store.NewIndex[discord.ID, guildKey](hashID),
	}
}

// Config returns the settings the cache was built with.
func (c *Cache) Config() Config {
	return Config{
		ResourceTypes:    c.cfg.resourceTypes,
		MessageCacheSize: c.cfg.messageCacheSize,
	}
}

// Wants reports whether every kind in kinds is enabled.
func (c *Cache) Wants(kinds ResourceType) bool {
	return c.cfg.resourceTypes.Contains(kinds)
}

// Clear drops every cached entity. Configuration is kept.
func (c *Cache) Clear() {
	c.currentUserMu.Lock()
	c.currentUser = nil
	c.currentUserMu.Unlock()

	c.channels.Clear()
	c.channelMessages.Clear()
	c.emojis.Clear()
	c.guilds.Clear()
	c.integrations.Clear()
	c.members.Clear()
	c.presences.Clear()
	c.roles.Clear()
	c.stageInstances.Clear()
	c.stickers.Clear()
	c.unavailableGuilds.Clear()
	c.users.Clear()
	c.voiceStates.Clear()

	c.guildChannels.Clear()
	c.guildEmojis.Clear()
	c.guildIntegrations.Clear()
	c.guildMembers.Clear()
	c.guildPresences.Clear()
	c.guildRoles.Clear()
	c.guildStageInstances.Clear()
	c.guildStickers.Clear()
	c.guildVoiceStates.Clear()
	c.userGuilds.Clear()
	c.voiceChannelStates.Clear()
}

// CurrentUser returns the user the session is authenticated as.
func (c *Cache) CurrentUser() (CurrentUser, bool) {
	c.currentUserMu.Lock()
	defer c.currentUserMu.Unlock()

	return c.currentUser, c.currentUser != nil
}

func (c *Cache) currentUserID() (discord.ID, bool) {
	user, ok := c.CurrentUser()
	if !ok {
		return 0, false
	}

	return user.ID(), true
}

// Guild returns a cached guild.
func (c *Cache) Guild(guildID discord.ID) (Guild, bool) {
	return c.guilds.Get(guildID)
}

// IsGuildUnavailable reports whether the guild is currently in an outage.
func (c *Cache) IsGuildUnavailable(guildID discord.ID) bool {
	return c.unavailableGuilds.Has(guildID)
}

// Channel returns a cached channel or thread.
func (c *Cache) Channel(channelID discord.ID) (Channel, bool) {
	return c.channels.Get(channelID)
}

// Emoji returns a cached emoji and its guild.
func (c *Cache) Emoji(emojiID discord.ID) (GuildResource[Emoji], bool) {
	return c.emojis.Get(emojiID)
}

// Integration returns a cached integration.
func (c *Cache) Integration(guildID, integrationID discord.ID) (GuildResource[Integration], bool) {
	return c.integrations.Get(guildKey{guildID: guildID, id: integrationID})
}

// Member returns a cached member.
func (c *Cache) Member(guildID, userID discord.ID) (Member, bool) {
	return c.members.Get(guildKey{guildID: guildID, id: userID})
}

// Presence returns a cached presence.
func (c *Cache) Presence(guildID, userID discord.ID) (Presence, bool) {
	return c.presences.Get(guildKey{guildID: guildID, id: userID})
}

// Role returns a cached role and its guild.
func (c *Cache) Role(roleID discord.ID) (GuildResource[Role], bool) {
	return c.roles.Get(roleID)
}

// StageInstance returns a cached stage instance and its guild.
func (c *Cache) StageInstance(stageID discord.ID) (GuildResource[StageInstance], bool) {
	return c.stageInstances.Get(stageID)
}

// Sticker returns a cached sticker and its guild.
func (c *Cache) Sticker(stickerID discord.ID) (GuildResource[Sticker], bool) {
	return c.stickers.Get(stickerID)
}

// User returns a cached user.
func (c *Cache) User(userID discord.ID) (User, bool) {
	return c.users.Get(userID)
}

// VoiceState returns a user's cached voice state in a guild.
func (c *Cache) VoiceState(guildID, userID discord.ID) (VoiceState, bool) {
	return c.voiceStates.Get(guildKey{guildID: guildID, id: userID})
}

// ChannelMessages returns the cached messages of a channel, newest first.
func (c *Cache) ChannelMessages(channelID discord.ID) ([]Message, bool) {
	var messages []Message
	ok := c.channelMessages.View(channelID, func(ring *history.Ring[Message]) {
		messages = ring.Items()
	})

	return messages, ok
}

// Message returns one cached message of a channel.
func (c *Cache) Message(channelID, messageID discord.ID) (Message, bool) {
	var (
		message Message
		found   bool
	)
	c.channelMessages.View(channelID, func(ring *history.Ring[Message]) {
		if idx := ring.Index(matchMessage(messageID)); idx >= 0 {
			message, found = ring.At(idx), true
		}
	})

	return message, found
}

// GuildChannels returns the ids of a guild's cached channels and threads.
func (c *Cache) GuildChannels(guildID discord.ID) ([]discord.ID, bool) {
	return sortedMembers(c.guildChannels, guildID)
}

// GuildEmojis returns the ids of a guild's cached emojis.
func (c *Cache) GuildEmojis(guildID discord.ID) ([]discord.ID, bool) {
	return sortedMembers(c.guildEmojis, guildID)
}

// GuildIntegrations returns the ids of a guild's cached integrations.
func (c *Cache) GuildIntegrations(guildID discord.ID) ([]discord.ID, bool) {
	return sortedMembers(c.guildIntegrations, guildID)
}

// GuildMembers returns the user ids of a guild's cached members.
func (c *Cache) GuildMembers(guildID discord.ID) ([]discord.ID, bool) {
	return sortedMembers(c.guildMembers, guildID)
}

// GuildPresences returns the user ids of a guild's cached presences.
func (c *Cache) GuildPresences(guildID discord.ID) ([]discord.ID, bool) {
	return sortedMembers(c.guildPresences, guildID)
}

// GuildRoles returns the ids of a guild's cached roles.
func (c *Cache) GuildRoles(guildID discord.ID) ([]discord.ID, bool) {
	return sortedMembers(c.guildRoles, guildID)
}

// GuildRolesOrdered returns a guild's cached roles from highest to lowest.
func (c *Cache) GuildRolesOrdered(guildID discord.ID) ([]Role, bool) {
	ids, ok := c.guildRoles.Members(guildID)
	if !ok {
		return nil, false
	}

	roles := make([]Role, 0, len(ids))
	for _, id := range ids {
		if role, found := c.roles.Get(id); found {
			roles = append(roles, role.Value)
		}
	}
	slices.SortFunc(roles, func(a, b Role) int {
		return discord.CompareRoles(a.Position(), a.ID(), b.Position(), b.ID())
	})

	return roles, true
}

// GuildStageInstances returns the ids of a guild's cached stage instances.
func (c *Cache) GuildStageInstances(guildID discord.ID) ([]discord.ID, bool) {
	return sortedMembers(c.guildStageInstances, guildID)
}

// GuildStickers returns the ids of a guild's cached stickers.
func (c *Cache) GuildStickers(guildID discord.ID) ([]discord.ID, bool) {
	return sortedMembers(c.guildStickers, guildID)
}

// GuildVoiceStates returns the user ids with a cached voice state in a guild.
func (c *Cache) GuildVoiceStates(guildID discord.ID) ([]discord.ID, bool) {
	return sortedMembers(c.guildVoiceStates, guildID)
}

// UserGuilds returns the ids of the guilds a cached user is referenced from.
func (c *Cache) UserGuilds(userID discord.ID) ([]discord.ID, bool) {
	return sortedMembers(c.userGuilds, userID)
}

// VoiceChannelStates returns the voice states of users in a voice channel.
func (c *Cache) VoiceChannelStates(channelID discord.ID) ([]VoiceState, bool) {
	keys, ok := c.voiceChannelStates.Members(channelID)
	if !ok {
		return nil, false
	}

	states := make([]VoiceState, 0, len(keys))
	for _, key := range keys {
		if state, found := c.voiceStates.Get(key); found {
			states = append(states, state)
		}
	}
	slices.SortFunc(states, func(a, b VoiceState) int {
		return cmp.Compare(a.UserID(), b.UserID())
	})

	return states, true
}

func sortedMembers(index *store.Index[discord.ID, discord.ID], parent discord.ID) ([]discord.ID, bool) {
	ids, ok := index.Members(parent)
	if !ok {
		return nil, false
	}
	slices.Sort(ids)

	return ids, true
}

func matchMessage(messageID discord.ID) func(Message) bool {
	return func(message Message) bool {
		return message.ID() == messageID
	}
}
