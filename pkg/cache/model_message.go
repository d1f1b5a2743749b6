package cache

import (
	"time"

	"guildcache/pkg/discord"
)

// CachedMessage is the default message representation. Mentioned users and
// the author are referenced by id.
type CachedMessage struct {
	id              discord.ID
	channelID       discord.ID
	guildID         *discord.ID
	authorID        discord.ID
	content         string
	timestamp       time.Time
	editedTimestamp *time.Time
	kind            uint8
	pinned          bool
	tts             bool
	mentionEveryone bool
	mentions        []discord.ID
	mentionRoles    []discord.ID
	attachments     []discord.Attachment
	embeds          []discord.Embed
	stickerItems    []discord.StickerItem
	reference       *discord.MessageReference
	webhookID       *discord.ID
	flags           uint64
	reactions       []Reaction
}

// NewCachedMessage builds the default message representation.
func NewCachedMessage(message discord.Message) Message {
	reactions := make([]Reaction, 0, len(message.Reactions))
	for _, reaction := range message.Reactions {
		reactions = append(reactions, Reaction{
			Emoji: reaction.Emoji,
			Count: reaction.Count,
			Me:    reaction.Me,
		})
	}

	return &CachedMessage{
		id:              message.ID,
		channelID:       message.ChannelID,
		guildID:         message.GuildID,
		authorID:        message.Author.ID,
		content:         message.Content,
		timestamp:       message.Timestamp,
		editedTimestamp: message.EditedTimestamp,
		kind:            message.Kind,
		pinned:          message.Pinned,
		tts:             message.TTS,
		mentionEveryone: message.MentionEveryone,
		mentions:        userIDs(message.Mentions),
		mentionRoles:    cloneIDs(message.MentionRoles),
		attachments:     append([]discord.Attachment(nil), message.Attachments...),
		embeds:          append([]discord.Embed(nil), message.Embeds...),
		stickerItems:    append([]discord.StickerItem(nil), message.StickerItems...),
		reference:       message.MessageReference,
		webhookID:       message.WebhookID,
		flags:           message.Flags,
		reactions:       reactions,
	}
}

// ID returns the message id.
func (m *CachedMessage) ID() discord.ID { return m.id }

// ChannelID returns the channel the message was sent in.
func (m *CachedMessage) ChannelID() discord.ID { return m.channelID }

// AuthorID returns the author's user id.
func (m *CachedMessage) AuthorID() discord.ID { return m.authorID }

// Content returns the message text.
func (m *CachedMessage) Content() string { return m.content }

// Timestamp returns when the message was sent.
func (m *CachedMessage) Timestamp() time.Time { return m.timestamp }

// EditedTimestamp returns when the message was last edited, if ever.
func (m *CachedMessage) EditedTimestamp() *time.Time { return m.editedTimestamp }

// Pinned reports whether the message is pinned.
func (m *CachedMessage) Pinned() bool { return m.pinned }

// Mentions returns the ids of mentioned users.
func (m *CachedMessage) Mentions() []discord.ID { return cloneIDs(m.mentions) }

// Attachments returns a copy of the attachments.
func (m *CachedMessage) Attachments() []discord.Attachment {
	return append([]discord.Attachment(nil), m.attachments...)
}

// GuildID returns the guild the message was sent in, if any.
func (m *CachedMessage) GuildID() (discord.ID, bool) {
	return optionalID(m.guildID)
}

// UpdateWithMessageUpdate applies the fields carried by a message update.
func (m *CachedMessage) UpdateWithMessageUpdate(update *discord.MessageUpdate) {
	if update.Content != nil {
		m.content = *update.Content
	}
	if update.EditedTimestamp != nil {
		m.editedTimestamp = update.EditedTimestamp
	}
	if update.Pinned != nil {
		m.pinned = *update.Pinned
	}
	if update.MentionEveryone != nil {
		m.mentionEveryone = *update.MentionEveryone
	}
	if update.Mentions != nil {
		m.mentions = userIDs(*update.Mentions)
	}
	if update.MentionRoles != nil {
		m.mentionRoles = cloneIDs(*update.MentionRoles)
	}
	if update.Attachments != nil {
		m.attachments = append([]discord.Attachment(nil), (*update.Attachments)...)
	}
	if update.Embeds != nil {
		m.embeds = append([]discord.Embed(nil), (*update.Embeds)...)
	}
	if update.Flags != nil {
		m.flags = *update.Flags
	}
}

// Reactions returns a copy of the reaction list in insertion order.
func (m *CachedMessage) Reactions() []Reaction {
	out := make([]Reaction, len(m.reactions))
	for idx, reaction := range m.reactions {
		out[idx] = reaction.clone()
	}

	return out
}

// AddReaction appends a reaction for a new emoji.
func (m *CachedMessage) AddReaction(reaction Reaction) {
	m.reactions = append(m.reactions, reaction.clone())
}

// SetReaction replaces the reaction at idx.
func (m *CachedMessage) SetReaction(idx int, reaction Reaction) {
	m.reactions[idx] = reaction.clone()
}

// RemoveReaction drops the reaction at idx, keeping the order of the rest.
func (m *CachedMessage) RemoveReaction(idx int) {
	m.reactions = append(m.reactions[:idx:idx], m.reactions[idx+1:]...)
}

// RetainReactions keeps only the reactions keep accepts.
func (m *CachedMessage) RetainReactions(keep func(Reaction) bool) {
	kept := make([]Reaction, 0, len(m.reactions))
	for _, reaction := range m.reactions {
		if keep(reaction) {
			kept = append(kept, reaction)
		}
	}
	m.reactions = kept
}

// ClearReactions drops every reaction.
func (m *CachedMessage) ClearReactions() {
	m.reactions = nil
}

// Clone returns a copy safe to mutate.
func (m *CachedMessage) Clone() Message {
	cloned := *m
	cloned.mentions = cloneIDs(m.mentions)
	cloned.mentionRoles = cloneIDs(m.mentionRoles)
	cloned.attachments = append([]discord.Attachment(nil), m.attachments...)
	cloned.embeds = append([]discord.Embed(nil), m.embeds...)
	cloned.stickerItems = append([]discord.StickerItem(nil), m.stickerItems...)
	cloned.reactions = m.Reactions()
	return &cloned
}

func userIDs(users []discord.User) []discord.ID {
	if len(users) == 0 {
		return nil
	}

	ids := make([]discord.ID, len(users))
	for idx, user := range users {
		ids[idx] = user.ID
	}

	return ids
}
