package discord

import "time"

// Attachment is a file attached to a message.
type Attachment struct {
	ID          ID
	Filename    string
	ContentType *string
	Size        uint64
	URL         string
}

// Embed is a rich embed attached to a message.
type Embed struct {
	Title       *string
	Description *string
	URL         *string
	Color       *uint32
}

// StickerItem is the minimal sticker reference carried by messages.
type StickerItem struct {
	ID         ID
	Name       string
	FormatType uint8
}

// ReactionType identifies the emoji of a reaction: custom emojis by id,
// unicode emojis by name.
type ReactionType struct {
	ID       *ID
	Name     string
	Animated bool
}

// Same reports whether two reaction types denote the same emoji.
func (r ReactionType) Same(other ReactionType) bool {
	if r.ID != nil || other.ID != nil {
		return r.ID != nil && other.ID != nil && *r.ID == *other.ID
	}

	return r.Name == other.Name
}

// IsCustom reports whether the reaction uses a guild emoji.
func (r ReactionType) IsCustom() bool {
	return r.ID != nil
}

// Reaction is an aggregated reaction on a message payload.
type Reaction struct {
	Emoji ReactionType
	Count int
	Me    bool
}

// MessageReference points at the message being replied to or crossposted.
type MessageReference struct {
	MessageID *ID
	ChannelID *ID
	GuildID   *ID
}

// Message is a full message snapshot.
type Message struct {
	ID               ID
	ChannelID        ID
	GuildID          *ID
	Author           User
	Member           *PartialMember
	Content          string
	Timestamp        time.Time
	EditedTimestamp  *time.Time
	Kind             uint8
	TTS              bool
	Pinned           bool
	MentionEveryone  bool
	Mentions         []User
	MentionRoles     []ID
	Attachments      []Attachment
	Embeds           []Embed
	Reactions        []Reaction
	StickerItems     []StickerItem
	WebhookID        *ID
	Flags            uint64
	MessageReference *MessageReference
}
