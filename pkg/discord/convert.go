package discord

import (
	"fmt"
	"time"

	"github.com/bwmarrin/discordgo"
)

// converter builds snapshots from discordgo payloads. The first failure is
// kept in err; later conversions still run but their result is discarded.
type converter struct {
	err error
}

func (c *converter) fail(err error) {
	if c.err == nil {
		c.err = err
	}
}

// need records ErrMissingField for field unless ok.
func (c *converter) need(ok bool, field string) bool {
	if !ok {
		c.fail(fmt.Errorf("%s: %w", field, ErrMissingField))
	}

	return ok
}

func (c *converter) id(raw string) ID {
	id, err := ParseID(raw)
	if err != nil {
		c.fail(err)
	}

	return id
}

func (c *converter) optionalID(raw string) *ID {
	if raw == "" {
		return nil
	}
	id := c.id(raw)

	return &id
}

func (c *converter) ids(raw []string) []ID {
	if len(raw) == 0 {
		return nil
	}
	ids := make([]ID, 0, len(raw))
	for _, value := range raw {
		ids = append(ids, c.id(value))
	}

	return ids
}

func (c *converter) timestamp(raw string) *time.Time {
	if raw == "" {
		return nil
	}
	parsed, err := time.Parse(time.RFC3339Nano, raw)
	if err != nil {
		c.fail(fmt.Errorf("parse timestamp %q: %w", raw, err))
		return nil
	}

	return &parsed
}

func optionalString(value string) *string {
	if value == "" {
		return nil
	}

	return &value
}

func optionalTime(value time.Time) *time.Time {
	if value.IsZero() {
		return nil
	}

	return &value
}

func optionalUint32(value int) *uint32 {
	if value <= 0 {
		return nil
	}
	converted := uint32(value)

	return &converted
}

func optionalPermissions(value int64) *Permissions {
	if value == 0 {
		return nil
	}
	converted := Permissions(value)

	return &converted
}

func (c *converter) user(user *discordgo.User) User {
	if !c.need(user != nil, "user") {
		return User{}
	}

	return User{
		ID:            c.id(user.ID),
		Name:          user.Username,
		Discriminator: user.Discriminator,
		GlobalName:    optionalString(user.GlobalName),
		Avatar:        optionalString(user.Avatar),
		Banner:        optionalString(user.Banner),
		AccentColor:   optionalUint32(user.AccentColor),
		Bot:           user.Bot,
		System:        user.System,
		PublicFlags:   uint64(user.PublicFlags),
	}
}

func (c *converter) optionalUser(user *discordgo.User) *User {
	if user == nil {
		return nil
	}
	converted := c.user(user)

	return &converted
}

func (c *converter) users(users []*discordgo.User) []User {
	if len(users) == 0 {
		return nil
	}
	converted := make([]User, 0, len(users))
	for _, user := range users {
		converted = append(converted, c.user(user))
	}

	return converted
}

func (c *converter) currentUser(user *discordgo.User) CurrentUser {
	if !c.need(user != nil, "user") {
		return CurrentUser{}
	}
	verified := user.Verified

	return CurrentUser{
		ID:            c.id(user.ID),
		Name:          user.Username,
		Discriminator: user.Discriminator,
		Avatar:        optionalString(user.Avatar),
		Bot:           user.Bot,
		MFAEnabled:    user.MFAEnabled,
		Verified:      &verified,
		Locale:        optionalString(user.Locale),
		Flags:         uint64(user.Flags),
	}
}

func (c *converter) member(member *discordgo.Member) Member {
	if !c.need(member != nil, "member") {
		return Member{}
	}

	return Member{
		User:                       c.user(member.User),
		Nick:                       optionalString(member.Nick),
		Avatar:                     optionalString(member.Avatar),
		Roles:                      c.ids(member.Roles),
		JoinedAt:                   optionalTime(member.JoinedAt),
		PremiumSince:               member.PremiumSince,
		CommunicationDisabledUntil: member.CommunicationDisabledUntil,
		Deaf:                       member.Deaf,
		Mute:                       member.Mute,
		Pending:                    member.Pending,
		Flags:                      uint64(member.Flags),
	}
}

func (c *converter) optionalMember(member *discordgo.Member) *Member {
	if member == nil {
		return nil
	}
	converted := c.member(member)

	return &converted
}

func (c *converter) members(members []*discordgo.Member) []Member {
	converted := make([]Member, 0, len(members))
	for _, member := range members {
		converted = append(converted, c.member(member))
	}

	return converted
}

func (c *converter) partialMember(member *discordgo.Member) *PartialMember {
	if member == nil {
		return nil
	}

	return &PartialMember{
		User:                       c.optionalUser(member.User),
		Nick:                       optionalString(member.Nick),
		Avatar:                     optionalString(member.Avatar),
		Roles:                      c.ids(member.Roles),
		JoinedAt:                   optionalTime(member.JoinedAt),
		PremiumSince:               member.PremiumSince,
		CommunicationDisabledUntil: member.CommunicationDisabledUntil,
		Deaf:                       member.Deaf,
		Mute:                       member.Mute,
		Flags:                      uint64(member.Flags),
		Permissions:                optionalPermissions(member.Permissions),
	}
}

func (c *converter) interactionMember(member *discordgo.Member) InteractionMember {
	if !c.need(member != nil, "resolved member") {
		return InteractionMember{}
	}

	return InteractionMember{
		Nick:                       optionalString(member.Nick),
		Avatar:                     optionalString(member.Avatar),
		Roles:                      c.ids(member.Roles),
		JoinedAt:                   optionalTime(member.JoinedAt),
		PremiumSince:               member.PremiumSince,
		CommunicationDisabledUntil: member.CommunicationDisabledUntil,
		Pending:                    member.Pending,
		Flags:                      uint64(member.Flags),
		Permissions:                Permissions(member.Permissions),
	}
}

func (c *converter) role(role *discordgo.Role) Role {
	if !c.need(role != nil, "role") {
		return Role{}
	}

	return Role{
		ID:          c.id(role.ID),
		Name:        role.Name,
		Color:       uint32(role.Color),
		Hoist:       role.Hoist,
		Icon:        optionalString(role.Icon),
		Managed:     role.Managed,
		Mentionable: role.Mentionable,
		Permissions: Permissions(role.Permissions),
		Position:    int64(role.Position),
	}
}

func (c *converter) roles(roles []*discordgo.Role) []Role {
	converted := make([]Role, 0, len(roles))
	for _, role := range roles {
		converted = append(converted, c.role(role))
	}

	return converted
}

func (c *converter) channel(channel *discordgo.Channel) Channel {
	if !c.need(channel != nil, "channel") {
		return Channel{}
	}

	converted := Channel{
		ID:               c.id(channel.ID),
		Kind:             ChannelType(channel.Type),
		GuildID:          c.optionalID(channel.GuildID),
		Name:             optionalString(channel.Name),
		Topic:            optionalString(channel.Topic),
		ParentID:         c.optionalID(channel.ParentID),
		OwnerID:          c.optionalID(channel.OwnerID),
		NSFW:             channel.NSFW,
		LastMessageID:    c.optionalID(channel.LastMessageID),
		LastPinTimestamp: channel.LastPinTimestamp,
		Bitrate:          optionalUint32(channel.Bitrate),
		UserLimit:        optionalUint32(channel.UserLimit),
		RateLimitPerUser: optionalUint32(channel.RateLimitPerUser),
		Recipients:       c.users(channel.Recipients),
	}
	if converted.Kind.IsGuild() {
		position := int64(channel.Position)
		converted.Position = &position
	}
	for _, overwrite := range channel.PermissionOverwrites {
		if overwrite == nil {
			continue
		}
		converted.PermissionOverwrites = append(converted.PermissionOverwrites, PermissionOverwrite{
			ID:    c.id(overwrite.ID),
			Kind:  uint8(overwrite.Type),
			Allow: Permissions(overwrite.Allow),
			Deny:  Permissions(overwrite.Deny),
		})
	}
	if metadata := channel.ThreadMetadata; metadata != nil {
		converted.ThreadMetadata = &ThreadMetadata{
			Archived:            metadata.Archived,
			AutoArchiveDuration: metadata.AutoArchiveDuration,
			ArchiveTimestamp:    optionalTime(metadata.ArchiveTimestamp),
			Locked:              metadata.Locked,
		}
	}

	return converted
}

func (c *converter) channels(channels []*discordgo.Channel) []Channel {
	converted := make([]Channel, 0, len(channels))
	for _, channel := range channels {
		converted = append(converted, c.channel(channel))
	}

	return converted
}

func (c *converter) emoji(emoji *discordgo.Emoji) Emoji {
	if !c.need(emoji != nil, "emoji") {
		return Emoji{}
	}

	return Emoji{
		ID:            c.id(emoji.ID),
		Name:          emoji.Name,
		Animated:      emoji.Animated,
		Available:     emoji.Available,
		Managed:       emoji.Managed,
		RequireColons: emoji.RequireColons,
		Roles:         c.ids(emoji.Roles),
		User:          c.optionalUser(emoji.User),
	}
}

func (c *converter) emojis(emojis []*discordgo.Emoji) []Emoji {
	converted := make([]Emoji, 0, len(emojis))
	for _, emoji := range emojis {
		converted = append(converted, c.emoji(emoji))
	}

	return converted
}

// reactionType keeps unicode emojis, which carry no id, by name.
func (c *converter) reactionType(emoji discordgo.Emoji) ReactionType {
	return ReactionType{
		ID:       c.optionalID(emoji.ID),
		Name:     emoji.Name,
		Animated: emoji.Animated,
	}
}

func (c *converter) sticker(sticker *discordgo.Sticker) Sticker {
	if !c.need(sticker != nil, "sticker") {
		return Sticker{}
	}

	converted := Sticker{
		ID:          c.id(sticker.ID),
		GuildID:     c.optionalID(sticker.GuildID),
		PackID:      c.optionalID(sticker.PackID),
		Name:        sticker.Name,
		Description: optionalString(sticker.Description),
		Tags:        sticker.Tags,
		Kind:        uint8(sticker.Type),
		FormatType:  uint8(sticker.FormatType),
		Available:   sticker.Available,
		User:        c.optionalUser(sticker.User),
	}
	if sticker.SortValue > 0 {
		sortValue := uint64(sticker.SortValue)
		converted.SortValue = &sortValue
	}

	return converted
}

func (c *converter) stickers(stickers []*discordgo.Sticker) []Sticker {
	converted := make([]Sticker, 0, len(stickers))
	for _, sticker := range stickers {
		converted = append(converted, c.sticker(sticker))
	}

	return converted
}

func (c *converter) integration(guildID string, integration *discordgo.Integration) GuildIntegration {
	if !c.need(integration != nil, "integration") {
		return GuildIntegration{}
	}
	syncing := integration.Syncing

	return GuildIntegration{
		ID:      c.id(integration.ID),
		GuildID: c.optionalID(guildID),
		Name:    integration.Name,
		Kind:    integration.Type,
		Enabled: integration.Enabled,
		Syncing: &syncing,
		RoleID:  c.optionalID(integration.RoleID),
		User:    c.optionalUser(integration.User),
		Account: IntegrationAccount{
			ID:   integration.Account.ID,
			Name: integration.Account.Name,
		},
	}
}

func (c *converter) stageInstance(stage *discordgo.StageInstance) StageInstance {
	if !c.need(stage != nil, "stage instance") {
		return StageInstance{}
	}

	return StageInstance{
		ID:                    c.id(stage.ID),
		GuildID:               c.id(stage.GuildID),
		ChannelID:             c.id(stage.ChannelID),
		Topic:                 stage.Topic,
		PrivacyLevel:          uint8(stage.PrivacyLevel),
		GuildScheduledEventID: c.optionalID(stage.GuildScheduledEventID),
	}
}

func (c *converter) stageInstances(stages []*discordgo.StageInstance) []StageInstance {
	converted := make([]StageInstance, 0, len(stages))
	for _, stage := range stages {
		converted = append(converted, c.stageInstance(stage))
	}

	return converted
}

func (c *converter) voiceState(state *discordgo.VoiceState) VoiceState {
	if !c.need(state != nil, "voice state") {
		return VoiceState{}
	}

	return VoiceState{
		GuildID:                 c.optionalID(state.GuildID),
		ChannelID:               c.optionalID(state.ChannelID),
		UserID:                  c.id(state.UserID),
		Member:                  c.optionalMember(state.Member),
		SessionID:               state.SessionID,
		Deaf:                    state.Deaf,
		Mute:                    state.Mute,
		SelfDeaf:                state.SelfDeaf,
		SelfMute:                state.SelfMute,
		SelfStream:              state.SelfStream,
		SelfVideo:               state.SelfVideo,
		Suppress:                state.Suppress,
		RequestToSpeakTimestamp: state.RequestToSpeakTimestamp,
	}
}

func (c *converter) voiceStates(states []*discordgo.VoiceState) []VoiceState {
	converted := make([]VoiceState, 0, len(states))
	for _, state := range states {
		converted = append(converted, c.voiceState(state))
	}

	return converted
}

// presence keeps the full user only when the payload carried more than an id.
// guildID is empty for presences nested in a guild or member chunk.
func (c *converter) presence(guildID string, presence *discordgo.Presence) Presence {
	if !c.need(presence != nil && presence.User != nil, "presence user") {
		return Presence{}
	}

	converted := Presence{
		Status: Status(presence.Status),
		ClientStatus: ClientStatus{
			Desktop: Status(presence.ClientStatus.Desktop),
			Mobile:  Status(presence.ClientStatus.Mobile),
			Web:     Status(presence.ClientStatus.Web),
		},
	}
	if guildID != "" {
		converted.GuildID = c.id(guildID)
	}
	converted.User.ID = c.id(presence.User.ID)
	if presence.User.Username != "" {
		converted.User.User = c.optionalUser(presence.User)
	}
	for _, activity := range presence.Activities {
		if activity == nil {
			continue
		}
		converted.Activities = append(converted.Activities, Activity{
			Name:    activity.Name,
			Kind:    uint8(activity.Type),
			URL:     optionalString(activity.URL),
			State:   optionalString(activity.State),
			Details: optionalString(activity.Details),
		})
	}

	return converted
}

func (c *converter) presences(presences []*discordgo.Presence) []Presence {
	converted := make([]Presence, 0, len(presences))
	for _, presence := range presences {
		converted = append(converted, c.presence("", presence))
	}

	return converted
}

func memberCount(guild *discordgo.Guild, fields Fields) *uint64 {
	if !fields.Has("member_count") {
		return nil
	}
	count := uint64(guild.MemberCount)

	return &count
}

func (c *converter) guild(guild *discordgo.Guild, fields Fields) Guild {
	return Guild{
		ID:                c.id(guild.ID),
		Name:              guild.Name,
		Icon:              optionalString(guild.Icon),
		OwnerID:           c.id(guild.OwnerID),
		Permissions:       optionalPermissions(guild.Permissions),
		MemberCount:       memberCount(guild, fields),
		Large:             guild.Large,
		Unavailable:       guild.Unavailable,
		Description:       optionalString(guild.Description),
		PreferredLocale:   guild.PreferredLocale,
		VerificationLevel: uint8(guild.VerificationLevel),
		PremiumTier:       uint8(guild.PremiumTier),
		Channels:          c.channels(guild.Channels),
		Threads:           c.channels(guild.Threads),
		Members:           c.members(guild.Members),
		Roles:             c.roles(guild.Roles),
		Emojis:            c.emojis(guild.Emojis),
		Stickers:          c.stickers(guild.Stickers),
		Presences:         c.presences(guild.Presences),
		VoiceStates:       c.voiceStates(guild.VoiceStates),
		StageInstances:    c.stageInstances(guild.StageInstances),
	}
}

func (c *converter) partialGuild(guild *discordgo.Guild, fields Fields) PartialGuild {
	return PartialGuild{
		ID:          c.id(guild.ID),
		Name:        guild.Name,
		Icon:        optionalString(guild.Icon),
		OwnerID:     c.id(guild.OwnerID),
		Permissions: optionalPermissions(guild.Permissions),
		MemberCount: memberCount(guild, fields),
		Description: optionalString(guild.Description),
		Roles:       c.roles(guild.Roles),
		Emojis:      c.emojis(guild.Emojis),
	}
}

func (c *converter) attachments(attachments []*discordgo.MessageAttachment) []Attachment {
	if len(attachments) == 0 {
		return nil
	}
	converted := make([]Attachment, 0, len(attachments))
	for _, attachment := range attachments {
		if attachment == nil {
			continue
		}
		converted = append(converted, Attachment{
			ID:          c.id(attachment.ID),
			Filename:    attachment.Filename,
			ContentType: optionalString(attachment.ContentType),
			Size:        uint64(attachment.Size),
			URL:         attachment.URL,
		})
	}

	return converted
}

func embeds(embeds []*discordgo.MessageEmbed) []Embed {
	if len(embeds) == 0 {
		return nil
	}
	converted := make([]Embed, 0, len(embeds))
	for _, embed := range embeds {
		if embed == nil {
			continue
		}
		converted = append(converted, Embed{
			Title:       optionalString(embed.Title),
			Description: optionalString(embed.Description),
			URL:         optionalString(embed.URL),
			Color:       optionalUint32(embed.Color),
		})
	}

	return converted
}

func (c *converter) message(message *discordgo.Message) Message {
	if !c.need(message != nil, "message") {
		return Message{}
	}

	converted := Message{
		ID:              c.id(message.ID),
		ChannelID:       c.id(message.ChannelID),
		GuildID:         c.optionalID(message.GuildID),
		Author:          c.user(message.Author),
		Member:          c.partialMember(message.Member),
		Content:         message.Content,
		Timestamp:       message.Timestamp,
		EditedTimestamp: message.EditedTimestamp,
		Kind:            uint8(message.Type),
		TTS:             message.TTS,
		Pinned:          message.Pinned,
		MentionEveryone: message.MentionEveryone,
		Mentions:        c.users(message.Mentions),
		MentionRoles:    c.ids(message.MentionRoles),
		Attachments:     c.attachments(message.Attachments),
		Embeds:          embeds(message.Embeds),
		WebhookID:       c.optionalID(message.WebhookID),
		Flags:           uint64(message.Flags),
	}
	for _, reaction := range message.Reactions {
		if reaction == nil || reaction.Emoji == nil {
			continue
		}
		converted.Reactions = append(converted.Reactions, Reaction{
			Emoji: c.reactionType(*reaction.Emoji),
			Count: reaction.Count,
			Me:    reaction.Me,
		})
	}
	for _, item := range message.StickerItems {
		if item == nil {
			continue
		}
		converted.StickerItems = append(converted.StickerItems, StickerItem{
			ID:         c.id(item.ID),
			Name:       item.Name,
			FormatType: uint8(item.FormatType),
		})
	}
	if reference := message.MessageReference; reference != nil {
		converted.MessageReference = &MessageReference{
			MessageID: c.optionalID(reference.MessageID),
			ChannelID: c.optionalID(reference.ChannelID),
			GuildID:   c.optionalID(reference.GuildID),
		}
	}

	return converted
}

// messageUpdate leaves every field the raw payload omitted nil.
func (c *converter) messageUpdate(message *discordgo.Message, fields Fields) MessageUpdate {
	update := MessageUpdate{
		ID:              c.id(message.ID),
		ChannelID:       c.id(message.ChannelID),
		GuildID:         c.optionalID(message.GuildID),
		EditedTimestamp: message.EditedTimestamp,
	}
	if fields.Has("author") {
		update.Author = c.optionalUser(message.Author)
	}
	if fields.Has("content") {
		update.Content = &message.Content
	}
	if fields.Has("pinned") {
		update.Pinned = &message.Pinned
	}
	if fields.Has("mention_everyone") {
		update.MentionEveryone = &message.MentionEveryone
	}
	if fields.Has("mentions") {
		mentions := c.users(message.Mentions)
		update.Mentions = &mentions
	}
	if fields.Has("mention_roles") {
		roles := c.ids(message.MentionRoles)
		update.MentionRoles = &roles
	}
	if fields.Has("attachments") {
		attachments := c.attachments(message.Attachments)
		update.Attachments = &attachments
	}
	if fields.Has("embeds") {
		converted := embeds(message.Embeds)
		update.Embeds = &converted
	}
	if fields.Has("flags") {
		flags := uint64(message.Flags)
		update.Flags = &flags
	}

	return update
}

func (c *converter) gatewayReaction(reaction *discordgo.MessageReaction, member *discordgo.Member) GatewayReaction {
	if !c.need(reaction != nil, "reaction") {
		return GatewayReaction{}
	}

	return GatewayReaction{
		UserID:    c.id(reaction.UserID),
		ChannelID: c.id(reaction.ChannelID),
		MessageID: c.id(reaction.MessageID),
		GuildID:   c.optionalID(reaction.GuildID),
		Member:    c.optionalMember(member),
		Emoji:     c.reactionType(reaction.Emoji),
	}
}

func (c *converter) interaction(interaction *discordgo.Interaction) Interaction {
	if !c.need(interaction != nil, "interaction") {
		return Interaction{}
	}

	converted := Interaction{
		ID:            c.id(interaction.ID),
		ApplicationID: c.id(interaction.AppID),
		Kind:          uint8(interaction.Type),
		GuildID:       c.optionalID(interaction.GuildID),
		ChannelID:     c.optionalID(interaction.ChannelID),
		Member:        c.partialMember(interaction.Member),
		User:          c.optionalUser(interaction.User),
	}
	data, ok := interaction.Data.(discordgo.ApplicationCommandInteractionData)
	if !ok {
		return converted
	}

	converted.Data = &InteractionData{ID: c.id(data.ID), Name: data.Name}
	if resolved := data.Resolved; resolved != nil {
		converted.Data.Resolved = &ResolvedData{
			Users:   make(map[ID]User, len(resolved.Users)),
			Members: make(map[ID]InteractionMember, len(resolved.Members)),
		}
		for key, user := range resolved.Users {
			converted.Data.Resolved.Users[c.id(key)] = c.user(user)
		}
		for key, member := range resolved.Members {
			converted.Data.Resolved.Members[c.id(key)] = c.interactionMember(member)
		}
	}

	return converted
}
