package cache

import (
	"fmt"
	"strings"
)

// ResourceType is a set of entity kinds the cache stores.
type ResourceType uint64

const (
	// ResourceGuild caches guilds.
	ResourceGuild ResourceType = 1 << iota
	// ResourceChannel caches channels and threads.
	ResourceChannel
	// ResourceRole caches roles.
	ResourceRole
	// ResourceMember caches every member.
	ResourceMember
	// ResourceMemberCurrent caches only the current user's members.
	ResourceMemberCurrent
	// ResourcePresence caches presences.
	ResourcePresence
	// ResourceVoiceState caches voice states.
	ResourceVoiceState
	// ResourceMessage caches recent messages.
	ResourceMessage
	// ResourceReaction applies reaction events to cached messages.
	ResourceReaction
	// ResourceUser caches users.
	ResourceUser
	// ResourceUserCurrent caches the current user.
	ResourceUserCurrent
	// ResourceIntegration caches guild integrations.
	ResourceIntegration
	// ResourceSticker caches guild stickers.
	ResourceSticker
	// ResourceEmoji caches guild emojis.
	ResourceEmoji
	// ResourceStageInstance caches stage instances.
	ResourceStageInstance

	// ResourceAll enables every kind.
	ResourceAll = ResourceGuild | ResourceChannel | ResourceRole | ResourceMember |
		ResourceMemberCurrent | ResourcePresence | ResourceVoiceState | ResourceMessage |
		ResourceReaction | ResourceUser | ResourceUserCurrent | ResourceIntegration |
		ResourceSticker | ResourceEmoji | ResourceStageInstance
)

var resourceNames = []struct {
	name string
	kind ResourceType
}{
	{"guild", ResourceGuild},
	{"channel", ResourceChannel},
	{"role", ResourceRole},
	{"member", ResourceMember},
	{"member_current", ResourceMemberCurrent},
	{"presence", ResourcePresence},
	{"voice_state", ResourceVoiceState},
	{"message", ResourceMessage},
	{"reaction", ResourceReaction},
	{"user", ResourceUser},
	{"user_current", ResourceUserCurrent},
	{"integration", ResourceIntegration},
	{"sticker", ResourceSticker},
	{"emoji", ResourceEmoji},
	{"stage_instance", ResourceStageInstance},
}

// Contains reports whether every kind in other is enabled.
func (r ResourceType) Contains(other ResourceType) bool {
	return r&other == other
}

// String renders the set as a "|"-joined list of names.
func (r ResourceType) String() string {
	if r == 0 {
		return "none"
	}
	if r == ResourceAll {
		return "all"
	}

	names := make([]string, 0, len(resourceNames))
	for _, entry := range resourceNames {
		if r.Contains(entry.kind) {
			names = append(names, entry.name)
		}
	}

	return strings.Join(names, "|")
}

// ParseResourceType resolves one kind name, or "all" / "none".
func ParseResourceType(name string) (ResourceType, error) {
	normalized := strings.ToLower(strings.TrimSpace(name))
	switch normalized {
	case "all":
		return ResourceAll, nil
	case "none":
		return 0, nil
	}
	for _, entry := range resourceNames {
		if entry.name == normalized {
			return entry.kind, nil
		}
	}

	return 0, fmt.Errorf("parse resource type %q: %w", name, ErrUnknownResourceType)
}

// ParseResourceTypes resolves a list of kind names into one set.
func ParseResourceTypes(names []string) (ResourceType, error) {
	var kinds ResourceType
	for _, name := range names {
		kind, err := ParseResourceType(name)
		if err != nil {
			return 0, err
		}
		kinds |= kind
	}

	return kinds, nil
}
