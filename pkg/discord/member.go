package discord

import "time"

// Member is a full guild member snapshot.
type Member struct {
	User                       User
	Nick                       *string
	Avatar                     *string
	Roles                      []ID
	JoinedAt                   *time.Time
	PremiumSince               *time.Time
	CommunicationDisabledUntil *time.Time
	Deaf                       bool
	Mute                       bool
	Pending                    bool
	Flags                      uint64
}

// PartialMember is the member fragment embedded in messages and interactions.
type PartialMember struct {
	User                       *User
	Nick                       *string
	Avatar                     *string
	Roles                      []ID
	JoinedAt                   *time.Time
	PremiumSince               *time.Time
	CommunicationDisabledUntil *time.Time
	Deaf                       bool
	Mute                       bool
	Flags                      uint64
	Permissions                *Permissions
}

// InteractionMember is a resolved member in interaction data. It carries no
// user object and no voice flags.
type InteractionMember struct {
	Nick                       *string
	Avatar                     *string
	Roles                      []ID
	JoinedAt                   *time.Time
	PremiumSince               *time.Time
	CommunicationDisabledUntil *time.Time
	Pending                    bool
	Flags                      uint64
	Permissions                Permissions
}

// EqualIDs reports whether two id lists hold the same ids in the same order.
func EqualIDs(a, b []ID) bool {
	return equalIDs(a, b)
}

// EqualTime reports whether two optional timestamps are both absent or equal.
func EqualTime(a, b *time.Time) bool {
	if a == nil || b == nil {
		return a == b
	}

	return a.Equal(*b)
}
