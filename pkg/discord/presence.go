package discord

// Status is a user's online status.
type Status string

const (
	// StatusOnline is the online status.
	StatusOnline Status = "online"
	// StatusIdle is the idle status.
	StatusIdle Status = "idle"
	// StatusDND is the do-not-disturb status.
	StatusDND Status = "dnd"
	// StatusInvisible is reported for invisible users.
	StatusInvisible Status = "invisible"
	// StatusOffline is the offline status.
	StatusOffline Status = "offline"
)

// Activity is one entry of a presence's activity list.
type Activity struct {
	Name    string
	Kind    uint8
	URL     *string
	State   *string
	Details *string
}

// ClientStatus is the per-platform status of a user.
type ClientStatus struct {
	Desktop Status
	Mobile  Status
	Web     Status
}

// PresenceUser is either a full user or only an id.
type PresenceUser struct {
	ID   ID
	User *User
}

// Presence is a user's status within one guild.
type Presence struct {
	GuildID      ID
	User         PresenceUser
	Status       Status
	Activities   []Activity
	ClientStatus ClientStatus
}

// UserID returns the id of the user this presence belongs to.
func (p Presence) UserID() ID {
	if p.User.User != nil {
		return p.User.User.ID
	}

	return p.User.ID
}
