package discord

// User is a global user profile.
type User struct {
	ID            ID
	Name          string
	Discriminator string
	GlobalName    *string
	Avatar        *string
	Banner        *string
	AccentColor   *uint32
	Bot           bool
	System        bool
	PublicFlags   uint64
}

// Equal reports whether two profiles carry identical fields.
func (u User) Equal(other User) bool {
	return u.ID == other.ID &&
		u.Name == other.Name &&
		u.Discriminator == other.Discriminator &&
		equalPtr(u.GlobalName, other.GlobalName) &&
		equalPtr(u.Avatar, other.Avatar) &&
		equalPtr(u.Banner, other.Banner) &&
		equalPtr(u.AccentColor, other.AccentColor) &&
		u.Bot == other.Bot &&
		u.System == other.System &&
		u.PublicFlags == other.PublicFlags
}

// CurrentUser is the user the gateway session is authenticated as.
type CurrentUser struct {
	ID            ID
	Name          string
	Discriminator string
	Avatar        *string
	Bot           bool
	MFAEnabled    bool
	Verified      *bool
	Locale        *string
	Flags         uint64
}

func equalPtr[T comparable](a, b *T) bool {
	if a == nil || b == nil {
		return a == b
	}

	return *a == *b
}

func equalIDs(a, b []ID) bool {
	if len(a) != len(b) {
		return false
	}
	for idx := range a {
		if a[idx] != b[idx] {
			return false
		}
	}

	return true
}
