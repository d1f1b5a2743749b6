package discord

import "cmp"

// Role is a guild role snapshot.
type Role struct {
	ID          ID
	Name        string
	Color       uint32
	Hoist       bool
	Icon        *string
	Managed     bool
	Mentionable bool
	Permissions Permissions
	Position    int64
}

// Equal reports whether two role snapshots carry identical fields.
func (r Role) Equal(other Role) bool {
	return r.ID == other.ID &&
		r.Name == other.Name &&
		r.Color == other.Color &&
		r.Hoist == other.Hoist &&
		equalPtr(r.Icon, other.Icon) &&
		r.Managed == other.Managed &&
		r.Mentionable == other.Mentionable &&
		r.Permissions == other.Permissions &&
		r.Position == other.Position
}

// CompareRoles orders roles from highest to lowest: higher position first,
// and for equal positions the older (lower) id first.
func CompareRoles(aPosition int64, aID ID, bPosition int64, bID ID) int {
	if c := cmp.Compare(bPosition, aPosition); c != 0 {
		return c
	}

	return cmp.Compare(aID, bID)
}
