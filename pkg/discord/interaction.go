package discord

// ResolvedData holds users and members referenced by command options.
type ResolvedData struct {
	Users   map[ID]User
	Members map[ID]InteractionMember
}

// InteractionData is the command payload of an interaction.
type InteractionData struct {
	ID       ID
	Name     string
	Resolved *ResolvedData
}

// Interaction is an application command or component invocation.
//
// Member is set for guild invocations and User for direct messages.
type Interaction struct {
	ID            ID
	ApplicationID ID
	Kind          uint8
	GuildID       *ID
	ChannelID     *ID
	Member        *PartialMember
	User          *User
	Data          *InteractionData
}
