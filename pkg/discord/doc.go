// Package discord defines the entity snapshots, partial payloads and change
// events consumed by the cache.
//
// Gateway payloads are decoded into github.com/bwmarrin/discordgo structs;
// FromGateway converts them into these types, parsing snowflakes into ID.
// The package performs no I/O.
package discord
