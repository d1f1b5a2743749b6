package gateway

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"

	"guildcache/pkg/discord"
)

const (
	initialFrameBuffer = 64 * 1024
	// maxFrameSize bounds one line; GUILD_CREATE for large guilds runs to
	// several megabytes.
	maxFrameSize = 64 * 1024 * 1024
)

// Reader streams newline-delimited gateway frames as typed events.
type Reader struct {
	scanner *bufio.Scanner
	line    int
	skipped int
}

// NewReader wraps r.
func NewReader(r io.Reader) *Reader {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, initialFrameBuffer), maxFrameSize)

	return &Reader{scanner: scanner}
}

// Next returns the next dispatch event, skipping blank lines and frames
// that DecodeFrame skips. It returns io.EOF after the last frame.
func (r *Reader) Next() (discord.Event, error) {
	for r.scanner.Scan() {
		r.line++
		frame := bytes.TrimSpace(r.scanner.Bytes())
		if len(frame) == 0 {
			continue
		}

		event, err := DecodeFrame(frame)
		if errors.Is(err, ErrSkipFrame) {
			r.skipped++
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", r.line, err)
		}

		return event, nil
	}
	if err := r.scanner.Err(); err != nil {
		return nil, fmt.Errorf("read frame after line %d: %w", r.line, err)
	}

	return nil, io.EOF
}

// Line returns the number of lines consumed so far.
func (r *Reader) Line() int {
	return r.line
}

// Skipped returns the number of frames skipped so far.
func (r *Reader) Skipped() int {
	return r.skipped
}
