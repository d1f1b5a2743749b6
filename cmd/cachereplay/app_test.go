package main

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/klauspost/compress/zstd"

	"guildcache/internal/kernel"
	"guildcache/pkg/cache"
)

func writeConfigFile(t *testing.T, path string, contents string) {
	t.Helper()

	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		t.Fatalf("create config dir: %v", err)
	}
	if err := os.WriteFile(path, []byte(contents), 0o600); err != nil {
		t.Fatalf("write config file: %v", err)
	}
}

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    slog.Level
		wantErr bool
	}{
		{name: "debug", input: "debug", want: slog.LevelDebug},
		{name: "info", input: "info", want: slog.LevelInfo},
		{name: "warning", input: "warning", want: slog.LevelWarn},
		{name: "error", input: "ERROR", want: slog.LevelError},
		{name: "invalid", input: "trace", wantErr: true},
	}

	for _, testCase := range tests {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			got, err := parseLogLevel(testCase.input)
			if testCase.wantErr {
				if err == nil {
					t.Fatal("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != testCase.want {
				t.Fatalf("level = %v, want %v", got, testCase.want)
			}
		})
	}
}

func TestLoadConfig(t *testing.T) {
	want := appConfig{
		logLevel:         slog.LevelWarn,
		resourceTypes:    cache.ResourceGuild | cache.ResourceMember | cache.ResourceMessage,
		messageCacheSize: 25,
		workers:          8,
		buffer:           64,
		backpressure:     kernel.BackpressureDropNewest,
		closeTimeout:     5 * time.Second,
	}

	t.Run("jsonc with comments", func(t *testing.T) {
		configPath := filepath.Join(t.TempDir(), "cachereplay.jsonc")
		writeConfigFile(t, configPath, `{
			// quieter than the default
			"log_level": "warn",
			"resource_types": ["guild", "member", "message"],
			"message_cache_size": 25,
			"pipeline": {
				"workers": 8,
				"buffer": 64,
				"backpressure": "drop_newest",
				"close_timeout": "5s", /* trailing commas are accepted */
			},
		}`)

		got, err := loadConfig(configPath)
		if err != nil {
			t.Fatalf("loadConfig() error = %v", err)
		}
		if got != want {
			t.Fatalf("loadConfig() = %+v, want %+v", got, want)
		}
	})

	t.Run("yaml from environment", func(t *testing.T) {
		configPath := filepath.Join(t.TempDir(), "cachereplay.yaml")
		writeConfigFile(t, configPath, strings.Join([]string{
			"log_level: warn",
			"resource_types: [guild, member, message]",
			"message_cache_size: 25",
			"pipeline:",
			"  workers: 8",
			"  buffer: 64",
			"  backpressure: drop_newest",
			"  close_timeout: 5s",
		}, "\n"))
		t.Setenv(envConfigFile, configPath)

		got, err := loadConfig("")
		if err != nil {
			t.Fatalf("loadConfig() error = %v", err)
		}
		if got != want {
			t.Fatalf("loadConfig() = %+v, want %+v", got, want)
		}
	})

	t.Run("rejects invalid values", func(t *testing.T) {
		tests := []struct {
			name     string
			contents string
			wantErr  string
		}{
			{name: "resource type", contents: `{"resource_types":["webhook"]}`, wantErr: "resource_types"},
			{name: "cache size", contents: `{"message_cache_size":0}`, wantErr: "message_cache_size"},
			{name: "workers", contents: `{"pipeline":{"workers":-1}}`, wantErr: "pipeline.workers"},
			{name: "backpressure", contents: `{"pipeline":{"backpressure":"drop_oldest"}}`, wantErr: "pipeline.backpressure"},
			{name: "timeout", contents: `{"pipeline":{"close_timeout":"0s"}}`, wantErr: "pipeline.close_timeout"},
		}
		for _, testCase := range tests {
			configPath := filepath.Join(t.TempDir(), "cachereplay.json")
			writeConfigFile(t, configPath, testCase.contents)

			_, err := loadConfig(configPath)
			if err == nil || !strings.Contains(err.Error(), testCase.wantErr) {
				t.Fatalf("%s: loadConfig() error = %v, want mention of %s", testCase.name, err, testCase.wantErr)
			}
		}
	})
}

const replayFrames = `{"op":10,"d":{"heartbeat_interval":41250}}
{"op":0,"t":"READY","d":{"user":{"id":"5","username":"bot"},"guilds":[{"id":"1","unavailable":true}],"session_id":"s"}}
{"op":0,"t":"GUILD_CREATE","d":{"id":"1","name":"guild","owner_id":"3","member_count":1,"channels":[{"id":"2","type":0,"name":"general"}],"roles":[{"id":"1","name":"@everyone","position":0}],"members":[{"user":{"id":"3","username":"owner"},"roles":[]}]}}
{"op":0,"t":"MESSAGE_CREATE","d":{"id":"10","channel_id":"2","guild_id":"1","author":{"id":"3","username":"owner"},"content":"hi","timestamp":"2021-01-01T00:00:00Z"}}
{"op":0,"t":"MESSAGE_CREATE","d":{"id":"11","channel_id":"2","guild_id":"1","author":{"id":"3","username":"owner"},"content":"again","timestamp":"2021-01-01T00:00:01Z"}}
{"op":0,"t":"TYPING_START","d":{"channel_id":"2"}}
`

func testLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}

func TestReplay(t *testing.T) {
	cfg := defaultAppConfig()
	cfg.workers = 2

	stats, err := replay(context.Background(), testLogger(), cfg, strings.NewReader(replayFrames), 0)
	if err != nil {
		t.Fatalf("replay() error = %v", err)
	}

	want := cache.Stats{Guilds: 1, Channels: 1, Messages: 2, Members: 1, Roles: 1, Users: 1}
	if stats != want {
		t.Fatalf("replay() stats = %+v, want %+v", stats, want)
	}
}

func TestReplayReportsBadFrame(t *testing.T) {
	input := replayFrames + `{"op":0,"t":"GUILD_DELETE","d":{"id":"not-a-snowflake"}}` + "\n"

	_, err := replay(context.Background(), testLogger(), defaultAppConfig(), strings.NewReader(input), 0)
	if err == nil || !strings.Contains(err.Error(), "line 7") {
		t.Fatalf("replay() error = %v, want line 7", err)
	}
}

func TestOpenInputDecompressesZstd(t *testing.T) {
	var compressed bytes.Buffer
	encoder, err := zstd.NewWriter(&compressed)
	if err != nil {
		t.Fatalf("new zstd writer: %v", err)
	}
	if _, err := encoder.Write([]byte(replayFrames)); err != nil {
		t.Fatalf("compress frames: %v", err)
	}
	if err := encoder.Close(); err != nil {
		t.Fatalf("close zstd writer: %v", err)
	}

	inputPath := filepath.Join(t.TempDir(), "frames.jsonl.zst")
	if err := os.WriteFile(inputPath, compressed.Bytes(), 0o600); err != nil {
		t.Fatalf("write input: %v", err)
	}

	input, err := openInput(inputPath)
	if err != nil {
		t.Fatalf("openInput() error = %v", err)
	}
	defer func() {
		_ = input.Close()
	}()

	got, err := io.ReadAll(input)
	if err != nil {
		t.Fatalf("read input: %v", err)
	}
	if string(got) != replayFrames {
		t.Fatalf("decompressed input mismatch: got %d bytes, want %d", len(got), len(replayFrames))
	}
}

func TestParseFlags(t *testing.T) {
	got, err := parseFlags([]string{"--config", "a.yaml", "-i", "frames.zst", "--log-level", "debug", "--progress", "2s"})
	if err != nil {
		t.Fatalf("parseFlags() error = %v", err)
	}
	want := flags{configFile: "a.yaml", input: "frames.zst", logLevel: "debug", progress: 2 * time.Second}
	if got != want {
		t.Fatalf("parseFlags() = %+v, want %+v", got, want)
	}

	if _, err := parseFlags([]string{"--unknown"}); err == nil {
		t.Fatal("expected unknown flag to fail")
	}
}
