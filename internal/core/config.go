package core

import (
	"log/slog"
	"os"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/liveem/livem-core/internal/core/srv"
	"github.com/liveem/livem-core/pkg/sqlstore"
)

func MustLoadBaseConfig(path string) CoreConfig {
	if path == "" {
		return LoadBaseConfigFromENV()
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	var conf CoreConfig
	if err = toml.Unmarshal(raw, &conf); err != nil {
		panic(err)
	}
	return conf
}

func LoadBaseConfigFromENV() CoreConfig {
	var c CoreConfig
	c.FromENV()
	return c
}

type CoreConfig struct {
	Addr string `toml:"addr"`
	Log  Log    `toml:"log"`

	Sqlite sqlstore.ConnectConfig `toml:"sqlite"`

	// Timezone fixes the calendar used for day windows and streaks.
	// Empty means the process local zone, captured once at startup.
	Timezone string `toml:"timezone"`

	AI srv.AIConfig `toml:"ai"`

	Prompt Prompt `toml:"prompt"`
}

type Prompt struct {
	Review string `toml:"review"`
}

func (c *CoreConfig) FromENV() {
	c.Addr = os.Getenv("LIVEM_SERVICE_ADDRESS")
	c.Timezone = os.Getenv("LIVEM_TIMEZONE")
	c.Log.FromENV()
	c.Sqlite.DSN = os.Getenv("LIVEM_SQLITE_DSN")
	c.AI.FromENV()
}

type Log struct {
	Level string `toml:"level"`
	Path  string `toml:"path"`
}

func (l *Log) FromENV() {
	l.Level = os.Getenv("LIVEM_LOG_LEVEL")
	l.Path = os.Getenv("LIVEM_LOG_PATH")
}

func (l *Log) SlogLevel() slog.Level {
	switch strings.ToLower(l.Level) {
	case "info":
		return slog.LevelInfo
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelDebug
	}
}
