package config

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"

	"wellquest/internal/engine"
)

// Config is the static input data WellQuest runs against: the daily quest
// catalog, avatar catalog and leaderboard peers, plus the db location.
// Every section is optional; missing sections fall back to the built-in
// seed data.
type Config struct {
	DB      DBConfig        `toml:"db"`
	Quests  []engine.Quest  `toml:"quests"`
	Avatars []engine.Avatar `toml:"avatars"`
	Peers   []engine.Peer   `toml:"peers"`
}

type DBConfig struct {
	Path string `toml:"path"`
}

// Load reads the config at path. An absent file is not an error: the
// built-in defaults apply.
func Load(path string) (*Config, error) {
	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, fmt.Errorf("failed to open config: %w", err)
	}
	defer file.Close()

	var cfg Config
	if err = toml.NewDecoder(file).Decode(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	def := Default()
	if len(cfg.Quests) == 0 {
		cfg.Quests = def.Quests
	}
	if len(cfg.Avatars) == 0 {
		cfg.Avatars = def.Avatars
	}
	if len(cfg.Peers) == 0 {
		cfg.Peers = def.Peers
	}
	return &cfg, nil
}

// Catalog bundles the static sections for the engine.
func (c *Config) Catalog() engine.Catalog {
	return engine.Catalog{
		Quests:  c.Quests,
		Avatars: c.Avatars,
		Peers:   c.Peers,
	}
}

// Default returns the built-in seed data.
func Default() *Config {
	return &Config{
		Quests: []engine.Quest{
			{ID: "walk10", Title: "Go for a 10-minute walk", XP: 15, Tag: "movement"},
			{ID: "grat1", Title: "Write one good thing", XP: 10, Tag: "gratitude"},
			{ID: "breathe", Title: "Try a 3-minute breathing", XP: 15, Tag: "breathing"},
			{ID: "text", Title: "Text a friend hello", XP: 12, Tag: "connection"},
			{ID: "water", Title: "Drink a tall glass of water", XP: 8, Tag: engine.TagHydration},
			{ID: "sleep", Title: "Lights out 30 min earlier", XP: 20, Tag: "sleep"},
			{ID: "focus5", Title: "5-minute focus sprint", XP: 10, Tag: "focus"},
		},
		Avatars: []engine.Avatar{
			{ID: "sprout", Name: "Sprout", MinLevel: 1, Emoji: "🌱"},
			{ID: "spark", Name: "Spark", MinLevel: 3, Emoji: "✨"},
			{ID: "ranger", Name: "Ranger", MinLevel: 5, Emoji: "🏹"},
			{ID: "guardian", Name: "Guardian", MinLevel: 8, Emoji: "🛡️"},
			{ID: "phoenix", Name: "Phoenix", MinLevel: 12, Emoji: "🔥"},
		},
		Peers: []engine.Peer{
			{Name: "Aria", XP: 620},
			{Name: "Jay", XP: 540},
			{Name: "Sam", XP: 480},
			{Name: "Mina", XP: 430},
		},
	}
}
