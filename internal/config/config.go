// Package config reads settings from the environment, an optional .env
// file and command line flags, in increasing order of precedence.
package config

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	recordRepo "github.com/KirkDiggler/roulette/internal/repositories/record"
)

// Config holds every setting of the roulette command
type Config struct {
	LogLevel       string `env:"ROULETTE_LOG_LEVEL" envDefault:"warn"`
	LogDevelopment bool   `env:"ROULETTE_LOG_DEV"`

	// Seed replays a game when non-zero
	Seed    int64 `env:"ROULETTE_SEED"`
	SpinMin int   `env:"ROULETTE_SPIN_MIN" envDefault:"10"`
	SpinMax int   `env:"ROULETTE_SPIN_MAX" envDefault:"100"`

	// Mode, names and bullets are asked for when left empty
	Mode          string   `env:"ROULETTE_MODE"`
	PlayerOneName string   `env:"ROULETTE_PLAYER_ONE"`
	PlayerTwoName string   `env:"ROULETTE_PLAYER_TWO"`
	Lives         int      `env:"ROULETTE_LIVES" envDefault:"3"`
	Bullets       int      `env:"ROULETTE_BULLETS"`
	Targets       []string `env:"ROULETTE_TARGETS" envSeparator:","`

	FrameDelay  time.Duration `env:"ROULETTE_FRAME_DELAY" envDefault:"80ms"`
	ClearScreen bool          `env:"ROULETTE_CLEAR_SCREEN" envDefault:"true"`
	Sound       bool          `env:"ROULETTE_SOUND" envDefault:"true"`

	RecordStore   string `env:"ROULETTE_RECORD_STORE" envDefault:"file"`
	RecordDir     string `env:"ROULETTE_RECORD_DIR" envDefault:"records"`
	SQLitePath    string `env:"ROULETTE_SQLITE_PATH" envDefault:"roulette.db"`
	RedisAddr     string `env:"ROULETTE_REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPassword string `env:"ROULETTE_REDIS_PASSWORD"`
	RedisDB       int    `env:"ROULETTE_REDIS_DB"`

	// Flag only
	History      bool
	HistoryLimit int
	Show         string
}

// LoadDotEnv reads variables from the given files into the environment.
// Missing files are skipped and variables already set are kept.
func LoadDotEnv(paths ...string) error {
	for _, path := range paths {
		if err := godotenv.Load(path); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return fmt.Errorf("load %s: %w", path, err)
		}
	}
	return nil
}

// ParseEnv loads configuration from environment variables
func ParseEnv() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// Load reads .env and the environment
func Load() (*Config, error) {
	if err := LoadDotEnv(".env"); err != nil {
		return nil, err
	}
	return ParseEnv()
}

// ParseCLI overlays command line flags on cfg
func ParseCLI(cfg *Config, flags *flag.FlagSet, args []string) error {
	if cfg == nil {
		return errors.New("config cannot be nil")
	}

	var auto bool
	var targets string

	flags.BoolVar(&auto, "auto", false, "play an automatic game with random targets")
	flags.StringVar(&cfg.Mode, "mode", cfg.Mode, "interactive or automatic")
	flags.StringVar(&cfg.PlayerOneName, "p1", cfg.PlayerOneName, "name of the first player")
	flags.StringVar(&cfg.PlayerTwoName, "p2", cfg.PlayerTwoName, "name of the second player")
	flags.IntVar(&cfg.Lives, "lives", cfg.Lives, "lives per player")
	flags.IntVar(&cfg.Bullets, "bullets", cfg.Bullets, "bullets per round, 1-6")
	flags.StringVar(&targets, "targets", strings.Join(cfg.Targets, ","), "scripted targets, e.g. self,opponent")
	flags.Int64Var(&cfg.Seed, "seed", cfg.Seed, "random seed for a replayable game")
	flags.DurationVar(&cfg.FrameDelay, "frame-delay", cfg.FrameDelay, "pause between animation frames")
	flags.BoolVar(&cfg.ClearScreen, "clear", cfg.ClearScreen, "clear the terminal between frames")
	flags.BoolVar(&cfg.Sound, "sound", cfg.Sound, "ring the terminal bell on a gunshot")
	flags.StringVar(&cfg.RecordStore, "store", cfg.RecordStore, "record store: file, redis or sqlite")
	flags.StringVar(&cfg.RecordDir, "records", cfg.RecordDir, "directory of the file record store")
	flags.StringVar(&cfg.SQLitePath, "sqlite", cfg.SQLitePath, "path of the sqlite record store")
	flags.StringVar(&cfg.RedisAddr, "redis", cfg.RedisAddr, "address of the redis record store")
	flags.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "debug, info, warn or error")
	flags.BoolVar(&cfg.History, "history", false, "list saved games and exit")
	flags.IntVar(&cfg.HistoryLimit, "limit", 10, "how many saved games -history lists")
	flags.StringVar(&cfg.Show, "show", "", "print the saved game with this id and exit")

	if err := flags.Parse(args); err != nil {
		return err
	}

	if auto {
		cfg.Mode = "automatic"
	}
	cfg.Targets = splitList(targets)

	return cfg.Validate()
}

// Validate checks settings that would otherwise fail deep inside a game
func (c *Config) Validate() error {
	switch c.RecordStore {
	case recordRepo.StoreFile, recordRepo.StoreRedis, recordRepo.StoreSQLite:
	default:
		return fmt.Errorf("unknown record store %q", c.RecordStore)
	}
	if c.SpinMin < 1 || c.SpinMax < c.SpinMin {
		return fmt.Errorf("invalid spin range [%d, %d]", c.SpinMin, c.SpinMax)
	}
	if c.Lives < 0 {
		return fmt.Errorf("lives cannot be negative: %d", c.Lives)
	}
	if c.HistoryLimit < 0 {
		return fmt.Errorf("limit cannot be negative: %d", c.HistoryLimit)
	}
	return nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
