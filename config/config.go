package config

import (
	"fmt"
	"io"
	"strings"

	"trios/game"
	"trios/player"
	"trios/strategy"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	ModePlay       = "play"
	ModeTournament = "tournament"
)

type Config struct {
	Mode       string           `mapstructure:"mode"`
	Board      string           `mapstructure:"board"`
	Cards      string           `mapstructure:"cards"`
	Red        string           `mapstructure:"red"`
	Blue       string           `mapstructure:"blue"`
	Seed       uint64           `mapstructure:"seed"` // 0 picks a time-based seed
	Rules      string           `mapstructure:"rules"`
	Log        LogConfig        `mapstructure:"log"`
	Tournament TournamentConfig `mapstructure:"tournament"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"` // console or json
}

type TournamentConfig struct {
	Games      int      `mapstructure:"games"`
	Output     string   `mapstructure:"output"`
	Strategies []string `mapstructure:"strategies"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("mode", ModePlay)
	v.SetDefault("board", "docs/board.config")
	v.SetDefault("cards", "docs/cards.config")
	v.SetDefault("red", "human")
	v.SetDefault("blue", "corner")
	v.SetDefault("seed", 0)
	v.SetDefault("rules", "standard")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")
	v.SetDefault("tournament.games", 10)
	v.SetDefault("tournament.output", "experiments/results")
	v.SetDefault("tournament.strategies", strategy.Names())
}

// flags maps each command-line flag to its config key.
var flags = map[string]string{
	"mode":       "mode",
	"board":      "board",
	"cards":      "cards",
	"red":        "red",
	"blue":       "blue",
	"seed":       "seed",
	"rules":      "rules",
	"log-level":  "log.level",
	"log-format": "log.format",
	"games":      "tournament.games",
	"output":     "tournament.output",
	"strategies": "tournament.strategies",
}

func newFlagSet() *pflag.FlagSet {
	fs := pflag.NewFlagSet("trios", pflag.ContinueOnError)
	fs.String("config", "", "optional YAML config file")
	fs.String("mode", ModePlay, "play or tournament")
	fs.String("board", "docs/board.config", "board config file")
	fs.String("cards", "docs/cards.config", "card config file")
	fs.String("red", "human", "red player: human, "+strings.Join(strategy.Names(), ", "))
	fs.String("blue", "corner", "blue player: human, "+strings.Join(strategy.Names(), ", "))
	fs.Uint64("seed", 0, "shuffle seed, 0 for time-based")
	fs.String("rules", "standard", "capture rules: standard or reverse")
	fs.String("log-level", "info", "debug, info, warn or error")
	fs.String("log-format", "console", "console or json")
	fs.Int("games", 10, "tournament games per matchup")
	fs.String("output", "experiments/results", "tournament records directory")
	fs.StringSlice("strategies", strategy.Names(), "tournament strategies")
	return fs
}

// Load layers defaults, an optional config file, TRIOS_* environment
// variables and args, in increasing precedence. Two positional args name the
// red and blue players.
func Load(args []string) (*Config, error) {
	fs := newFlagSet()
	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("failed to parse flags: %w", err)
	}

	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix("TRIOS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	for flag, key := range flags {
		if err := v.BindPFlag(key, fs.Lookup(flag)); err != nil {
			return nil, fmt.Errorf("failed to bind flag %s: %w", flag, err)
		}
	}

	if path, _ := fs.GetString("config"); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	switch fs.NArg() {
	case 0:
	case 2:
		v.Set("red", fs.Arg(0))
		v.Set("blue", fs.Arg(1))
	default:
		return nil, fmt.Errorf("%w: want two player types, got %d arguments", game.ErrInvalidArgument, fs.NArg())
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	if c.Mode != ModePlay && c.Mode != ModeTournament {
		return fmt.Errorf("%w: unknown mode %q", game.ErrInvalidArgument, c.Mode)
	}
	if _, err := game.RulesByName(c.Rules); err != nil {
		return err
	}
	for _, kind := range []string{c.Red, c.Blue} {
		if strings.EqualFold(kind, player.Human) {
			continue
		}
		if _, err := strategy.New(kind); err != nil {
			return err
		}
	}
	if c.Mode == ModeTournament {
		if c.Tournament.Games <= 0 {
			return fmt.Errorf("%w: tournament games must be positive", game.ErrInvalidArgument)
		}
		// Tournaments have no terminal, so humans cannot take part.
		for _, name := range c.Tournament.Strategies {
			if _, err := strategy.New(name); err != nil {
				return err
			}
		}
	}
	if _, err := zerolog.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("%w: log level %q", game.ErrInvalidArgument, c.Log.Level)
	}
	if c.Log.Format != "console" && c.Log.Format != "json" {
		return fmt.Errorf("%w: log format %q", game.ErrInvalidArgument, c.Log.Format)
	}
	return nil
}

// Setup points the global logger at w with the configured level and format.
func (c LogConfig) Setup(w io.Writer) error {
	level, err := zerolog.ParseLevel(c.Level)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", c.Level, err)
	}
	zerolog.SetGlobalLevel(level)
	if c.Format == "json" {
		log.Logger = zerolog.New(w).With().Timestamp().Logger()
		return nil
	}
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: w}).With().Timestamp().Logger()
	return nil
}
