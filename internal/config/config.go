package config

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"go.uber.org/zap/zapcore"
)

// ErrInvalidConfig is returned when a loaded value is outside its allowed set
var ErrInvalidConfig = errors.New("invalid configuration")

const envPrefix = "AUTODIDATA"

// Storage drivers
const (
	DriverJSON   = "json"
	DriverSQLite = "sqlite"
)

// Colour modes
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Config holds application configuration loaded from flags, environment variables and files.
type Config struct {
	Env       string  `mapstructure:"env"`        // current application environment (local, prod)
	DataDir   string  `mapstructure:"data_dir"`   // base directory for every data file
	ExportDir string  `mapstructure:"export_dir"` // where profile exports are written
	Files     Files   `mapstructure:"files"`      // data file locations
	Storage   Storage `mapstructure:"storage"`    // profile store selection
	Session   Session `mapstructure:"session"`    // quiz sizes
	Log       Log     `mapstructure:"log"`        // logger settings
	UI        UI      `mapstructure:"ui"`         // terminal settings
	Import    string  `mapstructure:"-"`          // vocabulary sheet to import and exit
}

// Files contains the data file paths. Empty paths resolve under DataDir.
type Files struct {
	Users        string `mapstructure:"users"`
	Vocabulary   string `mapstructure:"vocabulary"`
	Grammar      string `mapstructure:"grammar"`
	Conversation string `mapstructure:"conversation"`
}

// Storage selects the profile store backend.
type Storage struct {
	Driver     string `mapstructure:"driver"`      // json or sqlite
	SQLitePath string `mapstructure:"sqlite_path"` // database file for the sqlite driver
}

// Session contains quiz sizing.
type Session struct {
	VocabularySize int `mapstructure:"vocabulary_size"`
	GrammarSize    int `mapstructure:"grammar_size"`
}

// Log contains logger settings. An empty File disables logging.
type Log struct {
	Level string `mapstructure:"level"`
	File  string `mapstructure:"file"`
}

// UI contains terminal settings.
type UI struct {
	Color string `mapstructure:"color"` // auto, always or never
}

// IsLocal reports whether the app runs in a development environment
func (c *Config) IsLocal() bool {
	return c.Env == "local" || c.Env == "dev"
}

// Load reads configuration from command-line args, a .env file, environment variables and
// an optional config file, in decreasing order of precedence.
func Load(args []string) (*Config, error) {
	// Values from .env never override variables already set in the environment.
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("error loading .env file: %w", err)
	}

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./config")

	v.SetDefault("env", "local")
	v.SetDefault("data_dir", "data")
	v.SetDefault("export_dir", "")
	v.SetDefault("files.users", "")
	v.SetDefault("files.vocabulary", "")
	v.SetDefault("files.grammar", "")
	v.SetDefault("files.conversation", "")
	v.SetDefault("storage.driver", DriverJSON)
	v.SetDefault("storage.sqlite_path", "")
	v.SetDefault("session.vocabulary_size", 10)
	v.SetDefault("session.grammar_size", 8)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.file", "")
	v.SetDefault("ui.color", ColorAuto)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	flags := newFlagSet()
	if err := flags.Parse(args); err != nil {
		return nil, err
	}
	for key, name := range flagKeys {
		if err := v.BindPFlag(key, flags.Lookup(name)); err != nil {
			return nil, fmt.Errorf("error binding flag %s: %w", name, err)
		}
	}

	if path, _ := flags.GetString("config"); path != "" {
		v.SetConfigFile(path)
	}
	if err := v.ReadInConfig(); err != nil {
		var fileLookupErr viper.ConfigFileNotFoundError
		if !errors.As(err, &fileLookupErr) {
			return nil, fmt.Errorf("error loading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshalling config: %w", err)
	}
	cfg.Import, _ = flags.GetString("import")

	cfg.resolvePaths()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Usage returns the command-line help text
func Usage() string {
	return newFlagSet().FlagUsages()
}

// Validate checks every enumerated setting
func (c *Config) Validate() error {
	switch c.Storage.Driver {
	case DriverJSON, DriverSQLite:
	default:
		return fmt.Errorf("%w: storage.driver %q (want %s or %s)", ErrInvalidConfig, c.Storage.Driver, DriverJSON, DriverSQLite)
	}

	switch c.UI.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return fmt.Errorf("%w: ui.color %q", ErrInvalidConfig, c.UI.Color)
	}

	if c.Session.VocabularySize <= 0 || c.Session.GrammarSize <= 0 {
		return fmt.Errorf("%w: session sizes must be positive", ErrInvalidConfig)
	}

	if _, err := zapcore.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("%w: log.level: %v", ErrInvalidConfig, err)
	}
	return nil
}

func (c *Config) resolvePaths() {
	resolve := func(p *string, name string) {
		if *p == "" {
			*p = filepath.Join(c.DataDir, name)
		}
	}
	resolve(&c.Files.Users, "users.json")
	resolve(&c.Files.Vocabulary, "vocabulary.json")
	resolve(&c.Files.Grammar, "grammar.json")
	resolve(&c.Files.Conversation, "conversation.json")
	resolve(&c.Storage.SQLitePath, "users.db")
	resolve(&c.ExportDir, "exports")
}
