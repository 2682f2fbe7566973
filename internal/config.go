package internal

import (
	"log/slog"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Front-ends.
const (
	FrontendREPL = "repl"
	FrontendTUI  = "tui"
	FrontendMCP  = "mcp"
)

// DefaultDataFile is used when no data file is configured.
const DefaultDataFile = "data/orion.txt"

// Config represents the application configuration.
type Config struct {
	App     ApplicationConfig `yaml:"app" toml:"app"`
	Storage StorageConfig     `yaml:"storage" toml:"storage"`
	Tasks   TasksConfig       `yaml:"tasks" toml:"tasks"`
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if err := c.App.Validate(); err != nil {
		return err
	}
	return c.Storage.Validate()
}

// ApplicationConfig holds application-level configuration.
type ApplicationConfig struct {
	LogLevel slog.Level `yaml:"log_level" toml:"log_level"`
	// LogFile receives JSON logs. Empty means stderr.
	LogFile  string `yaml:"log_file" toml:"log_file"`
	Frontend string `yaml:"frontend" toml:"frontend"`
}

// Validate validates the application configuration.
func (c *ApplicationConfig) Validate() error {
	if c.Frontend == "" {
		c.Frontend = FrontendREPL
	}
	return validation.ValidateStruct(c,
		validation.Field(&c.Frontend, validation.Required, validation.In(FrontendREPL, FrontendTUI, FrontendMCP)),
	)
}

// StorageConfig holds the location of the task data file.
type StorageConfig struct {
	DataFile string `yaml:"data_file" toml:"data_file"`
}

// Validate validates the storage configuration.
func (c *StorageConfig) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.DataFile, validation.Required),
	)
}

// TasksConfig holds task-list behaviour.
type TasksConfig struct {
	// DuplicateIgnoresTime compares only dates, not times of day, when
	// deciding whether a new task duplicates an existing one.
	DuplicateIgnoresTime bool `yaml:"duplicate_ignores_time" toml:"duplicate_ignores_time"`
}

// NewDefaultConfig returns a new Config with sensible default values.
func NewDefaultConfig() *Config {
	return &Config{
		App: ApplicationConfig{
			LogLevel: slog.LevelWarn,
			Frontend: FrontendREPL,
		},
		Storage: StorageConfig{
			DataFile: DefaultDataFile,
		},
	}
}
