package config

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/pelletier/go-toml/v2"
)

// EnvConfigPath overrides the config file location
const EnvConfigPath = "LAUNCHVIEW_CONFIG"

// Config represents the application configuration
type Config struct {
	Host   HostSettings  `toml:"host"`
	UI     UISettings    `toml:"ui"`
	Styles StyleSettings `toml:"styles"`
	Log    LogSettings   `toml:"log"`
	Trace  TraceSettings `toml:"trace"`
}

// HostSettings describes the host process the view talks to
type HostSettings struct {
	Command string   `toml:"command"`
	Args    []string `toml:"args"`
	Env     []string `toml:"env"` // extra KEY=VALUE entries
}

// UISettings represents UI-related configuration
type UISettings struct {
	SearchBar          bool     `toml:"search_bar"`
	Prompt             string   `toml:"prompt"`
	Placeholder        string   `toml:"placeholder"`
	DoubleClickMS      int      `toml:"double_click_ms"`
	WheelLines         int      `toml:"wheel_lines"`
	HiddenUnlessActive []string `toml:"hidden_unless_active"`
	QuitKeys           []string `toml:"quit_keys"`
}

// StyleSettings holds lipgloss colours
type StyleSettings struct {
	Prompt             string `toml:"prompt"`
	Selected           string `toml:"selected"`
	SelectedBackground string `toml:"selected_background"`
	Action             string `toml:"action"`
	Dim                string `toml:"dim"`
}

// LogSettings controls the log file
type LogSettings struct {
	File string `toml:"file"`
}

// TraceSettings controls recording of bridge traffic
type TraceSettings struct {
	File string `toml:"file"` // empty disables tracing
}

// ConfigService handles configuration management
type ConfigService interface {
	Load() (*Config, error)
	LoadFromPath(path string) (*Config, error)
	Path() string
}

// configService is the concrete implementation
type configService struct {
	filePath string
}

// NewConfigService creates a config service for the default location
func NewConfigService() ConfigService {
	if path := os.Getenv(EnvConfigPath); path != "" {
		return &configService{filePath: path}
	}

	return &configService{
		filePath: filepath.Join(xdg.ConfigHome, "launchview", "config.toml"),
	}
}

// NewConfigServiceAt creates a config service for an explicit file
func NewConfigServiceAt(path string) ConfigService {
	return &configService{filePath: path}
}

// Path returns the config file location
func (cs *configService) Path() string {
	return cs.filePath
}

// Load loads the configuration, falling back to defaults when the file does not exist
func (cs *configService) Load() (*Config, error) {
	cfg, err := cs.LoadFromPath(cs.filePath)
	if errors.Is(err, fs.ErrNotExist) {
		return DefaultConfig(), nil
	}
	return cfg, err
}

// LoadFromPath loads configuration from a specific path.
// Keys missing from the file keep their default values.
func (cs *configService) LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := toml.NewDecoder(bytes.NewReader(data)).DisallowUnknownFields().Decode(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	cfg.normalize()

	return cfg, nil
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		UI: UISettings{
			SearchBar:          true,
			Prompt:             "> ",
			Placeholder:        "Search",
			DoubleClickMS:      400,
			WheelLines:         3,
			HiddenUnlessActive: []string{"actions"},
			QuitKeys:           []string{"ctrl+c"},
		},
		Styles: StyleSettings{
			Prompt:             "99",
			Selected:           "229",
			SelectedBackground: "57",
			Action:             "245",
			Dim:                "241",
		},
		Log: LogSettings{
			File: defaultLogFile(),
		},
	}
}

// normalize replaces out-of-range values with defaults
func (c *Config) normalize() {
	defaults := DefaultConfig()
	if c.UI.DoubleClickMS <= 0 {
		c.UI.DoubleClickMS = defaults.UI.DoubleClickMS
	}
	if c.UI.WheelLines <= 0 {
		c.UI.WheelLines = defaults.UI.WheelLines
	}
}

func defaultLogFile() string {
	return filepath.Join(xdg.CacheHome, "launchview", "launchview.log")
}
