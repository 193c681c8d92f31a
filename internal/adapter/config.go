package adapter

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Default remote locations for the catalog feed
const (
	DefaultFeedURL   = "https://cdn.jsdelivr.net/gh/gn-math/assets@2b921e85fe7ae61ba5d69c576bbe444e15c5d70d/zones.json"
	DefaultHTMLBase  = "https://cdn.jsdelivr.net/gh/gn-math/html@main"
	DefaultCoverBase = "https://cdn.jsdelivr.net/gh/gn-math/covers@main"
)

// Config holds all application configuration
type Config struct {
	Catalog CatalogConfig `mapstructure:"catalog"`
	HTTP    HTTPConfig    `mapstructure:"http"`
	Store   StoreConfig   `mapstructure:"store"`
	Search  SearchConfig  `mapstructure:"search"`
	Browser BrowserConfig `mapstructure:"browser"`
	Sandbox SandboxConfig `mapstructure:"sandbox"`
	UI      UIConfig      `mapstructure:"ui"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// CatalogConfig holds the remote feed locations and name rewriting
type CatalogConfig struct {
	FeedURL         string `mapstructure:"feed_url"`
	HTMLBase        string `mapstructure:"html_base"`  // Substituted for {HTML_URL}
	CoverBase       string `mapstructure:"cover_base"` // Substituted for {COVER_URL}
	NamePattern     string `mapstructure:"name_pattern"`
	NameReplacement string `mapstructure:"name_replacement"`
}

// HTTPConfig holds outbound request settings
type HTTPConfig struct {
	Timeout time.Duration `mapstructure:"timeout"` // 0 disables the timeout
}

// StoreConfig holds local persistence settings
type StoreConfig struct {
	Path string `mapstructure:"path"` // Empty keeps favorites in memory only
}

// SearchConfig holds search behavior
type SearchConfig struct {
	Mode string `mapstructure:"mode"` // "substring" or "fuzzy"
}

// BrowserConfig holds the command used to open the embedded view
type BrowserConfig struct {
	Command    string          `mapstructure:"command"` // Empty for system default
	Args       []string        `mapstructure:"args"`
	Fullscreen []LaunchCommand `mapstructure:"fullscreen"` // Tried in order
}

// LaunchCommand is a single browser invocation
type LaunchCommand struct {
	Command string   `mapstructure:"command"`
	Args    []string `mapstructure:"args"`
}

// SandboxConfig holds the embedded view server settings
type SandboxConfig struct {
	Addr string `mapstructure:"addr"`
}

// UIConfig holds UI configuration
type UIConfig struct {
	GridColumns int `mapstructure:"grid_columns"` // 0 sizes columns to the terminal
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	File  string `mapstructure:"file"`
	Level string `mapstructure:"level"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Catalog: CatalogConfig{
			FeedURL:         DefaultFeedURL,
			HTMLBase:        DefaultHTMLBase,
			CoverBase:       DefaultCoverBase,
			NamePattern:     "(?i)game",
			NameReplacement: "gme",
		},
		Store: StoreConfig{
			Path: defaultStorePath(),
		},
		Search: SearchConfig{
			Mode: "substring",
		},
		Browser: BrowserConfig{
			Args:       []string{},
			Fullscreen: defaultFullscreenCommands(),
		},
		Sandbox: SandboxConfig{
			Addr: "127.0.0.1:0",
		},
		Logging: LoggingConfig{
			File:  defaultLogPath(),
			Level: "INFO",
		},
	}
}

// defaultFullscreenCommands returns browsers that accept a fullscreen flag, in preference order
func defaultFullscreenCommands() []LaunchCommand {
	switch runtime.GOOS {
	case "darwin":
		return []LaunchCommand{
			{Command: "open-a:Google Chrome", Args: []string{"--start-fullscreen"}},
			{Command: "open-a:Chromium", Args: []string{"--start-fullscreen"}},
			{Command: "open-a:Firefox", Args: []string{"--kiosk"}},
		}
	case "windows":
		return []LaunchCommand{
			{Command: "chrome", Args: []string{"--start-fullscreen"}},
			{Command: "msedge", Args: []string{"--start-fullscreen"}},
			{Command: "firefox", Args: []string{"--kiosk"}},
		}
	}
	return []LaunchCommand{
		{Command: "chromium", Args: []string{"--start-fullscreen"}},
		{Command: "google-chrome", Args: []string{"--start-fullscreen"}},
		{Command: "firefox", Args: []string{"--kiosk"}},
	}
}

// defaultLogPath returns the default log file path for the current OS
func defaultLogPath() string {
	switch runtime.GOOS {
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), "gmes", "gmes.log")
	default:
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".local", "share", "gmes", "gmes.log")
	}
}

// defaultStorePath returns the default favorites database path for the current OS
func defaultStorePath() string {
	switch runtime.GOOS {
	case "windows":
		return filepath.Join(os.Getenv("LOCALAPPDATA"), "gmes", "gmes.db")
	default:
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".local", "share", "gmes", "gmes.db")
	}
}

// defaultConfigPath returns the default config directory for the current OS
func defaultConfigPath() string {
	switch runtime.GOOS {
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), "gmes")
	default:
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".config", "gmes")
	}
}

// LoadConfig loads configuration from the default locations and environment
func LoadConfig() (*Config, error) {
	return loadConfig(viper.New(), defaultConfigPath(), ".")
}

// LoadConfigFile loads configuration from an explicit file
func LoadConfigFile(path string) (*Config, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}
	v := viper.New()
	v.SetConfigFile(path)
	return readConfig(v)
}

func loadConfig(v *viper.Viper, paths ...string) (*Config, error) {
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	for _, p := range paths {
		v.AddConfigPath(p)
	}
	return readConfig(v)
}

func readConfig(v *viper.Viper) (*Config, error) {
	cfg := DefaultConfig()

	// Environment variable overrides (GMES_CATALOG_FEED_URL, GMES_LOGGING_LEVEL, ...)
	// AutomaticEnv only resolves keys viper already knows, so register the defaults first.
	setDefaults(v, cfg)
	v.SetEnvPrefix("GMES")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Read config file if it exists
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok && !os.IsNotExist(err) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found is OK, use defaults
	}

	// Decoding merges into existing slices, so a configured list must start empty
	defaultFullscreen := cfg.Browser.Fullscreen
	cfg.Browser.Fullscreen = nil

	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("error parsing config: %w", err)
	}

	if len(cfg.Browser.Fullscreen) == 0 {
		cfg.Browser.Fullscreen = defaultFullscreen
	}

	return cfg, nil
}

// setDefaults registers scalar defaults so environment overrides can bind to them
func setDefaults(v *viper.Viper, cfg *Config) {
	v.SetDefault("catalog.feed_url", cfg.Catalog.FeedURL)
	v.SetDefault("catalog.html_base", cfg.Catalog.HTMLBase)
	v.SetDefault("catalog.cover_base", cfg.Catalog.CoverBase)
	v.SetDefault("catalog.name_pattern", cfg.Catalog.NamePattern)
	v.SetDefault("catalog.name_replacement", cfg.Catalog.NameReplacement)
	v.SetDefault("http.timeout", cfg.HTTP.Timeout)
	v.SetDefault("store.path", cfg.Store.Path)
	v.SetDefault("search.mode", cfg.Search.Mode)
	v.SetDefault("browser.command", cfg.Browser.Command)
	v.SetDefault("sandbox.addr", cfg.Sandbox.Addr)
	v.SetDefault("ui.grid_columns", cfg.UI.GridColumns)
	v.SetDefault("logging.file", cfg.Logging.File)
	v.SetDefault("logging.level", cfg.Logging.Level)
}
