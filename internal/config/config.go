// internal/config/config.go
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	ScreenWidth  = 1200
	ScreenHeight = 900

	DefaultTitle       = "Hexagon Grid"
	DefaultPresetsPath = "configs/presets.yaml"

	envPrefix = "HEXVIEWER"
)

// Settings holds everything the viewer reads at startup. Values come from
// defaults, then an optional config file, then HEXVIEWER_* environment
// variables, then command line flags.
type Settings struct {
	Window  WindowSettings `mapstructure:"window"`
	Presets string         `mapstructure:"presets"`
	Log     LogSettings    `mapstructure:"log"`
}

type WindowSettings struct {
	Width  int    `mapstructure:"width"`
	Height int    `mapstructure:"height"`
	Title  string `mapstructure:"title"`
}

type LogSettings struct {
	Level      string `mapstructure:"level"`
	File       string `mapstructure:"file"`
	MaxSizeMB  int    `mapstructure:"max_size_mb"`
	MaxBackups int    `mapstructure:"max_backups"`
	MaxAgeDays int    `mapstructure:"max_age_days"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("window.width", ScreenWidth)
	v.SetDefault("window.height", ScreenHeight)
	v.SetDefault("window.title", DefaultTitle)
	v.SetDefault("presets", DefaultPresetsPath)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.file", "")
	v.SetDefault("log.max_size_mb", 10)
	v.SetDefault("log.max_backups", 3)
	v.SetDefault("log.max_age_days", 7)
}

// Load parses args (without the program name) and builds Settings.
func Load(args []string) (*Settings, error) {
	fs := pflag.NewFlagSet("hexviewer", pflag.ContinueOnError)
	configFile := fs.String("config", "", "path to a settings file (yaml, json or toml)")
	fs.String("presets", DefaultPresetsPath, "path to the grid presets file")
	fs.Int("width", ScreenWidth, "window width in pixels")
	fs.Int("height", ScreenHeight, "window height in pixels")
	fs.String("log-level", "info", "log level (debug, info, warn, error)")
	fs.String("log-file", "", "also write logs to this rotating file")
	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("failed to parse flags: %w", err)
	}

	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	bindings := map[string]string{
		"presets":       "presets",
		"window.width":  "width",
		"window.height": "height",
		"log.level":     "log-level",
		"log.file":      "log-file",
	}
	for key, flag := range bindings {
		if err := v.BindPFlag(key, fs.Lookup(flag)); err != nil {
			return nil, fmt.Errorf("failed to bind flag %s: %w", flag, err)
		}
	}

	if *configFile != "" {
		v.SetConfigFile(*configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", *configFile, err)
		}
	}

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return nil, fmt.Errorf("failed to decode settings: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

func (s *Settings) Validate() error {
	if s.Window.Width <= 0 || s.Window.Height <= 0 {
		return fmt.Errorf("invalid window size %dx%d", s.Window.Width, s.Window.Height)
	}
	if s.Presets == "" {
		return fmt.Errorf("presets path is empty")
	}
	return nil
}
