package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"

	imagepkg "github.com/youruser/catimage/internal/image"
)

const envPrefix = "CATIMAGE"

type Config struct {
	BaseURL string
	Font    FontConfig
	Log     LogConfig
}

type FontConfig struct {
	Family string
	Size   float64
	File   string
}

type LogConfig struct {
	Level string
}

// Load reads CATIMAGE_* environment variables on top of the built-in defaults.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)

	v.SetDefault("BASE_URL", imagepkg.DefaultBaseURL)
	v.SetDefault("FONT_FAMILY", imagepkg.DefaultFontFamily)
	v.SetDefault("FONT_SIZE", imagepkg.DefaultFontSize)
	v.SetDefault("FONT_FILE", "")
	v.SetDefault("LOG_LEVEL", "warn")

	v.AutomaticEnv()

	cfg := &Config{
		BaseURL: strings.TrimSpace(v.GetString("BASE_URL")),
		Font: FontConfig{
			Family: v.GetString("FONT_FAMILY"),
			Size:   v.GetFloat64("FONT_SIZE"),
			File:   v.GetString("FONT_FILE"),
		},
		Log: LogConfig{
			Level: v.GetString("LOG_LEVEL"),
		},
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.BaseURL == "" {
		return fmt.Errorf("%s_BASE_URL must not be empty", envPrefix)
	}
	if c.Font.Size <= 0 {
		return fmt.Errorf("%s_FONT_SIZE must be positive, got %v", envPrefix, c.Font.Size)
	}
	return nil
}
