package config

import (
	"fmt"
	"image/color"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	colorful "github.com/lucasb-eyer/go-colorful"
)

type Config struct {
	UI       UIConfig       `toml:"ui"`
	StoryBar StoryBarConfig `toml:"storybar"`
	Theme    ThemeConfig    `toml:"theme"`
}

type UIConfig struct {
	Fullscreen bool `toml:"fullscreen"`
	Width      int  `toml:"width"`
	Height     int  `toml:"height"`
}

type StoryBarConfig struct {
	Height       float64 `toml:"height"`
	AddItemWidth float64 `toml:"add_item_width"`
	ItemWidth    float64 `toml:"item_width"`
	ItemMargin   float64 `toml:"item_margin"`
	ItemCount    int     `toml:"item_count"`
	BorderRadius float64 `toml:"border_radius"`
	IconSize     float64 `toml:"icon_size"`
	CreateLabel  string  `toml:"create_label"`
}

// ThemeConfig holds hex color strings ("#RRGGBB").
type ThemeConfig struct {
	Background        string `toml:"background"`
	Border            string `toml:"border"`
	IconBackground    string `toml:"icon_background"`
	AddItemBackground string `toml:"add_item_background"`
}

func DefaultConfig() *Config {
	return &Config{
		UI: UIConfig{
			Fullscreen: false,
			Width:      960,
			Height:     540,
		},
		StoryBar: StoryBarConfig{
			Height:       190,
			AddItemWidth: 110,
			ItemWidth:    110,
			ItemMargin:   8,
			ItemCount:    12,
			BorderRadius: 14,
			IconSize:     34,
			CreateLabel:  "Create story",
		},
		Theme: ThemeConfig{
			Background:        "#F0F2F5",
			Border:            "#1877F2",
			IconBackground:    "#1877F2",
			AddItemBackground: "#E4E6EB",
		},
	}
}

// ParseColor converts a "#RRGGBB" hex string to an opaque RGBA color.
func ParseColor(hex string) (color.RGBA, error) {
	c, err := colorful.Hex(hex)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("parse color %q: %w", hex, err)
	}
	r, g, b := c.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 0xFF}, nil
}

func ConfigDir() (string, error) {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "storyrail"), nil
}

func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

func Load() (*Config, error) {
	cfg := DefaultConfig()

	path, err := ConfigPath()
	if err != nil {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, err
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Save() error {
	path, err := ConfigPath()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return toml.NewEncoder(f).Encode(c)
}
