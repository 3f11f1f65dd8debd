// Package config loads the storefront preferences from a YAML file. Missing keys keep their
// defaults, so a config file only needs to list what it changes.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// DefaultPath is the config file location, relative to the process working directory.
const DefaultPath = "config/storefront.yaml"

// Environment overrides applied by ApplyEnv.
const (
	EnvLogLevel   = "STOREFRONT_LOG_LEVEL"
	EnvStylesheet = "STOREFRONT_STYLESHEET"
)

type Window struct {
	Width     int    `yaml:"width"`
	Height    int    `yaml:"height"`
	Title     string `yaml:"title"`
	TargetFPS int    `yaml:"target_fps"`
}

// Preview sizes the per-card 3D views and tunes their interaction.
type Preview struct {
	Width          int     `yaml:"width"`
	Height         int     `yaml:"height"`
	Sensitivity    float32 `yaml:"sensitivity"`
	IdleSpin       float32 `yaml:"idle_spin"`
	CameraDistance float32 `yaml:"camera_distance"`
	FieldOfView    float32 `yaml:"field_of_view"`
	// MountDelay defers surface creation until the card has been laid out.
	MountDelay time.Duration `yaml:"mount_delay"`
}

type Checkout struct {
	RedirectDelay time.Duration `yaml:"redirect_delay"`
}

type Debug struct {
	ShowFPS   bool `yaml:"show_fps"`
	ShowStats bool `yaml:"show_stats"`
}

type Log struct {
	Level string `yaml:"level"`
	Path  string `yaml:"path"`
}

type UI struct {
	Stylesheet string `yaml:"stylesheet"`
	Font       string `yaml:"font,omitempty"`
	// Watch reloads the stylesheet when the file changes on disk.
	Watch bool `yaml:"watch"`
}

type Catalog struct {
	// SeedPath replaces the built-in products when set.
	SeedPath string `yaml:"seed_path,omitempty"`
}

type Auth struct {
	BcryptCost int `yaml:"bcrypt_cost"`
}

// Config is the full preference set.
type Config struct {
	Window   Window   `yaml:"window"`
	Preview  Preview  `yaml:"preview"`
	Checkout Checkout `yaml:"checkout"`
	Debug    Debug    `yaml:"debug"`
	Log      Log      `yaml:"log"`
	UI       UI       `yaml:"ui"`
	Catalog  Catalog  `yaml:"catalog"`
	Auth     Auth     `yaml:"auth"`
}

// Default returns the built-in preferences.
func Default() Config {
	return Config{
		Window: Window{Width: 1280, Height: 800, Title: "Storefront", TargetFPS: 60},
		Preview: Preview{
			Width:          200,
			Height:         200,
			Sensitivity:    0.01,
			IdleSpin:       0.005,
			CameraDistance: 4,
			FieldOfView:    75,
			MountDelay:     100 * time.Millisecond,
		},
		Checkout: Checkout{RedirectDelay: 3 * time.Second},
		Log:      Log{Level: "info", Path: "logs/storefront.log"},
		UI:       UI{Stylesheet: "assets/ui/storefront.css"},
		Auth:     Auth{BcryptCost: 10},
	}
}

// Load reads the config at path over Default. A missing file is not an error.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Default(), fmt.Errorf("config: %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Default(), fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

// Save writes cfg to path, creating the directory if needed.
func Save(path string, cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return os.WriteFile(path, data, 0644)
}

// ApplyEnv overrides fields from the environment. lookup is usually os.LookupEnv.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) {
	if v, ok := lookup(EnvLogLevel); ok && v != "" {
		c.Log.Level = v
	}
	if v, ok := lookup(EnvStylesheet); ok && v != "" {
		c.UI.Stylesheet = v
	}
}

// Validate rejects values the app cannot run with.
func (c Config) Validate() error {
	var errs []error
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		errs = append(errs, fmt.Errorf("window size %dx%d", c.Window.Width, c.Window.Height))
	}
	if c.Preview.Width <= 0 || c.Preview.Height <= 0 {
		errs = append(errs, fmt.Errorf("preview size %dx%d", c.Preview.Width, c.Preview.Height))
	}
	if c.Checkout.RedirectDelay < 0 {
		errs = append(errs, fmt.Errorf("negative redirect delay %s", c.Checkout.RedirectDelay))
	}
	if c.Preview.MountDelay < 0 {
		errs = append(errs, fmt.Errorf("negative mount delay %s", c.Preview.MountDelay))
	}
	return errors.Join(errs...)
}
