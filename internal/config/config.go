// Package config loads user configuration from TOML files.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/llehouerou/sheet/internal/sheet"
)

const appName = "sheet"

// ErrInvalidValue is returned when a config value is outside its allowed set.
var ErrInvalidValue = errors.New("invalid config value")

type Config struct {
	Debug   bool          `koanf:"debug"`
	LogFile string        `koanf:"log_file"` // defaults to debug.log in the state dir
	Sheet   SheetConfig   `koanf:"sheet"`
	Physics PhysicsConfig `koanf:"physics"`
}

// SheetConfig holds the sheet geometry and behavior.
type SheetConfig struct {
	MinHeight     float64 `koanf:"min_height"`     // rows (default: 3)
	MaxHeight     float64 `koanf:"max_height"`     // rows; 0 fits the terminal
	InitialHeight float64 `koanf:"initial_height"` // rows; < 0 means min_height (default: -1)
	Direction     string  `koanf:"direction"`      // "top" or "bottom" (default: "top")
	Snap          string  `koanf:"snap"`           // "edge" or "free" (default: "edge")
	Draggable     *bool   `koanf:"draggable"`      // default: true
	Open          bool    `koanf:"open"`           // open on startup
}

// PhysicsConfig holds the spring parameters.
type PhysicsConfig struct {
	Mass            float64  `koanf:"mass"`             // default: 1
	Stiffness       float64  `koanf:"stiffness"`        // default: 500
	Damping         *float64 `koanf:"damping"`          // default: 30; 0 is allowed
	DefaultVelocity float64  `koanf:"default_velocity"` // rows per second (default: 60)
	FPS             int      `koanf:"fps"`              // default: 60
}

// Terminal-scale defaults. Heights are in rows, velocities in rows per second.
const (
	DefaultMinHeight       = 3
	DefaultVelocityRows    = 60
	defaultInitialHeight   = -1
	defaultDirection       = "top"
	defaultSnap            = "edge"
	debugEnv               = "SHEET_DEBUG"
	defaultLogFileBasename = "debug.log"
)

// Load reads the config files in priority order, last one winning.
func Load() (*Config, error) {
	return load(getConfigPaths())
}

func load(paths []string) (*Config, error) {
	k := koanf.New(".")

	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
				return nil, fmt.Errorf("load %s: %w", path, err)
			}
		}
	}

	cfg := &Config{
		Sheet: SheetConfig{
			MinHeight:     DefaultMinHeight,
			InitialHeight: defaultInitialHeight,
		},
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, err
	}

	if os.Getenv(debugEnv) != "" {
		cfg.Debug = true
	}
	if cfg.LogFile != "" {
		cfg.LogFile = expandPath(cfg.LogFile)
	}
	cfg.Sheet.Direction = strings.ToLower(strings.TrimSpace(cfg.Sheet.Direction))
	cfg.Sheet.Snap = strings.ToLower(strings.TrimSpace(cfg.Sheet.Snap))

	return cfg, nil
}

func getConfigPaths() []string {
	paths := []string{}

	// 1. $XDG_CONFIG_HOME/sheet/config.toml
	if p, err := xdg.SearchConfigFile(filepath.Join(appName, "config.toml")); err == nil {
		paths = append(paths, p)
	}

	// 2. ./config.toml (pwd, highest priority)
	paths = append(paths, "config.toml")

	return paths
}

func expandPath(path string) string {
	if path != "" && path[0] == '~' {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}

// LogPath returns where debug logs are written.
func (c *Config) LogPath() (string, error) {
	if c.LogFile != "" {
		return c.LogFile, nil
	}
	return xdg.StateFile(filepath.Join(appName, defaultLogFileBasename))
}

// FitsTerminal reports whether max height follows the terminal size.
func (c *Config) FitsTerminal() bool {
	return c.Sheet.MaxHeight <= 0
}

// SheetOptions converts the config into engine options with defaults
// applied. maxHeight is used when the config leaves it to the terminal.
// Range checks on heights are left to sheet.New.
func (c *Config) SheetOptions(maxHeight float64) (sheet.Options, error) {
	opts := sheet.Options{
		MinHeight: c.Sheet.MinHeight,
		MaxHeight: c.Sheet.MaxHeight,
		Draggable: c.Sheet.Draggable,
		FPS:       c.Physics.FPS,
	}
	if c.FitsTerminal() {
		opts.MaxHeight = max(maxHeight, opts.MinHeight)
	}
	if c.Sheet.InitialHeight >= 0 {
		initial := c.Sheet.InitialHeight
		opts.InitialHeight = &initial
	}

	switch c.Sheet.Direction {
	case "", defaultDirection:
		opts.Direction = sheet.TopToBottom
	case "bottom":
		opts.Direction = sheet.BottomToTop
	default:
		return sheet.Options{}, fmt.Errorf("%w: sheet.direction = %q (want top or bottom)", ErrInvalidValue, c.Sheet.Direction)
	}

	switch c.Sheet.Snap {
	case "", defaultSnap:
		opts.Snap = sheet.SnapToEdge
	case "free":
		opts.Snap = sheet.FreePosition
	default:
		return sheet.Options{}, fmt.Errorf("%w: sheet.snap = %q (want edge or free)", ErrInvalidValue, c.Sheet.Snap)
	}

	physics := c.GetPhysics()
	opts.Physics = &physics
	return opts, nil
}

// GetPhysics returns the spring configuration with defaults applied.
func (c *Config) GetPhysics() sheet.Physics {
	p := sheet.Physics{
		Spring: sheet.Spring{
			Mass:      c.Physics.Mass,
			Stiffness: c.Physics.Stiffness,
			Damping:   sheet.DefaultDamping,
		},
		DefaultVelocity: c.Physics.DefaultVelocity,
	}

	// Apply defaults
	if p.Spring.Mass <= 0 {
		p.Spring.Mass = sheet.DefaultMass
	}
	if p.Spring.Stiffness <= 0 {
		p.Spring.Stiffness = sheet.DefaultStiffness
	}
	if c.Physics.Damping != nil {
		p.Spring.Damping = *c.Physics.Damping
	}
	if p.DefaultVelocity <= 0 {
		p.DefaultVelocity = DefaultVelocityRows
	}

	return p
}
