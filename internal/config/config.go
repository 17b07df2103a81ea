package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/caarlos0/env/v11"

	"sprite-renderer/internal/species"
)

// EnvPrefix prefixes every environment override, e.g. SPRITE_ATLAS_PATH.
const EnvPrefix = "SPRITE_"

// Config holds all configurable paths and render settings.
type Config struct {
	Atlas   AtlasConfig   `toml:"atlas" envPrefix:"ATLAS_"`
	Render  RenderConfig  `toml:"render" envPrefix:"RENDER_"`
	Roster  RosterConfig  `toml:"roster" envPrefix:"ROSTER_"`
	Output  OutputConfig  `toml:"output" envPrefix:"OUTPUT_"`
	Logging LoggingConfig `toml:"logging" envPrefix:"LOG_"`

	dir string // directory of the loaded file, for relative paths
}

type AtlasConfig struct {
	Path string `toml:"path" env:"PATH"` // directory or .zip
}

type RenderConfig struct {
	Context species.Context `toml:"context" env:"CONTEXT"`
	Format  string          `toml:"format" env:"FORMAT"` // "png" or "webp"
	Workers int             `toml:"workers" env:"WORKERS"`
	Scale   int             `toml:"scale" env:"SCALE"` // integer upscale of written files
}

type RosterConfig struct {
	File string `toml:"file" env:"FILE"`
}

type OutputConfig struct {
	Dir      string `toml:"dir" env:"DIR"`
	Manifest bool   `toml:"manifest" env:"MANIFEST"`
}

type LoggingConfig struct {
	Level  string `toml:"level" env:"LEVEL"`
	Format string `toml:"format" env:"FORMAT"` // "json" or "console"
}

// Load reads a TOML config file over the defaults. An empty path
// returns the defaults.
func Load(path string) (*Config, error) {
	cfg := defaults()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	cfg.dir = filepath.Dir(path)
	return cfg, nil
}

func defaults() *Config {
	return &Config{
		Render: RenderConfig{
			Context: species.Gen9,
			Format:  "png",
			Scale:   1,
		},
		Output: OutputConfig{
			Dir:      "sprites",
			Manifest: true,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// ParseEnv applies SPRITE_* environment overrides.
func (c *Config) ParseEnv() error {
	if err := env.ParseWithOptions(c, env.Options{Prefix: EnvPrefix}); err != nil {
		return fmt.Errorf("config: parse env: %w", err)
	}
	return nil
}

// Flags holds CLI flag values that override config file and environment.
type Flags struct {
	Atlas     string
	Roster    string
	OutputDir string
	Format    string
	Context   string
	Workers   int
	Scale     int
}

// Resolve applies flags, fills remaining defaults and makes paths absolute
// relative to the config file.
func (c *Config) Resolve(flags Flags) error {
	if flags.Atlas != "" {
		c.Atlas.Path = flags.Atlas
	}
	if flags.Roster != "" {
		c.Roster.File = flags.Roster
	}
	if flags.OutputDir != "" {
		c.Output.Dir = flags.OutputDir
	}
	if flags.Format != "" {
		c.Render.Format = flags.Format
	}
	if flags.Context != "" {
		ctx, err := species.ParseContext(flags.Context)
		if err != nil {
			return fmt.Errorf("config: %w", err)
		}
		c.Render.Context = ctx
	}
	if flags.Workers > 0 {
		c.Render.Workers = flags.Workers
	}
	if flags.Scale > 0 {
		c.Render.Scale = flags.Scale
	}

	if c.Atlas.Path == "" {
		c.Atlas.Path = detectAtlas()
	}
	c.Atlas.Path = c.abs(c.Atlas.Path)
	c.Roster.File = c.abs(c.Roster.File)
	c.Output.Dir = c.abs(c.Output.Dir)

	c.Render.Format = strings.ToLower(strings.TrimSpace(c.Render.Format))
	switch c.Render.Format {
	case "":
		c.Render.Format = "png"
	case "png", "webp":
	default:
		return fmt.Errorf("config: unknown format %q", c.Render.Format)
	}
	if c.Render.Workers <= 0 {
		c.Render.Workers = runtime.NumCPU()
	}
	if c.Render.Scale <= 0 {
		c.Render.Scale = 1
	}
	return nil
}

func (c *Config) abs(p string) string {
	if p == "" || filepath.IsAbs(p) || c.dir == "" {
		return p
	}
	return filepath.Join(c.dir, p)
}

// detectAtlas looks for an "atlas" directory or "atlas.zip" next to the
// executable, then in the working directory.
func detectAtlas() string {
	var dirs []string
	if exe, _ := os.Executable(); exe != "" {
		dir := filepath.Dir(exe)
		dirs = append(dirs, dir, filepath.Dir(dir))
	}
	if cwd, _ := os.Getwd(); cwd != "" {
		dirs = append(dirs, cwd)
	}

	for _, dir := range dirs {
		for _, name := range []string{"atlas", "atlas.zip"} {
			p := filepath.Join(dir, name)
			if _, err := os.Stat(p); err == nil {
				return p
			}
		}
	}
	return ""
}
