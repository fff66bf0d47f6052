// Package config holds the settings of a tutorial program: built-in defaults,
// optionally overlaid by a TOML file and then by command-line flags.
package config

import (
	"flag"
	"os"
	"time"

	"github.com/pelletier/go-toml/v2"
	"github.com/pkg/errors"
)

var (
	ErrWindowSize = errors.New("window size must be positive")
	ErrVersion    = errors.New("invalid context version")
	ErrStats      = errors.New("stats interval must not be negative")
)

// Window describes the window and the context requested for it. A zero Major
// leaves the context version to the driver.
type Window struct {
	Title         string `toml:"title"`
	Width         int    `toml:"width"`
	Height        int    `toml:"height"`
	Major         int    `toml:"major"`
	Minor         int    `toml:"minor"`
	Core          bool   `toml:"core"`
	ForwardCompat bool   `toml:"forward_compat"`
	Resizable     bool   `toml:"resizable"`
	VSync         bool   `toml:"vsync"`
}

// Versioned reports whether a specific context version is requested.
func (w Window) Versioned() bool {
	return w.Major > 0
}

type Shaders struct {
	Vertex   string `toml:"vertex"`
	Fragment string `toml:"fragment"`
}

type Texture struct {
	Image string `toml:"image"`
}

// Profile names the pprof output files; empty disables a profile.
type Profile struct {
	CPU string `toml:"cpu"`
	Mem string `toml:"mem"`
}

// Duration is a time.Duration read from strings such as "5s".
type Duration struct {
	time.Duration
}

func (d *Duration) UnmarshalText(b []byte) error {
	v, err := time.ParseDuration(string(b))
	if err != nil {
		return errors.Wrapf(err, "duration %q", b)
	}
	d.Duration = v
	return nil
}

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

type Config struct {
	Window  Window   `toml:"window"`
	Shaders Shaders  `toml:"shaders"`
	Texture Texture  `toml:"texture"`
	Profile Profile  `toml:"profile"`
	Stats   Duration `toml:"stats"`
	Clear   Color    `toml:"clear"`
}

// Default returns the settings shared by the programs: an 800x600 window with
// the driver's default context, a red background and the shaders under
// ./shaders.
func Default() Config {
	return Config{
		Window: Window{
			Title:     "OpenGL 101",
			Width:     800,
			Height:    600,
			Resizable: true,
		},
		Shaders: Shaders{
			Vertex:   "shaders/vert.shader",
			Fragment: "shaders/frag.shader",
		},
		Clear: Red,
	}
}

// Core32 returns def with a forward compatible 3.2 core context requested.
func Core32(def Config) Config {
	def.Window.Major, def.Window.Minor = 3, 2
	def.Window.Core = true
	def.Window.ForwardCompat = true
	return def
}

// Load overlays the TOML file at path onto cfg. Keys that do not map to a
// setting are an error.
func Load(path string, cfg *Config) error {
	f, err := os.Open(path)
	if err != nil {
		return errors.Wrap(err, "open config")
	}
	defer f.Close()

	dec := toml.NewDecoder(f)
	dec.DisallowUnknownFields()
	if err := dec.Decode(cfg); err != nil {
		return errors.Wrapf(err, "parse config %s", path)
	}
	return nil
}

// Validate rejects settings no window could be opened with.
func (c Config) Validate() error {
	w := c.Window
	if w.Width <= 0 || w.Height <= 0 {
		return errors.Wrapf(ErrWindowSize, "%d x %d", w.Width, w.Height)
	}
	if w.Major < 0 || w.Minor < 0 || (w.Major == 0 && w.Minor != 0) {
		return errors.Wrapf(ErrVersion, "%d.%d", w.Major, w.Minor)
	}
	if c.Stats.Duration < 0 {
		return errors.Wrap(ErrStats, c.Stats.String())
	}
	return nil
}

// Parse resolves the configuration for a program from its defaults, the file
// named by -config and the remaining flags, in that order of precedence from
// lowest to highest. Only flags given on the command line override the file.
func Parse(fs *flag.FlagSet, args []string, def Config) (Config, error) {
	var (
		path   = fs.String("config", "", "read settings from TOML `file`")
		width  = fs.Int("width", def.Window.Width, "window width in pixels")
		height = fs.Int("height", def.Window.Height, "window height in pixels")
		vsync  = fs.Bool("vsync", def.Window.VSync, "synchronize buffer swaps with the display")
		cpu    = fs.String("cpuprofile", def.Profile.CPU, "write cpu profile to `file`")
		mem    = fs.String("memprofile", def.Profile.Mem, "write memory profile to `file`")
		stats  = fs.Duration("stats", def.Stats.Duration, "log frame rate every `interval` (0 disables)")
		bg     = def.Clear
	)
	fs.TextVar(&bg, "clear", def.Clear, "background `color` as rrggbb or rrggbbaa")
	if err := fs.Parse(args); err != nil {
		return def, err
	}

	cfg := def
	if *path != "" {
		if err := Load(*path, &cfg); err != nil {
			return def, err
		}
	}

	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "width":
			cfg.Window.Width = *width
		case "height":
			cfg.Window.Height = *height
		case "vsync":
			cfg.Window.VSync = *vsync
		case "cpuprofile":
			cfg.Profile.CPU = *cpu
		case "memprofile":
			cfg.Profile.Mem = *mem
		case "stats":
			cfg.Stats.Duration = *stats
		case "clear":
			cfg.Clear = bg
		}
	})
	return cfg, cfg.Validate()
}
