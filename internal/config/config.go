// Package config resolves the optional shadcn.yaml used by the CLI.
package config

import (
	stderrors "errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/go-drift/shadcn/internal/showcase"
	"github.com/go-drift/shadcn/pkg/errors"
	"github.com/go-drift/shadcn/pkg/logging"
	"github.com/go-drift/shadcn/pkg/theme"
)

// FileName is the config file looked up in the working directory.
const FileName = "shadcn.yaml"

// Defaults applied when the file or a field is missing.
const (
	DefaultWidth  = 800
	DefaultHeight = 600
	DefaultScene  = "popover"
	DefaultTheme  = "light"
)

// Config represents the optional shadcn.yaml configuration.
type Config struct {
	Viewport ViewportConfig `yaml:"viewport"`
	// Theme is a builtin theme name or a path to a theme file.
	Theme    string `yaml:"theme,omitempty"`
	Scene    string `yaml:"scene,omitempty"`
	Output   string `yaml:"output,omitempty"`
	LogLevel string `yaml:"log_level,omitempty" validate:"omitempty,oneof=trace debug info warn error"`
}

// ViewportConfig sizes rendered frames in pixels.
type ViewportConfig struct {
	Width  int `yaml:"width,omitempty" validate:"gte=0,lte=8192"`
	Height int `yaml:"height,omitempty" validate:"gte=0,lte=8192"`
}

// Resolved contains resolved configuration values.
type Resolved struct {
	// Path is the file the values came from, empty when none was found.
	Path     string
	Width    int
	Height   int
	Theme    string
	Scene    string
	Output   string
	LogLevel string
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// LoadOptional reads shadcn.yaml from dir if present.
func LoadOptional(dir string) (*Config, string, error) {
	path := filepath.Join(dir, FileName)
	data, err := os.ReadFile(path)
	if err != nil {
		if stderrors.Is(err, os.ErrNotExist) {
			return &Config{}, "", nil
		}
		return nil, "", &errors.Error{Op: "config.Load", Kind: errors.KindConfig, Err: err, Path: path}
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, "", &errors.Error{Op: "config.Load", Kind: errors.KindParsing, Err: err, Path: path}
	}
	if err := validate.Struct(&cfg); err != nil {
		return nil, "", &errors.Error{Op: "config.Load", Kind: errors.KindConfig, Err: err, Path: path}
	}
	return &cfg, path, nil
}

// Resolve loads shadcn.yaml (if present) from dir and applies defaults.
func Resolve(dir string) (*Resolved, error) {
	cfg, path, err := LoadOptional(dir)
	if err != nil {
		return nil, err
	}

	r := &Resolved{
		Path:     path,
		Width:    cfg.Viewport.Width,
		Height:   cfg.Viewport.Height,
		Theme:    strings.TrimSpace(cfg.Theme),
		Scene:    strings.TrimSpace(cfg.Scene),
		Output:   strings.TrimSpace(cfg.Output),
		LogLevel: cfg.LogLevel,
	}
	if r.Width == 0 {
		r.Width = DefaultWidth
	}
	if r.Height == 0 {
		r.Height = DefaultHeight
	}
	if r.Theme == "" {
		r.Theme = DefaultTheme
	}
	if r.Scene == "" {
		r.Scene = DefaultScene
	}
	if r.Output == "" {
		r.Output = r.Scene + ".png"
	}
	if r.Theme != DefaultTheme && !isBuiltin(r.Theme) && path != "" && !filepath.IsAbs(r.Theme) {
		r.Theme = filepath.Join(dir, r.Theme)
	}
	if _, ok := showcase.Lookup(r.Scene); !ok {
		return nil, &errors.Error{
			Op:   "config.Resolve",
			Kind: errors.KindConfig,
			Err:  fmt.Errorf("unknown scene %q (have %s)", r.Scene, strings.Join(showcase.Names(), ", ")),
			Path: path,
		}
	}

	logging.L().Debug().Str("path", path).Str("scene", r.Scene).Str("theme", r.Theme).Msg("config resolved")
	return r, nil
}

func isBuiltin(name string) bool {
	switch name {
	case "light", "dark", "terminal":
		return true
	}
	return false
}

// LoadTheme returns the builtin theme called name or loads it from a
// theme file.
func LoadTheme(name string) (*theme.ThemeData, error) {
	switch name {
	case "", "light":
		return theme.DefaultLightTheme(), nil
	case "dark":
		return theme.DefaultDarkTheme(), nil
	case "terminal":
		return theme.TerminalTheme(), nil
	}
	return theme.Load(name)
}
