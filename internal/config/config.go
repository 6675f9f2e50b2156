// Package config loads picker settings from flags, EASYFOCUS_* environment
// variables and an optional YAML file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/easyfocus/easyfocus/internal/label"
	"github.com/easyfocus/easyfocus/internal/layout"
	"github.com/easyfocus/easyfocus/internal/logging"
	"github.com/easyfocus/easyfocus/internal/platform"
	"github.com/easyfocus/easyfocus/internal/render"
	"github.com/easyfocus/easyfocus/internal/selection"
)

// EnvPrefix prefixes every environment override, e.g. EASYFOCUS_KEYS.
const EnvPrefix = "EASYFOCUS"

// Colors are hex RGB strings, with or without a leading '#'.
type Colors struct {
	UrgentBg    string `yaml:"urgent-bg"`
	UrgentFg    string `yaml:"urgent-fg"`
	FocusedBg   string `yaml:"focused-bg"`
	FocusedFg   string `yaml:"focused-fg"`
	UnfocusedBg string `yaml:"unfocused-bg"`
	UnfocusedFg string `yaml:"unfocused-fg"`
}

// Config is the resolved configuration.
type Config struct {
	Area      string        `yaml:"area"`
	SortBy    string        `yaml:"sort-by"`
	Keys      string        `yaml:"keys"`
	Modifier  string        `yaml:"modifier"`
	CancelKey string        `yaml:"cancel-key"`
	Rapid     bool          `yaml:"rapid"`
	Print     string        `yaml:"print"`
	Display   string        `yaml:"display"`
	Timeout   time.Duration `yaml:"timeout"`
	Colors    Colors        `yaml:"colors"`
	LogLevel  string        `yaml:"log-level"`
	LogFile   string        `yaml:"log-file"`

	// File is the config file that was read, empty if none.
	File string `yaml:"-"`
}

// Flag names that map onto config keys.
var flagKeys = map[string]string{
	"sort-by":            "sort-by",
	"keys":               "keys",
	"modifier":           "modifier",
	"cancel-key":         "cancel-key",
	"rapid":              "rapid",
	"display":            "display",
	"timeout":            "timeout",
	"log-level":          "log-level",
	"log-file":           "log-file",
	"color-urgent-bg":    "colors.urgent-bg",
	"color-urgent-fg":    "colors.urgent-fg",
	"color-focused-bg":   "colors.focused-bg",
	"color-focused-fg":   "colors.focused-fg",
	"color-unfocused-bg": "colors.unfocused-bg",
	"color-unfocused-fg": "colors.unfocused-fg",
}

func setDefaults(v *viper.Viper) {
	def := render.DefaultPalette()
	v.SetDefault("area", "output")
	v.SetDefault("sort-by", "location")
	v.SetDefault("keys", string(label.ModeAvy))
	v.SetDefault("modifier", "")
	v.SetDefault("cancel-key", selection.DefaultCancelKey)
	v.SetDefault("rapid", false)
	v.SetDefault("print", "")
	v.SetDefault("display", "auto")
	v.SetDefault("timeout", time.Duration(0))
	v.SetDefault("colors.urgent-bg", def.Urgent.Background.Hex())
	v.SetDefault("colors.urgent-fg", def.Urgent.Foreground.Hex())
	v.SetDefault("colors.focused-bg", def.Focused.Background.Hex())
	v.SetDefault("colors.focused-fg", def.Focused.Foreground.Hex())
	v.SetDefault("colors.unfocused-bg", def.Unfocused.Background.Hex())
	v.SetDefault("colors.unfocused-fg", def.Unfocused.Foreground.Hex())
	v.SetDefault("log-level", "warn")
	v.SetDefault("log-file", "")
}

// DefaultDir is $XDG_CONFIG_HOME/easyfocus, falling back to ~/.config.
func DefaultDir() string {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, "easyfocus")
	}
	home, err := homedir.Dir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "easyfocus")
}

// Load resolves the configuration. path names an explicit config file,
// which must exist; otherwise config.yaml in DefaultDir is read if present.
// flags may be nil.
func Load(flags *pflag.FlagSet, path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()

	if path != "" {
		expanded, err := homedir.Expand(path)
		if err != nil {
			return nil, fmt.Errorf("config path: %w", err)
		}
		v.SetConfigFile(expanded)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		if dir := DefaultDir(); dir != "" {
			v.AddConfigPath(dir)
		}
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	if flags != nil {
		if err := bindFlags(v, flags); err != nil {
			return nil, err
		}
	}

	return &Config{
		Area:      v.GetString("area"),
		SortBy:    v.GetString("sort-by"),
		Keys:      v.GetString("keys"),
		Modifier:  v.GetString("modifier"),
		CancelKey: v.GetString("cancel-key"),
		Rapid:     v.GetBool("rapid"),
		Print:     v.GetString("print"),
		Display:   v.GetString("display"),
		Timeout:   v.GetDuration("timeout"),
		Colors: Colors{
			UrgentBg:    v.GetString("colors.urgent-bg"),
			UrgentFg:    v.GetString("colors.urgent-fg"),
			FocusedBg:   v.GetString("colors.focused-bg"),
			FocusedFg:   v.GetString("colors.focused-fg"),
			UnfocusedBg: v.GetString("colors.unfocused-bg"),
			UnfocusedFg: v.GetString("colors.unfocused-fg"),
		},
		LogLevel: v.GetString("log-level"),
		LogFile:  v.GetString("log-file"),
		File:     v.ConfigFileUsed(),
	}, nil
}

func bindFlags(v *viper.Viper, flags *pflag.FlagSet) error {
	for name, key := range flagKeys {
		f := flags.Lookup(name)
		if f == nil {
			continue
		}
		if err := v.BindPFlag(key, f); err != nil {
			return fmt.Errorf("bind flag %s: %w", name, err)
		}
	}

	// Shorthand switches from the classic command line.
	if changed(flags, "all") {
		v.Set("area", "all")
	}
	if changed(flags, "current") {
		v.Set("area", "container")
	}
	if changed(flags, "con-id") {
		v.Set("print", "con-id")
	}
	if changed(flags, "window-id") {
		v.Set("print", "window-id")
	}
	if changed(flags, "debug") {
		v.Set("log-level", "debug")
	}
	return nil
}

func changed(flags *pflag.FlagSet, name string) bool {
	f := flags.Lookup(name)
	return f != nil && f.Changed && f.Value.String() == "true"
}

// Validate checks every enumerated value, color and the timeout.
func (c *Config) Validate() error {
	var errs []error
	if _, err := layout.ParseSearchArea(c.Area); err != nil {
		errs = append(errs, err)
	}
	if _, err := layout.ParseSortMethod(c.SortBy); err != nil {
		errs = append(errs, err)
	}
	if _, err := label.ParseMode(c.Keys); err != nil {
		errs = append(errs, err)
	}
	if _, err := platform.ParseModifiers(c.Modifier); err != nil {
		errs = append(errs, err)
	}
	if _, err := selection.ParsePrintKind(c.Print); err != nil {
		errs = append(errs, err)
	}
	switch c.Display {
	case "", "auto", "x11", "tty":
	default:
		errs = append(errs, fmt.Errorf("unknown display: %q (expected auto, x11, or tty)", c.Display))
	}
	if strings.TrimSpace(c.CancelKey) == "" {
		errs = append(errs, errors.New("cancel-key must not be empty"))
	}
	if c.Timeout < 0 {
		errs = append(errs, fmt.Errorf("timeout must not be negative: %s", c.Timeout))
	}
	if _, err := c.Palette(); err != nil {
		errs = append(errs, err)
	}
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// Palette parses the label colors.
func (c *Config) Palette() (render.Palette, error) {
	var p render.Palette
	fields := []struct {
		name string
		in   string
		out  *render.Scheme
		bg   bool
	}{
		{"urgent-bg", c.Colors.UrgentBg, &p.Urgent, true},
		{"urgent-fg", c.Colors.UrgentFg, &p.Urgent, false},
		{"focused-bg", c.Colors.FocusedBg, &p.Focused, true},
		{"focused-fg", c.Colors.FocusedFg, &p.Focused, false},
		{"unfocused-bg", c.Colors.UnfocusedBg, &p.Unfocused, true},
		{"unfocused-fg", c.Colors.UnfocusedFg, &p.Unfocused, false},
	}
	for _, f := range fields {
		col, err := render.ParseColor(f.in)
		if err != nil {
			return render.Palette{}, fmt.Errorf("color %s: %w", f.name, err)
		}
		if f.bg {
			f.out.Background = col
		} else {
			f.out.Foreground = col
		}
	}
	return p, nil
}

// SelectionOptions converts the config into selection loop options.
func (c *Config) SelectionOptions() (selection.Options, error) {
	area, err := layout.ParseSearchArea(c.Area)
	if err != nil {
		return selection.Options{}, err
	}
	sortBy, err := layout.ParseSortMethod(c.SortBy)
	if err != nil {
		return selection.Options{}, err
	}
	mode, err := label.ParseMode(c.Keys)
	if err != nil {
		return selection.Options{}, err
	}
	mods, err := platform.ParseModifiers(c.Modifier)
	if err != nil {
		return selection.Options{}, err
	}
	printKind, err := selection.ParsePrintKind(c.Print)
	if err != nil {
		return selection.Options{}, err
	}
	return selection.Options{
		Area:      area,
		Sort:      sortBy,
		Alphabet:  label.AlphabetFor(mode),
		CancelKey: c.CancelKey,
		Modifiers: mods,
		Rapid:     c.Rapid,
		Print:     printKind,
		Timeout:   c.Timeout,
	}, nil
}

// DisplayOptions returns the settings display backends need.
func (c *Config) DisplayOptions() (platform.DisplayOptions, error) {
	p, err := c.Palette()
	if err != nil {
		return platform.DisplayOptions{}, err
	}
	return platform.DisplayOptions{Palette: p, CancelKey: c.CancelKey}, nil
}

// SortWithoutAll reports a sort order that has no effect because only the
// current output is searched.
func (c *Config) SortWithoutAll() bool {
	area, _ := layout.ParseSearchArea(c.Area)
	sortBy, _ := layout.ParseSortMethod(c.SortBy)
	return area != layout.AllOutputs && sortBy != layout.ByLocation
}
