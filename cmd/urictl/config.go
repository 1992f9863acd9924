package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"slices"

	"github.com/BurntSushi/toml"
	"github.com/spf13/pflag"
)

const (
	formatPretty  = "pretty"
	formatJSON    = "json"
	formatMsgpack = "msgpack"
)

// settings mirrors the TOML config file:
//
//	[output]
//	format = "json"
//	color = "off"
//
//	[log]
//	level = "debug"
//	dev = true
type settings struct {
	Output outputSettings `toml:"output"`
	Log    logSettings    `toml:"log"`
}

type outputSettings struct {
	Format string `toml:"format"`
	Color  string `toml:"color"`
}

type logSettings struct {
	Level string `toml:"level"`
	Dev   bool   `toml:"dev"`
}

func defaultSettings() settings {
	return settings{
		Output: outputSettings{Format: formatPretty, Color: "auto"},
		Log:    logSettings{Level: "info"},
	}
}

func loadSettings(path string) (settings, error) {
	s := defaultSettings()
	meta, err := toml.DecodeFile(path, &s)
	if err != nil {
		return settings{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if keys := meta.Undecoded(); len(keys) > 0 {
		return settings{}, fmt.Errorf("%s: unknown keys %v", path, keys)
	}
	return s, nil
}

// applyFlags overrides the settings with flags set on the command line.
func (s *settings) applyFlags(fs *pflag.FlagSet) error {
	for name, dst := range map[string]*string{
		"format":    &s.Output.Format,
		"color":     &s.Output.Color,
		"log-level": &s.Log.Level,
	} {
		if !fs.Changed(name) {
			continue
		}
		v, err := fs.GetString(name)
		if err != nil {
			return err
		}
		*dst = v
	}
	if fs.Changed("log-dev") {
		v, err := fs.GetBool("log-dev")
		if err != nil {
			return err
		}
		s.Log.Dev = v
	}
	return nil
}

func (s *settings) validate() error {
	if !slices.Contains([]string{formatPretty, formatJSON, formatMsgpack}, s.Output.Format) {
		return fmt.Errorf("unknown format: %s", s.Output.Format)
	}
	if !slices.Contains([]string{"auto", "on", "off"}, s.Output.Color) {
		return fmt.Errorf("unknown color mode: %s", s.Output.Color)
	}
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(s.Log.Level)); err != nil {
		return fmt.Errorf("unknown log level: %w", err)
	}
	return nil
}

func (s *settings) logLevel() slog.Level {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(s.Log.Level)); err != nil {
		return slog.LevelInfo
	}
	return lvl
}

// useColor resolves the color mode for w, "auto" enables color on terminals only.
func (s *settings) useColor(w io.Writer) bool {
	switch s.Output.Color {
	case "on":
		return true
	case "off":
		return false
	}
	f, ok := w.(*os.File)
	return ok && isTerminal(f)
}
