// Package config loads tendril settings from a TOML file.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"go.uber.org/zap/zapcore"

	"github.com/iw2rmb/tendril/buffer"
	"github.com/iw2rmb/tendril/editor"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid setting")

// Settings is the decoded configuration file.
type Settings struct {
	Layout  Layout  `toml:"layout"`
	History History `toml:"history"`
	Log     Log     `toml:"log"`
}

type Layout struct {
	MarginLeft int `toml:"margin_left"`
	// MarginRight of 0 follows the window width.
	MarginRight int `toml:"margin_right"`
	FontSize    int `toml:"font_size"`
}

type History struct {
	Limit int `toml:"limit"`
}

type Log struct {
	Level string `toml:"level"`
	// File receives log lines. Empty discards them; the terminal belongs to
	// the editor.
	File   string `toml:"file"`
	Format string `toml:"format"`
}

// Default returns the settings used when no file exists.
func Default() Settings {
	return Settings{
		Layout:  Layout{FontSize: editor.DefaultFontSize},
		History: History{Limit: buffer.DefaultHistoryLimit},
		Log:     Log{Level: "info", Format: "json"},
	}
}

// Load reads path over the defaults. A missing file is not an error.
func Load(path string) (Settings, error) {
	s := Default()
	if path == "" {
		return s, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return s, nil
		}
		return s, fmt.Errorf("reading config file %s: %w", path, err)
	}
	return Parse(path, data)
}

// Parse decodes data over the defaults. Unknown keys are rejected. source
// names the input in errors.
func Parse(source string, data []byte) (Settings, error) {
	s := Default()
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&s); err != nil {
		return Default(), newParseError(source, err)
	}
	if err := s.Validate(); err != nil {
		return Default(), fmt.Errorf("%s: %w", source, err)
	}
	return s, nil
}

// Validate checks ranges and enumerations.
func (s Settings) Validate() error {
	if s.Layout.MarginLeft < 0 {
		return fmt.Errorf("%w: layout.margin_left %d is negative", ErrInvalid, s.Layout.MarginLeft)
	}
	if s.Layout.MarginRight < 0 {
		return fmt.Errorf("%w: layout.margin_right %d is negative", ErrInvalid, s.Layout.MarginRight)
	}
	if s.Layout.FontSize < editor.MinFontSize {
		return fmt.Errorf("%w: layout.font_size %d is below %d", ErrInvalid, s.Layout.FontSize, editor.MinFontSize)
	}
	if s.History.Limit <= 0 {
		return fmt.Errorf("%w: history.limit must be positive", ErrInvalid)
	}
	if _, err := zapcore.ParseLevel(s.Log.Level); err != nil {
		return fmt.Errorf("%w: log.level: %v", ErrInvalid, err)
	}
	switch s.Log.Format {
	case "json", "console":
	default:
		return fmt.Errorf("%w: log.format %q (want json or console)", ErrInvalid, s.Log.Format)
	}
	return nil
}

// ParseError represents an error while parsing a configuration file.
type ParseError struct {
	Path    string
	Line    int
	Column  int
	Message string
	Err     error
}

func newParseError(path string, err error) *ParseError {
	pe := &ParseError{Path: path, Message: err.Error(), Err: err}

	var derr *toml.DecodeError
	if errors.As(err, &derr) {
		pe.Line, pe.Column = derr.Position()
	}
	var serr *toml.StrictMissingError
	if errors.As(err, &serr) && len(serr.Errors) > 0 {
		first := &serr.Errors[0]
		pe.Line, pe.Column = first.Position()
		pe.Message = "unknown key " + strings.Join(first.Key(), ".")
	}
	return pe
}

func (e *ParseError) Error() string {
	if e.Line > 0 && e.Column > 0 {
		return fmt.Sprintf("parse error in %s at line %d, column %d: %s", e.Path, e.Line, e.Column, e.Message)
	}
	return fmt.Sprintf("parse error in %s: %s", e.Path, e.Message)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
