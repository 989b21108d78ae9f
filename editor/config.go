package editor

import (
	"math"

	"go.uber.org/zap"
)

const (
	// DefaultFontSize matches the size new documents open with.
	DefaultFontSize = 12
	// MinFontSize is the smallest size SetFontSize accepts.
	MinFontSize = 4
	// FontSizeStep is the ZoomIn/ZoomOut increment.
	FontSizeStep = 4
)

// Config configures a Document and the Model that hosts it.
type Config struct {
	// Initial text. The cursor starts at the beginning.
	Text string

	// Layout. A MarginRight at or left of MarginLeft disables wrapping; the
	// Model then follows the window width instead.
	MarginLeft  int
	MarginRight int
	FontSize    int
	Measure     Measurer

	// Forwarded to buffer.NewHistory.
	HistoryLimit int

	// Logger receives debug events. Nil discards them.
	Logger *zap.Logger

	// OnChange is called after every effective edit, move, or relayout.
	OnChange func(ChangeEvent)

	// Model options.
	Style        Style
	KeyMap       KeyMap
	ScrollPolicy ScrollPolicy
	ShowStatus   bool
	ReadOnly     bool

	// Sink receives the document on the Save binding.
	Sink Sink
}

// LayoutConfig is everything Relayout needs besides the sequence.
type LayoutConfig struct {
	MarginLeft  int
	MarginRight int
	FontSize    int
	Measure     Measurer
}

func (c Config) layoutConfig() LayoutConfig {
	return LayoutConfig{
		MarginLeft:  c.MarginLeft,
		MarginRight: c.MarginRight,
		FontSize:    c.FontSize,
		Measure:     c.Measure,
	}
}

func (c LayoutConfig) normalized() LayoutConfig {
	if c.MarginLeft < 0 {
		c.MarginLeft = 0
	}
	if c.MarginRight <= c.MarginLeft {
		c.MarginRight = math.MaxInt
	}
	if c.FontSize <= 0 {
		c.FontSize = DefaultFontSize
	}
	if c.Measure == nil {
		c.Measure = CellMeasure{}
	}
	return c
}

// Wraps reports whether the configuration wraps lines at all.
func (c LayoutConfig) Wraps() bool { return c.MarginRight > c.MarginLeft }
