package editor

import (
	"context"
	"errors"
	"iter"
)

var (
	ErrNoSource = errors.New("editor: no source")
	ErrNoSink   = errors.New("editor: no sink")
)

// Source supplies the characters of a document, line breaks included.
type Source interface {
	LoadCharacters(ctx context.Context) ([]rune, error)
}

// Sink stores the characters of a document in order.
type Sink interface {
	SaveCharacters(ctx context.Context, chars iter.Seq[rune]) error
}

// SourceFunc adapts a function to Source.
type SourceFunc func(ctx context.Context) ([]rune, error)

func (f SourceFunc) LoadCharacters(ctx context.Context) ([]rune, error) { return f(ctx) }

// SinkFunc adapts a function to Sink.
type SinkFunc func(ctx context.Context, chars iter.Seq[rune]) error

func (f SinkFunc) SaveCharacters(ctx context.Context, chars iter.Seq[rune]) error {
	return f(ctx, chars)
}

// StringSource loads a fixed string.
type StringSource string

func (s StringSource) LoadCharacters(context.Context) ([]rune, error) { return []rune(string(s)), nil }
