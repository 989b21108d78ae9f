package editor

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
)

func (m Model) updateKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	if !m.focused {
		return m, nil
	}

	// Paste events should always insert literal text and never trigger shortcuts.
	if msg.Type == tea.KeyRunes && msg.Paste && len(msg.Runes) > 0 {
		if !m.cfg.ReadOnly {
			m.doc.InsertText(normalizeLineBreaks(string(msg.Runes)))
		}
		return m, nil
	}

	km := m.cfg.KeyMap
	switch {
	case key.Matches(msg, km.Left):
		m.doc.Move(DirLeft)
	case key.Matches(msg, km.Right):
		m.doc.Move(DirRight)
	case key.Matches(msg, km.Up):
		m.doc.Move(DirUp)
	case key.Matches(msg, km.Down):
		m.doc.Move(DirDown)

	case key.Matches(msg, km.Backspace):
		if !m.cfg.ReadOnly {
			m.doc.DeleteBackward()
		}
	case key.Matches(msg, km.Enter):
		if !m.cfg.ReadOnly {
			m.doc.InsertRune('\n')
		}

	case key.Matches(msg, km.Undo):
		if !m.cfg.ReadOnly {
			_ = m.doc.Undo()
		}
	case key.Matches(msg, km.Redo):
		if !m.cfg.ReadOnly {
			_ = m.doc.Redo()
		}

	case key.Matches(msg, km.ZoomIn):
		m.doc.ZoomIn()
	case key.Matches(msg, km.ZoomOut):
		m.doc.ZoomOut()

	case key.Matches(msg, km.PrintCaret):
		c := m.doc.Caret()
		m.doc.log.Info("caret", zap.Int("x", c.X), zap.Int("y", c.Y), zap.Int("height", c.Height))
		m.status = fmt.Sprintf("caret %d,%d", c.X, c.Y)

	case key.Matches(msg, km.Save):
		m.status = m.save()

	default:
		if msg.Type == tea.KeyTab {
			if !m.cfg.ReadOnly {
				m.doc.InsertRune('\t')
			}
			return m, nil
		}

		if msg.Type == tea.KeySpace && !msg.Alt {
			if !m.cfg.ReadOnly {
				m.doc.InsertRune(' ')
			}
			return m, nil
		}

		if msg.Type == tea.KeyRunes && len(msg.Runes) > 0 && !msg.Alt {
			if !m.cfg.ReadOnly {
				m.doc.InsertText(string(msg.Runes))
			}
		}
	}

	return m, nil
}

// normalizeLineBreaks turns CRLF and lone CR into '\n'.
func normalizeLineBreaks(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.ReplaceAll(s, "\r", "\n")
}

func (m Model) save() string {
	if m.cfg.Sink == nil {
		return "no file to save to"
	}
	if err := m.doc.Save(context.Background(), m.cfg.Sink); err != nil {
		return err.Error()
	}
	return fmt.Sprintf("saved %d chars", m.doc.Len())
}
