// Package main is a terminal editor built on the tendril editor core.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/iw2rmb/tendril"
	"github.com/iw2rmb/tendril/editor"
	"github.com/iw2rmb/tendril/internal/config"
	"github.com/iw2rmb/tendril/internal/logging"
	"github.com/iw2rmb/tendril/internal/textfile"
)

type options struct {
	configPath string
	logLevel   string
	width      int
	readOnly   bool
	status     bool
	path       string
}

func main() {
	os.Exit(run())
}

func run() int {
	opts, ok := parseFlags()
	if !ok {
		return 2
	}

	settings, err := config.Load(opts.configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	if opts.logLevel != "" {
		settings.Log.Level = opts.logLevel
	}
	if opts.width > 0 {
		settings.Layout.MarginRight = settings.Layout.MarginLeft + opts.width
	}
	if err := settings.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	log, closeLog, err := logging.New(settings.Log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to open log: %v\n", err)
		return 1
	}
	defer closeLog()

	cfg := editor.Config{
		MarginLeft:   settings.Layout.MarginLeft,
		MarginRight:  settings.Layout.MarginRight,
		FontSize:     settings.Layout.FontSize,
		HistoryLimit: settings.History.Limit,
		Logger:       log,
		Style:        editor.DefaultStyle(),
		ShowStatus:   opts.status,
		ReadOnly:     opts.readOnly,
	}

	var file *textfile.File
	if opts.path != "" {
		file = textfile.New(opts.path)
		cfg.Sink = file
	}

	ed := editor.New(cfg)
	if file != nil {
		err := ed.Document().Load(context.Background(), file)
		switch {
		case err == nil:
		case errors.Is(err, os.ErrNotExist):
			log.Info("new file", zap.String("path", opts.path))
		default:
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 1
		}
	}

	log.Info("starting", zap.String("version", tendril.Version()), zap.String("path", opts.path))
	p := tea.NewProgram(model{editor: ed}, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

func parseFlags() (options, bool) {
	var opts options
	var showVersion bool

	flag.StringVar(&opts.configPath, "config", "", "Path to a TOML configuration file")
	flag.StringVar(&opts.logLevel, "log-level", "", "Log level override (debug, info, warn, error)")
	flag.IntVar(&opts.width, "width", 0, "Wrap width in columns (0 follows the window)")
	flag.BoolVar(&opts.readOnly, "readonly", false, "Open the file read-only")
	flag.BoolVar(&opts.status, "status", true, "Show the status line")
	flag.BoolVar(&showVersion, "version", false, "Show version information")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "tendril - a character-level wrapping text editor\n\n")
		fmt.Fprintf(os.Stderr, "Usage: tendril [options] [file]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nKeys: ctrl+s save, ctrl+z/ctrl+y undo/redo, alt+=/alt+- font size, ctrl+p caret, ctrl+q quit\n")
	}
	flag.Parse()

	if showVersion {
		fmt.Printf("tendril %s\n", tendril.VersionTag())
		os.Exit(0)
	}
	if flag.NArg() > 1 {
		flag.Usage()
		return opts, false
	}
	opts.path = flag.Arg(0)
	return opts, true
}

type model struct {
	editor editor.Model
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.editor = m.editor.SetSize(msg.Width, msg.Height)
		return m, nil
	case tea.KeyMsg:
		if msg.String() == "ctrl+q" || msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.editor, cmd = m.editor.Update(msg)
	return m, cmd
}

func (m model) View() string { return m.editor.View() }
