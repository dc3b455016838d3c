// Command quire is a small terminal text editor.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/quire"
	"github.com/iw2rmb/quire/buffer"
	"github.com/iw2rmb/quire/editor"
	"github.com/iw2rmb/quire/filetype"
)

type options struct {
	ConfigPath string
	LogPath    string
	LogLevel   string
	File       string
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	opts, showVersion, err := parseFlags(args, stderr)
	if errors.Is(err, flag.ErrHelp) {
		return 0
	}
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 2
	}
	if showVersion {
		fmt.Fprintln(stdout, quire.Banner())
		return 0
	}

	logger, closeLog, err := newLogger(opts.LogPath, opts.LogLevel)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	defer closeLog()

	types, err := loadFileTypes(opts.ConfigPath)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	doc, message := openDocument(opts.File, buffer.Options{FileTypes: types, Logger: logger})
	cfg := editor.Config{
		Document: doc,
		Style:    editor.DefaultStyle(),
		Message:  message,
		Logger:   logger,
	}

	logger.Info("starting", "version", quire.Version(), "file", opts.File)
	p := tea.NewProgram(model{editor: editor.New(cfg)}, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		logger.Error("program failed", "error", err)
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

func parseFlags(args []string, stderr io.Writer) (options, bool, error) {
	var opts options
	var showVersion bool

	fs := flag.NewFlagSet("quire", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&opts.ConfigPath, "config", "", "Path to a file type profile file (.toml, .yaml)")
	fs.StringVar(&opts.ConfigPath, "c", "", "Path to a file type profile file (shorthand)")
	fs.StringVar(&opts.LogPath, "log", "", "Write logs to this file")
	fs.StringVar(&opts.LogLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	fs.BoolVar(&showVersion, "version", false, "Show version information")
	fs.BoolVar(&showVersion, "v", false, "Show version information (shorthand)")

	fs.Usage = func() {
		fmt.Fprintf(stderr, "%s\n\n", quire.Banner())
		fmt.Fprintf(stderr, "Usage: quire [options] [file]\n\n")
		fmt.Fprintf(stderr, "Options:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return opts, false, err
	}
	if fs.NArg() > 1 {
		return opts, false, fmt.Errorf("expected at most one file, got %d", fs.NArg())
	}
	opts.File = fs.Arg(0)

	if _, err := parseLogLevel(opts.LogLevel); err != nil {
		return opts, false, err
	}
	return opts, showVersion, nil
}

func parseLogLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.ToLower(s))); err != nil {
		return 0, fmt.Errorf("invalid log level %q (must be debug, info, warn, or error)", s)
	}
	return level, nil
}

// newLogger writes text logs to path. An empty path discards them: the
// terminal belongs to the editor.
func newLogger(path, level string) (*slog.Logger, func(), error) {
	if path == "" {
		return slog.New(slog.DiscardHandler), func() {}, nil
	}
	lvl, err := parseLogLevel(level)
	if err != nil {
		return nil, nil, err
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	h := slog.NewTextHandler(f, &slog.HandlerOptions{Level: lvl})
	return slog.New(h), func() { _ = f.Close() }, nil
}

// loadFileTypes returns the built-in profiles, extended by the profile file
// at path when one is given.
func loadFileTypes(path string) (*filetype.Registry, error) {
	types := filetype.Builtin()
	if path == "" {
		return types, nil
	}
	extra, err := filetype.Load(path)
	if err != nil {
		return nil, err
	}
	types.Register(extra...)
	return types, nil
}

// openDocument opens path for editing. A file that cannot be read still
// yields a document named after it, so saving creates the file; the error
// becomes the initial message.
func openDocument(path string, opt buffer.Options) (*buffer.Document, string) {
	if path == "" {
		return buffer.New(opt), ""
	}
	doc, err := buffer.Open(path, opt)
	if err == nil {
		return doc, ""
	}
	opt.Logger.Warn("open failed", "path", path, "error", err)
	doc = buffer.New(opt)
	doc.SetFileName(path)
	if errors.Is(err, os.ErrNotExist) {
		return doc, fmt.Sprintf("New file: %s", path)
	}
	return doc, fmt.Sprintf("Could not open file: %v", err)
}

// model adapts editor.Model to tea.Model.
type model struct {
	editor editor.Model
}

func (m model) Init() tea.Cmd { return m.editor.Init() }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.editor, cmd = m.editor.Update(msg)
	return m, cmd
}

func (m model) View() string { return m.editor.View() }
