package main

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/iw2rmb/quire"
	"github.com/iw2rmb/quire/buffer"
)

func TestRun_Version(t *testing.T) {
	var stdout, stderr bytes.Buffer
	if code := run([]string{"-version"}, &stdout, &stderr); code != 0 {
		t.Fatalf("exit=%d stderr=%q", code, stderr.String())
	}
	if got := strings.TrimSpace(stdout.String()); got != quire.Banner() {
		t.Fatalf("stdout=%q", got)
	}
}

func TestRun_BadFlags(t *testing.T) {
	cases := [][]string{
		{"-log-level", "loud"},
		{"a.txt", "b.txt"},
		{"-nope"},
	}
	for _, args := range cases {
		var stdout, stderr bytes.Buffer
		if code := run(args, &stdout, &stderr); code != 2 {
			t.Fatalf("run(%q)=%d, want 2", args, code)
		}
	}
}

func TestParseFlags(t *testing.T) {
	opts, showVersion, err := parseFlags([]string{"-c", "types.toml", "-log-level", "DEBUG", "main.go"}, &bytes.Buffer{})
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if showVersion || opts.ConfigPath != "types.toml" || opts.LogLevel != "DEBUG" || opts.File != "main.go" {
		t.Fatalf("opts=%+v version=%v", opts, showVersion)
	}
}

func TestParseLogLevel(t *testing.T) {
	lvl, err := parseLogLevel("warn")
	if err != nil || lvl != slog.LevelWarn {
		t.Fatalf("level=%v err=%v", lvl, err)
	}
	if _, err := parseLogLevel("verbose"); err == nil {
		t.Fatalf("expected error")
	}
}

func TestNewLogger_WritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "quire.log")
	logger, closeLog, err := newLogger(path, "info")
	if err != nil {
		t.Fatalf("newLogger: %v", err)
	}
	logger.Debug("hidden")
	logger.Info("shown", "k", "v")
	closeLog()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if strings.Contains(string(data), "hidden") || !strings.Contains(string(data), "msg=shown k=v") {
		t.Fatalf("log=%q", data)
	}
}

func TestLoadFileTypes(t *testing.T) {
	types, err := loadFileTypes("")
	if err != nil {
		t.Fatalf("builtin: %v", err)
	}
	if got := types.Detect("x.rs").Name; got != "Rust" {
		t.Fatalf("detect=%q", got)
	}

	path := filepath.Join(t.TempDir(), "types.toml")
	profile := "[[filetype]]\nname = \"Zig\"\nextensions = [\"zig\"]\nnumbers = true\n"
	if err := os.WriteFile(path, []byte(profile), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	types, err = loadFileTypes(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got := types.Detect("main.zig").Name; got != "Zig" {
		t.Fatalf("detect=%q", got)
	}

	if _, err := loadFileTypes(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Fatalf("expected error for a missing profile file")
	}
}

func TestOpenDocument(t *testing.T) {
	opt := buffer.Options{Logger: slog.New(slog.DiscardHandler)}

	doc, msg := openDocument("", opt)
	if doc.FileName() != "" || msg != "" {
		t.Fatalf("empty: name=%q msg=%q", doc.FileName(), msg)
	}

	path := filepath.Join(t.TempDir(), "new.go")
	doc, msg = openDocument(path, opt)
	if doc.FileName() != path || !doc.IsEmpty() {
		t.Fatalf("missing file: name=%q len=%d", doc.FileName(), doc.Len())
	}
	if msg != "New file: "+path {
		t.Fatalf("msg=%q", msg)
	}

	if err := os.WriteFile(path, []byte("package main\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	doc, msg = openDocument(path, opt)
	if doc.Len() != 1 || msg != "" || doc.FileType().Name != "Go" {
		t.Fatalf("existing: len=%d msg=%q type=%q", doc.Len(), msg, doc.FileType().Name)
	}

	doc, msg = openDocument(t.TempDir(), opt)
	if !strings.HasPrefix(msg, "Could not open file") {
		t.Fatalf("directory: msg=%q", msg)
	}
}
