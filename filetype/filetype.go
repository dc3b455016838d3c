// Package filetype maps file names to language profiles that configure the
// highlight annotator.
package filetype

import (
	"path/filepath"
	"strings"

	"github.com/iw2rmb/quire/highlight"
)

const defaultName = "No filetype"

// FileType is a named language profile.
type FileType struct {
	Name string
	// Extensions lists lower-case extensions including the dot, e.g. ".rs".
	Extensions []string
	Options    highlight.Options
}

// Default returns the profile used when no extension matches. It enables no
// highlighting.
func Default() FileType {
	return FileType{Name: defaultName}
}

// HighlightingOptions returns the annotator options of ft.
func (ft FileType) HighlightingOptions() highlight.Options { return ft.Options }

func (ft FileType) matches(ext string) bool {
	for _, e := range ft.Extensions {
		if strings.EqualFold(e, ext) {
			return true
		}
	}
	return false
}

// Registry resolves file names to profiles. Earlier entries win.
type Registry struct {
	types []FileType
}

func NewRegistry(types ...FileType) *Registry {
	return &Registry{types: append([]FileType(nil), types...)}
}

// Builtin returns a registry holding the built-in profiles.
func Builtin() *Registry {
	return NewRegistry(Rust(), Go(), C())
}

// Register adds ft ahead of every existing profile so it overrides them for
// the extensions it lists.
func (r *Registry) Register(ft ...FileType) {
	r.types = append(append([]FileType(nil), ft...), r.types...)
}

// Types returns the registered profiles in lookup order.
func (r *Registry) Types() []FileType {
	return append([]FileType(nil), r.types...)
}

// Detect returns the profile for fileName, or Default when the extension is
// unknown or fileName is empty. A nil registry only knows Default.
func (r *Registry) Detect(fileName string) FileType {
	if r == nil || fileName == "" {
		return Default()
	}
	ext := filepath.Ext(fileName)
	if ext == "" {
		return Default()
	}
	for _, ft := range r.types {
		if ft.matches(ext) {
			return ft
		}
	}
	return Default()
}
