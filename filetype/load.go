package filetype

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/iw2rmb/quire/highlight"
)

// Format is the encoding of a profile file.
type Format uint8

const (
	FormatTOML Format = iota
	FormatYAML
)

func (f Format) String() string {
	switch f {
	case FormatTOML:
		return "toml"
	case FormatYAML:
		return "yaml"
	default:
		return "unknown"
	}
}

// FormatFromPath picks the format from path's extension.
func FormatFromPath(path string) (Format, bool) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML, true
	case ".yaml", ".yml":
		return FormatYAML, true
	default:
		return 0, false
	}
}

// ParseError reports a profile file that could not be decoded or validated.
type ParseError struct {
	Path    string
	Line    int
	Column  int
	Message string
	Err     error
}

func (e *ParseError) Error() string {
	if e.Line > 0 && e.Column > 0 {
		return fmt.Sprintf("parse error in %s at line %d, column %d: %s", e.Path, e.Line, e.Column, e.Message)
	}
	if e.Line > 0 {
		return fmt.Sprintf("parse error in %s at line %d: %s", e.Path, e.Line, e.Message)
	}
	return fmt.Sprintf("parse error in %s: %s", e.Path, e.Message)
}

func (e *ParseError) Unwrap() error { return e.Err }

type profileFile struct {
	FileTypes []profile `toml:"filetype" yaml:"filetype"`
}

type profile struct {
	Name              string   `toml:"name" yaml:"name"`
	Extensions        []string `toml:"extensions" yaml:"extensions"`
	Numbers           bool     `toml:"numbers" yaml:"numbers"`
	Strings           bool     `toml:"strings" yaml:"strings"`
	Characters        bool     `toml:"characters" yaml:"characters"`
	Comments          bool     `toml:"comments" yaml:"comments"`
	PrimaryKeywords   []string `toml:"primary_keywords" yaml:"primary_keywords"`
	SecondaryKeywords []string `toml:"secondary_keywords" yaml:"secondary_keywords"`
}

// Load reads file-type profiles from a TOML or YAML file. Profiles are
// listed under a "filetype" array, e.g.
//
//	[[filetype]]
//	name = "Python"
//	extensions = [".py"]
//	numbers = true
//	primary_keywords = ["def", "class"]
func Load(path string) ([]FileType, error) {
	format, ok := FormatFromPath(path)
	if !ok {
		return nil, fmt.Errorf("unsupported profile file %s: want .toml, .yaml or .yml", path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading profiles %s: %w", path, err)
	}
	return decode(path, data, format)
}

// Decode parses profiles from data in the given format.
func Decode(data []byte, format Format) ([]FileType, error) {
	return decode("<data>", data, format)
}

func decode(source string, data []byte, format Format) ([]FileType, error) {
	var pf profileFile
	switch format {
	case FormatTOML:
		if err := toml.Unmarshal(data, &pf); err != nil {
			perr := &ParseError{Path: source, Message: err.Error(), Err: err}
			var derr *toml.DecodeError
			if errors.As(err, &derr) {
				perr.Line, perr.Column = derr.Position()
			}
			return nil, perr
		}
	case FormatYAML:
		if err := yaml.Unmarshal(data, &pf); err != nil {
			return nil, &ParseError{Path: source, Message: err.Error(), Err: err}
		}
	default:
		return nil, fmt.Errorf("unknown profile format %d", format)
	}

	out := make([]FileType, 0, len(pf.FileTypes))
	for i, p := range pf.FileTypes {
		ft, err := p.fileType()
		if err != nil {
			return nil, &ParseError{Path: source, Message: fmt.Sprintf("filetype #%d: %v", i+1, err), Err: err}
		}
		out = append(out, ft)
	}
	return out, nil
}

var (
	errNoName       = errors.New("name is required")
	errNoExtensions = errors.New("at least one extension is required")
)

func (p profile) fileType() (FileType, error) {
	name := strings.TrimSpace(p.Name)
	if name == "" {
		return FileType{}, errNoName
	}
	exts := make([]string, 0, len(p.Extensions))
	for _, e := range p.Extensions {
		e = strings.ToLower(strings.TrimSpace(e))
		if e == "" {
			continue
		}
		if !strings.HasPrefix(e, ".") {
			e = "." + e
		}
		exts = append(exts, e)
	}
	if len(exts) == 0 {
		return FileType{}, errNoExtensions
	}
	return FileType{
		Name:       name,
		Extensions: exts,
		Options: highlight.Options{
			Numbers:           p.Numbers,
			Strings:           p.Strings,
			Characters:        p.Characters,
			Comments:          p.Comments,
			PrimaryKeywords:   p.PrimaryKeywords,
			SecondaryKeywords: p.SecondaryKeywords,
		},
	}, nil
}
