package buffer

import (
	"bufio"
	"log/slog"
	"os"
	"strings"

	"github.com/iw2rmb/quire/filetype"
)

type Options struct {
	// FileTypes resolves file names to profiles. Default: filetype.Builtin().
	FileTypes *filetype.Registry
	Logger    *slog.Logger
}

// Document is an ordered list of rows, optionally associated with a file.
type Document struct {
	rows     []*Row
	fileName string
	changed  bool
	fileType filetype.FileType

	types *filetype.Registry
	log   *slog.Logger
}

// New returns an empty, unnamed document.
func New(opt Options) *Document {
	d := &Document{
		fileType: filetype.Default(),
		types:    opt.FileTypes,
		log:      opt.Logger,
	}
	if d.types == nil {
		d.types = filetype.Builtin()
	}
	if d.log == nil {
		d.log = slog.New(slog.DiscardHandler)
	}
	return d
}

// Open reads path into a new document. Errors from the file system are
// returned as is.
func Open(path string, opt Options) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	d := New(opt)
	d.fileName = path
	d.fileType = d.types.Detect(path)
	for _, line := range splitLines(string(data)) {
		d.rows = append(d.rows, NewRow(line))
	}
	d.Highlight("")

	d.log.Debug("opened document", "path", path, "rows", len(d.rows), "filetype", d.fileType.Name)
	return d, nil
}

// Len returns the number of rows.
func (d *Document) Len() int { return len(d.rows) }

func (d *Document) IsEmpty() bool { return len(d.rows) == 0 }

// Row returns row y, or nil when y is out of range.
func (d *Document) Row(y int) *Row {
	if y < 0 || y >= len(d.rows) {
		return nil
	}
	return d.rows[y]
}

// Text returns the rows joined with '\n'.
func (d *Document) Text() string {
	var sb strings.Builder
	for i, row := range d.rows {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(row.text)
	}
	return sb.String()
}

func (d *Document) FileName() string { return d.fileName }

// SetFileName associates the document with name. The file type is
// re-derived on the next Save.
func (d *Document) SetFileName(name string) { d.fileName = name }

func (d *Document) FileType() filetype.FileType { return d.fileType }

// IsDirty reports whether the document changed since it was opened or last
// saved.
func (d *Document) IsDirty() bool { return d.changed }

// Save writes every row followed by '\n' to the associated file. It is a
// no-op for an unnamed document.
func (d *Document) Save() error {
	if d.fileName == "" {
		return nil
	}

	d.fileType = d.types.Detect(d.fileName)
	if err := d.write(); err != nil {
		d.log.Warn("save failed", "path", d.fileName, "error", err)
		return err
	}
	d.Highlight("")
	d.changed = false

	d.log.Debug("saved document", "path", d.fileName, "rows", len(d.rows), "filetype", d.fileType.Name)
	return nil
}

func (d *Document) write() (err error) {
	f, err := os.Create(d.fileName)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	w := bufio.NewWriter(f)
	for _, row := range d.rows {
		if _, err := w.WriteString(row.text); err != nil {
			return err
		}
		if err := w.WriteByte('\n'); err != nil {
			return err
		}
	}
	return w.Flush()
}

// splitLines splits text on '\n', dropping one trailing '\r' per line and
// the empty remainder after a final newline.
func splitLines(text string) []string {
	if text == "" {
		return nil
	}
	parts := strings.Split(text, "\n")
	if parts[len(parts)-1] == "" {
		parts = parts[:len(parts)-1]
	}
	for i, s := range parts {
		parts[i] = strings.TrimSuffix(s, "\r")
	}
	return parts
}
