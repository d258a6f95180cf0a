// Package pacdb reads an unpacked pacman repository index.
//
// The index holds one subdirectory per package. Each contains a "desc" file and,
// in older layouts, a "depends" file, both made of %KEY% blocks.
package pacdb

import (
	"errors"
	iofs "io/fs"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"

	"go.trai.ch/reroot/internal/core/domain"
	"go.trai.ch/reroot/internal/core/ports"
	"go.trai.ch/zerr"
)

const (
	descFile    = "desc"
	dependsFile = "depends"

	keyName     = "NAME"
	keyVersion  = "VERSION"
	keyFilename = "FILENAME"
	keySHA256   = "SHA256SUM"
	keyCSize    = "CSIZE"
	keyDepends  = "DEPENDS"
	keyProvides = "PROVIDES"
)

var _ ports.PackageIndex = (*Reader)(nil)

// Reader implements ports.PackageIndex over an unpacked index directory.
//
// Every entry is parsed when the Reader is created. Subdirectories are visited in lexical
// order, so when several packages provide a name the first of them wins.
type Reader struct {
	root       string
	records    map[string]*domain.PackageRecord
	byName     map[string]string
	byProvides map[string]string
}

// NewReader parses the index rooted at root.
func NewReader(root string) (*Reader, error) {
	root = filepath.Clean(root)

	entries, err := os.ReadDir(root)
	if err != nil {
		if errors.Is(err, iofs.ErrNotExist) {
			return nil, zerr.With(zerr.Wrap(domain.ErrIndexNotFound, "open index"), "dir", root)
		}
		return nil, zerr.With(zerr.Wrap(err, domain.ErrIndexReadFailed.Error()), "dir", root)
	}

	r := &Reader{
		root:       root,
		records:    make(map[string]*domain.PackageRecord),
		byName:     make(map[string]string),
		byProvides: make(map[string]string),
	}

	// os.ReadDir returns entries sorted by filename.
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		record, err := r.parse(entry.Name())
		if err != nil {
			return nil, err
		}
		r.records[entry.Name()] = record

		if record.Name != "" {
			if _, seen := r.byName[record.Name]; !seen {
				r.byName[record.Name] = entry.Name()
			}
		}
		for _, provided := range record.ProvidedNames() {
			if _, seen := r.byProvides[provided]; !seen {
				r.byProvides[provided] = entry.Name()
			}
		}
	}

	return r, nil
}

// Lookup returns the subdirectory of the package named name, or of the first package
// that provides it.
func (r *Reader) Lookup(name string) (string, error) {
	if dir, ok := r.byName[name]; ok {
		return dir, nil
	}
	if dir, ok := r.byProvides[name]; ok {
		return dir, nil
	}
	return "", zerr.With(zerr.Wrap(domain.ErrPackageNotFound, "lookup"), "package", name)
}

// Record returns the package record stored in dir.
func (r *Reader) Record(dir string) (*domain.PackageRecord, error) {
	if record, ok := r.records[dir]; ok {
		return record, nil
	}
	return r.parse(dir)
}

// Len returns the number of entries in the index.
func (r *Reader) Len() int {
	return len(r.records)
}

// Dirs returns every subdirectory in lexical order.
func (r *Reader) Dirs() []string {
	return slices.Sorted(maps.Keys(r.records))
}

func (r *Reader) parse(dir string) (*domain.PackageRecord, error) {
	fields, err := r.readFile(dir, descFile, true)
	if err != nil {
		return nil, err
	}
	extra, err := r.readFile(dir, dependsFile, false)
	if err != nil {
		return nil, err
	}
	for k, v := range extra {
		fields[k] = append(fields[k], v...)
	}

	record := &domain.PackageRecord{
		Name:     first(fields, keyName),
		Version:  first(fields, keyVersion),
		Depends:  trimAll(fields[keyDepends]),
		Provides: trimAll(fields[keyProvides]),
		Filename: first(fields, keyFilename),
		Checksum: strings.ToLower(first(fields, keySHA256)),
		Dir:      dir,
	}
	if size := first(fields, keyCSize); size != "" {
		if n, convErr := strconv.ParseInt(size, 10, 64); convErr == nil {
			record.Size = n
		}
	}
	return record, nil
}

func (r *Reader) readFile(dir, name string, required bool) (map[string][]string, error) {
	path := filepath.Join(r.root, dir, name)
	f, err := os.Open(path) //nolint:gosec // path is built from the index root
	if err != nil {
		if !required && errors.Is(err, iofs.ErrNotExist) {
			return map[string][]string{}, nil
		}
		return nil, zerr.With(zerr.Wrap(err, domain.ErrIndexReadFailed.Error()), "path", path)
	}
	defer f.Close() //nolint:errcheck // Best effort close in defer

	fields, err := parseFields(f)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrIndexReadFailed.Error()), "path", path)
	}
	return fields, nil
}

func trimAll(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}

// Opener implements ports.IndexOpener.
type Opener struct{}

// NewOpener creates a new Opener.
func NewOpener() *Opener {
	return &Opener{}
}

// Open parses the index rooted at dir.
func (o *Opener) Open(dir string) (ports.PackageIndex, error) {
	reader, err := NewReader(dir)
	if err != nil {
		return nil, err
	}
	return reader, nil
}

var _ ports.IndexOpener = (*Opener)(nil)
