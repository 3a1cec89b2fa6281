package obj

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	lru "github.com/hashicorp/golang-lru/v2"
)

var ErrNilDocument = errors.New("obj: nil document")
var ErrNilReader = errors.New("obj: nil reader")

const defaultLibraryCacheSize = 16

type libraryKey struct {
	base string
	path string
}

// Loader reads OBJ documents. It remembers the material libraries it parsed,
// so documents sharing a library only parse it once. A Loader may be used by
// multiple goroutines as long as each reads into its own Document.
type Loader struct {
	config    Config
	libraries *lru.Cache[libraryKey, []Material]
}

func NewLoader(config Config) *Loader {
	size := config.LibraryCacheSize
	if size <= 0 {
		size = defaultLibraryCacheSize
	}

	libraries, _ := lru.New[libraryKey, []Material](size)

	return &Loader{
		config:    config,
		libraries: libraries,
	}
}

// Read reads an OBJ document using a Loader with the default configuration.
func Read(doc *Document, r io.Reader) error {
	return NewLoader(Config{}).Read(doc, r)
}

// Read releases everything doc holds and fills it from r. Malformed directives
// are skipped, only errors of the reader are returned. If r has a Name method,
// as *os.File has, the documents base path is set to its directory.
func (l *Loader) Read(doc *Document, r io.Reader) error {
	if doc == nil {
		return ErrNilDocument
	}

	if r == nil {
		return ErrNilReader
	}

	base := doc.BasePath
	if named, ok := r.(interface{ Name() string }); ok {
		base = filepath.Dir(named.Name())
	}

	doc.Release()
	doc.BasePath = base

	p := parser{
		loader:    l,
		doc:       doc,
		tokens:    NewTokenizer(r, l.config.BufferSize),
		groupName: unnamed,
		material:  NoMaterial,
	}

	p.run()

	slog.Debug("Parsed obj document",
		slog.String("base", doc.BasePath),
		slog.Int("vertices", len(doc.Vertices)),
		slog.Int("normals", len(doc.Normals)),
		slog.Int("uvs", len(doc.UVs)),
		slog.Int("materials", len(doc.Materials)),
		slog.Int("groups", len(doc.Groups)),
	)

	if err := p.tokens.Err(); err != nil {
		return fmt.Errorf("read obj: %w", err)
	}

	return nil
}

// ReadFile opens the file at path and reads it into doc.
func (l *Loader) ReadFile(doc *Document, path string) error {
	fp, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open %q: %w", path, err)
	}

	defer fp.Close()

	return l.Read(doc, fp)
}

// library returns the materials of the library referenced by path.
func (l *Loader) library(base, path string) ([]Material, bool) {
	key := libraryKey{base: base, path: path}

	if materials, ok := l.libraries.Get(key); ok {
		return materials, true
	}

	stream, resolved, ok := l.config.resolve(base, path)
	if !ok {
		slog.Debug("Material library not found", slog.String("path", path), slog.String("base", base))
		return nil, false
	}

	materials, err := readLibrary(stream, l.config.BufferSize)
	if err != nil {
		// keep what we got, but try again next time
		slog.Warn("Failed to read material library",
			slog.String("path", resolved),
			slog.String("err", err.Error()),
		)

		return materials, true
	}

	slog.Debug("Loaded material library",
		slog.String("path", resolved),
		slog.Int("materials", len(materials)),
	)

	l.libraries.Add(key, materials)

	return materials, true
}

func readLibrary(stream io.ReadCloser, bufferSize int) (materials []Material, err error) {
	defer func() {
		if closeErr := stream.Close(); closeErr != nil {
			err = errors.Join(err, fmt.Errorf("close material library: %w", closeErr))
		}
	}()

	return ReadMaterials(stream, bufferSize)
}
