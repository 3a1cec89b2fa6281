package obj

import (
	"io"
	"os"
	"path/filepath"
)

// OpenFunc opens a referenced file. It is tried before the file system is searched.
type OpenFunc func(path string) (io.ReadCloser, error)

// Config configures a Loader.
type Config struct {
	// Open, if set, is asked first to open a material library.
	Open OpenFunc

	// SearchPaths are directories searched for material libraries after the
	// literal path and the documents base path.
	SearchPaths []string

	// BufferSize is the initial size of the read buffer, DefaultBufferSize if zero.
	BufferSize int

	// LibraryCacheSize is the number of parsed material libraries a Loader keeps.
	LibraryCacheSize int
}

// resolve opens the file referenced by path. It tries the custom opener, the
// literal path, the path relative to base and finally each search path.
func (c *Config) resolve(base, path string) (io.ReadCloser, string, bool) {
	if c.Open != nil {
		if stream, err := c.Open(path); err == nil && stream != nil {
			return stream, path, true
		}
	}

	candidates := make([]string, 0, 2+len(c.SearchPaths))
	candidates = append(candidates, path)

	if base != "" {
		candidates = append(candidates, filepath.Join(base, path))
	}

	for _, dir := range c.SearchPaths {
		candidates = append(candidates, filepath.Join(dir, path))
	}

	for _, candidate := range candidates {
		fp, err := os.Open(candidate)
		if err != nil {
			continue
		}

		return fp, candidate, true
	}

	return nil, "", false
}
