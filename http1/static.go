package http1

import (
	"io/fs"
	"os"
	"strings"
)

const notFoundBody = "<h1>404 Not Found</h1>"

// FileReader is the only way the handler touches files.
type FileReader interface {
	Exists(path string) bool
	ReadFile(path string) ([]byte, error)
}

// OSFiles resolves paths against the working directory of the process.
type OSFiles struct{}

func (OSFiles) Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

func (OSFiles) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(path)
}

// FSFiles serves from any fs.FS. Paths that fs.ValidPath rejects never exist.
type FSFiles struct {
	FS fs.FS
}

func (f FSFiles) Exists(path string) bool {
	_, err := fs.Stat(f.FS, path)
	return err == nil
}

func (f FSFiles) ReadFile(path string) ([]byte, error) {
	return fs.ReadFile(f.FS, path)
}

// Resolution is the outcome of looking a URI up on disk. An empty
// ContentType leaves the default header in place.
type Resolution struct {
	Status      int
	Body        []byte
	ContentType string
}

// Resolve maps uri to a relative path by dropping one leading slash.
func (h *Handler) Resolve(uri string) Resolution {
	path := strings.TrimPrefix(uri, "/")

	if path != "" && h.Files.Exists(path) {
		body, err := h.Files.ReadFile(path)
		if err == nil {
			return Resolution{
				Status:      StatusOK,
				Body:        body,
				ContentType: h.Tables.Mime.ContentType(path),
			}
		}
		h.Logger.Warn().Err(err).Str("path", path).Msg("unreadable file served as not found")
	}

	return Resolution{
		Status: StatusNotFound,
		Body:   []byte(notFoundBody),
	}
}
