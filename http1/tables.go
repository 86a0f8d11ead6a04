package http1

import (
	"path/filepath"
	"strings"
)

const (
	unknownReason      = "Unknown"
	defaultContentType = "text/html"
)

// HeaderSet maps header names to values. Names are used exactly as given.
type HeaderSet map[string]string

// StatusTable maps a status code to its reason phrase.
type StatusTable map[int]string

func (t StatusTable) Reason(code int) string {
	if reason, ok := t[code]; ok {
		return reason
	}
	return unknownReason
}

// MimeTable maps a lowercase extension, without the dot, to a content type.
type MimeTable map[string]string

// ContentType looks up the extension of path.
func (t MimeTable) ContentType(path string) string {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	if ct, ok := t[ext]; ok {
		return ct
	}
	return defaultContentType
}

// Tables holds the lookup data shared by every request. It is built once
// and must not be modified while a server is using it.
type Tables struct {
	Status  StatusTable
	Mime    MimeTable
	Headers HeaderSet
}

func DefaultTables() *Tables {
	return &Tables{
		Status: StatusTable{
			StatusOK:             "OK",
			StatusNotFound:       "Not Found",
			StatusNotImplemented: "Not Implemented",
		},
		Mime: MimeTable{
			"html": "text/html",
			"htm":  "text/html",
			"css":  "text/css",
			"js":   "text/javascript",
			"jpg":  "image/jpeg",
			"jpeg": "image/jpeg",
			"png":  "image/png",
			"gif":  "image/gif",
			"svg":  "image/svg+xml",
			"ico":  "image/x-icon",
		},
		Headers: HeaderSet{
			"Server":       "CrudeServer",
			"Content-Type": defaultContentType,
		},
	}
}
