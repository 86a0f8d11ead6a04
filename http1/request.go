package http1

import (
	"bytes"
	"strings"
)

const DefaultVersion = "1.1"

// Optional is a request line word that may be missing.
type Optional struct {
	Value string
	Valid bool
}

func (o Optional) Or(fallback string) string {
	if o.Valid {
		return o.Value
	}
	return fallback
}

// Request is what could be read from a request line. Words that are not
// there stay invalid rather than failing the parse.
type Request struct {
	Method  Optional
	URI     Optional
	Version string
}

// Parse reads the request line of data. It never fails: bad UTF-8 is
// replaced and missing words are left unset.
func Parse(data []byte) Request {
	req := Request{Version: DefaultVersion}

	text := string(bytes.ToValidUTF8(data, []byte("\uFFFD")))

	// Only the request line matters: GET /path/to/index.html HTTP/1.1
	reqLine, _, _ := strings.Cut(text, "\r\n")
	if reqLine == "" {
		return req
	}

	words := strings.Split(reqLine, " ")
	req.Method = Optional{Value: words[0], Valid: true}
	if len(words) > 1 {
		req.URI = Optional{Value: words[1], Valid: true}
	}
	if len(words) > 2 {
		req.Version = words[2]
	}
	return req
}
