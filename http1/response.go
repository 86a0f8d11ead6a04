package http1

import (
	"bytes"
	"io"
	"maps"
	"slices"
	"strconv"
)

const (
	StatusOK             = 200
	StatusNotFound       = 404
	StatusNotImplemented = 501
)

const proto = "HTTP/1.1"

var nlcf = []byte{0x0d, 0x0a}

// BuildResponse lays out status line, headers, a blank line and body.
// Headers in extra replace defaults of the same name. No Content-Length
// is added.
func (t *Tables) BuildResponse(statusCode int, extra HeaderSet, body []byte) []byte {
	headers := make(HeaderSet, len(t.Headers)+len(extra))
	maps.Copy(headers, t.Headers)
	maps.Copy(headers, extra)

	var buf bytes.Buffer
	buf.Grow(len(body) + 128)

	io.WriteString(&buf, proto)
	buf.WriteByte(' ')
	io.WriteString(&buf, strconv.Itoa(statusCode))
	buf.WriteByte(' ')
	io.WriteString(&buf, t.Status.Reason(statusCode))
	buf.Write(nlcf)
	keys := make([]string, 0, len(headers))
	for k := range headers {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	for _, k := range keys {
		io.WriteString(&buf, k)
		buf.Write([]byte{':', ' '})
		io.WriteString(&buf, headers[k])
		buf.Write(nlcf)
	}
	buf.Write(nlcf)
	buf.Write(body)
	return buf.Bytes()
}
