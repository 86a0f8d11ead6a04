package http1

import (
	"net/http"

	"github.com/rs/zerolog"
)

const notImplementedBody = "<h1>501 Not Implemented</h1>"

// Handler answers GET requests with files and everything else with 501.
type Handler struct {
	Tables *Tables
	Files  FileReader
	Logger zerolog.Logger
}

func NewHandler(tables *Tables, files FileReader, logger zerolog.Logger) *Handler {
	if tables == nil {
		tables = DefaultTables()
	}
	if files == nil {
		files = OSFiles{}
	}
	return &Handler{
		Tables: tables,
		Files:  files,
		Logger: logger,
	}
}

func (h *Handler) HandleRequest(data []byte) []byte {
	req := Parse(data)
	h.Logger.Debug().
		Str("method", req.Method.Value).
		Str("uri", req.URI.Value).
		Str("version", req.Version).
		Msg("request")

	// Method match is exact: "get" is not GET.
	if req.Method.Valid && req.Method.Value == http.MethodGet {
		return h.serveStatic(req)
	}
	return h.NotImplemented()
}

func (h *Handler) serveStatic(req Request) []byte {
	res := h.Resolve(req.URI.Or(""))

	var extra HeaderSet
	if res.ContentType != "" {
		extra = HeaderSet{"Content-Type": res.ContentType}
	}
	return h.Tables.BuildResponse(res.Status, extra, res.Body)
}

func (h *Handler) NotImplemented() []byte {
	return h.Tables.BuildResponse(StatusNotImplemented, nil, []byte(notImplementedBody))
}
