package server

import (
	"errors"
	"fmt"
	"io"
	"net"
)

// ReadBufferSize bounds a request. Anything past it is never read.
const ReadBufferSize = 1024

func (s *Server) handleConnection(conn net.Conn) error {
	defer conn.Close()

	// A single read, never more than ReadBufferSize bytes.
	buf := make([]byte, ReadBufferSize)
	n, err := conn.Read(buf)
	if n == 0 {
		if err != nil && !errors.Is(err, io.EOF) {
			return fmt.Errorf("read request error: %w", err)
		}
		return nil
	}

	resp := s.Handler.HandleRequest(buf[:n])
	if _, err := conn.Write(resp); err != nil {
		return fmt.Errorf("write response error: %w", err)
	}
	return nil
}
