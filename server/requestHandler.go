package server

// RequestHandler turns the bytes of one request into the bytes of its
// response. Implementations must not keep a reference to data.
type RequestHandler interface {
	HandleRequest(data []byte) []byte
}

type HandlerFunc func(data []byte) []byte

func (f HandlerFunc) HandleRequest(data []byte) []byte {
	return f(data)
}

// Echo answers every request with the request itself.
type Echo struct{}

func (Echo) HandleRequest(data []byte) []byte {
	out := make([]byte, len(data))
	copy(out, data)
	return out
}
