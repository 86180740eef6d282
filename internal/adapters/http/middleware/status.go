package middleware

import (
	"bufio"
	"net"
	"net/http"
)

// statusRecorder remembers what the wrapped handler sent so the outer
// stages can log, measure and recover. A hijacked connection (the progress
// WebSocket) is reported as 101 Switching Protocols.
type statusRecorder struct {
	http.ResponseWriter
	status   int
	bytes    int64
	sent     bool
	hijacked bool
}

func record(w http.ResponseWriter) *statusRecorder {
	return &statusRecorder{ResponseWriter: w, status: http.StatusOK}
}

// WriteHeader forwards the first status only.
func (s *statusRecorder) WriteHeader(code int) {
	if s.sent {
		return
	}
	s.status = code
	s.sent = true
	s.ResponseWriter.WriteHeader(code)
}

func (s *statusRecorder) Write(b []byte) (int, error) {
	s.sent = true
	n, err := s.ResponseWriter.Write(b)
	s.bytes += int64(n)
	return n, err
}

// Hijack hands the raw connection to the WebSocket upgrader.
func (s *statusRecorder) Hijack() (net.Conn, *bufio.ReadWriter, error) {
	conn, rw, err := http.NewResponseController(s.ResponseWriter).Hijack()
	if err != nil {
		return nil, nil, err
	}
	s.hijacked = true
	s.sent = true
	s.status = http.StatusSwitchingProtocols
	return conn, rw, nil
}

// Flush pushes buffered bytes when the underlying writer supports it.
func (s *statusRecorder) Flush() {
	_ = http.NewResponseController(s.ResponseWriter).Flush()
}

// Unwrap exposes the underlying writer to http.ResponseController.
func (s *statusRecorder) Unwrap() http.ResponseWriter {
	return s.ResponseWriter
}
