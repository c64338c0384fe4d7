package httpserver

import (
	"net/http"
	"time"

	"github.com/sirupsen/logrus"

	"skirmish/pkg/logger"
)

// Server wraps Handler with request logging.
type Server struct {
	h http.Handler
}

func NewServer(h http.Handler) *Server {
	return &Server{h: h}
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
	s.h.ServeHTTP(rec, r)
	logger.Log.WithFields(logrus.Fields{
		"method": r.Method,
		"path":   r.URL.Path,
		"status": rec.status,
		"took":   time.Since(start),
	}).Debug("request")
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}
