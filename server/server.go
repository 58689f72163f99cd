package server

import (
	"io"
	"log/slog"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	DefaultPort   = "5000"
	DefaultFile   = "index.html"
	PreviewLength = 100
)

type server struct {
	file    string
	logger  *slog.Logger
	metrics *metrics
}

// NewServer serves the first PreviewLength bytes of file on / and prometheus
// metrics on /metrics
func NewServer(file string, logger *slog.Logger) http.Handler {
	if logger == nil {
		logger = slog.Default()
	}
	registry := prometheus.NewRegistry()
	s := &server{
		file:    file,
		logger:  logger,
		metrics: setupMetrics(registry),
	}
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
	mux.Handle("/", s)
	return mux
}

func (s *server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	status := s.serve(w, r)
	statusLabel := strconv.Itoa(status)
	s.metrics.counterVec.WithLabelValues(statusLabel).Inc()
	s.metrics.summaryVec.WithLabelValues(statusLabel).Observe(time.Since(start).Seconds())
	s.logger.Info("request", "method", r.Method, "path", r.URL.Path, "status", status)
}

func (s *server) serve(w http.ResponseWriter, r *http.Request) (status int) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return http.StatusNotFound
	}
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return http.StatusMethodNotAllowed
	}
	preview, errPreview := readPreview(s.file)
	if errPreview != nil {
		s.logger.Error("could not read preview", "file", s.file, "error", errPreview)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return http.StatusInternalServerError
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Write(preview)
	return http.StatusOK
}

func readPreview(file string) (preview []byte, err error) {
	f, errOpen := os.Open(file)
	if errOpen != nil {
		return nil, errOpen
	}
	defer f.Close()
	preview = make([]byte, PreviewLength)
	n, errRead := io.ReadFull(f, preview)
	if errRead != nil && errRead != io.ErrUnexpectedEOF && errRead != io.EOF {
		return nil, errRead
	}
	return preview[:n], nil
}

// Port reads the port from the PORT environment variable
func Port() string {
	port := os.Getenv("PORT")
	if port == "" {
		return DefaultPort
	}
	return port
}
