package server

import (
	"net/http"
	"time"

	"cloud.google.com/go/civil"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"lunaphase/internal/domain"
)

// DefaultCalendarDays is used when /api/calendar has no days parameter.
const DefaultCalendarDays = 30

// Backend is what the handlers need from the application.
type Backend interface {
	domain.PhaseClient
	Today() civil.Date
	ResolveImage(name string) (string, error)
}

// Options configures response headers.
type Options struct {
	CacheMaxAge  time.Duration
	HSTS         string
	CSP          string
	FrameOptions string
}

type server struct {
	backend Backend
	opts    Options
	log     *zap.Logger
	pages   *pages
}

// New returns the router serving all routes. A nil logger discards output.
func New(backend Backend, opts Options, log *zap.Logger) http.Handler {
	if log == nil {
		log = zap.NewNop()
	}
	s := &server{
		backend: backend,
		opts:    opts,
		log:     log,
		pages:   loadPages(),
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(accessLog(log))
	r.Use(middleware.Recoverer)
	r.Use(securityHeaders(opts))

	r.Get("/", s.index)
	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte("ok"))
	})
	r.Route("/api", func(r chi.Router) {
		r.Get("/phase", s.apiPhase)
		r.Get("/calendar", s.apiCalendar)
	})
	r.Get("/images/{filename}", s.image)

	return r
}
