package server

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"cloud.google.com/go/civil"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"lunaphase/internal/domain"
	"lunaphase/internal/services/calendar"
)

// errBadRequest marks query parameters that could not be parsed.
var errBadRequest = errors.New("bad request")

// dateParam parses the named query parameter, falling back to today.
// explicit reports whether the caller named a date.
func (s *server) dateParam(r *http.Request, name string) (date civil.Date, explicit bool, err error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return s.backend.Today(), false, nil
	}
	d, err := civil.ParseDate(raw)
	if err != nil {
		return civil.Date{}, true, fmt.Errorf("%w: %s must be YYYY-MM-DD, got %q", errBadRequest, name, raw)
	}
	return d, true, nil
}

// status maps an error from the backend to an HTTP status.
func status(err error) int {
	switch {
	case errors.Is(err, errBadRequest),
		errors.Is(err, domain.ErrInvalidObservation),
		errors.Is(err, calendar.ErrInvalidRange):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// imageURL turns a selected image path into its URL under /images/.
func imageURL(path string) string {
	if path == "" {
		return ""
	}
	return "/images/" + url.PathEscape(filepath.Base(path))
}

func (s *server) apiPhase(w http.ResponseWriter, r *http.Request) {
	date, explicit, err := s.dateParam(r, "date")
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err)
		return
	}

	var report domain.Report
	if raw := r.URL.Query().Get("time"); raw != "" {
		tod, perr := civil.ParseTime(raw)
		if perr != nil {
			writeError(w, r, http.StatusBadRequest, fmt.Errorf("%w: time must be HH:MM:SS, got %q", errBadRequest, raw))
			return
		}
		report, err = s.backend.Phase(r.Context(), date, tod)
	} else {
		report, err = s.backend.PhaseAt(r.Context(), date)
	}
	if err != nil {
		s.fail(w, r, "phase", err)
		return
	}

	report.Image = imageURL(report.Image)
	if explicit {
		cacheFor(w, s.opts.CacheMaxAge)
	} else {
		cacheFor(w, 0)
	}
	writeJSON(w, r, http.StatusOK, report)
}

func (s *server) apiCalendar(w http.ResponseWriter, r *http.Request) {
	from, explicit, err := s.dateParam(r, "from")
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err)
		return
	}

	days := DefaultCalendarDays
	if raw := r.URL.Query().Get("days"); raw != "" {
		n, perr := strconv.Atoi(raw)
		if perr != nil {
			writeError(w, r, http.StatusBadRequest, fmt.Errorf("%w: days must be an integer, got %q", errBadRequest, raw))
			return
		}
		days = n
	}

	snaps, err := s.backend.Calendar(r.Context(), from, days)
	if err != nil {
		s.fail(w, r, "calendar", err)
		return
	}

	if explicit {
		cacheFor(w, s.opts.CacheMaxAge)
	} else {
		cacheFor(w, 0)
	}
	writeJSON(w, r, http.StatusOK, snaps)
}

func (s *server) image(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "filename")
	path, err := s.backend.ResolveImage(name)
	if err != nil {
		http.NotFound(w, r)
		return
	}

	body, err := os.ReadFile(path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			s.log.Error("read image", zap.String("path", path), zap.Error(err))
		}
		http.NotFound(w, r)
		return
	}

	tag := etag(body)
	w.Header().Set("ETag", tag)
	cacheFor(w, s.opts.CacheMaxAge)
	if notModified(r, tag) {
		w.WriteHeader(http.StatusNotModified)
		return
	}
	http.ServeContent(w, r, name, time.Time{}, bytesReader(body))
}

// fail writes a JSON error for err, logging server-side failures.
func (s *server) fail(w http.ResponseWriter, r *http.Request, op string, err error) {
	code := status(err)
	if code == http.StatusInternalServerError {
		s.log.Error(op+" failed", zap.Error(err))
	}
	writeError(w, r, code, err)
}
