package server

import (
	"bytes"
	"embed"
	"html/template"
	"net/http"

	"github.com/dustin/go-humanize"
	"go.uber.org/zap"

	"lunaphase/internal/domain"
)

//go:embed templates/*.html
var templateFS embed.FS

type pages struct {
	index *template.Template
	error *template.Template
}

func loadPages() *pages {
	return &pages{
		index: template.Must(template.ParseFS(templateFS, "templates/layout.html", "templates/index.html")),
		error: template.Must(template.ParseFS(templateFS, "templates/layout.html", "templates/error.html")),
	}
}

type indexView struct {
	Date         string
	Phase        string
	Illumination string
	Percent      float64
	Angle        string
	Image        string
	NextPhase    string
	NextDate     string
	NextIn       string
	Today        bool
}

func newIndexView(report domain.Report, today bool) indexView {
	snap := report.Snapshot
	v := indexView{
		Date:         snap.Date().String(),
		Phase:        snap.Phase().String(),
		Illumination: humanize.FtoaWithDigits(snap.IlluminationPercent(), 1) + "%",
		Percent:      snap.IlluminationPercent(),
		Angle:        humanize.FtoaWithDigits(snap.PhaseAngle(), 1) + "°",
		Image:        imageURL(report.Image),
		Today:        today,
	}
	if next, ok := snap.NextPhase(); ok {
		v.NextPhase = next.String()
	}
	if d, ok := snap.NextPhaseDate(); ok {
		v.NextDate = d.String()
		v.NextIn = domain.RelativeDays(snap.DaysUntilNextPhase())
	}
	return v
}

func (s *server) index(w http.ResponseWriter, r *http.Request) {
	date, explicit, err := s.dateParam(r, "date")
	if err != nil {
		s.renderError(w, http.StatusBadRequest, err)
		return
	}

	report, err := s.backend.PhaseAt(r.Context(), date)
	if err != nil {
		code := status(err)
		if code == http.StatusInternalServerError {
			s.log.Error("index failed", zap.Error(err))
		}
		s.renderError(w, code, err)
		return
	}

	s.render(w, http.StatusOK, s.pages.index, newIndexView(report, !explicit))
}

func (s *server) renderError(w http.ResponseWriter, code int, err error) {
	w.Header().Set("Cache-Control", "no-store")
	s.render(w, code, s.pages.error, struct {
		Code    int
		Status  string
		Message string
	}{code, http.StatusText(code), err.Error()})
}

func (s *server) render(w http.ResponseWriter, code int, t *template.Template, data any) {
	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, "layout", data); err != nil {
		s.log.Error("render template", zap.Error(err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(code)
	_, _ = buf.WriteTo(w)
}

func bytesReader(b []byte) *bytes.Reader { return bytes.NewReader(b) }
