package preview

import (
	"bytes"
	"context"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"profilecraft/internal/catalog"
	"profilecraft/internal/design"
	"profilecraft/internal/editor"
	"profilecraft/internal/raster"
	"profilecraft/internal/style"
)

//go:embed page.html
var pageHTML string

var pageTemplate = template.Must(template.New("page").Parse(pageHTML))

// Server serves the latest published frame.
type Server struct {
	frames   *Publisher
	raster   editor.Rasterizer
	fontsURL string
	log      *slog.Logger
}

// NewServer returns a server reading from frames. Snapshots are rendered
// with r; a nil r disables /snapshot.png.
func NewServer(frames *Publisher, r editor.Rasterizer, cat *catalog.Catalogs, logger *slog.Logger) *Server {
	return &Server{
		frames:   frames,
		raster:   r,
		fontsURL: catalog.StylesheetURL(cat.Fonts.All()),
		log:      logger,
	}
}

// Routes builds the router.
func (s *Server) Routes() chi.Router {
	r := chi.NewRouter()
	r.Use(recoverer(s.log))
	r.Use(requestLogger(s.log))

	r.Get("/health", healthHandler)
	r.Get("/", s.page)
	r.Get("/keyframes.css", s.keyframes)
	r.Get("/frame.json", s.frame)
	r.Get("/snapshot.png", s.snapshot)
	return r
}

// ListenAndServe serves on addr until ctx is done.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:         addr,
		Handler:      s.Routes(),
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		s.log.Info("preview server starting", "addr", addr)
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("preview server: %w", err)
	case <-ctx.Done():
	}

	shutdown, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdown); err != nil {
		return fmt.Errorf("preview server shutdown: %w", err)
	}
	s.log.Info("preview server stopped")
	return nil
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}

// latest fetches the current frame, answering 503 when there is none yet.
func (s *Server) latest(w http.ResponseWriter) (*Frame, bool) {
	f := s.frames.Latest()
	if f == nil {
		http.Error(w, "no design published yet", http.StatusServiceUnavailable)
		return nil, false
	}
	return f, true
}

type layerView struct {
	Text  string
	Style template.CSS
}

type particleView struct {
	Glyph string
	Style template.CSS
}

type pageView struct {
	Title     string
	FontsURL  string
	Version   uint64
	Canvas    template.CSS
	Overlay   template.CSS
	Particles []particleView
	Layers    []layerView
}

func (s *Server) page(w http.ResponseWriter, r *http.Request) {
	f, ok := s.latest(w)
	if !ok {
		return
	}
	canvas := f.Surface.Canvas
	view := pageView{
		Title:     f.Design.Name,
		FontsURL:  s.fontsURL,
		Version:   f.Version,
		Canvas:    template.CSS(canvas.Declarations()),
		Overlay:   template.CSS(canvas.Overlay),
		Particles: particleViews(canvas.Particles, f.Playing),
	}
	for _, l := range f.Surface.Layers {
		view.Layers = append(view.Layers, layerView{Text: l.Text, Style: template.CSS(l.Declarations())})
	}

	var buf bytes.Buffer
	if err := pageTemplate.Execute(&buf, view); err != nil {
		s.log.Error("render preview page", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(buf.Bytes())
}

// particleViews spreads particles over the canvas in a fixed pattern so a
// reload does not reshuffle them.
func particleViews(p *style.Particles, playing bool) []particleView {
	if p == nil {
		return nil
	}
	views := make([]particleView, p.Count)
	for i := range views {
		decls := []string{
			fmt.Sprintf("left: %d%%", (i*37+11)%100),
			fmt.Sprintf("top: %d%%", (i*61+7)%100),
			"color: " + p.Color,
		}
		if playing && p.AnimationName != "" {
			decls = append(decls, fmt.Sprintf("animation: %s %ds linear %.1fs infinite", p.AnimationName, 3+i%4, float64(i%10)*0.3))
		}
		views[i] = particleView{Glyph: p.Glyph, Style: template.CSS(strings.Join(decls, "; ") + ";")}
	}
	return views
}

// keyframes serves the layer animations followed by the particle
// animation, if any.
func (s *Server) keyframes(w http.ResponseWriter, r *http.Request) {
	f, ok := s.latest(w)
	if !ok {
		return
	}
	w.Header().Set("Content-Type", "text/css; charset=utf-8")
	w.Write([]byte(f.Surface.Keyframes))
	if p := f.Surface.Canvas.Particles; p != nil && p.Keyframes != "" {
		w.Write([]byte(p.Keyframes))
	}
}

type frameLayer struct {
	Text  string `json:"text"`
	Style string `json:"style"`
}

type frameView struct {
	Version   uint64        `json:"version"`
	Playing   bool          `json:"playing"`
	Published time.Time     `json:"published"`
	Design    design.Config `json:"design"`
	Canvas    string        `json:"canvas"`
	Overlay   string        `json:"overlay,omitempty"`
	Layers    []frameLayer  `json:"layers"`
	Keyframes string        `json:"keyframes"`
}

func (s *Server) frame(w http.ResponseWriter, r *http.Request) {
	f, ok := s.latest(w)
	if !ok {
		return
	}
	view := frameView{
		Version:   f.Version,
		Playing:   f.Playing,
		Published: f.Published,
		Design:    f.Design,
		Canvas:    f.Surface.Canvas.Declarations(),
		Overlay:   f.Surface.Canvas.Overlay,
		Layers:    make([]frameLayer, len(f.Surface.Layers)),
		Keyframes: f.Surface.Keyframes,
	}
	for i, l := range f.Surface.Layers {
		view.Layers[i] = frameLayer{Text: l.Text, Style: l.Declarations()}
	}
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(view); err != nil {
		s.log.Error("encode frame", "error", err)
	}
}

func (s *Server) snapshot(w http.ResponseWriter, r *http.Request) {
	if s.raster == nil {
		http.NotFound(w, r)
		return
	}
	f, ok := s.latest(w)
	if !ok {
		return
	}
	data, err := s.raster.Capture(r.Context(), f.Surface)
	if err != nil {
		s.log.Error("snapshot failed", "error", err, "version", f.Version)
		http.Error(w, "snapshot failed", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Content-Disposition", fmt.Sprintf("inline; filename=%q", raster.Filename(f.Published)))
	w.Write(data)
}
