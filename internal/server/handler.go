// Package server serves the browser interface of the highlighter.
package server

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/hukuksozluk/vurgu/internal/pipeline"
	"github.com/hukuksozluk/vurgu/internal/session"
)

const (
	SessionCookieName = "vurgu_session"

	// DefaultMaxSessions is the number of browser sessions kept in memory.
	// The least recently used one is dropped beyond it.
	DefaultMaxSessions = 1000

	// maxInputBytes bounds the submitted text.
	maxInputBytes = 1 << 20
)

//go:embed templates/index.html.tmpl
var templates embed.FS

// Highlighter is the part of pipeline.Highlighter used by the handler.
type Highlighter interface {
	Run(ctx context.Context, state *session.State, input string) (pipeline.Stats, error)
	Explain(ctx context.Context, state *session.State) (string, error)
}

type browserSession struct {
	mu     sync.Mutex
	state  *session.State
	err    string
	notice string
}

type Handler struct {
	highlighter Highlighter
	page        *template.Template
	mux         *http.ServeMux

	mu       sync.Mutex
	sessions *lru.Cache[string, *browserSession]
}

func NewHandler(highlighter Highlighter, maxSessions int) (*Handler, error) {
	page, err := template.ParseFS(templates, "templates/index.html.tmpl")
	if err != nil {
		return nil, fmt.Errorf("template.ParseFS > %w", err)
	}
	sessions, err := lru.New[string, *browserSession](maxSessions)
	if err != nil {
		return nil, fmt.Errorf("lru.New(%d) > %w", maxSessions, err)
	}

	h := &Handler{
		highlighter: highlighter,
		page:        page,
		sessions:    sessions,
	}
	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", h.index)
	mux.HandleFunc("POST /highlight", h.highlight)
	mux.HandleFunc("POST /reset", h.reset)
	mux.HandleFunc("POST /explain", h.explain)
	h.mux = mux
	return h, nil
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	recorder := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
	h.mux.ServeHTTP(recorder, r)
	slog.Default().Debug("handled request",
		"method", r.Method,
		"path", r.URL.Path,
		"status", recorder.status,
		"duration", time.Since(start),
	)
}

type pageData struct {
	Input       string
	Rendered    template.HTML
	Panel       []session.PanelEntry
	Explanation string
	Error       string
	Notice      string
}

func (h *Handler) index(w http.ResponseWriter, r *http.Request) {
	s := h.session(w, r)
	s.mu.Lock()
	data := pageData{
		Input: s.state.Input,
		// segments are escaped by highlight.HTML
		Rendered:    template.HTML(s.state.Rendered),
		Panel:       s.state.Panel(),
		Explanation: s.state.Explanation,
		Error:       s.err,
		Notice:      s.notice,
	}
	s.mu.Unlock()

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := h.page.Execute(w, data); err != nil {
		slog.Default().Error("failed to render page", "error", err)
	}
}

func (h *Handler) highlight(w http.ResponseWriter, r *http.Request) {
	s := h.session(w, r)
	r.Body = http.MaxBytesReader(w, r.Body, maxInputBytes)
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}
	input := strings.TrimSpace(r.PostFormValue("text"))

	s.mu.Lock()
	defer s.mu.Unlock()
	s.err, s.notice = "", ""
	if input == "" {
		s.err = "Lütfen bir metin girin."
		redirectHome(w, r)
		return
	}

	stats, err := h.highlighter.Run(r.Context(), s.state, input)
	if err != nil {
		slog.Default().Error("highlight failed", "error", err)
		s.err = "Terimler alınamadı: " + err.Error()
	} else if stats.Found == 0 {
		s.notice = "Tanımı bulunan terim yok."
	}
	redirectHome(w, r)
}

func (h *Handler) explain(w http.ResponseWriter, r *http.Request) {
	s := h.session(w, r)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.err, s.notice = "", ""
	if _, err := h.highlighter.Explain(r.Context(), s.state); err != nil {
		switch {
		case errors.Is(err, pipeline.ErrNoDefinitions):
			s.err = "Açıklama için önce terimleri getirin."
		default:
			slog.Default().Error("explanation failed", "error", err)
			s.err = "Açıklama oluşturulamadı: " + err.Error()
		}
	}
	redirectHome(w, r)
}

func (h *Handler) reset(w http.ResponseWriter, r *http.Request) {
	s := h.session(w, r)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Reset()
	s.err, s.notice = "", ""
	redirectHome(w, r)
}

// session returns the browser session of r, issuing a new cookie when r has
// none, an unknown one or one whose session was evicted.
func (h *Handler) session(w http.ResponseWriter, r *http.Request) *browserSession {
	h.mu.Lock()
	defer h.mu.Unlock()

	if cookie, err := r.Cookie(SessionCookieName); err == nil {
		if id, err := uuid.Parse(cookie.Value); err == nil {
			if s, ok := h.sessions.Get(id.String()); ok {
				return s
			}
		}
	}

	id := uuid.NewString()
	s := &browserSession{state: session.New()}
	if h.sessions.Add(id, s) {
		slog.Default().Debug("evicted least recently used session")
	}
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    id,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return s
}

func redirectHome(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}
