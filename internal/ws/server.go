package ws

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/gorilla/websocket"
	"github.com/zhaoyu-io/folio/internal/content"
	"github.com/zhaoyu-io/folio/internal/frontend"
	"github.com/zhaoyu-io/folio/internal/health"
	"go.uber.org/zap"
)

// ReloadFunc reloads the content from its source and returns the new
// store version.
type ReloadFunc func() (uint64, error)

type Options struct {
	FrontendDir     string
	Dev             bool
	EmbeddedHandler http.Handler
	AllowedOrigins  []string
	AuthToken       string
	Health          *health.Collector
	Reload          ReloadFunc
	Logger          *zap.Logger
}

type Server struct {
	store           *content.Store
	broadcaster     *Broadcaster
	frontendDir     string
	dev             bool
	embeddedHandler http.Handler
	allowedOrigins  map[string]bool
	allowedHosts    map[string]bool
	authToken       string
	health          *health.Collector
	reload          ReloadFunc
	log             *zap.Logger
	now             func() time.Time
}

func NewServer(store *content.Store, broadcaster *Broadcaster, opts Options) *Server {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	s := &Server{
		store:           store,
		broadcaster:     broadcaster,
		frontendDir:     opts.FrontendDir,
		dev:             opts.Dev,
		embeddedHandler: opts.EmbeddedHandler,
		allowedOrigins:  make(map[string]bool),
		allowedHosts:    make(map[string]bool),
		authToken:       opts.AuthToken,
		health:          opts.Health,
		reload:          opts.Reload,
		log:             log,
		now:             time.Now,
	}

	for _, origin := range opts.AllowedOrigins {
		trimmed := strings.TrimSpace(origin)
		if trimmed == "" {
			continue
		}
		s.allowedOrigins[trimmed] = true
		if parsed, err := url.Parse(trimmed); err == nil && parsed.Host != "" {
			s.allowedHosts[parsed.Host] = true
		}
	}

	return s
}

func (s *Server) SetupRoutes(mux *http.ServeMux) {
	mux.HandleFunc(content.EndpointWS, s.handleWS)
	mux.HandleFunc("GET "+content.EndpointTest, s.handleTest)
	mux.HandleFunc("GET "+content.EndpointBlog, s.handleBlog)
	mux.HandleFunc("GET "+content.EndpointBlog+"/{slug}", s.handleBlogPost)
	mux.HandleFunc("GET "+content.EndpointContent, s.handleContent)
	mux.HandleFunc("POST "+content.EndpointReload, s.handleReload)
	mux.HandleFunc("GET "+content.EndpointHealth, s.handleHealth)

	if s.dev && s.frontendDir != "" {
		s.log.Info("serving frontend from filesystem", zap.String("dir", s.frontendDir))
		mux.Handle("/", securityHeaders(frontend.SPA(os.DirFS(s.frontendDir))))
	} else if s.embeddedHandler != nil {
		s.log.Info("serving embedded frontend")
		mux.Handle("/", securityHeaders(s.embeddedHandler))
	}
}

func (s *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	upgrader := websocket.Upgrader{
		CheckOrigin: s.checkOrigin,
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.log.Warn("ws upgrade error", zap.Error(err))
		return
	}

	c, err := s.broadcaster.AddClient(conn, Negotiate(r))
	if err != nil {
		s.log.Warn("ws client rejected", zap.String("remote", r.RemoteAddr), zap.Error(err))
		msg := websocket.FormatCloseMessage(websocket.CloseTryAgainLater, err.Error())
		conn.WriteControl(websocket.CloseMessage, msg, time.Now().Add(writeWait))
		conn.Close()
		return
	}
	s.log.Info("ws client connected", zap.String("client", c.id), zap.String("remote", r.RemoteAddr))

	go func() {
		defer func() {
			s.broadcaster.RemoveClient(c)
			s.log.Info("ws client disconnected", zap.String("client", c.id))
		}()
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}

func (s *Server) handleTest(w http.ResponseWriter, r *http.Request) {
	respond(w, r, http.StatusOK, content.TestInfo{
		Message:   "Hello from the folio API!",
		Timestamp: s.now().UTC().Format(time.RFC3339Nano),
		Framework: "Go net/http",
		Features:  []string{"API Routes", "Live Reload", "WebSocket Feed", "CBOR"},
		Mode:      "SPA",
	})
}

func (s *Server) handleBlog(w http.ResponseWriter, r *http.Request) {
	c, _ := s.store.Get()
	list := content.BlogList{Posts: c.Summaries()}
	if len(list.Posts) == 0 {
		list.Message = "no posts published yet"
	}
	respond(w, r, http.StatusOK, list)
}

func (s *Server) handleBlogPost(w http.ResponseWriter, r *http.Request) {
	slug := r.PathValue("slug")
	c, _ := s.store.Get()
	post, ok := c.Post(slug)
	switch {
	case ok:
	case len(c.Posts) == 0:
		// Nothing is published yet: every slug gets the sample post.
		post = content.Post{
			Slug:    slug,
			Title:   "Sample Blog Post",
			Content: "This is a sample blog post. Content will be loaded from a data source.",
			Date:    s.now().UTC().Format(time.RFC3339Nano),
			Author:  "zhaoyu",
			Tags:    []string{"go", "web-dev"},
		}
	default:
		respond(w, r, http.StatusNotFound, content.Response[content.Post]{Error: "post not found"})
		return
	}
	respond(w, r, http.StatusOK, content.Response[content.Post]{Data: &post})
}

func (s *Server) handleContent(w http.ResponseWriter, r *http.Request) {
	c, version := s.store.Get()
	respond(w, r, http.StatusOK, content.Snapshot{Version: version, Content: c})
}

func (s *Server) handleReload(w http.ResponseWriter, r *http.Request) {
	if !s.authorize(r) {
		respond(w, r, http.StatusUnauthorized, content.Response[content.Snapshot]{Error: "unauthorized"})
		return
	}
	if s.reload == nil {
		respond(w, r, http.StatusServiceUnavailable, content.Response[content.Snapshot]{Error: "reload not available"})
		return
	}
	version, err := s.reload()
	if err != nil {
		s.log.Warn("manual reload failed", zap.Error(err))
		respond(w, r, http.StatusUnprocessableEntity, content.Response[content.Snapshot]{Error: err.Error()})
		return
	}
	s.broadcaster.QueueUpdate()
	respond(w, r, http.StatusOK, content.Response[content.Snapshot]{
		Data:    &content.Snapshot{Version: version},
		Message: "content reloaded",
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if s.health == nil {
		http.Error(w, "health not available", http.StatusServiceUnavailable)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()
	_, version := s.store.Get()
	respond(w, r, http.StatusOK, s.health.Collect(ctx, version, s.broadcaster.ClientCount()))
}

func (s *Server) authorize(r *http.Request) bool {
	if s.authToken == "" {
		return true
	}

	if r.Header.Get("X-Folio-Token") == s.authToken {
		return true
	}

	auth := r.Header.Get("Authorization")
	if strings.HasPrefix(auth, "Bearer ") && strings.TrimPrefix(auth, "Bearer ") == s.authToken {
		return true
	}

	return false
}

func (s *Server) checkOrigin(r *http.Request) bool {
	origin := r.Header.Get("Origin")
	if origin == "" {
		return true
	}

	if len(s.allowedOrigins) > 0 {
		if s.allowedOrigins[origin] {
			return true
		}
		if parsed, err := url.Parse(origin); err == nil && parsed.Host != "" {
			return s.allowedHosts[parsed.Host]
		}
		return false
	}

	parsed, err := url.Parse(origin)
	if err != nil {
		return false
	}

	host := parsed.Host
	if host == "" {
		return false
	}
	if host == r.Host {
		return true
	}

	switch parsed.Hostname() {
	case "localhost", "127.0.0.1", "::1":
		return true
	}
	return false
}

func securityHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h := w.Header()
		h.Set("X-Content-Type-Options", "nosniff")
		h.Set("X-Frame-Options", "DENY")
		h.Set("X-XSS-Protection", "1; mode=block")
		h.Set("Content-Security-Policy", "default-src 'self'")
		next.ServeHTTP(w, r)
	})
}

// Serve runs srv until ctx is cancelled, then shuts it down gracefully.
func Serve(ctx context.Context, srv *http.Server, log *zap.Logger) error {
	errCh := make(chan error, 1)
	go func() {
		log.Info("server listening", zap.String("addr", srv.Addr))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
