// Package server exposes the job board over HTTP: a stateless parse
// endpoint, persisted posts with public listing and detail views, PDF
// export, and a small cookie-session admin surface.
package server

import (
	"crypto/sha256"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/rahul8600/govt-job-board/internal/llmextract"
	"github.com/rahul8600/govt-job-board/internal/store"
)

// Minimum input length accepted by the parse endpoints. Shorter bodies
// are rejected before any extractor runs.
const minInputLen = 50

// Server holds the handler dependencies. Extractor may be nil, in which
// case every request runs the deterministic engine.
type Server struct {
	db        *store.DB
	extractor *llmextract.Extractor
	passHash  [sha256.Size]byte
	baseURL   string
	limiter   *ipLimiter
}

// New builds a Server. adminPassword gates the admin endpoints; baseURL
// is the public origin used in sitemap links.
func New(db *store.DB, extractor *llmextract.Extractor, adminPassword, baseURL string) *Server {
	return &Server{
		db:        db,
		extractor: extractor,
		passHash:  sha256.Sum256([]byte(adminPassword)),
		baseURL:   baseURL,
		limiter:   newIPLimiter(5, 10),
	}
}

// Handler wires the route table. Public endpoints sit behind the per-IP
// rate limiter; mutating admin endpoints additionally require a live
// session.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /api/parse", s.limited(s.handleParse))
	mux.HandleFunc("GET /api/posts", s.limited(s.handleListPosts))
	mux.HandleFunc("GET /api/posts/{slug}", s.limited(s.handleGetPost))
	mux.HandleFunc("GET /api/posts/{slug}/pdf", s.limited(s.handlePostPDF))

	mux.HandleFunc("POST /api/posts", s.requireAdmin(s.handleCreatePost))
	mux.HandleFunc("GET /api/admin/stats", s.requireAdmin(s.handleStats))

	mux.HandleFunc("POST /admin/login", s.handleLogin)
	mux.HandleFunc("POST /admin/logout", s.handleLogout)

	mux.HandleFunc("GET /sitemap.xml", s.handleSitemap)
	mux.HandleFunc("GET /robots.txt", s.handleRobots)

	return logRequests(mux)
}

// logRequests emits one debug event per request.
func logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log.Debug().Str("method", r.Method).Str("path", r.URL.Path).Msg("http request")
		next.ServeHTTP(w, r)
	})
}
