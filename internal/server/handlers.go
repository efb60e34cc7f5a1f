package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/rahul8600/govt-job-board/internal/cleanse"
	"github.com/rahul8600/govt-job-board/internal/jobparse"
	"github.com/rahul8600/govt-job-board/internal/store"
)

type parseRequest struct {
	Text   string `json:"text"`
	Engine string `json:"engine"`
}

type parseResult struct {
	job    jobparse.ParsedJob
	engine string
}

// runEngine cleanses the input and picks an extractor. Engine "auto"
// prefers the LLM when one is configured; "llm" insists but still falls
// back to rules on any extraction or validation failure.
func (s *Server) runEngine(r *http.Request, req parseRequest) (parseResult, error) {
	text := cleanse.Text(req.Text)
	if len(text) < minInputLen {
		return parseResult{}, errInputTooShort
	}

	engine := req.Engine
	if engine == "" {
		engine = "auto"
	}
	switch engine {
	case "rule":
		return parseResult{job: jobparse.Parse(text), engine: "rule"}, nil
	case "llm", "auto":
		if s.extractor != nil {
			job, err := s.extractor.Extract(r.Context(), text)
			if err == nil {
				return parseResult{job: job, engine: "llm"}, nil
			}
			log.Warn().Err(err).Msg("llm extraction failed, falling back to rules")
		}
		return parseResult{job: jobparse.Parse(text), engine: "rule"}, nil
	default:
		return parseResult{}, errBadEngine
	}
}

var (
	errInputTooShort = errors.New("text must be at least 50 characters")
	errBadEngine     = errors.New(`engine must be one of "auto", "rule", "llm"`)
)

func (s *Server) handleParse(w http.ResponseWriter, r *http.Request) {
	var req parseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	res, err := s.runEngine(r, req)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	w.Header().Set("X-Parse-Engine", res.engine)
	writeJSON(w, http.StatusOK, res.job)
}

func (s *Server) handleCreatePost(w http.ResponseWriter, r *http.Request) {
	var req parseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	res, err := s.runEngine(r, req)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	post, err := s.db.CreatePost(r.Context(), req.Text, res.engine, res.job)
	if err != nil {
		log.Error().Err(err).Msg("create post failed")
		writeError(w, http.StatusInternalServerError, "could not store post")
		return
	}
	writeJSON(w, http.StatusCreated, map[string]string{"slug": post.Slug})
}

func (s *Server) handleListPosts(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	posts, err := s.db.ListPosts(r.Context(), r.URL.Query().Get("type"), limit)
	if err != nil {
		log.Error().Err(err).Msg("list posts failed")
		writeError(w, http.StatusInternalServerError, "could not list posts")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"posts": posts})
}

func (s *Server) handleGetPost(w http.ResponseWriter, r *http.Request) {
	slug := r.PathValue("slug")
	post, err := s.db.GetPost(r.Context(), slug)
	if errors.Is(err, store.ErrNotFound) {
		writeError(w, http.StatusNotFound, "post not found")
		return
	}
	if err != nil {
		log.Error().Err(err).Str("slug", slug).Msg("get post failed")
		writeError(w, http.StatusInternalServerError, "could not load post")
		return
	}
	if err := s.db.IncrementView(r.Context(), slug); err != nil {
		log.Warn().Err(err).Str("slug", slug).Msg("view count not recorded")
	}
	writeJSON(w, http.StatusOK, post)
}

func (s *Server) handlePostPDF(w http.ResponseWriter, r *http.Request) {
	slug := r.PathValue("slug")
	post, err := s.db.GetPost(r.Context(), slug)
	if errors.Is(err, store.ErrNotFound) {
		writeError(w, http.StatusNotFound, "post not found")
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, "could not load post")
		return
	}
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="`+slug+`.pdf"`)
	if err := writeNoticePDF(w, post.Job); err != nil {
		log.Error().Err(err).Str("slug", slug).Msg("pdf render failed")
	}
}

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	top, err := s.db.TopViewed(r.Context(), 10)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "could not load stats")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"topViewed": top})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// clientIP strips the port from RemoteAddr; the address itself is kept
// when no port is present.
func clientIP(r *http.Request) string {
	addr := r.RemoteAddr
	if i := strings.LastIndex(addr, ":"); i > 0 && !strings.Contains(addr[i:], "]") {
		return addr[:i]
	}
	return addr
}
