package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/dgallion1/tocgen/internal/pipeline"
	"github.com/dgallion1/tocgen/internal/toc"
)

type outlineResponse struct {
	Entries []toc.Entry `json:"entries"`
}

type buildResponse struct {
	Path        string      `json:"path"`
	Entries     []toc.Entry `json:"entries"`
	Chapters    int         `json:"chapters"`
	ContentHash string      `json:"content_hash"`
}

func (s *Server) handleTOC(w http.ResponseWriter, r *http.Request) {
	res, ok := s.build(w, r)
	if !ok {
		return
	}

	etag := `"` + res.Hash + `"`
	w.Header().Set("ETag", etag)
	if matchesETag(r.Header.Get("If-None-Match"), etag) {
		w.WriteHeader(http.StatusNotModified)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(res.Output)
}

func (s *Server) handleOutline(w http.ResponseWriter, r *http.Request) {
	res, ok := s.build(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, outlineResponse{Entries: res.Entries})
}

func (s *Server) handleBuild(w http.ResponseWriter, r *http.Request) {
	res, ok := s.build(w, r)
	if !ok {
		return
	}

	path, err := s.builder.Write(res)
	if err != nil {
		s.log.Error("write failed", "error", err)
		jsonError(w, "write output failed", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, buildResponse{
		Path:        path,
		Entries:     res.Entries,
		Chapters:    res.Chapters,
		ContentHash: res.Hash,
	})
}

// build runs the pipeline and writes the error response on failure.
func (s *Server) build(w http.ResponseWriter, r *http.Request) (*pipeline.Result, bool) {
	res, err := s.builder.Build(r.Context())
	if err != nil {
		code := http.StatusInternalServerError
		if errors.Is(err, pipeline.ErrConfig) {
			code = http.StatusBadRequest
		}
		s.log.Error("build failed", "error", err, "status", code)
		jsonError(w, err.Error(), code)
		return nil, false
	}
	return res, true
}

func matchesETag(header, etag string) bool {
	for _, candidate := range strings.Split(header, ",") {
		candidate = strings.TrimSpace(candidate)
		if candidate == "*" || strings.TrimPrefix(candidate, "W/") == etag {
			return true
		}
	}
	return false
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(v)
}

func jsonError(w http.ResponseWriter, msg string, code int) {
	writeJSON(w, code, map[string]string{"error": msg})
}
