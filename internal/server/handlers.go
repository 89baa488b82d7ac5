package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/klintqinami/sese-regions/pkg/cache"
	"github.com/klintqinami/sese-regions/pkg/graphio"
	"github.com/klintqinami/sese-regions/pkg/render/dot"
	"github.com/klintqinami/sese-regions/pkg/serr"
	"github.com/klintqinami/sese-regions/pkg/sese"
	"github.com/klintqinami/sese-regions/pkg/store"
)

// analyzeResponse wraps a result with the archive id when one was assigned.
type analyzeResponse struct {
	ID     string            `json:"id,omitempty"`
	Result graphio.ResultDoc `json:"result"`
}

// errorResponse is the JSON error envelope.
type errorResponse struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	res, raw, err := s.analyzeBody(r)
	if err != nil {
		s.writeError(w, err)
		return
	}

	resp := analyzeResponse{Result: graphio.FromResult(res)}
	if s.store != nil {
		rec := store.NewRecord(resp.Result, cache.Sum(raw))
		if err := s.store.Insert(r.Context(), rec); err != nil {
			s.logger.Error("archive analysis", "err", err)
		} else {
			resp.ID = rec.ID
		}
	}
	s.writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleViz(w http.ResponseWriter, r *http.Request) {
	kind := chi.URLParam(r, "kind")
	format := r.URL.Query().Get("format")
	if format == "" {
		format = "svg"
	}

	res, raw, err := s.analyzeBody(r)
	if err != nil {
		s.writeError(w, err)
		return
	}

	key := cache.Key("viz", cache.Sum(raw), kind, format)
	if data, ok, err := s.cache.Get(r.Context(), key); err == nil && ok {
		w.Header().Set("Content-Type", contentType(format))
		w.Header().Set("X-Cache", "hit")
		_, _ = w.Write(data)
		return
	}

	var source string
	switch kind {
	case "cfg":
		source = dot.CFG(res, dot.Options{})
	case "pst":
		source = dot.PST(res, dot.Options{})
	case "regions":
		source = dot.Regions(res, dot.Options{})
	default:
		s.writeError(w, serr.E(serr.ErrInvalidInput, "viz", "unknown visualization kind %q", kind))
		return
	}

	var data []byte
	switch format {
	case "dot":
		data = []byte(source)
	case "svg":
		data, err = dot.RenderSVG(r.Context(), source)
	case "png":
		data, err = dot.RenderPNG(r.Context(), source)
	default:
		s.writeError(w, serr.E(serr.ErrInvalidInput, "viz", "unknown format %q", format))
		return
	}
	if err != nil {
		s.writeError(w, err)
		return
	}

	if err := s.cache.Set(r.Context(), key, data, renderTTL); err != nil {
		s.logger.Warn("cache render", "err", err)
	}
	w.Header().Set("Content-Type", contentType(format))
	_, _ = w.Write(data)
}

func (s *Server) handleGetAnalysis(w http.ResponseWriter, r *http.Request) {
	if s.store == nil {
		s.writeError(w, serr.E(serr.ErrNotFound, "archive", "analysis archive not configured"))
		return
	}
	rec, err := s.store.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, rec)
}

// analyzeBody decodes the graph from the request body and analyzes it.
// The decoded graph, re-serialized by graphio.MarshalGraph, is returned for
// cache and archive keying.
func (s *Server) analyzeBody(r *http.Request) (*sese.Result, []byte, error) {
	var doc graphio.Document
	dec := json.NewDecoder(r.Body)
	if err := dec.Decode(&doc); err != nil {
		return nil, nil, serr.Wrap(serr.ErrBadFormat, "decode", err, "graph body")
	}
	g, err := doc.ToGraph()
	if err != nil {
		return nil, nil, err
	}
	res, err := sese.Analyze(g)
	if err != nil {
		return nil, nil, err
	}
	raw, err := graphio.MarshalGraph(g)
	if err != nil {
		return nil, nil, err
	}
	return res, raw, nil
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("encode response", "err", err)
	}
}

func (s *Server) writeError(w http.ResponseWriter, err error) {
	var resp errorResponse
	resp.Error.Code = serr.CodeOf(err)
	resp.Error.Message = serr.UserMessage(err)
	if resp.Error.Code == "" {
		resp.Error.Code = serr.CodeOf(serr.ErrInvalidInput)
	}
	s.writeJSON(w, statusFor(err), resp)
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, serr.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, serr.ErrInvariant):
		return http.StatusInternalServerError
	default:
		return http.StatusBadRequest
	}
}

func contentType(format string) string {
	switch format {
	case "svg":
		return "image/svg+xml"
	case "png":
		return "image/png"
	default:
		return "text/vnd.graphviz"
	}
}
