// Package api exposes graphreduce's reduction engine over HTTP.
package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"

	"github.com/graphreduce/graphreduce/pkg/cache"
	"github.com/graphreduce/graphreduce/pkg/graph"
	"github.com/graphreduce/graphreduce/pkg/observability"
	"github.com/graphreduce/graphreduce/pkg/reduce"
	"github.com/graphreduce/graphreduce/pkg/store"
)

// Server holds the dependencies shared by every HTTP handler.
type Server struct {
	cache  cache.Cache
	store  store.Store
	keyer  cache.Keyer
	logger *log.Logger
}

// New returns a Server backed by the given cache, run store, and logger.
func New(c cache.Cache, s store.Store, logger *log.Logger) *Server {
	return &Server{cache: c, store: s, keyer: cache.NewDefaultKeyer(), logger: logger}
}

// Router builds the chi router exposing POST /reduce and GET /runs/{id}.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(s.logRequests)

	r.Post("/reduce", s.handleReduce)
	r.Get("/runs/{id}", s.handleGetRun)

	return r
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		observability.API().OnRequest(r.Context(), r.Method, r.URL.Path)
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		observability.API().OnResponse(r.Context(), r.Method, r.URL.Path, ww.Status(), time.Since(start))
	})
}

// reduceRequest is the POST /reduce request body: a graph plus the node
// names to retain as reduction outputs.
type reduceRequest struct {
	Graph   json.RawMessage `json:"graph"`
	Outputs []string        `json:"outputs"`
}

type reduceResponse struct {
	RunID            string `json:"run_id"`
	Graph            any    `json:"graph"`
	NodeCount        int    `json:"node_count"`
	EdgeCount        int    `json:"edge_count"`
	ReducedNodeCount int    `json:"reduced_node_count"`
	ReducedEdgeCount int    `json:"reduced_edge_count"`
	Cached           bool   `json:"cached"`
}

func (s *Server) handleReduce(w http.ResponseWriter, r *http.Request) {
	var req reduceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	g, err := graph.ReadJSON(bytes.NewReader(req.Graph))
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	nameIndex := make(map[string]graph.NodeIndex, g.NodeCount())
	for _, n := range g.AllNodes() {
		nameIndex[g.Data(n)] = n
	}
	starts := make([]graph.NodeIndex, 0, len(req.Outputs))
	for _, name := range req.Outputs {
		idx, ok := nameIndex[name]
		if !ok {
			writeError(w, http.StatusBadRequest, fmt.Errorf("output %q is not a node in the input graph", name))
			return
		}
		starts = append(starts, idx)
	}

	ctx := r.Context()
	inputHash := cache.Hash(req.Graph)
	key := s.keyer.ReduceKey(inputHash, cache.ReduceKeyOpts{StartNodes: req.Outputs})

	cached := false
	var reduced *graph.Graph[string]
	if data, hit, err := s.cache.Get(ctx, key); err == nil && hit {
		if reduced, err = graph.ReadJSON(bytes.NewReader(data)); err == nil {
			cached = true
			observability.Cache().OnCacheHit(ctx, "reduce")
		}
	}

	if reduced == nil {
		observability.Cache().OnCacheMiss(ctx, "reduce")

		start := time.Now()
		observability.Reduce().OnClassifyStart(ctx, g.NodeCount())
		reduced, err = reduce.New[string](g, starts).Compute()
		duration := time.Since(start)
		observability.Reduce().OnClassifyComplete(ctx, g.NodeCount(), 0, duration, err)
		if err != nil {
			writeError(w, http.StatusUnprocessableEntity, err)
			return
		}
		observability.Reduce().OnConstructComplete(ctx, reduced.NodeCount(), reduced.EdgeCount(), duration, nil)

		var buf bytes.Buffer
		if err := graph.WriteJSON(reduced, &buf); err == nil {
			_ = s.cache.Set(ctx, key, buf.Bytes(), time.Hour)
			observability.Cache().OnCacheSet(ctx, "reduce", buf.Len())
		}
	}

	run := &store.Run{
		ID:               uuid.NewString(),
		InputHash:        inputHash,
		StartNodes:       req.Outputs,
		NodeCount:        g.NodeCount(),
		EdgeCount:        g.EdgeCount(),
		ReducedNodeCount: reduced.NodeCount(),
		ReducedEdgeCount: reduced.EdgeCount(),
		CreatedAt:        time.Now(),
	}
	if err := s.store.Set(ctx, run); err != nil {
		s.logger.Warn("failed to persist run", "err", err)
	}

	var buf bytes.Buffer
	if err := graph.WriteJSON(reduced, &buf); err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	var decoded any
	_ = json.Unmarshal(buf.Bytes(), &decoded)

	writeJSON(w, http.StatusOK, reduceResponse{
		RunID:            run.ID,
		Graph:            decoded,
		NodeCount:        run.NodeCount,
		EdgeCount:        run.EdgeCount,
		ReducedNodeCount: run.ReducedNodeCount,
		ReducedEdgeCount: run.ReducedEdgeCount,
		Cached:           cached,
	})
}

func (s *Server) handleGetRun(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	run, err := s.store.Get(r.Context(), id)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	if run == nil {
		writeError(w, http.StatusNotFound, fmt.Errorf("run %q not found", id))
		return
	}
	writeJSON(w, http.StatusOK, run)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, map[string]string{"error": err.Error()})
}
