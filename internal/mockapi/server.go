package mockapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/emiliopalmerini/genex/internal/domain"
)

// Server is a development stand-in for the analysis backend. It serves the
// same routes with fixture data.
type Server struct {
	router    chi.Router
	port      int
	generator *Generator
	registry  *prometheus.Registry
	requests  *prometheus.CounterVec
}

// NewServer creates a mock backend listening on port once started.
func NewServer(port int, generator *Generator) *Server {
	registry := prometheus.NewRegistry()
	requests := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "genex_mockapi_requests_total",
		Help: "Requests served by the mock backend.",
	}, []string{"route", "code"})
	registry.MustRegister(requests)

	s := &Server{
		router:    chi.NewRouter(),
		port:      port,
		generator: generator,
		registry:  registry,
		requests:  requests,
	}
	s.setupRoutes()
	return s
}

// Handler exposes the router, mainly for httptest.
func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) setupRoutes() {
	s.router.Use(middleware.RequestID)
	s.router.Use(middleware.Recoverer)
	s.router.Use(s.countRequests)

	s.router.Get("/", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"message": "Welcome to Gene Expression Explorer API"})
	})
	s.router.Get("/datasets/search/{query}", s.handleSearch)
	s.router.Get("/dataset/{datasetID}", s.handleDataset)
	s.router.Post("/analyze/expression", s.handleExpression)
	s.router.Post("/predict/health", s.handlePrediction)
	s.router.Get("/visualization/{datasetID}/{geneID}", s.handleVisualization)
	s.router.Handle("/metrics", promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{}))
}

func (s *Server) countRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		route := r.URL.Path
		if rctx := chi.RouteContext(r.Context()); rctx != nil && rctx.RoutePattern() != "" {
			route = rctx.RoutePattern()
		}
		s.requests.WithLabelValues(route, strconv.Itoa(ww.Status())).Inc()
	})
}

func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	// Every query matches the whole catalog.
	writeJSON(w, http.StatusOK, catalog)
}

func (s *Server) handleDataset(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "datasetID")
	detail, ok := details[id]
	if !ok {
		writeError(w, http.StatusNotFound, fmt.Sprintf("dataset %s not found", id))
		return
	}
	writeJSON(w, http.StatusOK, detail)
}

func (s *Server) handleExpression(w http.ResponseWriter, r *http.Request) {
	if _, ok := decodeQuery(w, r); !ok {
		return
	}
	writeJSON(w, http.StatusOK, s.generator.Expression())
}

func (s *Server) handlePrediction(w http.ResponseWriter, r *http.Request) {
	if _, ok := decodeQuery(w, r); !ok {
		return
	}
	writeJSON(w, http.StatusOK, s.generator.Prediction())
}

func (s *Server) handleVisualization(w http.ResponseWriter, r *http.Request) {
	expr := s.generator.Expression()
	writeJSON(w, http.StatusOK, map[string]any{
		"type": "boxplot",
		"data": expr.ExpressionData,
	})
}

// Start serves until ctx is cancelled.
func (s *Server) Start(ctx context.Context) error {
	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", s.port),
		Handler:      s.router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	fmt.Printf("Mock backend listening at http://localhost:%d\n", s.port)

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			fmt.Printf("Server shutdown error: %v\n", err)
		}
	}()

	err := server.ListenAndServe()
	if err == http.ErrServerClosed {
		return nil
	}
	return err
}

// decodeQuery rejects analysis bodies missing either field.
func decodeQuery(w http.ResponseWriter, r *http.Request) (domain.AnalysisQuery, bool) {
	var q domain.AnalysisQuery
	if err := json.NewDecoder(r.Body).Decode(&q); err != nil {
		writeError(w, http.StatusUnprocessableEntity, "invalid request body")
		return q, false
	}
	if q.GeneID == "" || q.DatasetID == "" {
		writeError(w, http.StatusUnprocessableEntity, "gene_id and dataset_id are required")
		return q, false
	}
	return q, true
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, detail string) {
	writeJSON(w, status, map[string]string{"detail": detail})
}
