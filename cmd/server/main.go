// cmd/server/main.go
package main

import (
	"encoding/json"
	"flag"
	"net/http"
	"os"

	"github.com/gorilla/mux"
	"golang.org/x/time/rate"

	"github.com/valpere/LinkHarvester/internal/config"
	"github.com/valpere/LinkHarvester/internal/enrich"
	"github.com/valpere/LinkHarvester/internal/extract"
	"github.com/valpere/LinkHarvester/internal/metrics"
	"github.com/valpere/LinkHarvester/internal/utils"
	"github.com/valpere/LinkHarvester/pkg/api"
)

var version = "dev"

type server struct {
	cfg     *config.Config
	logger  utils.Logger
	fetcher *enrich.Fetcher
}

func newServer(cfg *config.Config, logger utils.Logger) *server {
	return &server{
		cfg:    cfg,
		logger: logger,
		fetcher: enrich.NewFetcher(enrich.Config{
			Timeout:   cfg.EnrichTimeout(),
			UserAgent: cfg.Enrich.UserAgent,
			Logger:    logger,
		}),
	}
}

func (s *server) routes() http.Handler {
	r := mux.NewRouter()

	r.HandleFunc("/health", s.healthHandler).Methods(http.MethodGet)
	r.Handle("/metrics", metrics.Handler()).Methods(http.MethodGet)

	v1 := r.PathPrefix("/api/v1").Subrouter()
	v1.HandleFunc("/extract", s.extractHandler).Methods(http.MethodPost)

	return r
}

func (s *server) healthHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, api.HealthResponse{Status: "healthy", Version: version})
}

func (s *server) extractHandler(w http.ResponseWriter, r *http.Request) {
	var req api.ExtractRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	result, err := extract.Process(req.Input)
	if err != nil {
		metrics.ExtractionsTotal.WithLabelValues("invalid_input").Inc()
		s.writeError(w, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	metrics.ExtractionsTotal.WithLabelValues("ok").Inc()
	metrics.URLsFoundTotal.Add(float64(result.TotalURLsFound))

	resp := api.ExtractResponse{Result: toAPIResult(result)}

	if req.Enrich {
		details := s.fetcher.FetchAll(r.Context(), result.UniqueURLs)
		resp.URLDetails = toAPIDetails(details)
	}

	s.logger.WithField("urls", result.TotalURLsFound).Infof("extraction served, enrich=%v", req.Enrich)
	writeJSON(w, http.StatusOK, resp)
}

func (s *server) writeError(w http.ResponseWriter, status int, message, detail string) {
	s.logger.Warnf("%s: %s", message, detail)
	writeJSON(w, status, api.ErrorResponse{
		Error:      message,
		StatusCode: status,
		Message:    detail,
	})
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

func toAPIResult(result *extract.Result) api.ExtractionResult {
	return api.ExtractionResult{
		TotalURLsFound:     result.TotalURLsFound,
		UniqueURLs:         result.UniqueURLs,
		TotalStreamURLs:    result.TotalStreamURLs,
		UniqueStreamURLs:   result.UniqueStreamURLs,
		TotalUniqueDomains: result.TotalUniqueDomains,
		UniqueDomains:      result.UniqueDomains,
	}
}

func toAPIDetails(details []enrich.Detail) []api.URLDetail {
	out := make([]api.URLDetail, len(details))
	for i, d := range details {
		out[i] = api.URLDetail{
			URL:         d.URL,
			Title:       d.Title,
			Description: d.Description,
			StatusCode:  d.StatusCode,
			Exists:      d.Exists,
		}
	}
	return out
}

// rateLimitMiddleware caps the request rate across the whole API.
func rateLimitMiddleware(limiter *rate.Limiter, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !limiter.Allow() {
			http.Error(w, "Rate limit exceeded", http.StatusTooManyRequests)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func main() {
	configFile := flag.String("config", "", "path to YAML configuration file")
	listenAddr := flag.String("listen", "", "listen address (overrides config)")
	verbose := flag.Bool("v", false, "enable debug logging")
	flag.Parse()

	level := utils.InfoLevel
	if *verbose {
		level = utils.DebugLevel
	}
	logger := utils.NewLoggerWithLevel(level)

	cfg := config.Default()
	if *configFile != "" {
		loaded, err := config.LoadFromFile(*configFile)
		if err != nil {
			logger.Errorf("failed to load configuration: %v", err)
			os.Exit(1)
		}
		cfg = loaded
	}
	if *listenAddr != "" {
		cfg.Server.ListenAddress = *listenAddr
	}

	srv := newServer(cfg, logger)

	handler := srv.routes()
	if cfg.Server.RateLimit > 0 {
		limiter := rate.NewLimiter(rate.Limit(cfg.Server.RateLimit), cfg.Server.RateBurst)
		handler = rateLimitMiddleware(limiter, handler)
	}

	logger.Infof("listening on %s", cfg.Server.ListenAddress)
	if err := http.ListenAndServe(cfg.Server.ListenAddress, handler); err != nil {
		logger.Errorf("server stopped: %v", err)
		os.Exit(1)
	}
}
