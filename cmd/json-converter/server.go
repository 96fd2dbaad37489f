package main

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"json-converter/deck"
	"json-converter/hydrate"
)

const maxBodyBytes = 8 << 20

type convertResponse struct {
	Result      any                  `json:"result"`
	Pass        string               `json:"pass"`
	Diagnostics []diagnosticResponse `json:"diagnostics"`
}

type diagnosticResponse struct {
	Severity    string   `json:"severity"`
	Code        string   `json:"code"`
	Message     string   `json:"message"`
	Class       string   `json:"class,omitempty"`
	Path        string   `json:"path,omitempty"`
	Suggestions []string `json:"suggestions,omitempty"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func newRouter(svc *service, logger *slog.Logger) *mux.Router {
	r := mux.NewRouter()
	r.Use(loggingMiddleware(logger))

	r.HandleFunc("/healthz", handleHealth).Methods(http.MethodGet)
	r.HandleFunc("/classes", svc.handleClasses).Methods(http.MethodGet)
	r.HandleFunc("/convert", svc.handleConvert).Methods(http.MethodPost)

	return r
}

func serve(ctx context.Context, addr string, svc *service, logger *slog.Logger) error {
	server := &http.Server{
		Addr:              addr,
		Handler:           newRouter(svc, logger),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		_ = server.Shutdown(shutdownCtx)
	}()

	logger.Info("listening", "addr", addr, "classes", len(svc.classes()))

	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}

func handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *service) handleClasses(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string][]string{"classes": s.classes()})
}

func (s *service) handleConvert(w http.ResponseWriter, r *http.Request) {
	doc, err := decodeJSON(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}

	out, diags, err := s.convert(doc)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, deck.ErrRootNotObject) {
			status = http.StatusUnprocessableEntity
		}

		writeJSON(w, status, errorResponse{Error: err.Error()})

		return
	}

	status := http.StatusOK
	if diags.HasErrors() {
		status = http.StatusUnprocessableEntity
	}

	writeJSON(w, status, convertResponse{
		Result:      hydrate.Render(out),
		Pass:        diags.Pass,
		Diagnostics: diagnosticsResponse(diags),
	})
}

func diagnosticsResponse(diags *hydrate.Diagnostics) []diagnosticResponse {
	all := diags.All()

	out := make([]diagnosticResponse, 0, len(all))
	for _, d := range all {
		out = append(out, diagnosticResponse{
			Severity:    d.Severity.String(),
			Code:        d.Code,
			Message:     d.Message,
			Class:       d.Class,
			Path:        d.Path,
			Suggestions: d.Suggestions,
		})
	}

	return out
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

func loggingMiddleware(logger *slog.Logger) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

			next.ServeHTTP(rec, r)

			logger.Debug("request",
				"method", r.Method,
				"path", r.URL.Path,
				"status", rec.status,
				"duration", time.Since(start))
		})
	}
}
