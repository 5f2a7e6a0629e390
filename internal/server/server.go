package server

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	_ "github.com/superanalyst/concord/docs" // swagger registration

	"github.com/superanalyst/concord/internal/agreement"
	"github.com/superanalyst/concord/internal/app"
	"github.com/superanalyst/concord/internal/csvio"
	"github.com/superanalyst/concord/internal/dashboard"
	"github.com/superanalyst/concord/internal/logging"
)

// Server is the HTTP + WebSocket API surface for Concord.
type Server struct {
	cfg       Config
	evaluator *app.Evaluator
	router    chi.Router
	upgrader  websocket.Upgrader
	logger    logging.Logger
}

// NewServer creates a new Server with its own Evaluator.
func NewServer(cfg Config) (*Server, error) {
	if cfg.AppConfig == nil {
		cfg.AppConfig = app.DefaultConfig()
	}

	logger := cfg.Logger
	if logger == nil {
		logger = logging.NewStdoutLogger("Server")
	}

	r := chi.NewRouter()
	s := &Server{
		cfg:       cfg,
		evaluator: app.NewEvaluator(cfg.AppConfig, logger),
		router:    r,
		logger:    logger,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool {
				// TODO: tighten for production
				return true
			},
		},
	}

	s.routes()
	return s, nil
}

// Evaluator returns the underlying evaluator for advanced use (tests, etc.).
func (s *Server) Evaluator() *app.Evaluator {
	return s.evaluator
}

func (s *Server) routes() {
	r := s.router

	r.Use(s.corsMiddleware)

	// CORS preflight
	r.Options("/compare", s.optionsHandler("POST"))
	r.Options("/compare/batch", s.optionsHandler("POST"))
	r.Options("/compare/csv", s.optionsHandler("POST"))
	r.Options("/template.csv", s.optionsHandler("GET"))
	r.Options("/sample", s.optionsHandler("GET"))
	r.Options("/quicktest", s.optionsHandler("GET"))
	r.Options("/charts/record", s.optionsHandler("POST"))
	r.Options("/charts/batch", s.optionsHandler("POST"))
	r.Options("/ws/evaluate", s.optionsHandler("GET"))

	// Comparisons
	r.Post("/compare", s.handleCompare)
	r.Post("/compare/batch", s.handleCompareBatch)
	r.Post("/compare/csv", s.handleCompareCSV)

	// CSV template and sample data
	r.Get("/template.csv", s.handleTemplateCSV)
	r.Get("/sample", s.handleSample)
	r.Get("/quicktest", s.handleQuickTest)

	// Dashboard charts
	r.Post("/charts/record", s.handleRecordChart)
	r.Post("/charts/batch", s.handleBatchChart)

	// WebSocket for streamed batch evaluation
	r.Get("/ws/evaluate", s.handleEvaluateWS)

	// API documentation
	r.Get("/docs/*", httpSwagger.Handler(httpSwagger.URL("/docs/doc.json")))
}

func (s *Server) corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		w.Header().Set("Access-Control-Max-Age", "86400")

		next.ServeHTTP(w, r)
	})
}

func (s *Server) optionsHandler(methods string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Methods", methods)
		w.WriteHeader(http.StatusNoContent)
	}
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	fields := []logging.Field{
		{Key: "method", Value: r.Method},
		{Key: "path", Value: r.URL.Path},
	}

	if q := r.URL.Query(); len(q) > 0 {
		fields = append(fields, logging.Field{Key: "query", Value: q})
	}

	if r.Body != nil && r.Method == http.MethodPost && r.Header.Get("Content-Type") == "application/json" {
		if bodyBytes, err := io.ReadAll(r.Body); err == nil {
			fields = append(fields, logging.Field{Key: "body", Value: string(bodyBytes)})
			r.Body = io.NopCloser(bytes.NewReader(bodyBytes))
		}
	}

	s.logger.Info("http_request", fields...)

	s.router.ServeHTTP(w, r)
}

// HTTPServer creates an *http.Server ready to ListenAndServe.
func (s *Server) HTTPServer() *http.Server {
	return &http.Server{
		Addr:         s.cfg.ListenAddr,
		Handler:      s,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 0, // allow streaming
	}
}

// --- JSON helpers ---

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v != nil {
		_ = json.NewEncoder(w).Encode(v)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, ErrorResponse{Error: msg})
}

// writeInputError maps evaluation failures to 400. Every failure the
// evaluator produces is a caller input problem: mismatched KPI sets,
// vocabulary violations, CSV parse errors, batch limits.
func (s *Server) writeInputError(w http.ResponseWriter, err error) {
	var iie *agreement.InvalidInputError
	if errors.As(err, &iie) {
		writeError(w, http.StatusBadRequest, iie.Error())
		return
	}
	writeError(w, http.StatusBadRequest, err.Error())
}

// --- HTTP handlers ---

// handleCompare evaluates one AI/human score pair.
//
//	@Summary  Compare one chat
//	@Accept   json
//	@Produce  json
//	@Param    request body CompareRequest true "score pair"
//	@Success  200 {object} agreement.Result
//	@Failure  400 {object} ErrorResponse
//	@Router   /compare [post]
func (s *Server) handleCompare(w http.ResponseWriter, r *http.Request) {
	var body CompareRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}

	res, err := s.evaluator.EvaluatePair(body.ChatID, body.AIScores, body.HumanScores)
	if err != nil {
		s.logger.Warn("comparing chat", logging.Field{Key: "chat_id", Value: body.ChatID}, logging.Field{Key: "error", Value: err.Error()})
		s.writeInputError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

// handleCompareBatch evaluates an ordered batch of records, all-or-nothing.
//
//	@Summary  Compare a batch of chats
//	@Accept   json
//	@Produce  json
//	@Param    request body BatchCompareRequest true "ordered records"
//	@Success  200 {object} agreement.BatchResult
//	@Failure  400 {object} ErrorResponse
//	@Router   /compare/batch [post]
func (s *Server) handleCompareBatch(w http.ResponseWriter, r *http.Request) {
	var body BatchCompareRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}

	batch, err := s.evaluator.EvaluateBatch(body.Records)
	if err != nil {
		s.logger.Warn("comparing batch", logging.Field{Key: "error", Value: err.Error()})
		s.writeInputError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, batch)
}

// handleCompareCSV evaluates an uploaded CSV batch. With ?format=csv the
// results come back as a downloadable CSV instead of JSON.
//
//	@Summary  Compare an uploaded CSV batch
//	@Accept   mpfd
//	@Produce  json
//	@Param    file formData file true "upload-format CSV"
//	@Success  200 {object} agreement.BatchResult
//	@Failure  400 {object} ErrorResponse
//	@Router   /compare/csv [post]
func (s *Server) handleCompareCSV(w http.ResponseWriter, r *http.Request) {
	file, _, err := r.FormFile("file")
	if err != nil {
		writeError(w, http.StatusBadRequest, "missing CSV file upload")
		return
	}
	defer file.Close()

	batch, err := s.evaluator.EvaluateCSV(file)
	if err != nil {
		s.logger.Warn("evaluating CSV upload", logging.Field{Key: "error", Value: err.Error()})
		s.writeInputError(w, err)
		return
	}

	if r.URL.Query().Get("format") == "csv" {
		name := fmt.Sprintf("mae_results_%s.csv", time.Now().Format("20060102_150405"))
		w.Header().Set("Content-Type", "text/csv")
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", name))
		if err := csvio.WriteResults(w, batch); err != nil {
			s.logger.Error("writing results CSV", logging.Field{Key: "error", Value: err.Error()})
		}
		return
	}
	writeJSON(w, http.StatusOK, batch)
}

// handleTemplateCSV serves the downloadable sample template.
//
//	@Summary  Download the CSV upload template
//	@Produce  plain
//	@Success  200
//	@Router   /template.csv [get]
func (s *Server) handleTemplateCSV(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="mae_sample_template.csv"`)
	if err := csvio.WriteTemplate(w); err != nil {
		s.logger.Error("writing template CSV", logging.Field{Key: "error", Value: err.Error()})
	}
}

// handleSample returns randomly generated records.
//
//	@Summary  Generate sample records
//	@Produce  json
//	@Param    n query int false "record count"
//	@Success  200 {object} SampleResponse
//	@Router   /sample [get]
func (s *Server) handleSample(w http.ResponseWriter, r *http.Request) {
	n := 0
	if ns := r.URL.Query().Get("n"); ns != "" {
		if v, err := strconv.Atoi(ns); err == nil && v > 0 {
			n = v
		}
	}
	records := s.evaluator.SampleBatch(n)
	s.logger.Info("generated sample batch", logging.Field{Key: "records", Value: len(records)})
	writeJSON(w, http.StatusOK, SampleResponse{Records: records})
}

// handleQuickTest runs the built-in worked example.
//
//	@Summary  Run the built-in quick test
//	@Produce  json
//	@Success  200 {object} QuickTestResponse
//	@Router   /quicktest [get]
func (s *Server) handleQuickTest(w http.ResponseWriter, r *http.Request) {
	rec, res, err := s.evaluator.QuickTest()
	if err != nil {
		s.logger.Error("quick test", logging.Field{Key: "error", Value: err.Error()})
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, QuickTestResponse{Record: rec, Result: res})
}

// handleRecordChart renders the per-KPI chart for one submitted record.
func (s *Server) handleRecordChart(w http.ResponseWriter, r *http.Request) {
	var body CompareRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}

	res, err := s.evaluator.EvaluatePair(body.ChatID, body.AIScores, body.HumanScores)
	if err != nil {
		s.writeInputError(w, err)
		return
	}

	rec := agreement.Record{ID: body.ChatID, AI: body.AIScores, Human: body.HumanScores}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := dashboard.RenderRecordChart(w, rec, res); err != nil {
		s.logger.Error("rendering record chart", logging.Field{Key: "error", Value: err.Error()})
	}
}

// handleBatchChart renders the per-record MAE chart for a submitted batch.
func (s *Server) handleBatchChart(w http.ResponseWriter, r *http.Request) {
	var body BatchCompareRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}

	batch, err := s.evaluator.EvaluateBatch(body.Records)
	if err != nil {
		s.writeInputError(w, err)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := dashboard.RenderBatchChart(w, batch); err != nil {
		s.logger.Error("rendering batch chart", logging.Field{Key: "error", Value: err.Error()})
	}
}

// --- WebSocket ---

// handleEvaluateWS reads one BatchCompareRequest from the socket, then
// streams one EvalEvent per record in input order followed by a summary
// event. The batch itself stays all-or-nothing: on failure a single error
// event is sent and no results are streamed.
func (s *Server) handleEvaluateWS(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Warn("upgrading to websocket", logging.Field{Key: "error", Value: err.Error()})
		return
	}
	defer conn.Close()

	var req BatchCompareRequest
	if err := conn.ReadJSON(&req); err != nil {
		_ = conn.WriteJSON(EvalEvent{Type: EvalEventError, Error: "invalid JSON request"})
		return
	}

	batch, err := s.evaluator.EvaluateBatch(req.Records)
	if err != nil {
		s.logger.Warn("evaluating websocket batch", logging.Field{Key: "error", Value: err.Error()})
		_ = conn.WriteJSON(EvalEvent{Type: EvalEventError, Error: err.Error()})
		return
	}

	s.logger.Info("streaming batch results", logging.Field{Key: "records", Value: len(batch.Results)})
	for i := range batch.Results {
		ev := EvalEvent{Type: EvalEventResult, Index: i, Result: &batch.Results[i]}
		if err := conn.WriteJSON(ev); err != nil {
			// Assume client disconnected.
			return
		}
	}
	_ = conn.WriteJSON(EvalEvent{
		Type:           EvalEventSummary,
		AverageMAE:     batch.AverageMAE,
		Records:        len(batch.Results),
		Interpretation: agreement.Interpret(batch.AverageMAE),
	})
}
