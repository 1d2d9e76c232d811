package chi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"net/http"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/katalvlaran/homology/betti"
	"github.com/katalvlaran/homology/boundary"
	"github.com/katalvlaran/homology/components"
	"github.com/katalvlaran/homology/geometry"
	"github.com/katalvlaran/homology/gridgraph"
	logpkg "github.com/katalvlaran/homology/internal/logger"
	"github.com/katalvlaran/homology/internal/render"
	"github.com/katalvlaran/homology/pipeline"
	"github.com/katalvlaran/homology/simplex"
)

// Error codes in ErrorResponse.Code.
const (
	codeBadRequest = "bad_request"
	codeInvalid    = "invalid_input"
	codeTooLarge   = "payload_too_large"
	codeTimeout    = "analysis_timeout"
	codeInternal   = "internal_error"
)

// BettiRequest is the JSON body of POST /v1/betti. Omitted fields fall back
// to the server's analysis defaults.
type BettiRequest struct {
	Points  []geometry.Point `json:"points"`
	Radius  *float64         `json:"radius,omitempty"`
	Split   *bool            `json:"split,omitempty"`
	Workers *int             `json:"workers,omitempty"`
}

// ErrorResponse is the body of every non-2xx reply.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// inputErrors are the sentinels that describe a malformed request rather
// than a broken engine.
var inputErrors = []error{
	geometry.ErrDimensionMismatch,
	geometry.ErrEmptyPoint,
	gridgraph.ErrEmptyGrid,
	gridgraph.ErrNonRectangular,
	gridgraph.ErrBadBlockSize,
}

// Health handles GET /healthz.
func (s *Server) Health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// Betti handles POST /v1/betti.
func (s *Server) Betti(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.Server.MaxBodyBytes)

	var req BettiRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeDecodeError(w, err)
		return
	}

	radius := s.cfg.Analysis.Radius
	if req.Radius != nil {
		radius = *req.Radius
	}
	if err := checkRadius(radius); err != nil {
		writeError(w, http.StatusBadRequest, codeInvalid, err.Error())
		return
	}
	opts, err := s.options(req.Split, req.Workers)
	if err != nil {
		writeError(w, http.StatusBadRequest, codeInvalid, err.Error())
		return
	}

	ctx, cancel := s.analysisContext(r)
	defer cancel()
	start := time.Now()
	res, err := pipeline.AnalyzeContext(ctx, req.Points, radius, opts...)
	s.record(r.Context(), "points", res, time.Since(start), err)
	if err != nil {
		s.handleAnalysisError(w, r, err)
		return
	}
	s.writeResult(w, r, res)
}

// Image handles POST /v1/image. The body is a PNG; the query may carry
// block, radius, cutoff (1..255), connectivity (4|8) and split.
func (s *Server) Image(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.Server.MaxBodyBytes)

	q, err := s.imageQuery(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, codeInvalid, err.Error())
		return
	}
	opts, err := s.options(q.split, nil)
	if err != nil {
		writeError(w, http.StatusBadRequest, codeInvalid, err.Error())
		return
	}

	gopts := gridgraph.DefaultGridOptions()
	gopts.MaxCells = s.cfg.Analysis.MaxCells
	if q.connectivity == 4 {
		gopts.Conn = gridgraph.Conn4
	}
	g, err := gridgraph.DecodePNG(r.Body, q.cutoff, gopts)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(w, http.StatusRequestEntityTooLarge, codeTooLarge, "request body too large")
			return
		}
		if errors.Is(err, gridgraph.ErrGridTooLarge) {
			writeError(w, http.StatusRequestEntityTooLarge, codeTooLarge, err.Error())
			return
		}
		if errors.Is(err, gridgraph.ErrEmptyGrid) {
			writeError(w, http.StatusBadRequest, codeInvalid, err.Error())
			return
		}
		writeError(w, http.StatusBadRequest, codeBadRequest, "invalid PNG body: "+err.Error())
		return
	}

	ctx, cancel := s.analysisContext(r)
	defer cancel()
	start := time.Now()
	res, err := pipeline.AnalyzeGrid(ctx, g, q.block, q.radius, opts...)
	s.record(r.Context(), "image", res, time.Since(start), err)
	if err != nil {
		s.handleAnalysisError(w, r, err)
		return
	}
	s.writeResult(w, r, res)
}

type imageQuery struct {
	block        int
	radius       float64
	cutoff       uint8
	connectivity int
	split        *bool
}

func (s *Server) imageQuery(r *http.Request) (imageQuery, error) {
	q := imageQuery{
		block:        s.cfg.Analysis.Block,
		radius:       s.cfg.Analysis.Radius,
		cutoff:       uint8(s.cfg.Analysis.DarkCutoff),
		connectivity: s.cfg.Analysis.Connectivity,
	}
	v := r.URL.Query()
	if raw := v.Get("block"); raw != "" {
		b, err := strconv.Atoi(raw)
		if err != nil {
			return q, fmt.Errorf("block: %w", err)
		}
		q.block = b
	}
	if raw := v.Get("radius"); raw != "" {
		f, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return q, fmt.Errorf("radius: %w", err)
		}
		q.radius = f
	}
	if err := checkRadius(q.radius); err != nil {
		return q, err
	}
	if raw := v.Get("cutoff"); raw != "" {
		c, err := strconv.ParseUint(raw, 10, 8)
		if err != nil || c == 0 {
			return q, fmt.Errorf("cutoff: want an integer in 1..255, got %q", raw)
		}
		q.cutoff = uint8(c)
	}
	if raw := v.Get("connectivity"); raw != "" {
		c, err := strconv.Atoi(raw)
		if err != nil || (c != 4 && c != 8) {
			return q, fmt.Errorf("connectivity: want 4 or 8, got %q", raw)
		}
		q.connectivity = c
	}
	if raw := v.Get("split"); raw != "" {
		b, err := strconv.ParseBool(raw)
		if err != nil {
			return q, fmt.Errorf("split: %w", err)
		}
		q.split = &b
	}

	return q, nil
}

// options turns request overrides into pipeline options. It validates worker
// counts itself since WithWorkers panics on nonsense.
func (s *Server) options(split *bool, workers *int) ([]pipeline.Option, error) {
	on := s.cfg.Analysis.Split
	if split != nil {
		on = *split
	}
	n := s.cfg.Analysis.Workers
	if workers != nil {
		n = *workers
	}
	if n < 1 {
		return nil, fmt.Errorf("workers: must be positive, got %d", n)
	}

	return []pipeline.Option{
		pipeline.WithSplit(on),
		pipeline.WithWorkers(n),
		pipeline.WithMaxVertices(s.cfg.Analysis.MaxVertices),
		pipeline.WithMaxSimplices(s.cfg.Analysis.MaxSimplices),
	}, nil
}

// analysisContext bounds one analysis by the configured timeout. The
// request context also ends it when the client goes away.
func (s *Server) analysisContext(r *http.Request) (context.Context, context.CancelFunc) {
	return context.WithTimeout(r.Context(), time.Duration(s.cfg.Analysis.TimeoutSec)*time.Second)
}

func checkRadius(r float64) error {
	if math.IsNaN(r) || math.IsInf(r, 0) {
		return fmt.Errorf("radius: must be finite, got %g", r)
	}

	return nil
}

// writeResult renders JSON by default and text with ?format=text.
func (s *Server) writeResult(w http.ResponseWriter, r *http.Request, res *pipeline.Result) {
	if r.URL.Query().Get("format") == string(render.FormatText) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_ = render.Text(w, res)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

func (s *Server) record(ctx context.Context, source string, res *pipeline.Result, d time.Duration, err error) {
	vertices := 0
	if res != nil {
		vertices = res.Vertices
	}
	s.metrics.RecordAnalysis(source, vertices, d, err)
	if err != nil {
		return
	}
	logpkg.FromContext(ctx).Info("analysis",
		zap.String("source", source),
		zap.Int("vertices", vertices),
		zap.Float64("radius", res.Radius),
		zap.Stringer("betti", res.Betti),
		zap.Int("components", len(res.Components)),
		zap.Duration("duration", d),
	)
}

func (s *Server) writeDecodeError(w http.ResponseWriter, err error) {
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		writeError(w, http.StatusRequestEntityTooLarge, codeTooLarge, "request body too large")
		return
	}
	writeError(w, http.StatusBadRequest, codeBadRequest, "Invalid request body: "+err.Error())
}

// handleAnalysisError maps input-shape errors to 400, size limits to 413,
// an expired or abandoned analysis to 503 and everything else, consistency
// failures included, to 500.
func (s *Server) handleAnalysisError(w http.ResponseWriter, r *http.Request, err error) {
	log := logpkg.FromContext(r.Context())
	switch {
	case errors.Is(err, simplex.ErrTooLarge), errors.Is(err, gridgraph.ErrGridTooLarge):
		log.Warn("rejected oversized input", zap.Error(err))
		writeError(w, http.StatusRequestEntityTooLarge, codeTooLarge, err.Error())
		return
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled):
		log.Warn("analysis abandoned", zap.Error(err))
		writeError(w, http.StatusServiceUnavailable, codeTimeout, "analysis did not finish in time")
		return
	}
	for _, sentinel := range inputErrors {
		if errors.Is(err, sentinel) {
			log.Warn("rejected input", zap.Error(err))
			writeError(w, http.StatusBadRequest, codeInvalid, err.Error())
			return
		}
	}
	switch {
	case errors.Is(err, components.ErrConsistency),
		errors.Is(err, boundary.ErrMissingFace),
		errors.Is(err, betti.ErrNegative):
		log.Error("consistency failure", zap.Error(err))
	default:
		log.Error("internal error", zap.Error(err))
	}
	writeError(w, http.StatusInternalServerError, codeInternal, "internal error")
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, ErrorResponse{Code: code, Message: message})
}
