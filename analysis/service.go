// SPDX-License-Identifier: MIT
//
// File: service.go
// Role: the two public operations over a Graph Store, with logging and metrics.

// Package analysis is the entry point for callers holding a core.Graph.
//
// A Service takes one snapshot of the graph per call and hands it to the
// analyzer or the optimizer, so a report always reflects a single consistent
// state even while other goroutines keep mutating the store.
package analysis

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/katalvlaran/supplynet/analyzer"
	"github.com/katalvlaran/supplynet/core"
	"github.com/katalvlaran/supplynet/optimizer"
)

// ErrNilGraph is returned when a nil graph is passed to a Service.
var ErrNilGraph = errors.New("analysis: graph is nil")

// Operation names used in logs and metric labels.
const (
	OpAnalyzeNetwork    = "analyze_network"
	OpFindOptimalRoutes = "find_optimal_routes"
)

// RouteRequest selects the optimizer mode: point-to-point when both Source
// and Target are set, global ranking otherwise.
type RouteRequest struct {
	Source string `json:"source,omitempty"`
	Target string `json:"target,omitempty"`
}

// PointToPoint reports whether the request names both endpoints.
func (r RouteRequest) PointToPoint() bool {
	return r.Source != "" && r.Target != ""
}

// Service runs analyses. It holds no graph state and is safe for concurrent
// use.
type Service struct {
	logger       *slog.Logger
	metrics      *Metrics
	analyzerOpts []analyzer.Option
	routeOpts    []optimizer.Option
}

// Option configures a Service.
type Option func(*serviceConfig)

type serviceConfig struct {
	logger       *slog.Logger
	registerer   prometheus.Registerer
	analyzerOpts []analyzer.Option
	routeOpts    []optimizer.Option
}

// WithLogger sets the logger (default slog.Default()).
func WithLogger(l *slog.Logger) Option {
	return func(c *serviceConfig) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithRegisterer registers the Service metrics with reg. Without it the
// metrics are collected but not exported.
func WithRegisterer(reg prometheus.Registerer) Option {
	return func(c *serviceConfig) { c.registerer = reg }
}

// WithAnalyzerOptions appends options passed to every analyzer.Analyze call.
func WithAnalyzerOptions(opts ...analyzer.Option) Option {
	return func(c *serviceConfig) { c.analyzerOpts = append(c.analyzerOpts, opts...) }
}

// WithOptimizerOptions appends options passed to every global ranking.
func WithOptimizerOptions(opts ...optimizer.Option) Option {
	return func(c *serviceConfig) { c.routeOpts = append(c.routeOpts, opts...) }
}

// New builds a Service. Registering the metrics twice with the same
// registerer panics, as with any promauto collector.
func New(opts ...Option) *Service {
	cfg := serviceConfig{logger: slog.Default()}
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Service{
		logger:       cfg.logger,
		metrics:      newMetrics(cfg.registerer),
		analyzerOpts: cfg.analyzerOpts,
		routeOpts:    cfg.routeOpts,
	}
}

// Metrics exposes the Service collectors.
func (s *Service) Metrics() *Metrics { return s.metrics }

// AnalyzeNetwork builds the NetworkReport of g.
//
// Errors: ErrNilGraph, analyzer option violations, ctx.Err().
func (s *Service) AnalyzeNetwork(ctx context.Context, g *core.Graph) (*analyzer.NetworkReport, error) {
	if g == nil {
		s.record(OpAnalyzeNetwork, 0, ErrNilGraph)
		return nil, ErrNilGraph
	}
	snap := g.Snapshot()
	log := s.begin(OpAnalyzeNetwork, snap)
	start := time.Now()

	rep, err := analyzer.Analyze(ctx, snap, s.analyzerOpts...)
	elapsed := time.Since(start)
	s.record(OpAnalyzeNetwork, elapsed, err)
	if err != nil {
		log.Error("analysis failed", slog.Duration("duration", elapsed), slog.String("error", err.Error()))
		return nil, err
	}

	if rep.Resilience.Fallback {
		s.metrics.ResilienceFallbackTotal.Inc()
		log.Warn("resilience fell back to default",
			slog.Float64("score", rep.Resilience.Score),
			slog.String("reason", rep.Resilience.FallbackReason),
		)
	}
	log.Info("analysis completed",
		slog.Duration("duration", elapsed),
		slog.Float64("resilience", rep.Resilience.Score),
		slog.Int("bottlenecks", len(rep.Bottlenecks)),
	)
	return rep, nil
}

// FindOptimalRoutes searches g for the best routes. See RouteRequest for the
// mode selection.
//
// Errors: ErrNilGraph, core.ErrNotFound (wrapped) for unknown endpoints,
// optimizer option violations, ctx.Err().
func (s *Service) FindOptimalRoutes(ctx context.Context, g *core.Graph, req RouteRequest) (*optimizer.RouteResult, error) {
	if g == nil {
		s.record(OpFindOptimalRoutes, 0, ErrNilGraph)
		return nil, ErrNilGraph
	}
	snap := g.Snapshot()
	log := s.begin(OpFindOptimalRoutes, snap)
	start := time.Now()

	var (
		res *optimizer.RouteResult
		err error
	)
	if req.PointToPoint() {
		res, err = optimizer.PointToPoint(ctx, snap, req.Source, req.Target)
	} else {
		res, err = optimizer.Global(snap, s.routeOpts...)
	}
	elapsed := time.Since(start)
	s.record(OpFindOptimalRoutes, elapsed, err)
	if err != nil {
		log.Error("route search failed",
			slog.String("source", req.Source),
			slog.String("target", req.Target),
			slog.String("error", err.Error()),
		)
		return nil, err
	}

	log.Info("route search completed",
		slog.String("mode", string(res.Mode)),
		slog.Duration("duration", elapsed),
		slog.Int("routes", res.TotalRoutesAnalyzed),
	)
	return res, nil
}

// begin returns a logger tagged with a fresh request ID and logs the start.
func (s *Service) begin(op string, snap *core.Snapshot) *slog.Logger {
	log := s.logger.With(
		slog.String("request_id", uuid.NewString()),
		slog.String("operation", op),
	)
	log.Debug("operation started",
		slog.Int("nodes", snap.Len()),
		slog.Int("edges", snap.EdgeCount()),
	)
	return log
}

func (s *Service) record(op string, elapsed time.Duration, err error) {
	result := "success"
	if err != nil {
		result = "error"
	}
	s.metrics.OperationsTotal.WithLabelValues(op, result).Inc()
	if err == nil {
		s.metrics.OperationDuration.WithLabelValues(op).Observe(elapsed.Seconds())
	}
}
