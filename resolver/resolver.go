package resolver

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/kbukum/grantkit/config"
	"github.com/kbukum/grantkit/grant"
	"github.com/kbukum/grantkit/logger"
	"github.com/kbukum/grantkit/observability"
)

// Resolver resolves targets to grants using loaded permission rules.
// It is read-only after construction and safe for concurrent use.
type Resolver struct {
	rules   []config.Rule
	log     *logger.Logger
	metrics *observability.Metrics
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithLogger sets the logger used for resolution diagnostics.
func WithLogger(log *logger.Logger) Option {
	return func(r *Resolver) { r.log = log }
}

// WithMetrics enables metric recording for resolutions.
func WithMetrics(m *observability.Metrics) Option {
	return func(r *Resolver) { r.metrics = m }
}

// New creates a Resolver over the configuration's rules.
func New(cfg *config.Config, opts ...Option) *Resolver {
	r := &Resolver{rules: cfg.Rules}
	for _, opt := range opts {
		opt(r)
	}
	if r.log == nil {
		r.log = logger.WithComponent("resolver")
	}
	return r
}

// ResolveRaw collects the raw grant masks of every rule whose target
// pattern matches the requested target, in rule order.
func (r *Resolver) ResolveRaw(target string) []map[string]any {
	var raws []map[string]any
	for _, rule := range r.rules {
		if MatchAnyTarget(rule.Targets, target) {
			raws = append(raws, rule.Grant)
		}
	}
	return raws
}

// Resolve combines every matching rule's grant into a single Grant for the
// target, carrying the matching context for diagnostics. Zero matching
// rules yield a Grant that denies everything.
func (r *Resolver) Resolve(ctx context.Context, target string, match any) *grant.Grant {
	ctx, span := observability.StartSpan(ctx, observability.SpanResolve)
	defer span.End()

	start := time.Now()
	resolutionID := uuid.NewString()

	raws := r.ResolveRaw(target)
	masks := make([]*grant.Mask, len(raws))
	for i, raw := range raws {
		masks[i] = grant.ParseMask(raw)
	}
	g := grant.New(grant.Combine(masks...), target, match)

	observability.SetSpanAttribute(ctx, observability.AttrTarget, target)
	observability.SetSpanAttribute(ctx, observability.AttrRuleCount, len(raws))
	observability.SetSpanAttribute(ctx, observability.AttrResolutionID, resolutionID)
	if r.metrics != nil {
		r.metrics.RecordResolution(ctx, target, len(raws), time.Since(start))
	}

	r.log.Debug("grants resolved", logger.Fields(
		logger.FieldResolutionID, resolutionID,
		logger.FieldTarget, target,
		logger.FieldMatch, match,
		logger.FieldRuleCount, len(raws),
	))

	return g
}

// ResolveSubgrant resolves the target and derives a sub-grant from the
// union of the given paths within it.
func (r *Resolver) ResolveSubgrant(ctx context.Context, target string, match any, paths ...string) *grant.Grant {
	g := r.Resolve(ctx, target, match)
	if len(paths) == 1 {
		return g.Subgrant(paths[0])
	}
	return g.SubgrantPaths(paths...)
}
