package updater

import (
	"context"
	"sync"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
	"go.trai.ch/pacforge/internal/core/domain"
	"go.trai.ch/pacforge/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// Runner partitions packages and dispatches the chunks to an Updater.
type Runner struct {
	logger  ports.Logger
	metrics ports.Metrics
	tracer  trace.Tracer
}

// NewRunner creates a new Runner. A nil tracer disables tracing.
func NewRunner(logger ports.Logger, metrics ports.Metrics, tracer trace.Tracer) *Runner {
	if tracer == nil {
		tracer = noop.NewTracerProvider().Tracer("")
	}
	return &Runner{
		logger:  logger,
		metrics: metrics,
		tracer:  tracer,
	}
}

// Run updates packages with u and returns the merged result of all chunks.
// Chunks run with at most u.Concurrency() in flight; results are merged one
// at a time.
func (r *Runner) Run(
	ctx context.Context,
	u Updater,
	packages []domain.Package,
	opts domain.UpdateOptions,
) (*domain.Result, error) {
	ctx, span := r.tracer.Start(ctx, "update", trace.WithAttributes(
		attribute.String("updater", u.Name()),
		attribute.Int("packages", len(packages)),
	))
	defer span.End()

	chunks, err := u.Partition(packages)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return nil, zerr.Wrap(err, "failed to partition packages")
	}

	var mu sync.Mutex
	result := domain.NewResult()

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(u.Concurrency())

	for i, chunk := range chunks {
		g.Go(func() error {
			chunkResult, err := r.runChunk(gctx, u, i, chunk, opts)
			if err != nil {
				return err
			}

			mu.Lock()
			defer mu.Unlock()
			merged, err := result.Merge(chunkResult)
			if err != nil {
				return err
			}
			result = merged
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	r.metrics.AddPackages("success", len(result.Success()))
	r.metrics.AddPackages("failed", len(result.Failed()))
	return result, nil
}

func (r *Runner) runChunk(
	ctx context.Context,
	u Updater,
	index int,
	chunk []domain.Package,
	opts domain.UpdateOptions,
) (*domain.Result, error) {
	ctx, span := r.tracer.Start(ctx, "chunk", trace.WithAttributes(
		attribute.Int("index", index),
		attribute.StringSlice("packages", domain.Bases(chunk)),
	))
	defer span.End()

	start := time.Now()
	result, err := u.Update(ctx, chunk, opts)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return nil, zerr.With(zerr.Wrap(err, "failed to update chunk"), "chunk", index)
	}

	failed := len(result.Failed()) > 0
	if failed {
		span.SetStatus(codes.Error, "packages failed")
	}
	r.metrics.ObserveChunk(u.Name(), time.Since(start), failed)
	return result, nil
}
