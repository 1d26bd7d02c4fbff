package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path"
	"strings"
	"sync/atomic"
	"time"

	"github.com/jonboulle/clockwork"
	"go.opentelemetry.io/otel/attribute"

	"github.com/couchcryptid/virtual-events/internal/domain"
	"github.com/couchcryptid/virtual-events/internal/observability"
	"github.com/couchcryptid/virtual-events/internal/render"
)

// SourceLoader reads one raw source document.
type SourceLoader interface {
	Load(ctx context.Context, path string) (domain.Source, error)
}

// Publisher writes artifacts and static assets under the output root.
type Publisher interface {
	Write(ctx context.Context, name string, data []byte) error
	CopyStatic(ctx context.Context, dir string) (int, error)
}

// Renderer turns partitions and ranked counts into artifacts.
type Renderer interface {
	RenderPartition(p domain.Partition, now time.Time) ([]render.Artifact, error)
	RenderIndex(counts []domain.CountEntry, now time.Time) (render.Artifact, error)
}

// Options selects what a build reads.
type Options struct {
	// Sources are loaded and concatenated in this order.
	Sources   []string
	StaticDir string
}

// Report summarizes a completed build.
type Report struct {
	Now        time.Time
	Ingested   int
	Published  int
	Partitions []domain.Partition
	Counts     []domain.CountEntry
	Artifacts  int
}

// Pipeline runs one build: load, validate, filter, localize, partition,
// render, count, index. Every failure aborts the build.
type Pipeline struct {
	loader    SourceLoader
	publisher Publisher
	renderer  Renderer
	clock     clockwork.Clock
	logger    *slog.Logger
	metrics   *observability.Metrics
	opts      Options
	ready     atomic.Bool
}

// New creates a Pipeline with the given stages and observability. A nil
// clock uses real time.
func New(loader SourceLoader, publisher Publisher, renderer Renderer, clock clockwork.Clock, logger *slog.Logger, metrics *observability.Metrics, opts Options) *Pipeline {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &Pipeline{
		loader:    loader,
		publisher: publisher,
		renderer:  renderer,
		clock:     clock,
		logger:    logger,
		metrics:   metrics,
		opts:      opts,
	}
}

// CheckReadiness returns nil once a build has completed.
func (p *Pipeline) CheckReadiness(_ context.Context) error {
	if !p.ready.Load() {
		return errors.New("site has not been built yet")
	}
	return nil
}

// Run executes one build. The reference instant is read from the clock
// exactly once and shared by every stage.
func (p *Pipeline) Run(ctx context.Context) (Report, error) {
	now := p.clock.Now()
	start := time.Now()
	p.logger.Info("build started", "now", now.UTC().Format(time.RFC3339), "sources", len(p.opts.Sources))

	ctx, span := observability.StartStage(ctx, "run", attribute.Int("sources", len(p.opts.Sources)))
	report, err := p.run(ctx, now)
	observability.EndStage(span, err)
	if err != nil {
		return report, err
	}

	p.metrics.BuildDuration.Observe(time.Since(start).Seconds())
	p.metrics.BuildsCompleted.Inc()
	p.metrics.LastBuildSuccess.Set(float64(now.Unix()))
	p.metrics.EventsPublished.Set(float64(report.Published))
	p.ready.Store(true)

	p.logger.Info("build completed",
		"ingested", report.Ingested,
		"published", report.Published,
		"partitions", len(report.Partitions),
		"artifacts", report.Artifacts,
		"duration", time.Since(start),
	)
	return report, nil
}

func (p *Pipeline) run(ctx context.Context, now time.Time) (Report, error) {
	report := Report{Now: now}

	ingested, err := p.ingest(ctx)
	if err != nil {
		return report, err
	}
	report.Ingested = len(ingested)

	zones, err := domain.LoadZones()
	if err != nil {
		return report, p.fail("localize", err)
	}
	upcoming := domain.Localize(domain.Upcoming(ingested, now), zones)
	report.Published = len(upcoming)
	p.metrics.EventsExpired.Add(float64(len(ingested) - len(upcoming)))
	p.logger.Info("events filtered", "ingested", len(ingested), "upcoming", len(upcoming))

	copied, err := p.publisher.CopyStatic(ctx, p.opts.StaticDir)
	if err != nil {
		return report, p.fail("static", err)
	}
	p.metrics.ArtifactsWritten.WithLabelValues("static").Add(float64(copied))

	report.Partitions = domain.Partitions(upcoming)
	for _, part := range report.Partitions {
		n, err := p.publishPartition(ctx, part, now)
		report.Artifacts += n
		if err != nil {
			return report, err
		}
	}

	report.Counts = domain.CountPartitions(report.Partitions)
	index, err := p.renderer.RenderIndex(report.Counts, now)
	if err != nil {
		return report, p.fail("render", fmt.Errorf("index: %w", err))
	}
	if err := p.write(ctx, index); err != nil {
		return report, err
	}
	report.Artifacts++

	return report, nil
}

// ingest validates every source before anything is written, so a bad
// document aborts the build with the output root untouched.
func (p *Pipeline) ingest(ctx context.Context) ([]domain.Event, error) {
	ctx, span := observability.StartStage(ctx, "ingest")
	var events []domain.Event
	var err error
	defer func() { observability.EndStage(span, err) }()

	for _, path := range p.opts.Sources {
		var src domain.Source
		src, err = p.loader.Load(ctx, path)
		if err != nil {
			err = p.fail("load", err)
			return nil, err
		}

		var decoded []domain.Event
		decoded, err = domain.DecodeSource(src)
		if err != nil {
			err = p.fail("decode", err)
			return nil, err
		}

		p.metrics.SourcesLoaded.Inc()
		p.metrics.EventsIngested.Add(float64(len(decoded)))
		p.logger.Info("source loaded", "source", src.Name, "events", len(decoded))
		events = append(events, decoded...)
	}
	return events, nil
}

// publishPartition renders one partition and writes its artifacts one by
// one. A failed write leaves the earlier files in place.
func (p *Pipeline) publishPartition(ctx context.Context, part domain.Partition, now time.Time) (int, error) {
	ctx, span := observability.StartStage(ctx, "partition",
		attribute.String("label", part.Label),
		attribute.Int("events", len(part.Events)),
	)

	artifacts, err := p.renderer.RenderPartition(part, now)
	if err != nil {
		err = p.fail("render", fmt.Errorf("partition %s: %w", part.Label, err))
		observability.EndStage(span, err)
		return 0, err
	}

	written := 0
	for _, a := range artifacts {
		if err := p.write(ctx, a); err != nil {
			observability.EndStage(span, err)
			return written, err
		}
		written++
	}

	p.metrics.PartitionEvents.WithLabelValues(part.Label).Set(float64(len(part.Events)))
	p.logger.Debug("partition published", "label", part.Label, "events", len(part.Events))
	observability.EndStage(span, nil)
	return written, nil
}

func (p *Pipeline) write(ctx context.Context, a render.Artifact) error {
	if err := p.publisher.Write(ctx, a.Name, a.Data); err != nil {
		return p.fail("write", err)
	}
	p.metrics.ArtifactsWritten.WithLabelValues(strings.TrimPrefix(path.Ext(a.Name), ".")).Inc()
	return nil
}

func (p *Pipeline) fail(stage string, err error) error {
	p.metrics.BuildFailures.WithLabelValues(stage).Inc()
	return fmt.Errorf("%s: %w", stage, err)
}
