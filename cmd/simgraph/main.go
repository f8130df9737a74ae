package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/psidex/simgraph/internal/artifact"
	"github.com/psidex/simgraph/internal/config"
	"github.com/psidex/simgraph/internal/graphs"
	"github.com/psidex/simgraph/internal/graphs/graphology"
	"github.com/psidex/simgraph/internal/graphs/snapshot"
	"github.com/psidex/simgraph/internal/graphs/vis"
	"github.com/psidex/simgraph/internal/lib"
	"github.com/psidex/simgraph/internal/metrics"
	"github.com/psidex/simgraph/internal/simgraph"
	"github.com/psidex/simgraph/internal/similarity"
	"github.com/psidex/simgraph/internal/sweep"
)

// Community ids beyond this are recomputed rather than cached.
const paletteSize = 256

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	logger, err := lib.NewLogger(os.Stderr, cfg.LogLevel)
	if err != nil {
		log.Fatalf("logger: %v", err)
	}

	matrix, err := similarity.Load(cfg.MatrixPath)
	if err != nil {
		log.Fatalf("load matrix: %v", err)
	}
	ids, err := simgraph.LoadIdentifiers(cfg.GraphsGlob)
	if err != nil {
		log.Fatalf("load identifiers: %v", err)
	}
	logger.Info("Loaded inputs", "matrix", cfg.MatrixPath, "identifiers", len(ids))

	palette, err := simgraph.NewPalette(paletteSize)
	if err != nil {
		log.Fatalf("palette: %v", err)
	}

	renderer, err := renderers(cfg)
	if err != nil {
		log.Fatalf("renderers: %v", err)
	}

	m := metrics.New()
	sw, err := sweep.NewSweep(
		sweep.Config{
			Thresholds: cfg.Thresholds,
			Color:      palette.Color,
			Metrics:    m,
		},
		sweep.Input{Matrix: matrix, Identifiers: ids},
		cfg.Community.Louvain(cfg.Seed),
		cfg.Layout.Spring(cfg.Seed),
		renderer,
		logger,
	)
	if err != nil {
		log.Fatalf("sweep: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	res, runErr := sw.Run(ctx)
	logger.Info("Sweep finished", "written", len(res.Written), "skipped", len(res.Skipped))

	if cfg.MetricsFile != "" {
		if err := m.WriteTextfile(cfg.MetricsFile); err != nil {
			logger.Error("Writing metrics failed", "path", cfg.MetricsFile, "error", err)
		}
	}

	if runErr != nil {
		stop()
		log.Fatalf("sweep: %v", runErr)
	}
}

// renderers returns the JSON output plus whatever cfg enables, in a fixed order.
func renderers(cfg *config.Config) (graphs.Multi, error) {
	out := graphs.Multi{graphs.NewDir(cfg.OutputDir, graphs.JSON{})}

	for _, name := range cfg.Renderers {
		switch name {
		case "echarts":
			var snap graphs.Snapshotter
			if cfg.Snapshot.Enabled {
				snap = snapshot.NewChrome(snapshot.Config{
					Width:   cfg.Snapshot.Width,
					Height:  cfg.Snapshot.Height,
					Timeout: cfg.Snapshot.Timeout.Duration,
					Settle:  cfg.Snapshot.Settle.Duration,
				})
			}
			out = append(out, graphs.NewDir(cfg.OutputDir, graphs.NewECharts(snap)))
		case "vis":
			out = append(out, graphs.NewDir(cfg.OutputDir, vis.NewVis()))
		case "graphology":
			out = append(out, graphs.NewDir(cfg.OutputDir, graphology.NewGraphology()))
		}
	}

	if cfg.Artifact.Enabled {
		store, err := artifact.NewS3Store(artifact.S3Config{
			Endpoint:  cfg.Artifact.Endpoint,
			Region:    cfg.Artifact.Region,
			AccessKey: cfg.Artifact.AccessKey,
			SecretKey: cfg.Artifact.SecretKey,
			Bucket:    cfg.Artifact.Bucket,
			UseSSL:    cfg.Artifact.UseSSL,
		})
		if err != nil {
			return nil, err
		}
		runID := filepath.Base(cfg.OutputDir) + "-" + uuid.NewString()
		out = append(out, graphs.NewUpload(store, runID))
	}

	return out, nil
}
