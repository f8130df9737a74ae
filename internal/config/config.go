// Package config loads the sweep configuration. Defaults reproduce the reference batch
// run; a YAML file and environment variables (optionally from .env) override them.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/psidex/simgraph/internal/lib"
)

// DefaultFile is read when SIMGRAPH_CONFIG is unset, if it exists.
const DefaultFile = "simgraph.yaml"

// DefaultThresholds is the reference threshold list. The order is kept as listed.
var DefaultThresholds = []float64{
	0.00125125, 0.0042042, 0.00586587, 0.00705706, 0.00888889,
	0.00026026, 0.00387387, 0.00511512, 0.00653654, 0.00821822,
	0.00992993,
}

type Config struct {
	MatrixPath string    `yaml:"matrixPath" validate:"required"`
	GraphsGlob string    `yaml:"graphsGlob" validate:"required"`
	OutputDir  string    `yaml:"outputDir" validate:"required"`
	Thresholds []float64 `yaml:"thresholds" validate:"required,min=1"`
	Seed       uint64    `yaml:"seed"`
	LogLevel   string    `yaml:"logLevel" validate:"required,oneof=debug info warn error DEBUG INFO WARN ERROR"`
	// Renderers are written alongside the JSON document, which is always produced.
	Renderers   []string        `yaml:"renderers" validate:"dive,oneof=echarts vis graphology"`
	Community   CommunityConfig `yaml:"community"`
	Layout      LayoutConfig    `yaml:"layout"`
	MetricsFile string          `yaml:"metricsFile"`
	Artifact    ArtifactConfig  `yaml:"artifact"`
	Snapshot    SnapshotConfig  `yaml:"snapshot"`
}

type CommunityConfig struct {
	Resolution float64 `yaml:"resolution" validate:"gt=0"`
}

type LayoutConfig struct {
	Repulsion float64 `yaml:"repulsion" validate:"gt=0"`
	Rate      float64 `yaml:"rate" validate:"gt=0"`
	Updates   int     `yaml:"updates" validate:"gt=0"`
	Theta     float64 `yaml:"theta" validate:"gte=0"`
	Scale     float64 `yaml:"scale" validate:"gt=0"`
}

type ArtifactConfig struct {
	Enabled   bool   `yaml:"enabled"`
	Endpoint  string `yaml:"endpoint" validate:"required_if=Enabled true"`
	Region    string `yaml:"region"`
	AccessKey string `yaml:"accessKey" validate:"required_if=Enabled true"`
	SecretKey string `yaml:"secretKey" validate:"required_if=Enabled true"`
	Bucket    string `yaml:"bucket" validate:"required_if=Enabled true"`
	UseSSL    bool   `yaml:"useSSL"`
}

type SnapshotConfig struct {
	Enabled bool         `yaml:"enabled"`
	Width   int64        `yaml:"width" validate:"gte=0"`
	Height  int64        `yaml:"height" validate:"gte=0"`
	Timeout lib.Duration `yaml:"timeout"`
	Settle  lib.Duration `yaml:"settle"`
}

func Default() *Config {
	return &Config{
		MatrixPath: "./similarity_matrix.npy",
		GraphsGlob: "graphs/*/*.graphml",
		OutputDir:  "graphs_output",
		Thresholds: append([]float64(nil), DefaultThresholds...),
		Seed:       42,
		LogLevel:   "info",
		Community:  CommunityConfig{Resolution: 1},
		Layout: LayoutConfig{
			Repulsion: 1,
			Rate:      0.05,
			Updates:   30,
			Theta:     0.2,
			Scale:     1,
		},
		Artifact: ArtifactConfig{
			Region: "us-east-1",
			Bucket: "simgraph-output",
		},
		Snapshot: SnapshotConfig{
			Width:   1600,
			Height:  1200,
			Timeout: lib.DurationFrom(30 * time.Second),
			Settle:  lib.DurationFrom(time.Second),
		},
	}
}

// Load builds the configuration from defaults, the YAML file, .env and the
// environment, in increasing priority, then validates it.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := Default()

	path := strings.TrimSpace(os.Getenv("SIMGRAPH_CONFIG"))
	explicit := path != ""
	if !explicit {
		path = DefaultFile
	}
	if err := cfg.LoadFile(path); err != nil {
		if explicit || !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
	}

	if err := cfg.ApplyEnv(os.LookupEnv); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// LoadFile overlays the YAML file at path onto cfg. Unknown keys are an error.
func (cfg *Config) LoadFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	return nil
}

// ApplyEnv overlays environment variables onto cfg using lookup, which is
// os.LookupEnv outside of tests.
func (cfg *Config) ApplyEnv(lookup func(string) (string, bool)) error {
	get := func(key string) (string, bool) {
		v, ok := lookup(key)
		v = strings.TrimSpace(v)
		return v, ok && v != ""
	}

	if v, ok := get("SIMGRAPH_MATRIX"); ok {
		cfg.MatrixPath = v
	}
	if v, ok := get("SIMGRAPH_GRAPHS_GLOB"); ok {
		cfg.GraphsGlob = v
	}
	if v, ok := get("SIMGRAPH_OUTPUT_DIR"); ok {
		cfg.OutputDir = v
	}
	if v, ok := get("SIMGRAPH_LOG_LEVEL"); ok {
		cfg.LogLevel = v
	}
	if v, ok := get("SIMGRAPH_METRICS_FILE"); ok {
		cfg.MetricsFile = v
	}
	if v, ok := get("SIMGRAPH_SEED"); ok {
		seed, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return fmt.Errorf("SIMGRAPH_SEED: %w", err)
		}
		cfg.Seed = seed
	}

	if v, ok := get("ARTIFACT_S3_ENDPOINT"); ok {
		cfg.Artifact.Enabled = true
		cfg.Artifact.Endpoint = v
	}
	if v, ok := get("ARTIFACT_S3_REGION"); ok {
		cfg.Artifact.Region = v
	}
	if v, ok := get("ARTIFACT_S3_ACCESS_KEY"); ok {
		cfg.Artifact.AccessKey = v
	}
	if v, ok := get("ARTIFACT_S3_SECRET_KEY"); ok {
		cfg.Artifact.SecretKey = v
	}
	if v, ok := get("ARTIFACT_S3_BUCKET"); ok {
		cfg.Artifact.Bucket = v
	}
	if v, ok := get("ARTIFACT_S3_USE_SSL"); ok {
		useSSL, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("ARTIFACT_S3_USE_SSL: %w", err)
		}
		cfg.Artifact.UseSSL = useSSL
	}

	return nil
}

func (cfg *Config) Validate() error {
	validate := validator.New(validator.WithRequiredStructEnabled())
	if err := validate.Struct(cfg); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}
