package config

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"dario.cat/mergo"
	"gopkg.in/yaml.v3"
)

// arcYAMLConfig represents the complete arc.yaml file structure.
type arcYAMLConfig struct {
	Features       *Features          `yaml:"features"`
	PolicyDefaults *PolicyDefaults    `yaml:"policy_defaults"`
	Queue          *QueueConfig       `yaml:"queue"`
	Interpreter    *InterpreterConfig `yaml:"interpreter"`
	Retention      *RetentionConfig   `yaml:"retention"`
}

// Initialize loads configuration from configDir/arc.yaml, expands
// environment variables, and merges the result over built-in defaults.
// A missing config file is not an error; defaults apply.
func Initialize(ctx context.Context, configDir string) (*Config, error) {
	start := time.Now()

	cfg := &Config{
		configDir:      configDir,
		Features:       DefaultFeatures(),
		PolicyDefaults: DefaultPolicyDefaults(),
		Queue:          DefaultQueueConfig(),
		Interpreter:    &InterpreterConfig{GRPCAddr: "localhost:50051"},
		Retention:      DefaultRetentionConfig(),
	}

	path := filepath.Join(configDir, "arc.yaml")
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			slog.Info("No arc.yaml found, using built-in defaults", "path", path)
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	data = ExpandEnv(data)

	var yamlCfg arcYAMLConfig
	if err := yaml.Unmarshal(data, &yamlCfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	// File values win over defaults; unset file fields keep the default.
	if yamlCfg.Features != nil {
		if err := mergo.Merge(cfg.Features, yamlCfg.Features, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("failed to merge feature config: %w", err)
		}
	}
	if yamlCfg.PolicyDefaults != nil {
		if err := mergo.Merge(cfg.PolicyDefaults, yamlCfg.PolicyDefaults, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("failed to merge policy defaults: %w", err)
		}
	}
	if yamlCfg.Queue != nil {
		if err := mergo.Merge(cfg.Queue, yamlCfg.Queue, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("failed to merge queue config: %w", err)
		}
	}
	if yamlCfg.Interpreter != nil {
		if err := mergo.Merge(cfg.Interpreter, yamlCfg.Interpreter, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("failed to merge interpreter config: %w", err)
		}
	}
	if yamlCfg.Retention != nil {
		if err := mergo.Merge(cfg.Retention, yamlCfg.Retention, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("failed to merge retention config: %w", err)
		}
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	slog.Info("Configuration initialized",
		"config_dir", configDir,
		"graph_spec_v2", cfg.Features.GraphSpecV2.Enabled,
		"runtime_orchestration", cfg.Features.RuntimeOrchestration.Enabled,
		"duration", time.Since(start))

	return cfg, nil
}

func (c *Config) validate() error {
	if c.PolicyDefaults.MaxDepth < 1 {
		return fmt.Errorf("policy_defaults.max_depth must be >= 1, got %d", c.PolicyDefaults.MaxDepth)
	}
	if c.PolicyDefaults.MaxFanout < 1 {
		return fmt.Errorf("policy_defaults.max_fanout must be >= 1, got %d", c.PolicyDefaults.MaxFanout)
	}
	if c.PolicyDefaults.MaxChildrenTotal < 1 {
		return fmt.Errorf("policy_defaults.max_children_total must be >= 1, got %d", c.PolicyDefaults.MaxChildrenTotal)
	}
	if c.Queue.WorkerCount < 1 {
		return fmt.Errorf("queue.worker_count must be >= 1, got %d", c.Queue.WorkerCount)
	}
	return nil
}
