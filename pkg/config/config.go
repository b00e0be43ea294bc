// Package config loads and validates the kernel's YAML configuration.
package config

// Config is the umbrella configuration object returned by Initialize()
// and used throughout the application.
type Config struct {
	configDir string

	// Feature gates for the two orchestration surfaces
	Features *Features

	// Fallback orchestrator policy values (used when no policy row exists)
	PolicyDefaults *PolicyDefaults

	// Queue and worker pool configuration
	Queue *QueueConfig

	// Run interpreter hand-off configuration
	Interpreter *InterpreterConfig

	// Background retention loop configuration
	Retention *RetentionConfig
}

// InterpreterConfig configures the hand-off to the external run interpreter.
type InterpreterConfig struct {
	// GRPCAddr is the address of the interpreter gRPC service.
	GRPCAddr string `yaml:"grpc_addr"`

	// UseStub replaces the gRPC client with the in-process stub.
	// Intended for local development and tests only.
	UseStub bool `yaml:"use_stub"`
}

// ConfigDir returns the configuration directory path
func (c *Config) ConfigDir() string {
	return c.configDir
}
