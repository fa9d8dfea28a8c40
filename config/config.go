// SPDX-License-Identifier: MIT

package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/hashicorp/go-multierror"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/wdiam/diameter"
)

// Sentinel errors.
var (
	ErrInvalid  = errors.New("config: invalid configuration")
	ErrReadFile = errors.New("config: cannot read file")
	ErrEnvValue = errors.New("config: bad environment value")
)

// DotEnvFile is loaded from the working directory when present.
const DotEnvFile = ".env"

// Config is the complete runtime configuration.
type Config struct {
	Solver   SolverConfig   `yaml:"solver"`
	Diameter DiameterConfig `yaml:"diameter"`
	Loader   LoaderConfig   `yaml:"loader"`
	Log      LogConfig      `yaml:"log"`
	Server   ServerConfig   `yaml:"server"`
}

// SolverConfig tunes the all-pairs solver.
type SolverConfig struct {
	Workers int `yaml:"workers" validate:"min=1,max=1024"`
}

// DiameterConfig selects the disconnected-graph policy.
type DiameterConfig struct {
	Policy string `yaml:"policy" validate:"oneof=exclude strict sentinel"`
}

// LoaderConfig tunes the edge-list reader.
type LoaderConfig struct {
	MaxErrors   int  `yaml:"max_errors" validate:"min=1"`
	MaxVertices int  `yaml:"max_vertices" validate:"min=1,max=4096"`
	Directed    bool `yaml:"directed"`
}

// LogConfig configures the root hclog logger.
type LogConfig struct {
	Level string `yaml:"level" validate:"oneof=trace debug info warn error off"`
	JSON  bool   `yaml:"json"`
}

// ServerConfig configures `wdiam serve`.
type ServerConfig struct {
	Addr           string        `yaml:"addr" validate:"required,hostname_port"`
	RequestTimeout time.Duration `yaml:"request_timeout" validate:"min=1ms"`
	CacheSize      int           `yaml:"cache_size" validate:"min=0"`
	MaxBodyBytes   int64         `yaml:"max_body_bytes" validate:"min=1"`
}

// Override mutates a loaded configuration before validation (CLI flags).
type Override func(*Config)

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Solver:   SolverConfig{Workers: 1},
		Diameter: DiameterConfig{Policy: diameter.PolicyExclude.String()},
		Loader:   LoaderConfig{MaxErrors: 10, MaxVertices: 2048},
		Log:      LogConfig{Level: "info"},
		Server: ServerConfig{
			Addr:           "127.0.0.1:8080",
			RequestTimeout: 30 * time.Second,
			CacheSize:      128,
			MaxBodyBytes:   8 << 20,
		},
	}
}

// Load resolves the configuration. An empty path skips the YAML layer; a
// missing .env is not an error.
func Load(path string, overrides ...Override) (*Config, error) {
	cfg := Default()

	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrReadFile, err)
		}
		if err = yaml.Unmarshal(raw, cfg); err != nil {
			return nil, fmt.Errorf("config: parse %s: %w", path, err)
		}
	}

	if err := godotenv.Load(DotEnvFile); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("config: load %s: %w", DotEnvFile, err)
	}
	if err := applyEnv(cfg, os.LookupEnv); err != nil {
		return nil, err
	}

	for _, o := range overrides {
		if o != nil {
			o(cfg)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

var validate = validator.New()

// Validate checks every field constraint and reports all violations.
func (c *Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}

	var merr *multierror.Error
	for _, fe := range verrs {
		merr = multierror.Append(merr, fmt.Errorf("%w: %s fails %q (value %v)", ErrInvalid, fe.Namespace(), fe.Tag(), fe.Value()))
	}

	return merr.ErrorOrNil()
}

// Policy returns the parsed diameter policy.
func (c *Config) Policy() diameter.Policy {
	// Validate guarantees a known name.
	p, _ := diameter.ParsePolicy(c.Diameter.Policy)

	return p
}
