// SPDX-License-Identifier: MIT

package config

import (
	"fmt"
	"strconv"
	"time"

	"github.com/hashicorp/go-multierror"
)

// EnvPrefix prefixes every environment override.
const EnvPrefix = "WDIAM_"

// lookupFunc matches os.LookupEnv.
type lookupFunc func(key string) (string, bool)

// envBinding maps one variable onto one field.
type envBinding struct {
	key string
	set func(c *Config, raw string) error
}

var envBindings = []envBinding{
	{"SOLVER_WORKERS", func(c *Config, raw string) error { return setInt(&c.Solver.Workers, raw) }},
	{"DIAMETER_POLICY", func(c *Config, raw string) error { c.Diameter.Policy = raw; return nil }},
	{"LOADER_MAX_ERRORS", func(c *Config, raw string) error { return setInt(&c.Loader.MaxErrors, raw) }},
	{"LOADER_MAX_VERTICES", func(c *Config, raw string) error { return setInt(&c.Loader.MaxVertices, raw) }},
	{"LOADER_DIRECTED", func(c *Config, raw string) error { return setBool(&c.Loader.Directed, raw) }},
	{"LOG_LEVEL", func(c *Config, raw string) error { c.Log.Level = raw; return nil }},
	{"LOG_JSON", func(c *Config, raw string) error { return setBool(&c.Log.JSON, raw) }},
	{"SERVER_ADDR", func(c *Config, raw string) error { c.Server.Addr = raw; return nil }},
	{"SERVER_REQUEST_TIMEOUT", func(c *Config, raw string) error {
		d, err := time.ParseDuration(raw)
		if err != nil {
			return err
		}
		c.Server.RequestTimeout = d
		return nil
	}},
	{"SERVER_CACHE_SIZE", func(c *Config, raw string) error { return setInt(&c.Server.CacheSize, raw) }},
	{"SERVER_MAX_BODY_BYTES", func(c *Config, raw string) error {
		v, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return err
		}
		c.Server.MaxBodyBytes = v
		return nil
	}},
}

// applyEnv overlays every WDIAM_* variable found through lookup.
func applyEnv(c *Config, lookup lookupFunc) error {
	var merr *multierror.Error
	for _, b := range envBindings {
		raw, ok := lookup(EnvPrefix + b.key)
		if !ok {
			continue
		}
		if err := b.set(c, raw); err != nil {
			merr = multierror.Append(merr, fmt.Errorf("%w: %s%s=%q: %v", ErrEnvValue, EnvPrefix, b.key, raw, err))
		}
	}

	return merr.ErrorOrNil()
}

func setInt(dst *int, raw string) error {
	v, err := strconv.Atoi(raw)
	if err != nil {
		return err
	}
	*dst = v

	return nil
}

func setBool(dst *bool, raw string) error {
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return err
	}
	*dst = v

	return nil
}
