// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/wdiam/config"
	"github.com/katalvlaran/wdiam/diameter"
	"github.com/katalvlaran/wdiam/edgelist"
	"github.com/katalvlaran/wdiam/service"
)

// app carries the process streams and the resolved configuration.
type app struct {
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer

	cfg *config.Config
	log hclog.Logger

	// Persistent flag values; applied only when set on the command line.
	configPath  string
	workers     int
	policy      string
	maxErrors   int
	maxVertices int
	directed    bool
	logLevel    string
	logJSON     bool
}

func newApp(stdin io.Reader, stdout, stderr io.Writer) *app {
	return &app{
		stdin:  stdin,
		stdout: stdout,
		stderr: stderr,
		cfg:    config.Default(),
		log:    hclog.New(&hclog.LoggerOptions{Name: "wdiam", Output: stderr}),
	}
}

// root assembles the command tree. Bare `wdiam` behaves like `wdiam run`.
func (a *app) root() *cobra.Command {
	run := a.runCmd()
	rootCmd := &cobra.Command{
		Use:               "wdiam [file]",
		Short:             "Weighted diameter of a graph via all-pairs shortest paths",
		Args:              cobra.MaximumNArgs(1),
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
		RunE:              run.RunE,
	}

	f := rootCmd.PersistentFlags()
	f.StringVar(&a.configPath, "config", "", "YAML configuration file")
	f.IntVar(&a.workers, "workers", 1, "goroutines per solver generation")
	f.StringVar(&a.policy, "policy", diameter.PolicyExclude.String(), "unreachable pairs: exclude|strict|sentinel")
	f.IntVar(&a.maxErrors, "max-errors", 10, "stop reading input after this many line errors")
	f.IntVar(&a.maxVertices, "max-vertices", edgelist.DefaultMaxVertices, "reject inputs declaring more vertices than this")
	f.BoolVar(&a.directed, "directed", false, "treat edges as directed")
	f.StringVar(&a.logLevel, "log-level", "info", "trace|debug|info|warn|error|off")
	f.BoolVar(&a.logJSON, "log-json", false, "log as JSON")

	rootCmd.SetIn(a.stdin)
	rootCmd.SetOut(a.stdout)
	rootCmd.SetErr(a.stderr)
	rootCmd.AddCommand(run, a.matrixCmd(), a.genCmd(), a.serveCmd())

	return rootCmd
}

// setup resolves configuration (flags win) and builds the root logger.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	flags := cmd.Flags()
	cfg, err := config.Load(a.configPath, func(c *config.Config) {
		if flags.Changed("workers") {
			c.Solver.Workers = a.workers
		}
		if flags.Changed("policy") {
			c.Diameter.Policy = a.policy
		}
		if flags.Changed("max-errors") {
			c.Loader.MaxErrors = a.maxErrors
		}
		if flags.Changed("max-vertices") {
			c.Loader.MaxVertices = a.maxVertices
		}
		if flags.Changed("directed") {
			c.Loader.Directed = a.directed
		}
		if flags.Changed("log-level") {
			c.Log.Level = a.logLevel
		}
		if flags.Changed("log-json") {
			c.Log.JSON = a.logJSON
		}
	})
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.log = cfg.Logger(a.stderr)
	a.log.Trace("configuration resolved", "workers", cfg.Solver.Workers, "policy", cfg.Diameter.Policy)

	return nil
}

// pipeline builds a Pipeline from the resolved configuration.
func (a *app) pipeline(cacheSize int) (*service.Pipeline, error) {
	return service.New(
		service.WithWorkers(a.cfg.Solver.Workers),
		service.WithPolicy(a.cfg.Policy()),
		service.WithMaxErrors(a.cfg.Loader.MaxErrors),
		service.WithMaxVertices(a.cfg.Loader.MaxVertices),
		service.WithDirected(a.cfg.Loader.Directed),
		service.WithCacheSize(cacheSize),
		service.WithLogger(a.log),
	)
}

// input opens args[0], or returns stdin when no file is given.
func (a *app) input(args []string) (io.ReadCloser, error) {
	if len(args) == 0 || args[0] == "-" {
		return io.NopCloser(a.stdin), nil
	}
	f, err := os.Open(args[0])
	if err != nil {
		return nil, fmt.Errorf("open input: %w", err)
	}

	return f, nil
}
