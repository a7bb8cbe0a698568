package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/supplynet/analysis"
	"github.com/katalvlaran/supplynet/config"
	"github.com/katalvlaran/supplynet/core"
	"github.com/katalvlaran/supplynet/dataset"
	"github.com/katalvlaran/supplynet/store/sqlite"
)

// app carries the state shared by all commands once the root pre-run has
// resolved configuration.
type app struct {
	configPath string
	dbPath     string
	logLevel   string
	logFormat  string

	cfg    *config.Config
	logger *slog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "supplynet",
		Short: "Analyze logistics networks",
		Long: `supplynet models suppliers, ports, warehouses and stores as a directed
graph and reports connectivity, centrality, resilience, bottlenecks and
route rankings.

Network sources (first match wins):
  --file PATH     YAML or JSON dataset
  --dataset NAME  dataset saved with 'supplynet import'
  (none)          built-in seven-node sample`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd.ErrOrStderr())
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.configPath, "config", "", "config file (default: search $SUPPLYNET_CONFIG, ./supplynet.yaml, XDG, /etc)")
	pf.StringVar(&a.dbPath, "db", "", "dataset repository path (overrides config)")
	pf.StringVar(&a.logLevel, "log-level", "", "log level: debug, info, warn, error (overrides config)")
	pf.StringVar(&a.logFormat, "log-format", "", "log format: text or json (overrides config)")

	root.AddCommand(
		newAnalyzeCmd(a),
		newRoutesCmd(a),
		newImportCmd(a),
		newExportCmd(a),
		newDatasetsCmd(a),
	)
	return root
}

// setup loads configuration, applies flag overrides and builds the logger.
// Logs go to w so stdout stays reserved for results.
func (a *app) setup(w io.Writer) error {
	var (
		cfg  *config.Config
		path string
		err  error
	)
	if a.configPath != "" {
		cfg, path, err = config.LoadFromPath(a.configPath)
	} else {
		cfg, path, err = config.Load()
	}
	if err != nil {
		return err
	}

	if a.dbPath != "" {
		cfg.Database.Path = a.dbPath
	}
	if a.logLevel != "" {
		cfg.Log.Level = a.logLevel
	}
	if a.logFormat != "" {
		cfg.Log.Format = a.logFormat
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	opts := &slog.HandlerOptions{Level: cfg.SlogLevel()}
	var h slog.Handler
	if strings.EqualFold(cfg.Log.Format, "json") {
		h = slog.NewJSONHandler(w, opts)
	} else {
		h = slog.NewTextHandler(w, opts)
	}

	a.cfg = cfg
	a.logger = slog.New(h)
	a.logger.Debug("configuration loaded",
		slog.String("path", path),
		slog.String("database", cfg.Database.Path),
	)
	return nil
}

func (a *app) service() *analysis.Service {
	return analysis.New(
		analysis.WithLogger(a.logger),
		analysis.WithAnalyzerOptions(a.cfg.AnalyzerOptions()...),
		analysis.WithOptimizerOptions(a.cfg.OptimizerOptions()...),
	)
}

func (a *app) openStore() (*sqlite.Repository, error) {
	repo, err := sqlite.New(a.cfg.Database.Path)
	if err != nil {
		return nil, fmt.Errorf("open dataset repository %s: %w", a.cfg.Database.Path, err)
	}
	return repo, nil
}

// source is the network selection shared by analyze and routes.
type source struct {
	file    string
	dataset string
}

func (s *source) bind(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&s.file, "file", "f", "", "load the network from a YAML or JSON file")
	cmd.Flags().StringVarP(&s.dataset, "dataset", "d", "", "load a dataset saved in the repository")
}

func (a *app) loadGraph(ctx context.Context, src source) (*core.Graph, error) {
	var (
		ds  *dataset.Dataset
		err error
	)
	switch {
	case src.file != "":
		ds, err = dataset.LoadFile(src.file)
	case src.dataset != "":
		repo, openErr := a.openStore()
		if openErr != nil {
			return nil, openErr
		}
		defer repo.Close()
		ds, err = repo.Load(ctx, src.dataset)
	default:
		ds, err = dataset.Sample()
	}
	if err != nil {
		return nil, err
	}

	g, err := dataset.Build(ds)
	if err != nil {
		return nil, err
	}
	a.logger.Debug("network loaded",
		slog.String("dataset", ds.Name),
		slog.Int("nodes", g.NodeCount()),
		slog.Int("edges", g.EdgeCount()),
	)
	return g, nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
