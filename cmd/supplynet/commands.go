package main

import (
	"errors"
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/supplynet/analysis"
	"github.com/katalvlaran/supplynet/analyzer"
	"github.com/katalvlaran/supplynet/dataset"
	"github.com/katalvlaran/supplynet/optimizer"
	"github.com/katalvlaran/supplynet/store"
)

func newAnalyzeCmd(a *app) *cobra.Command {
	var (
		src      source
		critical int
		strategy string
	)
	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Report topology, centrality, resilience and bottlenecks",
		Example: `  supplynet analyze
  supplynet analyze --file network.yaml --strategy global --critical 5`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Flags().Changed("critical") {
				a.cfg.Analysis.CriticalNodeCount = critical
			}
			if strategy != "" {
				a.cfg.Analysis.ResilienceStrategy = analyzer.Strategy(strategy)
			}
			if err := a.cfg.Validate(); err != nil {
				return err
			}

			g, err := a.loadGraph(cmd.Context(), src)
			if err != nil {
				return err
			}
			rep, err := a.service().AnalyzeNetwork(cmd.Context(), g)
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), rep)
		},
	}
	src.bind(cmd)
	cmd.Flags().IntVar(&critical, "critical", 0, "number of critical nodes to report")
	cmd.Flags().StringVar(&strategy, "strategy", "", "resilience strategy: reference_pair or global")
	return cmd
}

func newRoutesCmd(a *app) *cobra.Command {
	var (
		src      source
		req      analysis.RouteRequest
		topK     int
		distance float64
		cost     float64
		duration float64
		risk     float64
	)
	cmd := &cobra.Command{
		Use:   "routes",
		Short: "Find optimal paths between two nodes, or rank all routes",
		Long: `With both --from and --to, reports the shortest-distance, lowest-cost and
fastest path between the two nodes. Otherwise every route is scored by a
weighted composite of distance, cost, duration and risk and the best are
listed.`,
		Example: `  supplynet routes --from supplier_asia_1 --to store_west_1
  supplynet routes --top 3 --w-risk 0.6`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Flags().Changed("top") {
				a.cfg.Routing.TopK = topK
			}
			custom := optimizer.DefaultWeights()
			if a.cfg.Routing.Weights != nil {
				custom = *a.cfg.Routing.Weights
			}
			for _, f := range []struct {
				flag string
				src  float64
				dst  *float64
			}{
				{"w-distance", distance, &custom.Distance},
				{"w-cost", cost, &custom.Cost},
				{"w-duration", duration, &custom.Duration},
				{"w-risk", risk, &custom.Risk},
			} {
				if cmd.Flags().Changed(f.flag) {
					*f.dst = f.src
				}
			}
			a.cfg.Routing.Weights = &custom
			if err := a.cfg.Validate(); err != nil {
				return err
			}

			g, err := a.loadGraph(cmd.Context(), src)
			if err != nil {
				return err
			}
			res, err := a.service().FindOptimalRoutes(cmd.Context(), g, req)
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), res)
		},
	}
	src.bind(cmd)
	d := optimizer.DefaultWeights()
	cmd.Flags().StringVar(&req.Source, "from", "", "source node ID")
	cmd.Flags().StringVar(&req.Target, "to", "", "target node ID")
	cmd.Flags().IntVar(&topK, "top", 0, "number of ranked routes in global mode")
	cmd.Flags().Float64Var(&distance, "w-distance", d.Distance, "composite score weight of distance")
	cmd.Flags().Float64Var(&cost, "w-cost", d.Cost, "composite score weight of cost")
	cmd.Flags().Float64Var(&duration, "w-duration", d.Duration, "composite score weight of duration")
	cmd.Flags().Float64Var(&risk, "w-risk", d.Risk, "composite score weight of risk")
	return cmd
}

func newImportCmd(a *app) *cobra.Command {
	var name string
	cmd := &cobra.Command{
		Use:   "import FILE",
		Short: "Validate a dataset file and save it in the repository",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ds, err := dataset.LoadFile(args[0])
			if err != nil {
				return err
			}
			if name != "" {
				ds.Name = name
			}
			// reject graph-level errors before anything is stored
			if _, err := dataset.Build(ds); err != nil {
				return err
			}

			repo, err := a.openStore()
			if err != nil {
				return err
			}
			defer repo.Close()
			if err := repo.Save(cmd.Context(), ds); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "imported %q: %d nodes, %d routes\n", ds.Name, len(ds.Nodes), len(ds.Routes))
			return nil
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "dataset name (default: file name without extension)")
	return cmd
}

func newExportCmd(a *app) *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "export NAME [FILE]",
		Short: "Write a stored dataset to a file or stdout",
		Long: `Writes the named dataset. With FILE the format follows its extension;
otherwise the document goes to stdout in --format. The name "sample"
exports the built-in network when no stored dataset carries that name.`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			repo, err := a.openStore()
			if err != nil {
				return err
			}
			defer repo.Close()

			ds, err := repo.Load(cmd.Context(), args[0])
			if errors.Is(err, store.ErrDatasetNotFound) && args[0] == "sample" {
				ds, err = dataset.Sample()
			}
			if err != nil {
				return err
			}

			if len(args) == 2 {
				return dataset.SaveFile(args[1], ds)
			}
			return dataset.Encode(cmd.OutOrStdout(), ds, dataset.Format(format))
		},
	}
	cmd.Flags().StringVar(&format, "format", string(dataset.FormatYAML), "stdout format: yaml or json")
	return cmd
}

func newDatasetsCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "datasets",
		Short: "List datasets saved in the repository",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			repo, err := a.openStore()
			if err != nil {
				return err
			}
			defer repo.Close()

			list, err := repo.List(cmd.Context())
			if err != nil {
				return err
			}
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "NAME\tNODES\tROUTES\tUPDATED")
			for _, s := range list {
				fmt.Fprintf(tw, "%s\t%d\t%d\t%s\n", s.Name, s.Nodes, s.Routes, s.UpdatedAt.Format(time.RFC3339))
			}
			return tw.Flush()
		},
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "delete NAME",
		Short: "Delete a saved dataset",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			repo, err := a.openStore()
			if err != nil {
				return err
			}
			defer repo.Close()
			if err := repo.Delete(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "deleted %q\n", args[0])
			return nil
		},
	})
	return cmd
}
