package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/homology/internal/config"
	"github.com/katalvlaran/homology/internal/render"
	"github.com/katalvlaran/homology/pipeline"
)

// addAnalysisFlags registers the flags shared by the point-cloud commands.
func addAnalysisFlags(cmd *cobra.Command, points *[]string) {
	d := config.DefaultConfig()
	cmd.Flags().StringArrayVarP(points, "point", "p", nil, "add a point as comma-separated coordinates, e.g. --point 0.5,1 (repeatable)")
	cmd.Flags().Float64P("radius", "r", d.Analysis.Radius, "ball radius; points at distance ≤ 2r are joined")
	cmd.Flags().IntP("workers", "w", d.Analysis.Workers, "components analyzed concurrently")
	addLimitFlags(cmd)
}

// addLimitFlags registers the size and time caps of an analysis.
func addLimitFlags(cmd *cobra.Command) {
	d := config.DefaultConfig()
	cmd.Flags().Int("max-vertices", d.Analysis.MaxVertices, "reject clouds with more distinct points")
	cmd.Flags().Int("max-simplices", d.Analysis.MaxSimplices, "abandon complexes with more simplices")
	cmd.Flags().Int("timeout", d.Analysis.TimeoutSec, "seconds allowed per analysis")
}

func (a *app) bettiCmd() *cobra.Command {
	var points []string
	cmd := &cobra.Command{
		Use:   "betti [points-file|-]",
		Short: "Compute the Betti numbers of a point cloud",
		Long: `Reads a point cloud from a YAML or JSON file (or stdin with '-') and/or
--point flags, builds its complex and prints the Betti numbers together with
the left-to-right hole count of each component.

Example:
  homology betti --point 0,0 --point 1,0 --point 1,1 --point 0,1 --radius 0.5`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := a.analyzePoints(cmd, args, points, a.cfg.Analysis.Split)
			if err != nil {
				return err
			}
			f, err := a.format()
			if err != nil {
				return err
			}

			return render.Write(cmd.OutOrStdout(), f, res)
		},
	}
	addAnalysisFlags(cmd, &points)
	cmd.Flags().Bool("split", true, "report per-component hole counts")

	return cmd
}

// analyzePoints reads the input of a point-cloud command and runs the
// analysis with the configured radius and workers.
func (a *app) analyzePoints(cmd *cobra.Command, args, points []string, split bool) (*pipeline.Result, error) {
	pts, fileRadius, err := readInput(args, points, cmd.InOrStdin())
	if err != nil {
		return nil, err
	}
	radius := a.cfg.Analysis.Radius
	if fileRadius != nil && !cmd.Flags().Changed("radius") {
		radius = *fileRadius
	}

	ctx, cancel := a.analysisContext(cmd)
	defer cancel()
	start := time.Now()
	opts := append(a.limits(), pipeline.WithSplit(split), pipeline.WithWorkers(a.cfg.Analysis.Workers))
	res, err := pipeline.AnalyzeContext(ctx, pts, radius, opts...)
	if err != nil {
		return nil, fmt.Errorf("analyze: %w", err)
	}
	a.log.Info("analysis",
		zap.Int("vertices", res.Vertices),
		zap.Float64("radius", radius),
		zap.Stringer("betti", res.Betti),
		zap.Duration("duration", time.Since(start)),
	)

	return res, nil
}
