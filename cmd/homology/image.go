package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/homology/gridgraph"
	"github.com/katalvlaran/homology/internal/config"
	"github.com/katalvlaran/homology/internal/render"
	"github.com/katalvlaran/homology/pipeline"
)

func (a *app) imageCmd() *cobra.Command {
	d := config.DefaultConfig()
	cmd := &cobra.Command{
		Use:   "image <drawing.png>",
		Short: "Count the holes in a PNG drawing",
		Long: `Decodes a PNG drawing (dark pixels are ink), reduces it to one vertex per
block of block×block pixels that contains ink, and analyzes the resulting
point cloud. The radius is measured in blocks.

Example:
  homology image drawing.png --block 20 --radius 0.8`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := a.analyzeImage(cmd, args[0])
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
	cmd.Flags().IntP("block", "b", d.Analysis.Block, "block size in pixels")
	cmd.Flags().Float64P("radius", "r", d.Analysis.Radius, "ball radius in block units")
	cmd.Flags().Int("cutoff", d.Analysis.DarkCutoff, "luminance below which a pixel is ink (1-255)")
	cmd.Flags().Int("connectivity", d.Analysis.Connectivity, "stroke connectivity: 4 or 8")
	cmd.Flags().IntP("workers", "w", d.Analysis.Workers, "components analyzed concurrently")
	cmd.Flags().Bool("split", true, "report per-component hole counts")
	cmd.Flags().Int("max-cells", d.Analysis.MaxCells, "reject drawings with more pixels")
	addLimitFlags(cmd)

	return cmd
}

func (a *app) analyzeImage(cmd *cobra.Command, path string) (*pipeline.Result, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open drawing: %w", err)
	}
	defer f.Close()

	opts := gridgraph.DefaultGridOptions()
	opts.MaxCells = a.cfg.Analysis.MaxCells
	if a.cfg.Analysis.Connectivity == 4 {
		opts.Conn = gridgraph.Conn4
	}
	g, err := gridgraph.DecodePNG(f, uint8(a.cfg.Analysis.DarkCutoff), opts)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	ctx, cancel := a.analysisContext(cmd)
	defer cancel()
	start := time.Now()
	popts := append(a.limits(), pipeline.WithSplit(a.cfg.Analysis.Split), pipeline.WithWorkers(a.cfg.Analysis.Workers))
	res, err := pipeline.AnalyzeGrid(ctx, g, a.cfg.Analysis.Block, a.cfg.Analysis.Radius, popts...)
	if err != nil {
		return nil, fmt.Errorf("analyze: %w", err)
	}
	a.log.Info("analysis",
		zap.String("image", path),
		zap.Int("width", g.Width),
		zap.Int("height", g.Height),
		zap.Int("ink", g.InkCount()),
		zap.Int("strokes", res.Strokes),
		zap.Int("vertices", res.Vertices),
		zap.Stringer("betti", res.Betti),
		zap.Duration("duration", time.Since(start)),
	)

	return res, nil
}
