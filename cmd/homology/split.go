package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/homology/internal/render"
	"github.com/katalvlaran/homology/pipeline"
)

func (a *app) splitCmd() *cobra.Command {
	var points []string
	cmd := &cobra.Command{
		Use:   "split [points-file|-]",
		Short: "List the connected components of a point cloud, left to right",
		Long: `Splits the complex of a point cloud into its connected components, ordered
by their leftmost vertex, and prints each component's vertices and Betti
numbers.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := a.analyzePoints(cmd, args, points, true)
			if err != nil {
				return err
			}
			f, err := a.format()
			if err != nil {
				return err
			}
			if f == render.FormatJSON {
				return render.JSON(cmd.OutOrStdout(), res)
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), componentTable(res))

			return err
		},
	}
	addAnalysisFlags(cmd, &points)

	return cmd
}

// componentTable renders one line per component:
//
//	component 0: leftmost=0 vertices=4 betti=[1 1] points=(0, 0) (1, 0) ...
func componentTable(res *pipeline.Result) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%d component(s), betti=%s\n", len(res.Components), res.Betti)
	for _, c := range res.Components {
		pts := make([]string, len(c.Vertices))
		for i, p := range c.Vertices {
			pts[i] = p.String()
		}
		fmt.Fprintf(&sb, "component %d: leftmost=%g vertices=%d betti=%s points=%s\n",
			c.Index, c.Leftmost, len(c.Vertices), c.Betti, strings.Join(pts, " "))
	}

	return sb.String()
}
