package cmd

import (
	"bytes"
	"fmt"

	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"

	"github.com/df07/go-pathtracer/pkg/bvh"
	"github.com/df07/go-pathtracer/pkg/scene"
)

// Build the scene BVH and print its structure.
func InspectBVH(ctx *cli.Context) error {
	setupLogging(ctx)

	split, err := bvh.ParseSplitMethod(ctx.String("split"))
	if err != nil {
		return err
	}
	opts := bvh.DefaultOptions()
	opts.SplitMethod = split

	sc := scene.NewCornellScene(scene.Options{BVH: opts})
	displayBVHStats(split, sc.Tree().Stats(), len(sc.Lights()), sc.EmitArea())
	return nil
}

func displayBVHStats(split bvh.SplitMethod, stats bvh.Stats, lights int, emitArea float64) {
	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Split", "Objects", "Nodes", "Leaves", "Max depth", "Avg leaf depth", "Root area"})
	table.Append([]string{
		split.String(),
		fmt.Sprintf("%d", stats.TotalObjects),
		fmt.Sprintf("%d", stats.TotalNodes),
		fmt.Sprintf("%d", stats.LeafNodes),
		fmt.Sprintf("%d", stats.MaxDepth),
		fmt.Sprintf("%.2f", stats.AvgLeafDepth),
		fmt.Sprintf("%.1f", stats.SurfaceArea),
	})
	table.SetFooter([]string{"", "", "", "", "", "LIGHTS", fmt.Sprintf("%d (%.1f)", lights, emitArea)})
	table.Render()
	logger.Noticef("bvh statistics\n%s", buf.String())
}
