package cli

import (
	"context"
	"fmt"
	"os"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/klintqinami/sese-regions/pkg/cache"
	"github.com/klintqinami/sese-regions/pkg/graphio"
	"github.com/klintqinami/sese-regions/pkg/render/dot"
	"github.com/klintqinami/sese-regions/pkg/sese"
)

// renderTTL bounds how long cached CLI render artifacts live.
const renderTTL = 7 * 24 * time.Hour

var (
	vizKinds   = []string{"cfg", "pst", "regions"}
	vizFormats = []string{"dot", "svg", "png"}
)

// vizCommand creates the viz command for rendering visualizations.
func (c *CLI) vizCommand() *cobra.Command {
	var (
		kind     string
		format   string
		output   string
		detailed bool
		noCache  bool
	)

	cmd := &cobra.Command{
		Use:   "viz <graph.(json|toml)>",
		Short: "Render a graph analysis as a visualization",
		Long: `Render a control-flow graph analysis as a Graphviz visualization.

Three kinds are available: the augmented control-flow graph (cfg), the
program structure tree (pst), and the graph with regions drawn as nested
clusters (regions, the default). DOT output goes to stdout unless --output
is set; SVG and PNG require an output file.

Rendered artifacts are cached locally for faster subsequent runs.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !slices.Contains(vizKinds, kind) {
				return fmt.Errorf("unknown kind %q (valid: %s)", kind, strings.Join(vizKinds, ", "))
			}
			if !slices.Contains(vizFormats, format) {
				return fmt.Errorf("unknown format %q (valid: %s)", format, strings.Join(vizFormats, ", "))
			}
			return c.runViz(cmd.Context(), args[0], kind, format, output, detailed, noCache)
		},
	}

	cmd.Flags().StringVarP(&kind, "kind", "k", "regions", "visualization kind: cfg, pst, regions")
	cmd.Flags().StringVarP(&format, "format", "f", "dot", "output format: dot, svg, png")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default stdout for dot)")
	cmd.Flags().BoolVar(&detailed, "detailed", false, "include DFS numbers and class ids in labels")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")
	return cmd
}

func (c *CLI) runViz(ctx context.Context, input, kind, format, output string, detailed, noCache bool) error {
	g, err := graphio.ReadGraphFile(input)
	if err != nil {
		return fmt.Errorf("load graph %s: %w", input, err)
	}
	res, err := sese.Analyze(g)
	if err != nil {
		return fmt.Errorf("analyze: %w", err)
	}

	var source string
	opts := dot.Options{Detailed: detailed}
	switch kind {
	case "cfg":
		source = dot.CFG(res, opts)
	case "pst":
		source = dot.PST(res, opts)
	case "regions":
		source = dot.Regions(res, opts)
	}

	if format == "dot" {
		return writeArtifact(output, []byte(source))
	}
	if output == "" {
		return fmt.Errorf("%s output requires --output", format)
	}

	store := newCache(noCache)
	defer store.Close()
	raw, err := graphio.MarshalGraph(g)
	if err != nil {
		return err
	}
	key := cache.Key("viz", cache.Sum(raw), kind, format, strconv.FormatBool(detailed))
	if data, ok, err := store.Get(ctx, key); err == nil && ok {
		c.Logger.Debug("render cache hit", "key", key)
		return writeArtifact(output, data)
	}

	spinner := newSpinnerWithContext(ctx, fmt.Sprintf("Rendering %s...", kind))
	spinner.Start()

	var data []byte
	switch format {
	case "svg":
		data, err = dot.RenderSVG(ctx, source)
	case "png":
		data, err = dot.RenderPNG(ctx, source)
	}
	if err != nil {
		spinner.StopWithError("Rendering failed")
		return fmt.Errorf("render %s: %w", kind, err)
	}
	spinner.Stop()

	if err := store.Set(ctx, key, data, renderTTL); err != nil {
		c.Logger.Warn("cache render", "err", err)
	}
	return writeArtifact(output, data)
}

func writeArtifact(output string, data []byte) error {
	if output == "" {
		_, err := os.Stdout.Write(data)
		return err
	}
	if err := os.WriteFile(output, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", output, err)
	}
	printSuccess("Wrote %s", output)
	return nil
}
