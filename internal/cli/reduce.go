package cli

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/graphreduce/graphreduce/pkg/cache"
	"github.com/graphreduce/graphreduce/pkg/config"
	graphreduceerrors "github.com/graphreduce/graphreduce/pkg/errors"
	"github.com/graphreduce/graphreduce/pkg/graph"
	"github.com/graphreduce/graphreduce/pkg/reduce"
	"github.com/graphreduce/graphreduce/pkg/render/dot"
	"github.com/graphreduce/graphreduce/pkg/store"
)

// reduceCommand creates the "reduce" command.
func (c *CLI) reduceCommand() *cobra.Command {
	var (
		outputs      []string
		format       string
		out          string
		cacheBackend string
		storeBackend string
		runDir       string
	)

	cmd := &cobra.Command{
		Use:   "reduce <graph.json>",
		Short: "Collapse a directed multigraph down to its reduced DAG",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(outputs) == 0 {
				return fmt.Errorf("at least one --output is required")
			}

			raw, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("read %s: %w", args[0], err)
			}
			g, err := graph.ReadJSON(bytes.NewReader(raw))
			if err != nil {
				return fmt.Errorf("parse graph: %w", err)
			}

			nameIndex := make(map[string]graph.NodeIndex, g.NodeCount())
			for _, n := range g.AllNodes() {
				nameIndex[g.Data(n)] = n
			}
			starts := make([]graph.NodeIndex, 0, len(outputs))
			for _, name := range outputs {
				idx, ok := nameIndex[name]
				if !ok {
					return fmt.Errorf("output %q is not a node in the input graph", name)
				}
				starts = append(starts, idx)
			}

			cfg := c.loadConfig()
			if cacheBackend != "" {
				if cacheBackend == "none" {
					cacheBackend = "null"
				}
				cfg.Cache.Backend = cacheBackend
			}
			if storeBackend != "" {
				cfg.Store.Backend = storeBackend
			}

			ch, err := newCache(cfg.Cache)
			if err != nil {
				return fmt.Errorf("init cache: %w", err)
			}
			defer ch.Close()

			keyer := cache.NewDefaultKeyer()
			inputHash := cache.Hash(raw)
			key := keyer.ReduceKey(inputHash, cache.ReduceKeyOpts{StartNodes: outputs})

			cached := false
			var reduced *graph.Graph[string]
			ctx := cmd.Context()
			if data, hit, err := ch.Get(ctx, key); err == nil && hit {
				if reduced, err = graph.ReadJSON(bytes.NewReader(data)); err == nil {
					cached = true
				}
			}

			if reduced == nil {
				prog := newProgress(c.Logger)
				reduced, err = reduce.New[string](g, starts).Compute()
				if err != nil {
					return fmt.Errorf("reduce: %w", err)
				}
				prog.done(fmt.Sprintf("reduced %d nodes to %d", g.NodeCount(), reduced.NodeCount()))

				var buf bytes.Buffer
				if err := graph.WriteJSON(reduced, &buf); err == nil {
					_ = ch.Set(ctx, key, buf.Bytes(), time.Hour)
				}
			}

			if err := c.writeRun(ctx, cfg.Store, runDir, inputHash, outputs, g, reduced); err != nil {
				c.Logger.Warn("failed to persist run", "err", err)
			}

			printStats(reduced.NodeCount(), reduced.EdgeCount(), cached)
			return c.writeOutput(reduced, format, out)
		},
	}

	cmd.Flags().StringSliceVarP(&outputs, "output", "o", nil, "node name to retain as a reduction output (repeatable)")
	cmd.Flags().StringVarP(&format, "format", "f", "json", "output format: json, dot, or svg")
	cmd.Flags().StringVar(&out, "write", "", "write output to this path instead of stdout")
	cmd.Flags().StringVar(&cacheBackend, "cache", "", "cache backend: redis, file, or none (overrides --config)")
	cmd.Flags().StringVar(&storeBackend, "store", "", "run-history backend: file or mongo (overrides --config)")
	cmd.Flags().StringVar(&runDir, "run-dir", "", "directory for persisted run history (defaults to ~/.config/graphreduce/runs)")

	return cmd
}

func (c *CLI) writeOutput(g *graph.Graph[string], format, out string) error {
	if err := graphreduceerrors.ValidateOutputFormat(format); err != nil {
		return err
	}

	var data []byte
	switch format {
	case "json":
		var buf bytes.Buffer
		if err := graph.WriteJSON(g, &buf); err != nil {
			return err
		}
		data = buf.Bytes()
	case "dot":
		data = []byte(dot.ToDOT(g, dot.Options{}))
	case "svg":
		svg, err := dot.RenderSVG(dot.ToDOT(g, dot.Options{}))
		if err != nil {
			return fmt.Errorf("render svg: %w", err)
		}
		data = svg
	}

	if out == "" {
		fmt.Println(string(data))
		return nil
	}
	if err := os.WriteFile(out, data, 0644); err != nil {
		return err
	}
	printFile(out)
	return nil
}

func (c *CLI) writeRun(ctx context.Context, cfg config.StoreConfig, dir, inputHash string, outputs []string, input, reduced *graph.Graph[string]) error {
	st, err := newStore(cfg, dir)
	if err != nil {
		return err
	}
	defer st.Close()

	run := &store.Run{
		ID:               uuid.NewString(),
		InputHash:        inputHash,
		StartNodes:       outputs,
		NodeCount:        input.NodeCount(),
		EdgeCount:        input.EdgeCount(),
		ReducedNodeCount: reduced.NodeCount(),
		ReducedEdgeCount: reduced.EdgeCount(),
		CreatedAt:        time.Now(),
	}
	return st.Set(ctx, run)
}
