package cli

import (
	"fmt"
	"net/http"

	"github.com/spf13/cobra"

	"github.com/graphreduce/graphreduce/pkg/api"
)

// serveCommand creates the "serve" command: runs the HTTP API server.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		addr         string
		cacheBackend string
		storeBackend string
		runDir       string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API server",
		RunE: func(cmd *cobra.Command, args []string) error {
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

			st, err := newStore(cfg.Store, runDir)
			if err != nil {
				return fmt.Errorf("init run store: %w", err)
			}
			defer st.Close()

			srv := api.New(ch, st, c.Logger)
			c.Logger.Info("listening", "addr", addr)
			return http.ListenAndServe(addr, srv.Router())
		},
	}

	cmd.Flags().StringVar(&addr, "addr", ":8080", "address to listen on")
	cmd.Flags().StringVar(&cacheBackend, "cache", "", "cache backend: redis, file, or none (overrides --config)")
	cmd.Flags().StringVar(&storeBackend, "store", "", "run-history backend: file or mongo (overrides --config)")
	cmd.Flags().StringVar(&runDir, "run-dir", "", "directory for persisted run history (defaults to ~/.config/graphreduce/runs)")

	return cmd
}
