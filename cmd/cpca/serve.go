package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/miajio/cpca/internal/server"
	"github.com/miajio/cpca/pkg/participle"
)

func serveCmd(a *app) *cobra.Command {
	var (
		addr string
		cut  bool
	)
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the extractor over HTTP",
		Long: `Serve the extractor over HTTP:

  POST /v1/transform  {"location": "...", "overrides": {...}, "strict": bool}
  GET  /v1/transform?location=...
  POST /v1/cut        {"text": "..."}   (with --cut)
  GET  /healthz
  GET  /metrics`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if addr == "" {
				addr = a.conf.Server.Addr
			}
			e, err := a.newExtractor()
			if err != nil {
				return err
			}
			opts := []server.Option{server.WithLogger(a.logger)}
			if cut {
				c, err := participle.New(e.Index(), participle.WithLogger(a.logger))
				if err != nil {
					return err
				}
				opts = append(opts, server.WithCutter(c))
			}

			gin.SetMode(gin.ReleaseMode)
			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return server.New(e, opts...).Run(ctx, addr)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "listen address, default from config (:8080)")
	cmd.Flags().BoolVar(&cut, "cut", false, "enable /v1/cut")
	return cmd
}
