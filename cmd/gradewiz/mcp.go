package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/techangelx/gradewiz/internal/mcpserver"
)

var mcpFlags struct {
	http string
}

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Serve the calculate-grade tool over MCP",
	Long: `Serve the calculate-grade tool to MCP clients.

Uses stdio by default. Pass --http to serve streamable HTTP on the given
address instead, e.g. --http 127.0.0.1:8765.`,
	Args: cobra.NoArgs,
	RunE: runMCP,
}

func init() {
	mcpCmd.Flags().StringVar(&mcpFlags.http, "http", "", "Serve streamable HTTP on this address instead of stdio")
}

func runMCP(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	srv := mcpserver.New(cfg)
	if mcpFlags.http == "" {
		return srv.ServeStdio()
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if _, err := srv.Start(ctx, mcpFlags.http); err != nil {
		return err
	}
	defer func() { _ = srv.Stop() }()

	fmt.Fprintf(cmd.ErrOrStderr(), "Serving MCP on %s\n", srv.URL())
	<-ctx.Done()
	return nil
}
