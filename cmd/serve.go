package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mj1618/winzorder/internal/server"
	"github.com/mj1618/winzorder/internal/version"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start an MCP server exposing window queries",
	Long: `Start a Model Context Protocol (MCP) server that exposes the window queries
as tools: list_windows, get_window, get_windows_above and
get_foreground_window.

Supported transports:
  stdio             Standard I/O (default, for MCP clients)
  streamable-http   Streamable HTTP transport (for remote agents)

Examples:
  winzorder serve
  winzorder serve --transport streamable-http --port 8080`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().String("transport", "stdio", "Transport: stdio, streamable-http")
	serveCmd.Flags().Int("port", 8080, "HTTP port for streamable-http transport")
}

func runServe(cmd *cobra.Command, args []string) error {
	transport := settings.Serve.Transport
	if cmd.Flags().Changed("transport") {
		transport, _ = cmd.Flags().GetString("transport")
	}
	port := settings.Serve.Port
	if cmd.Flags().Changed("port") {
		port, _ = cmd.Flags().GetInt("port")
	}

	source, err := windowSource()
	if err != nil {
		return fmt.Errorf("failed to create MCP server: %w", err)
	}
	srv := server.New(source, server.Options{
		Name:    "winzorder",
		Version: version.Version,
		Query:   queryOptions(),
		Logger:  logger,
	})
	return srv.Serve(transport, port)
}
