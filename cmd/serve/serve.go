// Package serve runs the HTTP API
package serve

import (
	"fjacquet/expense-parse/cmd/root"
	"fjacquet/expense-parse/internal/server"

	"github.com/spf13/cobra"
)

var addr string

// Cmd represents the serve command
var Cmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API for parsing and transcription",
	Long: `Run an HTTP server exposing the extraction pipeline.

Endpoints:
  POST /parse_text   parse a JSON {"text"} body into an expense record
  POST /transcribe   transcribe an uploaded audio clip to text
  GET  /healthz      liveness probe`,
	Run: serveFunc,
}

func init() {
	Cmd.Flags().StringVarP(&addr, "addr", "a", "", "Listen address (overrides server.addr)")
}

func serveFunc(cmd *cobra.Command, args []string) {
	logger := root.GetLogrusAdapter()

	appContainer := root.GetContainer()
	if appContainer == nil {
		logger.Fatal("Container not initialized")
	}

	listenAddr := addr
	if listenAddr == "" {
		listenAddr = appContainer.GetConfig().Server.Addr
	}

	srv := server.NewServer(
		appContainer.GetExtractor(),
		appContainer.GetTranscriber(),
		appContainer.GetLogger(),
	)
	if err := srv.Start(listenAddr); err != nil {
		logger.Fatalf("Server stopped: %v", err)
	}
}
