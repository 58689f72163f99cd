// htmlcheck-web serves the beginning of a local html file
package main

import (
	"flag"
	"log/slog"
	"net/http"
	"os"

	"github.com/foomo/htmlcheck/server"
)

func main() {
	flagFile := flag.String("file", server.DefaultFile, "file to serve")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	port := server.Port()
	logger.Info("Listening on " + port)
	err := http.ListenAndServe(":"+port, server.NewServer(*flagFile, logger))
	if err != nil {
		logger.Error("server stopped", "error", err)
		os.Exit(1)
	}
}
