package main

import (
	"fmt"
	"os"

	"file-wrangler/cmd/fw/cmd"
	"file-wrangler/internal/config"
	"file-wrangler/internal/logging"
)

// @title File Wrangler API
// @version 1.0
// @description Bulk file management over HTTP: directory listing, filtering, preview, batch delete/rename/copy/archive with per-item reports.
// @host localhost:8080
// @BasePath /api/v1
func main() {
	if err := config.LoadEnv(); err != nil {
		fmt.Fprintf(os.Stderr, "configuration warning: %v\n", err)
	}
	defer logging.Sync()

	cmd.Execute()
}
