package serve

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"file-wrangler/cmd/fw/cmd/cmdutil"
	"file-wrangler/internal/api/server"
	"file-wrangler/internal/api/v1/services"
	"file-wrangler/internal/app"
	"file-wrangler/internal/app/archive"
	"file-wrangler/internal/app/bulk"
	"file-wrangler/internal/config"
	"file-wrangler/internal/logging"
)

var (
	host string
	port int
)

func init() {
	Cmd.Flags().StringVar(&host, "host", "", "address to bind; empty uses the configured host")
	Cmd.Flags().IntVar(&port, "port", 0, "port to listen on; 0 uses the configured port")
}

// Cmd represents the serve command
var Cmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API",
	Long: `Run the HTTP API

- Exposes listing, preview, rename preview, bulk operations, history and
  export as JSON endpoints under /api/v1
- Serves Prometheus metrics on /metrics and swagger UI on /swagger
- Shuts down gracefully on SIGINT or SIGTERM`,
	Run: func(cmd *cobra.Command, args []string) {
		settings := cmdutil.Settings()

		bindHost := config.ServerHost(settings.Server.Host)
		bindPort := config.ServerPort(settings.Server.Port)
		if cmd.Flags().Changed("host") {
			bindHost = host
		}
		if cmd.Flags().Changed("port") {
			bindPort = port
		}

		// The server logs as JSON unless configured otherwise; --verbose
		// still wins for the level.
		level := config.LogLevel(settings.Logging.Level)
		if verbose, _ := cmd.Root().PersistentFlags().GetBool("verbose"); verbose {
			level = "debug"
		}
		if err := logging.Init(logging.Config{Level: level, Format: config.LogFormat("json")}); err != nil {
			log.Fatalf("failed to initialize logging: %v", err)
		}
		defer logging.Sync()

		application, err := app.InitializeApp()
		if err != nil {
			log.Fatalf("initialization failed: %v", err)
		}
		defer application.Close()

		// Object storage is dialed lazily so the server runs without MinIO
		// until an archive batch actually needs it.
		store := func(ctx context.Context) (bulk.ObjectStore, error) {
			uploader, err := archive.NewUploader(ctx, config.GetStorageConfig())
			if err != nil {
				return nil, err
			}
			return uploader, nil
		}

		previewMaxBytes := int64(settings.Preview.MaxBytes)
		if override := config.PreviewMaxBytes(); override > 0 {
			previewMaxBytes = int64(override)
		}

		srv := server.NewServer(server.Config{
			Host:            bindHost,
			Port:            strconv.Itoa(bindPort),
			ReadTimeout:     15 * time.Second,
			WriteTimeout:    60 * time.Second,
			IdleTimeout:     60 * time.Second,
			Environment:     config.Environment(),
			PreviewMaxBytes: previewMaxBytes,
		}, application.History, application.Executor, services.StoreProvider(store), logging.L())

		if err := srv.Start(); err != nil {
			log.Fatalf("server failed to start: %v", err)
		}

		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit

		fmt.Println("shutting down...")
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			log.Fatalf("forced shutdown: %v", err)
		}
	},
}
