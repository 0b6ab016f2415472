package archive

import (
	"context"
	"fmt"
	"log"
	"path"

	"github.com/spf13/cobra"

	"file-wrangler/cmd/fw/cmd/cmdutil"
	"file-wrangler/internal/app"
	"file-wrangler/internal/app/archive"
	"file-wrangler/internal/app/bulk"
	"file-wrangler/internal/config"
)

var (
	selection cmdutil.SelectionFlags
	bucket    string
	prefix    string
)

func init() {
	selection.Register(Cmd)
	Cmd.Flags().StringVarP(&bucket, "bucket", "b", "", "bucket to upload into; empty uses the configured bucket")
	Cmd.Flags().StringVar(&prefix, "prefix", "", "object name prefix inside the bucket")
}

// Cmd represents the archive command
var Cmd = &cobra.Command{
	Use:   "archive [dir]",
	Short: "Upload the selected files to object storage",
	Long: `Upload the selected files to object storage

- Objects are named by their root-relative path, under --prefix when given
- Connection settings come from the MINIO_* environment variables
- Directories are skipped; archive with --recursive to capture their files`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		root := cmdutil.RootArg(args)

		entries, err := selection.Resolve(root)
		if err != nil {
			log.Fatalf("selection failed: %v", err)
		}
		if len(entries) == 0 {
			fmt.Println("nothing selected")
			return
		}

		cfg := config.GetStorageConfig()
		if bucket != "" {
			cfg.Bucket = bucket
		}

		store, err := archive.NewUploader(cmd.Context(), cfg)
		if err != nil {
			log.Fatalf("storage connection failed: %v", err)
		}

		application, err := app.InitializeApp()
		if err != nil {
			log.Fatalf("initialization failed: %v", err)
		}
		defer application.Close()

		finish := cmdutil.ObserveProgress(application.Executor, len(entries), "archiving")
		report, err := application.Executor.Archive(cmd.Context(), root, withPrefix(store, prefix), entries)
		finish()
		if err != nil {
			log.Fatalf("archive failed: %v", err)
		}
		cmdutil.PrintReport(report)
	},
}

// withPrefix namespaces all uploads under an object name prefix.
func withPrefix(store bulk.ObjectStore, prefix string) bulk.ObjectStore {
	if prefix == "" {
		return store
	}
	return prefixedStore{store: store, prefix: prefix}
}

type prefixedStore struct {
	store  bulk.ObjectStore
	prefix string
}

func (p prefixedStore) Upload(ctx context.Context, localPath, objectName string) error {
	return p.store.Upload(ctx, localPath, path.Join(p.prefix, objectName))
}
