package export

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"file-wrangler/internal/app"
	"file-wrangler/internal/app/export"
)

var (
	format         string
	kind           string
	limit          int
	outputFilePath string
)

func init() {
	Cmd.Flags().StringVarP(&format, "format", "f", "csv", "export format: csv, json or xlsx")
	Cmd.Flags().StringVarP(&kind, "kind", "k", "", "only export operations of this kind")
	Cmd.Flags().IntVarP(&limit, "limit", "l", 0, "maximum operations to export; 0 uses the default cap")
	Cmd.Flags().StringVarP(&outputFilePath, "output", "o", "", "file to write")

	Cmd.MarkFlagRequired("output")
}

// Cmd represents the export command
var Cmd = &cobra.Command{
	Use:   "export",
	Short: "Export the operation history to a file",
	Long: `Export the operation history to a file

- Writes the recorded operations as csv, json or xlsx, newest first`,
	Run: func(cmd *cobra.Command, args []string) {
		application, err := app.InitializeApp()
		if err != nil {
			log.Fatalf("initialization failed: %v", err)
		}
		defer application.Close()

		out, err := os.Create(outputFilePath)
		if err != nil {
			log.Fatalf("failed to create %s: %v", outputFilePath, err)
		}
		defer out.Close()

		service := export.NewService(application.History)
		err = service.Export(context.Background(), export.Request{
			Format: export.Format(format),
			Kind:   kind,
			Limit:  limit,
		}, out)
		if err != nil {
			os.Remove(outputFilePath)
			log.Fatalf("export failed: %v", err)
		}

		fmt.Printf("export finished, exported file path: %v\n", outputFilePath)
	},
}
