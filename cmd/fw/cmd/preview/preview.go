package preview

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"file-wrangler/cmd/fw/cmd/cmdutil"
	"file-wrangler/internal/app/preview"
)

var maxBytes int64

func init() {
	Cmd.Flags().Int64VarP(&maxBytes, "max-bytes", "m", 0,
		"maximum bytes to read; 0 uses the configured preview cap")
}

// Cmd represents the preview command
var Cmd = &cobra.Command{
	Use:   "preview <file>",
	Short: "Print the beginning of a file",
	Long: `Print the beginning of a file

- Reads at most the configured byte cap and marks truncated output
- Non-text files are detected and reported instead of dumped`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		limit := maxBytes
		if limit <= 0 {
			limit = int64(cmdutil.Settings().Preview.MaxBytes)
		}

		content, err := preview.Read(args[0], limit)
		if err != nil {
			log.Fatalf("preview failed: %v", err)
		}

		if content.IsBinary {
			fmt.Println("cannot display binary content")
			return
		}

		fmt.Print(content.Content)
		if content.Truncated {
			fmt.Printf("\n[truncated: showing %d of %d bytes]\n", limit, content.Size)
		}
	},
}
