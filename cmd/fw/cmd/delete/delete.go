package delete

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"file-wrangler/cmd/fw/cmd/cmdutil"
	"file-wrangler/internal/app"
)

var (
	selection cmdutil.SelectionFlags
	dryRun    bool
	yes       bool
)

func init() {
	selection.Register(Cmd)
	Cmd.Flags().BoolVar(&dryRun, "dry-run", false, "print what would be deleted without touching anything")
	Cmd.Flags().BoolVarP(&yes, "yes", "y", false, "skip the confirmation prompt")
}

// Cmd represents the delete command
var Cmd = &cobra.Command{
	Use:   "delete [dir]",
	Short: "Delete the selected entries",
	Long: `Delete the selected entries

- Files are unlinked, directories removed with their contents
- Entries are deleted independently; one failure never aborts the rest
- Asks for confirmation unless --yes is given`,
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

		for _, e := range entries {
			fmt.Println(e.FullPath)
		}
		if dryRun {
			fmt.Printf("%d entries would be deleted\n", len(entries))
			return
		}
		if !cmdutil.Confirm(fmt.Sprintf("Delete %d entries?", len(entries)), yes) {
			fmt.Println("aborted")
			return
		}

		application, err := app.InitializeApp()
		if err != nil {
			log.Fatalf("initialization failed: %v", err)
		}
		defer application.Close()

		finish := cmdutil.ObserveProgress(application.Executor, len(entries), "deleting")
		report, err := application.Executor.Delete(cmd.Context(), root, entries)
		finish()
		if err != nil {
			log.Fatalf("delete failed: %v", err)
		}
		cmdutil.PrintReport(report)
	},
}
