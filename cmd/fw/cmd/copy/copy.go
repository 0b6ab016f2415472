package copy

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"file-wrangler/cmd/fw/cmd/cmdutil"
	"file-wrangler/internal/app"
	"file-wrangler/internal/app/bulk"
)

var (
	selection        cmdutil.SelectionFlags
	destination      string
	overwrite        bool
	renameDuplicates bool
	yes              bool
)

func init() {
	selection.Register(Cmd)
	Cmd.Flags().StringVarP(&destination, "dest", "d", "", "destination directory")
	Cmd.Flags().BoolVar(&overwrite, "overwrite", false, "replace same-named files in the destination")
	Cmd.Flags().BoolVar(&renameDuplicates, "rename-duplicates", false,
		"give same-named files a _1, _2, ... suffix instead of failing")
	Cmd.Flags().BoolVarP(&yes, "yes", "y", false, "skip the confirmation prompt")

	Cmd.MarkFlagRequired("dest")
}

// Cmd represents the copy command
var Cmd = &cobra.Command{
	Use:   "copy [dir]",
	Short: "Copy the selected entries into a destination directory",
	Long: `Copy the selected entries into a destination directory

- Same-named destination files fail the item unless --overwrite or
  --rename-duplicates is given
- A failing copy never leaves a partial file behind
- Directories are copied recursively`,
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

		// Overwriting copies destroy data and need the same confirmation as
		// a delete; plain copies run straight away.
		if overwrite {
			prompt := fmt.Sprintf("Copy %d entries to %s, overwriting existing files?", len(entries), destination)
			if !cmdutil.Confirm(prompt, yes) {
				fmt.Println("aborted")
				return
			}
		}

		application, err := app.InitializeApp()
		if err != nil {
			log.Fatalf("initialization failed: %v", err)
		}
		defer application.Close()

		finish := cmdutil.ObserveProgress(application.Executor, len(entries), "copying")
		report, err := application.Executor.Copy(cmd.Context(), root, entries, destination, bulk.CopyOptions{
			Overwrite:        overwrite,
			RenameDuplicates: renameDuplicates,
		})
		finish()
		if err != nil {
			log.Fatalf("copy failed: %v", err)
		}
		cmdutil.PrintReport(report)
	},
}
