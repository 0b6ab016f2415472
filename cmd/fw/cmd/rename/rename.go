package rename

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"file-wrangler/cmd/fw/cmd/cmdutil"
	"file-wrangler/internal/app"
	"file-wrangler/internal/app/model"
	"file-wrangler/internal/app/rename"
)

const planPreviewRows = 20

var (
	selection cmdutil.SelectionFlags
	find      string
	replace   string
	dryRun    bool
	yes       bool
)

func init() {
	selection.Register(Cmd)
	Cmd.Flags().StringVarP(&find, "find", "f", "", "text to find in each entry name")
	Cmd.Flags().StringVar(&replace, "replace", "", "replacement text; may reference capture groups with --regex")
	Cmd.Flags().BoolVar(&dryRun, "dry-run", false, "print the rename plan without executing it")
	Cmd.Flags().BoolVarP(&yes, "yes", "y", false, "skip the confirmation prompt")

	Cmd.MarkFlagRequired("find")
}

// Cmd represents the rename command
var Cmd = &cobra.Command{
	Use:   "rename [dir]",
	Short: "Bulk-rename the selected entries by find and replace",
	Long: `Bulk-rename the selected entries by find and replace

- Replacement applies to entry names only, never to their directories
- --regex switches both --pattern and --find to regular expressions
- The plan is previewed first; entries whose new name clashes with
  another target or an existing file are skipped, never overwritten`,
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

		plan, err := rename.BuildPlan(entries, model.RenameSpec{
			Find:     find,
			Replace:  replace,
			UseRegex: selection.UseRegex,
		})
		if err != nil {
			log.Fatalf("rename plan failed: %v", err)
		}

		printPlan(plan)
		if plan.Summary.OK == 0 {
			fmt.Println("nothing to rename")
			return
		}
		if dryRun {
			return
		}
		if !cmdutil.Confirm(fmt.Sprintf("Rename %d entries?", plan.Summary.OK), yes) {
			fmt.Println("aborted")
			return
		}

		application, err := app.InitializeApp()
		if err != nil {
			log.Fatalf("initialization failed: %v", err)
		}
		defer application.Close()

		finish := cmdutil.ObserveProgress(application.Executor, len(plan.Items), "renaming")
		report, err := application.Executor.Rename(cmd.Context(), root, plan)
		finish()
		if err != nil {
			log.Fatalf("rename failed: %v", err)
		}
		cmdutil.PrintReport(report)
	},
}

func printPlan(plan *rename.Plan) {
	for i, item := range plan.Items {
		if i == planPreviewRows {
			fmt.Printf("... and %d more\n", len(plan.Items)-planPreviewRows)
			break
		}
		switch item.Status {
		case rename.StatusOK:
			fmt.Printf("%s -> %s\n", item.Entry.Name, item.NewName)
		case rename.StatusUnchanged:
			fmt.Printf("%s (unchanged)\n", item.Entry.Name)
		default:
			fmt.Printf("%s -> %s (%s: %s)\n", item.Entry.Name, item.NewName, item.Status, item.Reason)
		}
	}
	fmt.Printf("plan: %d ok, %d unchanged, %d conflicts, %d invalid\n",
		plan.Summary.OK, plan.Summary.Unchanged, plan.Summary.Conflicts, plan.Summary.Invalid)
}
