package history

import (
	"fmt"
	"log"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"file-wrangler/internal/app"
	"file-wrangler/internal/app/repository"
)

var (
	limit int
	kind  string
	id    string
)

func init() {
	Cmd.Flags().IntVarP(&limit, "limit", "l", 20, "number of operations to show")
	Cmd.Flags().StringVarP(&kind, "kind", "k", "", "only show operations of this kind: delete, rename, copy or archive")
	Cmd.Flags().StringVar(&id, "id", "", "show one operation with its per-entry results")
}

// Cmd represents the history command
var Cmd = &cobra.Command{
	Use:   "history",
	Short: "Show recorded bulk operations",
	Long: `Show recorded bulk operations

- Every executed batch is recorded with its per-entry outcomes
- --id prints a single operation in full`,
	Run: func(cmd *cobra.Command, args []string) {
		application, err := app.InitializeApp()
		if err != nil {
			log.Fatalf("initialization failed: %v", err)
		}
		defer application.Close()

		if id != "" {
			printOperation(application.History, id)
			return
		}

		operations, err := application.History.GetRecent(limit, 0, kind)
		if err != nil {
			log.Fatalf("history query failed: %v", err)
		}
		if len(operations) == 0 {
			fmt.Println("no operations recorded")
			return
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tKIND\tTOTAL\tOK\tFAILED\tSKIPPED\tSTARTED")
		for _, op := range operations {
			fmt.Fprintf(w, "%s\t%s\t%d\t%d\t%d\t%d\t%s\n",
				op.ID, op.Kind, op.Total, op.Succeeded, op.Failed, op.Skipped,
				op.StartedAt.Local().Format(time.RFC3339))
		}
		w.Flush()
	},
}

func printOperation(history repository.OperationDAO, id string) {
	op, items, err := history.GetByID(id)
	if err != nil {
		log.Fatalf("history query failed: %v", err)
	}
	if op == nil {
		log.Fatalf("operation %s not found", id)
	}

	fmt.Printf("%s %s\n", op.Kind, op.ID)
	fmt.Printf("root: %s\n", op.Root)
	if op.Destination != "" {
		fmt.Printf("destination: %s\n", op.Destination)
	}
	fmt.Printf("started: %s, took %s\n",
		op.StartedAt.Local().Format(time.RFC3339),
		op.FinishedAt.Sub(op.StartedAt).Round(time.Millisecond))
	fmt.Printf("%d succeeded, %d failed, %d skipped of %d\n\n",
		op.Succeeded, op.Failed, op.Skipped, op.Total)

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "STATUS\tPATH\tTARGET\tMESSAGE")
	for _, item := range items {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", item.Status, item.Path, item.Target, item.Message)
	}
	w.Flush()
}
