package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"file-wrangler/cmd/fw/cmd/archive"
	"file-wrangler/cmd/fw/cmd/copy"
	"file-wrangler/cmd/fw/cmd/delete"
	"file-wrangler/cmd/fw/cmd/export"
	"file-wrangler/cmd/fw/cmd/history"
	"file-wrangler/cmd/fw/cmd/list"
	"file-wrangler/cmd/fw/cmd/preview"
	"file-wrangler/cmd/fw/cmd/rename"
	"file-wrangler/cmd/fw/cmd/serve"
	"file-wrangler/cmd/fw/cmd/version"
	"file-wrangler/internal/config"
	"file-wrangler/internal/logging"
)

var Verbose bool

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "fw",
	Short: "A utility for filtering, previewing and bulk-managing files",
	Long: `A utility for filtering, previewing and bulk-managing files.
- List a directory with substring or regex name filters
- Preview file contents with a byte cap
- Run bulk delete/rename/copy/archive batches with per-item reports
- Every batch is recorded in a local history that can be exported.`,
	TraverseChildren: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := config.LogLevel("info")
		if Verbose {
			level = "debug"
		}
		logging.Init(logging.Config{
			Level:  level,
			Format: config.LogFormat("console"),
		})
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(list.Cmd)
	rootCmd.AddCommand(preview.Cmd)
	rootCmd.AddCommand(rename.Cmd)
	rootCmd.AddCommand(copy.Cmd)
	rootCmd.AddCommand(delete.Cmd)
	rootCmd.AddCommand(archive.Cmd)
	rootCmd.AddCommand(history.Cmd)
	rootCmd.AddCommand(export.Cmd)
	rootCmd.AddCommand(serve.Cmd)
	rootCmd.AddCommand(version.Cmd)

	rootCmd.PersistentFlags().BoolVarP(&Verbose, "verbose", "V", false, "verbose output")
}
