// Package cmdutil holds the selection flags and output helpers shared by
// the fw subcommands.
package cmdutil

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"file-wrangler/internal/app/bulk"
	appconfig "file-wrangler/internal/app/config"
	"file-wrangler/internal/app/filter"
	"file-wrangler/internal/app/lister"
	"file-wrangler/internal/app/model"
	"file-wrangler/internal/logging"
)

var (
	settingsOnce sync.Once
	settings     *appconfig.Settings
)

// Settings loads the YAML settings file once per process, falling back to
// built-in defaults when the file cannot be read.
func Settings() *appconfig.Settings {
	settingsOnce.Do(func() {
		manager := appconfig.NewManager(appconfig.GetDefaultConfigPath())
		loaded, err := manager.Load()
		if err != nil {
			logging.Warn("failed to load settings, using defaults", zap.Error(err))
			loaded = appconfig.DefaultSettings()
		}
		settings = loaded
	})
	return settings
}

// RootArg picks the operation root: the positional argument when given,
// otherwise the configured default root, otherwise the working directory.
func RootArg(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	if root := Settings().Defaults.Root; root != "" {
		return root
	}
	return "."
}

// SelectionFlags are the entry-selection flags shared by the bulk commands.
type SelectionFlags struct {
	Pattern       string
	UseRegex      bool
	CaseSensitive bool
	Recursive     bool
	Type          string
}

// Register declares the selection flags on cmd.
func (f *SelectionFlags) Register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.Pattern, "pattern", "p", "",
		"select entries whose name matches this pattern; empty selects everything")
	cmd.Flags().BoolVar(&f.UseRegex, "regex", false,
		"treat patterns as regular expressions")
	cmd.Flags().BoolVar(&f.CaseSensitive, "case-sensitive", false,
		"match patterns case-sensitively")
	cmd.Flags().BoolVarP(&f.Recursive, "recursive", "r", false,
		"select entries in subdirectories too")
	cmd.Flags().StringVarP(&f.Type, "type", "t", "all",
		"entry type to select: all, file or dir")
}

// Resolve lists root and returns the entries matching the selection.
func (f *SelectionFlags) Resolve(root string) ([]model.FileEntry, error) {
	entries, err := lister.List(model.ListOptions{
		Root:           root,
		IncludeSubdirs: f.Recursive,
	})
	if err != nil {
		return nil, err
	}
	return filter.Apply(entries, model.FilterSpec{
		Pattern:       f.Pattern,
		UseRegex:      f.UseRegex,
		CaseSensitive: f.CaseSensitive,
		Type:          model.EntryType(f.Type),
	})
}

// Confirm prints the prompt and reads a y/N answer from stdin. assumeYes
// short-circuits for commands run with --yes.
func Confirm(prompt string, assumeYes bool) bool {
	if assumeYes {
		return true
	}

	fmt.Fprintf(os.Stderr, "%s [y/N]: ", prompt)
	answer, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil {
		return false
	}
	answer = strings.ToLower(strings.TrimSpace(answer))
	return answer == "y" || answer == "yes"
}

// ObserveProgress attaches a progress bar to the executor for one batch and
// returns a cleanup func that detaches it and waits for the final render.
// Runs without a terminal get a no-op.
func ObserveProgress(executor *bulk.Executor, total int, label string) func() {
	if !bulk.ShouldShowProgress(false) {
		return func() {}
	}

	manager := bulk.NewProgressManager(bulk.ProgressConfig{Enabled: true})
	bar := manager.CreateBar(total, label)
	executor.Observer = func(model.ItemResult) { bar.Increment() }

	return func() {
		executor.Observer = nil
		bar.Complete()
		manager.Wait()
	}
}

// PrintReport renders an operation report: one line per failed or skipped
// item, then the summary counts.
func PrintReport(report *model.Report) {
	for _, item := range report.Items {
		switch item.Status {
		case model.StatusFailed:
			fmt.Printf("failed  %s: %s\n", item.Path, item.Message)
		case model.StatusSkipped:
			fmt.Printf("skipped %s: %s\n", item.Path, item.Message)
		}
	}
	fmt.Printf("%s finished: %d succeeded, %d failed, %d skipped (%d total in %s)\n",
		report.Kind, report.Succeeded, report.Failed, report.Skipped, report.Total,
		report.Finished.Sub(report.Started).Round(time.Millisecond))
}
