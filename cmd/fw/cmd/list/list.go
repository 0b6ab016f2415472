package list

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"text/tabwriter"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"file-wrangler/cmd/fw/cmd/cmdutil"
	"file-wrangler/internal/app/filter"
	"file-wrangler/internal/app/lister"
	"file-wrangler/internal/app/model"
)

var (
	pattern       string
	useRegex      bool
	caseSensitive bool
	recursive     bool
	entryType     string
	sortBy        string
	descending    bool
	asJSON        bool
)

func init() {
	Cmd.Flags().StringVarP(&pattern, "pattern", "p", "",
		"only show entries whose name matches this pattern; empty shows everything")
	Cmd.Flags().BoolVar(&useRegex, "regex", false, "treat the pattern as a regular expression")
	Cmd.Flags().BoolVar(&caseSensitive, "case-sensitive", false, "match the pattern case-sensitively")
	Cmd.Flags().BoolVarP(&recursive, "recursive", "r", false, "include entries from subdirectories")
	Cmd.Flags().StringVarP(&entryType, "type", "t", "all", "entry type to show: all, file or dir")
	Cmd.Flags().StringVarP(&sortBy, "sort", "s", "name", "sort column: name, size, modified or path")
	Cmd.Flags().BoolVar(&descending, "desc", false, "sort in descending order")
	Cmd.Flags().BoolVar(&asJSON, "json", false, "print entries as JSON instead of a table")
}

// Cmd represents the list command
var Cmd = &cobra.Command{
	Use:   "list [dir]",
	Short: "List a directory with optional name filtering",
	Long: `List a directory with optional name filtering

- Without --pattern all entries are shown
- --pattern matches by substring, or as a regular expression with --regex
- --recursive walks the whole tree instead of the immediate children`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		settings := cmdutil.Settings()
		if !cmd.Flags().Changed("case-sensitive") {
			caseSensitive = settings.Defaults.CaseSensitive
		}
		if !cmd.Flags().Changed("recursive") {
			recursive = settings.Defaults.IncludeSubdirs
		}
		if !cmd.Flags().Changed("sort") && settings.Defaults.SortBy != "" {
			sortBy = settings.Defaults.SortBy
		}

		entries, err := lister.List(model.ListOptions{
			Root:           cmdutil.RootArg(args),
			IncludeSubdirs: recursive,
			SortBy:         model.SortKey(sortBy),
			Descending:     descending,
		})
		if err != nil {
			log.Fatalf("listing failed: %v", err)
		}

		entries, err = filter.Apply(entries, model.FilterSpec{
			Pattern:       pattern,
			UseRegex:      useRegex,
			CaseSensitive: caseSensitive,
			Type:          model.EntryType(entryType),
		})
		if err != nil {
			log.Fatalf("filtering failed: %v", err)
		}

		if asJSON {
			encoder := json.NewEncoder(os.Stdout)
			encoder.SetIndent("", "  ")
			if err := encoder.Encode(entries); err != nil {
				log.Fatalf("encoding failed: %v", err)
			}
			return
		}

		printTable(entries, recursive)
	},
}

func printTable(entries []model.FileEntry, showPath bool) {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)

	fmt.Fprintln(w, "NAME\tTYPE\tSIZE\tMODIFIED")
	for _, e := range entries {
		name := e.Name
		if showPath {
			name = e.FullPath
		}
		kind := "file"
		if e.IsDir {
			kind = "dir"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
			name, kind, humanize.IBytes(uint64(e.Size)), e.ModTime.Format("2006-01-02 15:04:05"))
	}
	w.Flush()

	fmt.Printf("%d entries\n", len(entries))
}
