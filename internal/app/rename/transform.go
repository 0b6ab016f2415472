package rename

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	apperrors "file-wrangler/internal/app/errors"
	"file-wrangler/internal/app/model"
)

// Plan item statuses. Only StatusOK items are executable; everything else
// is skipped by the executor and reported.
const (
	StatusOK        = "ok"
	StatusUnchanged = "unchanged"
	StatusConflict  = "conflict"
	StatusInvalid   = "invalid"
)

// PlanItem is one row of a rename preview.
type PlanItem struct {
	Entry   model.FileEntry `json:"entry"`
	NewName string          `json:"new_name"`
	NewPath string          `json:"new_path"`
	Status  string          `json:"status"`
	Reason  string          `json:"reason,omitempty"`
}

// Conflict reports whether this item clashes with another rename target or
// an existing file.
func (p PlanItem) Conflict() bool { return p.Status == StatusConflict }

// Summary totals a plan for display and logging.
type Summary struct {
	Total     int `json:"total"`
	OK        int `json:"ok"`
	Unchanged int `json:"unchanged"`
	Conflicts int `json:"conflicts"`
	Invalid   int `json:"invalid"`
}

// Plan is the rename preview for one selection, confirmed by the caller
// before execution.
type Plan struct {
	Spec    model.RenameSpec `json:"spec"`
	Items   []PlanItem       `json:"items"`
	Summary Summary          `json:"summary"`
}

// BuildPlan computes the new name for every selected entry and flags the
// items the executor must refuse. Find/replace applies to the entry name
// only, never to the directory part of the path. Replacement is replace-all;
// regex replacements may reference capture groups.
func BuildPlan(selection []model.FileEntry, spec model.RenameSpec) (*Plan, error) {
	apply, err := compile(spec)
	if err != nil {
		return nil, err
	}

	type target struct {
		newName string
		newPath string
	}

	targets := make([]target, len(selection))
	targetCount := make(map[string]int, len(selection))
	// Old paths whose name changes in this plan. A target occupied by one of
	// these is not treated as a pre-existing file.
	renamedAway := make(map[string]bool, len(selection))

	for i, e := range selection {
		newName := apply(e.Name)
		newPath := filepath.Join(filepath.Dir(e.FullPath), newName)
		targets[i] = target{newName: newName, newPath: newPath}
		if newName != e.Name {
			targetCount[newPath]++
			renamedAway[e.FullPath] = true
		}
	}

	plan := &Plan{Spec: spec, Items: make([]PlanItem, 0, len(selection))}
	for i, e := range selection {
		item := PlanItem{
			Entry:   e,
			NewName: targets[i].newName,
			NewPath: targets[i].newPath,
		}

		switch {
		case item.NewName == e.Name:
			item.Status = StatusUnchanged
		case invalidNameReason(item.NewName) != "":
			item.Status = StatusInvalid
			item.Reason = invalidNameReason(item.NewName)
		case targetCount[item.NewPath] > 1:
			item.Status = StatusConflict
			item.Reason = "duplicate target within selection"
		case targetExists(item.NewPath, renamedAway):
			item.Status = StatusConflict
			item.Reason = "target already exists"
		default:
			item.Status = StatusOK
		}

		plan.Items = append(plan.Items, item)
	}

	plan.Summary = summarize(plan.Items)
	return plan, nil
}

func summarize(items []PlanItem) Summary {
	s := Summary{Total: len(items)}
	for _, item := range items {
		switch item.Status {
		case StatusOK:
			s.OK++
		case StatusUnchanged:
			s.Unchanged++
		case StatusConflict:
			s.Conflicts++
		case StatusInvalid:
			s.Invalid++
		}
	}
	return s
}

// compile builds the name transformation. Literal mode is a substring
// replace-all; regex mode substitutes every non-overlapping match.
func compile(spec model.RenameSpec) (func(string) string, error) {
	if !spec.UseRegex {
		find, replace := spec.Find, spec.Replace
		return func(name string) string {
			return strings.ReplaceAll(name, find, replace)
		}, nil
	}

	re, err := regexp.Compile(spec.Find)
	if err != nil {
		return nil, apperrors.WrapKind(err, apperrors.KindInvalidPattern,
			fmt.Sprintf("invalid rename pattern %q", spec.Find))
	}
	replace := spec.Replace
	return func(name string) string {
		return re.ReplaceAllString(name, replace)
	}, nil
}

func invalidNameReason(name string) string {
	switch {
	case name == "":
		return "new name is empty"
	case name == "." || name == "..":
		return "new name is reserved"
	case strings.ContainsAny(name, `/\`) || strings.ContainsRune(name, 0):
		return "new name contains a path separator"
	default:
		return ""
	}
}

// targetExists reports whether newPath is occupied by a file that this plan
// does not rename away. Execution still re-checks the target so a file
// appearing in between surfaces as a per-item collision.
func targetExists(newPath string, renamedAway map[string]bool) bool {
	if renamedAway[newPath] {
		return false
	}
	_, err := os.Lstat(newPath)
	return err == nil
}
