package filter

import (
	"fmt"
	"regexp"
	"strings"

	apperrors "file-wrangler/internal/app/errors"
	"file-wrangler/internal/app/model"
)

// Apply returns the subset of entries whose name matches the spec. An empty
// pattern matches everything. On an invalid regex the previous result set is
// the caller's to keep; Apply returns nothing but the error.
func Apply(entries []model.FileEntry, spec model.FilterSpec) ([]model.FileEntry, error) {
	match, err := compile(spec)
	if err != nil {
		return nil, err
	}

	out := make([]model.FileEntry, 0, len(entries))
	for _, e := range entries {
		if !matchesType(e, spec.Type) {
			continue
		}
		if match(e.Name) {
			out = append(out, e)
		}
	}
	return out, nil
}

// compile turns the spec into a name predicate. Regex patterns use search
// semantics, matching anywhere in the name rather than anchoring.
func compile(spec model.FilterSpec) (func(string) bool, error) {
	if spec.Pattern == "" {
		return func(string) bool { return true }, nil
	}

	if spec.UseRegex {
		pattern := spec.Pattern
		if !spec.CaseSensitive {
			pattern = "(?i)" + pattern
		}
		re, err := regexp.Compile(pattern)
		if err != nil {
			return nil, apperrors.WrapKind(err, apperrors.KindInvalidPattern,
				fmt.Sprintf("invalid filter pattern %q", spec.Pattern))
		}
		return re.MatchString, nil
	}

	if spec.CaseSensitive {
		needle := spec.Pattern
		return func(name string) bool { return strings.Contains(name, needle) }, nil
	}

	needle := strings.ToLower(spec.Pattern)
	return func(name string) bool { return strings.Contains(strings.ToLower(name), needle) }, nil
}

func matchesType(e model.FileEntry, t model.EntryType) bool {
	switch t {
	case model.TypeFile:
		return !e.IsDir
	case model.TypeDir:
		return e.IsDir
	default:
		return true
	}
}
