package cleaning

import (
	"fmt"
	"regexp"
	"strings"

	"gridlift/pkg/contracts/domain"
)

// NormalizeOptions configures NewNormalizeColumns.
type NormalizeOptions struct {
	// PreserveCase keeps the original casing instead of lowercasing.
	PreserveCase bool
	// PreserveDashes keeps dashes instead of folding them to underscores.
	PreserveDashes bool
	// PreserveDots keeps dots instead of folding them to underscores.
	PreserveDots bool
}

// NewNormalizeColumns returns a cleaner that rewrites column names into
// identifier form: trimmed, lowercased (unless preserved), every run of
// characters outside [A-Za-z0-9_] (plus any preserved punctuation)
// replaced by a single underscore, leading/trailing underscores
// stripped. Names that come out empty become "unnamed" and duplicates
// get a numeric suffix in encounter order.
func NewNormalizeColumns(opts NormalizeOptions) Cleaner {
	keep := ""
	if opts.PreserveDashes {
		keep += "-"
	}
	if opts.PreserveDots {
		keep += "."
	}
	pattern := regexp.MustCompile(`[^A-Za-z0-9_` + regexp.QuoteMeta(keep) + `]+`)

	return Func{Name: IDNormalizeColumns, Fn: func(t domain.Table, _ string) (domain.Table, error) {
		out := t.Clone()
		names := make([]string, len(out.Columns))
		for i, col := range out.Columns {
			name := strings.TrimSpace(col)
			if !opts.PreserveCase {
				name = strings.ToLower(name)
			}
			name = pattern.ReplaceAllString(name, "_")
			name = strings.Trim(name, "_")
			if name == "" {
				name = "unnamed"
			}
			names[i] = name
		}

		seen := make(map[string]int, len(names))
		for i, name := range names {
			if count, ok := seen[name]; ok {
				seen[name] = count + 1
				names[i] = fmt.Sprintf("%s_%d", name, count+1)
			} else {
				seen[name] = 0
			}
		}

		out.Columns = names
		return out, nil
	}}
}

// NormalizeColumns returns the default lowercase normalizer.
func NormalizeColumns() Cleaner {
	return NewNormalizeColumns(NormalizeOptions{})
}
