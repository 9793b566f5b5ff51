package cleaning

import (
	"fmt"
	"strings"

	"gridlift/pkg/contracts/domain"
)

// Preset names.
const (
	PresetNone       = "none"
	PresetMinimal    = "minimal"
	PresetStandard   = "standard"
	PresetAggressive = "aggressive"
)

// presetSequences lists the cleaner IDs each preset runs, in order.
var presetSequences = map[string][]string{
	PresetNone: {},
	PresetMinimal: {
		IDNormalizeColumns,
		IDStripWhitespace,
	},
	PresetStandard: {
		IDNormalizeColumns,
		IDStripWhitespace,
		IDDropEmptyRows,
		IDStandardizeNA,
	},
	PresetAggressive: {
		IDNormalizeColumns,
		IDStripWhitespace,
		IDDropEmptyRows,
		IDDropEmptyCols,
		IDStandardizeNA,
		IDDeduplicate,
		IDInferTypes,
	},
}

// PresetNames returns the valid preset names in escalation order.
func PresetNames() []string {
	return []string{PresetNone, PresetMinimal, PresetStandard, PresetAggressive}
}

// UnknownPresetError reports a preset name outside the valid set. It is
// a hard error: callers misconfigured the pipeline rather than fed it
// bad data.
type UnknownPresetError struct {
	Name string
}

func (e *UnknownPresetError) Error() string {
	return fmt.Sprintf("unknown cleaning preset %q (valid: %s)",
		e.Name, strings.Join(PresetNames(), ", "))
}

// Preset resolves a preset name to its cleaner sequence.
func Preset(name string, reg *Registry) ([]Cleaner, error) {
	ids, ok := presetSequences[name]
	if !ok {
		return nil, &UnknownPresetError{Name: name}
	}
	return reg.Resolve(ids)
}

// Plan selects how a table is cleaned. Exactly one selection applies,
// by precedence: an explicit Cleaners list, then a single Custom
// cleaner, then a named Preset, then the standard preset.
type Plan struct {
	Cleaners []Cleaner
	Custom   Cleaner
	Preset   string
}

// Sequence resolves the plan to the ordered cleaner list it will run.
func (p Plan) Sequence(reg *Registry) ([]Cleaner, error) {
	switch {
	case len(p.Cleaners) > 0:
		return p.Cleaners, nil
	case p.Custom != nil:
		return []Cleaner{p.Custom}, nil
	case p.Preset != "":
		return Preset(p.Preset, reg)
	default:
		return Preset(PresetStandard, reg)
	}
}

// Clean applies the plan to the table. The input is never mutated; on
// cleaner failure the error is returned and the caller chooses whether
// to keep the prior table.
func Clean(t domain.Table, p Plan, reg *Registry, source string) (domain.Table, error) {
	seq, err := p.Sequence(reg)
	if err != nil {
		return domain.Table{}, err
	}
	return Apply(t, seq, source)
}
