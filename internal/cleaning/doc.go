// Package cleaning provides composable table transforms applied after
// extraction: column-name normalization, whitespace stripping, empty
// row/column removal, NA standardization, deduplication, and type
// inference.
//
// Every cleaner takes a table and returns a new one; inputs are never
// mutated. Cleaners are registered by ID in a Registry and sequenced
// either explicitly or through named presets (none, minimal, standard,
// aggressive) that run in a fixed order. A Plan selects among an
// explicit cleaner list, a single custom cleaner, or a preset, in that
// precedence order.
package cleaning
