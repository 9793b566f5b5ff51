// Package extract recovers the core data table from an arbitrarily messy
// grid: extra header and footer rows, embedded key/value metadata, sparse
// columns, stray row-number columns.
//
// The engine works in four passes:
//
//  1. Region detection: find the contiguous band of rows dense enough to
//     be the real table body, tolerating small internal gaps.
//  2. Header classification: score candidate rows near the top of the
//     band for header-likeness and pick the best one.
//  3. Metadata and footer scraping: rows above the header and below the
//     band are mined for key/value pairs and leftover text.
//  4. Core slicing: the dense rows and columns are cut into a named
//     table, with a confidence score and warnings describing quality.
//
// Nothing in this package performs I/O; grids arrive fully materialized
// from the ingestion boundary, and every pass is pure over its input.
package extract
