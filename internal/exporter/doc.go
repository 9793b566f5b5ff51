// Package exporter writes pipeline output tables to CSV files, with
// optional UTF-8 BOM for Excel compatibility and optional row-index
// column.
package exporter
