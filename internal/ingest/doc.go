// Package ingest is the file boundary of the pipeline: it discovers
// tabular input files and decodes Excel workbooks and delimited files
// into rectangular cell grids. Everything downstream of this package is
// free of file-format concerns.
package ingest
