// Package report flattens analysis records into scalar rows and writes
// them as JSONL or CSV for downstream statistics tooling.
package report
