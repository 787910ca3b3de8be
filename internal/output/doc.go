// Package output formats review reports for display or machine consumption.
//
// Four formats are supported:
//   - text     — human-readable hunk listing with decisions (default)
//   - json     — full structured JSON report
//   - markdown — notes/PR-friendly with fenced diff blocks per hunk
//   - patch    — classic unified diff of original vs revised (decisions are
//     not reflected; this is a plain export of the full change set)
//
// Use [GetWriter] to obtain a [Writer] for a given format string, then call
// [Writer.Write] with an [io.Writer] and a [*review.Report]. [WriteReport]
// handles destination selection (file path or stdout).
package output
