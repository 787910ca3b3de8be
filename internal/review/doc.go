// Package review tracks per-hunk accept/reject decisions over one computed
// diff and projects the outcome into a Report for the output writers.
//
// A Session wraps a diff.Result and a sparse decision map. Hunks without an
// explicit mark are accepted, matching the engine's default; marks for hunk
// ids that do not exist in the result are discarded rather than stored.
// Session.Apply materializes the final text for the current decisions.
//
// BuildReport assembles the serializable Report (tool, run id, inputs,
// summary, per-hunk changes with effective decisions) consumed by the text,
// json, markdown, and patch writers. Run ids are short SHA-256 fingerprints.
package review
