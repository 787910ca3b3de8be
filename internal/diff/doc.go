// Package diff computes line-level diffs between an original and a revised
// text and selectively applies them under per-hunk accept/reject decisions.
//
// Compute builds a longest-common-subsequence table over the two line
// sequences, walks it into an ordered op sequence (context, add, delete), and
// groups the change ops into hunks padded with up to ContextLines of
// surrounding context. Two change runs separated by more than twice
// ContextLines of unchanged text land in separate hunks, so each hunk can be
// accepted or rejected independently.
//
// ApplyDecisions reconstructs the final text from the original lines, the
// stamped op sequence, and a sparse hunk-id to Decision map. Hunks without an
// explicit decision are accepted; unknown hunk ids in the map are ignored.
//
// The op sequence is total: the content of context and delete ops,
// concatenated in order, equals the original line sequence, and context plus
// add ops equal the revised sequence. Line endings are normalized (CRLF to
// LF) before splitting; comparison is exact line equality.
//
// Everything here is pure and synchronous. Each Compute call allocates fresh
// structures, so concurrent reviews of different diffs need no coordination.
package diff
