package diff

import "strings"

// OpKind classifies a single diff operation.
type OpKind string

const (
	OpContext OpKind = "context"
	OpAdd     OpKind = "add"
	OpDelete  OpKind = "delete"
)

// Op is one line-level operation. Context ops belong to both texts, add ops
// only to the revised text, delete ops only to the original. Add and delete
// ops are stamped with the id of the hunk that owns them; context ops carry
// no stamp.
type Op struct {
	Kind    OpKind `json:"kind"`
	Content string `json:"content"`
	HunkID  int    `json:"hunkId,omitempty"`
}

// Hunk is a maximal run of change ops padded with up to ContextLines leading
// and trailing context ops. Ids are sequential starting at 1 and are only
// meaningful within the Result that produced them.
type Hunk struct {
	ID      int  `json:"id"`
	Changes []Op `json:"changes"`
}

// Stats counts changes over the whole diff, independent of hunk grouping.
type Stats struct {
	Additions int `json:"additions"`
	Deletions int `json:"deletions"`
}

// DefaultContextLines is the hunk padding used when no explicit value is
// configured.
const DefaultContextLines = 2

// Options controls hunk grouping. ContextLines is taken as-is: zero means no
// context padding; negative values are clamped to zero. Callers wanting the
// default should start from DefaultOptions.
type Options struct {
	ContextLines int
}

// DefaultOptions returns Options with DefaultContextLines.
func DefaultOptions() Options {
	return Options{ContextLines: DefaultContextLines}
}

// Result is the complete outcome of one Compute call. It is a read-only
// snapshot: callers must not mutate it across a review cycle.
type Result struct {
	OriginalLines []string `json:"originalLines"`
	RevisedLines  []string `json:"revisedLines"`
	Ops           []Op     `json:"ops"`
	Hunks         []Hunk   `json:"hunks"`
	Stats         Stats    `json:"stats"`
}

// Compute diffs originalText against revisedText and groups the changes into
// reviewable hunks. Every input, including empty strings, yields a
// well-defined result.
func Compute(originalText, revisedText string, opts Options) *Result {
	a := SplitLines(originalText)
	b := SplitLines(revisedText)

	table := lcsTable(a, b)
	ops := sequenceOps(a, b, table)
	hunks, stats := groupHunks(ops, clampContext(opts.ContextLines))

	return &Result{
		OriginalLines: a,
		RevisedLines:  b,
		Ops:           ops,
		Hunks:         hunks,
		Stats:         stats,
	}
}

// SplitLines normalizes line endings and splits text into lines. The empty
// string yields zero lines; a trailing newline yields a trailing empty line,
// so joining with "\n" reproduces the normalized input exactly.
func SplitLines(text string) []string {
	if text == "" {
		return []string{}
	}
	return strings.Split(normalizeEOL(text), "\n")
}

// JoinLines is the inverse of SplitLines for non-empty inputs.
func JoinLines(lines []string) string {
	return strings.Join(lines, "\n")
}

func normalizeEOL(text string) string {
	return strings.ReplaceAll(text, "\r\n", "\n")
}

func clampContext(n int) int {
	if n < 0 {
		return 0
	}
	return n
}
