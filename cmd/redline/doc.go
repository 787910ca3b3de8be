// Redline is a CLI for reviewing AI-suggested edits to prose, hunk by hunk.
//
// It diffs an original text against a revised version, groups the changes
// into independently reviewable hunks, records per-hunk accept/reject
// decisions, and materializes the final text that honors them.
//
// Usage:
//
//	redline diff chapter.txt chapter.ai.txt        # show hunks
//	cat suggestion.txt | redline diff chapter.txt -
//	redline decide chapter.txt chapter.ai.txt --reject 2
//	redline apply chapter.txt chapter.ai.txt --out chapter.txt
//
// See https://github.com/quillworks/redline for full documentation.
package main
