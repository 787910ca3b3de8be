package cli

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/quillworks/redline/internal/review"
	"github.com/spf13/cobra"
)

// Shared flags
var (
	flagContextLines int
	flagFormat       string
	flagOut          string
	flagStoreDir     string
	flagAccept       string
	flagReject       string
	flagAcceptAll    bool
	flagRejectAll    bool
)

func addCommonFlags(cmd *cobra.Command) {
	cmd.Flags().IntVar(&flagContextLines, "context-lines", -1, "Context lines around each hunk (default from config)")
	cmd.Flags().StringVar(&flagStoreDir, "store-dir", "", "Decision store directory")
}

func addFormatFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagFormat, "format", "", "Output format (text, json, markdown, patch)")
	cmd.Flags().StringVar(&flagOut, "out", "", "Output file path (default: stdout)")
}

func addDecisionFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagAccept, "accept", "", "Hunk ids to accept (comma-separated)")
	cmd.Flags().StringVar(&flagReject, "reject", "", "Hunk ids to reject (comma-separated)")
	cmd.Flags().BoolVar(&flagAcceptAll, "accept-all", false, "Accept every hunk")
	cmd.Flags().BoolVar(&flagRejectAll, "reject-all", false, "Reject every hunk")
}

func buildOverrides() map[string]string {
	m := make(map[string]string)
	if flagContextLines >= 0 {
		m["contextLines"] = strconv.Itoa(flagContextLines)
	}
	if flagFormat != "" {
		m["format"] = flagFormat
	}
	if flagStoreDir != "" {
		m["storeDir"] = flagStoreDir
	}
	return m
}

// inputPair holds the two loaded text snapshots and their display labels.
type inputPair struct {
	original      string
	revised       string
	originalLabel string
	revisedLabel  string
}

// loadInputs reads the two positional arguments. "-" reads from stdin and is
// allowed for at most one of them (the revised side is the usual case: an
// AI suggestion piped in).
func loadInputs(args []string) (inputPair, error) {
	var pair inputPair
	stdinUsed := false

	var err error
	pair.original, pair.originalLabel, err = readTextArg(args[0], &stdinUsed)
	if err != nil {
		return inputPair{}, err
	}
	pair.revised, pair.revisedLabel, err = readTextArg(args[1], &stdinUsed)
	if err != nil {
		return inputPair{}, err
	}
	return pair, nil
}

func readTextArg(arg string, stdinUsed *bool) (text, label string, err error) {
	if arg == "-" {
		if *stdinUsed {
			return "", "", fmt.Errorf("only one input may come from stdin")
		}
		*stdinUsed = true
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", "", fmt.Errorf("reading stdin: %w", err)
		}
		return string(data), "stdin", nil
	}
	data, err := os.ReadFile(arg)
	if err != nil {
		return "", "", fmt.Errorf("reading %s: %w", arg, err)
	}
	return string(data), arg, nil
}

// applyDecisionFlags folds the decision flags into the session: the all-
// switches first, then individual accepts and rejects on top.
func applyDecisionFlags(s *review.Session) error {
	if flagAcceptAll && flagRejectAll {
		return fmt.Errorf("--accept-all and --reject-all are mutually exclusive")
	}

	acceptIDs, err := review.ParseHunkList(flagAccept)
	if err != nil {
		return fmt.Errorf("--accept: %w", err)
	}
	rejectIDs, err := review.ParseHunkList(flagReject)
	if err != nil {
		return fmt.Errorf("--reject: %w", err)
	}
	rejected := make(map[int]bool, len(rejectIDs))
	for _, id := range rejectIDs {
		rejected[id] = true
	}
	for _, id := range acceptIDs {
		if rejected[id] {
			return fmt.Errorf("hunk %d appears in both --accept and --reject", id)
		}
	}

	if flagAcceptAll {
		s.AcceptAll()
	}
	if flagRejectAll {
		s.RejectAll()
	}
	for _, id := range acceptIDs {
		s.Accept(id)
	}
	for _, id := range rejectIDs {
		s.Reject(id)
	}
	return nil
}
