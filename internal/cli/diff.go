package cli

import (
	"fmt"
	"os"

	"github.com/quillworks/redline/internal/config"
	"github.com/quillworks/redline/internal/diff"
	"github.com/quillworks/redline/internal/output"
	"github.com/quillworks/redline/internal/review"
	"github.com/quillworks/redline/internal/store"
	"github.com/spf13/cobra"
)

var diffCmd = &cobra.Command{
	Use:   "diff <original> <revised>",
	Short: "Compute and render the hunk-level diff between two texts",
	Long: "Diff an original text against a revised version and render the result.\n" +
		"Either argument may be '-' to read that side from stdin. Decisions already\n" +
		"recorded for this exact content pair are shown.",
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(buildOverrides())
		if err != nil {
			return err
		}

		pair, err := loadInputs(args)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			exitCode = ExitRuntimeError
			return nil
		}

		session := newSession(pair, cfg)
		loadStoredDecisions(session, pair, cfg)

		report := review.BuildReport(session, review.Inputs{
			Original:     pair.originalLabel,
			Revised:      pair.revisedLabel,
			ContextLines: cfg.ContextLines,
		})
		if err := output.WriteReport(report, cfg.Format, flagOut); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing output: %v\n", err)
			exitCode = ExitRuntimeError
			return nil
		}
		return nil
	},
}

func newSession(pair inputPair, cfg config.Config) *review.Session {
	res := diff.Compute(pair.original, pair.revised, diff.Options{ContextLines: cfg.ContextLines})
	return review.NewSession(res)
}

// loadStoredDecisions merges previously recorded decisions for this content
// pair, if the store is reachable and holds any.
func loadStoredDecisions(s *review.Session, pair inputPair, cfg config.Config) {
	st, err := store.New(cfg.StoreDir)
	if err != nil {
		return
	}
	if entry, ok := st.Load(store.Key(pair.original, pair.revised)); ok {
		s.SetDecisions(entry.Decisions)
	}
}

func init() {
	addCommonFlags(diffCmd)
	addFormatFlags(diffCmd)
}
