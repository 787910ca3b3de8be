package cli

import (
	"fmt"
	"os"

	"github.com/quillworks/redline/internal/config"
	"github.com/quillworks/redline/internal/review"
	"github.com/quillworks/redline/internal/store"
	"github.com/spf13/cobra"
)

var flagClear bool

var decideCmd = &cobra.Command{
	Use:   "decide <original> <revised>",
	Short: "Record accept/reject decisions for hunks of a diff",
	Long: "Record per-hunk decisions for the diff of the given content pair. Decisions\n" +
		"accumulate across invocations and are keyed to the exact text contents, so\n" +
		"they are discarded automatically once either side changes.",
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

		st, err := store.New(cfg.StoreDir)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			exitCode = ExitRuntimeError
			return nil
		}
		key := store.Key(pair.original, pair.revised)

		if flagClear {
			if err := st.Delete(key); err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				exitCode = ExitRuntimeError
				return nil
			}
			fmt.Fprintln(os.Stdout, "Stored decisions cleared.")
			return nil
		}

		session := newSession(pair, cfg)
		if entry, ok := st.Load(key); ok {
			session.SetDecisions(entry.Decisions)
		}

		if err := applyDecisionFlags(session); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			exitCode = ExitUsageError
			return nil
		}
		warnUnknownHunks(session)

		if err := st.Save(store.Entry{
			Key:       key,
			Original:  pair.originalLabel,
			Revised:   pair.revisedLabel,
			Decisions: session.Decisions(),
		}); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			exitCode = ExitRuntimeError
			return nil
		}

		accepted, rejected, pending := session.Counts()
		fmt.Fprintf(os.Stdout, "Recorded: %d accepted, %d rejected, %d pending (of %d hunks)\n",
			accepted, rejected, pending, len(session.Result.Hunks))
		return nil
	},
}

// warnUnknownHunks reports decision flags that name hunks outside the diff.
// They are inert, but silently dropping them would mask typos.
func warnUnknownHunks(s *review.Session) {
	known := make(map[int]bool, len(s.Result.Hunks))
	for _, h := range s.Result.Hunks {
		known[h.ID] = true
	}
	for _, list := range []string{flagAccept, flagReject} {
		ids, err := review.ParseHunkList(list)
		if err != nil {
			continue
		}
		for _, id := range ids {
			if !known[id] {
				fmt.Fprintf(os.Stderr, "Warning: hunk %d does not exist in this diff\n", id)
			}
		}
	}
}

func init() {
	addCommonFlags(decideCmd)
	addDecisionFlags(decideCmd)
	decideCmd.Flags().BoolVar(&flagClear, "clear", false, "Discard stored decisions for this content pair")
}
