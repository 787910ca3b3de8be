package cli

import (
	"fmt"
	"os"

	"github.com/quillworks/redline/internal/config"
	"github.com/quillworks/redline/internal/store"
	"github.com/spf13/cobra"
)

var flagKeep bool

var applyCmd = &cobra.Command{
	Use:   "apply <original> <revised>",
	Short: "Materialize the final text under the recorded decisions",
	Long: "Apply the recorded (and flag-supplied) per-hunk decisions to produce the\n" +
		"final text: accepted hunks take the revised lines, rejected hunks keep the\n" +
		"original ones. The stored decision set is consumed unless --keep is given.",
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

		st, err := store.New(cfg.StoreDir)
		if err == nil {
			if entry, ok := st.Load(store.Key(pair.original, pair.revised)); ok {
				session.SetDecisions(entry.Decisions)
			}
		}

		if err := applyDecisionFlags(session); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			exitCode = ExitUsageError
			return nil
		}

		final := session.Apply()
		if flagOut != "" {
			if err := os.WriteFile(flagOut, []byte(final), 0o644); err != nil {
				fmt.Fprintf(os.Stderr, "Error writing output: %v\n", err)
				exitCode = ExitRuntimeError
				return nil
			}
		} else {
			fmt.Fprint(os.Stdout, final)
		}

		if st != nil && !flagKeep {
			if err := st.Delete(store.Key(pair.original, pair.revised)); err != nil {
				fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
			}
		}
		return nil
	},
}

func init() {
	addCommonFlags(applyCmd)
	addDecisionFlags(applyCmd)
	applyCmd.Flags().StringVar(&flagOut, "out", "", "Output file path (default: stdout)")
	applyCmd.Flags().BoolVar(&flagKeep, "keep", false, "Keep the stored decision set after applying")
}
