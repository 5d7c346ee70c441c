package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show learning statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := setup(cmd)
		if err != nil {
			return err
		}
		defer env.Close()

		st, err := env.study.Stats(cmd.Context())
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Learned words:   %d\n", st.LearnedWords)
		fmt.Fprintf(out, "Learned phrases: %d\n", st.LearnedPhrases)
		fmt.Fprintf(out, "Hard cards:      %d\n", st.HardItems)
		if !st.LastLearned.IsZero() {
			fmt.Fprintf(out, "Last studied:    %s\n", st.LastLearned.Local().Format("2006-01-02 15:04"))
		}

		cachedAt, err := env.repos.Datasets.CachedAt(cmd.Context())
		if err != nil {
			env.log.Warn("read dataset cache time", zap.Error(err))
		}
		if cachedAt.IsZero() {
			fmt.Fprintln(out, "Datasets cached: not yet")
		} else {
			fmt.Fprintf(out, "Datasets cached: %s\n", cachedAt.Local().Format("2006-01-02 15:04"))
		}

		if r := st.Latest; r != nil {
			fmt.Fprintf(out, "\nLast session (%s): %d cards\n", r.Mode.DisplayName(), r.Total)
			fmt.Fprintf(out, "  known %d  familiar %d  hard %d\n", r.Known, r.Familiar, r.Hard)
		} else {
			fmt.Fprintln(out, "\nNo sessions finished yet.")
		}
		return nil
	},
}
