package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/wordcards/internal/vocab"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Reset learner data",
	Long:  "Clear saved learner data. Without flags, the hard card queue, learned progress and latest results are cleared.",
	RunE: func(cmd *cobra.Command, args []string) error {
		flags := cmd.Flags()
		hard, _ := flags.GetBool("hard")
		progress, _ := flags.GetBool("progress")
		results, _ := flags.GetBool("results")
		cache, _ := flags.GetBool("cache")
		all, _ := flags.GetBool("all")

		if all {
			hard, progress, results, cache = true, true, true, true
		}
		if !hard && !progress && !results && !cache {
			hard, progress, results = true, true, true
		}

		env, err := setup(cmd)
		if err != nil {
			return err
		}
		defer env.Close()

		ctx := cmd.Context()
		out := cmd.OutOrStdout()

		if hard {
			if err := env.repos.Hard.Clear(ctx); err != nil {
				return fmt.Errorf("clear hard cards: %w", err)
			}
			fmt.Fprintln(out, "Cleared hard cards")
		}
		if progress {
			if err := env.repos.Progress.Clear(ctx); err != nil {
				return fmt.Errorf("clear progress: %w", err)
			}
			fmt.Fprintln(out, "Cleared learned progress")
		}
		if results {
			if err := env.repos.Results.Clear(ctx); err != nil {
				return fmt.Errorf("clear results: %w", err)
			}
			fmt.Fprintln(out, "Cleared latest results")
		}
		if cache {
			for _, mode := range vocab.Modes {
				if err := env.cache.Invalidate(ctx, mode); err != nil {
					return fmt.Errorf("clear %s dataset: %w", mode, err)
				}
			}
			fmt.Fprintln(out, "Cleared cached datasets")
		}
		return nil
	},
}

func init() {
	resetCmd.Flags().Bool("hard", false, "Clear the hard card queue")
	resetCmd.Flags().Bool("progress", false, "Clear learned words and phrases")
	resetCmd.Flags().Bool("results", false, "Clear the latest session results")
	resetCmd.Flags().Bool("cache", false, "Clear cached datasets so they are fetched again")
	resetCmd.Flags().Bool("all", false, "Clear everything")
}
