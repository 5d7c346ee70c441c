package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Show or change learning settings",
	Long:  "Show the saved settings. Pass --count, --random or --autoplay to change them.",
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := setup(cmd)
		if err != nil {
			return err
		}
		defer env.Close()

		ctx := cmd.Context()
		st := env.study.Settings(ctx)

		flags := cmd.Flags()
		changed := false
		if flags.Changed("count") {
			st.LearningCount, _ = flags.GetInt("count")
			changed = true
		}
		if flags.Changed("random") {
			st.RandomOrder, _ = flags.GetBool("random")
			changed = true
		}
		if flags.Changed("autoplay") {
			st.AutoPlay, _ = flags.GetBool("autoplay")
			changed = true
		}
		if changed {
			st = st.Sanitize()
			if err := env.repos.Settings.Save(ctx, st); err != nil {
				return fmt.Errorf("save settings: %w", err)
			}
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Cards per session: %d\n", st.LearningCount)
		fmt.Fprintf(out, "Random order:      %t\n", st.RandomOrder)
		fmt.Fprintf(out, "Auto pronounce:    %t\n", st.AutoPlay)
		return nil
	},
}

func init() {
	settingsCmd.Flags().Int("count", 0, "Cards per session (invalid values fall back to 20)")
	settingsCmd.Flags().Bool("random", true, "Shuffle cards")
	settingsCmd.Flags().Bool("autoplay", false, "Resolve pronunciation automatically for each card")
}
