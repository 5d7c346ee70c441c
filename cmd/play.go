package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/wordcards/internal/vocab"
)

var playCmd = &cobra.Command{
	Use:       "play [words|phrases|review]",
	Short:     "Start a learning session",
	Long:      "Start a learning session. Without an argument the last selected mode is used.",
	Args:      cobra.MaximumNArgs(1),
	ValidArgs: []string{string(vocab.ModeWords), string(vocab.ModePhrases), string(vocab.ModeReview)},
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 1 {
			mode, err := vocab.ParseMode(args[0])
			if err != nil {
				return err
			}
			return runApp(cmd, func(*appEnv) (vocab.Mode, error) { return mode, nil })
		}
		return runApp(cmd, func(env *appEnv) (vocab.Mode, error) {
			mode, err := env.repos.Mode.SelectedMode(cmd.Context())
			if err != nil {
				return "", fmt.Errorf("read selected mode: %w", err)
			}
			return mode, nil
		})
	},
}
