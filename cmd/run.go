package cmd

import (
	"github.com/spf13/cobra"

	"github.com/abhisek/wordcards/internal/app"
	"github.com/abhisek/wordcards/internal/vocab"
)

// runApp builds dependencies and launches the TUI. When startMode is
// set, the session it picks opens straight away.
func runApp(cmd *cobra.Command, startMode func(*appEnv) (vocab.Mode, error)) error {
	env, err := setup(cmd)
	if err != nil {
		return err
	}
	defer env.Close()

	var mode vocab.Mode
	if startMode != nil {
		if mode, err = startMode(env); err != nil {
			return err
		}
	}

	return app.Run(app.Options{
		Study:     env.study,
		Cache:     env.cache,
		Pronounce: env.pronounce,
		Log:       env.log,
		StartMode: mode,
	})
}
