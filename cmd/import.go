package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/wordcards/internal/importer"
	"github.com/abhisek/wordcards/internal/vocab"
)

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import a word list",
	Long: `Import a word list from an .xlsx, .csv or .json file, replacing the
cached dataset for the chosen mode.

Spreadsheet and CSV columns default to: A text, B meaning, C phonetic,
D part of speech, with a header in row 1. A column may also be given by
its header name, e.g. --text-col word.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		flags := cmd.Flags()
		modeName, _ := flags.GetString("mode")
		mode, err := vocab.ParseMode(modeName)
		if err != nil {
			return err
		}
		if mode == vocab.ModeReview {
			return fmt.Errorf("cannot import into %q", mode)
		}

		cfg := importer.DefaultConfig(args[0], mode)
		cfg.Sheet, _ = flags.GetString("sheet")
		cfg.TextColumn, _ = flags.GetString("text-col")
		cfg.MeaningColumn, _ = flags.GetString("meaning-col")
		cfg.PhoneticColumn, _ = flags.GetString("phonetic-col")
		cfg.POSColumn, _ = flags.GetString("pos-col")
		cfg.StartRow, _ = flags.GetInt("start-row")

		env, err := setup(cmd)
		if err != nil {
			return err
		}
		defer env.Close()

		res, err := importer.Import(cmd.Context(), cfg, env.cache)
		out := cmd.OutOrStdout()
		if res != nil {
			fmt.Fprintf(out, "Processed %d rows: %d imported, %d skipped\n", res.Processed, res.Imported, res.Skipped)
			for _, e := range res.Errors {
				fmt.Fprintln(out, "  -", e)
			}
		}
		if err != nil {
			return fmt.Errorf("import %s: %w", args[0], err)
		}
		fmt.Fprintf(out, "%s dataset replaced\n", mode.DisplayName())
		return nil
	},
}

func init() {
	importCmd.Flags().String("mode", string(vocab.ModeWords), "Dataset to replace: words or phrases")
	importCmd.Flags().String("sheet", "", "Sheet name (default: first sheet)")
	importCmd.Flags().String("text-col", "A", "Column letter or header name holding the word or phrase")
	importCmd.Flags().String("meaning-col", "B", "Column holding the definition or translation")
	importCmd.Flags().String("phonetic-col", "C", "Column holding the phonetic (words only)")
	importCmd.Flags().String("pos-col", "D", "Column holding the part of speech (words only)")
	importCmd.Flags().Int("start-row", 2, "First data row (1-based)")
}
