package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"tangled.org/ashwam.app/langid/detect"
)

// NewLexiconCommand builds the lexicon inspection subcommand.
func NewLexiconCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "lexicon",
		Short: "Inspect the built-in lexicons",
		Long: `Inspect the built-in lexicons

Detection matches tokens against two static word sets: romanized-Hindi
words and English stopwords. Both are compiled in and never change at
runtime.`,

		Example: `  # Show lexicon sizes
  langid lexicon list

  # Check which lexicons contain a word
  langid lexicon check accha`,
	}

	cmd.AddCommand(newLexiconListCommand())
	cmd.AddCommand(newLexiconCheckCommand())

	return cmd
}

func newLexiconListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List lexicons and their sizes",

		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Printf("Available lexicons:\n\n")
			fmt.Printf("  %-20s %d entries (romanized-Hindi function/content words)\n", "hi_lexicon", detect.HindiLexiconSize())
			fmt.Printf("  %-20s %d entries (English stopwords)\n", "en_stopwords", detect.EnglishStopwordsSize())
			return nil
		},
	}
}

func newLexiconCheckCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "check <word>",
		Short: "Check lexicon membership of a word",

		Example: `  langid lexicon check accha
  langid lexicon check the`,

		Args: cobra.ExactArgs(1),

		RunE: func(cmd *cobra.Command, args []string) error {
			word := strings.ToLower(args[0])

			fmt.Printf("%-12s hi_lexicon: %-5v en_stopwords: %v\n",
				word, detect.InHindiLexicon(word), detect.InEnglishStopwords(word))
			return nil
		},
	}
}
