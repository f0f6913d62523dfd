package commands

import (
	"fmt"
	"strings"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"tangled.org/ashwam.app/langid/detect"
)

// NewDetectCommand builds the one-off detection subcommand.
func NewDetectCommand() *cobra.Command {
	var id string

	cmd := &cobra.Command{
		Use:   "detect <text...>",
		Short: "Detect language of a single text",
		Long: `Detect language of a single text given on the command line

Prints the full detection result as indented JSON, including the
evidence bundle. Useful for debugging classifications.`,

		Example: `  # Hinglish
  langid detect "mujhe aaj bahut khushi ho rahi hai"

  # Code-switched
  langid detect "Today mausam bahut accha hai"

  # Devanagari
  langid detect "नमस्ते दुनिया"`,

		Args: cobra.MinimumNArgs(1),

		RunE: func(cmd *cobra.Command, args []string) error {
			text := strings.Join(args, " ")

			res := detect.NewDetector().Detect(id, text)

			data, err := json.MarshalIndent(res, "", "  ")
			if err != nil {
				return fmt.Errorf("failed to marshal result: %w", err)
			}

			fmt.Println(string(data))
			return nil
		},
	}

	cmd.Flags().StringVar(&id, "id", "adhoc", "Identifier to attach to the result")

	return cmd
}
