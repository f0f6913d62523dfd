package commands

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/goccy/go-json"
	"github.com/jmespath/go-jmespath"
	"github.com/spf13/cobra"

	"tangled.org/ashwam.app/langid/internal/jsonl"
)

// NewQueryCommand builds the result-querying subcommand.
func NewQueryCommand() *cobra.Command {
	var (
		inPath string
		format string
		limit  int
	)

	cmd := &cobra.Command{
		Use:     "query <expression> [flags]",
		Aliases: []string{"q"},
		Short:   "Query detection results using JMESPath",
		Long: `Query detection results using JMESPath expressions

Streams through a result JSONL file (or stdin) and evaluates the
JMESPath expression against each record. Only records where the
expression returns a non-null, non-false value are output.

Output formats:
  jsonl - Output evaluated values as JSONL (default)
  count - Only output count of matches`,

		Example: `  # Extract ids of all hinglish records
  langid query "primary_language == 'hinglish' && id" --in lang.jsonl

  # Project language and confidence
  langid query '{id: id, lang: primary_language, conf: confidence}' --in lang.jsonl

  # Count low-confidence records
  langid query 'confidence < ` + "`0.5`" + `' --in lang.jsonl --format count

  # Inspect evidence of mixed records
  langid query "primary_language == 'mixed' && evidence" --in lang.jsonl --limit 10

  # From stdin
  cat lang.jsonl | langid query 'script'`,

		Args: cobra.ExactArgs(1),

		RunE: func(cmd *cobra.Command, args []string) error {
			expression := args[0]

			compiled, err := jmespath.Compile(expression)
			if err != nil {
				return fmt.Errorf("invalid JMESPath expression: %w", err)
			}

			var in io.ReadCloser = os.Stdin
			if inPath != "" {
				file, err := jsonl.Open(inPath)
				if err != nil {
					return err
				}
				in = file
			}
			defer in.Close()

			return runQuery(in, compiled, format, limit)
		},
	}

	cmd.Flags().StringVar(&inPath, "in", "", "Result JSONL file to query (default: stdin)")
	cmd.Flags().StringVar(&format, "format", "jsonl", "Output format: jsonl|count")
	cmd.Flags().IntVar(&limit, "limit", 0, "Limit number of results (0 = unlimited)")

	return cmd
}

func runQuery(in io.Reader, compiled *jmespath.JMESPath, format string, limit int) error {
	scanner := bufio.NewScanner(in)
	buf := make([]byte, 0, 64*1024)
	scanner.Buffer(buf, 1024*1024)

	totalCount, matchCount := 0, 0

	for scanner.Scan() {
		line := bytes.TrimSpace(scanner.Bytes())
		if len(line) == 0 {
			continue
		}
		totalCount++

		var record map[string]interface{}
		if err := json.Unmarshal(line, &record); err != nil {
			continue
		}

		value, err := compiled.Search(record)
		if err != nil || value == nil {
			continue
		}
		if b, ok := value.(bool); ok && !b {
			continue
		}

		matchCount++

		if format != "count" {
			out, err := json.Marshal(value)
			if err != nil {
				continue
			}
			fmt.Println(string(out))
		}

		if limit > 0 && matchCount >= limit {
			break
		}
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("scanner error: %w", err)
	}

	if format == "count" {
		fmt.Println(matchCount)
	}

	fmt.Fprintf(os.Stderr, "Matched %d of %d records\n", matchCount, totalCount)
	return nil
}
