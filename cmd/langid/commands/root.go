package commands

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"tangled.org/ashwam.app/langid/cmd/langid/ui"
	"tangled.org/ashwam.app/langid/internal/batch"
	"tangled.org/ashwam.app/langid/internal/jsonl"
	"tangled.org/ashwam.app/langid/internal/types"
)

// Execute runs the root command with interrupt handling.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	return NewRootCommand().ExecuteContext(ctx)
}

type runOptions struct {
	inPath       string
	outPath      string
	validateOnly bool
	stats        bool
	quiet        bool
	workers      int
	noProgress   bool
}

// NewRootCommand builds the langid command tree. The root command
// itself runs the batch pipeline, keeping the original
// `langid --in texts.jsonl --out lang.jsonl` invocation working.
func NewRootCommand() *cobra.Command {
	var opts runOptions

	cmd := &cobra.Command{
		Use:   "langid --in <input.jsonl> --out <output.jsonl>",
		Short: "Detect language and script for journaling text",
		Long: `Detect language and script for journaling text

Reads line-delimited JSON records ({"id": ..., "text": ...}) and writes
one detection result per record: primary language (en, hi, hinglish,
mixed, unknown), script (latin, devanagari, mixed, other), a calibrated
confidence score and an interpretable evidence bundle.

Files ending in .zst are read and written zstd-compressed.`,

		Example: `  # Detect languages in a journal export
  langid --in texts.jsonl --out lang.jsonl

  # Validate input format only
  langid --in texts.jsonl --out lang.jsonl --validate-only

  # Print distribution statistics after processing
  langid --in texts.jsonl --out lang.jsonl --stats

  # Parallel processing with 8 workers, compressed output
  langid --in texts.jsonl --out lang.jsonl.zst --workers 8

  # One-off detection
  langid detect "mujhe aaj bahut khushi ho rahi hai"`,

		SilenceUsage:  true,
		SilenceErrors: true,

		RunE: func(cmd *cobra.Command, args []string) error {
			return runDetection(cmd.Context(), &opts)
		},
	}

	cmd.Flags().StringVar(&opts.inPath, "in", "", "Input JSONL file with texts to analyze (required)")
	cmd.Flags().StringVar(&opts.outPath, "out", "", "Output JSONL file for detection results (required)")
	cmd.Flags().BoolVar(&opts.validateOnly, "validate-only", false, "Only validate input format, do not process")
	cmd.Flags().BoolVar(&opts.stats, "stats", false, "Print processing statistics to stderr")
	cmd.Flags().BoolVar(&opts.quiet, "quiet", false, "Suppress progress messages")
	cmd.Flags().IntVarP(&opts.workers, "workers", "w", 0, "Number of parallel workers (0 = auto-detect CPU count)")
	cmd.Flags().BoolVar(&opts.noProgress, "no-progress", false, "Disable progress counter")

	cmd.MarkFlagRequired("in")
	cmd.MarkFlagRequired("out")

	cmd.AddCommand(NewDetectCommand())
	cmd.AddCommand(NewLexiconCommand())
	cmd.AddCommand(NewQueryCommand())
	cmd.AddCommand(NewServeCommand())
	cmd.AddCommand(NewVersionCommand())

	return cmd
}

func runDetection(ctx context.Context, opts *runOptions) error {
	logger := &commandLogger{quiet: opts.quiet}

	info, err := os.Stat(opts.inPath)
	if err != nil {
		return fmt.Errorf("input file %q: %w", opts.inPath, err)
	}
	if info.IsDir() {
		return fmt.Errorf("%q is not a file", opts.inPath)
	}

	// Validate the leading sample before touching the output path.
	logger.Printf("Validating input file: %s", opts.inPath)

	vin, err := jsonl.Open(opts.inPath)
	if err != nil {
		return err
	}
	err = jsonl.Validate(vin, types.VALIDATE_SAMPLE_SIZE)
	vin.Close()
	if err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	if opts.validateOnly {
		fmt.Fprintln(os.Stderr, "Input file validation passed")
		return nil
	}

	logger.Printf("Processing: %s -> %s", opts.inPath, opts.outPath)

	in, err := jsonl.Open(opts.inPath)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := jsonl.Create(opts.outPath)
	if err != nil {
		return err
	}

	reader := jsonl.NewReader(in)
	defer reader.Release()
	writer := jsonl.NewWriter(out)

	runner := batch.NewRunner(opts.workers, logger)

	var progressFn func(int)
	var counter *ui.Counter
	if !opts.quiet && !opts.noProgress && stderrIsTerminal() {
		counter = ui.NewCounter("Processed")
		progressFn = counter.Set
	}

	stats, runErr := runner.Run(ctx, reader, writer, progressFn)

	if counter != nil {
		counter.Finish()
	}

	if closeErr := out.Close(); runErr == nil {
		runErr = closeErr
	}

	if runErr != nil {
		if errors.Is(runErr, context.Canceled) {
			return fmt.Errorf("interrupted by user")
		}
		return runErr
	}

	logger.Printf("Completed processing (%d records)", stats.Processed)

	if opts.stats {
		// Statistics go to stderr even under --quiet; they were
		// explicitly asked for.
		stats.Print(&commandLogger{})
	}

	return nil
}
