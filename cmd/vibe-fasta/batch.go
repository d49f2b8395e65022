package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/inodb/vibe-fasta/internal/duckdb"
	"github.com/inodb/vibe-fasta/internal/extract"
	"github.com/inodb/vibe-fasta/internal/output"
	"github.com/inodb/vibe-fasta/internal/region"
)

func newBatchCmd() *cobra.Command {
	var (
		outputFile string
		duckdbPath string
	)

	cmd := &cobra.Command{
		Use:   "batch <fasta> <regions-file>",
		Short: "Extract every region listed in a file",
		Long: `Extract every region listed in a whitespace-separated region file.

Each line is "start end" or "name start end" (1-based, inclusive). Blank
lines and lines starting with '#' are ignored. Use '-' to read regions
from stdin. Regions that cannot be extracted are reported and skipped.`,
		Example: `  vibe-fasta batch chr1.fa exons.tsv
  vibe-fasta batch -f tab -o exons.out.tsv chr1.fa exons.tsv
  vibe-fasta batch --duckdb results.duckdb chr1.fa exons.tsv`,
		Args: exactArgs(2),
		PreRunE: func(cmd *cobra.Command, args []string) error {
			if err := bindOutputFlags(cmd.Flags()); err != nil {
				return err
			}
			return viper.BindPFlag("batch.workers", cmd.Flags().Lookup("workers"))
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBatch(cmd.OutOrStdout(), args[0], args[1], outputFile, duckdbPath)
		},
	}

	addOutputFlags(cmd.Flags())
	cmd.Flags().StringVarP(&outputFile, "output", "o", "", "Output file (default: stdout)")
	cmd.Flags().StringVar(&duckdbPath, "duckdb", "", "Append results to this DuckDB database instead of writing text")
	cmd.Flags().IntP("workers", "j", 0, "Number of parallel workers (0: number of CPUs)")

	return cmd
}

func runBatch(stdout io.Writer, fastaPath, regionsPath, outputFile, duckdbPath string) (retErr error) {
	caps := viper.GetBool("caps")

	e, err := extract.New(fastaPath)
	if err != nil {
		return err
	}
	e.SetCaps(caps)
	e.SetWorkers(viper.GetInt("batch.workers"))
	e.SetLogger(logger)

	parser, err := region.NewParser(regionsPath)
	if err != nil {
		return err
	}
	defer parser.Close()

	var w extract.SequenceWriter
	if duckdbPath != "" {
		store, err := duckdb.Open(duckdbPath)
		if err != nil {
			return err
		}
		defer store.Close()

		fp, err := duckdb.StatFile(fastaPath)
		if err != nil {
			return fmt.Errorf("stat FASTA file: %w", err)
		}
		// Replace rows from an earlier run on the same FASTA.
		if err := store.ClearSource(fp.Path); err != nil {
			return fmt.Errorf("clear previous results: %w", err)
		}
		w = store.NewSequenceWriter(fp, caps)
	} else {
		out, closeOut, err := openOutput(stdout, outputFile)
		if err != nil {
			return err
		}
		defer closeOutput(&retErr, closeOut)

		ow, err := output.NewWriter(viper.GetString("output.format"), out,
			output.SourceName(e.Header()), viper.GetInt("output.width"))
		if err != nil {
			return fmt.Errorf("%w: %w", errUsage, err)
		}
		if err := ow.WriteHeader(); err != nil {
			return fmt.Errorf("write header: %w", err)
		}
		w = ow
	}

	stats, err := e.ExtractAll(parser, w)
	if err != nil {
		return err
	}

	logger.Info("batch complete",
		zap.String("fasta", fastaPath),
		zap.Int("lines", parser.LineNumber()),
		zap.Int("regions", stats.Regions),
		zap.Int("failed", stats.Failed),
		zap.Int64("bases", stats.Bases))

	if stats.Failed > 0 {
		return fmt.Errorf("%d of %d regions failed", stats.Failed, stats.Regions)
	}
	return nil
}
