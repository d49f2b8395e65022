package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/inodb/vibe-fasta/internal/fasta"
	"github.com/inodb/vibe-fasta/internal/output"
	"github.com/inodb/vibe-fasta/internal/region"
)

func newGetCmd() *cobra.Command {
	var outputFile string

	cmd := &cobra.Command{
		Use:   "get <fasta> <region>...",
		Short: "Extract one or more regions",
		Long: `Extract 1-based inclusive regions from a FASTA file.

A region is start-end, name:start-end, or a single position.`,
		Example: `  vibe-fasta get chr1.fa 1-60
  vibe-fasta get --caps -f raw chr1.fa 1000-1100 2,000-2,050
  vibe-fasta get -f tab -o out.tsv chr1.fa exon1:101-250`,
		Args: minArgs(2),
		PreRunE: func(cmd *cobra.Command, args []string) error {
			return bindOutputFlags(cmd.Flags())
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGet(cmd.OutOrStdout(), args[0], args[1:], outputFile)
		},
	}

	addOutputFlags(cmd.Flags())
	cmd.Flags().StringVarP(&outputFile, "output", "o", "", "Output file (default: stdout)")

	return cmd
}

func runGet(stdout io.Writer, fastaPath string, regionArgs []string, outputFile string) (retErr error) {
	regions := make([]region.Region, 0, len(regionArgs))
	for _, arg := range regionArgs {
		r, err := region.Parse(arg)
		if err != nil {
			return fmt.Errorf("%w: %w", errUsage, err)
		}
		regions = append(regions, r)
	}

	h, err := fasta.Open(fastaPath)
	if err != nil {
		return err
	}
	defer h.Close()
	h.SetLogger(logger)

	out, closeOut, err := openOutput(stdout, outputFile)
	if err != nil {
		return err
	}
	defer closeOutput(&retErr, closeOut)

	w, err := output.NewWriter(viper.GetString("output.format"), out,
		output.SourceName(h.Header()), viper.GetInt("output.width"))
	if err != nil {
		return fmt.Errorf("%w: %w", errUsage, err)
	}
	if err := w.WriteHeader(); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	caps := viper.GetBool("caps")
	for _, r := range regions {
		seq, err := h.GetSequence(r.Start, r.End, caps)
		if err != nil {
			return fmt.Errorf("region %s: %w", r, err)
		}
		if err := w.Write(r, seq); err != nil {
			return fmt.Errorf("write sequence: %w", err)
		}
	}

	return w.Flush()
}

// addOutputFlags registers the flags shared by get and batch.
func addOutputFlags(fs *pflag.FlagSet) {
	fs.Bool("caps", false, "Uppercase extracted sequences")
	fs.StringP("format", "f", output.FormatFASTA, "Output format: fasta, tab, raw")
	fs.IntP("width", "w", output.DefaultWidth, "Line width for FASTA output (0: no wrapping)")
}

// bindOutputFlags binds the shared flags to their config keys. Binding
// happens per invocation so the running command's flags win.
func bindOutputFlags(fs *pflag.FlagSet) error {
	for key, name := range map[string]string{
		"caps":          "caps",
		"output.format": "format",
		"output.width":  "width",
	} {
		if err := viper.BindPFlag(key, fs.Lookup(name)); err != nil {
			return fmt.Errorf("bind flag %s: %w", name, err)
		}
	}
	return nil
}

// openOutput returns stdout, or the created file when path is set.
func openOutput(stdout io.Writer, path string) (io.Writer, func() error, error) {
	if path == "" {
		return stdout, func() error { return nil }, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, fmt.Errorf("create output file: %w", err)
	}
	return f, f.Close, nil
}

// closeOutput runs closeFn and stores its error in *errp unless an
// earlier error is already there.
func closeOutput(errp *error, closeFn func() error) {
	if cerr := closeFn(); cerr != nil && *errp == nil {
		*errp = fmt.Errorf("close output file: %w", cerr)
	}
}

// minArgs is cobra.MinimumNArgs reporting a usage error.
func minArgs(n int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := cobra.MinimumNArgs(n)(cmd, args); err != nil {
			return fmt.Errorf("%w: %w", errUsage, err)
		}
		return nil
	}
}

// exactArgs is cobra.ExactArgs reporting a usage error.
func exactArgs(n int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := cobra.ExactArgs(n)(cmd, args); err != nil {
			return fmt.Errorf("%w: %w", errUsage, err)
		}
		return nil
	}
}
