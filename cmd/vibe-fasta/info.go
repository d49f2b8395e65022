package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/inodb/vibe-fasta/internal/fasta"
)

func newInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info <fasta>",
		Short: "Show the header and line layout of a FASTA file",
		Args:  exactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInfo(cmd.OutOrStdout(), args[0])
		},
	}
}

func runInfo(w io.Writer, path string) error {
	h, err := fasta.Open(path)
	if err != nil {
		return err
	}
	defer h.Close()

	fmt.Fprintf(w, "File:\t%s\n", h.Path())
	fmt.Fprintf(w, "Header:\t%s\n", h.Header())
	fmt.Fprintf(w, "Header bytes:\t%d\n", h.HeaderLength())
	fmt.Fprintf(w, "Line width:\t%d\n", h.LineWidth())
	return nil
}
