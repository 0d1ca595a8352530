package main

import (
	"os"

	"github.com/spf13/cobra"

	"protfasta/pkg/fasta"
)

func newWriteCmd() *cobra.Command {
	var (
		outPath   string
		wrapWidth int
	)
	cmd := &cobra.Command{
		Use:   "write file.fasta",
		Short: "rewrite a fasta file with a chosen line width",
		Args:  usageArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			// A plain rewrite passes duplicates through untouched.
			s_opts := &fasta.Options{Verbose: verbose, Log: logger}
			recs, err := fasta.ReadList(args[0], s_opts)
			if err != nil {
				return err
			}
			if outPath == "" {
				return fasta.WriteTo(os.Stdout, recs, wrapWidth)
			}
			return fasta.WriteFile(outPath, recs, wrapWidth)
		},
	}
	cmd.Flags().StringVarP(&outPath, "out", "o", "", "output file, default stdout")
	cmd.Flags().IntVarP(&wrapWidth, "width", "w", fasta.DefaultWidth, "line width, 0 disables wrapping")
	return cmd
}
