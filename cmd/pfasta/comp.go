package main

import (
	"os"

	"github.com/spf13/cobra"

	"protfasta/pkg/comp"
	"protfasta/pkg/fasta"
)

func newCompCmd() *cobra.Command {
	var frac bool
	cmd := &cobra.Command{
		Use:   "comp file.fasta",
		Short: "print the residue composition of each record",
		Args:  usageArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s_opts := &fasta.Options{Verbose: verbose, Log: logger}
			recs, err := fasta.ReadList(args[0], s_opts)
			if err != nil {
				return err
			}
			tbl := comp.Count(recs)
			format := "%6.0f"
			if frac {
				tbl.Frac()
				format = "%6.3f"
			}
			tbl.Fprint(os.Stdout, format)
			return nil
		},
	}
	cmd.Flags().BoolVar(&frac, "frac", false, "print fractions instead of counts")
	return cmd
}
