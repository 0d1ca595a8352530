package main

import (
	"os"

	"github.com/spf13/cobra"

	"protfasta/pkg/randrec"
)

func newRandCmd() *cobra.Command {
	args := &randrec.Args{}
	var outPath string
	cmd := &cobra.Command{
		Use:   "rand",
		Short: "write random protein records, for testing",
		Args:  usageArgs(0),
		RunE: func(cmd *cobra.Command, _ []string) error {
			args.Wrtr = os.Stdout
			if outPath != "" {
				fp, err := os.Create(outPath)
				if err != nil {
					return err
				}
				defer fp.Close()
				args.Wrtr = fp
			}
			return randrec.Write(args)
		},
	}
	cmd.Flags().IntVarP(&args.Nseq, "nseq", "n", 10, "number of sequences")
	cmd.Flags().IntVarP(&args.Len, "len", "l", 100, "length of each sequence")
	cmd.Flags().Int64VarP(&args.Iseed, "seed", "r", 1637, "random number seed")
	cmd.Flags().BoolVar(&args.Messy, "messy", false, "ragged lines and blank lines")
	cmd.Flags().StringVarP(&outPath, "out", "o", "", "output file, default stdout")
	return cmd
}
