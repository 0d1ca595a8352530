package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"protfasta/pkg/numrec"
)

func newCountCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "count file.fasta",
		Short: "count records without parsing (uncompressed files only)",
		Args:  usageArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := numrec.Count(args[0])
			if err != nil {
				return err
			}
			fmt.Println(n)
			return nil
		},
	}
}
