package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"protfasta/pkg/fasta"
)

// firstWord is the one header rewrite common enough to build in: keep
// the accession, drop the description.
func firstWord(h string) string {
	if f := strings.Fields(h); len(f) > 0 {
		return f[0]
	}
	return h
}

func newParseCmd() *cobra.Command {
	var (
		unique    bool
		dupRec    string
		dupSeq    string
		invalid   string
		firstWrd  bool
		asJSON    bool
		outPath   string
		wrapWidth int
	)
	cmd := &cobra.Command{
		Use:   "parse file.fasta",
		Short: "parse a fasta file, applying the duplicate and alphabet policies",
		Args:  usageArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s_opts := &fasta.Options{
				ExpectUniqueHeader: unique,
				DupRecordAction:    fasta.Action(dupRec),
				DupSeqAction:       fasta.Action(dupSeq),
				InvalidSeqAction:   fasta.Action(invalid),
				OutputPath:         outPath,
				Width:              wrapWidth,
				Verbose:            verbose,
				Log:                logger,
			}
			if firstWrd {
				s_opts.HeaderParser = firstWord
			}
			recs, err := fasta.ReadFasta(args[0], s_opts)
			if err != nil {
				return err
			}
			if asJSON {
				enc := json.NewEncoder(os.Stdout)
				enc.SetIndent("", "  ")
				return enc.Encode(recs)
			}
			for _, r := range recs {
				fmt.Printf("%-40s %6d\n", r.Cmmt, len(r.Seq))
			}
			fmt.Printf("%d records\n", len(recs))
			return nil
		},
	}
	cmd.Flags().BoolVar(&unique, "unique", true, "headers must be unique")
	cmd.Flags().StringVar(&dupRec, "dup-record", string(fasta.Fail), "ignore, fail or remove duplicate records")
	cmd.Flags().StringVar(&dupSeq, "dup-seq", string(fasta.Ignore), "ignore, fail or remove duplicate sequences")
	cmd.Flags().StringVar(&invalid, "invalid", string(fasta.Fail), "ignore, fail, remove or convert invalid residues")
	cmd.Flags().BoolVar(&firstWrd, "first-word", false, "keep only the first word of each header")
	cmd.Flags().BoolVar(&asJSON, "json", false, "dump records as json to stdout")
	cmd.Flags().StringVarP(&outPath, "out", "o", "", "write surviving records to this fasta file")
	cmd.Flags().IntVarP(&wrapWidth, "width", "w", fasta.DefaultWidth, "line width for -o output, 0 disables wrapping")
	return cmd
}
