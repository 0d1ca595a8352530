// pfasta is the command line front end for the protfasta packages.
// Subcommands: parse, write, count, comp.

package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"protfasta/pkg/common"
)

// version can be overridden at build time with
// -ldflags "-X main.version=..."
var version = "0.1.0"

var (
	verbose bool
	logger  *log.Logger
)

// errUsage marks errors the caller made on the command line, so main
// can exit with the usage status rather than a plain failure.
var errUsage = errors.New("bad usage")

// usageArgs is cobra.ExactArgs, but the error it gives back wraps
// errUsage.
func usageArgs(n int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) != n {
			return fmt.Errorf("%w: %s wants %d arg(s), got %d", errUsage, cmd.Name(), n, len(args))
		}
		return nil
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "pfasta",
		Short:         "read, check and rewrite protein fasta files",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logger = log.New(os.Stderr)
			if verbose {
				logger.SetLevel(log.DebugLevel)
			} else {
				logger.SetLevel(log.WarnLevel)
			}
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "progress notices while working")
	root.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return fmt.Errorf("%w: %v", errUsage, err)
	})
	root.AddCommand(newParseCmd(), newWriteCmd(), newCountCmd(), newCompCmd(), newRandCmd())
	return root
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		log.New(os.Stderr).Error(err.Error())
		if errors.Is(err, errUsage) {
			os.Exit(common.ExitUsageError)
		}
		os.Exit(common.ExitFailure)
	}
	os.Exit(common.ExitSuccess)
}
