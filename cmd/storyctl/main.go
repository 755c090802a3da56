// storyctl composes sight-word stories from the command line.
//
// Usage:
//
//	storyctl compose --words=the,dog,park [--name=Mia] [--seed=7] [--format=text|json|yaml]
//	storyctl scenes [--phase=3] [--format=text|json|yaml]
//	storyctl normalize "a elephant is big"
package main

import (
	"fmt"
	"os"

	"sightstory/internal/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// version is set at build time via -ldflags.
var version = "dev"

type rootOptions struct {
	logLevel string
	log      *zap.Logger
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{log: zap.NewNop()}
	root := &cobra.Command{
		Use:   "storyctl",
		Short: "Compose short sight-word stories",
		Long:  "storyctl builds a ten-phase \"day in the life\" story that covers as many\nof the given sight words as the scene library allows.",
		CompletionOptions: cobra.CompletionOptions{
			HiddenDefaultCmd: true,
		},
		SilenceUsage: true,
		Version:      version,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if opts.logLevel == "" {
				return nil
			}
			l, err := logger.New(logger.Options{
				Service:    "storyctl",
				Env:        "development",
				Level:      opts.logLevel,
				OutputPath: "stderr",
			})
			if err != nil {
				return err
			}
			opts.log = l
			return nil
		},
	}
	root.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "Log to stderr at this level (debug, info, warn, error)")

	root.AddCommand(newComposeCmd(opts))
	root.AddCommand(newScenesCmd(opts))
	root.AddCommand(newNormalizeCmd())
	return root
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
