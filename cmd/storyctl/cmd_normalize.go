package main

import (
	"bufio"
	"fmt"
	"strings"

	"sightstory/internal/story"

	"github.com/spf13/cobra"
)

func newNormalizeCmd() *cobra.Command {
	var seed uint64
	cmd := &cobra.Command{
		Use:   "normalize [sentence...]",
		Short: "Run sentences through the grammar normalizer",
		Long:  "normalize fixes articles, determiners, agreement and capitalization.\nWith no arguments it reads one sentence per line from stdin.",
		RunE: func(cmd *cobra.Command, args []string) error {
			var rng story.Randomizer
			if seed != 0 {
				rng = story.NewSeededRandomizer(seed)
			} else {
				rng = story.DefaultRandomizer()
			}
			n := story.NewNormalizer(rng)
			out := cmd.OutOrStdout()

			if len(args) > 0 {
				fmt.Fprintln(out, n.Normalize(strings.Join(args, " ")))
				return nil
			}
			sc := bufio.NewScanner(cmd.InOrStdin())
			for sc.Scan() {
				fmt.Fprintln(out, n.Normalize(sc.Text()))
			}
			return sc.Err()
		},
	}
	cmd.Flags().Uint64Var(&seed, "seed", 0, "Seed for name substitution (0 = random)")
	return cmd
}
