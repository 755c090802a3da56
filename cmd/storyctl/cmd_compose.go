package main

import (
	"fmt"
	"io"
	"strings"

	"sightstory/internal/story"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type composeFlags struct {
	words  []string
	name   string
	seed   uint64
	format string
}

func newComposeCmd(opts *rootOptions) *cobra.Command {
	var f composeFlags
	cmd := &cobra.Command{
		Use:   "compose [word...]",
		Short: "Compose a story around target words",
		Example: "  storyctl compose --words=the,dog,park --name=Mia\n" +
			"  storyctl compose run jump play --seed=7 --format=json",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCompose(cmd, opts, f, args)
		},
	}
	fl := cmd.Flags()
	fl.StringSliceVarP(&f.words, "words", "w", nil, "Comma separated target words")
	fl.StringVarP(&f.name, "name", "n", "", "Protagonist name (default "+story.DefaultProtagonist+")")
	fl.Uint64Var(&f.seed, "seed", 0, "Seed for reproducible output (0 = random)")
	fl.StringVarP(&f.format, "format", "o", formatText, "Output format: text, json or yaml")
	return cmd
}

func runCompose(cmd *cobra.Command, opts *rootOptions, f composeFlags, args []string) error {
	if err := validFormat(f.format); err != nil {
		return err
	}

	var rng story.Randomizer
	if f.seed != 0 {
		rng = story.NewSeededRandomizer(f.seed)
	}
	words := append(append([]string(nil), f.words...), args...)
	result := story.NewComposer(story.Default(), rng).Compose(words, f.name)

	opts.log.Debug("Story composed",
		zap.Strings("targets", words),
		zap.Strings("scenes", result.ScenesUsed),
		zap.Int("coverage", result.CoveragePercent),
	)

	if f.format != formatText {
		return writeStructured(cmd.OutOrStdout(), f.format, result)
	}
	writeStoryText(cmd.OutOrStdout(), result)
	return nil
}

func writeStoryText(w io.Writer, s story.Story) {
	fmt.Fprintf(w, "%s\n\n", s.Title)
	for _, sentence := range s.Sentences {
		fmt.Fprintln(w, sentence)
	}
	fmt.Fprintf(w, "\nCoverage: %d%% (%d of %d words)\n", s.CoveragePercent, len(s.UsedWords), s.TotalTargetWords)
	if len(s.UsedWords) > 0 {
		fmt.Fprintf(w, "Used:     %s\n", strings.Join(s.UsedWords, ", "))
	}
	fmt.Fprintf(w, "Scenes:   %s\n", strings.Join(s.ScenesUsed, ", "))
}
