package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"sightstory/internal/story"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type sceneView struct {
	ID        string   `json:"id" yaml:"id"`
	Phase     int      `json:"phase" yaml:"phase"`
	PhaseName string   `json:"phase_name" yaml:"phase_name"`
	Setting   string   `json:"setting" yaml:"setting"`
	Words     []string `json:"words" yaml:"words"`
}

func newScenesCmd(opts *rootOptions) *cobra.Command {
	var (
		phase  int
		format string
	)
	cmd := &cobra.Command{
		Use:   "scenes",
		Short: "List the scene library",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := validFormat(format); err != nil {
				return err
			}
			lib := story.Default()
			scenes := lib.Scenes()
			if cmd.Flags().Changed("phase") {
				if !story.Phase(phase).Valid() {
					return fmt.Errorf("phase must be between 1 and %d", len(story.Phases()))
				}
				scenes = lib.InPhase(story.Phase(phase))
			}
			opts.log.Debug("Listing scenes", zap.Int("count", len(scenes)))

			views := make([]sceneView, 0, len(scenes))
			for _, sc := range scenes {
				views = append(views, sceneView{
					ID:        sc.ID,
					Phase:     int(sc.Phase),
					PhaseName: sc.Phase.String(),
					Setting:   string(sc.Setting),
					Words:     sc.Words,
				})
			}
			if format != formatText {
				return writeStructured(cmd.OutOrStdout(), format, views)
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(tw, "PHASE\tID\tSETTING\tWORDS")
			for _, v := range views {
				fmt.Fprintf(tw, "%d %s\t%s\t%s\t%s\n", v.Phase, v.PhaseName, v.ID, v.Setting, strings.Join(v.Words, ","))
			}
			return tw.Flush()
		},
	}
	cmd.Flags().IntVarP(&phase, "phase", "p", 0, "Only list scenes of this phase (1-10)")
	cmd.Flags().StringVarP(&format, "format", "o", formatText, "Output format: text, json or yaml")
	return cmd
}
