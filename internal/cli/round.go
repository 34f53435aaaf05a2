package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fairwaylabs/greenside/internal/whs"
)

// RoundCard is the YAML input for `round net`: the player's handicap
// setup plus the holes as played.
type RoundCard struct {
	Setup whs.Setup       `yaml:"setup"`
	Holes []whs.HoleScore `yaml:"holes"`
}

// NewRoundCommand creates the `round` command group.
func NewRoundCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "round",
		Short: "Score a round under the World Handicap System",
	}
	cmd.AddCommand(newRoundNetCommand(rootOpts))
	return cmd
}

func newRoundNetCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "net <round.yaml>",
		Short: "Compute net scores and Stableford points for a round",
		Long: `Compute course handicap, playing handicap, per-hole stroke
allocation, net scores and Stableford points from a YAML round card.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			formatter := newFormatter(rootOpts, cmd)

			var card RoundCard
			if err := LoadYAML(args[0], &card); err != nil {
				return err
			}
			if len(card.Holes) == 0 {
				return NewExitError(ExitCommandError, fmt.Sprintf("%s: round card has no holes", ErrCodeBadInput))
			}
			formatter.VerboseLog("scoring %d hole(s) off %s tees", len(card.Holes), card.Setup.Tee.Name)

			result := whs.ComputeNetForRound(card.Setup, card.Holes)
			if formatter.Format == "json" {
				return formatter.Success(result)
			}

			fmt.Fprintf(formatter.Writer, "course handicap %d, playing handicap %d\n", result.CourseHandicap, result.PlayingHandicap)
			for i, h := range result.Holes {
				fmt.Fprintf(formatter.Writer, "hole %2d  gross %d  strokes %+d  net %d  pts %d\n",
					h.Hole, h.Gross, result.StrokesPerHole[i], h.Net, h.Points)
			}
			fmt.Fprintf(formatter.Writer, "total net %d, %d pts\n", result.TotalNet, result.TotalPoints)
			return nil
		},
	}
	return cmd
}
