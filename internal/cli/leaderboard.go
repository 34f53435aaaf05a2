package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fairwaylabs/greenside/internal/leaderboard"
)

// NamesFile is the optional YAML mapping of user ids to display names.
type NamesFile struct {
	Names map[string]string `yaml:"names"`
}

// NewEventCommand creates the `event` command group.
func NewEventCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "event",
		Short: "Aggregate event score feeds",
	}
	cmd.AddCommand(newEventLeaderboardCommand(rootOpts))
	return cmd
}

func newEventLeaderboardCommand(rootOpts *RootOptions) *cobra.Command {
	var (
		namesPath string
		scoring   string
		holes     int
	)

	cmd := &cobra.Command{
		Use:   "leaderboard <rows.json>",
		Short: "Build a ranked leaderboard from raw score rows",
		Long: `Aggregate a JSON array of per-hole score rows into a ranked
leaderboard. Scoring is stroke (net ascending) or stableford
(points descending), with deterministic tie-breaks.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			formatter := newFormatter(rootOpts, cmd)

			format := leaderboard.Format(scoring)
			if format != leaderboard.FormatStroke && format != leaderboard.FormatStableford {
				return NewExitError(ExitCommandError, fmt.Sprintf("%s: --scoring must be stroke or stableford", ErrCodeBadInput))
			}

			data, err := ReadInput(args[0])
			if err != nil {
				return err
			}
			var rows []leaderboard.ScoreRow
			if err := json.Unmarshal(data, &rows); err != nil {
				return WrapExitError(ExitCommandError, fmt.Sprintf("%s: parsing %s", ErrCodeBadInput, args[0]), err)
			}

			names := map[string]string{}
			if namesPath != "" {
				var nf NamesFile
				if err := LoadYAML(namesPath, &nf); err != nil {
					return err
				}
				names = nf.Names
			}
			formatter.VerboseLog("aggregating %d row(s)", len(rows))

			entries := leaderboard.Build(rows, names, leaderboard.Options{
				Format:     format,
				TotalHoles: holes,
			})
			if formatter.Format == "json" {
				return formatter.Success(entries)
			}

			for i, e := range entries {
				if format == leaderboard.FormatStableford {
					fmt.Fprintf(formatter.Writer, "%2d  %-20s %4.0f pts  gross %3.0f\n", i+1, e.Name, e.Stableford, e.Gross)
				} else {
					fmt.Fprintf(formatter.Writer, "%2d  %-20s net %3.0f  gross %3.0f\n", i+1, e.Name, e.Net, e.Gross)
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&namesPath, "names", "", "YAML file mapping user ids to display names")
	cmd.Flags().StringVar(&scoring, "scoring", "stroke", "scoring format (stroke|stableford)")
	cmd.Flags().IntVar(&holes, "holes", 18, "round length used for handicap net fallback")
	return cmd
}
