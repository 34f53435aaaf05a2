package cli

import (
	"fmt"
	"math"

	"github.com/spf13/cobra"

	"github.com/fairwaylabs/greenside/internal/playslike"
)

// NewPlaysLikeCommand creates the `playslike` command.
func NewPlaysLikeCommand(rootOpts *RootOptions) *cobra.Command {
	var (
		distance float64
		slope    float64
		wind     float64
		temp     float64
		altitude float64
		windCap  float64
	)

	cmd := &cobra.Command{
		Use:   "playslike",
		Short: "Compute the plays-like distance for a shot",
		Long: `Compute the effective distance of a shot under slope, wind and,
when supplied, temperature and altitude. Temperature and altitude
adjustments activate only when their flag is set.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			formatter := newFormatter(rootOpts, cmd)
			if distance <= 0 || math.IsNaN(distance) {
				return NewExitError(ExitCommandError, fmt.Sprintf("%s: --distance must be positive", ErrCodeBadInput))
			}

			overrides := playslike.Overrides{}
			if cmd.Flags().Changed("temp") {
				enabled := true
				overrides.TemperatureEnabled = &enabled
			}
			if cmd.Flags().Changed("alt") {
				enabled := true
				overrides.AltitudeEnabled = &enabled
			}
			if cmd.Flags().Changed("wind-cap") {
				overrides.WindCapPct = &windCap
			}
			cfg := playslike.Merge(overrides)

			cond := playslike.Conditions{
				SlopeM:    slope,
				WindMS:    wind,
				TempC:     temp,
				AltitudeM: altitude,
			}
			result := playslike.Compute(distance, cond, cfg)
			formatter.VerboseLog("config: %+v", cfg)

			if formatter.Format == "json" {
				return formatter.Success(result)
			}
			c := result.Components
			fmt.Fprintf(formatter.Writer, "plays like %.1f m (base %.1f)\n", result.DistanceEff, distance)
			fmt.Fprintf(formatter.Writer, "  slope %+.1f m\n", c.SlopeM)
			fmt.Fprintf(formatter.Writer, "  wind  %+.1f m\n", c.WindM)
			if cfg.TemperatureEnabled {
				fmt.Fprintf(formatter.Writer, "  temp  %+.1f m\n", c.TempM)
			}
			if cfg.AltitudeEnabled {
				fmt.Fprintf(formatter.Writer, "  alt   %+.1f m\n", c.AltM)
			}
			return nil
		},
	}

	cmd.Flags().Float64VarP(&distance, "distance", "d", 0, "target distance in meters")
	cmd.Flags().Float64Var(&slope, "slope", 0, "elevation change in meters, positive uphill")
	cmd.Flags().Float64Var(&wind, "wind", 0, "head/tail wind component in m/s, positive into the face")
	cmd.Flags().Float64Var(&temp, "temp", 0, "air temperature in degrees C (enables the temperature adjustment)")
	cmd.Flags().Float64Var(&altitude, "alt", 0, "course altitude in meters ASL (enables the altitude adjustment)")
	cmd.Flags().Float64Var(&windCap, "wind-cap", 0, "wind adjustment cap as a percentage of base distance")
	_ = cmd.MarkFlagRequired("distance")
	return cmd
}
