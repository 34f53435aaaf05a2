package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fairwaylabs/greenside/internal/joincode"
)

// CodeResult is the JSON payload for `code new`.
type CodeResult struct {
	Codes []string `json:"codes"`
}

// CheckResult is the JSON payload for `code check`.
type CheckResult struct {
	Code  string `json:"code"`
	Valid bool   `json:"valid"`
}

// NewCodeCommand creates the `code` command group.
func NewCodeCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "code",
		Short: "Generate and check event join codes",
	}
	cmd.AddCommand(newCodeNewCommand(rootOpts))
	cmd.AddCommand(newCodeCheckCommand(rootOpts))
	return cmd
}

func newCodeNewCommand(rootOpts *RootOptions) *cobra.Command {
	var count int

	cmd := &cobra.Command{
		Use:           "new",
		Short:         "Generate fresh join codes",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			formatter := newFormatter(rootOpts, cmd)
			if count < 1 {
				return NewExitError(ExitCommandError, fmt.Sprintf("%s: --count must be at least 1", ErrCodeBadInput))
			}
			codes := make([]string, count)
			for i := range codes {
				codes[i] = joincode.Generate()
			}
			if formatter.Format == "json" {
				return formatter.Success(CodeResult{Codes: codes})
			}
			for _, c := range codes {
				fmt.Fprintln(formatter.Writer, c)
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&count, "count", "n", 1, "number of codes to generate")
	return cmd
}

func newCodeCheckCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "check <code>...",
		Short:         "Validate join codes",
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			formatter := newFormatter(rootOpts, cmd)
			results := make([]CheckResult, len(args))
			invalid := 0
			for i, code := range args {
				ok := joincode.Validate(code)
				results[i] = CheckResult{Code: code, Valid: ok}
				if !ok {
					invalid++
				}
			}
			if formatter.Format == "json" {
				if err := formatter.Success(results); err != nil {
					return err
				}
			} else {
				for _, r := range results {
					mark := "ok"
					if !r.Valid {
						mark = "invalid"
					}
					fmt.Fprintf(formatter.Writer, "%s  %s\n", r.Code, mark)
				}
			}
			if invalid > 0 {
				return NewExitError(ExitFailure, fmt.Sprintf("%d of %d code(s) invalid", invalid, len(args)))
			}
			return nil
		},
	}
	return cmd
}
