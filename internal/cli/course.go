package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/fairwaylabs/greenside/internal/holemodel"
)

// ValidationIssue is one reported problem in a hole-model document.
type ValidationIssue struct {
	Path    string `json:"path,omitempty"`
	Message string `json:"message"`
}

// ValidateResult holds hole-model validation results.
type ValidateResult struct {
	Valid  bool              `json:"valid"`
	Errors []ValidationIssue `json:"errors,omitempty"`
}

// SimplifyResult summarizes a simplification run.
type SimplifyResult struct {
	ID           string  `json:"id"`
	Tolerance    float64 `json:"tolerance"`
	PointsBefore int     `json:"pointsBefore"`
	PointsAfter  int     `json:"pointsAfter"`
	Output       string  `json:"output,omitempty"`
}

// NewCourseCommand creates the `course` command group.
func NewCourseCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "course",
		Short: "Validate and simplify hole-model documents",
	}
	cmd.AddCommand(newCourseValidateCommand(rootOpts))
	cmd.AddCommand(newCourseSimplifyCommand(rootOpts))
	return cmd
}

func newCourseValidateCommand(rootOpts *RootOptions) *cobra.Command {
	var withSchema bool

	cmd := &cobra.Command{
		Use:   "validate <file.json>",
		Short: "Validate a hole-model document",
		Long: `Validate a hole-model JSON document with the kernel codec.

With --schema, the document is additionally checked against the CUE
structural schema first, which reports every shape problem at once
instead of stopping at the first.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			formatter := newFormatter(rootOpts, cmd)
			data, err := ReadInput(args[0])
			if err != nil {
				return err
			}

			var issues []ValidationIssue
			if withSchema {
				issues = schemaIssues(args[0], data)
				formatter.VerboseLog("schema check: %d issue(s)", len(issues))
			}
			if _, err := holemodel.Parse(data); err != nil {
				issues = append(issues, codecIssue(err))
			}

			if len(issues) > 0 {
				return outputValidationIssues(formatter, issues)
			}
			return outputValidateSuccess(formatter)
		},
	}

	cmd.Flags().BoolVar(&withSchema, "schema", false, "run the CUE structural schema check first")
	return cmd
}

func codecIssue(err error) ValidationIssue {
	var ve *holemodel.ValidationError
	if errors.As(err, &ve) {
		return ValidationIssue{Path: ve.Path, Message: ve.Message}
	}
	return ValidationIssue{Message: err.Error()}
}

func outputValidateSuccess(formatter *OutputFormatter) error {
	if formatter.Format == "json" {
		return formatter.Success(ValidateResult{Valid: true})
	}
	fmt.Fprintln(formatter.Writer, "✓ hole model valid")
	return nil
}

func outputValidationIssues(formatter *OutputFormatter, issues []ValidationIssue) error {
	if formatter.Format == "json" {
		if err := formatter.Success(ValidateResult{Valid: false, Errors: issues}); err != nil {
			return err
		}
		return NewExitError(ExitFailure, fmt.Sprintf("validation failed with %d issue(s)", len(issues)))
	}

	fmt.Fprintln(formatter.Writer, "✗ hole model invalid")
	for _, issue := range issues {
		if issue.Path != "" {
			fmt.Fprintf(formatter.Writer, "  %s: %s\n", issue.Path, issue.Message)
		} else {
			fmt.Fprintf(formatter.Writer, "  %s\n", issue.Message)
		}
	}
	return NewExitError(ExitFailure, fmt.Sprintf("validation failed with %d issue(s)", len(issues)))
}

func newCourseSimplifyCommand(rootOpts *RootOptions) *cobra.Command {
	var tolerance float64
	var outPath string

	cmd := &cobra.Command{
		Use:           "simplify <file.json>",
		Short:         "Reduce hole-model polygon detail",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			formatter := newFormatter(rootOpts, cmd)
			data, err := ReadInput(args[0])
			if err != nil {
				return err
			}
			model, err := holemodel.Parse(data)
			if err != nil {
				return outputValidationIssues(formatter, []ValidationIssue{codecIssue(err)})
			}

			before := countPoints(model)
			simplified := holemodel.SimplifyModel(model, tolerance)
			after := countPoints(simplified)
			formatter.VerboseLog("simplified %s: %d -> %d points", model.ID, before, after)

			out, err := holemodel.Serialize(simplified)
			if err != nil {
				return WrapExitError(ExitCommandError, "serializing model", err)
			}
			if outPath != "" {
				if err := os.WriteFile(outPath, out, 0o644); err != nil {
					return WrapExitError(ExitCommandError, fmt.Sprintf("%s: writing %s", ErrCodeWriteError, outPath), err)
				}
				return formatter.Success(SimplifyResult{
					ID: model.ID, Tolerance: tolerance,
					PointsBefore: before, PointsAfter: after, Output: outPath,
				})
			}
			if formatter.Format == "json" {
				return formatter.Success(SimplifyResult{
					ID: model.ID, Tolerance: tolerance,
					PointsBefore: before, PointsAfter: after,
				})
			}
			fmt.Fprintln(formatter.Writer, string(out))
			return nil
		},
	}

	cmd.Flags().Float64VarP(&tolerance, "tolerance", "t", 0.00001, "simplification tolerance in coordinate units")
	cmd.Flags().StringVarP(&outPath, "out", "o", "", "write the simplified model to a file")
	return cmd
}

func countPoints(m *holemodel.HoleModel) int {
	n := 0
	for _, ring := range m.Fairways {
		n += len(ring)
	}
	for _, ring := range m.Greens {
		n += len(ring)
	}
	for _, ring := range m.Bunkers {
		n += len(ring)
	}
	return n
}
