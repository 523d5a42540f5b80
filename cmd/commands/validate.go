package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/findmyservice/findmyservice-cli/internal/cli"
	"github.com/findmyservice/findmyservice-cli/pkg/validate"
)

// ValidationResult is the structured output of the validate command
type ValidationResult struct {
	Field   string `json:"field" yaml:"field"`
	Value   string `json:"value" yaml:"value"`
	Valid   bool   `json:"valid" yaml:"valid"`
	Message string `json:"message,omitempty" yaml:"message,omitempty"`
}

// Text renders the result for text output
func (r ValidationResult) Text() string {
	if r.Valid {
		return fmt.Sprintf("✓ %s is a valid %s", r.Value, r.Field)
	}
	return fmt.Sprintf("✗ %s", r.Message)
}

// NewValidateCommand creates the validate command
func NewValidateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate <email|phone> <value>",
		Short: "Check a value with the editor's field rules",
		Long: `Check an email address or phone number with the same rules the
profile editor applies on save. Exits non-zero when the value is invalid.

Examples:
  findmyservice validate email jane@example.com
  findmyservice validate phone "+1 (555) 010-0199" -o json`,
		Args:      cobra.ExactArgs(2),
		ValidArgs: []string{validate.FieldEmail, validate.FieldPhone},
		RunE:      runValidate,
	}

	addOutputFlag(cmd)
	return cmd
}

func runValidate(cmd *cobra.Command, args []string) error {
	format, err := outputFormat(cmd)
	if err != nil {
		return err
	}

	result := ValidationResult{Field: args[0], Value: args[1]}
	if validate.Blank(result.Value) {
		return fmt.Errorf("no %s given", result.Field)
	}

	switch result.Field {
	case validate.FieldEmail:
		err = validate.Contact(result.Value, "")
	case validate.FieldPhone:
		err = validate.Contact("", result.Value)
	default:
		return fmt.Errorf("unknown field %q (must be: email or phone)", result.Field)
	}

	result.Valid = err == nil
	if err != nil {
		result.Message = err.Error()
	}

	if err := cli.OutputResults(cmd.OutOrStdout(), format, result); err != nil {
		return err
	}

	if !result.Valid {
		// The result already carries the message
		cmd.SilenceUsage = true
		cmd.SilenceErrors = true
		return err
	}
	return nil
}
