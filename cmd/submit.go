package cmd

import (
	"errors"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"onboardly/pkg/clients/intake"
	"onboardly/pkg/leadform"
)

var (
	successColor = color.New(color.FgHiGreen, color.Bold)
	errorColor   = color.New(color.FgHiRed)
	hintColor    = color.New(color.FgHiBlack)
)

var submitCmd = &cobra.Command{
	Use:   "submit",
	Short: "Submit one lead through the form workflow",
	Long: `Fill in the lead form from flags and submit it once to the intake endpoint.

Example:
  onboardly submit --name "Alex Johnson" --email alex@startup.com --phone "(123) 456-7890"`,
	Args:          cobra.NoArgs,
	SilenceErrors: true,
	RunE:          runSubmit,
}

func init() {
	rootCmd.AddCommand(submitCmd)

	submitCmd.Flags().String("name", "", "full name")
	submitCmd.Flags().String("email", "", "work email")
	submitCmd.Flags().String("phone", "", "phone number")
}

func newForm() *leadform.Form {
	return leadform.New(intake.NewClient(cfg.Endpoint, appLogger), appLogger)
}

func runSubmit(cmd *cobra.Command, args []string) error {
	form := newForm()
	for _, field := range leadform.Fields {
		value, err := cmd.Flags().GetString(string(field))
		if err != nil {
			return err
		}
		if err := form.UpdateField(field, value); err != nil {
			return err
		}
	}

	err := form.Submit(cmd.Context())
	reportSubmit(cmd.OutOrStdout(), err)
	return err
}

// reportSubmit prints the outcome of a submit attempt the way the landing page shows it
func reportSubmit(out io.Writer, err error) {
	var vErr *leadform.ValidationError
	var subErr *leadform.SubmissionError
	switch {
	case err == nil:
		successColor.Fprintln(out, "Success! We're on it.")
		fmt.Fprintln(out, "Our team will reach out within 24 hours to discuss your project and next steps.")
	case errors.As(err, &vErr), errors.As(err, &subErr):
		errorColor.Fprintln(out, err.Error())
	default:
		errorColor.Fprintf(out, "Error: %v\n", err)
	}
}
