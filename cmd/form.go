package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/spf13/cobra"

	"onboardly/pkg/leadform"
)

const formHelp = `Commands:
  fill                   prompt for every field
  set <field> <value>    set name, email or phone
  show                   show the form
  submit                 validate and submit
  another                start a new response after a successful submit
  help                   show this help
  quit                   leave`

var fieldLabels = map[leadform.Field]string{
	leadform.FieldName:  "Full Name",
	leadform.FieldEmail: "Work Email",
	leadform.FieldPhone: "Phone Number",
}

var formCmd = &cobra.Command{
	Use:     "form",
	Aliases: []string{"i"},
	Short:   "Fill in and submit the lead form interactively",
	Args:    cobra.NoArgs,
	RunE:    runForm,
}

func init() {
	rootCmd.AddCommand(formCmd)
}

// lineReader is the part of readline the session needs
type lineReader interface {
	Readline() (string, error)
	SetPrompt(prompt string)
}

type formSession struct {
	form *leadform.Form
	rl   lineReader
	out  io.Writer
}

func runForm(cmd *cobra.Command, args []string) error {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "onboardly> ",
		InterruptPrompt: "^C",
		EOFPrompt:       "quit",
	})
	if err != nil {
		return err
	}
	defer rl.Close()

	s := &formSession{
		form: newForm(),
		rl:   rl,
		out:  rl.Stdout(),
	}
	return s.run(cmd.Context())
}

func (s *formSession) run(ctx context.Context) error {
	fmt.Fprintln(s.out, "Launch Your Vision Today. Enter your details to begin.")
	hintColor.Fprintln(s.out, `Type "fill" to enter your details or "help" for all commands.`)

	for {
		s.rl.SetPrompt(s.prompt())
		line, err := s.rl.Readline()
		if errors.Is(err, readline.ErrInterrupt) {
			if line == "" {
				return nil
			}
			continue
		}
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}

		if quit := s.execute(ctx, line); quit {
			return nil
		}
	}
}

func (s *formSession) prompt() string {
	switch s.form.Snapshot().State {
	case leadform.Submitted:
		return "onboardly (submitted)> "
	default:
		return "onboardly> "
	}
}

// execute handles one command line and reports whether the session should end
func (s *formSession) execute(ctx context.Context, line string) bool {
	cmd, rest, _ := strings.Cut(strings.TrimSpace(line), " ")
	switch strings.ToLower(cmd) {
	case "":
	case "quit", "exit":
		return true
	case "help":
		fmt.Fprintln(s.out, formHelp)
	case "show":
		s.show()
	case "set":
		field, value, _ := strings.Cut(strings.TrimSpace(rest), " ")
		s.set(leadform.Field(strings.ToLower(field)), value)
	case "fill":
		s.fill()
	case "submit":
		err := s.form.Submit(ctx)
		switch {
		case errors.Is(err, leadform.ErrAlreadySubmitted):
			hintColor.Fprintln(s.out, `Already submitted. Type "another" to submit another response.`)
		case errors.Is(err, leadform.ErrSubmitInProgress):
			hintColor.Fprintln(s.out, "Processing your request...")
		default:
			reportSubmit(s.out, err)
		}
	case "another":
		s.form.SubmitAnother()
		s.show()
	default:
		errorColor.Fprintf(s.out, "Unknown command %q\n", cmd)
		fmt.Fprintln(s.out, formHelp)
	}
	return false
}

func (s *formSession) set(field leadform.Field, value string) {
	if err := s.form.UpdateField(field, value); err != nil {
		errorColor.Fprintf(s.out, "%v (fields: name, email, phone)\n", err)
	}
}

func (s *formSession) fill() {
	for _, field := range leadform.Fields {
		s.rl.SetPrompt(fieldLabels[field] + " *: ")
		value, err := s.rl.Readline()
		if err != nil {
			return
		}
		s.set(field, value)
	}
}

func (s *formSession) show() {
	snap := s.form.Snapshot()
	if snap.State == leadform.Submitted {
		successColor.Fprintln(s.out, "Submitted.")
		return
	}
	fmt.Fprintf(s.out, "%-14s %s\n", fieldLabels[leadform.FieldName]+":", snap.Values.Name)
	fmt.Fprintf(s.out, "%-14s %s\n", fieldLabels[leadform.FieldEmail]+":", snap.Values.Email)
	fmt.Fprintf(s.out, "%-14s %s\n", fieldLabels[leadform.FieldPhone]+":", snap.Values.Phone)
	if snap.Error != "" {
		errorColor.Fprintln(s.out, snap.Error)
	}
}
