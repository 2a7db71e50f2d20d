package main

import (
	"fmt"
	"io"

	"github.com/MKhiriev/go-pass-vault/internal/crypto"
	"github.com/MKhiriev/go-pass-vault/models"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

func newGenerateCmd() *cobra.Command {
	policy := models.DefaultPasswordPolicy()
	var (
		noUpper, noLower, noNumbers, noSymbols bool
		count                                  int
		quiet                                  bool
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate random passwords locally",
		Long:  "Generates passwords with a cryptographically secure source. Nothing is sent to the server.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			policy.Uppercase = !noUpper
			policy.Lowercase = !noLower
			policy.Numbers = !noNumbers
			policy.Symbols = !noSymbols

			if count < 1 {
				return fmt.Errorf("count must be positive")
			}

			transform := crypto.NewCredentialTransform()
			out := cmd.OutOrStdout()
			for range count {
				password, err := transform.GeneratePassword(policy)
				if err != nil {
					return err
				}
				if quiet {
					fmt.Fprintln(out, password)
					continue
				}
				fmt.Fprintf(out, "%s  %s\n", password, colorStrength(transform.ScorePasswordStrength(password)))
			}
			return nil
		},
	}

	f := cmd.Flags()
	f.IntVarP(&policy.Length, "length", "l", policy.Length, "password length (8-64)")
	f.BoolVar(&noUpper, "no-upper", false, "exclude uppercase letters")
	f.BoolVar(&noLower, "no-lower", false, "exclude lowercase letters")
	f.BoolVar(&noNumbers, "no-numbers", false, "exclude digits")
	f.BoolVar(&noSymbols, "no-symbols", false, "exclude symbols")
	f.IntVarP(&count, "count", "n", 1, "number of passwords")
	f.BoolVarP(&quiet, "quiet", "q", false, "print passwords only")

	return cmd
}

func colorStrength(a models.StrengthAssessment) string {
	label := fmt.Sprintf("%s (%d%%)", a.Label, a.Percentage)
	switch {
	case a.Score >= 3:
		return color.GreenString(label)
	case a.Score == 2:
		return color.YellowString(label)
	default:
		return color.RedString(label)
	}
}

func printError(w io.Writer, msg string) {
	fmt.Fprintln(w, color.RedString("✗")+" "+msg)
}
