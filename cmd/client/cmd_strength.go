package main

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-pass-vault/internal/crypto"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

func newStrengthCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "strength [password]",
		Short: "Score the strength of a password",
		Long:  "Scores a password from 0 (Very Weak) to 4 (Very Strong). Reads the password from stdin when no argument is given.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			password, err := argOrStdin(cmd, args)
			if err != nil {
				return err
			}

			a := crypto.ScorePasswordStrength(password)
			fmt.Fprintf(cmd.OutOrStdout(), "%s %d/4 %s\n", color.CyanString("Strength:"), a.Score, colorStrength(a))
			return nil
		},
	}
}

// argOrStdin returns the first argument, or the first line of stdin.
func argOrStdin(cmd *cobra.Command, args []string) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}

	line, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
	line = strings.TrimRight(line, "\r\n")
	if line == "" {
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return "", fmt.Errorf("empty input")
	}
	return line, nil
}
