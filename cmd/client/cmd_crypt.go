package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/MKhiriev/go-pass-vault/internal/crypto"
	"github.com/spf13/cobra"
)

const passphraseEnv = "VAULT_PASSPHRASE"

var errNoPassphrase = errors.New("passphrase is required: use --passphrase or " + passphraseEnv)

func newEncryptCmd() *cobra.Command {
	var passphrase string

	cmd := &cobra.Command{
		Use:   "encrypt [plaintext]",
		Short: "Encrypt a secret with a passphrase",
		Long: `Encrypts a secret into the self-describing ciphertext stored by the vault.
Reads the plaintext from stdin when no argument is given.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			key, err := resolvePassphrase(passphrase)
			if err != nil {
				return err
			}
			plaintext, err := argOrStdin(cmd, args)
			if err != nil {
				return err
			}

			ciphertext, err := crypto.NewCredentialTransform().Encrypt(plaintext, key)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), ciphertext)
			return nil
		},
	}
	cmd.Flags().StringVarP(&passphrase, "passphrase", "p", "", "encryption passphrase (env "+passphraseEnv+")")

	return cmd
}

func newDecryptCmd() *cobra.Command {
	var passphrase string

	cmd := &cobra.Command{
		Use:   "decrypt [ciphertext]",
		Short: "Decrypt a secret produced by encrypt or stored in the vault",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			key, err := resolvePassphrase(passphrase)
			if err != nil {
				return err
			}
			ciphertext, err := argOrStdin(cmd, args)
			if err != nil {
				return err
			}

			plaintext, err := crypto.NewCredentialTransform().Decrypt(ciphertext, key)
			if err != nil {
				if errors.Is(err, crypto.ErrDecryptionFailure) {
					printError(cmd.ErrOrStderr(), "wrong passphrase or corrupted ciphertext")
				}
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), plaintext)
			return nil
		},
	}
	cmd.Flags().StringVarP(&passphrase, "passphrase", "p", "", "decryption passphrase (env "+passphraseEnv+")")

	return cmd
}

func resolvePassphrase(flag string) (string, error) {
	if flag != "" {
		return flag, nil
	}
	if env := os.Getenv(passphraseEnv); env != "" {
		return env, nil
	}
	return "", errNoPassphrase
}
