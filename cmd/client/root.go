package main

import (
	"fmt"
	"time"

	"github.com/MKhiriev/go-pass-vault/internal/config"
	"github.com/MKhiriev/go-pass-vault/models"
	"github.com/spf13/cobra"
)

// clientFlags override the CLIENT_* environment configuration.
type clientFlags struct {
	serverAddress  string
	requestTimeout time.Duration
	debug          bool
}

func newRootCmd(buildInfo models.AppBuildInfo) *cobra.Command {
	flags := &clientFlags{}

	root := &cobra.Command{
		Use:   "vault",
		Short: "Pass Vault - a terminal password manager",
		Long: `Pass Vault keeps your passwords encrypted with your master password.
Secrets are encrypted on this machine before they reach the server.

Run without a command to open the interactive vault.`,
		Version:       versionString(buildInfo),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runTUI(cmd, flags, buildInfo)
		},
	}

	bindClientFlags(root, flags)

	root.AddCommand(
		newTUICmd(flags, buildInfo),
		newGenerateCmd(),
		newStrengthCmd(),
		newEncryptCmd(),
		newDecryptCmd(),
	)

	return root
}

func bindClientFlags(cmd *cobra.Command, flags *clientFlags) {
	pf := cmd.PersistentFlags()
	pf.StringVarP(&flags.serverAddress, "server", "s", "", "vault server base URL (env CLIENT_SERVER_ADDRESS)")
	pf.DurationVar(&flags.requestTimeout, "timeout", 0, "request timeout (env CLIENT_REQUEST_TIMEOUT)")
	pf.BoolVarP(&flags.debug, "debug", "d", false, "write a debug log to the user cache directory (env CLIENT_DEBUG)")
}

// loadClientConfig reads the environment configuration and applies the
// flags that were set explicitly.
func loadClientConfig(cmd *cobra.Command, flags *clientFlags) (*config.ClientConfig, error) {
	cfg, err := config.GetClientConfig()
	if err != nil && cfg == nil {
		return nil, err
	}

	pf := cmd.Flags()
	if pf.Changed("server") {
		cfg.ServerAddress = flags.serverAddress
	}
	if pf.Changed("timeout") {
		cfg.RequestTimeout = flags.requestTimeout
	}
	if pf.Changed("debug") {
		cfg.Debug = flags.debug
	}

	if err = cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func versionString(info models.AppBuildInfo) string {
	v := info.View()
	return fmt.Sprintf("%s (built %s, commit %s)", v.Version, v.Date, v.Commit)
}
