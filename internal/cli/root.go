// Package cli implements the tenderctl command-line client for the
// tenderchat HTTP API.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tendly/tenderchat/pkg/version"
)

var (
	serverAddr string
	userName   string
)

var rootCmd = &cobra.Command{
	Use:           "tenderctl",
	Short:         "Query the tender database chat service",
	Long:          `tenderctl talks to a running tenderchat instance: ask natural-language questions, run catalog shortcuts, or execute SQL directly.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	Version:       version.Version(),
}

// Execute runs the CLI and exits non-zero on error.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	addr := os.Getenv("TENDERCHAT_ADDR")
	if addr == "" {
		addr = "http://localhost:8080"
	}

	rootCmd.PersistentFlags().StringVar(&serverAddr, "addr", addr, "tenderchat server address")
	rootCmd.PersistentFlags().StringVar(&userName, "user", os.Getenv("USER"), "user identity sent as X-Forwarded-User")
}
