/*
Copyright © 2026 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "pkp-studio",
	Short: "Records backend for land certificates, tanah garapan and attendance",
	Long: `pkp-studio serves the PKP records API: land certificate and tanah
garapan registers, user management, attendance check-in/out, and an
append-only activity log with restore for deleted records.`,
}

func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./config.yaml)")
}
