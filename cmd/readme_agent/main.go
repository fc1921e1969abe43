// Package main provides the entry point for the README Generator CLI and HTTP API server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "readme_agent",
	Short: "README Generator CLI and HTTP API Server",
	Long:  "README Generator renders GitHub profile and project READMEs from form-state snapshots, via CLI commands or a REST API.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
