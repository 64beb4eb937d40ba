// Package main provides the entry point for the Reflection Insights HTTP API server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "insight_agent",
	Short: "Reflection Insights HTTP API Server",
	Long:  "Reflection Insights runs a guided self-reflection chat and produces rule-based behavioral trend reports via REST API.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
