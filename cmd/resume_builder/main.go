// Package main provides the entry point for the resume builder.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "resume_builder",
	Short: "Resume builder API server and PDF exporter",
	Long:  "Resume builder stores structured resumes, renders them with selectable templates, and exports paginated A4 PDFs via headless Chrome.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
