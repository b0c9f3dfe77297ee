// Package main provides the TalentScout command line interface.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "talentscout",
	Short: "TalentScout candidate screening assistant",
	Long:  "TalentScout conducts structured screening interviews: it collects candidate details stage by stage, generates technical questions from the declared tech stack, and exports anonymized submissions.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
