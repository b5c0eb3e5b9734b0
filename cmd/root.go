package cmd

import (
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "resume-radar",
	Short: "AI-powered resume analysis",
	Long: `Resume Radar extracts structured information from PDF resumes using AI,
rates them, and suggests improvements. It ships an API server, a web UI,
and CLI commands for uploading and managing analyzed resumes.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// API keys may live in a local .env file.
		_ = godotenv.Load()
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", ".resumeradar.yml", "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
