package cmd

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "content-planner",
	Short: "A web tool for generating content plans using AI",
	Long: `Content Planner is a small web application that turns a niche,
an audience and a timeframe into a structured content plan using
AI models (Gemini, OpenAI). It also ships a one-shot CLI mode for
generating plans from the terminal.`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)
}

func initConfig() {
	// .env file is optional, don't fail if not found
	_ = godotenv.Load()
}
