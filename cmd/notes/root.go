package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"notes-screen/internal/config"
)

var (
	configFile string
	envFile    string
)

var rootCmd = &cobra.Command{
	Use:   "notes",
	Short: "Notes screen: in-memory note list with change notifications",
	Long: `Notes keeps an ordered list of notes in memory and notifies observers
after every change. It can be served over HTTP with a websocket change feed
or driven from a terminal UI.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Переменные окружения из .env должны быть доступны до разбора config.yml
		return config.LoadDotEnv(envFile)
	},
}

// Execute запускает корневую команду
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "config.yml", "path to config file, defaults are used when missing")
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", ".env", "path to .env file, ignored when missing")
}
