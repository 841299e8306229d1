package main

import (
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

const (
	appName = "deriscope"
	version = "v1.0.0"
)

var configPath string

// rootCmd is the base command for the deriscope CLI.
var rootCmd = &cobra.Command{
	Use:   "deriscope",
	Short: "Deriverse trading analytics engine",
	Long: `Deriscope generates deterministic per-wallet trade analytics for the
Deriverse dashboard: synthetic trade histories, PnL and risk metrics,
session/symbol/strategy breakdowns, equity curves, and insights.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("%s %s\n", appName, version)
		fmt.Println("Use 'deriscope serve' to start the API, or 'deriscope trades --address <wallet>' for a one-off report.")
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to YAML config file (defaults apply when omitted)")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(tradesCmd)
	rootCmd.AddCommand(marketsCmd)
}

func main() {
	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
