package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/deriverse/deriscope/internal/domain"
	"github.com/deriverse/deriscope/internal/export"
)

var (
	tradesAddress string
	tradesSymbol  string
	tradesCount   int
	tradesFormat  string
	tradesOut     string
)

var tradesCmd = &cobra.Command{
	Use:   "trades",
	Short: "Generate a one-off analytics report for a wallet",
	Long: `Generate the full analytics bundle for a wallet without starting the
server. The table format prints headline metrics and per-session
breakdowns; json dumps the whole bundle; csv writes the trade journal.`,
	RunE: runTrades,
}

func init() {
	tradesCmd.Flags().StringVar(&tradesAddress, "address", "", "Solana wallet address (required)")
	tradesCmd.Flags().StringVar(&tradesSymbol, "symbol", "", "Restrict to one asset root, e.g. SOL")
	tradesCmd.Flags().IntVar(&tradesCount, "count", 0, "Synthesis attempts (default 250)")
	tradesCmd.Flags().StringVar(&tradesFormat, "format", "table", "Output format: table, json, csv")
	tradesCmd.Flags().StringVar(&tradesOut, "out", "", "Write output to file instead of stdout")
	_ = tradesCmd.MarkFlagRequired("address")
}

func runTrades(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if tradesCount > 0 {
		cfg.Analytics.TradeCount = tradesCount
	}

	analytics, err := buildAnalytics(cfg)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	bundle, err := analytics.TradeBundle(ctx, tradesAddress, tradesSymbol)
	if err != nil {
		return err
	}

	out := os.Stdout
	if tradesOut != "" {
		f, err := os.Create(tradesOut)
		if err != nil {
			return fmt.Errorf("creating output file: %w", err)
		}
		defer f.Close()
		out = f
	}

	switch tradesFormat {
	case "json":
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(bundle)
	case "csv":
		_, err := fmt.Fprint(out, export.TradesCSV(bundle.Trades))
		return err
	case "table":
		return printBundleTable(out, bundle)
	default:
		return fmt.Errorf("unknown format %q (want table, json, or csv)", tradesFormat)
	}
}

func printBundleTable(out *os.File, bundle *domain.AnalyticsBundle) error {
	m := bundle.Metrics

	fmt.Fprintf(out, "Wallet %s\n\n", tradesAddress)

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "METRIC\tVALUE")
	fmt.Fprintln(w, "──────\t─────")
	fmt.Fprintf(w, "Total PnL\t$%.2f\n", m.TotalPnL)
	fmt.Fprintf(w, "Total PnL %%\t%.2f%%\n", m.TotalPnLPercent)
	fmt.Fprintf(w, "Win Rate\t%.1f%%\n", m.WinRate)
	fmt.Fprintf(w, "Trades\t%d\n", m.TotalTrades)
	fmt.Fprintf(w, "Volume\t$%.2f\n", m.TotalVolume)
	fmt.Fprintf(w, "Fees\t$%.2f\n", m.TotalFees)
	fmt.Fprintf(w, "Long/Short\t%.2f\n", m.LongShortRatio)
	fmt.Fprintf(w, "Avg Win\t$%.2f\n", m.AvgWin)
	fmt.Fprintf(w, "Avg Loss\t$%.2f\n", m.AvgLoss)
	fmt.Fprintf(w, "Profit Factor\t%.2f\n", m.ProfitFactor)
	if err := w.Flush(); err != nil {
		return err
	}

	fmt.Fprintln(out, "\nSessions:")
	w = tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "SESSION\tTRADES\tPNL\tWIN RATE")
	for _, s := range bundle.SessionPerformance {
		fmt.Fprintf(w, "%s\t%d\t$%.2f\t%.1f%%\n", s.Session, s.Trades, s.PnL, s.WinRate)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	if len(bundle.Insights) > 0 {
		fmt.Fprintln(out, "\nInsights:")
		for _, ins := range bundle.Insights {
			fmt.Fprintf(out, "  - %s\n", ins)
		}
	}
	return nil
}
