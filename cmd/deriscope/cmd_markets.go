package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/deriverse/deriscope/internal/synth"
)

var marketsCmd = &cobra.Command{
	Use:   "markets",
	Short: "List the tradable market catalog",
	RunE: func(cmd *cobra.Command, args []string) error {
		markets := synth.New(synth.DefaultCatalog()).Markets()

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "SYMBOL\tNAME\tTYPE\tPRICE\t24H CHANGE\t24H VOLUME")
		for _, m := range markets {
			fmt.Fprintf(w, "%s\t%s\t%s\t$%.4f\t%+.2f%%\t$%.0f\n",
				m.Symbol, m.Name, m.MarketType, m.Price, m.Change24h, m.Volume24h)
		}
		return w.Flush()
	},
}
