package cmd

import (
	"fmt"
	"sort"

	"github.com/rver/flashdeck/internal/deck"
	"github.com/rver/flashdeck/internal/history"
	"github.com/rver/flashdeck/internal/store"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show study statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		cards := deck.NewStore(st, nil)
		log := history.NewLog(st, nil)
		records := log.List()

		fmt.Printf("Cards:      %d in %d categories\n", cards.Len(), len(cards.Categories()))
		fmt.Printf("Sessions:   %d\n", len(records))
		if len(records) == 0 {
			return nil
		}

		var score, total int
		perCategory := make(map[string][]history.Record)
		for _, rec := range records {
			score += rec.Score
			total += rec.Total
			perCategory[rec.Category] = append(perCategory[rec.Category], rec)
		}
		if total > 0 {
			fmt.Printf("Overall:    %d/%d correct (%.0f%%)\n", score, total, 100*float64(score)/float64(total))
		}
		fmt.Printf("Last study: %s\n", records[0].Date.Format("Jan 02, 2006 15:04"))

		fmt.Println("\nBy category:")
		names := make([]string, 0, len(perCategory))
		for name := range perCategory {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			recs := perCategory[name]
			var rate float64
			for _, rec := range recs {
				rate += history.CorrectRate(rec)
			}
			rate /= float64(len(recs))
			fmt.Printf("  %-20s %d sessions, %.0f%% correct\n", name, len(recs), rate)
		}
		return nil
	},
}
