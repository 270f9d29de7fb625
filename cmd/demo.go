package cmd

import (
	"fmt"

	"github.com/rver/flashdeck/internal/deck"
	"github.com/rver/flashdeck/internal/store"
	"github.com/spf13/cobra"
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Load the bundled sample flashcards",
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
		added := cards.LoadSample()
		fmt.Printf("Added %d sample cards. Run flashdeck to study them.\n", added)
		return nil
	},
}
