package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/rver/flashdeck/internal/store"
	"github.com/spf13/cobra"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Erase all flashcards and study history",
	RunE: func(cmd *cobra.Command, args []string) error {
		yes, _ := cmd.Flags().GetBool("yes")
		if !yes && !confirm("This deletes every flashcard and all study history. Continue? [y/N] ") {
			fmt.Println("Aborted.")
			return nil
		}

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		for _, key := range []string{store.KeyFlashcards, store.KeyHistory} {
			if err := st.Delete(key); err != nil {
				return fmt.Errorf("delete %s: %w", key, err)
			}
		}
		fmt.Println("All flashcards and history erased.")
		return nil
	},
}

func confirm(prompt string) bool {
	fmt.Print(prompt)
	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil {
		return false
	}
	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes"
}

func init() {
	resetCmd.Flags().Bool("yes", false, "Skip the confirmation prompt")
}
