package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"quizdungeon/internal/store"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Erase a player's answer history and experience",
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

		userID := resolveUserID(cmd)
		if err := st.ResetUser(cmd.Context(), userID); err != nil {
			return fmt.Errorf("reset %s: %w", userID, err)
		}
		fmt.Printf("Reset all progress for %s.\n", userID)
		return nil
	},
}
