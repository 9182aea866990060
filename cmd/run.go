package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"quizdungeon/internal/app"
	"quizdungeon/internal/store"
)

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	return app.Run(app.Options{
		Store:  st,
		UserID: resolveUserID(cmd),
	})
}
