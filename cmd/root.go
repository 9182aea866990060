package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"quizdungeon/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "quizdungeon",
	Short: "Quiz-driven dungeon crawler for the terminal",
	Long:  "QuizDungeon — fight your way through the dungeon by answering questions. Difficulty adapts to how well you know each subject.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides QUIZDUNGEON_DB env var)")
	rootCmd.PersistentFlags().String("user", "", "Player name (overrides QUIZDUNGEON_USER env var)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then QUIZDUNGEON_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

// resolveUserID returns the player name using --user flag, then the
// QUIZDUNGEON_USER env var, then "local".
func resolveUserID(cmd *cobra.Command) string {
	if u, _ := cmd.Flags().GetString("user"); u != "" {
		return u
	}
	if u := os.Getenv("QUIZDUNGEON_USER"); u != "" {
		return u
	}
	return "local"
}
