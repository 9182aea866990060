package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"quizdungeon/internal/store"
	"quizdungeon/internal/xp"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show answer statistics per subject",
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

		ctx := cmd.Context()
		userID := resolveUserID(cmd)

		info, err := xp.NewService(st.Experience()).Info(ctx, userID)
		if err != nil {
			return fmt.Errorf("load level: %w", err)
		}
		fmt.Printf("%s — Level %d (%d/%d XP)\n\n",
			userID, info.Level, info.XPIntoLevel, info.XPNeededForLevel)

		subjects, err := st.Answers().Stats(ctx, userID)
		if err != nil {
			return fmt.Errorf("load stats: %w", err)
		}
		if len(subjects) == 0 {
			fmt.Println("No questions answered yet.")
			return nil
		}

		for _, subj := range subjects {
			fmt.Printf("%s (avg rating %d)\n", subj.SubjectName, subj.AverageRating)
			for _, q := range subj.Questions {
				fmt.Printf("  %-50s  ✓%-3d ✗%-3d ⏱%-3d  rating %d\n",
					q.Question, q.Correct, q.Wrong, q.Timeout, q.Rating)
			}
			fmt.Println()
		}
		return nil
	},
}
