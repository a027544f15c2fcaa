package cmd

import (
	"fmt"

	"github.com/abhisek/studypal/internal/store"
	"github.com/spf13/cobra"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Reset usage counters for a user",
	RunE: func(cmd *cobra.Command, args []string) error {
		userID, _ := cmd.Flags().GetString("user")

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer st.Close()

		if err := st.CounterRepo().Reset(cmd.Context(), userID); err != nil {
			return fmt.Errorf("reset counters: %w", err)
		}
		fmt.Printf("Usage counters reset for user %q.\n", userID)
		return nil
	},
}

func init() {
	resetCmd.Flags().StringP("user", "u", "local", "User ID")
}
