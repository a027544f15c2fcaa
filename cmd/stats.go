package cmd

import (
	"fmt"

	"github.com/abhisek/studypal/internal/cli"
	"github.com/abhisek/studypal/internal/store"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show recent scored attempts",
	RunE: func(cmd *cobra.Command, args []string) error {
		userID, _ := cmd.Flags().GetString("user")
		limit, _ := cmd.Flags().GetInt("limit")

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer st.Close()

		events, err := st.EventRepo().RecentAttempts(cmd.Context(), userID, store.QueryOpts{Limit: limit})
		if err != nil {
			return fmt.Errorf("query attempts: %w", err)
		}

		fmt.Println(cli.RenderAttempts(events))
		return nil
	},
}

func init() {
	statsCmd.Flags().StringP("user", "u", "local", "User ID")
	statsCmd.Flags().IntP("limit", "n", 20, "Number of attempts to show")
}
