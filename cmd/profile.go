package cmd

import (
	"fmt"

	"github.com/abhisek/studypal/internal/cli"
	"github.com/abhisek/studypal/internal/store"
	"github.com/spf13/cobra"
)

var profileCmd = &cobra.Command{
	Use:   "profile [topic]",
	Short: "Show stored learning profiles",
	Args:  cobra.MaximumNArgs(1),
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

		ctx := cmd.Context()

		if len(args) == 1 {
			p, err := st.ProfileRepo().Get(ctx, userID, args[0])
			if err != nil {
				return fmt.Errorf("get profile: %w", err)
			}
			if p == nil {
				fmt.Printf("No profile for topic %q yet.\n", args[0])
				return nil
			}
			fmt.Println(cli.RenderProfile(p))
			return nil
		}

		profiles, err := st.ProfileRepo().ListForUser(ctx, userID)
		if err != nil {
			return fmt.Errorf("list profiles: %w", err)
		}
		if len(profiles) == 0 {
			fmt.Println("No profiles yet. Score an attempt first.")
			return nil
		}
		for _, p := range profiles {
			fmt.Println(cli.RenderProfile(p))
		}
		return nil
	},
}

func init() {
	profileCmd.Flags().StringP("user", "u", "local", "User ID")
}
