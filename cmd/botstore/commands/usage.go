package commands

import (
	"context"
	"fmt"

	"gptbot/internal/repository"

	"github.com/spf13/cobra"
)

// NewUsageCmd creates the usage command
func NewUsageCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "usage <user_id>",
		Short: "Show a user's total token usage",
		Long:  "Sum usage_total_tokens across all of the user's recorded events",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			userID, err := parseID(args[0], "user id")
			if err != nil {
				return err
			}

			ctx := context.Background()
			pool, err := openPool(ctx)
			if err != nil {
				return err
			}
			defer pool.Close()

			userRepo := repository.NewUserRepo(pool)
			total, err := userRepo.UsedTokens(ctx, userID)
			if err != nil {
				return fmt.Errorf("failed to sum used tokens: %w", err)
			}

			fmt.Printf("User %d has used %d tokens\n", userID, total)
			return nil
		},
	}

	return cmd
}
