package commands

import (
	"context"
	"fmt"

	"gptbot/internal/repository"

	"github.com/spf13/cobra"
)

// NewResetCmd creates the reset command
func NewResetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reset <chat_id>",
		Short: "Close a chat's conversation window",
		Long:  "Deactivate the chat's messages so history starts fresh without deleting anything",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			chatID, err := parseID(args[0], "chat id")
			if err != nil {
				return err
			}

			ctx := context.Background()
			pool, err := openPool(ctx)
			if err != nil {
				return err
			}
			defer pool.Close()

			messageRepo := repository.NewMessageRepo(pool)
			count, err := messageRepo.DeactivateByChatID(ctx, chatID)
			if err != nil {
				return fmt.Errorf("failed to deactivate messages: %w", err)
			}

			fmt.Printf("Deactivated %d messages in chat %d\n", count, chatID)
			return nil
		},
	}

	return cmd
}
