package commands

import (
	"context"
	"fmt"

	"gptbot/internal/repository"

	"github.com/spf13/cobra"
)

// NewPurgeCmd creates the purge command
func NewPurgeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "purge <chat_id>",
		Short: "Hard-delete a chat's messages",
		Long:  "Delete every stored message for the chat; analytics events are kept",
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
			count, err := messageRepo.DeleteByChatID(ctx, chatID)
			if err != nil {
				return fmt.Errorf("failed to delete messages: %w", err)
			}

			fmt.Printf("Deleted %d messages from chat %d\n", count, chatID)
			return nil
		},
	}

	return cmd
}
