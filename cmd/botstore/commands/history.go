package commands

import (
	"context"
	"fmt"

	"gptbot/internal/repository"

	"github.com/spf13/cobra"
)

// NewHistoryCmd creates the history command
func NewHistoryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history <chat_id>",
		Short: "Print a chat's active conversation history",
		Long:  "Print the active messages inside the history window, oldest first",
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
			messages, err := messageRepo.ListRecent(ctx, chatID)
			if err != nil {
				return fmt.Errorf("failed to list messages: %w", err)
			}

			if len(messages) == 0 {
				fmt.Println("No active messages in the window")
				return nil
			}

			for _, m := range messages {
				fmt.Printf("%s: %s\n", m.Role, m.Content)
			}
			return nil
		},
	}

	return cmd
}
