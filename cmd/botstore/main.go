package main

import (
	"fmt"
	"os"

	"gptbot/cmd/botstore/commands"

	"github.com/spf13/cobra"
)

func main() {
	var rootCmd = &cobra.Command{
		Use:   "botstore",
		Short: "Maintenance tool for the bot's message store",
		Long:  "CLI tool for inspecting and pruning stored conversations, users and usage",
	}

	rootCmd.AddCommand(commands.NewUsageCmd())
	rootCmd.AddCommand(commands.NewHistoryCmd())
	rootCmd.AddCommand(commands.NewResetCmd())
	rootCmd.AddCommand(commands.NewPurgeCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
