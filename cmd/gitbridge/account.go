package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newAddAccountCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "add-account <name> <token>",
		Short: "Add an account with a personal access token",
		Long: `Store a personal access token under an account name. Adding a name that
already exists silently overwrites its token.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			name, token := args[0], args[1]
			if err := a.store.Add(name, token); err != nil {
				return fmt.Errorf("failed to add account '%s': %w", name, err)
			}
			fmt.Fprintf(a.stdout, "Added account '%s'\n", name)
			return nil
		},
	}
}

func newRemoveAccountCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "remove-account <name>",
		Short: "Remove a stored account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]
			removed, err := a.store.Remove(name)
			if err != nil {
				return fmt.Errorf("failed to remove account '%s': %w", name, err)
			}
			if !removed {
				return fmt.Errorf("account '%s' not found in config", name)
			}
			fmt.Fprintf(a.stdout, "Removed account '%s'\n", name)
			return nil
		},
	}
}
