package main

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newDeleteRepoCmd(a *app) *cobra.Command {
	var (
		account string
		force   bool
		yes     bool
	)

	cmd := &cobra.Command{
		Use:   "delete-repo <repo>",
		Short: "Delete a repository from an account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return deleteRepo(a, args[0], account, force || yes)
		},
	}

	cmd.Flags().StringVar(&account, "account", "", "account name")
	cmd.Flags().BoolVarP(&force, "force", "f", false, "delete without confirmation")
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "assume yes to the confirmation prompt")
	cmd.MarkFlagRequired("account")

	return cmd
}

// deleteRepo is the delete workflow shared by delete-repo and move-repo.
// With skipConfirm set it never prompts.
func deleteRepo(a *app, repoPath, account string, skipConfirm bool) error {
	token, ok := a.store.Get(account)
	if !ok {
		return fmt.Errorf("account '%s' not found in config", account)
	}
	client := a.client(token)

	full, err := a.resolveFullName(client, repoPath)
	if err != nil {
		return err
	}

	if !client.RepoExists(full) {
		return fmt.Errorf("repository %s not found or not accessible", full)
	}

	if !skipConfirm {
		fmt.Fprintf(a.stdout, "Are you sure you want to delete %s? This cannot be undone. (y/N): ", full)
		if !confirmed(a) {
			fmt.Fprintln(a.stdout, "Deletion cancelled.")
			return nil
		}
	}

	if err := client.DeleteRepo(full); err != nil {
		return fmt.Errorf("failed to delete repository: %w", err)
	}
	fmt.Fprintf(a.stdout, "Successfully deleted repository %s\n", full)
	return nil
}

func confirmed(a *app) bool {
	scanner := bufio.NewScanner(a.stdin)
	if !scanner.Scan() {
		return false
	}
	return strings.EqualFold(strings.TrimSpace(scanner.Text()), "y")
}
