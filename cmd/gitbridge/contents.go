package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newListContentsCmd(a *app) *cobra.Command {
	var (
		account string
		path    string
	)

	cmd := &cobra.Command{
		Use:   "list-contents <repo>",
		Short: "List the contents of a repository, optionally at a subpath",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			token, ok := a.store.Get(account)
			if !ok {
				return fmt.Errorf("account '%s' not found in config", account)
			}
			client := a.client(token)

			full, err := a.resolveFullName(client, args[0])
			if err != nil {
				return err
			}

			entries, err := client.ListContents(full, path)
			if err != nil {
				return fmt.Errorf("failed to list contents of %s: %w", full, err)
			}
			for _, entry := range entries {
				fmt.Fprintf(a.stdout, "%s  %s\n", entry.Type, entry.Name)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&account, "account", "", "account name")
	cmd.Flags().StringVar(&path, "path", "", "subpath inside the repository")
	cmd.MarkFlagRequired("account")

	return cmd
}
