package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

func newListReposCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list-repos",
		Short: "List repositories for every configured account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if a.store.Len() == 0 {
				return errors.New("no accounts configured, use add-account to add one")
			}

			listed := false
			for _, name := range a.store.Names() {
				token, _ := a.store.Get(name)
				fmt.Fprintf(a.stdout, "Account: %s\n", name)

				repos, err := a.client(token).ListRepos()
				if err != nil {
					// One broken account must not stop the rest.
					fmt.Fprintf(a.stdout, "  Error fetching repositories: %v\n", err)
					continue
				}
				listed = true
				for _, repo := range repos {
					fmt.Fprintf(a.stdout, "  - %s\n", repo.FullName)
				}
			}

			if !listed {
				return errors.New("fetching repositories failed for every account")
			}
			return nil
		},
	}
}
