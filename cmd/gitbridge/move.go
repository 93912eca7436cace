package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newMoveRepoCmd(a *app) *cobra.Command {
	var (
		source string
		dest   string
		branch string
	)

	cmd := &cobra.Command{
		Use:   "move-repo <repo>",
		Short: "Move a repository between accounts (copy, then delete the source)",
		Long: `Copy a repository to the destination account and delete it from the
source. The source is only deleted after the copy fully succeeds; if the
delete then fails, the repository exists in both accounts.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := copyRepo(a, args[0], source, dest, branch); err != nil {
				return fmt.Errorf("move aborted, copy failed: %w", err)
			}
			if err := deleteRepo(a, args[0], source, true); err != nil {
				fmt.Fprintln(a.stderr, "Warning: repository was copied but could not be deleted from the source.")
				return err
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&source, "source", "", "source account name")
	cmd.Flags().StringVar(&dest, "dest", "", "destination account name")
	cmd.Flags().StringVar(&branch, "branch", "main", "branch to copy")
	cmd.MarkFlagRequired("source")
	cmd.MarkFlagRequired("dest")

	return cmd
}
