package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/k8scat/gitbridge-go/pkg/sync"
)

func newCopyRepoCmd(a *app) *cobra.Command {
	var (
		source string
		dest   string
		branch string
	)

	cmd := &cobra.Command{
		Use:   "copy-repo <repo>",
		Short: "Copy a repository from one account to another",
		Long: `Copy a repository's branch and tags from the source account to the
destination account, creating the destination repository when absent. The
destination repository always takes the source repository's name.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return copyRepo(a, args[0], source, dest, branch)
		},
	}

	cmd.Flags().StringVar(&source, "source", "", "source account name")
	cmd.Flags().StringVar(&dest, "dest", "", "destination account name")
	cmd.Flags().StringVar(&branch, "branch", "main", "branch to copy")
	cmd.MarkFlagRequired("source")
	cmd.MarkFlagRequired("dest")

	return cmd
}

// copyRepo is the copy workflow shared by copy-repo and move-repo.
func copyRepo(a *app, repoPath, source, dest, branch string) error {
	srcToken, srcOK := a.store.Get(source)
	dstToken, dstOK := a.store.Get(dest)
	if !srcOK || !dstOK {
		return errors.New("source or destination account not found in config")
	}

	srcClient := a.client(srcToken)
	dstClient := a.client(dstToken)

	// A bare repository name belongs to the source account's own user.
	srcFull, err := a.resolveFullName(srcClient, repoPath)
	if err != nil {
		return fmt.Errorf("error accessing source account: %w", err)
	}

	srcRepo, found, err := srcClient.LookupRepo(srcFull)
	if err != nil {
		return fmt.Errorf("error accessing source repository %s: %w", srcFull, err)
	}
	if !found {
		return fmt.Errorf("source repository %s not found", srcFull)
	}

	dstUser, err := dstClient.GetUser()
	if err != nil {
		return fmt.Errorf("error accessing destination account: %w", err)
	}
	destFull := dstUser.Login + "/" + srcRepo.Name

	if dstClient.RepoExists(destFull) {
		fmt.Fprintf(a.stdout, "Destination repo %s already exists\n", destFull)
	} else {
		_, taken, err := dstClient.CreateRepo(srcRepo.Name, srcRepo.Private, srcRepo.Description)
		if err != nil {
			return fmt.Errorf("failed to create destination repo: %w", err)
		}
		if taken {
			fmt.Fprintf(a.stdout, "Destination repo %s already exists\n", destFull)
		} else {
			fmt.Fprintf(a.stdout, "Created destination repo %s\n", destFull)
		}
	}

	result, err := sync.Copy(a.git(), sync.Request{
		SourceURL: srcClient.AuthCloneURL(srcRepo.CloneURL),
		DestURL:   dstClient.RepoAddr(destFull),
		Branch:    branch,
	})
	if err != nil {
		return fmt.Errorf("failed to copy repository: %w", err)
	}

	for _, warning := range result.Warnings {
		fmt.Fprintf(a.stderr, "Warning: %s\n", warning)
	}
	fmt.Fprintf(a.stdout, "Copied %s to %s on branch %s\n", srcFull, destFull, result.Branch)
	return nil
}
