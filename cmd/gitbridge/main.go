package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/k8scat/gitbridge-go/pkg/config"
	"github.com/k8scat/gitbridge-go/pkg/git"
	"github.com/k8scat/gitbridge-go/pkg/github"
	"github.com/k8scat/gitbridge-go/pkg/store"
	"github.com/k8scat/gitbridge-go/pkg/types"
)

func main() {
	os.Exit(run(os.Args, os.Stdin, os.Stdout, os.Stderr))
}

// app carries the per-invocation wiring: settings, the account store and the
// injected standard streams. Every command run builds its own app, nothing
// is shared across invocations.
type app struct {
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer

	settings *config.Settings
	store    *store.Store
}

// client builds an API client for one account token.
func (a *app) client(token string) *github.Client {
	c := github.NewClient(token)
	c.BaseAPI = a.settings.APIBase
	return c
}

func (a *app) git() types.Git {
	return git.New(a.settings.GitBin)
}

// resolveFullName turns a repository argument into its owner/name form. Bare
// names cost one extra round trip to resolve the account's own login.
func (a *app) resolveFullName(c *github.Client, repoPath string) (string, error) {
	if owner, name, err := github.ParseRepoPath(repoPath, ""); err == nil {
		return owner + "/" + name, nil
	}
	user, err := c.GetUser()
	if err != nil {
		return "", fmt.Errorf("error accessing user information: %w", err)
	}
	owner, name, err := github.ParseRepoPath(repoPath, user.Login)
	if err != nil {
		return "", err
	}
	return owner + "/" + name, nil
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) (code int) {
	// Dispatch boundary: an unexpected fault becomes exit 1, not a crash.
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(stderr, "Error: internal error: %v\n", r)
			code = 1
		}
	}()

	a := &app{stdin: stdin, stdout: stdout, stderr: stderr}

	var verbose bool

	rootCmd := &cobra.Command{
		Use:   "gitbridge",
		Short: "Manage and transfer repositories across hosted git accounts",
		Long: `gitbridge holds personal access tokens for multiple accounts on a git
hosting service and copies, moves, and deletes repositories between them.

Transfers clone the source repository into a temporary directory and push
its branch and tags to the destination, creating the destination repository
when it does not exist yet.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose {
				slog.SetLogLoggerLevel(slog.LevelDebug)
			}
			a.settings = config.Load()
			a.store = store.Load(a.settings.ConfigPath)
		},
		Run: func(cmd *cobra.Command, args []string) {
			cmd.Help()
		},
	}
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose diagnostics")

	rootCmd.AddCommand(
		newAddAccountCmd(a),
		newRemoveAccountCmd(a),
		newListReposCmd(a),
		newCopyRepoCmd(a),
		newDeleteRepoCmd(a),
		newMoveRepoCmd(a),
		newListContentsCmd(a),
	)

	rootCmd.SetArgs(args[1:])
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}
