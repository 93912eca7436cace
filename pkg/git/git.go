package git

import (
	"bytes"
	"fmt"
	"os/exec"
	"strings"

	"github.com/k8scat/gitbridge-go/pkg/types"
)

var _ types.Git = (*CLI)(nil)

// CLI drives the external git executable. Every call is one invocation with
// no retries; failures surface the tool's stderr verbatim.
type CLI struct {
	// Bin is the executable to invoke, "git" when empty.
	Bin string
}

// New creates a CLI for the given executable name.
func New(bin string) *CLI {
	return &CLI{Bin: bin}
}

func (c *CLI) bin() string {
	if c.Bin == "" {
		return "git"
	}
	return c.Bin
}

// run executes one git command in dir and returns trimmed stdout.
func (c *CLI) run(dir string, args ...string) (string, error) {
	cmd := exec.Command(c.bin(), args...)
	cmd.Dir = dir

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		msg := strings.TrimSpace(stderr.String())
		if msg == "" {
			msg = err.Error()
		}
		return "", fmt.Errorf("git %s: %s", args[0], msg)
	}
	return strings.TrimSpace(stdout.String()), nil
}

// Clone clones url into dir.
func (c *CLI) Clone(url, dir string) error {
	_, err := c.run("", "clone", url, dir)
	return err
}

// BranchExists reports whether branch exists locally or on a remote of the
// clone at dir.
func (c *CLI) BranchExists(dir, branch string) bool {
	out, err := c.run(dir, "branch", "-a")
	if err != nil {
		return false
	}
	for _, line := range strings.Split(out, "\n") {
		name := strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(line), "* "))
		if name == branch || name == "remotes/origin/"+branch {
			return true
		}
	}
	return false
}

// Checkout switches the clone at dir to branch.
func (c *CLI) Checkout(dir, branch string) error {
	_, err := c.run(dir, "checkout", branch)
	return err
}

// CurrentBranch returns the checked-out branch name.
func (c *CLI) CurrentBranch(dir string) (string, error) {
	return c.run(dir, "rev-parse", "--abbrev-ref", "HEAD")
}

// AddRemote registers url as an additional remote.
func (c *CLI) AddRemote(dir, name, url string) error {
	_, err := c.run(dir, "remote", "add", name, url)
	return err
}

// Push pushes branch to remote, optionally setting upstream tracking.
func (c *CLI) Push(dir, remote, branch string, setUpstream bool) error {
	args := []string{"push"}
	if setUpstream {
		args = append(args, "-u")
	}
	args = append(args, remote, branch)
	_, err := c.run(dir, args...)
	return err
}

// PushTags pushes all tags to remote.
func (c *CLI) PushTags(dir, remote string) error {
	_, err := c.run(dir, "push", "--tags", remote)
	return err
}
