package git

import (
	"path/filepath"
	"strings"
	"testing"

	"4d63.com/testcli"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupGit(t *testing.T) {
	dir := testcli.MkdirTemp(t)
	t.Setenv("HOME", dir)
	testcli.Exec(t, "git config --global user.email 'tests@example.com'")
	testcli.Exec(t, "git config --global user.name 'Tests'")
	testcli.Exec(t, "git config --global init.defaultBranch main")
}

func gitExec(t *testing.T, command string) string {
	_, stdout, _ := testcli.Exec(t, command)
	return strings.TrimSpace(stdout)
}

// makeRepo creates a repository with one commit on main and a feature branch.
func makeRepo(t *testing.T) string {
	dir := testcli.MkdirTemp(t)
	testcli.Chdir(t, dir)
	testcli.Exec(t, "git init")
	testcli.WriteFile(t, "file1", []byte("content"))
	testcli.Exec(t, "git add .")
	testcli.Exec(t, "git commit -m 'initial'")
	testcli.Exec(t, "git branch feature")
	return dir
}

func TestCloneAndCurrentBranch(t *testing.T) {
	setupGit(t)
	src := makeRepo(t)

	c := New("git")
	dst := filepath.Join(testcli.MkdirTemp(t), "clone")
	require.NoError(t, c.Clone(src, dst))

	branch, err := c.CurrentBranch(dst)
	require.NoError(t, err)
	assert.Equal(t, "main", branch)
}

func TestCloneFailureSurfacesStderr(t *testing.T) {
	setupGit(t)

	c := New("git")
	dst := filepath.Join(testcli.MkdirTemp(t), "clone")
	err := c.Clone(filepath.Join(testcli.MkdirTemp(t), "no-such-repo"), dst)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "git clone")
}

func TestBranchExistsAndCheckout(t *testing.T) {
	setupGit(t)
	src := makeRepo(t)

	c := New("git")
	dst := filepath.Join(testcli.MkdirTemp(t), "clone")
	require.NoError(t, c.Clone(src, dst))

	// "feature" only exists as a remote-tracking branch in the clone.
	assert.True(t, c.BranchExists(dst, "feature"))
	assert.True(t, c.BranchExists(dst, "main"))
	assert.False(t, c.BranchExists(dst, "ghost"))

	require.NoError(t, c.Checkout(dst, "feature"))
	branch, err := c.CurrentBranch(dst)
	require.NoError(t, err)
	assert.Equal(t, "feature", branch)
}

// A branch whose name merely contains a remote-tracking path for another
// branch must not make that other branch look present.
func TestBranchExistsNoSubstringMatch(t *testing.T) {
	setupGit(t)
	src := makeRepo(t)
	testcli.Exec(t, "git branch wrapped/remotes/origin/ghost")

	c := New("git")
	dst := filepath.Join(testcli.MkdirTemp(t), "clone")
	require.NoError(t, c.Clone(src, dst))

	assert.True(t, c.BranchExists(dst, "wrapped/remotes/origin/ghost"))
	assert.False(t, c.BranchExists(dst, "ghost"))
}

func TestAddRemotePushAndTags(t *testing.T) {
	setupGit(t)
	src := makeRepo(t)
	testcli.Exec(t, "git tag v1.0.0")

	bare := testcli.MkdirTemp(t)
	testcli.Chdir(t, bare)
	testcli.Exec(t, "git init --bare")

	c := New("git")
	dst := filepath.Join(testcli.MkdirTemp(t), "clone")
	require.NoError(t, c.Clone(src, dst))

	require.NoError(t, c.AddRemote(dst, "dest", bare))
	require.NoError(t, c.Push(dst, "dest", "main", true))
	require.NoError(t, c.PushTags(dst, "dest"))

	testcli.Chdir(t, bare)
	assert.NotEmpty(t, gitExec(t, "git rev-parse main"))
	assert.NotEmpty(t, gitExec(t, "git rev-parse v1.0.0"))
}

func TestCustomBinary(t *testing.T) {
	c := New("definitely-not-git")
	err := c.Clone("src", "dst")
	require.Error(t, err)
}
