package sync

import (
	"fmt"
	"log/slog"
	"net/url"
	"os"
	"strings"

	"github.com/k8scat/gitbridge-go/pkg/types"
)

// destRemote is the name registered for the destination in the working clone.
const destRemote = "dest"

// Request describes one repository transfer. Both URLs carry embedded
// credentials and must never reach logs or error text unredacted.
type Request struct {
	SourceURL string
	DestURL   string
	// Branch to transfer; empty means whatever the clone defaults to.
	Branch string
}

// Result reports a completed transfer.
type Result struct {
	// Branch actually pushed, which is the clone's default when the
	// requested branch did not exist.
	Branch string
	// Warnings carries the non-fatal hiccups: branch fallback, tag push.
	Warnings []string
}

// Copy clones the source repository into a scoped temporary directory and
// pushes its branch and tags to the destination. Steps run strictly in
// sequence, each attempted exactly once; the directory is removed on every
// exit path.
func Copy(g types.Git, req Request) (*Result, error) {
	dir, err := os.MkdirTemp("", "gitbridge-*")
	if err != nil {
		return nil, fmt.Errorf("create work dir: %w", err)
	}
	defer os.RemoveAll(dir)

	if err := g.Clone(req.SourceURL, dir); err != nil {
		return nil, fmt.Errorf("clone repository: %w", scrub(err, req))
	}

	result := &Result{}
	if req.Branch != "" {
		if g.BranchExists(dir, req.Branch) {
			if err := g.Checkout(dir, req.Branch); err != nil {
				return nil, fmt.Errorf("checkout branch %s: %w", req.Branch, scrub(err, req))
			}
		} else {
			slog.Warn("requested branch not found, using default", "branch", req.Branch)
			result.Warnings = append(result.Warnings,
				fmt.Sprintf("branch %q not found, using the default branch", req.Branch))
		}
	}

	branch, err := g.CurrentBranch(dir)
	if err != nil {
		return nil, fmt.Errorf("determine current branch: %w", scrub(err, req))
	}

	if err := g.AddRemote(dir, destRemote, req.DestURL); err != nil {
		return nil, fmt.Errorf("add destination remote: %w", scrub(err, req))
	}

	if err := g.Push(dir, destRemote, branch, true); err != nil {
		return nil, fmt.Errorf("push branch %s: %w", branch, scrub(err, req))
	}

	// Tags are best effort: the branch is already across, a tag failure
	// does not invalidate the copy.
	if err := g.PushTags(dir, destRemote); err != nil {
		slog.Warn("tag push failed", "error", scrub(err, req))
		result.Warnings = append(result.Warnings,
			fmt.Sprintf("tags were not pushed: %v", scrub(err, req)))
	}

	result.Branch = branch
	return result, nil
}

// Redact strips embedded credentials from a URL so it can be shown to users.
func Redact(raw string) string {
	u, err := url.Parse(raw)
	if err != nil || u.User == nil {
		return raw
	}
	u.User = nil
	return u.String()
}

// scrub removes the request's credentials from an error's text.
func scrub(err error, req Request) error {
	msg := err.Error()
	for _, raw := range []string{req.SourceURL, req.DestURL} {
		u, parseErr := url.Parse(raw)
		if parseErr != nil || u.User == nil {
			continue
		}
		msg = strings.ReplaceAll(msg, u.User.String()+"@", "")
		if pass, ok := u.User.Password(); ok && pass != "" {
			msg = strings.ReplaceAll(msg, pass, "***")
		}
		if name := u.User.Username(); name != "" {
			msg = strings.ReplaceAll(msg, name, "***")
		}
	}
	if msg == err.Error() {
		return err
	}
	return fmt.Errorf("%s", msg)
}
