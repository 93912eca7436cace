package types

// Git is the narrow set of version-control capabilities the transfer flow
// needs. One method per step keeps the external tool swappable in tests.
type Git interface {
	Clone(url, dir string) error
	BranchExists(dir, branch string) bool
	Checkout(dir, branch string) error
	CurrentBranch(dir string) (string, error)
	AddRemote(dir, name, url string) error
	Push(dir, remote, branch string, setUpstream bool) error
	PushTags(dir, remote string) error
}
