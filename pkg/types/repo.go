package types

// Owner is the owning account embedded in a repository response.
type Owner struct {
	Login string `json:"login"`
	ID    int64  `json:"id"`
}

// Repo is the repository descriptor returned by the hosting API. It is
// fetched fresh for every operation and never cached.
type Repo struct {
	FullName      string `json:"full_name"`
	Name          string `json:"name"`
	Owner         Owner  `json:"owner"`
	Private       bool   `json:"private"`
	Description   string `json:"description"`
	CloneURL      string `json:"clone_url"`
	DefaultBranch string `json:"default_branch"`
}

// User is the authenticated user behind an access token.
type User struct {
	Login string `json:"login"`
	ID    int64  `json:"id"`
}

// Content is a single entry from a repository contents listing.
type Content struct {
	Name string `json:"name"`
	Path string `json:"path"`
	Type string `json:"type"`
	Size int64  `json:"size"`
}
