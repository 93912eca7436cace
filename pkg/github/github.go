package github

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/tidwall/gjson"

	"github.com/k8scat/gitbridge-go/pkg/types"
)

const defaultBaseAPI = "https://api.github.com"

// Client talks to the hosting REST API on behalf of one account. Every
// operation is a single authenticated round trip; nothing is cached.
type Client struct {
	AccessToken string
	BaseAPI     string

	httpClient *http.Client
}

// NewClient creates a client for a personal access token.
func NewClient(token string) *Client {
	return &Client{
		AccessToken: token,
		BaseAPI:     defaultBaseAPI,
		httpClient:  &http.Client{},
	}
}

// request performs one API round trip and returns the status code and body.
// Transport-level failures are errors; non-2xx statuses are not, callers
// interpret them per operation.
func (c *Client) request(method, path string, payload any) (int, []byte, error) {
	var reqBody io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return 0, nil, fmt.Errorf("encode request body: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequest(method, c.BaseAPI+path, reqBody)
	if err != nil {
		return 0, nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Authorization", "token "+c.AccessToken)
	req.Header.Set("Accept", "application/vnd.github+json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	if c.httpClient == nil {
		c.httpClient = &http.Client{}
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, nil, fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, nil, fmt.Errorf("read response body: %w", err)
	}
	return resp.StatusCode, body, nil
}

// GetUser fetches the authenticated user behind the token.
func (c *Client) GetUser() (*types.User, error) {
	status, body, err := c.request(http.MethodGet, "/user", nil)
	if err != nil {
		return nil, err
	}
	if status != http.StatusOK {
		return nil, apiError("get user", status, body)
	}

	var user types.User
	if err := json.Unmarshal(body, &user); err != nil {
		return nil, fmt.Errorf("decode user response: %w", err)
	}
	return &user, nil
}

// ListRepos lists the repositories of the authenticated user.
func (c *Client) ListRepos() ([]types.Repo, error) {
	status, body, err := c.request(http.MethodGet, "/user/repos", nil)
	if err != nil {
		return nil, err
	}
	if status != http.StatusOK {
		return nil, apiError("list repositories", status, body)
	}

	var repos []types.Repo
	if err := json.Unmarshal(body, &repos); err != nil {
		return nil, fmt.Errorf("decode repository list: %w", err)
	}
	return repos, nil
}

// LookupRepo fetches a repository by full name. The second result reports
// whether the repository exists: a 404 or a body whose message says
// "Not Found" is a successful lookup of an absent repository, not an error.
func (c *Client) LookupRepo(fullName string) (*types.Repo, bool, error) {
	status, body, err := c.request(http.MethodGet, "/repos/"+fullName, nil)
	if err != nil {
		return nil, false, err
	}

	if status == http.StatusNotFound || isNotFoundBody(body) {
		slog.Debug("repository not found", "repo", fullName)
		return nil, false, nil
	}
	if status != http.StatusOK {
		return nil, false, apiError("get repository", status, body)
	}

	var repo types.Repo
	if err := json.Unmarshal(body, &repo); err != nil {
		return nil, false, fmt.Errorf("decode repository response: %w", err)
	}
	return &repo, true, nil
}

// RepoExists reports whether a repository exists and is accessible. A failed
// lookup also yields false but is logged, so absence and failure stay
// distinguishable in diagnostics.
func (c *Client) RepoExists(fullName string) bool {
	_, found, err := c.LookupRepo(fullName)
	if err != nil {
		slog.Warn("repository lookup failed", "repo", fullName, "error", err)
		return false
	}
	return found
}

// CreateRepo creates a repository under the authenticated user. The second
// result reports the recognized "name already exists" outcome, which callers
// must treat as non-fatal.
func (c *Client) CreateRepo(name string, private bool, description string) (*types.Repo, bool, error) {
	payload := map[string]any{
		"name":        name,
		"private":     private,
		"description": description,
	}
	status, body, err := c.request(http.MethodPost, "/user/repos", payload)
	if err != nil {
		return nil, false, err
	}

	if isNameTakenBody(body) {
		slog.Debug("repository already exists", "name", name)
		return nil, true, nil
	}
	if status != http.StatusCreated {
		return nil, false, apiError("create repository", status, body)
	}

	var repo types.Repo
	if err := json.Unmarshal(body, &repo); err != nil {
		return nil, false, fmt.Errorf("decode repository response: %w", err)
	}
	return &repo, false, nil
}

// DeleteRepo deletes a repository by full name. Success is a 2xx status with
// an empty body; anything else fails with a token-permission hint since
// delete rights need a broader scope than the read operations.
func (c *Client) DeleteRepo(fullName string) error {
	status, body, err := c.request(http.MethodDelete, "/repos/"+fullName, nil)
	if err != nil {
		return err
	}
	if status < 200 || status > 299 {
		return fmt.Errorf("delete repository failed, status %d: %s; check the token permissions",
			status, strings.TrimSpace(string(body)))
	}
	return nil
}

// ListContents lists repository contents, optionally at a subpath. The API
// answers with an array for directories and a single object for files; both
// come back as a slice.
func (c *Client) ListContents(fullName, path string) ([]types.Content, error) {
	apiPath := "/repos/" + fullName + "/contents"
	if path != "" {
		apiPath += "/" + strings.TrimPrefix(path, "/")
	}

	status, body, err := c.request(http.MethodGet, apiPath, nil)
	if err != nil {
		return nil, err
	}
	if status != http.StatusOK {
		return nil, apiError("list contents", status, body)
	}

	if gjson.ParseBytes(body).IsArray() {
		var entries []types.Content
		if err := json.Unmarshal(body, &entries); err != nil {
			return nil, fmt.Errorf("decode contents response: %w", err)
		}
		return entries, nil
	}

	var entry types.Content
	if err := json.Unmarshal(body, &entry); err != nil {
		return nil, fmt.Errorf("decode contents response: %w", err)
	}
	return []types.Content{entry}, nil
}

// AuthCloneURL embeds the token into an https clone URL. The result is a
// secret and must never be logged verbatim.
func (c *Client) AuthCloneURL(cloneURL string) string {
	return strings.Replace(cloneURL, "https://", "https://"+c.AccessToken+"@", 1)
}

// RepoAddr builds the token-embedded push URL for a repository full name.
func (c *Client) RepoAddr(fullName string) string {
	return fmt.Sprintf("https://%s@github.com/%s.git", c.AccessToken, fullName)
}

// ParseRepoPath splits "owner/repo" into its parts. Bare names take
// defaultOwner; with neither an owner nor a default, the path is unusable.
func ParseRepoPath(repoPath, defaultOwner string) (string, string, error) {
	if owner, name, ok := strings.Cut(repoPath, "/"); ok {
		return owner, name, nil
	}
	if defaultOwner != "" {
		return defaultOwner, repoPath, nil
	}
	return "", "", fmt.Errorf("repository path %q has no owner and no default owner is known", repoPath)
}

// isNotFoundBody checks the semantic not-found marker GitHub returns on 404.
func isNotFoundBody(body []byte) bool {
	msg := gjson.GetBytes(body, "message").String()
	return strings.HasPrefix(strings.ToLower(msg), "not found")
}

// isNameTakenBody checks the validation error for a duplicate repository name.
func isNameTakenBody(body []byte) bool {
	for _, e := range gjson.GetBytes(body, "errors.#.message").Array() {
		if strings.Contains(e.String(), "name already exists") {
			return true
		}
	}
	return false
}

func apiError(op string, status int, body []byte) error {
	msg := gjson.GetBytes(body, "message").String()
	if msg == "" {
		msg = strings.TrimSpace(string(body))
	}
	return fmt.Errorf("%s failed, status %d: %s", op, status, msg)
}
