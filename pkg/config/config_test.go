package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("GITBRIDGE_CONFIG", "")
	t.Setenv("GITBRIDGE_API", "")
	t.Setenv("GITBRIDGE_GIT", "")

	s := Load()
	assert.Equal(t, "https://api.github.com", s.APIBase)
	assert.Equal(t, "git", s.GitBin)
	assert.Contains(t, s.ConfigPath, ".gitbridge")
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("GITBRIDGE_CONFIG", "/tmp/accounts.json")
	t.Setenv("GITBRIDGE_API", "http://127.0.0.1:8080")
	t.Setenv("GITBRIDGE_GIT", "/usr/local/bin/git")

	s := Load()
	assert.Equal(t, "/tmp/accounts.json", s.ConfigPath)
	assert.Equal(t, "http://127.0.0.1:8080", s.APIBase)
	assert.Equal(t, "/usr/local/bin/git", s.GitBin)
}
