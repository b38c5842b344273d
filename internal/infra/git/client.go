// Package git provides git repository discovery.
package git

import (
	"errors"
	"fmt"
	"path/filepath"

	gogit "github.com/go-git/go-git/v5"

	"github.com/runoshun/lintmux/internal/domain"
)

// Client locates the enclosing git repository for lintmux runs.
type Client struct {
	repoRoot string // Repository root (parent of .git)
	gitDir   string // Path to .git directory
}

// NewClient creates a new git client by detecting the repository root
// from the given directory. Walks up parent directories like git does.
func NewClient(dir string) (*Client, error) {
	repo, err := gogit.PlainOpenWithOptions(dir, &gogit.PlainOpenOptions{
		DetectDotGit: true,
	})
	if err != nil {
		if errors.Is(err, gogit.ErrRepositoryNotExists) {
			return nil, domain.ErrNotGitRepository
		}
		return nil, fmt.Errorf("open git repository: %w", err)
	}

	wt, err := repo.Worktree()
	if err != nil {
		// Bare repositories have no working tree to lint
		if errors.Is(err, gogit.ErrIsBareRepository) {
			return nil, domain.ErrNotGitRepository
		}
		return nil, fmt.Errorf("resolve worktree: %w", err)
	}

	repoRoot := wt.Filesystem.Root()
	return &Client{
		repoRoot: repoRoot,
		gitDir:   filepath.Join(repoRoot, gogit.GitDirName),
	}, nil
}

// RepoRoot returns the repository root directory.
func (c *Client) RepoRoot() string {
	return c.repoRoot
}

// GitDir returns the .git directory path.
func (c *Client) GitDir() string {
	return c.gitDir
}
