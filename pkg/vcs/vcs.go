// Package vcs records a freshly generated project in a git repository.
package vcs

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/format/gitignore"
	"github.com/go-git/go-git/v5/plumbing/object"
)

// VCS creates a repository in dir holding everything currently in it.
type VCS interface {
	Commit(ctx context.Context, dir, message string) error
}

// Git commits with go-git, no git binary required.
type Git struct {
	Name  string
	Email string
	// Now is used for the commit time; time.Now when nil.
	Now func() time.Time
}

func (g Git) signature() *object.Signature {
	name, email := g.Name, g.Email
	if name == "" {
		name = "frontkit"
	}
	if email == "" {
		email = "frontkit@localhost"
	}
	now := time.Now
	if g.Now != nil {
		now = g.Now
	}
	return &object.Signature{Name: name, Email: email, When: now()}
}

// Commit initialises dir as a repository, or opens the one a scaffold tool
// already created, stages every non-ignored file and commits it. A clean
// worktree is left alone.
func (g Git) Commit(ctx context.Context, dir, message string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	repo, err := git.PlainInit(dir, false)
	if errors.Is(err, git.ErrRepositoryAlreadyExists) {
		repo, err = git.PlainOpen(dir)
	}
	if err != nil {
		return fmt.Errorf("open repository: %w", err)
	}

	wt, err := repo.Worktree()
	if err != nil {
		return fmt.Errorf("worktree: %w", err)
	}

	patterns, err := gitignore.ReadPatterns(wt.Filesystem, nil)
	if err != nil {
		return fmt.Errorf("read ignore patterns: %w", err)
	}
	wt.Excludes = append(wt.Excludes, patterns...)

	if err := wt.AddWithOptions(&git.AddOptions{All: true}); err != nil {
		return fmt.Errorf("stage files: %w", err)
	}

	status, err := wt.Status()
	if err != nil {
		return fmt.Errorf("status: %w", err)
	}
	if status.IsClean() {
		return nil
	}

	sig := g.signature()
	if _, err := wt.Commit(message, &git.CommitOptions{Author: sig, Committer: sig}); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

// None skips version control entirely.
type None struct{}

func (None) Commit(context.Context, string, string) error { return nil }
