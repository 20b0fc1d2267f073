package git

import (
	"context"
	"errors"
	"fmt"
	"strings"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"

	"github.com/raphi011/devcomment/internal/log"
)

// Branch lookup backends selectable via config.
const (
	BackendGit    = "git"
	BackendNative = "native"
)

// ErrNoWorkDir is returned when a branch lookup has no directory to look in.
var ErrNoWorkDir = errors.New("no working directory")

// BranchProvider resolves the branch checked out in a working directory.
type BranchProvider interface {
	CurrentBranch(ctx context.Context, dir string) (string, error)
}

// BranchFunc adapts a function to BranchProvider.
type BranchFunc func(ctx context.Context, dir string) (string, error)

// CurrentBranch calls f.
func (f BranchFunc) CurrentBranch(ctx context.Context, dir string) (string, error) {
	return f(ctx, dir)
}

// NewBranches returns the provider for a backend name.
// Unknown names select the git CLI.
func NewBranches(backend string) BranchProvider {
	if backend == BackendNative {
		return NativeBranches{}
	}
	return ExecBranches{}
}

// ExecBranches looks up branches with the git CLI.
type ExecBranches struct{}

// CurrentBranch returns the current branch, or "" for a detached HEAD.
func (ExecBranches) CurrentBranch(ctx context.Context, dir string) (string, error) {
	if dir == "" {
		return "", ErrNoWorkDir
	}
	output, err := outputGit(ctx, dir, "branch", "--show-current")
	if err != nil {
		return "", fmt.Errorf("failed to get branch: %w", err)
	}
	return strings.TrimSpace(string(output)), nil
}

// NativeBranches looks up branches in-process with go-git.
type NativeBranches struct{}

// CurrentBranch returns the branch HEAD points to, or "" for a detached HEAD.
// HEAD is not resolved, so a branch without commits is still reported.
func (NativeBranches) CurrentBranch(ctx context.Context, dir string) (string, error) {
	if dir == "" {
		return "", ErrNoWorkDir
	}
	log.FromContext(ctx).Debug("opening repository", "dir", dir, "backend", BackendNative)

	repo, err := gogit.PlainOpenWithOptions(dir, &gogit.PlainOpenOptions{
		DetectDotGit:          true,
		EnableDotGitCommonDir: true,
	})
	if err != nil {
		return "", fmt.Errorf("failed to open repository: %w", err)
	}

	head, err := repo.Reference(plumbing.HEAD, false)
	if err != nil {
		return "", fmt.Errorf("failed to read HEAD: %w", err)
	}
	if head.Type() != plumbing.SymbolicReference {
		return "", nil
	}
	return head.Target().Short(), nil
}

type quietBranches struct {
	p BranchProvider
}

// Quiet wraps p so that every failure resolves to "" with a nil error.
// Failures are logged at debug level.
func Quiet(p BranchProvider) BranchProvider {
	return quietBranches{p: p}
}

func (q quietBranches) CurrentBranch(ctx context.Context, dir string) (string, error) {
	branch, err := q.p.CurrentBranch(ctx, dir)
	if err != nil {
		log.FromContext(ctx).Debug("branch lookup failed", "dir", dir, "error", err)
		return "", nil
	}
	return branch, nil
}
