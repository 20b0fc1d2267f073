// Package git answers the two questions devcomment asks source control:
// which branch is checked out, and who the configured git user is.
//
// # Branch Lookup
//
// [BranchProvider] has two implementations:
//
//   - [ExecBranches] calls the git CLI ("git branch --show-current"), which
//     honours the user's git installation, worktrees and configuration.
//   - [NativeBranches] reads HEAD in-process with go-git and works without a
//     git binary on PATH.
//
// Both report an unborn branch by name and a detached HEAD as "". Callers that
// must never fail wrap a provider with [Quiet], which turns every lookup error
// into "".
//
// # Repository Layout
//
// [FindRoot] and [GitDir] locate the working tree root and the git directory
// without running git, following "gitdir:" files for linked worktrees.
package git
