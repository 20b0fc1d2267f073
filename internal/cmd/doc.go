// Package cmd provides helpers for executing external commands with proper
// error handling.
//
// [OutputContext] captures stderr and uses it as the error message when the
// command fails, so a failing "git branch" reports git's own explanation
// ("fatal: not a git repository ...") instead of "exit status 128".
// Every invocation is logged through the context logger in verbose mode.
package cmd
