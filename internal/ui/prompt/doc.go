// Package prompt provides simple interactive prompts.
//
// Prompts render to stderr so that stdout stays clean for the comment or
// caret position printed by devcomment.
//
// Available prompts:
//   - [Confirm]: Yes/No question with a configurable default
//   - [TextInput]: Single-line text input
//   - [Select]: Single selection from a filterable list
package prompt
