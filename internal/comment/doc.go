// Package comment resolves developer comment templates.
//
// A template is a plain string with placeholders that are substituted when a
// comment is requested:
//
//   - {date}: current date, rendered with date_format
//   - {user}: configured user name
//   - {branch}: current branch of the working directory
//   - {partialBranch}: first match of partial_branch in the branch name
//     ({identifier} is an alias)
//
// Substitution is a single pass: values are never scanned for placeholders
// again, and unknown placeholders are left as they are.
//
// # Comment Styles
//
// The resolved text is wrapped for the target language. Configured
// additional formats are checked first (first match wins, "<symbol> text"),
// then the built-in styles:
//
//   - xml, html: "<!-- text -->"
//   - javascript, javascriptreact, typescript, typescriptreact, csharp: "// text"
//
// Any other language id leaves the text unwrapped.
//
// # Branch Lookup
//
// The branch is only looked up when the template contains a branch
// placeholder, and then exactly once. Lookup failures resolve to an empty
// string; resolving a comment never fails.
package comment
