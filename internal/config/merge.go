package config

// MergeLocal merges per-repo overrides into global settings, returning a new
// Settings without mutating global. Returns global unchanged if local is nil.
func MergeLocal(global Settings, local *LocalSettings) Settings {
	if local == nil {
		return global
	}

	merged := global

	if local.CommentFormat != "" {
		merged.CommentFormat = local.CommentFormat
	}
	if local.User != "" {
		merged.User = local.User
	}
	if local.DateFormat != "" {
		merged.DateFormat = local.DateFormat
	}
	if local.PartialBranch != nil {
		merged.PartialBranch = *local.PartialBranch
	}
	if local.MoveToEnd != nil {
		merged.MoveToEnd = *local.MoveToEnd
	}
	if local.BranchBackend != "" {
		merged.BranchBackend = local.BranchBackend
	}
	if local.UserFromGit != nil {
		merged.UserFromGit = *local.UserFromGit
	}

	// Local formats first so they win the first-match lookup.
	if len(local.AdditionalFormats) > 0 {
		formats := make([]AdditionalFormat, 0, len(local.AdditionalFormats)+len(global.AdditionalFormats))
		formats = append(formats, local.AdditionalFormats...)
		formats = append(formats, global.AdditionalFormats...)
		merged.AdditionalFormats = formats
	}

	return merged
}
