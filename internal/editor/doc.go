// Package editor places resolved comments into documents.
//
// [Placement] inserts text at the active document's selection and moves the
// caret afterwards. Documents are reached through the small [Document] and
// [Editor] interfaces; [MemoryDocument] keeps text in memory and
// [FileDocument] edits a file on disk under a lock.
//
// Positions are zero-based. Columns count characters (runes), not bytes.
package editor
