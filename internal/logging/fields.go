// Package logging provides a structured logging wrapper around charmbracelet/log.
package logging

// Field name constants for structured logging.
// Using constants prevents typos and enables IDE autocomplete.
const (
	// Common fields.
	FieldError      = "error"
	FieldPath       = "path"
	FieldPaths      = "paths"
	FieldFiles      = "files"
	FieldLanguage   = "language"
	FieldWorkingDir = "working_dir"

	// Run option fields.
	FieldWrite = "write"
	FieldCheck = "check"
	FieldJobs  = "jobs"

	// Statistics fields.
	FieldFilesDiscovered = "files_discovered"
	FieldFilesProcessed  = "files_processed"
	FieldFilesChanged    = "files_changed"
	FieldFilesWritten    = "files_written"
	FieldFilesSkipped    = "files_skipped"
	FieldLinesPadded     = "lines_padded"
	FieldGroups          = "groups"

	// Version fields.
	FieldVersion = "version"
	FieldCommit  = "commit"
	FieldBuilt   = "built"

	// Session fields.
	FieldDoc        = "doc"
	FieldDocVersion = "doc_version"
	FieldDebounceMS = "debounce_ms"
	FieldSkipReason = "skip_reason"
	FieldConfigPath = "config_path"
	FieldBackupPath = "backup_path"
)
