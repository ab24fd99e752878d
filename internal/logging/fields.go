package logging

// Field name constants for structured logging.
const (
	FieldError    = "error"
	FieldPath     = "path"
	FieldPaths    = "paths"
	FieldFiles    = "files"
	FieldReason   = "reason"
	FieldLanguage = "language"

	// Configuration fields.
	FieldConfig  = "config"
	FieldFlavor  = "flavor"
	FieldFix     = "fix"
	FieldDryRun  = "dry_run"
	FieldWorkers = "workers"

	// Processing fields.
	FieldRule        = "rule"
	FieldRegions     = "regions"
	FieldEdits       = "edits"
	FieldPasses      = "passes"
	FieldDuration    = "duration"
	FieldDiagnostics = "diagnostics"

	// Statistics fields.
	FieldFilesDiscovered = "files_discovered"
	FieldFilesWithIssues = "files_with_issues"
	FieldFilesModified   = "files_modified"

	// Version fields.
	FieldVersion = "version"
	FieldCommit  = "commit"
	FieldBuilt   = "built"
)
