// Package runner discovers Markdown files and lints them concurrently.
package runner

import "github.com/yaklabco/cjkspacing/pkg/config"

// Options controls multi-file linting behavior.
type Options struct {
	// Paths are the user-specified files or directories to process.
	// If empty, the working directory is processed.
	Paths []string

	// WorkingDir is the base directory used to resolve relative Paths and
	// to match patterns. If empty, the process working directory is used.
	WorkingDir string

	// Extensions are extra file extensions treated as Markdown, on top of
	// the ones go-enry knows (".md", ".markdown", ...).
	Extensions []string

	// Include restricts discovery to files matching one of these globs,
	// relative to WorkingDir. Empty means every Markdown file.
	Include []string

	// Exclude skips files and directories matching one of these globs.
	Exclude []string

	// IncludeVendored disables the vendored-path check (node_modules/,
	// vendor/, third_party/, ...).
	IncludeVendored bool

	// FollowSymlinks controls whether directory symlinks are traversed.
	FollowSymlinks bool

	// Workers is the maximum number of files processed at once.
	// 0 or negative means runtime.NumCPU().
	Workers int

	// Config is the resolved configuration for this run.
	Config *config.Config
}

// OptionsFromConfig builds Options for paths from the resolved configuration.
func OptionsFromConfig(cfg *config.Config, paths []string) Options {
	opts := Options{Paths: paths, Config: cfg}
	if cfg != nil {
		opts.Extensions = cfg.Extensions
		opts.Exclude = cfg.Ignore
		opts.Workers = cfg.Workers
	}
	return opts
}

func (o Options) effectivePaths() []string {
	if len(o.Paths) == 0 {
		return []string{"."}
	}
	return o.Paths
}
