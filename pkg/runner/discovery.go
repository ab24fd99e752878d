package runner

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/yaklabco/cjkspacing/internal/logging"
	"github.com/yaklabco/cjkspacing/pkg/langdetect"
)

// discoverer carries the compiled state of one discovery run.
type discoverer struct {
	opts    Options
	workDir string
	include patternSet
	exclude patternSet
	seen    map[string]struct{}
	files   []string
}

// Discover finds the Markdown files under opts.Paths.
// It returns a sorted, de-duplicated list of absolute paths.
func Discover(ctx context.Context, opts Options) ([]string, error) {
	workDir, err := resolveWorkDir(opts.WorkingDir)
	if err != nil {
		return nil, fmt.Errorf("resolve working directory: %w", err)
	}

	include, err := compilePatterns(opts.Include)
	if err != nil {
		return nil, fmt.Errorf("include: %w", err)
	}
	exclude, err := compilePatterns(opts.Exclude)
	if err != nil {
		return nil, fmt.Errorf("exclude: %w", err)
	}

	d := &discoverer{
		opts:    opts,
		workDir: workDir,
		include: include,
		exclude: exclude,
		seen:    make(map[string]struct{}),
	}

	for _, input := range opts.effectivePaths() {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("discovery cancelled: %w", err)
		}

		absPath := input
		if !filepath.IsAbs(absPath) {
			absPath = filepath.Join(workDir, absPath)
		}
		absPath = filepath.Clean(absPath)

		info, err := os.Stat(absPath)
		if err != nil {
			return nil, fmt.Errorf("stat %s: %w", input, err)
		}

		if info.IsDir() {
			if err := d.walk(ctx, absPath); err != nil {
				return nil, err
			}
			continue
		}

		if d.matchesFile(absPath) {
			d.add(absPath)
		} else {
			logging.FromContext(ctx).Debug("skipping file",
				logging.FieldPath, input,
				logging.FieldLanguage, langdetect.Detect(absPath, nil))
		}
	}

	slices.Sort(d.files)
	return d.files, nil
}

func resolveWorkDir(workDir string) (string, error) {
	if workDir == "" {
		return os.Getwd()
	}
	return filepath.Abs(workDir)
}

func (d *discoverer) add(path string) {
	if _, ok := d.seen[path]; ok {
		return
	}
	d.seen[path] = struct{}{}
	d.files = append(d.files, path)
}

func (d *discoverer) rel(path string) string {
	rel, err := filepath.Rel(d.workDir, path)
	if err != nil {
		return path
	}
	return rel
}

// walk adds every matching file below root. Hidden entries, excluded
// directories and, unless enabled, vendored directories are skipped.
func (d *discoverer) walk(ctx context.Context, root string) error {
	logger := logging.FromContext(ctx)

	err := filepath.WalkDir(root, func(path string, entry fs.DirEntry, walkErr error) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		if walkErr != nil {
			if os.IsPermission(walkErr) {
				logger.Debug("skipping unreadable path", logging.FieldPath, path)
				return nil
			}
			return walkErr
		}

		rel := d.rel(path)

		if entry.IsDir() {
			if path == root {
				return nil
			}
			switch {
			case strings.HasPrefix(entry.Name(), "."):
				return filepath.SkipDir
			case d.exclude.matchDir(rel):
				logger.Debug("skipping directory", logging.FieldPath, rel, logging.FieldReason, "excluded")
				return filepath.SkipDir
			case !d.opts.IncludeVendored && d.vendored(root, path):
				logger.Debug("skipping directory", logging.FieldPath, rel, logging.FieldReason, "vendored")
				return filepath.SkipDir
			}
			return nil
		}

		if strings.HasPrefix(entry.Name(), ".") {
			return nil
		}

		if entry.Type()&fs.ModeSymlink != 0 {
			return d.followSymlink(ctx, path)
		}

		if d.matchesFile(path) {
			d.add(path)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("walk directory %s: %w", root, err)
	}
	return nil
}

// vendored reports whether dir is a vendored directory. The check uses the
// path below the walked root so that where the root itself lives does not
// matter.
func (d *discoverer) vendored(root, dir string) bool {
	rel, err := filepath.Rel(root, dir)
	if err != nil {
		return false
	}
	return langdetect.IsVendored(rel + "/")
}

// followSymlink adds a symlinked file, or walks a symlinked directory when
// FollowSymlinks is set. Broken links are ignored.
func (d *discoverer) followSymlink(ctx context.Context, path string) error {
	target, err := filepath.EvalSymlinks(path)
	if err != nil {
		return nil //nolint:nilerr // broken symlinks are skipped
	}
	info, err := os.Stat(target)
	if err != nil {
		return nil //nolint:nilerr // unreadable targets are skipped
	}

	if info.IsDir() {
		if !d.opts.FollowSymlinks {
			return nil
		}
		// Walk the target: WalkDir does not descend into a symlinked root.
		return d.walk(ctx, target)
	}

	if d.matchesFile(path) {
		d.add(path)
	}
	return nil
}

func (d *discoverer) matchesFile(path string) bool {
	if !langdetect.IsMarkdown(path, d.opts.Extensions...) {
		return false
	}

	rel := d.rel(path)
	if d.exclude.matchFile(rel) {
		return false
	}
	if len(d.include) > 0 && !d.include.matchFile(rel) {
		return false
	}
	return true
}
