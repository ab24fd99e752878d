package runner

import (
	"fmt"
	"path"
	"path/filepath"

	"github.com/gobwas/glob"
)

// patternSet is a compiled list of slash-separated globs. "*" stops at a
// path separator, "**" crosses them.
type patternSet []glob.Glob

func compilePatterns(patterns []string) (patternSet, error) {
	set := make(patternSet, 0, len(patterns))
	for _, p := range patterns {
		g, err := glob.Compile(filepath.ToSlash(p), '/')
		if err != nil {
			return nil, fmt.Errorf("invalid pattern %q: %w", p, err)
		}
		set = append(set, g)
	}
	return set, nil
}

// matchFile reports whether the relative file path, or its base name,
// matches any pattern.
func (ps patternSet) matchFile(rel string) bool {
	rel = filepath.ToSlash(rel)
	base := path.Base(rel)
	for _, g := range ps {
		if g.Match(rel) || g.Match(base) {
			return true
		}
	}
	return false
}

// matchDir is matchFile for directories; "dir/**" also matches dir itself.
func (ps patternSet) matchDir(rel string) bool {
	rel = filepath.ToSlash(rel)
	for _, g := range ps {
		if g.Match(rel + "/") {
			return true
		}
	}
	return ps.matchFile(rel)
}
