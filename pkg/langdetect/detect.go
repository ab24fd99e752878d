// Package langdetect classifies files by language using go-enry.
// Discovery uses it to decide which files are Markdown and which paths are
// vendored and should not be linted.
package langdetect

import (
	"path/filepath"
	"slices"
	"strings"

	"github.com/go-enry/go-enry/v2"
)

// Markdown is the go-enry (linguist) name of the Markdown language.
const Markdown = "Markdown"

// MarkdownExtensions returns the lowercase file extensions go-enry
// associates with Markdown, sorted.
func MarkdownExtensions() []string {
	exts := enry.GetLanguageExtensions(Markdown)
	out := make([]string, 0, len(exts))
	for _, ext := range exts {
		out = append(out, strings.ToLower(ext))
	}
	slices.Sort(out)
	return slices.Compact(out)
}

// IsMarkdown reports whether path names a Markdown file, either by a known
// Markdown filename or extension or by one of the extra extensions given.
//
// Extensions like ".md" are ambiguous in linguist (GCC machine description
// files share it), so any candidate language equal to Markdown is accepted.
func IsMarkdown(path string, extra ...string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, e := range extra {
		if ext != "" && strings.EqualFold(normalizeExt(e), ext) {
			return true
		}
	}

	if lang, ok := enry.GetLanguageByFilename(filepath.Base(path)); ok {
		return lang == Markdown
	}

	return slices.Contains(enry.GetLanguagesByExtension(strings.ToLower(path), nil, nil), Markdown)
}

// Detect returns the language of a file from its name, falling back to
// modelines and shebangs in content. It returns "" when nothing matches.
func Detect(path string, content []byte) string {
	if lang, ok := enry.GetLanguageByFilename(filepath.Base(path)); ok {
		return lang
	}
	if langs := enry.GetLanguagesByExtension(path, content, nil); len(langs) > 0 {
		if slices.Contains(langs, Markdown) {
			return Markdown
		}
		return langs[0]
	}
	if lang, ok := enry.GetLanguageByModeline(content); ok {
		return lang
	}
	if lang, ok := enry.GetLanguageByShebang(content); ok {
		return lang
	}
	return ""
}

// IsVendored reports whether relPath lies in a vendored or third-party
// directory such as node_modules/ or vendor/.
func IsVendored(relPath string) bool {
	return enry.IsVendor(filepath.ToSlash(relPath))
}

func normalizeExt(ext string) string {
	if ext == "" || strings.HasPrefix(ext, ".") {
		return ext
	}
	return "." + ext
}
