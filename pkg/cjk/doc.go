// Package cjk inserts a single space at every boundary between CJK script
// text (Han, Katakana, Hiragana, Hangul) and Latin letters, digits and
// configured punctuation inside a Markdown string.
//
// A call to Transformer.Apply runs six passes in order:
//
//  1. emphasis isolation: bold and italic spans become opaque placeholders
//  2. boundary spacing on the text outside emphasis
//  3. spacing around masked links, wiki-links, inline code and inline math
//  4. emphasis restoration
//  5. boundary spacing inside italic and bold spans
//  6. bold-boundary normalization
//
// Every pass builds a new string and recomputes its ranges from the text it
// receives. The transform is idempotent: applying it to its own output
// returns that output unchanged.
//
// Code, math, HTML, links, images, wiki-links, tags and front matter are
// expected to have been masked by the caller (see package mask) before
// Apply runs.
package cjk
