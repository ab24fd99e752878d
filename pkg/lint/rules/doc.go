// Package rules provides the built-in lint rules for cjkspacing.
//
//   - CJK001: space-between-cjk-and-latin - a single space separates CJK
//     text from Latin letters, numbers and English-like punctuation, and
//     bold markers are spaced consistently with their surroundings.
//
// Rules register themselves with lint.DefaultRegistry on init.
package rules
