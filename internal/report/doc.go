// Package report compares two revisions of a documentation tree and renders
// a markdown bug report describing localized files that have fallen behind
// their source-language counterparts.
//
// The Classifier walks the name-status diff between two milestone branches,
// keeps entries whose localized counterpart still exists at the newer
// revision, and groups them into modified, renamed, and deleted lists. The
// renderer substitutes those lists into a fixed issue template written to
// standard output by the Cobra command in this package.
package report
