// Package gitrepo contains helpers for interrogating Git repositories.
//
// It exposes RepositoryManager for reading change listings, diff summaries,
// and object presence at specific revisions, consumed by services that need
// structured Git operations.
package gitrepo
