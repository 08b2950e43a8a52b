// Package pathutils normalizes filesystem path inputs supplied on the command line.
package pathutils

import (
	"path/filepath"
	"strings"
)

const currentDirectoryPathConstant = "."

// RepositoryPathResolver normalizes the repository path supplied to commands.
type RepositoryPathResolver struct {
	homeExpander *HomeExpander
}

// NewRepositoryPathResolver constructs a resolver with the default home expander.
func NewRepositoryPathResolver() *RepositoryPathResolver {
	return NewRepositoryPathResolverWithExpander(nil)
}

// NewRepositoryPathResolverWithExpander constructs a resolver using the provided expander.
func NewRepositoryPathResolverWithExpander(homeExpander *HomeExpander) *RepositoryPathResolver {
	resolvedExpander := homeExpander
	if resolvedExpander == nil {
		resolvedExpander = NewHomeExpander()
	}
	return &RepositoryPathResolver{homeExpander: resolvedExpander}
}

// Resolve trims, expands home shortcuts, and cleans the candidate repository path.
// An empty candidate resolves to the current working directory.
func (resolver *RepositoryPathResolver) Resolve(candidateRepositoryPath string) string {
	trimmedRepositoryPath := strings.TrimSpace(candidateRepositoryPath)
	if len(trimmedRepositoryPath) == 0 {
		return currentDirectoryPathConstant
	}

	expandedRepositoryPath := trimmedRepositoryPath
	if resolver != nil && resolver.homeExpander != nil {
		expandedRepositoryPath = resolver.homeExpander.Expand(trimmedRepositoryPath)
	}

	return filepath.Clean(expandedRepositoryPath)
}
