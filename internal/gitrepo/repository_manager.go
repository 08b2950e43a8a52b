package gitrepo

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/temirov/l10n_scripts/internal/execshell"
)

const (
	gitDiffSubcommandConstant         = "diff"
	gitCatFileSubcommandConstant      = "cat-file"
	gitNameStatusFlagConstant         = "--name-status"
	gitShortstatFlagConstant          = "--shortstat"
	gitCatFileExistsFlagConstant      = "-e"
	gitPathspecSeparatorConstant      = "--"
	gitObjectReferenceTemplateConst   = "%s:%s"
	requiredValueTemplateConstant     = "%s is required"
	repositoryPathFieldNameConstant   = "repository path"
	olderRevisionFieldNameConstant    = "older revision"
	newerRevisionFieldNameConstant    = "newer revision"
	revisionFieldNameConstant         = "revision"
	filePathFieldNameConstant         = "file path"
	pathPrefixFieldNameConstant       = "path prefix"
	carriageReturnCharacterConstant   = "\r"
	changeListingLineSeparatorLiteral = "\n"
)

// ErrGitExecutorNotConfigured indicates the repository manager was constructed without an executor.
var ErrGitExecutorNotConfigured = errors.New("git executor not configured")

// GitExecutor describes the git invocation capability required by RepositoryManager.
type GitExecutor interface {
	ExecuteGit(executionContext context.Context, details execshell.CommandDetails) (execshell.ExecutionResult, error)
}

// RepositoryManager performs read-only operations against a Git repository.
type RepositoryManager struct {
	gitExecutor GitExecutor
}

// NewRepositoryManager constructs a RepositoryManager with the provided executor.
func NewRepositoryManager(gitExecutor GitExecutor) (*RepositoryManager, error) {
	if gitExecutor == nil {
		return nil, ErrGitExecutorNotConfigured
	}
	return &RepositoryManager{gitExecutor: gitExecutor}, nil
}

// ChangedStatuses lists name-status lines for paths under pathPrefix that differ between two revisions.
func (manager *RepositoryManager) ChangedStatuses(executionContext context.Context, repositoryPath string, olderRevision string, newerRevision string, pathPrefix string) ([]string, error) {
	if validationError := requireValues(map[string]string{
		repositoryPathFieldNameConstant: repositoryPath,
		olderRevisionFieldNameConstant:  olderRevision,
		newerRevisionFieldNameConstant:  newerRevision,
		pathPrefixFieldNameConstant:     pathPrefix,
	}); validationError != nil {
		return nil, validationError
	}

	commandDetails := execshell.CommandDetails{
		Arguments: []string{
			gitDiffSubcommandConstant,
			olderRevision,
			newerRevision,
			gitNameStatusFlagConstant,
			gitPathspecSeparatorConstant,
			pathPrefix,
		},
		WorkingDirectory: repositoryPath,
	}

	executionResult, executionError := manager.gitExecutor.ExecuteGit(executionContext, commandDetails)
	if executionError != nil {
		return nil, executionError
	}

	return splitChangeListing(executionResult.StandardOutput), nil
}

// DiffText returns the diff of a single file between two revisions, trimmed
// of surrounding whitespace. When condensed is true the summarized
// --shortstat form is returned instead of the full patch.
func (manager *RepositoryManager) DiffText(executionContext context.Context, repositoryPath string, olderRevision string, newerRevision string, filePath string, condensed bool) (string, error) {
	if validationError := requireValues(map[string]string{
		repositoryPathFieldNameConstant: repositoryPath,
		olderRevisionFieldNameConstant:  olderRevision,
		newerRevisionFieldNameConstant:  newerRevision,
		filePathFieldNameConstant:       filePath,
	}); validationError != nil {
		return "", validationError
	}

	commandArguments := []string{gitDiffSubcommandConstant, olderRevision, newerRevision}
	if condensed {
		commandArguments = append(commandArguments, gitShortstatFlagConstant)
	}
	commandArguments = append(commandArguments, gitPathspecSeparatorConstant, filePath)

	commandDetails := execshell.CommandDetails{
		Arguments:        commandArguments,
		WorkingDirectory: repositoryPath,
	}

	executionResult, executionError := manager.gitExecutor.ExecuteGit(executionContext, commandDetails)
	if executionError != nil {
		return "", executionError
	}

	return strings.TrimSpace(executionResult.StandardOutput), nil
}

// ObjectExists reports whether the repository tracks filePath at the given revision.
func (manager *RepositoryManager) ObjectExists(executionContext context.Context, repositoryPath string, revision string, filePath string) (bool, error) {
	if validationError := requireValues(map[string]string{
		repositoryPathFieldNameConstant: repositoryPath,
		revisionFieldNameConstant:       revision,
		filePathFieldNameConstant:       filePath,
	}); validationError != nil {
		return false, validationError
	}

	objectReference := fmt.Sprintf(gitObjectReferenceTemplateConst, revision, filePath)
	commandDetails := execshell.CommandDetails{
		Arguments:        []string{gitCatFileSubcommandConstant, gitCatFileExistsFlagConstant, objectReference},
		WorkingDirectory: repositoryPath,
	}

	_, executionError := manager.gitExecutor.ExecuteGit(executionContext, commandDetails)
	if executionError != nil {
		commandFailure := execshell.CommandFailedError{}
		if errors.As(executionError, &commandFailure) {
			return false, nil
		}
		return false, executionError
	}

	return true, nil
}

func requireValues(namedValues map[string]string) error {
	for fieldName, fieldValue := range namedValues {
		if len(strings.TrimSpace(fieldValue)) == 0 {
			return fmt.Errorf(requiredValueTemplateConstant, fieldName)
		}
	}
	return nil
}

func splitChangeListing(changeListing string) []string {
	rawLines := strings.Split(changeListing, changeListingLineSeparatorLiteral)
	statusLines := make([]string, 0, len(rawLines))
	for _, rawLine := range rawLines {
		trimmedLine := strings.TrimSpace(strings.TrimSuffix(rawLine, carriageReturnCharacterConstant))
		if len(trimmedLine) == 0 {
			continue
		}
		statusLines = append(statusLines, trimmedLine)
	}
	return statusLines
}
