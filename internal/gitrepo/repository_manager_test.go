package gitrepo_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/temirov/l10n_scripts/internal/execshell"
	"github.com/temirov/l10n_scripts/internal/gitrepo"
)

const (
	testRepositoryPathConstant = "/workspace/website"
	testOlderRevisionConstant  = "upstream/dev-1.32-ko.2"
	testNewerRevisionConstant  = "upstream/dev-1.32-ko.3"
	testPathPrefixConstant     = "content/en"
	testFilePathConstant       = "content/en/docs/concepts/overview.md"
	testShortStatOutputLiteral = " 1 file changed, 12 insertions(+), 4 deletions(-)\n"
	testFullDiffOutputLiteral  = "diff --git a/content/en/docs/concepts/overview.md b/content/en/docs/concepts/overview.md\n"
)

type scriptedGitExecutor struct {
	recordedDetails []execshell.CommandDetails
	result          execshell.ExecutionResult
	executionError  error
}

func (executor *scriptedGitExecutor) ExecuteGit(_ context.Context, details execshell.CommandDetails) (execshell.ExecutionResult, error) {
	executor.recordedDetails = append(executor.recordedDetails, details)
	if executor.executionError != nil {
		return execshell.ExecutionResult{}, executor.executionError
	}
	return executor.result, nil
}

func TestNewRepositoryManagerRequiresExecutor(testInstance *testing.T) {
	manager, creationError := gitrepo.NewRepositoryManager(nil)
	require.ErrorIs(testInstance, creationError, gitrepo.ErrGitExecutorNotConfigured)
	require.Nil(testInstance, manager)
}

func TestChangedStatuses(testInstance *testing.T) {
	testCases := []struct {
		name              string
		standardOutput    string
		executionError    error
		expectedStatuses  []string
		expectError       bool
	}{
		{
			name:           "parses_status_lines_and_drops_blanks",
			standardOutput: "M\tcontent/en/docs/a.md\n\nR100\tcontent/en/docs/b.md\tcontent/en/docs/c.md\nD\tcontent/en/docs/d.md\n",
			expectedStatuses: []string{
				"M\tcontent/en/docs/a.md",
				"R100\tcontent/en/docs/b.md\tcontent/en/docs/c.md",
				"D\tcontent/en/docs/d.md",
			},
		},
		{
			name:             "tolerates_carriage_returns",
			standardOutput:   "M\tcontent/en/docs/a.md\r\n",
			expectedStatuses: []string{"M\tcontent/en/docs/a.md"},
		},
		{
			name:             "empty_listing_yields_no_statuses",
			standardOutput:   "\n",
			expectedStatuses: []string{},
		},
		{
			name: "propagates_command_failure",
			executionError: execshell.CommandFailedError{
				Result: execshell.ExecutionResult{ExitCode: 128, StandardError: "fatal: bad revision"},
			},
			expectError: true,
		},
	}

	for _, testCase := range testCases {
		testInstance.Run(testCase.name, func(testInstance *testing.T) {
			executor := &scriptedGitExecutor{
				result:         execshell.ExecutionResult{StandardOutput: testCase.standardOutput},
				executionError: testCase.executionError,
			}
			manager, creationError := gitrepo.NewRepositoryManager(executor)
			require.NoError(testInstance, creationError)

			statuses, statusError := manager.ChangedStatuses(context.Background(), testRepositoryPathConstant, testOlderRevisionConstant, testNewerRevisionConstant, testPathPrefixConstant)

			if testCase.expectError {
				require.Error(testInstance, statusError)
				return
			}

			require.NoError(testInstance, statusError)
			require.Equal(testInstance, testCase.expectedStatuses, statuses)
			require.Len(testInstance, executor.recordedDetails, 1)
			require.Equal(testInstance, []string{
				"diff",
				testOlderRevisionConstant,
				testNewerRevisionConstant,
				"--name-status",
				"--",
				testPathPrefixConstant,
			}, executor.recordedDetails[0].Arguments)
			require.Equal(testInstance, testRepositoryPathConstant, executor.recordedDetails[0].WorkingDirectory)
		})
	}
}

func TestChangedStatusesValidatesInputs(testInstance *testing.T) {
	executor := &scriptedGitExecutor{}
	manager, creationError := gitrepo.NewRepositoryManager(executor)
	require.NoError(testInstance, creationError)

	_, statusError := manager.ChangedStatuses(context.Background(), testRepositoryPathConstant, "", testNewerRevisionConstant, testPathPrefixConstant)
	require.Error(testInstance, statusError)
	require.Empty(testInstance, executor.recordedDetails)
}

func TestDiffText(testInstance *testing.T) {
	testCases := []struct {
		name              string
		condensed         bool
		standardOutput    string
		expectedDiff      string
		expectedArguments []string
	}{
		{
			name:           "condensed_requests_shortstat_and_trims",
			condensed:      true,
			standardOutput: testShortStatOutputLiteral,
			expectedDiff:   "1 file changed, 12 insertions(+), 4 deletions(-)",
			expectedArguments: []string{
				"diff",
				testOlderRevisionConstant,
				testNewerRevisionConstant,
				"--shortstat",
				"--",
				testFilePathConstant,
			},
		},
		{
			name:           "full_diff_trims_trailing_newline",
			condensed:      false,
			standardOutput: testFullDiffOutputLiteral,
			expectedDiff:   "diff --git a/content/en/docs/concepts/overview.md b/content/en/docs/concepts/overview.md",
			expectedArguments: []string{
				"diff",
				testOlderRevisionConstant,
				testNewerRevisionConstant,
				"--",
				testFilePathConstant,
			},
		},
	}

	for _, testCase := range testCases {
		testInstance.Run(testCase.name, func(testInstance *testing.T) {
			executor := &scriptedGitExecutor{result: execshell.ExecutionResult{StandardOutput: testCase.standardOutput}}
			manager, creationError := gitrepo.NewRepositoryManager(executor)
			require.NoError(testInstance, creationError)

			diffText, diffError := manager.DiffText(context.Background(), testRepositoryPathConstant, testOlderRevisionConstant, testNewerRevisionConstant, testFilePathConstant, testCase.condensed)
			require.NoError(testInstance, diffError)
			require.Equal(testInstance, testCase.expectedDiff, diffText)
			require.Len(testInstance, executor.recordedDetails, 1)
			require.Equal(testInstance, testCase.expectedArguments, executor.recordedDetails[0].Arguments)
		})
	}
}

func TestObjectExists(testInstance *testing.T) {
	executionFailure := execshell.CommandExecutionError{Cause: errors.New("git binary missing")}

	testCases := []struct {
		name           string
		executionError error
		expectedExists bool
		expectError    bool
	}{
		{
			name:           "tracked_object_reports_true",
			expectedExists: true,
		},
		{
			name: "missing_object_reports_false_without_error",
			executionError: execshell.CommandFailedError{
				Result: execshell.ExecutionResult{ExitCode: 128},
			},
		},
		{
			name:           "runner_failure_propagates",
			executionError: executionFailure,
			expectError:    true,
		},
	}

	for _, testCase := range testCases {
		testInstance.Run(testCase.name, func(testInstance *testing.T) {
			executor := &scriptedGitExecutor{executionError: testCase.executionError}
			manager, creationError := gitrepo.NewRepositoryManager(executor)
			require.NoError(testInstance, creationError)

			exists, existsError := manager.ObjectExists(context.Background(), testRepositoryPathConstant, testNewerRevisionConstant, testFilePathConstant)

			if testCase.expectError {
				require.Error(testInstance, existsError)
				require.False(testInstance, exists)
				return
			}

			require.NoError(testInstance, existsError)
			require.Equal(testInstance, testCase.expectedExists, exists)
			require.Len(testInstance, executor.recordedDetails, 1)
			require.Equal(testInstance, []string{
				"cat-file",
				"-e",
				testNewerRevisionConstant + ":" + testFilePathConstant,
			}, executor.recordedDetails[0].Arguments)
		})
	}
}
