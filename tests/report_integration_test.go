package tests

import (
	"bytes"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/temirov/l10n_scripts/internal/report"
)

const (
	gitExecutableNameConstant            = "git"
	olderMilestoneBranchConstant         = "dev-1.15-ko.3"
	newerMilestoneBranchConstant         = "dev-1.15-ko.4"
	localizationLanguageConstant         = "ko"
	repositoryFlagArgumentConstant       = "--repository"
	modifiedSourceFileConstant           = "content/en/docs/storage.md"
	renamedSourceFileConstant            = "content/en/docs/volumes.md"
	renamedDestinationFileConstant       = "content/en/docs/persistent-volumes.md"
	deletedSourceFileConstant            = "content/en/docs/federation.md"
	untranslatedSourceFileConstant       = "content/en/docs/ingress.md"
	modifiedLocalizedFileConstant        = "content/ko/docs/storage.md"
	renamedLocalizedFileConstant         = "content/ko/docs/volumes.md"
	deletedLocalizedFileConstant         = "content/ko/docs/federation.md"
	storageDocumentBodyConstant          = "Storage classes\nhave parameters\nthat describe volumes.\n"
	updatedStorageDocumentBodyConstant   = "Storage classes\nhave parameters\nthat describe volumes\nand reclaim policies.\n"
	volumesDocumentBodyConstant          = "Volumes outlive\nthe containers\nthat mount them.\n"
	federationDocumentBodyConstant       = "Federation joins\nmultiple clusters\nunder one control plane.\n"
	ingressDocumentBodyConstant          = "Ingress exposes\nHTTP routes\nto services.\n"
	updatedIngressDocumentBodyConstant   = "Ingress exposes\nHTTP and HTTPS routes\nto services.\n"
	localizedDocumentBodyConstant        = "스토리지 클래스 문서\n"
	expectedModifiedHeadingConstant      = "### 1 files to be modified"
	expectedRenamedHeadingConstant       = "### 1 files to be renamed"
	expectedDeletedHeadingConstant       = "### 1 files to be deleted"
	expectedRenameEntryConstant          = "  1. [ ] R100 content/en/docs/volumes.md -> content/en/docs/persistent-volumes.md"
	expectedDeleteEntryConstant          = "  1. [ ] content/en/docs/federation.md"
	expectedModifiedEntryPrefix          = "  1. [ ] content/en/docs/storage.md "
	expectedProposedSolutionConstant     = "## Proposed Solution"
	expectedEditInstructionConstant      = "vi content/ko/docs/storage.md"
	expectedDiffInstructionConstant      = "git diff dev-1.15-ko.3 dev-1.15-ko.4 -- content/en/docs/storage.md"
	untranslatedEntryConstant            = "content/en/docs/ingress.md"
	expectedEmptyMilestoneReportConstant = "# This is a Bug Report\n" +
		"## Problem\n" +
		"Outdated files in the dev-1.15-ko.3 branch.\n" +
		"\n" +
		"### 0 files to be modified\n" +
		"\n" +
		"### 0 files to be renamed\n" +
		"\n" +
		"### 0 files to be deleted\n" +
		"\n" +
		"## Pages to Update\n" +
		"\n"
)

func requireGitExecutable(testInstance *testing.T) {
	testInstance.Helper()
	if _, lookupError := exec.LookPath(gitExecutableNameConstant); lookupError != nil {
		testInstance.Skipf("git executable unavailable: %v", lookupError)
	}
}

func runGitCommand(testInstance *testing.T, repositoryPath string, arguments ...string) {
	testInstance.Helper()
	command := exec.Command(gitExecutableNameConstant, arguments...)
	command.Dir = repositoryPath
	command.Env = append(os.Environ(),
		"GIT_AUTHOR_NAME=integration",
		"GIT_AUTHOR_EMAIL=integration@example.com",
		"GIT_COMMITTER_NAME=integration",
		"GIT_COMMITTER_EMAIL=integration@example.com",
	)
	outputBytes, runError := command.CombinedOutput()
	require.NoError(testInstance, runError, string(outputBytes))
}

func writeRepositoryFile(testInstance *testing.T, repositoryPath string, relativePath string, contents string) {
	testInstance.Helper()
	absolutePath := filepath.Join(repositoryPath, filepath.FromSlash(relativePath))
	require.NoError(testInstance, os.MkdirAll(filepath.Dir(absolutePath), 0o755))
	require.NoError(testInstance, os.WriteFile(absolutePath, []byte(contents), 0o644))
}

func createMilestoneRepository(testInstance *testing.T) string {
	testInstance.Helper()
	repositoryPath := testInstance.TempDir()

	runGitCommand(testInstance, repositoryPath, "init")
	runGitCommand(testInstance, repositoryPath, "checkout", "-b", olderMilestoneBranchConstant)

	writeRepositoryFile(testInstance, repositoryPath, modifiedSourceFileConstant, storageDocumentBodyConstant)
	writeRepositoryFile(testInstance, repositoryPath, renamedSourceFileConstant, volumesDocumentBodyConstant)
	writeRepositoryFile(testInstance, repositoryPath, deletedSourceFileConstant, federationDocumentBodyConstant)
	writeRepositoryFile(testInstance, repositoryPath, untranslatedSourceFileConstant, ingressDocumentBodyConstant)
	writeRepositoryFile(testInstance, repositoryPath, modifiedLocalizedFileConstant, localizedDocumentBodyConstant)
	writeRepositoryFile(testInstance, repositoryPath, renamedLocalizedFileConstant, localizedDocumentBodyConstant)
	writeRepositoryFile(testInstance, repositoryPath, deletedLocalizedFileConstant, localizedDocumentBodyConstant)
	runGitCommand(testInstance, repositoryPath, "add", ".")
	runGitCommand(testInstance, repositoryPath, "commit", "-m", "seed older milestone")

	runGitCommand(testInstance, repositoryPath, "checkout", "-b", newerMilestoneBranchConstant)
	writeRepositoryFile(testInstance, repositoryPath, modifiedSourceFileConstant, updatedStorageDocumentBodyConstant)
	writeRepositoryFile(testInstance, repositoryPath, untranslatedSourceFileConstant, updatedIngressDocumentBodyConstant)
	runGitCommand(testInstance, repositoryPath, "mv", filepath.FromSlash(renamedSourceFileConstant), filepath.FromSlash(renamedDestinationFileConstant))
	runGitCommand(testInstance, repositoryPath, "rm", "--quiet", filepath.FromSlash(deletedSourceFileConstant))
	runGitCommand(testInstance, repositoryPath, "add", ".")
	runGitCommand(testInstance, repositoryPath, "commit", "-m", "seed newer milestone")

	return repositoryPath
}

func executeReportCommand(testInstance *testing.T, arguments []string) string {
	testInstance.Helper()
	outputBuffer := &bytes.Buffer{}
	commandBuilder := &report.CommandBuilder{
		LoggerProvider: func() *zap.Logger { return zap.NewNop() },
		Output:         outputBuffer,
	}
	reportCommand, buildError := commandBuilder.Build()
	require.NoError(testInstance, buildError)
	reportCommand.SetArgs(arguments)
	reportCommand.SilenceErrors = true
	require.NoError(testInstance, reportCommand.Execute())
	return outputBuffer.String()
}

func TestReportIntegrationClassifiesMilestoneChanges(testInstance *testing.T) {
	requireGitExecutable(testInstance)
	repositoryPath := createMilestoneRepository(testInstance)

	renderedReport := executeReportCommand(testInstance, []string{
		localizationLanguageConstant,
		olderMilestoneBranchConstant,
		newerMilestoneBranchConstant,
		repositoryFlagArgumentConstant, repositoryPath,
	})

	require.Contains(testInstance, renderedReport, expectedModifiedHeadingConstant)
	require.Contains(testInstance, renderedReport, expectedModifiedEntryPrefix)
	require.Contains(testInstance, renderedReport, "file changed")
	require.Contains(testInstance, renderedReport, expectedRenamedHeadingConstant)
	require.Contains(testInstance, renderedReport, expectedRenameEntryConstant)
	require.Contains(testInstance, renderedReport, expectedDeletedHeadingConstant)
	require.Contains(testInstance, renderedReport, expectedDeleteEntryConstant)
	require.Contains(testInstance, renderedReport, expectedProposedSolutionConstant)
	require.Contains(testInstance, renderedReport, expectedDiffInstructionConstant)
	require.Contains(testInstance, renderedReport, expectedEditInstructionConstant)
	require.NotContains(testInstance, renderedReport, untranslatedEntryConstant)
	require.True(testInstance, strings.HasSuffix(renderedReport, "## Pages to Update\n\n"))
}

func TestReportIntegrationIdenticalMilestonesProduceEmptyReport(testInstance *testing.T) {
	requireGitExecutable(testInstance)
	repositoryPath := createMilestoneRepository(testInstance)

	renderedReport := executeReportCommand(testInstance, []string{
		localizationLanguageConstant,
		olderMilestoneBranchConstant,
		olderMilestoneBranchConstant,
		repositoryFlagArgumentConstant, repositoryPath,
	})

	require.Equal(testInstance, expectedEmptyMilestoneReportConstant, renderedReport)
}
