package report

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/temirov/l10n_scripts/internal/execshell"
	"github.com/temirov/l10n_scripts/internal/gitrepo"
	"github.com/temirov/l10n_scripts/internal/ui"
	"github.com/temirov/l10n_scripts/internal/utils"
	pathutils "github.com/temirov/l10n_scripts/internal/utils/path"
)

const (
	commandUseConstant              = "l10n-scripts <l10n-language> <older-milestone> <newer-milestone>"
	commandShortDescriptionConstant = "Report outdated localized documentation between two milestone branches"
	commandLongDescriptionConstant  = "l10n-scripts generates a report of outdated contents in the content/<l10n-language> directory by comparing two localization team milestone branches. Localization team owners can open a GitHub issue with the generated report when they start a new team milestone."
	commandExampleConstant          = "  l10n-scripts ko dev-1.15-ko.3 dev-1.15-ko.4"
	sourceLanguageFlagNameConstant  = "src-lang"
	sourceLanguageFlagUsageConstant = "Source language code compared against the localized tree"
	repositoryFlagNameConstant      = "repository"
	repositoryFlagUsageConstant     = "Path to the documentation repository"
	contentPathTemplateConstant     = "content/%s"
	positionalArgumentCountConstant = 3

	l10nLanguageRequiredMessageConstant    = "l10n language is required"
	olderRevisionRequiredMessageConstant   = "older milestone is required"
	newerRevisionRequiredMessageConstant   = "newer milestone is required"
	repositoryManagerCreationErrorTemplate = "unable to construct repository manager: %w"
	classifierCreationErrorTemplate        = "unable to construct classifier: %w"
	reportWriteErrorTemplateConstant       = "unable to write report: %w"
)

// LoggerProvider supplies a zap logger instance.
type LoggerProvider func() *zap.Logger

type commandOptions struct {
	l10nLanguage   string
	olderRevision  string
	newerRevision  string
	sourceLanguage string
	repositoryPath string
}

// CommandBuilder assembles the diff report Cobra command.
type CommandBuilder struct {
	LoggerProvider               LoggerProvider
	Executor                     gitrepo.GitExecutor
	ConfigurationProvider        func() CommandConfiguration
	HumanReadableLoggingProvider func() bool
	Output                       io.Writer
}

// Build constructs the diff report command.
func (builder *CommandBuilder) Build() (*cobra.Command, error) {
	command := &cobra.Command{
		Use:           commandUseConstant,
		Short:         commandShortDescriptionConstant,
		Long:          commandLongDescriptionConstant,
		Example:       commandExampleConstant,
		SilenceErrors: true,
		SilenceUsage:  true,
		Args:          cobra.ExactArgs(positionalArgumentCountConstant),
		RunE:          builder.runReport,
	}

	defaultConfiguration := DefaultCommandConfiguration()
	command.Flags().String(sourceLanguageFlagNameConstant, defaultConfiguration.SourceLanguage, sourceLanguageFlagUsageConstant)
	command.Flags().String(repositoryFlagNameConstant, defaultConfiguration.Repository, repositoryFlagUsageConstant)

	return command, nil
}

func (builder *CommandBuilder) runReport(command *cobra.Command, arguments []string) error {
	options, optionsError := builder.parseOptions(command, arguments)
	if optionsError != nil {
		return optionsError
	}

	logger := builder.resolveLogger()

	executor, executorError := builder.resolveExecutor(command, logger)
	if executorError != nil {
		return executorError
	}

	repositoryManager, managerError := gitrepo.NewRepositoryManager(executor)
	if managerError != nil {
		return fmt.Errorf(repositoryManagerCreationErrorTemplate, managerError)
	}

	classifier, classifierError := NewClassifier(repositoryManager, logger)
	if classifierError != nil {
		return fmt.Errorf(classifierCreationErrorTemplate, classifierError)
	}

	classificationOptions := ClassificationOptions{
		RepositoryPath: options.repositoryPath,
		OlderRevision:  options.olderRevision,
		NewerRevision:  options.newerRevision,
		SourcePath:     fmt.Sprintf(contentPathTemplateConstant, options.sourceLanguage),
		TargetPath:     fmt.Sprintf(contentPathTemplateConstant, options.l10nLanguage),
	}

	classification, classificationError := classifier.Classify(command.Context(), classificationOptions)
	if classificationError != nil {
		return classificationError
	}

	renderedReport, renderError := RenderReport(ReportData{
		OlderRevision: options.olderRevision,
		NewerRevision: options.newerRevision,
		SourcePath:    classificationOptions.SourcePath,
		TargetPath:    classificationOptions.TargetPath,
		ModifiedFiles: classification.ModifiedFiles,
		RenamedFiles:  classification.RenamedFiles,
		DeletedPaths:  classification.DeletedPaths,
	})
	if renderError != nil {
		return renderError
	}

	if _, writeError := fmt.Fprintln(builder.resolveOutput(command), renderedReport); writeError != nil {
		return fmt.Errorf(reportWriteErrorTemplateConstant, writeError)
	}

	return nil
}

func (builder *CommandBuilder) parseOptions(command *cobra.Command, arguments []string) (commandOptions, error) {
	configuration := builder.resolveConfiguration()

	l10nLanguage := strings.TrimSpace(arguments[0])
	if len(l10nLanguage) == 0 {
		return commandOptions{}, errors.New(l10nLanguageRequiredMessageConstant)
	}

	olderRevision := strings.TrimSpace(arguments[1])
	if len(olderRevision) == 0 {
		return commandOptions{}, errors.New(olderRevisionRequiredMessageConstant)
	}

	newerRevision := strings.TrimSpace(arguments[2])
	if len(newerRevision) == 0 {
		return commandOptions{}, errors.New(newerRevisionRequiredMessageConstant)
	}

	sourceLanguage := configuration.SourceLanguage
	if command != nil && command.Flags().Changed(sourceLanguageFlagNameConstant) {
		flagValue, _ := command.Flags().GetString(sourceLanguageFlagNameConstant)
		sourceLanguage = strings.TrimSpace(flagValue)
	}
	if len(sourceLanguage) == 0 {
		sourceLanguage = DefaultCommandConfiguration().SourceLanguage
	}

	repositoryPath := configuration.Repository
	if command != nil && command.Flags().Changed(repositoryFlagNameConstant) {
		flagValue, _ := command.Flags().GetString(repositoryFlagNameConstant)
		repositoryPath = flagValue
	}

	return commandOptions{
		l10nLanguage:   l10nLanguage,
		olderRevision:  olderRevision,
		newerRevision:  newerRevision,
		sourceLanguage: sourceLanguage,
		repositoryPath: pathutils.NewRepositoryPathResolver().Resolve(repositoryPath),
	}, nil
}

func (builder *CommandBuilder) resolveLogger() *zap.Logger {
	var logger *zap.Logger
	if builder.LoggerProvider != nil {
		logger = builder.LoggerProvider()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return logger
}

func (builder *CommandBuilder) resolveExecutor(command *cobra.Command, logger *zap.Logger) (gitrepo.GitExecutor, error) {
	if builder.Executor != nil {
		return builder.Executor, nil
	}

	shellExecutor, creationError := execshell.NewShellExecutor(logger, execshell.NewOSCommandRunner())
	if creationError != nil {
		return nil, creationError
	}

	if builder.resolveHumanReadableLogging(command) {
		shellExecutor.SetCommandEventObserver(ui.NewConsoleCommandEventLogger(logger))
	}

	return shellExecutor, nil
}

func (builder *CommandBuilder) resolveHumanReadableLogging(command *cobra.Command) bool {
	if builder.HumanReadableLoggingProvider != nil {
		return builder.HumanReadableLoggingProvider()
	}
	if command == nil {
		return false
	}
	return utils.NewCommandContextAccessor().HumanReadableLogging(command.Context())
}

func (builder *CommandBuilder) resolveConfiguration() CommandConfiguration {
	if builder.ConfigurationProvider == nil {
		return DefaultCommandConfiguration()
	}
	return builder.ConfigurationProvider().Sanitize()
}

func (builder *CommandBuilder) resolveOutput(command *cobra.Command) io.Writer {
	if builder.Output != nil {
		return utils.NewFlushingWriter(builder.Output)
	}
	return utils.NewFlushingWriter(command.OutOrStdout())
}
