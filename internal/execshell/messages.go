package execshell

import (
	"fmt"
	"strings"
)

type messageStage int

const (
	messageStageStart messageStage = iota
	messageStageSuccess
	messageStageFailure
	messageStageExecutionFailure
)

const (
	genericStartTemplateConstant            = "Running %s"
	genericSuccessTemplateConstant          = "Completed %s"
	genericFailureTemplateConstant          = "%s failed with exit code %d%s"
	genericExecutionFailureTemplateConstant = "%s failed: %s"
	commandLabelTemplateConstant            = "%s%s"
	workingDirectorySuffixTemplateConstant  = " (in %s)"
	commandArgumentsJoinSeparatorConstant   = " "
	standardErrorSuffixTemplateConstant     = ": %s"
	unknownFailureMessageConstant           = "unknown error"
	emptyStringConstant                     = ""
	fallbackUnknownValueLabelConstant       = "unknown"
)

const (
	gitDiffSubcommandNameConstant    = "diff"
	gitCatFileSubcommandNameConstant = "cat-file"
	gitNameStatusFlagConstant        = "--name-status"
	gitShortstatFlagConstant         = "--shortstat"
	gitCatFileExistsFlagConstant     = "-e"
	gitPathspecSeparatorConstant     = "--"
)

const (
	gitNameStatusStartTemplateConstant            = "Enumerating changes to %s between %s and %s"
	gitNameStatusSuccessTemplateConstant          = "Enumerated changes to %s between %s and %s"
	gitNameStatusFailureTemplateConstant          = "Failed to enumerate changes to %s between %s and %s (exit code %d%s)"
	gitNameStatusExecutionFailureTemplateConstant = "Unable to enumerate changes to %s between %s and %s: %s"
	gitShortstatStartTemplateConstant             = "Summarizing changes to %s between %s and %s"
	gitShortstatSuccessTemplateConstant           = "Summarized changes to %s between %s and %s"
	gitShortstatFailureTemplateConstant           = "Failed to summarize changes to %s between %s and %s (exit code %d%s)"
	gitShortstatExecutionFailureTemplateConstant  = "Unable to summarize changes to %s between %s and %s: %s"
	gitDiffStartTemplateConstant                  = "Collecting diff of %s between %s and %s"
	gitDiffSuccessTemplateConstant                = "Collected diff of %s between %s and %s"
	gitDiffFailureTemplateConstant                = "Failed to collect diff of %s between %s and %s (exit code %d%s)"
	gitDiffExecutionFailureTemplateConstant       = "Unable to collect diff of %s between %s and %s: %s"
	gitCatFileStartTemplateConstant               = "Checking %s is tracked"
	gitCatFileSuccessTemplateConstant             = "%s is tracked"
	gitCatFileMissingTemplateConstant             = "%s is not tracked"
	gitCatFileExecutionFailureTemplateConstant    = "Unable to check %s: %s"
)

// CommandMessageFormatter builds human-readable messages for command lifecycle events.
type CommandMessageFormatter struct{}

// BuildStartedMessage formats the message describing a command about to run.
func (formatter CommandMessageFormatter) BuildStartedMessage(command ShellCommand) string {
	return formatter.buildMessage(command, ExecutionResult{}, nil, messageStageStart)
}

// BuildSuccessMessage formats the message describing a completed command with a zero exit code.
func (formatter CommandMessageFormatter) BuildSuccessMessage(command ShellCommand) string {
	return formatter.buildMessage(command, ExecutionResult{}, nil, messageStageSuccess)
}

// BuildFailureMessage formats the message describing a command that returned a non-zero exit code.
func (formatter CommandMessageFormatter) BuildFailureMessage(command ShellCommand, result ExecutionResult) string {
	return formatter.buildMessage(command, result, nil, messageStageFailure)
}

// BuildExecutionFailureMessage formats the message describing an unexpected execution failure.
func (formatter CommandMessageFormatter) BuildExecutionFailureMessage(command ShellCommand, failure error) string {
	return formatter.buildMessage(command, ExecutionResult{}, failure, messageStageExecutionFailure)
}

func (formatter CommandMessageFormatter) buildMessage(command ShellCommand, result ExecutionResult, failure error, stage messageStage) string {
	if command.Name != CommandGit || len(command.Details.Arguments) == 0 {
		return formatter.buildGenericMessage(command, result, failure, stage)
	}

	subcommand := strings.TrimSpace(command.Details.Arguments[0])
	switch subcommand {
	case gitDiffSubcommandNameConstant:
		return formatter.describeGitDiffMessage(command, result, failure, stage)
	case gitCatFileSubcommandNameConstant:
		return formatter.describeGitCatFileMessage(command, result, failure, stage)
	default:
		return formatter.buildGenericMessage(command, result, failure, stage)
	}
}

func (formatter CommandMessageFormatter) describeGitDiffMessage(command ShellCommand, result ExecutionResult, failure error, stage messageStage) string {
	arguments := command.Details.Arguments
	olderRevision := formatter.ensureValue(formatter.argumentAtIndex(arguments, 1))
	newerRevision := formatter.ensureValue(formatter.argumentAtIndex(arguments, 2))
	targetPath := formatter.ensureValue(formatter.pathAfterSeparator(arguments))

	startTemplate := gitDiffStartTemplateConstant
	successTemplate := gitDiffSuccessTemplateConstant
	failureTemplate := gitDiffFailureTemplateConstant
	executionFailureTemplate := gitDiffExecutionFailureTemplateConstant
	switch {
	case containsArgument(arguments, gitNameStatusFlagConstant):
		startTemplate = gitNameStatusStartTemplateConstant
		successTemplate = gitNameStatusSuccessTemplateConstant
		failureTemplate = gitNameStatusFailureTemplateConstant
		executionFailureTemplate = gitNameStatusExecutionFailureTemplateConstant
	case containsArgument(arguments, gitShortstatFlagConstant):
		startTemplate = gitShortstatStartTemplateConstant
		successTemplate = gitShortstatSuccessTemplateConstant
		failureTemplate = gitShortstatFailureTemplateConstant
		executionFailureTemplate = gitShortstatExecutionFailureTemplateConstant
	}

	switch stage {
	case messageStageStart:
		return fmt.Sprintf(startTemplate, targetPath, olderRevision, newerRevision)
	case messageStageSuccess:
		return fmt.Sprintf(successTemplate, targetPath, olderRevision, newerRevision)
	case messageStageFailure:
		return fmt.Sprintf(failureTemplate, targetPath, olderRevision, newerRevision, result.ExitCode, formatter.formatStandardErrorSuffix(result.StandardError))
	case messageStageExecutionFailure:
		return fmt.Sprintf(executionFailureTemplate, targetPath, olderRevision, newerRevision, formatter.describeFailure(failure))
	default:
		return formatter.buildGenericMessage(command, result, failure, stage)
	}
}

func (formatter CommandMessageFormatter) describeGitCatFileMessage(command ShellCommand, result ExecutionResult, failure error, stage messageStage) string {
	arguments := command.Details.Arguments
	if !containsArgument(arguments, gitCatFileExistsFlagConstant) {
		return formatter.buildGenericMessage(command, result, failure, stage)
	}

	objectReference := formatter.ensureValue(formatter.argumentAtIndex(arguments, len(arguments)-1))
	switch stage {
	case messageStageStart:
		return fmt.Sprintf(gitCatFileStartTemplateConstant, objectReference)
	case messageStageSuccess:
		return fmt.Sprintf(gitCatFileSuccessTemplateConstant, objectReference)
	case messageStageFailure:
		if len(strings.TrimSpace(result.StandardError)) > 0 {
			return formatter.buildGenericMessage(command, result, failure, stage)
		}
		return fmt.Sprintf(gitCatFileMissingTemplateConstant, objectReference)
	case messageStageExecutionFailure:
		return fmt.Sprintf(gitCatFileExecutionFailureTemplateConstant, objectReference, formatter.describeFailure(failure))
	default:
		return formatter.buildGenericMessage(command, result, failure, stage)
	}
}

func (formatter CommandMessageFormatter) buildGenericMessage(command ShellCommand, result ExecutionResult, failure error, stage messageStage) string {
	commandLabel := formatter.formatCommandLabel(command)
	switch stage {
	case messageStageStart:
		return fmt.Sprintf(genericStartTemplateConstant, commandLabel)
	case messageStageSuccess:
		return fmt.Sprintf(genericSuccessTemplateConstant, commandLabel)
	case messageStageFailure:
		return fmt.Sprintf(genericFailureTemplateConstant, commandLabel, result.ExitCode, formatter.formatStandardErrorSuffix(result.StandardError))
	case messageStageExecutionFailure:
		return fmt.Sprintf(genericExecutionFailureTemplateConstant, commandLabel, formatter.describeFailure(failure))
	default:
		return emptyStringConstant
	}
}

func (formatter CommandMessageFormatter) formatCommandLabel(command ShellCommand) string {
	commandLabel := string(command.Name)
	if len(command.Details.Arguments) > 0 {
		commandLabel = fmt.Sprintf("%s %s", commandLabel, strings.Join(command.Details.Arguments, commandArgumentsJoinSeparatorConstant))
	}
	workingDirectorySuffix := formatter.formatWorkingDirectorySuffix(command)
	return fmt.Sprintf(commandLabelTemplateConstant, commandLabel, workingDirectorySuffix)
}

func (formatter CommandMessageFormatter) formatWorkingDirectorySuffix(command ShellCommand) string {
	trimmedWorkingDirectory := strings.TrimSpace(command.Details.WorkingDirectory)
	if len(trimmedWorkingDirectory) == 0 {
		return emptyStringConstant
	}
	return fmt.Sprintf(workingDirectorySuffixTemplateConstant, trimmedWorkingDirectory)
}

func (formatter CommandMessageFormatter) formatStandardErrorSuffix(standardError string) string {
	trimmedStandardError := strings.TrimSpace(standardError)
	if len(trimmedStandardError) == 0 {
		return emptyStringConstant
	}
	return fmt.Sprintf(standardErrorSuffixTemplateConstant, trimmedStandardError)
}

func (formatter CommandMessageFormatter) describeFailure(failure error) string {
	if failure == nil {
		return unknownFailureMessageConstant
	}
	return failure.Error()
}

func (formatter CommandMessageFormatter) argumentAtIndex(arguments []string, index int) string {
	if index >= 0 && index < len(arguments) {
		return arguments[index]
	}
	return emptyStringConstant
}

func (formatter CommandMessageFormatter) ensureValue(value string) string {
	trimmed := strings.TrimSpace(value)
	if len(trimmed) == 0 {
		return fallbackUnknownValueLabelConstant
	}
	return trimmed
}

func (formatter CommandMessageFormatter) pathAfterSeparator(arguments []string) string {
	for index := 0; index < len(arguments)-1; index++ {
		if strings.TrimSpace(arguments[index]) == gitPathspecSeparatorConstant {
			return strings.TrimSpace(arguments[index+1])
		}
	}
	return emptyStringConstant
}

func containsArgument(arguments []string, value string) bool {
	for _, argument := range arguments {
		if strings.TrimSpace(argument) == value {
			return true
		}
	}
	return false
}
