package utils

import "context"

const (
	configurationFilePathContextKeyConstant = commandContextKey("configurationFilePath")
	humanReadableLoggingContextKeyConstant  = commandContextKey("humanReadableLogging")
)

type commandContextKey string

// CommandContextAccessor manages values stored in command execution contexts.
type CommandContextAccessor struct{}

// NewCommandContextAccessor constructs a CommandContextAccessor instance.
func NewCommandContextAccessor() CommandContextAccessor {
	return CommandContextAccessor{}
}

// WithConfigurationFilePath attaches the configuration file path to the provided context.
func (accessor CommandContextAccessor) WithConfigurationFilePath(parentContext context.Context, configurationFilePath string) context.Context {
	if parentContext == nil {
		parentContext = context.Background()
	}
	return context.WithValue(parentContext, configurationFilePathContextKeyConstant, configurationFilePath)
}

// ConfigurationFilePath extracts the configuration file path from the provided context.
func (accessor CommandContextAccessor) ConfigurationFilePath(executionContext context.Context) (string, bool) {
	if executionContext == nil {
		return "", false
	}
	configurationFilePath, configurationFilePathAvailable := executionContext.Value(configurationFilePathContextKeyConstant).(string)
	if !configurationFilePathAvailable {
		return "", false
	}
	return configurationFilePath, true
}

// WithHumanReadableLogging records whether commands should narrate progress on the console.
func (accessor CommandContextAccessor) WithHumanReadableLogging(parentContext context.Context, humanReadableLogging bool) context.Context {
	if parentContext == nil {
		parentContext = context.Background()
	}
	return context.WithValue(parentContext, humanReadableLoggingContextKeyConstant, humanReadableLogging)
}

// HumanReadableLogging reports whether console progress narration was requested.
func (accessor CommandContextAccessor) HumanReadableLogging(executionContext context.Context) bool {
	if executionContext == nil {
		return false
	}
	humanReadableLogging, humanReadableLoggingAvailable := executionContext.Value(humanReadableLoggingContextKeyConstant).(bool)
	if !humanReadableLoggingAvailable {
		return false
	}
	return humanReadableLogging
}
