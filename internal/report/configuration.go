package report

import "strings"

const defaultSourceLanguageConstant = "en"

// CommandConfiguration captures persisted configuration for the diff report command.
type CommandConfiguration struct {
	SourceLanguage string `mapstructure:"source_language"`
	Repository     string `mapstructure:"repository"`
}

// DefaultCommandConfiguration returns baseline configuration values for the diff report command.
func DefaultCommandConfiguration() CommandConfiguration {
	return CommandConfiguration{
		SourceLanguage: defaultSourceLanguageConstant,
		Repository:     "",
	}
}

// Sanitize trims configured values and restores defaults for empty entries.
func (configuration CommandConfiguration) Sanitize() CommandConfiguration {
	sanitized := configuration
	sanitized.SourceLanguage = strings.TrimSpace(configuration.SourceLanguage)
	if len(sanitized.SourceLanguage) == 0 {
		sanitized.SourceLanguage = defaultSourceLanguageConstant
	}
	sanitized.Repository = strings.TrimSpace(configuration.Repository)
	return sanitized
}

// DefaultConfigurationValues exposes default configuration entries keyed under the provided prefix.
func DefaultConfigurationValues(configurationKeyPrefix string) map[string]any {
	defaults := DefaultCommandConfiguration()
	return map[string]any{
		configurationKeyPrefix + ".source_language": defaults.SourceLanguage,
		configurationKeyPrefix + ".repository":      defaults.Repository,
	}
}
