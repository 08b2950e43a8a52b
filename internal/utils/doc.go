// Package utils exposes reusable helpers consumed by the localization CLI.
//
// It houses the ConfigurationLoader and LoggerFactory abstractions that
// integrate Viper, environment variables, and zap logging, plus small
// context and writer helpers shared by commands.
package utils
