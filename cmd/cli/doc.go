// Package cli constructs the l10n-scripts command-line interface, wiring the
// Cobra root command, configuration loader, and structured logging
// primitives around the diff report tool.
package cli
