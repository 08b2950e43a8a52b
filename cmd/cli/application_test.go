package cli_test

import (
	"bytes"
	"testing"

	mapstructure "github.com/go-viper/mapstructure/v2"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"

	"github.com/temirov/l10n_scripts/cmd/cli"
	"github.com/temirov/l10n_scripts/internal/report"
)

const (
	embeddedConfigurationTypeConstant     = "yaml"
	embeddedDefaultLogLevelConstant       = "info"
	embeddedDefaultLogFormatConstant      = "structured"
	embeddedDefaultSourceLanguageConstant = "en"
)

func decodeEmbeddedApplicationConfiguration(testInstance *testing.T) cli.ApplicationConfiguration {
	testInstance.Helper()

	viperInstance := viper.New()
	viperInstance.SetConfigType(embeddedConfigurationTypeConstant)
	require.NoError(testInstance, viperInstance.ReadConfig(bytes.NewReader(cli.EmbeddedDefaultConfiguration())))

	configuration := cli.ApplicationConfiguration{}
	decoder, decoderError := mapstructure.NewDecoder(&mapstructure.DecoderConfig{Result: &configuration})
	require.NoError(testInstance, decoderError)
	require.NoError(testInstance, decoder.Decode(viperInstance.AllSettings()))

	return configuration
}

func TestEmbeddedDefaultConfigurationDecodes(testInstance *testing.T) {
	configuration := decodeEmbeddedApplicationConfiguration(testInstance)

	require.Equal(testInstance, embeddedDefaultLogLevelConstant, configuration.Common.LogLevel)
	require.Equal(testInstance, embeddedDefaultLogFormatConstant, configuration.Common.LogFormat)
	require.Equal(testInstance, embeddedDefaultSourceLanguageConstant, configuration.Tools.DiffReport.SourceLanguage)
	require.Empty(testInstance, configuration.Tools.DiffReport.Repository)
}

func TestEmbeddedDefaultConfigurationMatchesCommandDefaults(testInstance *testing.T) {
	configuration := decodeEmbeddedApplicationConfiguration(testInstance)
	require.Equal(testInstance, report.DefaultCommandConfiguration(), configuration.Tools.DiffReport.Sanitize())
}
