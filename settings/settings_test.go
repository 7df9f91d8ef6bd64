package settings

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// check settings object is initialised
func TestInitialiseSettings(t *testing.T) {
	tSettings := NewSettings()

	require.NotNil(t, tSettings.ChainCfgParams)
	require.NotNil(t, tSettings.TracingCollectorURL)

	assert.NotEmpty(t, tSettings.GraphSearch.GRPCAddress)
	assert.NotEmpty(t, tSettings.GraphSearch.HTTPListenAddress)
	assert.Positive(t, tSettings.GraphSearch.GRPCMaxMessageSize)
}

func TestUtxoLimitIsClamped(t *testing.T) {
	tests := []struct {
		name     string
		envValue string
		expected int
	}{
		{"within bounds", "500", 500},
		{"above maximum", "50000", MaxUtxoLimit},
		{"negative", "-1", MaxUtxoLimit},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("graphsearch_utxo_limit", tt.envValue)

			tSettings := NewSettings()
			assert.Equal(t, tt.expected, tSettings.GraphSearch.UtxoLimit)
		})
	}
}

func TestHTTPListenAddress(t *testing.T) {
	t.Run("port only", func(t *testing.T) {
		t.Setenv("graphsearch_httpListenAddress", "")
		t.Setenv("graphsearch_http_port", "9091")

		assert.Equal(t, ":9091", NewSettings().GraphSearch.HTTPListenAddress)
	})

	t.Run("explicit address wins", func(t *testing.T) {
		t.Setenv("graphsearch_httpListenAddress", "127.0.0.1:7000")
		t.Setenv("graphsearch_http_port", "9091")

		assert.Equal(t, "127.0.0.1:7000", NewSettings().GraphSearch.HTTPListenAddress)
	})
}

func TestAddressFormatIsLowercased(t *testing.T) {
	t.Setenv("graphsearch_address_format", "Legacy")

	assert.Equal(t, "legacy", NewSettings().GraphSearch.AddressFormat)
}

func TestGetFloat64(t *testing.T) {
	t.Setenv("tracing_sample_rate", "0.5")
	assert.InDelta(t, 0.5, getFloat64("tracing_sample_rate", 0.01), 0.0001)

	t.Setenv("tracing_sample_rate", "not-a-number")
	assert.InDelta(t, 0.01, getFloat64("tracing_sample_rate", 0.01), 0.0001)
}
