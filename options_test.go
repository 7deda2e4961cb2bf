package fist

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_YAML(t *testing.T) {
	data := []byte("name: checkout\nstrict_return: true\nmanual_start: true\nerror_history: 8\n")

	cfg, err := LoadConfig(YAMLCodec{}, data)
	require.NoError(t, err)
	assert.Equal(t, Config{Name: "checkout", StrictReturn: true, ManualStart: true, ErrorHistory: 8}, cfg)
}

func TestLoadConfig_JSONDetected(t *testing.T) {
	cfg, err := LoadConfig(nil, []byte(`{"name": "cart", "error_history": 2}`))
	require.NoError(t, err)
	assert.Equal(t, "cart", cfg.Name)
	assert.Equal(t, 2, cfg.ErrorHistory)
}

func TestLoadConfig_ValidationFails(t *testing.T) {
	_, err := LoadConfig(JSONCodec{}, []byte(`{"error_history": -1}`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "validation failed")
}

func TestLoadConfig_UnmarshalFails(t *testing.T) {
	_, err := LoadConfig(JSONCodec{}, []byte(`{not json`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unmarshal failed")
}

func TestWithConfig_ManualStart(t *testing.T) {
	count := 0
	Bind(0, Effects[int]{OnEnter: func(int) { count++ }}, WithConfig(Config{ManualStart: true}))
	assert.Equal(t, 0, count)
}

func TestBind_NilOptionsFallBack(t *testing.T) {
	rt := Bind(0, Effects[int]{}, WithLogger(nil), WithClock(nil), WithMetrics(nil), WithContext(nil)) //nolint:staticcheck // exercising nil fallbacks
	require.NoError(t, rt.Dispatch(inc))
	assert.Equal(t, 1, rt.State())
}
