package engine

import (
	"runtime"
	"testing"

	"github.com/Llucs/TurboZip/strategy"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfig_Defaults(t *testing.T) {
	cfg, err := NewConfig()
	require.NoError(t, err)

	assert.Equal(t, strategy.Balanced, cfg.Profile())
	assert.Equal(t, runtime.NumCPU(), cfg.Threads())
	assert.False(t, cfg.Force())
	assert.False(t, cfg.Verbose())
}

func TestNewConfig_WithProfile(t *testing.T) {
	cfg, err := NewConfig(WithProfile("max"))
	require.NoError(t, err)
	assert.Equal(t, strategy.Max, cfg.Profile())
}

func TestNewConfig_WithInvalidProfile(t *testing.T) {
	_, err := NewConfig(WithProfile("nonsense"))
	assert.Error(t, err)
}

func TestNewConfig_WithThreads(t *testing.T) {
	cfg, err := NewConfig(WithThreads(4))
	require.NoError(t, err)
	assert.Equal(t, 4, cfg.Threads())
}

func TestNewConfig_WithThreadsZeroRestoresDefault(t *testing.T) {
	cfg, err := NewConfig(WithThreads(0))
	require.NoError(t, err)
	assert.Equal(t, runtime.NumCPU(), cfg.Threads())
}

func TestNewConfig_WithForceAndVerbose(t *testing.T) {
	cfg, err := NewConfig(WithForce(true), WithVerbose(true))
	require.NoError(t, err)
	assert.True(t, cfg.Force())
	assert.True(t, cfg.Verbose())
}
