package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestConfig(t *testing.T) {
	require := require.New(t)

	custom, err := Initialize("./config.example.toml")
	require.Nil(err)

	require.Equal(25, custom.Precision.Digits)
	require.Equal(3, custom.Log.Level)
	require.Equal("SqrtToDigits", custom.Log.Filter)
	require.Equal(0, custom.Log.Limiter)

	custom, err = Initialize("./missing.toml")
	require.NotNil(err)
	require.Nil(custom)
}

func TestConfigDefaults(t *testing.T) {
	require := require.New(t)

	file := filepath.Join(t.TempDir(), "surd.toml")
	err := os.WriteFile(file, []byte(""), 0644)
	require.Nil(err)

	custom, err := Initialize(file)
	require.Nil(err)
	require.Equal(DefaultDigits, custom.Precision.Digits)
	require.Equal(2, custom.Log.Level)
	require.Equal("", custom.Log.Filter)
	require.Equal(0, custom.Log.Limiter)
}
