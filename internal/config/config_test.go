package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// TestValidate checks required fields, format validations and default filling.
func TestValidate(t *testing.T) {
	t.Parallel()

	// Missing socket.
	settings := new(Config)

	err := Validate(settings)
	require.Error(t, err)

	// Bad socket.
	settings = &Config{
		ServerAddress: "bad:address",
	}

	err = Validate(settings)
	require.Error(t, err)

	// Okay with update folder; defaults are filled in.
	settings = &Config{
		ServerAddress:      "127.0.0.1:0",
		ServerUpdateFolder: "https://example.com/x",
	}

	err = Validate(settings)
	require.NoError(t, err)
	require.Equal(t, DefaultStateFilename, settings.StateFile)
	require.Equal(t, DefaultEpochFilename, settings.EpochFile)
	require.Equal(t, DefaultRestoreDirname, settings.RestoreDir)
	require.Equal(t, DefaultFiringWindow, settings.FiringWindow)
	require.Equal(t, DefaultTimeout, settings.Timeout)

	// Bad update folder URI.
	settings = &Config{
		ServerAddress:      "127.0.0.1:0",
		ServerUpdateFolder: "::not-a-uri",
	}

	err = Validate(settings)
	require.Error(t, err)
}

// TestSaveLoadRoundtrip ensures settings are persisted and loaded back correctly.
func TestSaveLoadRoundtrip(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "settings.yaml")

	settings := &Config{
		ServerAddress:      "127.0.0.1:50051",
		ServerUpdateFolder: "https://updates.local/",
		FiringWindow:       DefaultFiringWindow,
	}

	require.NoError(t, Save(path, settings))

	loaded, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, settings.ServerAddress, loaded.ServerAddress)
	require.Equal(t, settings.ServerUpdateFolder, loaded.ServerUpdateFolder)
	require.Equal(t, DefaultFiringWindow, loaded.FiringWindow)

	// File exists.
	_, err = os.Stat(path)
	require.NoError(t, err)
}
