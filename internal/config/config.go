package config

import (
	"errors"
	"fmt"
	"net"
	"net/url"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds settings shared by the alarm-clockd binaries.
type Config struct {
	// ServerAddress is the gRPC address of the event daemon.
	ServerAddress string `yaml:"server_addr"`
	// ServerUpdateFolder is the URL where update artifacts are hosted.
	ServerUpdateFolder string `yaml:"update_folder"`
	// StateFile is the path to the JSON file storing alarm instances.
	StateFile string `yaml:"state_file"`
	// EpochFile is the path to the JSON file storing the global epoch counter.
	EpochFile string `yaml:"epoch_file"`
	// RestoreDir is the directory watched for restored-data drop files.
	RestoreDir string `yaml:"restore_dir"`
	// FiringWindow is how long a ringing alarm stays actionable before the
	// occurrence is considered over.
	FiringWindow time.Duration `yaml:"firing_window"`
	// Timeout is the duration for network operations and RPC calls.
	Timeout time.Duration `yaml:"timeout"`
}

const (
	// DefaultConfigFilename is the default filename for daemon settings.
	DefaultConfigFilename = "alarm-clockd-settings.yaml"

	// DefaultStateFilename is the default filename for persisted alarm instances.
	DefaultStateFilename = "alarm-instances.json"

	// DefaultEpochFilename is the default filename for the global epoch counter.
	DefaultEpochFilename = "alarm-epoch.json"

	// DefaultRestoreDirname is the default directory for restored-data drop files.
	DefaultRestoreDirname = "restore"

	// DefaultFiringWindow is the default duration an alarm keeps ringing
	// before the occurrence is considered over.
	DefaultFiringWindow = 15 * time.Minute

	// DefaultTimeout is the default duration for network operations.
	DefaultTimeout = 5 * time.Second

	// DefaultFilePermissions is the default file permission for config and state files.
	DefaultFilePermissions = 0o600
)

var (
	// errConfigIsNotSet is returned when a nil configuration is provided.
	errConfigIsNotSet = errors.New("configuration is not set")
	// errServerSocketRequired is returned when server address is missing.
	errServerSocketRequired = errors.New("server address must be provided")
)

// Load reads configuration from the provided path and validates essential fields.
func Load(path string) (*Config, error) {
	if path == "" {
		path = DefaultConfigFilename
	}

	contents, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("read settings: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(contents, &cfg); err != nil {
		return nil, fmt.Errorf("unmarshal settings: %w", err)
	}

	if err := Validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Save writes the configuration to the provided path.
func Save(path string, cfg *Config) error {
	if cfg == nil {
		return errConfigIsNotSet
	}

	if path == "" {
		path = DefaultConfigFilename
	}

	if err := Validate(cfg); err != nil {
		return err
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal settings: %w", err)
	}

	// Restrict permissions.
	if err := os.WriteFile(filepath.Clean(path), data, DefaultFilePermissions); err != nil {
		return fmt.Errorf("write settings: %w", err)
	}

	return nil
}

// Validate checks the provided settings for required fields and fills defaults.
func Validate(settings *Config) error {
	if settings.ServerAddress == "" {
		return errServerSocketRequired
	}

	if _, err := net.ResolveTCPAddr("tcp", settings.ServerAddress); err != nil {
		return fmt.Errorf("invalid server socket: %w", err)
	}

	if settings.Timeout <= 0 {
		settings.Timeout = DefaultTimeout
	}

	if settings.FiringWindow <= 0 {
		settings.FiringWindow = DefaultFiringWindow
	}

	if settings.StateFile == "" {
		settings.StateFile = DefaultStateFilename
	}

	if settings.EpochFile == "" {
		settings.EpochFile = DefaultEpochFilename
	}

	if settings.RestoreDir == "" {
		settings.RestoreDir = DefaultRestoreDirname
	}

	if settings.ServerUpdateFolder == "" {
		return nil
	}

	if _, err := url.ParseRequestURI(settings.ServerUpdateFolder); err != nil {
		return fmt.Errorf("invalid update folder URI: %w", err)
	}

	return nil
}
