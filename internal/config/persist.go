package config

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"sort"

	"github.com/google/renameio/v2"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/Justype/condorkit/internal/logging"
	"github.com/Justype/condorkit/internal/utils"
)

// ConfigFilename is the name of the config file
const ConfigFilename = "config"

// ConfigType is the type of config file (yaml, json, toml)
const ConfigType = "yaml"

// configKeys lists every setting `config show` and `config set` understand.
var configKeys = []string{
	"verbosity",
	"namespace",
	"version_command",
	"queue_command",
	"submit_command",
	"submit_dir",
	"output_dir",
	"error_dir",
	"log_dir",
}

// Keys returns the known config keys in sorted order.
func Keys() []string {
	keys := append([]string(nil), configKeys...)
	sort.Strings(keys)
	return keys
}

// IsKnownKey reports whether key is a recognized setting.
func IsKnownKey(key string) bool {
	for _, k := range configKeys {
		if k == key {
			return true
		}
	}
	return false
}

// InitViper initializes Viper with proper search paths and defaults
// Priority (highest to lowest):
// 1. Command-line flags (handled by cobra)
// 2. Environment variables (CONDORKIT_*)
// 3. User config file (~/.config/condorkit/config.yaml)
// 4. System config file (/etc/condorkit/config.yaml)
// 5. Defaults
func InitViper() error {
	viper.SetConfigName(ConfigFilename)
	viper.SetConfigType(ConfigType)

	if userConfigDir, err := os.UserConfigDir(); err == nil {
		viper.AddConfigPath(filepath.Join(userConfigDir, "condorkit"))
	}
	if home, err := os.UserHomeDir(); err == nil {
		viper.AddConfigPath(filepath.Join(home, ".condorkit"))
	}
	viper.AddConfigPath("/etc/condorkit")
	viper.AddConfigPath(".")

	// CONDORKIT_SUBMIT_DIR -> submit_dir, etc.
	viper.SetEnvPrefix(EnvPrefix)
	viper.AutomaticEnv()

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return nil
		}
		return fmt.Errorf("error reading config file: %w", err)
	}
	utils.PrintDebug("Loaded config file %s", utils.StylePath(viper.ConfigFileUsed()))
	return nil
}

// setDefaults sets default values for all config keys
func setDefaults() {
	viper.SetDefault("verbosity", logging.Low.String())
	viper.SetDefault("namespace", logging.DefaultNamespace)
	viper.SetDefault("version_command", DefaultVersionCommand)
	viper.SetDefault("queue_command", DefaultQueueCommand)
	viper.SetDefault("submit_command", DefaultSubmitCommand)
	for _, key := range ManagedDirKeys {
		viper.SetDefault(key+"_dir", "")
	}
}

// LoadFromViper copies resolved settings into Global.
func LoadFromViper() {
	if raw := viper.GetString("verbosity"); raw != "" {
		if v, err := logging.ParseVerbosity(raw); err == nil {
			Global.Verbosity = v
		} else {
			utils.PrintWarning("Ignoring config value: %v", err)
		}
	}
	if ns := viper.GetString("namespace"); ns != "" {
		Global.Namespace = ns
	}
	if cmd := viper.GetString("version_command"); cmd != "" {
		Global.VersionCommand = cmd
	}
	if cmd := viper.GetString("queue_command"); cmd != "" {
		Global.QueueCommand = cmd
	}
	if cmd := viper.GetString("submit_command"); cmd != "" {
		Global.SubmitCommand = cmd
	}

	Global.SubmitDir = viper.GetString("submit_dir")
	Global.OutputDir = viper.GetString("output_dir")
	Global.ErrorDir = viper.GetString("error_dir")
	Global.LogDir = viper.GetString("log_dir")
}

// Set validates and stores a single setting in Viper.
func Set(key, value string) error {
	if !IsKnownKey(key) {
		return fmt.Errorf("unknown config key %q (known keys: %v)", key, Keys())
	}
	if key == "verbosity" {
		v, err := logging.ParseVerbosity(value)
		if err != nil {
			return err
		}
		value = v.String()
	}
	viper.Set(key, value)
	return nil
}

// GetUserConfigPath returns the path to the user config file
func GetUserConfigPath() (string, error) {
	userConfigDir, err := os.UserConfigDir()
	if err != nil {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(home, ".condorkit", ConfigFilename+"."+ConfigType), nil
	}

	return filepath.Join(userConfigDir, "condorkit", ConfigFilename+"."+ConfigType), nil
}

// persistedSettings returns the known keys with their current values. Managed
// directories that are empty are left out.
func persistedSettings() map[string]interface{} {
	out := make(map[string]interface{}, len(configKeys))
	for _, key := range configKeys {
		val := viper.GetString(key)
		if val == "" {
			continue
		}
		out[key] = val
	}
	return out
}

// SaveConfig atomically writes the current settings to the user config file.
func SaveConfig() error {
	configPath, err := GetUserConfigPath()
	if err != nil {
		return fmt.Errorf("failed to get config path: %w", err)
	}
	return SaveConfigAs(configPath)
}

// SaveConfigAs atomically writes the current settings to path.
func SaveConfigAs(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(persistedSettings())
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}

	if err := renameio.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	utils.PrintDebug("Config written to %s", utils.StylePath(path))
	return nil
}

// ValidateBinary checks if a binary exists and is executable
func ValidateBinary(binPath string) bool {
	if binPath == "" {
		return false
	}

	if filepath.IsAbs(binPath) {
		info, err := os.Stat(binPath)
		if err != nil {
			return false
		}
		return !info.IsDir() && info.Mode()&0111 != 0
	}

	_, err := exec.LookPath(binPath)
	return err == nil
}
