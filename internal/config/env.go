package config

import (
	"fmt"
	"os"
	"strings"
)

// EnvPrefix prefixes every environment variable condorkit reads.
const EnvPrefix = "CONDORKIT"

// ManagedDirKeys are the directory kinds whose variables
// ClearManagedEnvironmentVariables removes.
var ManagedDirKeys = []string{"submit", "output", "error", "log"}

// ManagedEnvVar returns the variable name for key, e.g. CONDORKIT_SUBMIT_DIR.
func ManagedEnvVar(key string) string {
	return fmt.Sprintf("%s_%s_DIR", EnvPrefix, strings.ToUpper(key))
}

// ManagedEnvVars returns the variable names for all managed keys.
func ManagedEnvVars() []string {
	names := make([]string, 0, len(ManagedDirKeys))
	for _, key := range ManagedDirKeys {
		names = append(names, ManagedEnvVar(key))
	}
	return names
}

// ClearManagedEnvironmentVariables unsets every managed directory variable
// that is currently set. Calling it when none are set does nothing.
//
// It mutates the process environment without locking; callers running it
// concurrently must serialize access themselves.
func ClearManagedEnvironmentVariables() error {
	for _, name := range ManagedEnvVars() {
		if _, ok := os.LookupEnv(name); !ok {
			continue
		}
		if err := os.Unsetenv(name); err != nil {
			return fmt.Errorf("failed to unset %s: %w", name, err)
		}
	}
	return nil
}
