package config

import (
	"github.com/Justype/condorkit/internal/logging"
)

const VERSION = "0.3.0"

// Default HTCondor command lines.
const (
	DefaultVersionCommand = "condor_version"
	DefaultQueueCommand   = "condor_q"
	DefaultSubmitCommand  = "condor_submit"
)

// Config holds global application settings
type Config struct {
	Debug     bool
	Quiet     bool
	Version   string
	Verbosity logging.Verbosity
	Namespace string

	VersionCommand string
	QueueCommand   string
	SubmitCommand  string

	// Managed directories, usually supplied through CONDORKIT_<KEY>_DIR
	SubmitDir string
	OutputDir string
	ErrorDir  string
	LogDir    string
}

// Global holds the singleton configuration instance
var Global Config

func init() {
	LoadDefaults()
}

// LoadDefaults resets Global to built-in values.
func LoadDefaults() {
	Global = Config{
		Debug:     false,
		Quiet:     false,
		Version:   VERSION,
		Verbosity: logging.Low,
		Namespace: logging.DefaultNamespace,

		VersionCommand: DefaultVersionCommand,
		QueueCommand:   DefaultQueueCommand,
		SubmitCommand:  DefaultSubmitCommand,
	}
}

// ManagedDir returns the configured directory for one of the managed keys
// (submit, output, error, log). Unknown keys return "".
func (c Config) ManagedDir(key string) string {
	switch key {
	case "submit":
		return c.SubmitDir
	case "output":
		return c.OutputDir
	case "error":
		return c.ErrorDir
	case "log":
		return c.LogDir
	}
	return ""
}
