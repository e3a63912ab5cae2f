package exec

import "runtime"

// Options configures how ShellRunner launches command lines.
type Options struct {
	Shell     string   // Shell binary, default "sh" ("cmd" on Windows)
	ShellFlag string   // Flag that makes Shell read a command line, default "-c" ("/C" on Windows)
	Dir       string   // Working directory, default the current one
	Env       []string // Environment, default the current process environment
	CheckExit bool     // Report a non-zero exit status as an error
}

func (o Options) ensureDefaults() Options {
	if o.Shell == "" {
		if runtime.GOOS == "windows" {
			o.Shell = "cmd"
		} else {
			o.Shell = "sh"
		}
	}
	if o.ShellFlag == "" {
		if runtime.GOOS == "windows" {
			o.ShellFlag = "/C"
		} else {
			o.ShellFlag = "-c"
		}
	}
	return o
}
