package logging

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"github.com/Justype/condorkit/internal/errdefs"
)

// Verbosity selects how much a component logs. Higher is chattier.
type Verbosity int

const (
	Low    Verbosity = iota // warnings and above
	Medium                  // info and above
	High                    // everything, including debug
)

var verbosityNames = map[Verbosity]string{
	Low:    "low",
	Medium: "medium",
	High:   "high",
}

var verbosityLevels = map[Verbosity]zerolog.Level{
	Low:    zerolog.WarnLevel,
	Medium: zerolog.InfoLevel,
	High:   zerolog.DebugLevel,
}

// ValidVerbosities lists the accepted values in order, as "0 (low)" style labels.
func ValidVerbosities() []string {
	out := make([]string, 0, len(verbosityNames))
	for v := Low; v <= High; v++ {
		out = append(out, fmt.Sprintf("%d (%s)", int(v), verbosityNames[v]))
	}
	return out
}

// Valid reports whether v is one of Low, Medium or High.
func (v Verbosity) Valid() bool {
	_, ok := verbosityLevels[v]
	return ok
}

// Level returns the zerolog level for v. Invalid values map to warn.
func (v Verbosity) Level() zerolog.Level {
	if lvl, ok := verbosityLevels[v]; ok {
		return lvl
	}
	return zerolog.WarnLevel
}

// String implements pflag.Value.
func (v Verbosity) String() string {
	if name, ok := verbosityNames[v]; ok {
		return name
	}
	return strconv.Itoa(int(v))
}

// Set implements pflag.Value.
func (v *Verbosity) Set(s string) error {
	parsed, err := ParseVerbosity(s)
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}

// Type implements pflag.Value.
func (v *Verbosity) Type() string {
	return "verbosity"
}

// ParseVerbosity accepts "low", "medium", "high" or their numeric forms 0, 1, 2.
func ParseVerbosity(s string) (Verbosity, error) {
	raw := strings.ToLower(strings.TrimSpace(s))
	for v, name := range verbosityNames {
		if raw == name {
			return v, nil
		}
	}
	if n, err := strconv.Atoi(raw); err == nil && Verbosity(n).Valid() {
		return Verbosity(n), nil
	}
	return Low, &errdefs.ConfigurationError{
		Component: "verbosity",
		Value:     s,
		Valid:     ValidVerbosities(),
	}
}
