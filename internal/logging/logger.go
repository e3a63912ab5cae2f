// Package logging hands out one console logger per named component.
//
// Every logger writes lines of the form
//
//	<LEVEL>: <namespace> - <component> : <message>
//
// to its sinks (stdout by default). Requesting a logger for the same name
// twice attaches a second sink, so each message then appears twice, from
// every handle for that name including ones returned earlier. Callers should
// request a logger once per component instance.
package logging

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/rs/zerolog"

	"github.com/Justype/condorkit/internal/errdefs"
)

// DefaultNamespace is the namespace printed in every log line.
const DefaultNamespace = "condorkit"

// Named is anything that can own a logger.
type Named interface {
	Name() string
}

// Factory creates loggers and keeps track of the sinks registered per name.
type Factory struct {
	Namespace string
	Out       io.Writer

	mu    sync.Mutex
	sinks map[string][]io.Writer
}

// NewFactory returns a factory writing to out. A nil out means os.Stdout.
func NewFactory(namespace string, out io.Writer) *Factory {
	if out == nil {
		out = os.Stdout
	}
	return &Factory{
		Namespace: namespace,
		Out:       out,
		sinks:     make(map[string][]io.Writer),
	}
}

var defaultFactory = NewFactory(DefaultNamespace, os.Stdout)

// Default returns the process-wide factory.
func Default() *Factory {
	return defaultFactory
}

// GetLogger configures a logger for component on the process-wide factory.
func GetLogger(component Named, verbose Verbosity) (zerolog.Logger, error) {
	return defaultFactory.GetLogger(component, verbose)
}

// GetLogger registers a console sink for component and returns a logger
// at the level selected by verbose.
func (f *Factory) GetLogger(component Named, verbose Verbosity) (zerolog.Logger, error) {
	name := componentName(component)
	if name == "" {
		return zerolog.Nop(), errdefs.NewConfigurationError("", "component must have a non-empty name")
	}
	if !verbose.Valid() {
		return zerolog.Nop(), &errdefs.ConfigurationError{
			Component: name,
			Value:     fmt.Sprintf("%d", int(verbose)),
			Valid:     ValidVerbosities(),
		}
	}

	sink := f.newSink(name)

	f.mu.Lock()
	if f.sinks == nil {
		f.sinks = make(map[string][]io.Writer)
	}
	f.sinks[name] = append(f.sinks[name], sink)
	f.mu.Unlock()

	return zerolog.New(&nameWriter{factory: f, name: name}).Level(verbose.Level()), nil
}

// nameWriter fans each event out to the sinks registered under name at the
// time of the write, so older handles see sinks added later.
type nameWriter struct {
	factory *Factory
	name    string
}

func (w *nameWriter) Write(p []byte) (int, error) {
	w.factory.mu.Lock()
	sinks := append([]io.Writer(nil), w.factory.sinks[w.name]...)
	w.factory.mu.Unlock()

	for _, sink := range sinks {
		if _, err := sink.Write(p); err != nil {
			return 0, err
		}
	}
	return len(p), nil
}

// Sinks reports how many sinks are registered under name.
func (f *Factory) Sinks(name string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.sinks[name])
}

func (f *Factory) newSink(name string) io.Writer {
	out := f.Out
	if out == nil {
		out = os.Stdout
	}
	namespace := f.Namespace
	return zerolog.ConsoleWriter{
		Out:        out,
		NoColor:    true,
		PartsOrder: []string{zerolog.LevelFieldName, zerolog.MessageFieldName},
		FormatLevel: func(i interface{}) string {
			return levelLabel(i) + ":"
		},
		FormatMessage: func(i interface{}) string {
			msg := ""
			if i != nil {
				msg = fmt.Sprint(i)
			}
			return fmt.Sprintf("%s - %s : %s", namespace, name, msg)
		},
	}
}

// componentName guards against typed nil pointers hiding inside the interface.
func componentName(c Named) (name string) {
	if c == nil {
		return ""
	}
	defer func() {
		if recover() != nil {
			name = ""
		}
	}()
	return strings.TrimSpace(c.Name())
}

func levelLabel(i interface{}) string {
	raw, _ := i.(string)
	switch raw {
	case zerolog.LevelWarnValue:
		return "WARNING"
	case zerolog.LevelFatalValue, zerolog.LevelPanicValue:
		return "CRITICAL"
	case "":
		return "NOTSET"
	default:
		return strings.ToUpper(raw)
	}
}

// Component is a minimal Named for callers without their own type.
type Component string

func (c Component) Name() string { return string(c) }
