package probe

// Guard declares the executables an operation depends on.
//
//	submit := probe.RequireExecutables("condor_submit").Wrap(func() error { ... })
//
// Every call to the wrapped function probes the executables first. The first
// failing probe is returned unchanged and the operation is not run.
type Guard struct {
	prober *Prober
	names  []string
}

// RequireExecutables returns a Guard using the default prober.
func RequireExecutables(names ...string) Guard {
	return defaultProber.RequireExecutables(names...)
}

// RequireExecutables returns a Guard that probes names with p.
func (p *Prober) RequireExecutables(names ...string) Guard {
	return Guard{prober: p, names: append([]string(nil), names...)}
}

// Names returns the executables the guard checks.
func (g Guard) Names() []string {
	return append([]string(nil), g.names...)
}

// Check probes every required executable in order.
func (g Guard) Check() error {
	p := g.prober
	if p == nil {
		p = defaultProber
	}
	for _, name := range g.names {
		if err := p.AssertExecutableExists(name); err != nil {
			return err
		}
	}
	return nil
}

// Wrap returns op guarded by the required executables.
func (g Guard) Wrap(op func() error) func() error {
	return func() error {
		if err := g.Check(); err != nil {
			return err
		}
		return op()
	}
}

// Guarded is Wrap for operations that return a value.
func Guarded[T any](g Guard, op func() (T, error)) func() (T, error) {
	return func() (T, error) {
		if err := g.Check(); err != nil {
			var zero T
			return zero, err
		}
		return op()
	}
}
