package profile

// Stopper ends a profiling session and flushes its output.
type Stopper interface{ Stop() }

// Profiler describes one profiling session.
type Profiler struct {
	Mode  string // one of Modes; empty disables profiling
	Dir   string // output directory; empty selects the working directory
	Quiet bool   // suppress the profiler's own log lines
}

// Start begins profiling and returns the session's Stopper. If the binary
// was built without the pprof tag, or Mode is empty or unknown, Start returns
// a Stopper that does nothing. Both Start and Stop are always safe to call.
func (p Profiler) Start() Stopper {
	if p.Mode == "" {
		return ignore{}
	}

	return start(p)
}

// Enabled reports whether profiling support is compiled in.
func Enabled() bool { return enabled }

type ignore struct{}

func (ignore) Stop() {}
