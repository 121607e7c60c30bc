// Package profile wires optional runtime profiling into lacat.
//
// Profiling is provided by [github.com/pkg/profile] and is compiled in only
// with the "pprof" build tag:
//
//	go build -tags pprof .
//
// Without the tag every [Profiler] is a no-op and [Modes] is empty.
//
// # Modes
//
// With the tag, [Modes] lists the supported modes: allocs, block, clock, cpu,
// goroutine, heap, mem, mutex, thread and trace. Profile files are written to
// [Profiler].Dir with names matching the mode (cpu.pprof, mem.pprof, ...):
//
//	p := profile.Profiler{Mode: "cpu", Dir: "/tmp/lacat"}
//	defer p.Start().Stop()
//
// Analyze the output with go tool pprof:
//
//	go tool pprof -http=: /tmp/lacat/cpu.pprof
package profile

// Tag is the build tag required to enable profiling.
const Tag = `pprof`
