package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
	"github.com/thatisuday/commando"
)

// tracer traces with key 'letterconnect'
func tracer() tracing.Trace {
	return tracing.Select("letterconnect")
}

var traceKeys = []string{"letterconnect", "letterconnect.glyphs", "letterconnect.font"}

// setupTracing routes all tracers of the library to Go's log package, at the
// given level.
func setupTracing(level string) {
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	conf := testconfig.Conf{"tracing.adapter": "go"}
	for _, key := range traceKeys {
		conf["trace."+key] = "Error"
	}
	if err := trace2go.ConfigureRoot(conf, "trace", trace2go.ReplaceTracers(true)); err != nil {
		fatalf("error configuring tracing: %v", err)
	}
	tracing.SetTraceSelector(trace2go.Selector())
	tracers := make([]tracing.Trace, len(traceKeys))
	for i, key := range traceKeys {
		tracers[i] = tracing.Select(key)
	}
	if err := setTraceLevel(level, tracers...); err != nil {
		fatalf("%v", err)
	}
}

func setTraceLevel(level string, tracers ...tracing.Trace) error {
	for _, t := range tracers {
		switch strings.ToLower(strings.TrimSpace(level)) {
		case "debug":
			t.SetTraceLevel(tracing.LevelDebug)
		case "info":
			t.SetTraceLevel(tracing.LevelInfo)
		case "", "error":
			t.SetTraceLevel(tracing.LevelError)
		default:
			return fmt.Errorf("invalid trace level %q (expected Debug|Info|Error)", level)
		}
	}
	return nil
}

func mustFlagString(flag commando.FlagValue, name string) string {
	s, err := flag.GetString()
	if err != nil {
		fatalf("invalid --%s flag: %v", name, err)
	}
	return s
}

func mustFlagBool(flag commando.FlagValue, name string) bool {
	b, err := flag.GetBool()
	if err != nil {
		fatalf("invalid --%s flag: %v", name, err)
	}
	return b
}

func fatalf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(os.Stderr, "lc-tools: "+format+"\n", args...)
	os.Exit(1)
}
