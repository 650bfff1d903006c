package cli

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'tnet.cli'
func tracer() tracing.Trace {
	return tracing.Select("tnet.cli")
}
