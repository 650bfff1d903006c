package cli

import (
	"strings"

	"github.com/knadh/koanf"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/npillmayer/schuko/schukonf/koanfadapter"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
	"github.com/npillmayer/tnet"
	"github.com/spf13/pflag"
)

// Command line flags which are mapped to global capability flags.
var capabilityFlags = map[string]string{
	"show-ids":      tnet.KeyShowIDs,
	"read32bit-ids": tnet.KeyRead32BitIDs,
}

// flagKey returns the configuration key for a command line flag.
func flagKey(name string) string {
	if key, ok := capabilityFlags[name]; ok {
		return key
	}
	return name
}

// loadConfig is a callback function used by cobra's initialization mechanism.
// Unfortunately we're not allowed a return value.
func loadConfig() {
	k := koanf.New(".") // '.' is hierarchy delimiter
	// We locate tnet configuration with an application-key of 'TNET' and
	// use NestedText-format (nt) for config-files
	konf := koanfadapter.New(k, "TNET", []string{"nt"})
	konf.InitDefaults()
	if err := mergeFlags(konf); err != nil {
		tracing.Errorf("%v", err)
		tnet.Exit(1)
	}
	if err := configureTracing(konf); err != nil {
		tracing.Errorf("%v", err)
		tnet.Exit(1)
	}
	tnet.SetConfiguration(k) // push the configuration to app-global scope
}

func mergeFlags(konf *koanfadapter.KConf) error {
	flags := rootCmd.PersistentFlags()
	provider := posflag.ProviderWithFlag(flags, ".", konf.Koanf(), func(f *pflag.Flag) (string, interface{}) {
		return flagKey(f.Name), posflag.FlagVal(flags, f)
	})
	err := konf.Koanf().Load(provider, nil)
	if err != nil {
		return err
	}
	if logname := konf.GetString("logfile"); logname != "" && logname != "stderr" {
		if strings.Contains(logname, ":/") {
			konf.Set("tracing.destination", logname)
		} else {
			konf.Set("tracing.destination", "file://"+logname)
		}
	}
	return err
}

func configureTracing(konf *koanfadapter.KConf) error {
	if a := konf.GetString("tracing.adapter"); a != "" && a != "go" {
		tracing.Errorf("tracing adapter type '%s' currently not supported", a)
	}
	konf.Set("tracing.adapter", "go") // use Go builtin logging facilities
	tracing.Infof("searching for trace redirection")
	paths := appPathsOrDefault()
	if dest := konf.GetString("tracing.destination"); dest != "" {
		if !strings.Contains(dest, ":") && paths.LogDir() != "" {
			dest = "file://" + paths.LogDir() + "/" + dest
			konf.Set("tracing.destination", dest)
		}
	}
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	if err := trace2go.ConfigureRoot(konf, "trace", trace2go.ReplaceTracers(true)); err != nil {
		return err
	}
	tracing.SetTraceSelector(trace2go.Selector())
	tracing.Infof("%s", rootCmd.Long)
	return nil
}

func appPathsOrDefault() AppPaths {
	paths, err := DefaultAppPaths("TNET")
	if err != nil {
		tracing.Errorf("cannot configure paths: %v", err)
	}
	return paths
}
