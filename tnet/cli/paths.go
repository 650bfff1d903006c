package cli

import (
	"os"
	"path/filepath"
)

// AppPaths is an interface to determine application specific paths for configuration,
// logging/tracing and interactive session state.
type AppPaths interface {
	ConfigDir() string
	LogDir() string
	StateDir() string
}

// DefaultAppPaths returns an AppPaths instance with platform-dependent defaults
// set, given appTag. appTag is a string specific to a client's application to identify it.
// If the user's home directory cannot be determined, the paths are relative to
// the working directory and an error is returned.
func DefaultAppPaths(appTag string) (AppPaths, error) {
	a := appPaths{tag: platformTag(appTag)}
	var err error
	if a.home, err = os.UserHomeDir(); err != nil {
		a.home = ""
	}
	return a, err
}

type appPaths struct {
	tag  string
	home string
}

var _ AppPaths = appPaths{}

func (a appPaths) ConfigDir() string {
	c, err := os.UserConfigDir()
	if err != nil {
		c = filepath.Join(a.home, configFallback)
	}
	return filepath.Join(c, a.tag)
}

func (a appPaths) LogDir() string {
	return filepath.Join(logBase(a.home), a.tag)
}

func (a appPaths) StateDir() string {
	c, err := os.UserCacheDir()
	if err != nil {
		c = a.home
	}
	return filepath.Join(c, a.tag)
}
