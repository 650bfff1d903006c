//go:build aix || dragonfly || freebsd || (js && wasm) || nacl || linux || netbsd || openbsd || solaris
// +build aix dragonfly freebsd js,wasm nacl linux netbsd openbsd solaris

package cli

import (
	"os"
	"path/filepath"
	"strings"
)

const configFallback = ".config"

func platformTag(appTag string) string {
	return strings.ToLower(appTag)
}

func logBase(home string) string {
	c, err := os.UserCacheDir()
	if err != nil {
		c = home
	}
	return filepath.Join(c, "logs")
}
