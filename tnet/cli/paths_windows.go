package cli

import (
	"os"
	"path/filepath"
)

const configFallback = ""

func platformTag(appTag string) string {
	return appTag
}

func logBase(home string) string {
	c, err := os.UserCacheDir()
	if err != nil {
		c = home
	}
	return filepath.Join(c, "Logs")
}
