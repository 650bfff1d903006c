package cli

import "path/filepath"

const configFallback = "Library/Application Support"

func platformTag(appTag string) string {
	return appTag
}

func logBase(home string) string {
	return filepath.Join(home, "Library", "Application Support", "Logs")
}
