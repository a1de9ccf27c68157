// Package bootstrap initializes logging configuration before other packages.
//
// This package MUST be imported first (using a blank import) in main.go so
// its init() runs before any package that logs through zerolog, giving the
// global level a value before the first log line is emitted.
//
// Go's initialization order:
//  1. Imported packages initialize in dependency order (depth-first)
//  2. Within a package, files are sorted by name, init() runs in order
//  3. The main package initializes last
package bootstrap

import (
	"os"

	"github.com/rs/zerolog"
)

func init() {
	level := os.Getenv("XPLAT_LOG_LEVEL")
	if level == "" {
		level = "info"
		os.Setenv("XPLAT_LOG_LEVEL", level)
	}

	logLevel, err := zerolog.ParseLevel(level)
	if err != nil {
		logLevel = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(logLevel)
}
