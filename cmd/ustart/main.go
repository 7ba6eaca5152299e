package main

import (
	"errors"
	"fmt"
	"os"
)

// version is stamped by the build via -ldflags "-X main.version=...".
var version = "dev"

func main() {
	cmd := newRootCommand(version)
	if err := cmd.Execute(); err != nil {
		// errUsage already wrote the usage text to stderr.
		if !errors.Is(err, errUsage) {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}
