package main

import (
	"fmt"
	"os"

	"github.com/dhabedank/daybyday/cmd"
	"github.com/dhabedank/daybyday/internal/version"
)

var appVersion = "0.1.0"

func main() {
	if version.IsFirstRun() {
		version.PrintFirstRunNotice()
	}

	if err := cmd.NewRootCmd(appVersion).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	version.PrintUpdateNotice(version.CheckForUpdate(appVersion))
}
