package main

import (
	"os"
	"runtime"

	"github.com/bnema/chatshell/internal/cli/cmd"
	"github.com/bnema/chatshell/internal/domain/build"
)

// Build-time variables (set via ldflags).
var (
	version   = "dev"
	commit    = "unknown"
	buildDate = "unknown"
)

// initialURL overrides shell.url for one run (from the run command).
var initialURL string

func main() {
	// Run GUI mode for the run command
	if len(os.Args) > 1 && os.Args[1] == "run" {
		if len(os.Args) > 2 {
			initialURL = os.Args[2]
		}
		os.Args = os.Args[:1]
		os.Exit(runGUI())
		return
	}

	cmd.SetBuildInfo(build.Info{
		Version:   version,
		Commit:    commit,
		BuildDate: buildDate,
		GoVersion: runtime.Version(),
	})

	// Default: run CLI (shows help if no subcommand)
	cmd.Execute()
}
