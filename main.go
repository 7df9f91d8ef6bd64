package main

import (
	"github.com/blockparty-sh/cpp-slp-graph-search/cmd/gsrest"
)

// Name used by build script for the binaries. (Please keep on single line)
const progname = "gsrest"

// Version & commit strings injected at build with -ldflags -X...
var version string
var commit string

func main() {
	gsrest.RunDaemon(progname, version, commit)
}
