package main

import (
	"fmt"
	"os"
)

/*
btbar -
Battery levels of the host and its Bluetooth accessories, printed as an
xbar/SwiftBar menu (or Waybar JSON, a terminal table, Prometheus text)
*/

// version is set at build time via -ldflags.
var version = "dev"

func main() {
	if err := newRootCmd(os.Stdout).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
