// Command valvenet reads a valve network and prints the most pressure one
// actor can release in 30 minutes (part one) and two actors in 26 minutes
// (part two), with the time each part took.
//
// Usage:
//
//	valvenet [flags] [input]     (input defaults to input.txt, "-" reads stdin)
//
// Every flag can also come from the environment (VALVENET_DUAL_MINUTES=20) or
// from a YAML file given with --config.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "valvenet:", err)
		os.Exit(1)
	}
}
