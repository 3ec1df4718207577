// Command ffeval evaluates a classical molecular-mechanics force field over
// one or more coordinate frames and prints the energy decomposition.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
