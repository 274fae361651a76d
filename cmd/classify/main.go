// Command classify runs a single business classification from the command line
// and prints the JSON result.
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
