// Command taste inspects a Taste project from the terminal: it validates
// drift.yaml and the recipe catalog, prints carousel geometry, renders cover
// art and simulates the auto-advancing carousel without a device.
package main

import (
	"fmt"
	"os"

	"github.com/go-drift/taste/cmd/taste/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
