// Package main provides taskctl, a command-line client that edits the task
// list in the configured repository directly, without a running server.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := rootCmd(openSession).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
