// Package main provides the pagecache CLI for replaying access traces
// through the LFU and optimal replacement engines.
package main

import (
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
