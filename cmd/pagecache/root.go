package main

import (
	"github.com/spf13/cobra"
)

var (
	// Global flags.
	verbose bool
	metrics bool
)

var rootCmd = &cobra.Command{
	Use:   "pagecache",
	Short: "Replay access traces through page replacement engines",
	Long: `pagecache drives the LFU and optimal (Belady) replacement engines
over an access trace and reports cache hits.

A trace is whitespace separated integers: the cache capacity,
the number of keys, then the keys themselves. Traces are read from
the named file (".zst" files are decompressed) or standard input.

Examples:
  # Count LFU hits for a trace on stdin
  echo "4 12 1 2 3 4 1 2 5 1 2 4 3 4" | pagecache lfu

  # Compare every engine on a compressed trace
  pagecache compare trace.txt.zst

  # Measure hit ratios over generated Zipf workloads
  pagecache simulate --pattern zipf --capacity 512 --runs 10`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log every engine event")
	rootCmd.PersistentFlags().BoolVar(&metrics, "metrics", false, "write Prometheus metrics to stderr after the run")
}
