package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/djdv/go-pagecache/internal/trace"
)

var (
	lfuCmd = &cobra.Command{
		Use:   "lfu [trace]",
		Short: "Count hits of the LFU engine over a trace",
		Args:  cobra.MaximumNArgs(1),
		RunE:  newReplayRun(lfuFactory),
	}
	optimalCmd = &cobra.Command{
		Use:   "optimal [trace]",
		Short: "Count hits of the optimal (Belady) engine over a trace",
		Args:  cobra.MaximumNArgs(1),
		RunE:  newReplayRun(optimalFactory),
	}
)

func init() {
	rootCmd.AddCommand(lfuCmd, optimalCmd)
}

func newReplayRun(factory engineFactory) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) (err error) {
		tr, err := trace.Load(tracePath(args))
		if err != nil {
			return err
		}
		s, err := newSession()
		if err != nil {
			return err
		}
		defer func() { err = errors.Join(err, s.close(cmd.ErrOrStderr())) }()
		hits, err := s.replay(factory, tr.Capacity, tr.Keys)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), hits)
		return nil
	}
}

func tracePath(args []string) string {
	if len(args) == 0 {
		return ""
	}
	return args[0]
}
