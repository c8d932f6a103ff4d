package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/ormasoftchile/xmlvet/pkg/check"
)

var (
	watchInterval string
	watchCount    int
)

var watchCmd = &cobra.Command{
	Use:   "watch [xml_path]",
	Short: "Re-validate a file or directory at an interval",
	Args:  cobra.ExactArgs(1),
	RunE:  runWatch,
}

func runWatch(cmd *cobra.Command, args []string) error {
	target := args[0]
	interval, err := time.ParseDuration(watchInterval)
	if err != nil {
		return fmt.Errorf("invalid --interval: %w", err)
	}

	runner, _, err := newRunner(cmd)
	if err != nil {
		return err
	}

	for round := 1; ; round++ {
		ts := time.Now().Format("15:04:05")
		fmt.Printf("--- %s round %d ---\n", ts, round)

		results := checkPath(runner, target)

		var valid, failed, skipped int
		for _, res := range results {
			switch res.Outcome {
			case check.Valid:
				valid++
			case check.Skipped:
				skipped++
			default:
				failed++
			}
		}
		fmt.Printf("%s  %d valid, %d failed, %d skipped\n", ts, valid, failed, skipped)

		if watchCount > 0 && round >= watchCount {
			return nil
		}
		time.Sleep(interval)
	}
}
